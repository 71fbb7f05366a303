package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/tonhe/graf/internal/logging"
	"github.com/tonhe/graf/internal/output"
	"github.com/tonhe/graf/internal/watcher"
)

func watchCmd(args []string) {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	var rf renderFlags
	rf.register(fs)
	debounce := fs.Duration("debounce", watcher.DefaultDebounce, "quiet period before redrawing")

	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: graf watch -o OUT [-o OUT]... [render flags] FILE")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: FILE argument is required")
		fs.Usage()
		os.Exit(1)
	}
	if len(rf.outputs) == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one -o is required")
		fs.Usage()
		os.Exit(1)
	}
	for _, out := range rf.outputs {
		if out == output.Stdout {
			fmt.Fprintln(os.Stderr, "Error: watch writes files only; use 'graf view -watch' for the terminal")
			os.Exit(1)
		}
	}

	path := fs.Arg(0)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// a bad first draw is reported but does not stop the watch
	if err := renderFile(ctx, fs, &rf, path); err != nil {
		logging.Errorf("%v", err)
	}

	logging.Infof("watching %s, press Ctrl+C to stop", path)
	err := watcher.Watch(ctx, path, *debounce, serialized(func() {
		if err := renderFile(ctx, fs, &rf, path); err != nil {
			logging.Errorf("%v", err)
		}
	}))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// serialized wraps fn so concurrent calls run one at a time.
func serialized(fn func()) func() {
	var mu sync.Mutex
	return func() {
		mu.Lock()
		defer mu.Unlock()
		fn()
	}
}
