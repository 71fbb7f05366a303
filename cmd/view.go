package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tonhe/graf/internal/config"
	"github.com/tonhe/graf/internal/logging"
	"github.com/tonhe/graf/tui"
)

func viewCmd(args []string) {
	fs := flag.NewFlagSet("view", flag.ExitOnError)
	watch := fs.Bool("watch", false, "reload FILE whenever it changes")
	demo := fs.Bool("demo", false, "show live random data instead of a file")
	seed := fs.Uint64("seed", 0, "random seed for -demo (0 picks one from the clock)")
	theme := fs.String("theme", "", "theme override")

	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: graf view [-watch] [-theme NAME] FILE")
		fmt.Fprintln(os.Stderr, "       graf view -demo [-seed N] [-theme NAME]")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	opts := tui.Options{Watch: *watch, Demo: *demo, Seed: *seed, Version: Version}
	if !opts.Demo {
		if fs.NArg() < 1 {
			fmt.Fprintln(os.Stderr, "Error: FILE argument is required")
			fs.Usage()
			os.Exit(1)
		}
		opts.Path = fs.Arg(0)
	}
	if dir, err := config.GetSeriesDir(); err == nil {
		opts.SeriesDir = dir
	}
	if opts.Seed == 0 {
		opts.Seed = uint64(time.Now().UnixNano())
	}

	cfg := loadOrDefaultConfig()
	if *theme != "" {
		cfg.Theme = *theme
	}
	if err := runViewer(cfg, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runViewer owns the terminal until the user quits. Log output goes to a
// file in the data directory so it cannot corrupt the screen.
func runViewer(cfg *config.Config, opts tui.Options) error {
	model, err := tui.NewAppModel(cfg, opts)
	if err != nil {
		return err
	}

	if f, err := openViewerLog(); err == nil {
		defer f.Close()
		logging.SetOutput(f)
	} else {
		logging.SetOutput(io.Discard)
	}
	defer logging.SetOutput(os.Stderr)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// openViewerLog opens graf.log in the data directory for appending.
func openViewerLog() (*os.File, error) {
	if err := config.EnsureDirs(); err != nil {
		return nil, err
	}
	dir, err := config.GetDataDir()
	if err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, "graf.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
}
