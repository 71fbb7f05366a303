package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tonhe/graf/internal/chart"
	"github.com/tonhe/graf/internal/config"
	"github.com/tonhe/graf/internal/sample"
	"github.com/tonhe/graf/internal/series"
)

func demoCmd(args []string) {
	fs := flag.NewFlagSet("demo", flag.ExitOnError)
	count := fs.Int("count", 10, "number of values")
	maxVal := fs.Float64("max", 5, "values are drawn from [0, max)")
	seed := fs.Uint64("seed", 0, "random seed (0 picks one from the clock)")
	kind := fs.String("kind", "", "chart kind to store in the file: bar or line")

	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: graf demo [-count N] [-max X] [-seed N] [-kind KIND] OUT")
		fmt.Fprintln(os.Stderr, "OUT must end in .toml, .yaml or .yml. A bare name is written to the series directory.")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: OUT argument is required")
		fs.Usage()
		os.Exit(1)
	}
	if *count < 1 {
		fmt.Fprintln(os.Stderr, "Error: -count must be at least 1")
		os.Exit(1)
	}
	if *kind != "" {
		if _, err := chart.ParseKind(*kind); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	out, err := demoPath(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	s := newDemoSeries(*seed, *maxVal, *count, strings.TrimSuffix(filepath.Base(out), filepath.Ext(out)))
	s.Kind = *kind
	if err := series.Save(s, out); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d values to %s.\n", len(s.Values), out)
}

func newDemoSeries(seed uint64, max float64, n int, title string) *series.Series {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return sample.NewGenerator(seed, max).Series(title, n)
}

// demoPath places bare file names in the series directory.
func demoPath(name string) (string, error) {
	if filepath.Base(name) != name {
		return name, nil
	}
	dir, err := config.GetSeriesDir()
	if err != nil {
		return "", err
	}
	if err := config.EnsureDirs(); err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}
