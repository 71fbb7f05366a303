package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/tonhe/graf/internal/chart"
	"github.com/tonhe/graf/internal/config"
	"github.com/tonhe/graf/internal/logging"
	"github.com/tonhe/graf/internal/output"
	"github.com/tonhe/graf/internal/series"
)

// renderFlags are the drawing flags shared by render and watch. Flags the
// user sets win over the series file, which wins over the config file.
type renderFlags struct {
	outputs []string
	kind    string
	steps   int
	grid    bool
	width   int
	height  int
}

func (rf *renderFlags) register(fs *flag.FlagSet) {
	fs.Func("o", "output path (.png, .svg) or - for the terminal; repeatable", func(s string) error {
		rf.outputs = append(rf.outputs, s)
		return nil
	})
	fs.StringVar(&rf.kind, "kind", "", "chart kind: bar or line")
	fs.IntVar(&rf.steps, "steps", 0, "number of gridlines above the x axis")
	fs.BoolVar(&rf.grid, "grid", false, "extend gridlines and separators across the plot")
	fs.IntVar(&rf.width, "width", 0, "image width in pixels")
	fs.IntVar(&rf.height, "height", 0, "image height in pixels")
}

// resolve merges config, series and explicitly set flags.
func (rf *renderFlags) resolve(fs *flag.FlagSet, cfg *config.Config, s *series.Series) (chart.Config, output.Options, error) {
	opts := output.Options{Width: cfg.Width, Height: cfg.Height}
	chartCfg, err := cfg.ChartConfig()
	if err != nil {
		return chartCfg, opts, fmt.Errorf("config: %w", err)
	}
	if chartCfg, err = s.Apply(chartCfg); err != nil {
		return chartCfg, opts, err
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if set["kind"] {
		if chartCfg.Kind, err = chart.ParseKind(rf.kind); err != nil {
			return chartCfg, opts, err
		}
	}
	if set["steps"] {
		chartCfg.Steps = rf.steps
	}
	if set["grid"] {
		chartCfg.ExtendGridlines = rf.grid
	}
	if set["width"] {
		opts.Width = rf.width
	}
	if set["height"] {
		opts.Height = rf.height
	}
	return chartCfg, opts, nil
}

func renderCmd(args []string) {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	var rf renderFlags
	rf.register(fs)

	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: graf render [-o OUT]... [-kind KIND] [-steps N] [-grid] [-width PX] [-height PX] FILE")
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
		rf.outputs = []string{output.Stdout}
	}

	if err := renderFile(context.Background(), fs, &rf, fs.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// renderFile loads path and draws it to every output in rf.
func renderFile(ctx context.Context, fs *flag.FlagSet, rf *renderFlags, path string) error {
	s, err := series.Load(path)
	if err != nil {
		return err
	}
	chartCfg, opts, err := rf.resolve(fs, loadOrDefaultConfig(), s)
	if err != nil {
		return err
	}
	if err := output.RenderAll(ctx, rf.outputs, s, chartCfg, opts); err != nil {
		return err
	}
	for _, out := range rf.outputs {
		if out != output.Stdout {
			logging.Infof("rendered %s (%d values, max %s, %s) to %s",
				path, len(s.Values), chart.FormatValue(s.Max()), chartCfg.Kind, out)
		}
	}
	return nil
}
