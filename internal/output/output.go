// Package output renders a series to files or the terminal, picking the
// drawing surface from the destination.
package output

import (
	"context"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/tonhe/graf/internal/chart"
	"github.com/tonhe/graf/internal/logging"
	"github.com/tonhe/graf/internal/series"
	"github.com/tonhe/graf/internal/surface/raster"
	"github.com/tonhe/graf/internal/surface/svg"
	"github.com/tonhe/graf/tui/components"
)

// Stdout is the destination name for terminal output.
const Stdout = "-"

var white = color.RGBA{255, 255, 255, 255}

// Options controls image size and where terminal output goes.
type Options struct {
	// Width and Height are the image size in pixels for file outputs.
	Width, Height int
	// Terminal receives "-" output. Defaults to os.Stdout.
	Terminal io.Writer
	// Columns and Rows size terminal output. Zero means detect from the
	// terminal, falling back to 80x24.
	Columns, Rows int
}

// Render draws s with cfg to dest: a .png or .svg path, or "-".
func Render(dest string, s *series.Series, cfg chart.Config, opts Options) error {
	if dest == Stdout {
		return renderTerminal(s, cfg, opts)
	}
	var err error
	switch ext := strings.ToLower(filepath.Ext(dest)); ext {
	case ".png":
		err = renderPNG(dest, s, cfg, opts)
	case ".svg":
		err = renderSVG(dest, s, cfg, opts)
	default:
		return fmt.Errorf("%s: unsupported output format %q", dest, ext)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", dest, err)
	}
	logging.Debugf("wrote %s (%dx%d, %s)", dest, opts.Width, opts.Height, cfg.Kind)
	return nil
}

// RenderAll renders every distinct destination concurrently and returns the
// first error. Each destination gets its own surface.
func RenderAll(ctx context.Context, dests []string, s *series.Series, cfg chart.Config, opts Options) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, dest := range Unique(dests) {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return Render(dest, s, cfg, opts)
		})
	}
	return g.Wait()
}

// Unique drops repeated destinations, keeping the first occurrence. File
// paths are compared after filepath.Clean.
func Unique(dests []string) []string {
	seen := make(map[string]bool, len(dests))
	out := make([]string, 0, len(dests))
	for _, dest := range dests {
		key := dest
		if dest != Stdout {
			key = filepath.Clean(dest)
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, dest)
	}
	return out
}

func renderPNG(path string, s *series.Series, cfg chart.Config, opts Options) error {
	surf := raster.New(opts.Width, opts.Height, white)
	if err := (chart.Renderer{}).Render(surf, s.Values, s.Labels, cfg); err != nil {
		return err
	}
	return surf.SavePNG(path)
}

func renderSVG(path string, s *series.Series, cfg chart.Config, opts Options) error {
	// validate against a throwaway recorder first so a bad series never
	// leaves a half-written file behind
	rec := chart.NewRecorder(float64(opts.Width), float64(opts.Height))
	if err := (chart.Renderer{}).Render(rec, s.Values, s.Labels, cfg); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	surf := svg.New(f, opts.Width, opts.Height, white)
	rec.Replay(surf)
	if err := surf.Close(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func renderTerminal(s *series.Series, cfg chart.Config, opts Options) error {
	w := opts.Terminal
	if w == nil {
		w = os.Stdout
	}
	cols, rows := opts.Columns, opts.Rows
	if cols == 0 || rows == 0 {
		cols, rows = terminalSize(w)
	}
	out, err := components.RenderChart(s.Values, s.Labels, cfg, cols, rows, s.Title)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, out)
	return err
}

// terminalSize returns the size of w when it is a terminal, else 80x24.
func terminalSize(w io.Writer) (int, int) {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if cols, rows, err := term.GetSize(int(f.Fd())); err == nil {
			// leave a row for the shell prompt
			return cols, rows - 1
		}
	}
	return 80, 24
}
