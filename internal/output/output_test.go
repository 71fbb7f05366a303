package output

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/tonhe/graf/internal/chart"
	"github.com/tonhe/graf/internal/series"
)

func testSeries() *series.Series {
	return &series.Series{
		Title:  "Test",
		Values: []float64{2, 5, 3},
		Labels: []string{"a", "b", "c"},
	}
}

func TestRenderAllFormats(t *testing.T) {
	tmp := t.TempDir()
	pngPath := filepath.Join(tmp, "chart.png")
	svgPath := filepath.Join(tmp, "chart.svg")
	var term bytes.Buffer

	cfg := chart.DefaultConfig()
	cfg.Kind = chart.Bar
	opts := Options{Width: 320, Height: 200, Terminal: &term, Columns: 60, Rows: 16}
	if err := RenderAll(context.Background(), []string{pngPath, svgPath, Stdout}, testSeries(), cfg, opts); err != nil {
		t.Fatalf("RenderAll() error: %v", err)
	}

	f, err := os.Open(pngPath)
	if err != nil {
		t.Fatalf("open png: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 320 || b.Dy() != 200 {
		t.Errorf("expected 320x200 png, got %v", b)
	}

	data, err := os.ReadFile(svgPath)
	if err != nil {
		t.Fatalf("read svg: %v", err)
	}
	if strings.Count(string(data), "<rect") != 4 {
		t.Errorf("expected background and 3 bars in svg")
	}

	if lines := strings.Split(strings.TrimRight(term.String(), "\n"), "\n"); len(lines) != 16 {
		t.Errorf("expected 16 terminal lines, got %d", len(lines))
	}
}

func TestRenderUnsupported(t *testing.T) {
	err := Render(filepath.Join(t.TempDir(), "chart.bmp"), testSeries(), chart.DefaultConfig(), Options{Width: 100, Height: 100})
	if err == nil || !strings.Contains(err.Error(), "unsupported") {
		t.Errorf("expected unsupported format error, got %v", err)
	}
}

func TestRenderInvalidLeavesNoSVG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.svg")
	s := &series.Series{Values: []float64{1}}
	err := Render(path, s, chart.DefaultConfig(), Options{Width: 200, Height: 100})
	if !errors.Is(err, chart.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Error("no file should be written for an invalid series")
	}
}

func TestRenderAllReportsError(t *testing.T) {
	tmp := t.TempDir()
	dests := []string{filepath.Join(tmp, "ok.png"), filepath.Join(tmp, "missing", "x.png")}
	err := RenderAll(context.Background(), dests, testSeries(), chart.DefaultConfig(), Options{Width: 200, Height: 100})
	if err == nil {
		t.Error("expected error for an unwritable destination")
	}
}

func TestTerminalSizeFallback(t *testing.T) {
	cols, rows := terminalSize(&bytes.Buffer{})
	if cols != 80 || rows != 24 {
		t.Errorf("expected 80x24 fallback, got %dx%d", cols, rows)
	}
}

func TestUnique(t *testing.T) {
	got := Unique([]string{"a.png", "-", "./a.png", "b.svg", "-", "dir/../b.svg"})
	want := []string{"a.png", "-", "b.svg"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Unique() = %v, want %v", got, want)
	}
}

func TestRenderAllRepeatedDestination(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.svg")
	var term bytes.Buffer
	opts := Options{Width: 200, Height: 100, Terminal: &term, Columns: 40, Rows: 10}
	dests := []string{path, path, Stdout, Stdout}
	if err := RenderAll(context.Background(), dests, testSeries(), chart.DefaultConfig(), opts); err != nil {
		t.Fatalf("RenderAll() error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read svg: %v", err)
	}
	if n := strings.Count(string(data), "</svg>"); n != 1 {
		t.Errorf("expected one complete svg document, got %d", n)
	}
	if n := strings.Count(term.String(), "Test"); n != 1 {
		t.Errorf("expected terminal output once, got %d titles", n)
	}
}
