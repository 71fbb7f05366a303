package components

import (
	"errors"
	"strings"
	"testing"

	"github.com/tonhe/graf/internal/chart"
)

func TestCanvasSize(t *testing.T) {
	c := NewCanvas(40, 12)
	w, h := c.Size()
	if w != 40*CellWidth || h != 12*CellHeight {
		t.Errorf("unexpected size %vx%v", w, h)
	}
}

func TestCanvasSegments(t *testing.T) {
	c := NewCanvas(10, 5)
	c.DrawSegment(chart.Segment{X1: 0, Y1: 40, X2: 79, Y2: 40})
	c.DrawSegment(chart.Segment{X1: 40, Y1: 0, X2: 40, Y2: 79})
	lines := c.Lines()
	if lines[2] != "─────┼────" {
		t.Errorf("unexpected horizontal row %q", lines[2])
	}
	if c.Rune(5, 0) != runeVert || c.Rune(5, 4) != runeVert {
		t.Errorf("expected vertical line in column 5")
	}
}

func TestCanvasDiagonal(t *testing.T) {
	c := NewCanvas(5, 5)
	c.DrawSegment(chart.Segment{X1: 0, Y1: 0, X2: 4 * CellWidth, Y2: 4 * CellHeight})
	for i := 0; i < 5; i++ {
		if c.Rune(i, i) != runeDot {
			t.Errorf("expected dot at (%d,%d), got %q", i, i, c.Rune(i, i))
		}
	}
}

func TestCanvasFillRect(t *testing.T) {
	c := NewCanvas(6, 4)
	c.FillRect(chart.Rect{X: 8, Y: 16, Width: 16, Height: 48})
	lines := c.Lines()
	want := []string{"      ", " ██   ", " ██   ", " ██   "}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("row %d: expected %q, got %q", i, want[i], lines[i])
		}
	}
}

func TestCanvasLabelAlignment(t *testing.T) {
	c := NewCanvas(10, 3)
	c.DrawLabel(chart.Label{X: 0, Y: 0, Width: 80, Height: 16, Text: "ab", HAlign: chart.AlignRight})
	c.DrawLabel(chart.Label{X: 0, Y: 16, Width: 80, Height: 16, Text: "mid", HAlign: chart.AlignCenter})
	c.DrawLabel(chart.Label{X: 0, Y: 32, Width: 24, Height: 16, Text: "truncated"})
	lines := c.Lines()
	if lines[0] != "        ab" {
		t.Errorf("right aligned: got %q", lines[0])
	}
	if lines[1] != "   mid    " {
		t.Errorf("centered: got %q", lines[1])
	}
	if lines[2] != "tru       " {
		t.Errorf("clipped: got %q", lines[2])
	}
}

func TestRenderChartBar(t *testing.T) {
	cfg := chart.DefaultConfig()
	cfg.Kind = chart.Bar
	out, err := RenderChart([]float64{1, 2, 3}, []string{"a", "b", "c"}, cfg, 60, 20, "Demo")
	if err != nil {
		t.Fatalf("RenderChart() error: %v", err)
	}
	lines := strings.Split(out, "\n")
	if len(lines) != 20 {
		t.Fatalf("expected 20 lines, got %d", len(lines))
	}
	if strings.TrimSpace(lines[0]) != "Demo" {
		t.Errorf("expected title row, got %q", lines[0])
	}
	if !strings.ContainsRune(out, runeFull) {
		t.Error("expected bar blocks in output")
	}
}

func TestRenderChartError(t *testing.T) {
	_, err := RenderChart([]float64{1}, nil, chart.DefaultConfig(), 60, 20, "")
	if !errors.Is(err, chart.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for a single point line, got %v", err)
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab  " {
		t.Errorf("centerText() = %q", got)
	}
	if got := centerText("abcdef", 3); got != "abc" {
		t.Errorf("centerText() should truncate, got %q", got)
	}
}
