package svg

import (
	"bytes"
	"image/color"
	"strings"
	"testing"

	"github.com/tonhe/graf/internal/chart"
)

var white = color.RGBA{255, 255, 255, 255}

func TestBarChartElements(t *testing.T) {
	var buf bytes.Buffer
	s := New(&buf, 400, 300, white)
	cfg := chart.DefaultConfig()
	cfg.Kind = chart.Bar
	cfg.Steps = 4
	values := []float64{3, 1, 2}
	if err := (chart.Renderer{}).Render(s, values, []string{"x", "y", "z"}, cfg); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}
	out := buf.String()

	if !strings.HasPrefix(strings.TrimSpace(out), "<?xml") {
		t.Errorf("expected xml header, got %q", out[:20])
	}
	if !strings.HasSuffix(strings.TrimSpace(out), "</svg>") {
		t.Error("expected closing svg tag")
	}
	// background plus one rect per bar
	if got := strings.Count(out, "<rect"); got != len(values)+1 {
		t.Errorf("expected %d rects, got %d", len(values)+1, got)
	}
	if got := strings.Count(out, "<line"); got != 2+cfg.Steps+len(values) {
		t.Errorf("expected %d lines, got %d", 2+cfg.Steps+len(values), got)
	}
	if got := strings.Count(out, "<text"); got != cfg.Steps+len(values) {
		t.Errorf("expected %d text elements, got %d", cfg.Steps+len(values), got)
	}
	if !strings.Contains(out, "fill:#0000ff") {
		t.Error("expected blue bar fill")
	}
}

func TestEmptyLabelSkipped(t *testing.T) {
	var buf bytes.Buffer
	s := New(&buf, 100, 100, white)
	s.DrawLabel(chart.Label{X: 1, Y: 1, Width: 10, Height: 10})
	s.Close()
	if strings.Contains(buf.String(), "<text") {
		t.Error("empty labels should not produce text elements")
	}
}

func TestTextAnchor(t *testing.T) {
	l := chart.Label{X: 0, Y: 0, Width: 40, Height: 20, HAlign: chart.AlignRight, VAlign: chart.AlignMiddle}
	x, anchor := textAnchor(l)
	y, baseline := textBaseline(l)
	if x != 40 || anchor != "end" {
		t.Errorf("expected end anchor at 40, got %q at %v", anchor, x)
	}
	if y != 10 || baseline != "central" {
		t.Errorf("expected central baseline at 10, got %q at %v", baseline, y)
	}
}

func TestHex(t *testing.T) {
	if got := hex(color.RGBA{R: 0x12, G: 0xab, B: 0x0f, A: 255}); got != "#12ab0f" {
		t.Errorf("hex() = %q", got)
	}
}
