package chart

import (
	"image/color"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Renderer draws charts. It holds no state, so one value can serve any
// number of surfaces, including concurrently when each call targets its
// own surface.
type Renderer struct{}

// Render validates the input, then draws axes followed by the data layer
// selected by cfg.Kind. Nil or empty labels draw every category unlabelled.
// On error nothing has been drawn.
func (Renderer) Render(s Surface, values []float64, labels []string, cfg Config) error {
	if s == nil {
		return invalid("surface", "nil")
	}
	if len(values) == 0 {
		return invalid("values", "at least one value is required")
	}
	if cfg.Steps < 1 {
		return invalid("steps", "must be at least 1, got %d", cfg.Steps)
	}
	if len(labels) == 0 {
		labels = make([]string, len(values))
	} else if len(labels) != len(values) {
		return invalid("labels", "have %d labels for %d values", len(labels), len(values))
	}
	if cfg.Kind == Line && len(values) < 2 {
		return invalid("values", "a line chart needs at least two values")
	}

	width, height := s.Size()
	if width <= LeftMargin || height <= BottomMargin {
		return invalid("surface", "%gx%g leaves no room to plot", width, height)
	}

	maxVal, scale, err := Scale(values, height-BottomMargin)
	if err != nil {
		return err
	}
	heights := Heights(values, scale)

	drawAxes(s, maxVal, cfg.Steps, cfg.AxisColor, cfg.ExtendGridlines)
	switch cfg.Kind {
	case Bar:
		drawBars(s, heights, labels, cfg.AxisColor, cfg.DataColor, cfg.ExtendGridlines)
	default:
		drawLine(s, heights, labels, cfg.AxisColor, cfg.DataColor, cfg.ExtendGridlines)
	}
	return nil
}

// Scale returns the series maximum and the pixels-per-unit factor that puts
// that maximum exactly at plotHeight.
func Scale(values []float64, plotHeight float64) (maxVal, scale float64, err error) {
	if len(values) == 0 {
		return 0, 0, invalid("values", "at least one value is required")
	}
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, 0, invalid("values", "value %d is not finite", i)
		}
	}
	maxVal = floats.Max(values)
	if maxVal <= 0 {
		return 0, 0, invalid("values", "maximum must be positive, got %g", maxVal)
	}
	return maxVal, plotHeight / maxVal, nil
}

// Heights returns values multiplied by scale in a new slice.
func Heights(values []float64, scale float64) []float64 {
	return floats.ScaleTo(make([]float64, len(values)), scale, values)
}

// FormatValue renders a tick value with at most two decimals.
func FormatValue(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

func drawAxes(s Surface, maxVal float64, steps int, axis color.RGBA, extend bool) {
	width, height := s.Size()
	bottom := height - BottomMargin
	stepHeight := bottom / float64(steps)

	// y axis
	s.DrawSegment(Segment{
		X1: LeftMargin, Y1: 0,
		X2: LeftMargin, Y2: height - BottomMargin/2.0,
		Color: axis, Thickness: 2,
	})
	// x axis
	s.DrawSegment(Segment{
		X1: LeftMargin / 2.0, Y1: bottom,
		X2: width, Y2: bottom,
		Color: axis, Thickness: 2,
	})

	for i := 1; i <= steps; i++ {
		y := bottom - stepHeight*float64(i)
		if extend {
			s.DrawSegment(Segment{X1: LeftMargin - TickSize, Y1: y, X2: width, Y2: y, Color: axis, Thickness: 1})
		} else {
			s.DrawSegment(Segment{X1: LeftMargin - TickSize, Y1: y, X2: LeftMargin, Y2: y, Color: axis, Thickness: 2})
		}

		// maxVal/i, not maxVal*i/steps: the top line reads maxVal and the
		// lines below read maxVal/2, maxVal/3 and so on.
		s.DrawLabel(Label{
			X:      0,
			Y:      y - LabelHeight/2.0,
			Width:  LeftMargin - TickSize,
			Height: LabelHeight,
			Text:   FormatValue(maxVal / float64(i)),
			Color:  axis,
			HAlign: AlignRight,
			VAlign: AlignMiddle,
		})
	}
}

func drawBars(s Surface, heights []float64, labels []string, tick, bar color.RGBA, extend bool) {
	width, height := s.Size()
	bottom := height - BottomMargin
	slot := (width - LeftMargin) / float64(len(heights))
	barWidth := slot * 0.8
	gap := slot * 0.1

	for i, h := range heights {
		x := LeftMargin + slot*float64(i)
		s.FillRect(Rect{X: x + gap, Y: bottom - h, Width: barWidth, Height: h, Fill: bar})
		s.DrawLabel(Label{
			X:      x,
			Y:      bottom,
			Width:  slot,
			Height: BottomMargin - TickSize,
			Text:   labels[i],
			Color:  tick,
			HAlign: AlignCenter,
			VAlign: AlignTop,
		})
		separator(s, x+slot, bottom, tick, extend)
	}
}

func drawLine(s Surface, heights []float64, labels []string, tick, line color.RGBA, extend bool) {
	width, height := s.Size()
	bottom := height - BottomMargin
	seg := (width - LeftMargin) / float64(len(heights)-1)

	for i := 1; i < len(heights); i++ {
		x := LeftMargin + seg*float64(i)
		// centered on the midpoint of the segment ending at i; index 0 has
		// no segment ending at it and stays unlabelled
		s.DrawLabel(Label{
			X:      x - seg,
			Y:      bottom,
			Width:  seg,
			Height: BottomMargin - TickSize,
			Text:   labels[i],
			Color:  tick,
			HAlign: AlignCenter,
			VAlign: AlignTop,
		})
		s.DrawSegment(Segment{
			X1: LeftMargin + seg*float64(i-1), Y1: bottom - heights[i-1],
			X2: x, Y2: bottom - heights[i],
			Color: line, Thickness: 2,
		})
		separator(s, x, bottom, tick, extend)
	}
}

func separator(s Surface, x, bottom float64, tick color.RGBA, extend bool) {
	if extend {
		s.DrawSegment(Segment{X1: x, Y1: 0, X2: x, Y2: bottom + TickSize, Color: tick, Thickness: 1})
		return
	}
	s.DrawSegment(Segment{X1: x, Y1: bottom, X2: x, Y2: bottom + TickSize, Color: tick, Thickness: 2})
}
