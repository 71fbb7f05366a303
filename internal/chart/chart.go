// Package chart lays out bar and line charts as positioned drawing
// primitives for a fixed-size surface.
package chart

import (
	"fmt"
	"image/color"
	"strings"
)

// Layout constants in surface pixels.
const (
	LeftMargin   = 50
	BottomMargin = 30
	TickSize     = 5
	LabelHeight  = 30
)

// Kind selects the data layer drawn on top of the axes.
type Kind int

const (
	Line Kind = iota
	Bar
)

func (k Kind) String() string {
	switch k {
	case Bar:
		return "bar"
	case Line:
		return "line"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseKind accepts "bar" or "line" in any case.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bar":
		return Bar, nil
	case "line":
		return Line, nil
	default:
		return Line, fmt.Errorf("unknown chart kind %q", s)
	}
}

var (
	Black = color.RGBA{0, 0, 0, 255}
	Blue  = color.RGBA{0, 0, 255, 255}
)

// Config controls how a series is drawn.
type Config struct {
	// Steps is the number of horizontal gridlines above the x axis.
	Steps int
	Kind  Kind
	// ExtendGridlines draws gridlines and separators across the plot
	// instead of short ticks.
	ExtendGridlines bool
	AxisColor       color.RGBA
	DataColor       color.RGBA
}

// DefaultConfig returns a five-step line chart with black axes and blue data.
func DefaultConfig() Config {
	return Config{
		Steps:     5,
		Kind:      Line,
		AxisColor: Black,
		DataColor: Blue,
	}
}
