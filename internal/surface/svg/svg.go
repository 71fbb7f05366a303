// Package svg streams chart primitives as SVG elements.
package svg

import (
	"fmt"
	"image/color"
	"io"
	"math"

	svgo "github.com/ajstarks/svgo"

	"github.com/tonhe/graf/internal/chart"
)

// Surface is a chart.Surface that writes SVG to an io.Writer as it draws.
// Call Close once drawing is done to terminate the document.
type Surface struct {
	canvas *svgo.SVG
	width  int
	height int
}

// New writes the SVG header and a background rectangle filled with bg.
func New(w io.Writer, width, height int, bg color.RGBA) *Surface {
	canvas := svgo.New(w)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:"+hex(bg))
	return &Surface{canvas: canvas, width: width, height: height}
}

func (s *Surface) Size() (float64, float64) {
	return float64(s.width), float64(s.height)
}

func (s *Surface) DrawSegment(seg chart.Segment) {
	s.canvas.Line(px(seg.X1), px(seg.Y1), px(seg.X2), px(seg.Y2),
		fmt.Sprintf("stroke:%s;stroke-width:%g", hex(seg.Color), seg.Thickness))
}

func (s *Surface) FillRect(r chart.Rect) {
	s.canvas.Rect(px(r.X), px(r.Y), px(r.Width), px(r.Height), "fill:"+hex(r.Fill))
}

func (s *Surface) DrawLabel(l chart.Label) {
	if l.Text == "" {
		return
	}
	x, anchor := textAnchor(l)
	y, baseline := textBaseline(l)
	s.canvas.Text(px(x), px(y), l.Text,
		fmt.Sprintf("fill:%s;font-family:sans-serif;font-size:12px;text-anchor:%s;dominant-baseline:%s",
			hex(l.Color), anchor, baseline))
}

// Close ends the SVG document.
func (s *Surface) Close() error {
	s.canvas.End()
	return nil
}

func textAnchor(l chart.Label) (float64, string) {
	switch l.HAlign {
	case chart.AlignCenter:
		return l.X + l.Width/2, "middle"
	case chart.AlignRight:
		return l.X + l.Width, "end"
	default:
		return l.X, "start"
	}
}

func textBaseline(l chart.Label) (float64, string) {
	switch l.VAlign {
	case chart.AlignMiddle:
		return l.Y + l.Height/2, "central"
	case chart.AlignBottom:
		return l.Y + l.Height, "text-after-edge"
	default:
		return l.Y, "hanging"
	}
}

func px(v float64) int {
	return int(math.Round(v))
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
