// Package raster draws chart primitives into an in-memory RGBA image.
package raster

import (
	"image"
	"image/color"
	"io"

	"git.sr.ht/~sbinet/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/tonhe/graf/internal/chart"
)

// Surface is a chart.Surface backed by a gg drawing context.
type Surface struct {
	dc     *gg.Context
	width  int
	height int
}

// New creates a width x height surface cleared to bg.
func New(width, height int, bg color.Color) *Surface {
	dc := gg.NewContext(width, height)
	dc.SetColor(bg)
	dc.Clear()
	dc.SetFontFace(basicfont.Face7x13)
	return &Surface{dc: dc, width: width, height: height}
}

func (s *Surface) Size() (float64, float64) {
	return float64(s.width), float64(s.height)
}

func (s *Surface) DrawSegment(seg chart.Segment) {
	s.dc.SetColor(seg.Color)
	s.dc.SetLineWidth(seg.Thickness)
	s.dc.DrawLine(seg.X1, seg.Y1, seg.X2, seg.Y2)
	s.dc.Stroke()
}

func (s *Surface) FillRect(r chart.Rect) {
	s.dc.SetColor(r.Fill)
	s.dc.DrawRectangle(r.X, r.Y, r.Width, r.Height)
	s.dc.Fill()
}

func (s *Surface) DrawLabel(l chart.Label) {
	if l.Text == "" {
		return
	}
	x, ax := anchorX(l)
	y, ay := anchorY(l)
	s.dc.SetColor(l.Color)
	s.dc.DrawStringAnchored(l.Text, x, y, ax, ay)
}

// anchorX returns the point and gg anchor fraction for the label's
// horizontal alignment.
func anchorX(l chart.Label) (float64, float64) {
	switch l.HAlign {
	case chart.AlignCenter:
		return l.X + l.Width/2, 0.5
	case chart.AlignRight:
		return l.X + l.Width, 1
	default:
		return l.X, 0
	}
}

// anchorY mirrors anchorX. gg measures ay downward from the baseline, so
// ay=1 hangs the text below y.
func anchorY(l chart.Label) (float64, float64) {
	switch l.VAlign {
	case chart.AlignMiddle:
		return l.Y + l.Height/2, 0.5
	case chart.AlignBottom:
		return l.Y + l.Height, 0
	default:
		return l.Y, 1
	}
}

// Image returns the drawn image.
func (s *Surface) Image() image.Image {
	return s.dc.Image()
}

// EncodePNG writes the image as PNG.
func (s *Surface) EncodePNG(w io.Writer) error {
	return s.dc.EncodePNG(w)
}

// SavePNG writes the image to path as PNG.
func (s *Surface) SavePNG(path string) error {
	return s.dc.SavePNG(path)
}
