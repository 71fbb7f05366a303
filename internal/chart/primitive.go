package chart

import "image/color"

// HAlign is the horizontal placement of label text inside its box.
type HAlign int

const (
	AlignLeft HAlign = iota
	AlignCenter
	AlignRight
)

// VAlign is the vertical placement of label text inside its box.
type VAlign int

const (
	AlignTop VAlign = iota
	AlignMiddle
	AlignBottom
)

// Primitive is one drawn shape. Segment, Rect and Label are the only
// implementations.
type Primitive interface {
	primitive()
}

// Segment is a straight stroked line.
type Segment struct {
	X1, Y1, X2, Y2 float64
	Color          color.RGBA
	Thickness      float64
}

// Rect is a filled axis-aligned rectangle with its origin at the top-left.
type Rect struct {
	X, Y, Width, Height float64
	Fill                color.RGBA
}

// Label is text aligned inside a box whose origin is the top-left corner.
type Label struct {
	X, Y, Width, Height float64
	Text                string
	Color               color.RGBA
	HAlign              HAlign
	VAlign              VAlign
}

func (Segment) primitive() {}
func (Rect) primitive()    {}
func (Label) primitive()   {}
