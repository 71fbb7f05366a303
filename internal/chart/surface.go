package chart

// Surface is a fixed-size canvas the renderer appends primitives to.
// Implementations must not require the renderer to read back what it drew.
type Surface interface {
	Size() (width, height float64)
	DrawSegment(Segment)
	FillRect(Rect)
	DrawLabel(Label)
}

// Recorder is a Surface that keeps every primitive in draw order.
type Recorder struct {
	Width, Height float64
	Primitives    []Primitive
}

// NewRecorder creates an empty Recorder of the given size.
func NewRecorder(width, height float64) *Recorder {
	return &Recorder{Width: width, Height: height}
}

func (r *Recorder) Size() (float64, float64) { return r.Width, r.Height }

func (r *Recorder) DrawSegment(s Segment) { r.Primitives = append(r.Primitives, s) }

func (r *Recorder) FillRect(rect Rect) { r.Primitives = append(r.Primitives, rect) }

func (r *Recorder) DrawLabel(l Label) { r.Primitives = append(r.Primitives, l) }

// Segments returns the recorded segments in draw order.
func (r *Recorder) Segments() []Segment {
	var out []Segment
	for _, p := range r.Primitives {
		if s, ok := p.(Segment); ok {
			out = append(out, s)
		}
	}
	return out
}

// Rects returns the recorded rectangles in draw order.
func (r *Recorder) Rects() []Rect {
	var out []Rect
	for _, p := range r.Primitives {
		if rect, ok := p.(Rect); ok {
			out = append(out, rect)
		}
	}
	return out
}

// Labels returns the recorded labels in draw order.
func (r *Recorder) Labels() []Label {
	var out []Label
	for _, p := range r.Primitives {
		if l, ok := p.(Label); ok {
			out = append(out, l)
		}
	}
	return out
}

// Replay draws every recorded primitive onto dst in order.
func (r *Recorder) Replay(dst Surface) {
	for _, p := range r.Primitives {
		switch p := p.(type) {
		case Segment:
			dst.DrawSegment(p)
		case Rect:
			dst.FillRect(p)
		case Label:
			dst.DrawLabel(p)
		}
	}
}

// Reset drops all recorded primitives and keeps the size.
func (r *Recorder) Reset() {
	r.Primitives = r.Primitives[:0]
}
