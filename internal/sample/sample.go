// Package sample generates random chart data for demos.
package sample

import (
	"math/rand/v2"

	"github.com/tonhe/graf/internal/chart"
	"github.com/tonhe/graf/internal/series"
)

// Point is one labelled value.
type Point struct {
	Label string
	Value float64
}

// Generator produces values uniformly distributed in [0, max).
// It is not safe for concurrent use.
type Generator struct {
	rng *rand.Rand
	max float64
}

// NewGenerator creates a deterministic generator for the given seed.
func NewGenerator(seed uint64, max float64) *Generator {
	if max <= 0 {
		max = 5
	}
	return &Generator{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), max: max}
}

// Point returns the next random point, labelled with its own value.
func (g *Generator) Point() Point {
	v := g.rng.Float64() * g.max
	return Point{Label: chart.FormatValue(v), Value: v}
}

// Series returns a series of n random points.
func (g *Generator) Series(title string, n int) *series.Series {
	s := &series.Series{Title: title}
	for i := 0; i < n; i++ {
		p := g.Point()
		s.Values = append(s.Values, p.Value)
		s.Labels = append(s.Labels, p.Label)
	}
	return s
}

// Stream keeps the most recent points of a live random feed.
type Stream struct {
	gen    *Generator
	points *RingBuffer[Point]
}

// NewStream creates a stream holding up to size points, pre-filled.
func NewStream(gen *Generator, size int) *Stream {
	st := &Stream{gen: gen, points: NewRingBuffer[Point](size)}
	st.Refill()
	return st
}

// Next appends one random point, evicting the oldest when full.
func (st *Stream) Next() Point {
	p := st.gen.Point()
	st.points.Add(p)
	return p
}

// Refill replaces every point with fresh random data.
func (st *Stream) Refill() {
	st.points.Reset()
	for i := 0; i < st.points.Cap(); i++ {
		st.Next()
	}
}

// Series returns the current points oldest first.
func (st *Stream) Series(title string) *series.Series {
	s := &series.Series{Title: title}
	for _, p := range st.points.All() {
		s.Values = append(s.Values, p.Value)
		s.Labels = append(s.Labels, p.Label)
	}
	return s
}
