package components

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/tonhe/graf/internal/chart"
)

// One terminal cell stands in for this many surface pixels, so the
// renderer's pixel margins come out as a few columns and rows.
const (
	CellWidth  = 8
	CellHeight = 16
)

const (
	runeHoriz = '─'
	runeVert  = '│'
	runeCross = '┼'
	runeDot   = '•'
	runeFull  = '█'
)

type cell struct {
	r   rune
	fg  color.RGBA
	set bool
	// wide marks the right half of a double-width rune
	wide bool
}

// Canvas is a chart.Surface that rasterizes primitives into terminal cells.
type Canvas struct {
	cols, rows int
	cells      []cell
}

// NewCanvas creates a blank canvas of cols x rows cells.
func NewCanvas(cols, rows int) *Canvas {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return &Canvas{cols: cols, rows: rows, cells: make([]cell, cols*rows)}
}

func (c *Canvas) Size() (float64, float64) {
	return float64(c.cols * CellWidth), float64(c.rows * CellHeight)
}

func (c *Canvas) DrawSegment(s chart.Segment) {
	x1, y1 := c.cellAt(s.X1, s.Y1)
	x2, y2 := c.cellAt(s.X2, s.Y2)
	switch {
	case y1 == y2:
		if x1 > x2 {
			x1, x2 = x2, x1
		}
		for x := x1; x <= x2; x++ {
			c.stroke(x, y1, runeHoriz, s.Color)
		}
	case x1 == x2:
		if y1 > y2 {
			y1, y2 = y2, y1
		}
		for y := y1; y <= y2; y++ {
			c.stroke(x1, y, runeVert, s.Color)
		}
	default:
		c.diagonal(x1, y1, x2, y2, s.Color)
	}
}

// diagonal plots a Bresenham line of dots.
func (c *Canvas) diagonal(x1, y1, x2, y2 int, fg color.RGBA) {
	dx := abs(x2 - x1)
	dy := -abs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	e := dx + dy
	for {
		c.set(x1, y1, runeDot, fg)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x1 += sx
		}
		if e2 <= dx {
			e += dx
			y1 += sy
		}
	}
}

func (c *Canvas) FillRect(r chart.Rect) {
	for y := 0; y < c.rows; y++ {
		cy := (float64(y) + 0.5) * CellHeight
		if cy < r.Y || cy >= r.Y+r.Height {
			continue
		}
		for x := 0; x < c.cols; x++ {
			cx := (float64(x) + 0.5) * CellWidth
			if cx >= r.X && cx < r.X+r.Width {
				c.set(x, y, runeFull, r.Fill)
			}
		}
	}
}

func (c *Canvas) DrawLabel(l chart.Label) {
	if l.Text == "" {
		return
	}
	left := int(math.Floor(l.X / CellWidth))
	right := int(math.Floor((l.X + l.Width) / CellWidth))
	width := right - left
	if width <= 0 {
		return
	}

	var py float64
	switch l.VAlign {
	case chart.AlignMiddle:
		py = l.Y + l.Height/2
	case chart.AlignBottom:
		py = l.Y + l.Height - 1
	default:
		py = l.Y
	}
	row := int(math.Floor(py / CellHeight))
	if row < 0 || row >= c.rows {
		return
	}

	text := runewidth.Truncate(l.Text, width, "")
	tw := runewidth.StringWidth(text)
	col := left
	switch l.HAlign {
	case chart.AlignCenter:
		col += (width - tw) / 2
	case chart.AlignRight:
		col += width - tw
	}
	for _, r := range text {
		rw := runewidth.RuneWidth(r)
		c.set(col, row, r, l.Color)
		if rw == 2 && col+1 >= 0 && col+1 < c.cols {
			c.cells[row*c.cols+col+1] = cell{fg: l.Color, set: true, wide: true}
		}
		col += rw
	}
}

// cellAt maps a surface point to the cell containing it, clamped to the grid.
func (c *Canvas) cellAt(x, y float64) (int, int) {
	cx := clamp(int(math.Floor(x/CellWidth)), 0, c.cols-1)
	cy := clamp(int(math.Floor(y/CellHeight)), 0, c.rows-1)
	return cx, cy
}

// stroke draws a line rune, turning crossing lines into a junction.
func (c *Canvas) stroke(x, y int, r rune, fg color.RGBA) {
	if x < 0 || x >= c.cols || y < 0 || y >= c.rows {
		return
	}
	prev := c.cells[y*c.cols+x]
	if prev.set && ((prev.r == runeHoriz && r == runeVert) || (prev.r == runeVert && r == runeHoriz)) {
		r = runeCross
	}
	c.set(x, y, r, fg)
}

func (c *Canvas) set(x, y int, r rune, fg color.RGBA) {
	if x < 0 || x >= c.cols || y < 0 || y >= c.rows {
		return
	}
	c.cells[y*c.cols+x] = cell{r: r, fg: fg, set: true}
}

// Rune returns the rune at a cell, or a space when the cell is empty.
func (c *Canvas) Rune(x, y int) rune {
	if x < 0 || x >= c.cols || y < 0 || y >= c.rows {
		return ' '
	}
	ce := c.cells[y*c.cols+x]
	if !ce.set || ce.wide {
		return ' '
	}
	return ce.r
}

// Lines returns the canvas rows without color.
func (c *Canvas) Lines() []string {
	lines := make([]string, c.rows)
	for y := 0; y < c.rows; y++ {
		var sb strings.Builder
		for x := 0; x < c.cols; x++ {
			ce := c.cells[y*c.cols+x]
			switch {
			case ce.wide:
			case ce.set:
				sb.WriteRune(ce.r)
			default:
				sb.WriteRune(' ')
			}
		}
		lines[y] = sb.String()
	}
	return lines
}

// String renders the canvas with each run of same-colored cells styled.
func (c *Canvas) String() string {
	lines := make([]string, c.rows)
	for y := 0; y < c.rows; y++ {
		var sb, run strings.Builder
		var runColor color.RGBA
		runSet := false
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runSet {
				sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(hexColor(runColor))).Render(run.String()))
			} else {
				sb.WriteString(run.String())
			}
			run.Reset()
		}
		for x := 0; x < c.cols; x++ {
			ce := c.cells[y*c.cols+x]
			if ce.wide {
				continue
			}
			if ce.set != runSet || (ce.set && ce.fg != runColor) {
				flush()
				runSet, runColor = ce.set, ce.fg
			}
			if ce.set {
				run.WriteRune(ce.r)
			} else {
				run.WriteRune(' ')
			}
		}
		flush()
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}

// RenderChart draws values as a chart sized width x height terminal cells,
// with title centered on the first row.
func RenderChart(values []float64, labels []string, cfg chart.Config, width, height int, title string) (string, error) {
	if width < 10 {
		width = 10
	}
	if height < 4 {
		height = 4
	}
	canvas := NewCanvas(width, height-1)
	if err := (chart.Renderer{}).Render(canvas, values, labels, cfg); err != nil {
		return "", err
	}
	return centerText(title, width) + "\n" + canvas.String(), nil
}

// centerText centers s within the given width, padding with spaces.
func centerText(s string, width int) string {
	s = runewidth.Truncate(s, width, "")
	w := runewidth.StringWidth(s)
	pad := (width - w) / 2
	return strings.Repeat(" ", pad) + s + strings.Repeat(" ", width-w-pad)
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
