package components

import (
	"strings"
)

var blocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline renders the newest width values as one row of block runes,
// scaled from zero to the series maximum like the chart itself.
func Sparkline(data []float64, width int) string {
	if width <= 0 {
		return ""
	}
	if len(data) == 0 {
		return strings.Repeat(" ", width)
	}
	if len(data) > width {
		data = data[len(data)-width:]
	}
	max := 0.0
	for _, v := range data {
		if v > max {
			max = v
		}
	}
	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", width-len(data)))
	for _, v := range data {
		idx := 0
		if max > 0 && v > 0 {
			idx = int(v / max * float64(len(blocks)-1))
		}
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		sb.WriteRune(blocks[idx])
	}
	return sb.String()
}
