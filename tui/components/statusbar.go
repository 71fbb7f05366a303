package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tonhe/graf/internal/chart"
	"github.com/tonhe/graf/tui/styles"
)

// RenderStatusBar renders the two-line footer: series summary with a
// sparkline on top, key bindings below.
func RenderStatusBar(theme styles.Theme, values []float64, steps int, grid bool, errMsg string, width int) string {
	bg := theme.Base01
	bgStyle := lipgloss.NewStyle().Background(bg)
	sep := lipgloss.NewStyle().Foreground(theme.Base03).Background(bg).Render(" | ")
	text := lipgloss.NewStyle().Foreground(theme.Base05).Background(bg)

	maxVal := 0.0
	for i, v := range values {
		if i == 0 || v > maxVal {
			maxVal = v
		}
	}
	gridStr := "ticks"
	if grid {
		gridStr = "grid"
	}

	topContent := bgStyle.Render(" ") +
		text.Render(fmt.Sprintf("n: %d", len(values))) + sep +
		text.Render(fmt.Sprintf("max: %s", chart.FormatValue(maxVal))) + sep +
		text.Render(fmt.Sprintf("steps: %d", steps)) + sep +
		text.Render(gridStr) + sep +
		lipgloss.NewStyle().Foreground(theme.Base0C).Background(bg).Render(Sparkline(values, 16))
	if errMsg != "" {
		topContent += sep + lipgloss.NewStyle().Foreground(theme.Base08).Background(bg).Render(errMsg)
	}
	topWidth := lipgloss.Width(topContent)
	if topWidth < width {
		topContent += bgStyle.Render(strings.Repeat(" ", width-topWidth))
	}

	keyStyle := lipgloss.NewStyle().Foreground(theme.Base0D).Background(bg).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(theme.Base04).Background(bg)
	spacer := bgStyle.Render("  ")

	keys := bgStyle.Render(" ") +
		keyStyle.Render("t") + descStyle.Render(":bar/line") + spacer +
		keyStyle.Render("g") + descStyle.Render(":grid") + spacer +
		keyStyle.Render("+/-") + descStyle.Render(":steps") + spacer +
		keyStyle.Render("r") + descStyle.Render(":reload") + spacer +
		keyStyle.Render("?") + descStyle.Render(":help") + spacer +
		keyStyle.Render("q") + descStyle.Render(":quit")

	keysWidth := lipgloss.Width(keys)
	if keysWidth < width {
		keys += bgStyle.Render(strings.Repeat(" ", width-keysWidth))
	}

	return lipgloss.JoinVertical(lipgloss.Left, topContent, keys)
}
