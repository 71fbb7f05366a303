package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tonhe/graf/tui/styles"
)

// RenderHeader renders the top bar with the app name, series title, chart
// kind and a LIVE/WATCH/STATIC mode badge.
func RenderHeader(theme styles.Theme, title, kind, mode string, width int, ver string) string {
	bg := lipgloss.NewStyle().Background(theme.Base01)
	sep := lipgloss.NewStyle().Foreground(theme.Base03).Background(theme.Base01).Render("  |  ")

	left := lipgloss.NewStyle().
		Foreground(theme.Base0D).
		Background(theme.Base01).
		Bold(true).
		Render("graf")

	if title == "" {
		title = "(untitled)"
	}
	center := lipgloss.NewStyle().
		Foreground(theme.Base05).
		Background(theme.Base01).
		Render(title)

	kindSeg := lipgloss.NewStyle().
		Foreground(theme.Base0E).
		Background(theme.Base01).
		Render(kind)

	modeColor := theme.Base04
	switch mode {
	case "LIVE":
		modeColor = theme.Base0B
	case "WATCH":
		modeColor = theme.Base0A
	case "PAUSED":
		modeColor = theme.Base08
	}
	modeSeg := lipgloss.NewStyle().
		Foreground(modeColor).
		Background(theme.Base01).
		Render(mode)

	versionSeg := lipgloss.NewStyle().
		Foreground(theme.Base04).
		Background(theme.Base01).
		Render("v" + ver)

	content := bg.Render(" ") + left + sep + center + sep + kindSeg + sep + modeSeg + sep + versionSeg + bg.Render(" ")

	return bg.Width(width).Render(content)
}
