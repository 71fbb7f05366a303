package styles

import "github.com/charmbracelet/lipgloss"

// Styles holds all themed lipgloss styles for the viewer.
type Styles struct {
	// Layout
	Body lipgloss.Style

	// Chart body messages
	ErrorText lipgloss.Style
	DimText   lipgloss.Style

	// Modal / overlay
	ModalBorder  lipgloss.Style
	ModalTitle   lipgloss.Style
	ModalSection lipgloss.Style
	ModalKey     lipgloss.Style
	ModalDesc    lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(theme Theme) *Styles {
	return &Styles{
		Body: lipgloss.NewStyle().
			Foreground(theme.Base05).
			Background(theme.Base00),

		ErrorText: lipgloss.NewStyle().
			Foreground(theme.Base08).
			Bold(true),
		DimText: lipgloss.NewStyle().
			Foreground(theme.Base04),

		ModalBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Base0D).
			BorderBackground(theme.Base00).
			Background(theme.Base00).
			Padding(1, 2),
		ModalTitle: lipgloss.NewStyle().
			Foreground(theme.Base0D).
			Bold(true),
		ModalSection: lipgloss.NewStyle().
			Foreground(theme.Base0E).
			Bold(true),
		ModalKey: lipgloss.NewStyle().
			Foreground(theme.Base0D).
			Bold(true),
		ModalDesc: lipgloss.NewStyle().
			Foreground(theme.Base05),
	}
}
