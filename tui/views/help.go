package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/tonhe/graf/tui/styles"
)

// HelpView renders a modal overlay showing all keyboard shortcuts.
type HelpView struct {
	sty     *styles.Styles
	width   int
	height  int
	visible bool
}

// NewHelpView creates a new HelpView with the given theme.
func NewHelpView(theme styles.Theme) HelpView {
	return HelpView{sty: styles.NewStyles(theme)}
}

// Toggle flips the help overlay visibility.
func (v *HelpView) Toggle() {
	v.visible = !v.visible
}

// Hide closes the overlay.
func (v *HelpView) Hide() {
	v.visible = false
}

// IsVisible returns whether the help overlay is currently shown.
func (v HelpView) IsVisible() bool {
	return v.visible
}

// SetSize updates the available dimensions for the overlay.
func (v *HelpView) SetSize(width, height int) {
	v.width = width
	v.height = height
}

// View renders the help overlay as a centered modal box.
func (v HelpView) View() string {
	modalWidth := 48
	if v.width > 60 {
		modalWidth = v.width / 2
		if modalWidth > 56 {
			modalWidth = 56
		}
	}
	if modalWidth < 38 {
		modalWidth = 38
	}
	innerWidth := modalWidth - 6 // border + padding

	bindingLine := func(keys, desc string) string {
		return fmt.Sprintf("  %s  %s",
			v.sty.ModalKey.Render(padRight(keys, 12)),
			v.sty.ModalDesc.Render(desc),
		)
	}

	lines := []string{
		v.sty.ModalSection.Render("Chart"),
		bindingLine("t", "Toggle bar / line"),
		bindingLine("g", "Toggle gridlines / ticks"),
		bindingLine("+ / -", "More / fewer steps"),
		bindingLine("c", "Next color theme"),
		"",
		v.sty.ModalSection.Render("Data"),
		bindingLine("r", "Reload file / new demo data"),
		bindingLine("p", "Pause live demo"),
		bindingLine("o", "Open a saved series"),
		"",
		v.sty.ModalSection.Render("Global"),
		bindingLine("?", "Toggle this help"),
		bindingLine("q / Ctrl+C", "Quit"),
		"",
		v.sty.DimText.Render("[?] close"),
	}

	modal := v.sty.ModalBorder.
		Width(innerWidth).
		Render(strings.Join(lines, "\n"))

	// Place title into the top border
	title := v.sty.ModalTitle.Render(" Keyboard Shortcuts ")
	modalLines := strings.Split(modal, "\n")
	if len(modalLines) > 0 {
		runes := []rune(modalLines[0])
		titleRunes := []rune(title)
		insertPos := 2
		if insertPos+len(titleRunes) < len(runes) {
			combined := make([]rune, 0, len(runes))
			combined = append(combined, runes[:insertPos]...)
			combined = append(combined, titleRunes...)
			combined = append(combined, runes[insertPos+len(titleRunes):]...)
			modalLines[0] = string(combined)
		}
		modal = strings.Join(modalLines, "\n")
	}

	return lipgloss.Place(v.width, v.height, lipgloss.Center, lipgloss.Center, modal)
}

// padRight pads s with spaces to the given display width.
func padRight(s string, width int) string {
	return runewidth.FillRight(runewidth.Truncate(s, width, ""), width)
}
