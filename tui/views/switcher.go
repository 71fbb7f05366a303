package views

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/tonhe/graf/internal/series"
	"github.com/tonhe/graf/tui/keys"
	"github.com/tonhe/graf/tui/styles"
)

// SwitcherAction describes what the app should do after a switcher key press.
type SwitcherAction int

const (
	// ActionNone means no action needed.
	ActionNone SwitcherAction = iota
	// ActionClose means the user wants to dismiss the switcher.
	ActionClose
	// ActionOpen means the user selected a series to open.
	ActionOpen
)

// SwitcherItem is one saved series file.
type SwitcherItem struct {
	Name    string
	Path    string
	Current bool
}

// SwitcherView is a modal overlay listing the saved series files.
type SwitcherView struct {
	theme  styles.Theme
	sty    *styles.Styles
	items  []SwitcherItem
	err    error
	cursor int
	width  int
	height int
}

// NewSwitcherView creates a new SwitcherView with the given theme.
func NewSwitcherView(theme styles.Theme) SwitcherView {
	return SwitcherView{
		theme: theme,
		sty:   styles.NewStyles(theme),
	}
}

// Refresh rescans dir, marking current as the open file.
func (v *SwitcherView) Refresh(dir, current string) {
	v.items = nil
	v.err = nil

	names, err := series.List(dir)
	if err != nil {
		v.err = err
		return
	}

	currentAbs, _ := filepath.Abs(current)
	for _, name := range names {
		path := filepath.Join(dir, name)
		abs, _ := filepath.Abs(path)
		v.items = append(v.items, SwitcherItem{
			Name:    name,
			Path:    path,
			Current: current != "" && abs == currentAbs,
		})
	}

	if v.cursor >= len(v.items) {
		v.cursor = len(v.items) - 1
	}
	if v.cursor < 0 {
		v.cursor = 0
	}
}

// SetSize updates the available dimensions for the overlay.
func (v *SwitcherView) SetSize(width, height int) {
	v.width = width
	v.height = height
}

// SelectedItem returns the currently highlighted item, or nil if the list is
// empty.
func (v *SwitcherView) SelectedItem() *SwitcherItem {
	if len(v.items) == 0 {
		return nil
	}
	return &v.items[v.cursor]
}

// Update handles key messages for the switcher overlay.
func (v SwitcherView) Update(msg tea.Msg) (SwitcherView, tea.Cmd, SwitcherAction) {
	msgKey, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil, ActionNone
	}
	km := keys.DefaultKeyMap
	switch {
	case key.Matches(msgKey, km.Escape), key.Matches(msgKey, km.Open):
		return v, nil, ActionClose
	case key.Matches(msgKey, km.Up):
		if v.cursor > 0 {
			v.cursor--
		}
	case key.Matches(msgKey, km.Down):
		if v.cursor < len(v.items)-1 {
			v.cursor++
		}
	case key.Matches(msgKey, km.Enter):
		if len(v.items) > 0 {
			return v, nil, ActionOpen
		}
	}
	return v, nil, ActionNone
}

// View renders the switcher as a centered modal box.
func (v SwitcherView) View() string {
	modalWidth := 44
	if v.width > 60 {
		modalWidth = v.width / 2
		if modalWidth > 60 {
			modalWidth = 60
		}
	}
	if modalWidth < 30 {
		modalWidth = 30
	}
	innerWidth := modalWidth - 6 // border + padding

	var lines []string
	switch {
	case v.err != nil:
		lines = append(lines, v.sty.ErrorText.Render(runewidth.Truncate(v.err.Error(), innerWidth, "…")))
	case len(v.items) == 0:
		lines = append(lines, v.sty.DimText.Render("No saved series."))
		lines = append(lines, "")
		lines = append(lines, v.sty.DimText.Render("Create one with 'graf demo NAME.toml'."))
	default:
		for i, item := range v.items {
			lines = append(lines, v.renderItem(item, i == v.cursor, innerWidth))
		}
	}

	helpKeyStyle := lipgloss.NewStyle().Foreground(v.theme.Base0D).Bold(true)
	help := fmt.Sprintf("%s:open  %s:close",
		helpKeyStyle.Render("enter"),
		helpKeyStyle.Render("esc"),
	)

	content := lipgloss.JoinVertical(lipgloss.Left,
		strings.Join(lines, "\n"),
		"",
		v.sty.DimText.Render(help),
	)

	// Render modal body without a top border
	modalBody := v.sty.ModalBorder.BorderTop(false).Width(innerWidth).Render(content)

	// Build top border manually with embedded title
	borderFg := lipgloss.NewStyle().Foreground(v.theme.Base0D).Background(v.theme.Base00)
	titleText := " Series "
	fullWidth := lipgloss.Width(modalBody)
	rightDashes := fullWidth - 2 - 1 - len(titleText) // corners(2) + one dash + title
	if rightDashes < 0 {
		rightDashes = 0
	}
	topBorder := borderFg.Render("╭─") + v.sty.ModalTitle.Render(titleText) + borderFg.Render(strings.Repeat("─", rightDashes)+"╮")

	return lipgloss.Place(v.width, v.height, lipgloss.Center, lipgloss.Center, topBorder+"\n"+modalBody)
}

// renderItem renders a single series line, flagging the open file.
func (v SwitcherView) renderItem(item SwitcherItem, selected bool, width int) string {
	cursor := "  "
	if selected {
		cursor = "> "
	}
	cursorStyle := lipgloss.NewStyle().Foreground(v.theme.Base0D).Bold(true)

	nameStyle := lipgloss.NewStyle().Foreground(v.theme.Base05)
	if selected {
		nameStyle = nameStyle.Foreground(v.theme.Base06).Bold(true)
	}

	status := ""
	if item.Current {
		status = "* open"
	}
	name := runewidth.Truncate(item.Name, width-len(cursor)-len(status)-2, "…")
	padLen := width - len(cursor) - runewidth.StringWidth(name) - len(status)
	if padLen < 2 {
		padLen = 2
	}

	line := cursorStyle.Render(cursor) + nameStyle.Render(name)
	if status != "" {
		line += strings.Repeat(" ", padLen) + lipgloss.NewStyle().Foreground(v.theme.Base0B).Render(status)
	}
	return line
}
