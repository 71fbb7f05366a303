package views

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tonhe/graf/tui/styles"
)

func TestSwitcherRefreshAndSelect(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.toml", "b.yaml", "notes.txt"} {
		os.WriteFile(filepath.Join(dir, name), []byte("values = [1.0]\n"), 0644)
	}

	v := NewSwitcherView(styles.DefaultTheme)
	v.Refresh(dir, filepath.Join(dir, "b.yaml"))
	if len(v.items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(v.items))
	}
	if v.items[0].Current || !v.items[1].Current {
		t.Error("expected b.yaml to be marked as open")
	}

	var action SwitcherAction
	v, _, action = v.Update(tea.KeyMsg{Type: tea.KeyDown})
	if action != ActionNone || v.SelectedItem().Name != "b.yaml" {
		t.Errorf("down should move to b.yaml, got %s", v.SelectedItem().Name)
	}
	v, _, _ = v.Update(tea.KeyMsg{Type: tea.KeyDown})
	if v.SelectedItem().Name != "b.yaml" {
		t.Error("cursor should stop at the last item")
	}
	if _, _, action = v.Update(tea.KeyMsg{Type: tea.KeyEnter}); action != ActionOpen {
		t.Error("enter should open the selection")
	}
	if _, _, action = v.Update(tea.KeyMsg{Type: tea.KeyEsc}); action != ActionClose {
		t.Error("esc should close")
	}
}

func TestSwitcherMissingDir(t *testing.T) {
	v := NewSwitcherView(styles.DefaultTheme)
	v.Refresh(filepath.Join(t.TempDir(), "missing"), "")
	if v.err == nil || v.SelectedItem() != nil {
		t.Error("expected an error and no selection for a missing directory")
	}
	if _, _, action := v.Update(tea.KeyMsg{Type: tea.KeyEnter}); action != ActionNone {
		t.Error("enter with no items should do nothing")
	}
}
