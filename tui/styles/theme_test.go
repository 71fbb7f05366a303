package styles

import (
	"image/color"
	"testing"
)

func TestGetThemeByName(t *testing.T) {
	theme := GetThemeByName("solarized-dark")
	if theme == nil {
		t.Fatal("GetThemeByName('solarized-dark') returned nil")
	}
	if theme.Name != "Solarized Dark" {
		t.Errorf("expected name 'Solarized Dark', got %q", theme.Name)
	}
}

func TestGetThemeByNameMissing(t *testing.T) {
	theme := GetThemeByName("nonexistent")
	if theme != nil {
		t.Error("expected nil for nonexistent theme")
	}
}

func TestListThemesSorted(t *testing.T) {
	themes := ListThemes()
	if len(themes) != GetThemeCount() {
		t.Errorf("expected %d themes, got %d", GetThemeCount(), len(themes))
	}
	for i := 1; i < len(themes); i++ {
		if themes[i-1] > themes[i] {
			t.Errorf("themes not sorted: %q before %q", themes[i-1], themes[i])
		}
	}
}

func TestGetThemeByIndex(t *testing.T) {
	theme := GetThemeByIndex(0)
	if theme == nil {
		t.Fatal("GetThemeByIndex(0) returned nil")
	}
	if GetThemeByIndex(-1) != nil || GetThemeByIndex(GetThemeCount()) != nil {
		t.Error("expected nil for out of range index")
	}
	if idx := GetThemeIndex("nord"); GetThemeByIndex(idx).Name != "Nord" {
		t.Errorf("index lookup mismatch for nord")
	}
}

func TestSuggestThemes(t *testing.T) {
	got := SuggestThemes("solar")
	if len(got) == 0 {
		t.Fatal("expected suggestions for 'solar'")
	}
	for _, s := range got {
		if s != "solarized-dark" && s != "solarized-light" {
			t.Errorf("unexpected suggestion %q", s)
		}
	}
	if got := SuggestThemes("zzzz"); len(got) != 0 {
		t.Errorf("expected no suggestions, got %v", got)
	}
}

func TestChartColors(t *testing.T) {
	axis, data := Themes["solarized-dark"].ChartColors()
	if axis != (color.RGBA{0x93, 0xa1, 0xa1, 255}) {
		t.Errorf("unexpected axis color %+v", axis)
	}
	if data != (color.RGBA{0x26, 0x8b, 0xd2, 255}) {
		t.Errorf("unexpected data color %+v", data)
	}
}

func TestNextTheme(t *testing.T) {
	first := GetThemeByIndex(0)
	if first == nil {
		t.Fatal("no themes")
	}
	last := sortedSlugs[GetThemeCount()-1]
	if got := NextTheme(last); got != sortedSlugs[0] {
		t.Errorf("NextTheme(%q) = %q, expected wrap to %q", last, got, sortedSlugs[0])
	}
	if got := NextTheme("no-such-theme"); got != sortedSlugs[0] {
		t.Errorf("unknown slug should start at the first theme, got %q", got)
	}
	if got := NextTheme(sortedSlugs[0]); got != sortedSlugs[1] {
		t.Errorf("expected %q, got %q", sortedSlugs[1], got)
	}
}
