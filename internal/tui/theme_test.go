package tui

import "testing"

func TestThemeNamedFallsBackToDefault(t *testing.T) {
	if got := themeNamed("nope"); got.Name != "Default" {
		t.Fatalf("expected default fallback, got %q", got.Name)
	}
	if got := themeNamed("dracula"); got.Name != "Dracula" {
		t.Fatalf("expected dracula, got %q", got.Name)
	}
}

func TestNextThemeNameCycles(t *testing.T) {
	name := ThemeOrder[0]
	seen := map[string]bool{name: true}
	for i := 1; i < len(ThemeOrder); i++ {
		name = nextThemeName(name)
		if seen[name] {
			t.Fatalf("cycle revisited %q early", name)
		}
		seen[name] = true
	}
	if got := nextThemeName(name); got != ThemeOrder[0] {
		t.Fatalf("expected cycle to wrap to %q, got %q", ThemeOrder[0], got)
	}
	if got := nextThemeName("bogus"); got != ThemeOrder[0] {
		t.Fatalf("expected unknown name to restart the cycle, got %q", got)
	}
}

func TestThemeKeySwitchesTheme(t *testing.T) {
	m, _ := setupTestDashboard(t)
	m, _, _ = m.handleThemeKey("t")
	if m.view.themeName != "dracula" {
		t.Fatalf("expected dracula after one cycle, got %q", m.view.themeName)
	}
	if m.theme.Name != "Dracula" {
		t.Fatalf("expected active theme swapped, got %q", m.theme.Name)
	}
	if m.Message != "Theme: dracula" {
		t.Fatalf("unexpected message %q", m.Message)
	}
}
