package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/golang/mock/gomock"

	"github.com/chiwa-nz/pomodoro-log/internal/config"
)

func setupMainModel(t *testing.T) MainModel {
	t.Helper()
	ctrl := gomock.NewController(t)
	bt := NewMockBluetooth(ctrl)
	return NewMainModel(bt, config.DefaultSettings())
}

func TestMainModelCtrlCQuits(t *testing.T) {
	m := setupMainModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected quit message, got %T", cmd())
	}
}

func TestMainModelDelegatesResize(t *testing.T) {
	m := setupMainModel(t)
	model, _ := m.Update(tea.WindowSizeMsg{Width: 90, Height: 30})
	updated, ok := model.(MainModel)
	if !ok {
		t.Fatalf("expected MainModel, got %T", model)
	}
	if updated.width != 90 || updated.height != 30 {
		t.Fatalf("expected size recorded on the wrapper")
	}
	if updated.dashboard.width != 90 || updated.dashboard.height != 30 {
		t.Fatalf("expected size delegated to the dashboard")
	}
	if updated.View() == "" {
		t.Fatalf("expected non-empty view after resize")
	}
}

func TestMainModelSettingsRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	bt := NewMockBluetooth(ctrl)

	settings := config.Settings{
		Theme:      "dracula",
		Mode:       "Short Break",
		Looping:    true,
		Animations: false,
		NamedOnly:  true,
	}
	m := NewMainModel(bt, settings)
	if got := m.Settings(); got != settings {
		t.Fatalf("expected settings round trip, got %+v", got)
	}
}

func TestMainModelInitIsQuiet(t *testing.T) {
	m := setupMainModel(t)
	if cmd := m.Init(); cmd != nil {
		t.Fatalf("expected no startup command")
	}
}
