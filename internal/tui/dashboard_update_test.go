package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/golang/mock/gomock"

	"github.com/chiwa-nz/pomodoro-log/internal/bluetooth"
	"github.com/chiwa-nz/pomodoro-log/internal/config"
	"github.com/chiwa-nz/pomodoro-log/internal/models"
)

func setupTestDashboard(t *testing.T) (DashboardModel, *MockBluetooth) {
	t.Helper()
	ctrl := gomock.NewController(t)
	bt := NewMockBluetooth(ctrl)
	m := NewDashboardModel(bt, config.DefaultSettings())
	m.width = 100
	m.height = 32
	return m, bt
}

func pressKey(t *testing.T, m DashboardModel, key string) (DashboardModel, tea.Cmd) {
	t.Helper()
	var msg tea.KeyMsg
	switch key {
	case " ":
		msg = tea.KeyMsg{Type: tea.KeySpace}
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	model, cmd := m.Update(msg)
	updated, ok := model.(DashboardModel)
	if !ok {
		t.Fatalf("expected DashboardModel, got %T", model)
	}
	return updated, cmd
}

func applyMsg(t *testing.T, m DashboardModel, msg tea.Msg) (DashboardModel, tea.Cmd) {
	t.Helper()
	model, cmd := m.Update(msg)
	updated, ok := model.(DashboardModel)
	if !ok {
		t.Fatalf("expected DashboardModel, got %T", model)
	}
	return updated, cmd
}

func TestUpdateReadyMarksInitialized(t *testing.T) {
	m, _ := setupTestDashboard(t)
	m, _ = applyMsg(t, m, bluetooth.ReadyMsg{})
	if !m.bluetooth.Initialized {
		t.Fatalf("expected initialized after ready message")
	}
	if m.bluetooth.Status != "Bluetooth ready" {
		t.Fatalf("unexpected status %q", m.bluetooth.Status)
	}
}

func TestUpdateScanLifecycle(t *testing.T) {
	m, _ := setupTestDashboard(t)
	m, cmd := applyMsg(t, m, bluetooth.ScanStartedMsg{})
	if !m.devices.scanning {
		t.Fatalf("expected scanning after scan start")
	}
	if cmd == nil {
		t.Fatalf("expected spinner tick command")
	}
	m, _ = applyMsg(t, m, bluetooth.DeviceFoundMsg{Device: models.Device{Name: "micro:bit", Address: "AA:11", RSSI: -40}})
	m, _ = applyMsg(t, m, bluetooth.ScanFinishedMsg{})
	if m.devices.scanning {
		t.Fatalf("expected scanning cleared after scan finish")
	}
	if m.bluetooth.Status != "Scan finished: 1 found" {
		t.Fatalf("unexpected status %q", m.bluetooth.Status)
	}
}

func TestUpdateDeviceFoundDeduplicates(t *testing.T) {
	m, _ := setupTestDashboard(t)
	m, _ = applyMsg(t, m, bluetooth.DeviceFoundMsg{Device: models.Device{Name: "micro:bit", Address: "AA:11", RSSI: -40}})
	m, _ = applyMsg(t, m, bluetooth.DeviceFoundMsg{Device: models.Device{Name: "impostor", Address: "AA:11", RSSI: -70}})
	if len(m.bluetooth.Devices) != 1 {
		t.Fatalf("expected 1 device, got %d", len(m.bluetooth.Devices))
	}
	if m.bluetooth.Devices[0].Name != "micro:bit" {
		t.Fatalf("first sighting should win, got %q", m.bluetooth.Devices[0].Name)
	}
}

func TestUpdateConnectedAndDisconnected(t *testing.T) {
	m, _ := setupTestDashboard(t)
	d := models.Device{Name: "micro:bit", Address: "AA:11", RSSI: -40}
	m, _ = applyMsg(t, m, bluetooth.ConnectedMsg{Device: d})
	if m.bluetooth.Connected == nil || m.bluetooth.Connected.Address != "AA:11" {
		t.Fatalf("expected connected device recorded")
	}
	if !strings.Contains(m.bluetooth.Status, "micro:bit") {
		t.Fatalf("expected device name in status, got %q", m.bluetooth.Status)
	}
	m, _ = applyMsg(t, m, bluetooth.DisconnectedMsg{})
	if m.bluetooth.Connected != nil {
		t.Fatalf("expected connection cleared")
	}
	if m.bluetooth.Status != "Accessory disconnected" {
		t.Fatalf("unexpected status %q", m.bluetooth.Status)
	}
}

func TestUpdateErrorMessageGoesToStatus(t *testing.T) {
	m, _ := setupTestDashboard(t)
	m, _ = applyMsg(t, m, bluetooth.ErrorMsg{Op: "scanning", Err: errors.New("radio off")})
	if m.bluetooth.Status != "Error scanning: radio off" {
		t.Fatalf("unexpected status %q", m.bluetooth.Status)
	}
}

func TestUpdateKeypressClearsTransientMessage(t *testing.T) {
	m, _ := setupTestDashboard(t)
	m.Message = "Report saved: somewhere"
	m.messageIsError = true
	before := m.timer
	m, _ = pressKey(t, m, " ")
	if m.Message != "" {
		t.Fatalf("expected message cleared, got %q", m.Message)
	}
	if m.messageIsError {
		t.Fatalf("expected error flag cleared")
	}
	// The keypress that dismisses a message is not also an action
	if m.timer.Status != before.Status {
		t.Fatalf("expected timer untouched, got %v", m.timer.Status)
	}
}

func TestUpdateSpinnerTickIgnoredWhenNotScanning(t *testing.T) {
	m, _ := setupTestDashboard(t)
	_, cmd := applyMsg(t, m, m.spinner.Tick())
	if cmd != nil {
		t.Fatalf("expected spinner tick dropped while idle")
	}
}

func TestUpdateWindowSizeNarrowShrinksProgress(t *testing.T) {
	m, _ := setupTestDashboard(t)
	m, _ = applyMsg(t, m, tea.WindowSizeMsg{Width: 40, Height: 20})
	if m.width != 40 || m.height != 20 {
		t.Fatalf("expected window size recorded")
	}
	if m.progress.Width != 20 {
		t.Fatalf("expected progress width 20, got %d", m.progress.Width)
	}
	m, _ = applyMsg(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.progress.Width != config.ProgressBarWidth {
		t.Fatalf("expected default progress width, got %d", m.progress.Width)
	}
}
