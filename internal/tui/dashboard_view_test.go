package tui

import (
	"strings"
	"testing"

	"github.com/chiwa-nz/pomodoro-log/internal/bluetooth"
	"github.com/chiwa-nz/pomodoro-log/internal/config"
	"github.com/chiwa-nz/pomodoro-log/internal/models"
	"github.com/chiwa-nz/pomodoro-log/internal/testutil"
)

func TestViewBeforeFirstResize(t *testing.T) {
	m, _ := setupTestDashboard(t)
	m.width = 0
	if got := m.View(); got != "Initializing..." {
		t.Fatalf("expected placeholder before first resize, got %q", got)
	}
}

func TestViewShowsTimerAndDevicePanes(t *testing.T) {
	m, _ := setupTestDashboard(t)
	out := m.View()
	if !strings.Contains(out, "FOCUS") {
		t.Fatalf("expected mode title in view")
	}
	if !strings.Contains(out, "00:00") {
		t.Fatalf("expected stopped clock in view")
	}
	if !strings.Contains(out, "Ready") {
		t.Fatalf("expected timer status in view")
	}
	if !strings.Contains(out, "Accessories") {
		t.Fatalf("expected device pane title in view")
	}
	if !strings.Contains(out, "(none found)") {
		t.Fatalf("expected empty device list placeholder")
	}
}

func TestViewListsDiscoveredDevices(t *testing.T) {
	m, _ := setupTestDashboard(t)
	m, _ = applyMsg(t, m, bluetooth.DeviceFoundMsg{Device: models.Device{Name: "micro:bit", Address: "AA:11", RSSI: -42}})
	out := m.View()
	if !strings.Contains(out, "micro:bit") {
		t.Fatalf("expected device name in view")
	}
	if !strings.Contains(out, "-42 dBm") {
		t.Fatalf("expected signal strength in view")
	}
}

func TestViewRunningClockShowsRemaining(t *testing.T) {
	m, _ := setupTestDashboard(t)
	m, _ = pressKey(t, m, " ")
	out := m.View()
	if !strings.Contains(out, "25:00") {
		t.Fatalf("expected full focus countdown in view")
	}
	if !strings.Contains(out, "Running") {
		t.Fatalf("expected running status in view")
	}
}

func TestViewClampedToWindowHeight(t *testing.T) {
	m, _ := setupTestDashboard(t)
	m.height = 10
	out := m.View()
	body := strings.TrimPrefix(out, "\x1b[H\x1b[2J")
	if got := len(strings.Split(body, "\n")); got != 10 {
		t.Fatalf("expected 10 lines, got %d", got)
	}
}

func TestViewCompactLayoutStacksPanes(t *testing.T) {
	m, _ := setupTestDashboard(t)
	m.width = 40
	out := m.View()
	if !strings.Contains(out, "FOCUS") || !strings.Contains(out, "Accessories") {
		t.Fatalf("expected both panes in compact layout")
	}
}

func TestViewScrollsLongDeviceLists(t *testing.T) {
	m, _ := setupTestDashboard(t)
	m.height = 60
	for _, d := range testutil.Fleet(config.MaxVisibleDevices + 3) {
		m, _ = applyMsg(t, m, bluetooth.DeviceFoundMsg{Device: d})
	}
	for i := 0; i < config.MaxVisibleDevices+2; i++ {
		m, _ = pressKey(t, m, "j")
	}
	out := m.View()
	if !strings.Contains(out, "accessory-10") {
		t.Fatalf("expected the cursor device visible after scrolling")
	}
	if strings.Contains(out, "accessory-0 ") {
		t.Fatalf("expected the first device scrolled out of the window")
	}
	if !strings.Contains(out, "  ...") {
		t.Fatalf("expected a scroll marker above the window")
	}
}

func TestViewMarksConnectedDevice(t *testing.T) {
	m, _ := setupTestDashboard(t)
	d := testutil.NewDevice().Build()
	m, _ = applyMsg(t, m, bluetooth.DeviceFoundMsg{Device: d})
	m, _ = applyMsg(t, m, bluetooth.ConnectedMsg{Device: d})
	out := m.View()
	if !strings.Contains(out, "●") {
		t.Fatalf("expected connected marker in device list")
	}
}

func TestViewNamedOnlyHidesUnnamedDevices(t *testing.T) {
	m, _ := setupTestDashboard(t)
	named := testutil.NewDevice().Build()
	ghost := testutil.NewDevice().Unnamed().WithAddress("DE:AD:00:00:00:01").WithRSSI(-70).Build()
	m, _ = applyMsg(t, m, bluetooth.DeviceFoundMsg{Device: named})
	m, _ = applyMsg(t, m, bluetooth.DeviceFoundMsg{Device: ghost})

	out := m.View()
	if !strings.Contains(out, "DE:AD:00:00:00:01") {
		t.Fatalf("expected the unnamed device listed by address")
	}

	m, _ = pressKey(t, m, "n")
	out = m.View()
	if strings.Contains(out, "DE:AD:00:00:00:01") {
		t.Fatalf("expected the unnamed device hidden by the filter")
	}
	if !strings.Contains(out, "(named)") {
		t.Fatalf("expected the filter reflected in the pane title")
	}
}
