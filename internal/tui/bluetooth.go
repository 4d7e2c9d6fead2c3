package tui

import (
	"time"

	"github.com/chiwa-nz/pomodoro-log/internal/bluetooth"
)

//go:generate mockgen -source=bluetooth.go -destination=mock_bluetooth_test.go -package=tui

// Bluetooth defines the accessory operations the TUI requires. The real
// implementation is bluetooth.Manager; unsolicited events (sightings,
// button presses, drops) arrive separately as messages through the
// program's sink.
type Bluetooth interface {
	// Init enables the radio. Idempotent.
	Init() error

	// StartScan begins a discovery scan that auto-stops after window.
	StartScan(window time.Duration) error

	// CancelScan ends a running scan early.
	CancelScan()

	// Connect dials the accessory at address and subscribes to its button
	// characteristic. Blocking; run inside a tea command.
	Connect(address string) error

	// Disconnect closes the live connection, if any.
	Disconnect() error
}

var _ Bluetooth = (*bluetooth.Manager)(nil)
