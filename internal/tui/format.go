package tui

import (
	"fmt"

	"github.com/chiwa-nz/pomodoro-log/internal/models"
	"github.com/chiwa-nz/pomodoro-log/internal/timer"
)

// FormatClock renders a millisecond count as MM:SS, or HH:MM:SS once it
// exceeds an hour.
func FormatClock(millis int64) string {
	total := millis / 1000
	if total < 0 {
		total = 0
	}
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

// FormatTimerStatus returns a human-readable status line for the timer pane.
func FormatTimerStatus(s timer.State) string {
	switch s.Status {
	case timer.StatusOngoing:
		return fmt.Sprintf("Running - %s remaining", FormatClock(s.Remaining()))
	case timer.StatusPaused:
		return fmt.Sprintf("Paused - %s remaining", FormatClock(s.Remaining()))
	case timer.StatusFinished:
		return "Finished"
	default:
		return "Ready"
	}
}

// FormatRSSI renders a signal strength reading.
func FormatRSSI(rssi int16) string {
	return fmt.Sprintf("%d dBm", rssi)
}

// FormatSessionCount formats the completed-session tally.
func FormatSessionCount(n int) string {
	if n == 1 {
		return "1 session"
	}
	return fmt.Sprintf("%d sessions", n)
}

// displayName returns the label for a device: its name, or the address
// when the advertisement carried none.
func displayName(d models.Device) string {
	if d.Named() {
		return d.Name
	}
	return d.Address
}
