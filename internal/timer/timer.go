// Package timer implements the countdown state machine. State is a value
// type: every transition returns a new State, and a snapshot handed to the
// renderer is never modified afterwards.
package timer

import (
	"time"

	"github.com/chiwa-nz/pomodoro-log/internal/config"
)

// Status enumerates the states of a countdown session.
type Status string

const (
	StatusStopped  Status = "stopped"
	StatusOngoing  Status = "ongoing"
	StatusPaused   Status = "paused"
	StatusFinished Status = "finished"
)

// Mode is a named duration preset. Length is in milliseconds.
type Mode struct {
	Name   string
	Length int64
}

// Modes is the closed set of selectable presets, in cycle order.
var Modes = []Mode{
	{Name: "Focus", Length: int64(config.FocusDuration / time.Millisecond)},
	{Name: "Short Break", Length: int64(config.ShortBreakDuration / time.Millisecond)},
	{Name: "Long Break", Length: int64(config.LongBreakDuration / time.Millisecond)},
}

// DefaultMode is the preset a fresh session starts in.
func DefaultMode() Mode {
	return Modes[0]
}

// ModeByName returns the preset with the given name, or the default when
// the name is unknown.
func ModeByName(name string) Mode {
	for _, m := range Modes {
		if m.Name == name {
			return m
		}
	}
	return DefaultMode()
}

// NextMode returns the preset after m in cycle order.
func NextMode(m Mode) Mode {
	for i, candidate := range Modes {
		if candidate.Name == m.Name {
			return Modes[(i+1)%len(Modes)]
		}
	}
	return DefaultMode()
}

// State is the countdown session state.
//
// Elapsed stays in [0, Mode.Length]. Job is nonzero exactly while an
// increment loop is scheduled; tick messages carry the token that scheduled
// them, and a tick whose token no longer matches is stale and must be
// dropped by the caller.
type State struct {
	Status  Status
	Mode    Mode
	Elapsed int64
	Looping bool
	Flip    bool
	Job     int

	seq int
}

// NewState returns a stopped session in the given mode.
func NewState(mode Mode) State {
	return State{Status: StatusStopped, Mode: mode}
}

// MainPress handles the main button: start from Stopped or Finished, pause
// from Ongoing, resume from Paused. Starting clears the elapsed clock;
// resuming keeps it. Each start and resume allocates a fresh job token.
func (s State) MainPress() State {
	switch s.Status {
	case StatusStopped, StatusFinished:
		s.Status = StatusOngoing
		s.Elapsed = 0
		s.seq++
		s.Job = s.seq
	case StatusOngoing:
		s.Status = StatusPaused
		s.Job = 0
	case StatusPaused:
		s.Status = StatusOngoing
		s.seq++
		s.Job = s.seq
	}
	return s
}

// Reset returns to Stopped from any state, clearing the elapsed clock and
// the job token.
func (s State) Reset() State {
	s.Status = StatusStopped
	s.Elapsed = 0
	s.Job = 0
	return s
}

// Increment advances the elapsed clock by step milliseconds. Outside
// Ongoing it is a no-op. Reaching the mode length wraps to zero when
// looping (the session restarts silently and Flip alternates) and finishes
// otherwise, with the clock clamped to the length.
func (s State) Increment(step int64) State {
	if s.Status != StatusOngoing {
		return s
	}
	s.Elapsed += step
	if s.Elapsed >= s.Mode.Length {
		if s.Looping {
			s.Elapsed = 0
			s.Flip = !s.Flip
		} else {
			s.Elapsed = s.Mode.Length
			s.Status = StatusFinished
			s.Job = 0
		}
	}
	return s
}

// ToggleLooping flips the looping flag in any state.
func (s State) ToggleLooping() State {
	s.Looping = !s.Looping
	return s
}

// WithMode selects a preset. Honored only while Stopped or Finished; the
// session returns to Stopped with the clock cleared. Ignored mid-run so
// Elapsed can never exceed the active length.
func (s State) WithMode(m Mode) State {
	if s.Status != StatusStopped && s.Status != StatusFinished {
		return s
	}
	s.Mode = m
	s.Status = StatusStopped
	s.Elapsed = 0
	s.Job = 0
	return s
}

// Remaining returns the milliseconds left in the session. A stopped
// session has no remaining time; the countdown only exists once started.
func (s State) Remaining() int64 {
	if s.Status == StatusStopped {
		return 0
	}
	return s.Mode.Length - s.Elapsed
}

// Fraction returns elapsed progress in [0, 1].
func (s State) Fraction() float64 {
	if s.Mode.Length <= 0 {
		return 0
	}
	return float64(s.Elapsed) / float64(s.Mode.Length)
}

// Running reports whether an increment loop should be live.
func (s State) Running() bool {
	return s.Status == StatusOngoing
}
