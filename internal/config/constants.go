package config

import "time"

// Timer mode lengths.
const (
	FocusDuration      = 25 * time.Minute
	ShortBreakDuration = 5 * time.Minute
	LongBreakDuration  = 15 * time.Minute
)

// Timer cadence.
const (
	// TimerTick is the delay between increment actions while the timer runs.
	TimerTick = 10 * time.Millisecond

	// TimerStepMillis is how many elapsed milliseconds one increment adds.
	TimerStepMillis = int64(TimerTick / time.Millisecond)
)

// Bluetooth timing.
const (
	// ScanWindow is how long a discovery scan runs before auto-stopping.
	ScanWindow = 5000 * time.Millisecond

	// ConnectTimeout bounds a single connection attempt.
	ConnectTimeout = 15 * time.Second
)

// Application settings.
const (
	AppName          = "pomodoro-log"
	SettingsFileName = "settings.yaml"
	ReportFilePrefix = "pomodoro-report"
)
