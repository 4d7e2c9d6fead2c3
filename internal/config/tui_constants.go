package config

// Layout constants.
const (
	// MinPaneWidth is the minimum width for the timer and device panes.
	MinPaneWidth = 26

	// CompactModeThreshold triggers stacked rendering below this width.
	CompactModeThreshold = 64

	// ProgressBarWidth is the default countdown bar width.
	ProgressBarWidth = 30
)

// Display limits.
const (
	// MaxVisibleDevices limits devices shown in the panel before scrolling.
	MaxVisibleDevices = 8

	// MaxDeviceNameWidth limits device names before truncation.
	MaxDeviceNameWidth = 24

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "..."
)
