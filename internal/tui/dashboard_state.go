package tui

import (
	"github.com/chiwa-nz/pomodoro-log/internal/config"
	"github.com/chiwa-nz/pomodoro-log/internal/timer"
	"github.com/chiwa-nz/pomodoro-log/internal/util"
)

// ViewState tracks display preferences that are not part of the domain
// state: the animation toggle and the active theme name.
type ViewState struct {
	animations bool
	themeName  string
}

func newViewState(settings config.Settings) ViewState {
	name := settings.Theme
	if _, ok := Themes[name]; !ok {
		name = ThemeOrder[0]
	}
	return ViewState{
		animations: settings.Animations,
		themeName:  name,
	}
}

// DeviceListState tracks cursor and scroll position in the device panel
// plus the scanning flag driven by scan messages. The cursor indexes the
// visible (possibly name-filtered) list.
type DeviceListState struct {
	cursor   int
	scroll   int
	scanning bool
}

func newDeviceListState() DeviceListState {
	return DeviceListState{}
}

// follow clamps the cursor to the visible list and shifts the scroll
// window so the cursor stays on screen.
func (d DeviceListState) follow(count int) DeviceListState {
	if count == 0 {
		d.cursor, d.scroll = 0, 0
		return d
	}
	d.cursor = util.Clamp(d.cursor, 0, count-1)
	if d.cursor < d.scroll {
		d.scroll = d.cursor
	}
	if d.cursor >= d.scroll+config.MaxVisibleDevices {
		d.scroll = d.cursor - config.MaxVisibleDevices + 1
	}
	maxScroll := count - config.MaxVisibleDevices
	if maxScroll < 0 {
		maxScroll = 0
	}
	d.scroll = util.Clamp(d.scroll, 0, maxScroll)
	return d
}

// SessionStats accumulates completed sessions for the current process run.
// A looping wrap counts the same as a finish.
type SessionStats struct {
	Completed   int
	TotalMillis int64
}

func (s SessionStats) record(mode timer.Mode) SessionStats {
	s.Completed++
	s.TotalMillis += mode.Length
	return s
}
