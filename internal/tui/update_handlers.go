package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/chiwa-nz/pomodoro-log/internal/bluetooth"
	"github.com/chiwa-nz/pomodoro-log/internal/config"
	"github.com/chiwa-nz/pomodoro-log/internal/timer"
	"github.com/chiwa-nz/pomodoro-log/internal/util"
)

func (m DashboardModel) handleWindowSize(msg tea.WindowSizeMsg) (DashboardModel, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height
	if m.width > 0 {
		target := config.ProgressBarWidth
		if m.width < config.CompactModeThreshold {
			target = m.width / 2
		}
		m.progress.Width = util.Clamp(target, 10, config.ProgressBarWidth)
	}
	return m, nil
}

func (m DashboardModel) handleTick(msg TickMsg) (DashboardModel, tea.Cmd) {
	if msg.Job == 0 || msg.Job != m.timer.Job {
		return m, nil
	}
	prev := m.timer
	m.timer = m.timer.Increment(config.TimerStepMillis)
	if m.timer.Status == timer.StatusFinished {
		m.stats = m.stats.record(prev.Mode)
		m.setStatus("Session complete")
		return m, nil
	}
	if m.timer.Flip != prev.Flip {
		m.stats = m.stats.record(prev.Mode)
	}
	return m, tickCmd(m.timer.Job)
}

func (m DashboardModel) handleNormalMode(msg tea.KeyMsg) (DashboardModel, tea.Cmd) {
	key := msg.String()
	if next, cmd, handled := m.keys.Handle(m, key); handled {
		return next, cmd
	}
	switch key {
	case "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

// dispatchButton routes an accessory notification byte to the same
// handlers the keyboard uses. Byte 0 is a release and everything outside
// the known codes is silently ignored.
func (m DashboardModel) dispatchButton(code byte) (DashboardModel, tea.Cmd) {
	switch code {
	case bluetooth.ButtonMain:
		next, cmd, _ := m.handleMainKey("")
		return next, cmd
	case bluetooth.ButtonReset:
		next, cmd, _ := m.handleResetKey("")
		return next, cmd
	case bluetooth.ButtonLooping:
		next, cmd, _ := m.handleLoopingKey("")
		return next, cmd
	case bluetooth.ButtonAnimation:
		next, cmd, _ := m.handleAnimationsKey("")
		return next, cmd
	}
	return m, nil
}

func (m DashboardModel) handleReportKey(key string) (DashboardModel, tea.Cmd, bool) {
	path, err := WriteSessionReport(util.ReportsDir(config.AppName), m.sessionReport())
	if err != nil {
		m.setStatusError(fmt.Sprintf("Report failed: %v", err))
		return m, nil, true
	}
	m.setStatus("Report saved: " + path)
	return m, nil, true
}

func (m DashboardModel) handleThemeKey(key string) (DashboardModel, tea.Cmd, bool) {
	m.view.themeName = nextThemeName(m.view.themeName)
	m.theme = themeNamed(m.view.themeName)
	m.spinner.Style = m.theme.Focused
	m.setStatus("Theme: " + m.view.themeName)
	return m, nil, true
}

func (m DashboardModel) handleQuitKey(key string) (DashboardModel, tea.Cmd, bool) {
	return m, tea.Quit, true
}
