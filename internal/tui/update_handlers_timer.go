package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/chiwa-nz/pomodoro-log/internal/timer"
)

// handleMainKey is the multi-function action: start, pause or resume
// depending on where the timer currently sits.
func (m DashboardModel) handleMainKey(key string) (DashboardModel, tea.Cmd, bool) {
	prev := m.timer
	m.timer = m.timer.MainPress()
	if m.timer.Running() && m.timer.Job != prev.Job {
		return m, tickCmd(m.timer.Job), true
	}
	return m, nil, true
}

func (m DashboardModel) handleResetKey(key string) (DashboardModel, tea.Cmd, bool) {
	m.timer = m.timer.Reset()
	return m, nil, true
}

func (m DashboardModel) handleModeKey(key string) (DashboardModel, tea.Cmd, bool) {
	if m.timer.Status == timer.StatusOngoing || m.timer.Status == timer.StatusPaused {
		m.setStatus("Stop the timer to change the mode.")
		return m, nil, true
	}
	m.timer = m.timer.WithMode(timer.NextMode(m.timer.Mode))
	m.setStatus("Mode: " + m.timer.Mode.Name)
	return m, nil, true
}

func (m DashboardModel) handleLoopingKey(key string) (DashboardModel, tea.Cmd, bool) {
	m.timer = m.timer.ToggleLooping()
	if m.timer.Looping {
		m.setStatus("Looping on")
	} else {
		m.setStatus("Looping off")
	}
	return m, nil, true
}

func (m DashboardModel) handleAnimationsKey(key string) (DashboardModel, tea.Cmd, bool) {
	m.view.animations = !m.view.animations
	return m, nil, true
}
