package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/chiwa-nz/pomodoro-log/internal/bluetooth"
	"github.com/chiwa-nz/pomodoro-log/internal/config"
	"github.com/chiwa-nz/pomodoro-log/internal/models"
)

// TickMsg advances the countdown. Job is the token of the increment loop
// that scheduled it; a tick whose token no longer matches the timer's live
// token is stale and dropped.
type TickMsg struct {
	Job  int
	When time.Time
}

func tickCmd(job int) tea.Cmd {
	return tea.Tick(config.TimerTick, func(t time.Time) tea.Msg {
		return TickMsg{Job: job, When: t}
	})
}

func (m DashboardModel) initCmd() tea.Cmd {
	bt := m.bt
	return func() tea.Msg {
		if err := bt.Init(); err != nil {
			return bluetooth.ErrorMsg{Op: "initializing", Err: err}
		}
		return bluetooth.ReadyMsg{}
	}
}

func (m DashboardModel) scanCmd() tea.Cmd {
	bt := m.bt
	return func() tea.Msg {
		if err := bt.StartScan(config.ScanWindow); err != nil {
			return bluetooth.ErrorMsg{Op: "scanning", Err: err}
		}
		return bluetooth.ScanStartedMsg{}
	}
}

func (m DashboardModel) connectCmd(device models.Device) tea.Cmd {
	bt := m.bt
	return func() tea.Msg {
		if err := bt.Connect(device.Address); err != nil {
			return bluetooth.ErrorMsg{Op: "connecting", Err: err}
		}
		return bluetooth.ConnectedMsg{Device: device}
	}
}

func (m DashboardModel) disconnectCmd() tea.Cmd {
	bt := m.bt
	return func() tea.Msg {
		if err := bt.Disconnect(); err != nil {
			return bluetooth.ErrorMsg{Op: "disconnecting", Err: err}
		}
		return bluetooth.DisconnectedMsg{}
	}
}
