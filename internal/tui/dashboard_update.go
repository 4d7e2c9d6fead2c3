package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/chiwa-nz/pomodoro-log/internal/bluetooth"
)

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Clear transient messages on keypress
	if m.Message != "" {
		if _, ok := msg.(tea.KeyMsg); ok {
			m.Message = ""
			m.messageIsError = false
			return m, nil
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case TickMsg:
		return m.handleTick(msg)

	case spinner.TickMsg:
		if !m.devices.scanning {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case bluetooth.ReadyMsg:
		m.bluetooth = m.bluetooth.WithInitialized().WithStatus("Bluetooth ready")
		return m, nil

	case bluetooth.ScanStartedMsg:
		m.devices.scanning = true
		m.bluetooth = m.bluetooth.WithStatus("Scanning for accessories...")
		return m, m.spinner.Tick

	case bluetooth.DeviceFoundMsg:
		m.bluetooth = m.bluetooth.WithDevice(msg.Device)
		return m, nil

	case bluetooth.ScanFinishedMsg:
		m.devices.scanning = false
		m.bluetooth = m.bluetooth.WithStatus(fmt.Sprintf("Scan finished: %d found", len(m.bluetooth.Devices)))
		return m, nil

	case bluetooth.ConnectedMsg:
		m.bluetooth = m.bluetooth.WithConnected(msg.Device).WithStatus("Connected to " + displayName(msg.Device))
		return m, nil

	case bluetooth.DisconnectedMsg:
		m.bluetooth = m.bluetooth.WithoutConnected().WithStatus("Accessory disconnected")
		return m, nil

	case bluetooth.ButtonMsg:
		return m.dispatchButton(msg.Code)

	case bluetooth.ErrorMsg:
		m.bluetooth = m.bluetooth.WithStatus(fmt.Sprintf("Error %s: %v", msg.Op, msg.Err))
		return m, nil

	case tea.KeyMsg:
		return m.handleNormalMode(msg)
	}

	return m, nil
}
