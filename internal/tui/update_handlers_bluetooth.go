package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m DashboardModel) handleInitKey(key string) (DashboardModel, tea.Cmd, bool) {
	if m.bluetooth.Initialized {
		m.bluetooth = m.bluetooth.WithStatus("Bluetooth already initialized")
		return m, nil, true
	}
	m.bluetooth = m.bluetooth.WithStatus("Initializing bluetooth...")
	return m, m.initCmd(), true
}

// handleScanKey starts a discovery window, or cancels the one in flight.
func (m DashboardModel) handleScanKey(key string) (DashboardModel, tea.Cmd, bool) {
	if !m.bluetooth.Initialized {
		m.bluetooth = m.bluetooth.WithStatus("Bluetooth not initialized. Press i first.")
		return m, nil, true
	}
	if m.devices.scanning {
		m.bt.CancelScan()
		m.bluetooth = m.bluetooth.WithStatus("Stopping scan...")
		return m, nil, true
	}
	return m, m.scanCmd(), true
}

func (m DashboardModel) handleConnectKey(key string) (DashboardModel, tea.Cmd, bool) {
	if m.bluetooth.Connected != nil {
		m.bluetooth = m.bluetooth.WithStatus("Already connected to " + displayName(*m.bluetooth.Connected))
		return m, nil, true
	}
	device, ok := m.selectedDevice()
	if !ok {
		m.bluetooth = m.bluetooth.WithStatus("No device selected. Scan first.")
		return m, nil, true
	}
	m.bluetooth = m.bluetooth.WithStatus("Connecting to " + displayName(device) + "...")
	return m, m.connectCmd(device), true
}

func (m DashboardModel) handleDisconnectKey(key string) (DashboardModel, tea.Cmd, bool) {
	if m.bluetooth.Connected == nil {
		m.bluetooth = m.bluetooth.WithStatus("No accessory connected")
		return m, nil, true
	}
	m.bluetooth = m.bluetooth.WithStatus("Disconnecting...")
	return m, m.disconnectCmd(), true
}

func (m DashboardModel) handleNamedOnlyKey(key string) (DashboardModel, tea.Cmd, bool) {
	m.bluetooth = m.bluetooth.ToggleNamedOnly()
	m.devices = m.devices.follow(len(m.bluetooth.Visible()))
	return m, nil, true
}

func (m DashboardModel) handleDeviceCursor(key string) (DashboardModel, tea.Cmd, bool) {
	count := len(m.bluetooth.Visible())
	if count == 0 {
		return m, nil, true
	}
	switch key {
	case "j", "down":
		if m.devices.cursor < count-1 {
			m.devices.cursor++
		}
	case "k", "up":
		if m.devices.cursor > 0 {
			m.devices.cursor--
		}
	}
	m.devices = m.devices.follow(count)
	return m, nil, true
}
