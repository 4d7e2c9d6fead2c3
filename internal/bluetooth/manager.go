package bluetooth

import (
	"context"
	"fmt"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/chiwa-nz/pomodoro-log/internal/models"
	"github.com/chiwa-nz/pomodoro-log/internal/util"
)

// Manager owns the discovery/connect/notify workflow over a Backend.
// Solicited operations (Init, StartScan, Connect, Disconnect) run inside
// tea commands; unsolicited radio events are posted through the sink. The
// manager guards only its own operational flags; all application state
// lives in the program loop.
type Manager struct {
	mu      sync.RWMutex
	backend Backend
	send    func(tea.Msg)

	ready    bool
	scanning bool
	stopScan context.CancelFunc
	conn     Conn
}

// NewManager returns a manager over the given backend.
func NewManager(backend Backend) *Manager {
	return &Manager{
		backend: backend,
		send:    func(tea.Msg) {},
	}
}

// SetSink routes unsolicited events (sightings, button presses, peer
// disconnects, scan completion) into the program loop.
func (m *Manager) SetSink(send func(tea.Msg)) {
	if send == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.send = send
}

func (m *Manager) post(msg tea.Msg) {
	m.mu.RLock()
	send := m.send
	m.mu.RUnlock()
	send(msg)
}

// Init enables the radio. Idempotent: once ready, later calls return nil
// without touching the backend.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ready {
		return nil
	}
	if err := m.backend.Enable(); err != nil {
		return fmt.Errorf("enable adapter: %w", err)
	}
	m.ready = true
	return nil
}

// Ready reports whether the radio is enabled.
func (m *Manager) Ready() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.ready
}

// StartScan begins a discovery scan that stops itself once window
// elapses. Each newly seen address is posted as a DeviceFoundMsg; repeat
// sightings within the scan are coalesced. ScanFinishedMsg is posted when
// the scan ends for any reason.
func (m *Manager) StartScan(window time.Duration) error {
	m.mu.Lock()
	if !m.ready {
		m.mu.Unlock()
		return fmt.Errorf("bluetooth not initialized")
	}
	if m.scanning {
		m.mu.Unlock()
		return fmt.Errorf("scan already running")
	}
	ctx, cancel := context.WithTimeout(context.Background(), window)
	m.scanning = true
	m.stopScan = cancel
	m.mu.Unlock()

	go func() {
		seen := make(map[string]bool)
		errCh := make(chan error, 1)
		go func() {
			errCh <- m.backend.Scan(func(d models.Device) {
				if seen[d.Address] {
					return
				}
				seen[d.Address] = true
				m.post(DeviceFoundMsg{Device: d})
			})
		}()

		select {
		case <-ctx.Done():
			if err := m.backend.StopScan(); err != nil {
				m.post(ErrorMsg{Op: "stopping scan", Err: err})
			}
		case err := <-errCh:
			if err != nil {
				m.post(ErrorMsg{Op: "scanning", Err: err})
			}
		}
		cancel()

		m.mu.Lock()
		m.scanning = false
		m.stopScan = nil
		m.mu.Unlock()
		m.post(ScanFinishedMsg{})
	}()
	return nil
}

// Scanning reports whether a scan is in progress.
func (m *Manager) Scanning() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.scanning
}

// CancelScan ends a running scan before its window elapses.
func (m *Manager) CancelScan() {
	m.mu.Lock()
	cancel := m.stopScan
	m.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// Connect dials the accessory at address, discovers the button service,
// and enables notifications. It blocks for up to the backend's connect
// timeout and is meant to run inside a tea command. An existing
// connection is closed first.
func (m *Manager) Connect(address string) error {
	if !m.Ready() {
		return fmt.Errorf("bluetooth not initialized")
	}
	util.LogError("closing previous connection", m.Disconnect())

	conn, err := m.backend.Connect(address, m.handleButton, m.handleDrop)
	if err != nil {
		return fmt.Errorf("connect %s: %w", address, err)
	}

	m.mu.Lock()
	m.conn = conn
	m.mu.Unlock()
	return nil
}

// Disconnect closes the live connection, if any.
func (m *Manager) Disconnect() error {
	m.mu.Lock()
	conn := m.conn
	m.conn = nil
	m.mu.Unlock()
	if conn == nil {
		return nil
	}
	if err := conn.Close(); err != nil {
		return fmt.Errorf("disconnect: %w", err)
	}
	return nil
}

// Connected reports whether a connection is live.
func (m *Manager) Connected() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.conn != nil
}

func (m *Manager) handleButton(code byte) {
	m.post(ButtonMsg{Code: code})
}

// handleDrop fires when the peer ends the connection. A connection we
// closed ourselves was already cleared, so nothing is posted for it.
func (m *Manager) handleDrop() {
	m.mu.Lock()
	had := m.conn != nil
	m.conn = nil
	m.mu.Unlock()
	if had {
		m.post(DisconnectedMsg{})
	}
}
