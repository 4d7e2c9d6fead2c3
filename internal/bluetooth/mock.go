package bluetooth

import (
	"fmt"
	"sync"
	"time"

	"github.com/chiwa-nz/pomodoro-log/internal/models"
)

// MockBackend simulates the radio with a scripted set of peripherals. It
// backs --mock runs and the package tests: scans replay the script until
// stopped, connections always reach the scripted accessory, and Press
// injects button bytes.
type MockBackend struct {
	mu         sync.Mutex
	devices    []models.Device
	interval   time.Duration
	enabled    bool
	scanning   bool
	stop       chan struct{}
	conn       *mockConn
	notify     func(byte)
	dropped    func()
	enableErr  error
	connectErr error

	enableCalls int
}

var _ Backend = (*MockBackend)(nil)

// NewMockBackend returns a simulated radio advertising the given
// peripherals. With none given it advertises a default accessory and an
// unnamed beacon.
func NewMockBackend(devices ...models.Device) *MockBackend {
	if len(devices) == 0 {
		devices = []models.Device{
			{Name: "Pomodoro Remote", Address: "C0:FF:EE:00:00:01", RSSI: -48},
			{Address: "DE:AD:BE:EF:00:02", RSSI: -71},
		}
	}
	return &MockBackend{
		devices:  devices,
		interval: 50 * time.Millisecond,
	}
}

// SetSightingInterval adjusts the delay between scripted sightings.
func (b *MockBackend) SetSightingInterval(d time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if d > 0 {
		b.interval = d
	}
}

// SetEnableError makes Enable fail.
func (b *MockBackend) SetEnableError(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.enableErr = err
}

// SetConnectError makes Connect fail.
func (b *MockBackend) SetConnectError(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.connectErr = err
}

// Enable powers the simulated radio.
func (b *MockBackend) Enable() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.enableCalls++
	if b.enableErr != nil {
		return b.enableErr
	}
	b.enabled = true
	return nil
}

// Scan replays the scripted peripherals repeatedly until StopScan, the
// way a real radio keeps reporting advertisements.
func (b *MockBackend) Scan(found func(models.Device)) error {
	b.mu.Lock()
	if !b.enabled {
		b.mu.Unlock()
		return fmt.Errorf("adapter not enabled")
	}
	if b.scanning {
		b.mu.Unlock()
		return fmt.Errorf("scan already running")
	}
	stop := make(chan struct{})
	b.stop = stop
	b.scanning = true
	devices := append([]models.Device(nil), b.devices...)
	interval := b.interval
	b.mu.Unlock()

	if len(devices) == 0 {
		<-stop
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for i := 0; ; i++ {
		select {
		case <-stop:
			return nil
		case <-ticker.C:
			found(devices[i%len(devices)])
		}
	}
}

// StopScan ends the running scan.
func (b *MockBackend) StopScan() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.scanning {
		return nil
	}
	b.scanning = false
	close(b.stop)
	b.stop = nil
	return nil
}

// Connect succeeds for any scripted address and wires the notification
// path to Press.
func (b *MockBackend) Connect(address string, notify func(byte), dropped func()) (Conn, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.enabled {
		return nil, fmt.Errorf("adapter not enabled")
	}
	if b.connectErr != nil {
		return nil, b.connectErr
	}

	known := false
	for _, d := range b.devices {
		if d.Address == address {
			known = true
			break
		}
	}
	if !known {
		return nil, fmt.Errorf("no device at %s", address)
	}

	conn := &mockConn{backend: b, address: address}
	b.conn = conn
	b.notify = notify
	b.dropped = dropped
	return conn, nil
}

// Press simulates the accessory sending one button byte.
func (b *MockBackend) Press(code byte) {
	b.mu.Lock()
	notify := b.notify
	b.mu.Unlock()
	if notify != nil {
		notify(code)
	}
}

// DropConnection simulates the peer ending the connection.
func (b *MockBackend) DropConnection() {
	b.mu.Lock()
	dropped := b.dropped
	b.conn = nil
	b.notify = nil
	b.dropped = nil
	b.mu.Unlock()
	if dropped != nil {
		dropped()
	}
}

type mockConn struct {
	backend *MockBackend
	address string
}

var _ Conn = (*mockConn)(nil)

func (c *mockConn) Address() string {
	return c.address
}

func (c *mockConn) Close() error {
	b := c.backend
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.conn == c {
		b.conn = nil
		b.notify = nil
		b.dropped = nil
	}
	return nil
}
