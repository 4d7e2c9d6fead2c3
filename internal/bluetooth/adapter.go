package bluetooth

import (
	"context"
	"fmt"
	"sync"

	"tinygo.org/x/bluetooth"

	"github.com/chiwa-nz/pomodoro-log/internal/config"
	"github.com/chiwa-nz/pomodoro-log/internal/models"
)

// Adapter is the Backend over the platform radio.
type Adapter struct {
	mu        sync.Mutex
	adapter   *bluetooth.Adapter
	enabled   bool
	addresses map[string]bluetooth.Address
	dropped   func()
}

var _ Backend = (*Adapter)(nil)

// NewAdapter returns a backend over the default platform adapter.
func NewAdapter() *Adapter {
	return &Adapter{
		adapter:   bluetooth.DefaultAdapter,
		addresses: make(map[string]bluetooth.Address),
	}
}

// Enable powers the radio and installs the disconnect watcher. On Linux
// the process needs root or cap_net_admin for this to succeed.
func (a *Adapter) Enable() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.enabled {
		return nil
	}
	if err := a.adapter.Enable(); err != nil {
		return fmt.Errorf("%v (try running as root or granting cap_net_admin)", err)
	}
	a.adapter.SetConnectHandler(func(_ bluetooth.Device, connected bool) {
		if connected {
			return
		}
		a.mu.Lock()
		dropped := a.dropped
		a.dropped = nil
		a.mu.Unlock()
		if dropped != nil {
			dropped()
		}
	})
	a.enabled = true
	return nil
}

// Scan reports sightings until StopScan. Raw addresses are cached so a
// later Connect can dial a device by its string form.
func (a *Adapter) Scan(found func(models.Device)) error {
	return a.adapter.Scan(func(_ *bluetooth.Adapter, result bluetooth.ScanResult) {
		a.mu.Lock()
		a.addresses[result.Address.String()] = result.Address
		a.mu.Unlock()
		found(models.Device{
			Name:    result.LocalName(),
			Address: result.Address.String(),
			RSSI:    result.RSSI,
		})
	})
}

// StopScan ends a running scan.
func (a *Adapter) StopScan() error {
	return a.adapter.StopScan()
}

// Connect dials the peripheral, discovers the button service and
// characteristic, and enables notifications. The attempt is bounded by
// config.ConnectTimeout.
func (a *Adapter) Connect(address string, notify func(byte), dropped func()) (Conn, error) {
	a.mu.Lock()
	target, ok := a.addresses[address]
	a.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("device %s has not been seen in a scan", address)
	}

	ctx, cancel := context.WithTimeout(context.Background(), config.ConnectTimeout)
	defer cancel()

	type dialResult struct {
		device bluetooth.Device
		err    error
	}
	done := make(chan dialResult, 1)
	go func() {
		device, err := a.adapter.Connect(target, bluetooth.ConnectionParams{})
		done <- dialResult{device: device, err: err}
	}()

	var device bluetooth.Device
	select {
	case r := <-done:
		if r.err != nil {
			return nil, r.err
		}
		device = r.device
	case <-ctx.Done():
		return nil, fmt.Errorf("connection attempt timed out")
	}

	char, err := findButtonCharacteristic(device)
	if err != nil {
		_ = device.Disconnect()
		return nil, err
	}
	if err := char.EnableNotifications(func(buf []byte) {
		if len(buf) == 0 {
			return
		}
		notify(buf[0])
	}); err != nil {
		_ = device.Disconnect()
		return nil, fmt.Errorf("enable notifications: %w", err)
	}

	a.mu.Lock()
	a.dropped = dropped
	a.mu.Unlock()
	return &gattConn{adapter: a, device: device, address: address}, nil
}

func findButtonCharacteristic(device bluetooth.Device) (bluetooth.DeviceCharacteristic, error) {
	var none bluetooth.DeviceCharacteristic

	services, err := device.DiscoverServices([]bluetooth.UUID{ServiceUUID})
	if err != nil {
		return none, fmt.Errorf("discover button service: %w", err)
	}
	if len(services) == 0 {
		return none, fmt.Errorf("button service not found")
	}

	chars, err := services[0].DiscoverCharacteristics([]bluetooth.UUID{CharacteristicUUID})
	if err != nil {
		return none, fmt.Errorf("discover button characteristic: %w", err)
	}
	for _, char := range chars {
		if char.UUID() == CharacteristicUUID {
			return char, nil
		}
	}
	return none, fmt.Errorf("button characteristic not found")
}

// gattConn wraps a live GATT connection.
type gattConn struct {
	adapter *Adapter
	device  bluetooth.Device
	address string
}

var _ Conn = (*gattConn)(nil)

func (c *gattConn) Address() string {
	return c.address
}

// Close disconnects and disarms the drop watcher so a local close is not
// reported as a peer drop.
func (c *gattConn) Close() error {
	c.adapter.mu.Lock()
	c.adapter.dropped = nil
	c.adapter.mu.Unlock()
	return c.device.Disconnect()
}
