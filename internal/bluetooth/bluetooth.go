// Package bluetooth drives the remote-accessory workflow: enable the
// radio, scan for peripherals, connect, subscribe to the button
// characteristic, and funnel every radio event into the program loop as a
// message.
package bluetooth

import "github.com/chiwa-nz/pomodoro-log/internal/models"

// Backend abstracts the radio so the platform adapter and the simulated
// accessory are interchangeable.
type Backend interface {
	// Enable powers the radio. Idempotent.
	Enable() error

	// Scan reports each sighting through found until StopScan. It blocks
	// for the duration of the scan; sightings are delivered sequentially.
	Scan(found func(models.Device)) error

	// StopScan ends a running scan.
	StopScan() error

	// Connect establishes a GATT connection to the peripheral at address
	// and subscribes to the button characteristic. notify receives each
	// button byte; dropped fires if the peer ends the connection.
	Connect(address string, notify func(byte), dropped func()) (Conn, error)
}

// Conn is a live accessory connection.
type Conn interface {
	// Address returns the peer address.
	Address() string

	// Close tears the connection down. The dropped callback does not fire
	// for a local close.
	Close() error
}
