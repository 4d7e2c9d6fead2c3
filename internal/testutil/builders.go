package testutil

import (
	"fmt"

	"github.com/chiwa-nz/pomodoro-log/internal/models"
)

// DeviceBuilder provides fluent API for creating test devices.
type DeviceBuilder struct {
	device models.Device
}

func NewDevice() *DeviceBuilder {
	return &DeviceBuilder{
		device: models.Device{
			Name:    "micro:bit",
			Address: "C4:64:E3:00:00:01",
			RSSI:    -40,
		},
	}
}

func (b *DeviceBuilder) WithName(name string) *DeviceBuilder {
	b.device.Name = name
	return b
}

// Unnamed clears the advertised name, as many peripherals do.
func (b *DeviceBuilder) Unnamed() *DeviceBuilder {
	b.device.Name = ""
	return b
}

func (b *DeviceBuilder) WithAddress(address string) *DeviceBuilder {
	b.device.Address = address
	return b
}

func (b *DeviceBuilder) WithRSSI(rssi int16) *DeviceBuilder {
	b.device.RSSI = rssi
	return b
}

func (b *DeviceBuilder) Build() models.Device {
	return b.device
}

// Fleet returns n devices with distinct addresses for list tests.
func Fleet(n int) []models.Device {
	out := make([]models.Device, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, NewDevice().
			WithName(fmt.Sprintf("accessory-%d", i)).
			WithAddress(fmt.Sprintf("C4:64:E3:00:00:%02X", i)).
			WithRSSI(int16(-40-i)).
			Build())
	}
	return out
}
