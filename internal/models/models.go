package models

// Device represents a discovered BLE peripheral. Name and Address are
// opaque strings reported by the radio; either may be empty. Identity is
// the address.
type Device struct {
	Name    string
	Address string
	RSSI    int16
}

// Named reports whether the peripheral advertised a name.
func (d Device) Named() bool {
	return d.Name != ""
}

// BluetoothState holds everything the device panel renders: whether the
// radio is initialized, the discovered devices in insertion order, the
// connected device (at most one), the current status message, and the
// named-only display filter. Mutations return a new value; a previous
// snapshot is never modified in place.
type BluetoothState struct {
	Initialized bool
	Devices     []Device
	Connected   *Device
	Status      string
	NamedOnly   bool
}

// WithInitialized marks the platform radio as acquired.
func (s BluetoothState) WithInitialized() BluetoothState {
	s.Initialized = true
	return s
}

// WithDevice appends d unless a device with the same address is already
// known. First sighting wins; later sightings do not update name or RSSI.
func (s BluetoothState) WithDevice(d Device) BluetoothState {
	for _, existing := range s.Devices {
		if existing.Address == d.Address {
			return s
		}
	}
	devices := make([]Device, len(s.Devices), len(s.Devices)+1)
	copy(devices, s.Devices)
	s.Devices = append(devices, d)
	return s
}

// WithConnected records d as the connected device.
func (s BluetoothState) WithConnected(d Device) BluetoothState {
	s.Connected = &d
	return s
}

// WithoutConnected clears the connected-device reference.
func (s BluetoothState) WithoutConnected() BluetoothState {
	s.Connected = nil
	return s
}

// WithStatus replaces the status message.
func (s BluetoothState) WithStatus(status string) BluetoothState {
	s.Status = status
	return s
}

// ToggleNamedOnly flips the display filter.
func (s BluetoothState) ToggleNamedOnly() BluetoothState {
	s.NamedOnly = !s.NamedOnly
	return s
}

// Visible returns the devices the panel should render. With NamedOnly set,
// unnamed devices are skipped; they remain in Devices either way.
func (s BluetoothState) Visible() []Device {
	if !s.NamedOnly {
		return s.Devices
	}
	var out []Device
	for _, d := range s.Devices {
		if d.Named() {
			out = append(out, d)
		}
	}
	return out
}

// IsConnected reports whether the device at address is the connected one.
func (s BluetoothState) IsConnected(address string) bool {
	return s.Connected != nil && s.Connected.Address == address
}
