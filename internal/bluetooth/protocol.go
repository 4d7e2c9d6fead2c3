package bluetooth

import "tinygo.org/x/bluetooth"

// The accessory exposes one service with one notify characteristic. Each
// notification carries a single byte naming the pressed button.
var (
	ServiceUUID, _        = bluetooth.ParseUUID("0000b100-0000-1000-8000-00805f9b34fb")
	CharacteristicUUID, _ = bluetooth.ParseUUID("0000b101-0000-1000-8000-00805f9b34fb")
)

// Button codes sent by the accessory. Zero is the release marker; unknown
// codes are ignored by the receiver.
const (
	ButtonReleased  byte = 0x00
	ButtonMain      byte = 0x01
	ButtonReset     byte = 0x02
	ButtonLooping   byte = 0x04
	ButtonAnimation byte = 0x08
)
