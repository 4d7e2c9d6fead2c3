package bluetooth

import "github.com/chiwa-nz/pomodoro-log/internal/models"

// Messages posted into the program loop. Unsolicited radio events arrive
// through the manager's sink; command-driven operations return them
// directly from tea commands.

// ReadyMsg reports the radio was enabled.
type ReadyMsg struct{}

// DeviceFoundMsg carries one scan sighting.
type DeviceFoundMsg struct {
	Device models.Device
}

// ScanStartedMsg reports a scan began.
type ScanStartedMsg struct{}

// ScanFinishedMsg reports the scan window elapsed or the scan was stopped.
type ScanFinishedMsg struct{}

// ConnectedMsg reports an established connection with notifications
// enabled.
type ConnectedMsg struct {
	Device models.Device
}

// DisconnectedMsg reports the connection is gone, by request or because
// the peer dropped it.
type DisconnectedMsg struct{}

// ButtonMsg carries one button byte from the accessory.
type ButtonMsg struct {
	Code byte
}

// ErrorMsg reports a failed radio operation.
type ErrorMsg struct {
	Op  string
	Err error
}
