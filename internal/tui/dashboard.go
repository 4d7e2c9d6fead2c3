package tui

import (
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/chiwa-nz/pomodoro-log/internal/config"
	"github.com/chiwa-nz/pomodoro-log/internal/models"
	"github.com/chiwa-nz/pomodoro-log/internal/timer"
)

// DashboardModel is the single screen of the application: the countdown
// pane and the accessory panel, both over value-typed state replaced
// wholesale on every handled message.
type DashboardModel struct {
	bt Bluetooth

	timer     timer.State
	bluetooth models.BluetoothState

	view    ViewState
	devices DeviceListState
	stats   SessionStats

	progress progress.Model
	spinner  spinner.Model
	theme    Theme
	keys     *HandlerRegistry

	// Message is a transient notice cleared on the next keypress.
	// Accessory status lives in bluetooth.Status instead.
	Message        string
	messageIsError bool

	width, height int
}

func NewDashboardModel(bt Bluetooth, settings config.Settings) DashboardModel {
	theme := themeNamed(settings.Theme)

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = config.ProgressBarWidth

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = theme.Focused

	state := timer.NewState(timer.ModeByName(settings.Mode))
	if settings.Looping {
		state = state.ToggleLooping()
	}

	accessories := models.BluetoothState{}
	if settings.NamedOnly {
		accessories = accessories.ToggleNamedOnly()
	}

	return DashboardModel{
		bt:        bt,
		timer:     state,
		bluetooth: accessories,
		view:      newViewState(settings),
		devices:   newDeviceListState(),
		progress:  prog,
		spinner:   spin,
		theme:     theme,
		keys:      newKeyRegistry(),
	}
}

func (m DashboardModel) Init() tea.Cmd { return nil }

func (m *DashboardModel) setStatus(text string) {
	m.Message = text
	m.messageIsError = false
}

func (m *DashboardModel) setStatusError(text string) {
	m.Message = text
	m.messageIsError = true
}

// selectedDevice returns the device under the cursor in the visible list.
func (m DashboardModel) selectedDevice() (models.Device, bool) {
	visible := m.bluetooth.Visible()
	if len(visible) == 0 || m.devices.cursor >= len(visible) {
		return models.Device{}, false
	}
	return visible[m.devices.cursor], true
}

// settingsSnapshot captures the preferences persisted on exit.
func (m DashboardModel) settingsSnapshot() config.Settings {
	return config.Settings{
		Theme:      m.view.themeName,
		Mode:       m.timer.Mode.Name,
		Looping:    m.timer.Looping,
		Animations: m.view.animations,
		NamedOnly:  m.bluetooth.NamedOnly,
	}
}
