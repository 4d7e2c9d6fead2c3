package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/chiwa-nz/pomodoro-log/internal/config"
)

// MainModel is the root bubbletea model. The dashboard is the only
// sub-model; the wrapper keeps the global quit key and window
// bookkeeping in one place.
type MainModel struct {
	dashboard DashboardModel
	width     int
	height    int
}

func NewMainModel(bt Bluetooth, settings config.Settings) MainModel {
	return MainModel{
		dashboard: NewDashboardModel(bt, settings),
	}
}

func (m MainModel) Init() tea.Cmd {
	return m.dashboard.Init()
}

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	// Cast the return value back to DashboardModel to keep our state correct
	newDash, cmd := m.dashboard.Update(msg)
	m.dashboard = newDash.(DashboardModel)
	return m, cmd
}

func (m MainModel) View() string {
	return m.dashboard.View()
}

// Settings returns the preferences to persist on exit.
func (m MainModel) Settings() config.Settings {
	return m.dashboard.settingsSnapshot()
}
