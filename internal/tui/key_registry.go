package tui

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyHandler processes one key press against the dashboard. It returns the
// next model, an optional command, and whether the key was consumed.
type KeyHandler func(DashboardModel, string) (DashboardModel, tea.Cmd, bool)

type KeyBinding struct {
	Key         string
	Label       string // display override for the help line; defaults to Key
	Handler     KeyHandler
	Description string // empty bindings are hidden from help
	Priority    int
}

func (b KeyBinding) helpLabel() string {
	if b.Label != "" {
		return b.Label
	}
	return b.Key
}

// HandlerRegistry dispatches key presses and renders the footer help from
// one source of truth.
type HandlerRegistry struct {
	bindings []KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

func (r *HandlerRegistry) Handle(m DashboardModel, key string) (DashboardModel, tea.Cmd, bool) {
	for _, b := range r.bindings {
		if b.Key != key {
			continue
		}
		next, cmd, handled := b.Handler(m, key)
		if handled {
			return next, cmd, true
		}
	}
	return m, nil, false
}

func (r *HandlerRegistry) Bindings() []KeyBinding {
	out := make([]KeyBinding, len(r.bindings))
	copy(out, r.bindings)
	return out
}

// Help renders the footer help text, one "[key]Description" token per
// described binding, deduplicated by label.
func (r *HandlerRegistry) Help() string {
	seen := make(map[string]bool)
	var parts []string
	for _, b := range r.bindings {
		if b.Description == "" {
			continue
		}
		label := b.helpLabel()
		if seen[label] {
			continue
		}
		seen[label] = true
		parts = append(parts, "["+label+"]"+b.Description)
	}
	return strings.Join(parts, "|")
}

// newKeyRegistry wires every dashboard key. Byte codes from the accessory
// reuse the same handlers (dispatchButton).
func newKeyRegistry() *HandlerRegistry {
	r := NewHandlerRegistry()

	r.Register(KeyBinding{Key: " ", Label: "space", Handler: DashboardModel.handleMainKey, Description: "Start/Pause", Priority: 100})
	r.Register(KeyBinding{Key: "r", Handler: DashboardModel.handleResetKey, Description: "Reset", Priority: 95})
	r.Register(KeyBinding{Key: "m", Handler: DashboardModel.handleModeKey, Description: "Mode", Priority: 90})
	r.Register(KeyBinding{Key: "l", Handler: DashboardModel.handleLoopingKey, Description: "Loop", Priority: 85})
	r.Register(KeyBinding{Key: "a", Handler: DashboardModel.handleAnimationsKey, Description: "Anim", Priority: 80})

	r.Register(KeyBinding{Key: "i", Handler: DashboardModel.handleInitKey, Description: "Init BT", Priority: 70})
	r.Register(KeyBinding{Key: "s", Handler: DashboardModel.handleScanKey, Description: "Scan", Priority: 65})
	r.Register(KeyBinding{Key: "enter", Handler: DashboardModel.handleConnectKey, Description: "Connect", Priority: 60})
	r.Register(KeyBinding{Key: "c", Handler: DashboardModel.handleConnectKey, Priority: 60})
	r.Register(KeyBinding{Key: "d", Handler: DashboardModel.handleDisconnectKey, Description: "Disconnect", Priority: 55})
	r.Register(KeyBinding{Key: "n", Handler: DashboardModel.handleNamedOnlyKey, Description: "Named only", Priority: 50})
	r.Register(KeyBinding{Key: "j", Label: "j/k", Handler: DashboardModel.handleDeviceCursor, Description: "Select", Priority: 45})
	r.Register(KeyBinding{Key: "k", Handler: DashboardModel.handleDeviceCursor, Priority: 45})
	r.Register(KeyBinding{Key: "down", Handler: DashboardModel.handleDeviceCursor, Priority: 45})
	r.Register(KeyBinding{Key: "up", Handler: DashboardModel.handleDeviceCursor, Priority: 45})

	r.Register(KeyBinding{Key: "e", Handler: DashboardModel.handleReportKey, Description: "Report", Priority: 30})
	r.Register(KeyBinding{Key: "t", Handler: DashboardModel.handleThemeKey, Description: "Theme", Priority: 25})
	r.Register(KeyBinding{Key: "q", Handler: DashboardModel.handleQuitKey, Description: "Quit", Priority: 10})

	return r
}
