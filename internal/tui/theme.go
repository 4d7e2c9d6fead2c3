package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name      string
	Border    lipgloss.Color
	Header    lipgloss.Style
	Timer     lipgloss.Style
	Paused    lipgloss.Style
	Finished  lipgloss.Style
	Device    lipgloss.Style
	Connected lipgloss.Style
	Focused   lipgloss.Style
	Dim       lipgloss.Style
	Highlight lipgloss.Style
	Notice    lipgloss.Style
	Error     lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:      "Default",
		Border:    lipgloss.Color("63"),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Align(lipgloss.Center),
		Timer:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
		Paused:    lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
		Finished:  lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true),
		Device:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Connected: lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true),
		Focused:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		Notice:    lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	},
	"dracula": {
		Name:      "Dracula",
		Border:    lipgloss.Color("62"),                                                                   // Purple
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true).Align(lipgloss.Center), // Cyan
		Timer:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),                       // White
		Paused:    lipgloss.NewStyle().Foreground(lipgloss.Color("215")).Bold(true),                       // Orange
		Finished:  lipgloss.NewStyle().Foreground(lipgloss.Color("120")).Bold(true),                       // Green
		Device:    lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Connected: lipgloss.NewStyle().Foreground(lipgloss.Color("120")).Bold(true),
		Focused:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true), // Pink
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("60")),             // Comment
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("62")),
		Notice:    lipgloss.NewStyle().Foreground(lipgloss.Color("215")).Bold(true),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true), // Red
	},
}

// ThemeOrder fixes the cycle order for the theme key.
var ThemeOrder = []string{"default", "dracula"}

// themeNamed returns the theme with the given key, falling back to the
// default for unknown names.
func themeNamed(name string) Theme {
	if t, ok := Themes[name]; ok {
		return t
	}
	return Themes["default"]
}

// nextThemeName returns the key after name in cycle order.
func nextThemeName(name string) string {
	for i, candidate := range ThemeOrder {
		if candidate == name {
			return ThemeOrder[(i+1)%len(ThemeOrder)]
		}
	}
	return ThemeOrder[0]
}
