package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/chiwa-nz/pomodoro-log/internal/config"
)

func renderLogo() string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true).Render("P") +
		lipgloss.NewStyle().Foreground(lipgloss.Color("202")).Bold(true).Render("O") +
		lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true).Render("M") +
		lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true).Render("O")
}

func truncateLabel(text string, max int) string {
	if max <= 0 {
		return ""
	}
	if ansi.StringWidth(text) <= max {
		return text
	}
	return ansi.Truncate(text, max, config.TruncationSuffix)
}

// staticBar is the progress bar used when animations are off.
func staticBar(fraction float64, width int) string {
	if width < 1 {
		width = 1
	}
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	filled := int(fraction * float64(width))
	if filled > width {
		filled = width
	}
	return strings.Repeat("#", filled) + strings.Repeat(".", width-filled)
}

func (m DashboardModel) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	header := m.renderHeader()

	// Side-by-side panes, stacked when the window is narrow
	var body string
	if m.width < config.CompactModeThreshold {
		body = lipgloss.JoinVertical(lipgloss.Left,
			m.renderTimerPane(m.width),
			m.renderDevicePane(m.width))
	} else {
		timerWidth := m.width / 2
		if timerWidth < config.MinPaneWidth {
			timerWidth = config.MinPaneWidth
		}
		deviceWidth := m.width - timerWidth
		if deviceWidth < config.MinPaneWidth {
			deviceWidth = config.MinPaneWidth
		}
		body = lipgloss.JoinHorizontal(lipgloss.Top,
			m.renderTimerPane(timerWidth),
			m.renderDevicePane(deviceWidth))
	}

	status := m.renderStatusLine()
	footer := m.renderFooter()

	var lines []string
	lines = append(lines, splitLines(header)...)
	if body != "" {
		lines = append(lines, splitLines(body)...)
	} else {
		lines = append(lines, "  (Window too small)")
	}
	if status != "" {
		lines = append(lines, status)
	}
	if footer != "" {
		lines = append(lines, splitLines(footer)...)
	}
	if m.height > 0 {
		if len(lines) > m.height {
			lines = lines[:m.height]
		} else if len(lines) < m.height {
			lines = append(lines, make([]string, m.height-len(lines))...)
		}
	}
	return "\x1b[H\x1b[2J" + strings.Join(lines, "\n")
}
