package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/chiwa-nz/pomodoro-log/internal/config"
	"github.com/chiwa-nz/pomodoro-log/internal/timer"
	"github.com/chiwa-nz/pomodoro-log/internal/util"
)

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func (m DashboardModel) renderHeader() string {
	accessory := "No accessory"
	accessoryStyle := m.theme.Dim
	if m.bluetooth.Connected != nil {
		accessory = "Accessory: " + displayName(*m.bluetooth.Connected)
		accessoryStyle = m.theme.Connected
	}
	logo := renderLogo()
	content := fmt.Sprintf("%s  |  %s v%s", accessoryStyle.Render(accessory), logo, VersionLabel())

	// Render Header (Title Box)
	headerFrame := lipgloss.NewStyle().
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Padding(0, 1)
	headerExtra := lipgloss.Width(headerFrame.Render(""))
	headerWidth := m.width - headerExtra
	if headerWidth < 1 {
		headerWidth = 1
	}
	return headerFrame.Width(headerWidth).Render(content)
}

// renderTimerPane draws the countdown box: mode title, clock, progress
// bar, status, loop indicator and the session tally.
func (m DashboardModel) renderTimerPane(width int) string {
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Padding(0, 1)
	extra := lipgloss.Width(frame.Render(""))
	contentWidth := width - extra
	if contentWidth < 1 {
		contentWidth = 1
	}

	title := m.theme.Header.Width(contentWidth).Render(strings.ToUpper(m.timer.Mode.Name))

	clockStyle := m.theme.Timer
	switch m.timer.Status {
	case timer.StatusPaused:
		clockStyle = m.theme.Paused
	case timer.StatusFinished:
		clockStyle = m.theme.Finished
	}
	clock := lipgloss.PlaceHorizontal(contentWidth, lipgloss.Center, clockStyle.Render(FormatClock(m.timer.Remaining())))

	barWidth := util.Clamp(m.progress.Width, 1, contentWidth)
	var barView string
	if m.view.animations {
		bar := m.progress
		bar.Width = barWidth
		barView = bar.ViewAs(m.timer.Fraction())
	} else {
		barView = m.theme.Highlight.Render(staticBar(m.timer.Fraction(), barWidth))
	}
	barView = lipgloss.PlaceHorizontal(contentWidth, lipgloss.Center, barView)

	statusLine := lipgloss.PlaceHorizontal(contentWidth, lipgloss.Center, m.theme.Dim.Render(FormatTimerStatus(m.timer)))

	loop := "Loop: off"
	if m.timer.Looping {
		glyph := "∞"
		if m.view.animations {
			glyph = "◐"
			if m.timer.Flip {
				glyph = "◑"
			}
		}
		loop = "Loop: on " + glyph
	}
	loopLine := m.theme.Dim.Render(loop)

	tally := fmt.Sprintf("%s  |  %s focused", FormatSessionCount(m.stats.Completed), FormatClock(m.stats.TotalMillis))
	tallyLine := m.theme.Dim.Render(tally)

	content := lipgloss.JoinVertical(lipgloss.Left, title, clock, barView, statusLine, loopLine, tallyLine)
	return frame.Width(contentWidth).Render(content)
}

// renderDevicePane draws the discovered-accessory list with cursor,
// scroll window and connected marker.
func (m DashboardModel) renderDevicePane(width int) string {
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Padding(0, 1)
	extra := lipgloss.Width(frame.Render(""))
	contentWidth := width - extra
	if contentWidth < 1 {
		contentWidth = 1
	}

	title := "Accessories"
	if m.bluetooth.NamedOnly {
		title += " (named)"
	}
	var lines []string
	lines = append(lines, m.theme.Header.Width(contentWidth).Render(title))

	if m.devices.scanning {
		lines = append(lines, m.spinner.View()+" "+m.theme.Dim.Render("scanning..."))
	}

	visible := m.bluetooth.Visible()
	if len(visible) == 0 {
		if !m.devices.scanning {
			lines = append(lines, m.theme.Dim.Render("  (none found)"))
		}
	} else {
		start := m.devices.scroll
		if start > len(visible) {
			start = len(visible)
		}
		end := start + config.MaxVisibleDevices
		if end > len(visible) {
			end = len(visible)
		}
		if start > 0 {
			lines = append(lines, m.theme.Dim.Render("  ..."))
		}
		for i := start; i < end; i++ {
			d := visible[i]
			lead := "  "
			base := m.theme.Device
			if i == m.devices.cursor {
				lead = "> "
				base = m.theme.Focused
			}
			label := truncateLabel(displayName(d), config.MaxDeviceNameWidth)
			line := fmt.Sprintf("%s%s  %s", lead, label, FormatRSSI(d.RSSI))
			if m.bluetooth.IsConnected(d.Address) {
				base = m.theme.Connected
				line += " ●"
			}
			lines = append(lines, base.Render(line))
		}
		if end < len(visible) {
			lines = append(lines, m.theme.Dim.Render("  ..."))
		}
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return frame.Width(contentWidth).Render(content)
}

func (m DashboardModel) renderStatusLine() string {
	if m.bluetooth.Status == "" {
		return ""
	}
	return m.theme.Dim.Render(" " + m.bluetooth.Status)
}

func (m DashboardModel) renderFooter() string {
	var footer string
	var footerContent string
	var footerHelpLines []string
	var rawFooter string
	hasMessage := m.Message != ""
	if hasMessage {
		style := m.theme.Notice
		if m.messageIsError {
			style = m.theme.Error
		}
		footerContent = style.Render(m.Message)
	} else {
		rawFooter = m.keys.Help()
		footerContent = m.theme.Dim.Render(rawFooter)
	}
	if footerContent != "" {
		boxed := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(m.theme.Border).
			Padding(0, 1)
		innerWidth := m.width - lipgloss.Width(boxed.Render(""))
		if innerWidth < 1 {
			innerWidth = 1
		}
		content := footerContent
		if hasMessage {
			content = lipgloss.PlaceHorizontal(innerWidth, lipgloss.Center, footerContent)
		} else {
			tokens := strings.Split(rawFooter, "|")
			const sep = " | "
			sepWidth := ansi.StringWidth(sep)
			var widths []int
			sumWidths := 0
			var lines []string
			var currentTokens []string
			currentWidth := 0
			for _, token := range tokens {
				token = strings.TrimSpace(token)
				if token == "" {
					continue
				}
				w := ansi.StringWidth(token)
				widths = append(widths, w)
				sumWidths += w
			}
			if len(widths) == 0 {
				content = ""
			} else {
				totalWidth := sumWidths + sepWidth*(len(widths)-1)
				linesTarget := int(math.Ceil(float64(totalWidth) / float64(innerWidth)))
				if linesTarget < 1 {
					linesTarget = 1
				}
				sumRemaining := sumWidths
				tokensRemaining := len(widths)
				linesRemaining := linesTarget
				idx := 0
				for _, token := range tokens {
					token = strings.TrimSpace(token)
					if token == "" {
						continue
					}
					tokenWidth := widths[idx]
					remainingTotal := sumRemaining + sepWidth*(tokensRemaining-1)
					idealMax := int(math.Ceil(float64(remainingTotal) / float64(linesRemaining)))
					if idealMax > innerWidth {
						idealMax = innerWidth
					}
					if currentWidth == 0 {
						currentTokens = append(currentTokens, token)
						currentWidth = tokenWidth
					} else {
						candidateWidth := currentWidth + sepWidth + tokenWidth
						if candidateWidth <= idealMax || linesRemaining == 1 {
							currentTokens = append(currentTokens, token)
							currentWidth = candidateWidth
						} else {
							lines = append(lines, strings.Join(currentTokens, sep))
							linesRemaining--
							currentTokens = []string{token}
							currentWidth = tokenWidth
						}
					}
					sumRemaining -= tokenWidth
					tokensRemaining--
					idx++
				}
				if len(currentTokens) > 0 {
					lines = append(lines, strings.Join(currentTokens, sep))
				}
				for _, line := range lines {
					footerHelpLines = append(footerHelpLines, lipgloss.PlaceHorizontal(innerWidth, lipgloss.Center, m.theme.Dim.Render(line)))
				}
				content = lipgloss.JoinVertical(lipgloss.Left, footerHelpLines...)
			}
		}
		footer = boxed.Width(innerWidth).Render(content)
	}

	return footer
}
