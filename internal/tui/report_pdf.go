package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/chiwa-nz/pomodoro-log/internal/config"
	"github.com/chiwa-nz/pomodoro-log/internal/timer"
)

// SessionReport is the dashboard snapshot written to a PDF export.
type SessionReport struct {
	Date      string
	Mode      timer.Mode
	Looping   bool
	Stats     SessionStats
	Accessory string
}

func (m DashboardModel) sessionReport() SessionReport {
	rep := SessionReport{
		Date:    time.Now().Format("2006-01-02"),
		Mode:    m.timer.Mode,
		Looping: m.timer.Looping,
		Stats:   m.stats,
	}
	if m.bluetooth.Connected != nil {
		rep.Accessory = displayName(*m.bluetooth.Connected)
	}
	return rep
}

// WriteSessionReport renders rep as a one-page PDF under dir and returns
// the path of the file it wrote.
func WriteSessionReport(dir string, rep SessionReport) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, fmt.Sprintf("Pomodoro Report: %s", rep.Date))
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Mode: %s (%s)", rep.Mode.Name, FormatClock(rep.Mode.Length)))
	pdf.Ln(8)
	looping := "off"
	if rep.Looping {
		looping = "on"
	}
	pdf.Cell(0, 8, "Looping: "+looping)
	pdf.Ln(8)
	accessory := rep.Accessory
	if accessory == "" {
		accessory = "none"
	}
	pdf.Cell(0, 8, "Accessory: "+accessory)
	pdf.Ln(12)

	// Summary
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Completed: %s", FormatSessionCount(rep.Stats.Completed)))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Focused: %s", FormatClock(rep.Stats.TotalMillis)))
	pdf.Ln(8)

	filename := filepath.Join(dir, fmt.Sprintf("%s_%s.pdf", config.ReportFilePrefix, time.Now().Format("20060102_150405")))
	if err := pdf.OutputFileAndClose(filename); err != nil {
		return "", err
	}
	return filename, nil
}
