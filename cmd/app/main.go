package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/chiwa-nz/pomodoro-log/internal/bluetooth"
	"github.com/chiwa-nz/pomodoro-log/internal/config"
	"github.com/chiwa-nz/pomodoro-log/internal/tui"
	"github.com/chiwa-nz/pomodoro-log/internal/util"
)

func main() {
	mock := flag.Bool("mock", false, "use a simulated accessory instead of the system radio")
	version := flag.Bool("version", false, "print the version and exit")
	flag.Parse()

	if *version {
		fmt.Printf("%s %s\n", config.AppName, tui.VersionLabel())
		return
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintf(os.Stderr, "%s needs an interactive terminal\n", config.AppName)
		os.Exit(1)
	}

	// 1. Load persisted preferences
	settings, settingsPath := loadSettings()

	// 2. Initialize the Main Model
	// The manager is handed to the model for solicited operations; its
	// unsolicited events reach the model through the program's sink.
	mgr := bluetooth.NewManager(pickBackend(*mock))
	model := tui.NewMainModel(mgr, settings)

	// 3. Start Program
	p := tea.NewProgram(model)
	mgr.SetSink(p.Send)

	final, err := p.Run()
	if err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
	util.LogError("closing accessory connection", mgr.Disconnect())

	if m, ok := final.(tui.MainModel); ok {
		saveSettings(settingsPath, m.Settings())
	}
}

// pickBackend chooses the radio implementation. The simulated backend
// advertises a scripted accessory so the whole flow works without
// hardware or elevated capabilities.
func pickBackend(mock bool) bluetooth.Backend {
	if mock {
		return bluetooth.NewMockBackend()
	}
	return bluetooth.NewAdapter()
}

// loadSettings resolves and reads the settings file. A missing or broken
// file falls back to defaults; an empty path disables saving.
func loadSettings() (config.Settings, string) {
	path, err := config.SettingsPath()
	if err != nil {
		util.LogError("resolving settings path", err)
		return config.DefaultSettings(), ""
	}
	settings, err := config.LoadSettings(path)
	util.LogError("loading settings", err)
	return settings, path
}

// saveSettings persists the preferences the session ended with.
func saveSettings(path string, s config.Settings) {
	if path == "" {
		return
	}
	util.LogError("saving settings", config.SaveSettings(path, s))
}
