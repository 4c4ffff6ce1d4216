package tray

import (
	"fmt"

	"deskclock/internal/core/controller"
	"deskclock/internal/core/model"
	"deskclock/internal/ui/menu"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow        func()
	OnPreferences func()
	OnQuit        func()
}

// state is what the tray menu depends on. The menu is only pushed to the
// tray host when it changes.
type state struct {
	prefs   model.Preferences
	running bool
}

// Manager mirrors the context menu into the system tray.
type Manager struct {
	app        desktop.App
	controller *controller.Controller
	callbacks  Callbacks
	last       *state
	menu       *fyne.Menu
}

// New creates a tray manager and installs the initial menu.
func New(app desktop.App, ctrl *controller.Controller, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:        app,
		controller: ctrl,
		callbacks:  callbacks,
	}
	manager.Sync()
	return manager
}

// Sync rebuilds the tray menu if the preferences or stopwatch state changed
// since the last call. It is cheap enough to call on every tick.
func (manager *Manager) Sync() {
	current := state{
		prefs:   manager.controller.Preferences(),
		running: manager.controller.Machine().Running(),
	}
	if manager.last != nil && *manager.last == current {
		return
	}
	manager.last = &current
	manager.refreshMenu(current)
}

// Menu returns the menu most recently installed.
func (manager *Manager) Menu() *fyne.Menu {
	return manager.menu
}

func (manager *Manager) refreshMenu(current state) {
	statusItem := fyne.NewMenuItem(statusLabel(current), nil)
	statusItem.Disabled = true

	show := fyne.NewMenuItem("Show clock", func() {
		if manager.callbacks.OnShow != nil {
			manager.callbacks.OnShow()
		}
	})

	built := menu.Build(manager.controller, menu.Callbacks{
		OnPreferences: manager.callbacks.OnPreferences,
		OnQuit:        manager.callbacks.OnQuit,
	})
	items := append([]*fyne.MenuItem{statusItem, show, fyne.NewMenuItemSeparator()}, built.Items...)
	manager.menu = fyne.NewMenu(menu.Title, items...)

	if manager.app != nil {
		manager.app.SetSystemTrayMenu(manager.menu)
	}
}

func statusLabel(current state) string {
	if current.prefs.Mode != model.ModeStopwatch {
		return "Status: clock"
	}
	status := "stopped"
	if current.running {
		status = "running"
	}
	return fmt.Sprintf("Status: stopwatch (%s)", status)
}
