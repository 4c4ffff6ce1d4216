package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"deskclock/internal/core/clock"
	"deskclock/internal/core/controller"
	"deskclock/internal/core/model"
	"deskclock/internal/platform"
	"deskclock/internal/storage"
	"deskclock/internal/ui/fonttheme"
	"deskclock/internal/ui/preferences"
	"deskclock/internal/ui/tray"
	"deskclock/internal/ui/widgetwin"
	"deskclock/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	fynetheme "fyne.io/fyne/v2/theme"
)

const appID = "io.github.deskclock"

// hintDelay gives the window manager time to map the window before it is
// asked to move or restack it.
const hintDelay = 300 * time.Millisecond

func runWidget(store *storage.Store, prefs model.Preferences, launch launchOptions) error {
	raise := make(chan struct{}, 1)
	guard, err := platform.AcquireSingleInstance(appName, func() {
		select {
		case raise <- struct{}{}:
		default:
		}
	})
	if errors.Is(err, platform.ErrAlreadyRunning) {
		slog.Info("already running, raised the existing window")
		return nil
	}
	if err != nil {
		slog.Warn("single instance guard unavailable", "error", err)
	} else {
		defer func() {
			_ = guard.Release()
		}()
	}

	fyneApp := app.NewWithID(appID)
	fyneApp.SetIcon(resources.Icon())
	fonts := fonttheme.New(fynetheme.DefaultTheme(), platform.ResolveFont)
	fyneApp.Settings().SetTheme(fonts)

	execPath, err := os.Executable()
	if err != nil {
		slog.Warn("resolve executable", "error", err)
	}

	var prefsWindow *preferences.Window
	showPreferences := func() {
		if prefsWindow != nil {
			prefsWindow.Show()
		}
	}

	win := widgetwin.New(fyneApp, fonts, widgetwin.Callbacks{
		OnPreferences: showPreferences,
		OnQuit:        fyneApp.Quit,
	})
	service := platform.NewService()
	ctrl := controller.New(prefs, clock.New(prefs.Mode), controller.Config{
		Store:      store,
		Hints:      win.Hints(),
		Integrator: platform.NewIntegration(service, appName, execPath),
		View:       win,
		Fonts:      platform.ListFonts,
		Screens:    platform.Screens,
		KWin:       platform.NewKWinHelper(service, appName),
	})
	win.Bind(ctrl)
	if !launch.explicitPosition {
		ctrl.RecoverPosition()
	}
	prefsWindow = preferences.New(fyneApp, ctrl, ctrl)

	var trayManager *tray.Manager
	if desktopApp, ok := fyneApp.(desktop.App); ok {
		desktopApp.SetSystemTrayIcon(resources.Icon())
		trayManager = tray.New(desktopApp, ctrl, tray.Callbacks{
			OnShow:        win.Raise,
			OnPreferences: showPreferences,
			OnQuit:        win.Quit,
		})
	} else {
		slog.Debug("system tray unsupported on this platform")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ticker := clock.NewTicker(clock.DefaultTickInterval)
	events := ticker.Subscribe(1)
	go func() {
		for range events {
			fyne.Do(func() {
				win.Redraw()
				if trayManager != nil {
					trayManager.Sync()
				}
			})
		}
	}()

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-raise:
				fyne.Do(win.Raise)
			}
		}
	}()

	go func() {
		err := store.Watch(ctx, func(reloaded model.Preferences) {
			fyne.Do(func() {
				ctrl.ApplyExternal(reloaded)
			})
		})
		if err != nil {
			slog.Warn("preferences watcher stopped", "path", store.Path(), "error", err)
		}
	}()

	fyneApp.Lifecycle().SetOnStarted(func() {
		time.AfterFunc(hintDelay, func() {
			fyne.Do(ctrl.ApplyHints)
		})
	})

	slog.Info("starting", "mode", prefs.Mode, "size", prefs.Size, "theme", prefs.Theme, "preferences", store.Path())
	ticker.Start()
	defer ticker.Stop()

	win.Show()
	fyneApp.Run()
	return nil
}
