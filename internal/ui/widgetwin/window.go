package widgetwin

import (
	"log/slog"

	"deskclock/internal/core/controller"
	"deskclock/internal/core/model"
	"deskclock/internal/core/render"
	"deskclock/internal/core/theme"
	"deskclock/internal/ui/face"
	"deskclock/internal/ui/fonttheme"
	"deskclock/internal/ui/menu"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// Callbacks defines window-level handlers.
type Callbacks struct {
	OnPreferences func()
	OnQuit        func()
}

// Window is the undecorated clock window. It implements controller.View.
type Window struct {
	app        fyne.App
	window     fyne.Window
	fonts      *fonttheme.Theme
	callbacks  Callbacks
	controller *controller.Controller
	face       *face.Face
	background *canvas.Rectangle
	hints      *hintWorker
}

var _ controller.View = (*Window)(nil)

type splashWindowDriver interface {
	CreateSplashWindow() fyne.Window
}

// New creates the clock window. Bind must be called before Show.
func New(app fyne.App, fonts *fonttheme.Theme, callbacks Callbacks) *Window {
	var window fyne.Window
	if driver, ok := app.Driver().(splashWindowDriver); ok {
		// Splash windows are undecorated.
		window = driver.CreateSplashWindow()
		window.SetTitle(menu.Title)
	} else {
		window = app.NewWindow(menu.Title)
	}
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}
	window.SetPadded(false)
	window.SetFixedSize(true)

	widgetWindow := &Window{
		app:        app,
		window:     window,
		fonts:      fonts,
		callbacks:  callbacks,
		background: canvas.NewRectangle(theme.Get(theme.Default).Face),
	}
	widgetWindow.hints = newHintWorker(func() (controller.Hints, error) {
		return nativeHints(window)
	})
	return widgetWindow
}

// Hints returns the window manager hint sink. Backends are resolved on first use.
func (widgetWindow *Window) Hints() controller.Hints {
	return widgetWindow.hints
}

// Bind attaches the controller and builds the window content.
func (widgetWindow *Window) Bind(ctrl *controller.Controller) {
	widgetWindow.controller = ctrl
	widgetWindow.face = face.New(ctrl)
	widgetWindow.face.SetOrigin(widgetWindow.hints.Applied)
	widgetWindow.window.SetContent(container.NewStack(widgetWindow.background, widgetWindow.face))
	widgetWindow.window.SetCloseIntercept(widgetWindow.Quit)
	widgetWindow.Apply(ctrl.Preferences())
}

// Show displays the window.
func (widgetWindow *Window) Show() {
	widgetWindow.window.Show()
}

// Raise brings the window to the front, e.g. when a second instance starts.
func (widgetWindow *Window) Raise() {
	widgetWindow.window.Show()
	widgetWindow.window.RequestFocus()
}

// Apply resizes and restyles the window for prefs.
func (widgetWindow *Window) Apply(prefs model.Preferences) {
	if changed, err := widgetWindow.fonts.SetFamily(prefs.ReadoutFont); err != nil {
		slog.Warn("readout font unavailable", "font", prefs.ReadoutFont, "error", err)
	} else if changed {
		widgetWindow.app.Settings().SetTheme(widgetWindow.fonts)
	}

	widgetWindow.background.FillColor = theme.Get(prefs.Theme).Face
	widgetWindow.background.Refresh()

	width, height := render.Bounds(prefs.Size, prefs.Mode)
	widgetWindow.window.Resize(fyne.NewSize(width, height))
	widgetWindow.Redraw()
}

// Redraw repaints the face.
func (widgetWindow *Window) Redraw() {
	if widgetWindow.face != nil {
		widgetWindow.face.Refresh()
	}
}

// ShowMenu pops up the context menu at a window-local position.
func (widgetWindow *Window) ShowMenu(at render.Point) {
	if widgetWindow.controller == nil {
		return
	}
	built := menu.Build(widgetWindow.controller, menu.Callbacks{
		OnPreferences: widgetWindow.callbacks.OnPreferences,
		OnQuit:        widgetWindow.Quit,
	})
	widget.ShowPopUpMenuAtPosition(built, widgetWindow.window.Canvas(), fyne.NewPos(at.X, at.Y))
}

// ReportError shows err in a dialog.
func (widgetWindow *Window) ReportError(err error) {
	dialog.ShowError(err, widgetWindow.window)
}

// Quit persists the final geometry and ends the application.
func (widgetWindow *Window) Quit() {
	if widgetWindow.controller != nil {
		widgetWindow.controller.Close()
	}
	widgetWindow.hints.Stop()
	if widgetWindow.callbacks.OnQuit != nil {
		widgetWindow.callbacks.OnQuit()
		return
	}
	widgetWindow.window.Close()
}
