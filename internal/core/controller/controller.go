package controller

import (
	"log/slog"
	"math"

	"deskclock/internal/core/clock"
	"deskclock/internal/core/model"
	"deskclock/internal/core/render"
	"deskclock/internal/core/theme"
)

// Store persists preferences.
type Store interface {
	Save(prefs model.Preferences) error
}

// Hints forwards best-effort requests to the window manager.
type Hints interface {
	SetLayer(layer model.Layer) error
	Move(x, y int) error
	SetOpacity(opacity float64) error
}

// Integrator installs or removes desktop integration entries.
type Integrator interface {
	SetShowInMenu(enabled bool) error
	SetStartAtLogin(enabled bool) error
}

// KWinHelper manages the optional KWin keep-above rule.
type KWinHelper interface {
	Available() bool
	RuleEnabled() (bool, error)
	SetRuleEnabled(enabled bool) error
	Reload() error
}

// ScreenProvider lists the monitor rectangles.
type ScreenProvider func() ([]model.Rect, error)

// View is the toolkit side of the widget.
type View interface {
	Apply(prefs model.Preferences)
	Redraw()
	ShowMenu(at render.Point)
	ReportError(err error)
}

// FontProvider lists the font families available right now.
type FontProvider func() ([]string, error)

// Config wires a controller to its collaborators. Nil members are replaced by no-ops.
type Config struct {
	Store      Store
	Hints      Hints
	Integrator Integrator
	View       View
	Fonts      FontProvider
	Screens    ScreenProvider
	KWin       KWinHelper
}

// Controller owns the widget state and turns input into state transitions.
// All methods must be called from the UI thread.
type Controller struct {
	prefs      model.Preferences
	machine    *clock.Machine
	store      Store
	hints      Hints
	integrator Integrator
	view       View
	fonts      FontProvider
	screens    ScreenProvider
	kwin       KWinHelper
	routes     map[route]handler
	press      *pressState
}

// New creates a controller for prefs. The machine starts in prefs.Mode.
func New(prefs model.Preferences, machine *clock.Machine, config Config) *Controller {
	prefs = sanitize(prefs)
	if machine == nil {
		machine = clock.New(prefs.Mode)
	}
	machine.SetMode(prefs.Mode)

	controller := &Controller{
		prefs:      prefs,
		machine:    machine,
		store:      config.Store,
		hints:      config.Hints,
		integrator: config.Integrator,
		view:       config.View,
		fonts:      config.Fonts,
		screens:    config.Screens,
		kwin:       config.KWin,
		routes:     defaultRoutes(),
	}
	if controller.store == nil {
		controller.store = nopStore{}
	}
	if controller.hints == nil {
		controller.hints = nopHints{}
	}
	if controller.view == nil {
		controller.view = nopView{}
	}
	return controller
}

// Preferences returns the current preferences.
func (controller *Controller) Preferences() model.Preferences {
	return controller.prefs
}

// Machine returns the clock/stopwatch state machine.
func (controller *Controller) Machine() *clock.Machine {
	return controller.machine
}

// Geometry returns the window position and face size.
func (controller *Controller) Geometry() Geometry {
	return Geometry{Position: controller.prefs.Position, Size: controller.prefs.Size}
}

// RenderInput collects everything the render engine needs for one frame.
func (controller *Controller) RenderInput() render.Input {
	return render.Input{
		Snapshot:    controller.machine.Snapshot(),
		Palette:     theme.Get(controller.prefs.Theme),
		Size:        controller.prefs.Size,
		ShowSeconds: controller.prefs.ShowSeconds,
		ReadoutFont: controller.prefs.ReadoutFont,
	}
}

// ApplyHints pushes layer, opacity and position to the window manager.
func (controller *Controller) ApplyHints() {
	controller.hint("layer", controller.hints.SetLayer(controller.prefs.Layer))
	controller.hint("opacity", controller.hints.SetOpacity(controller.prefs.Opacity))
	controller.hint("move", controller.hints.Move(controller.prefs.Position.X, controller.prefs.Position.Y))
}

// ApplyExternal adopts preferences edited outside the widget without saving them.
// Reloads arriving mid-drag are dropped; the drag's own save wins.
func (controller *Controller) ApplyExternal(prefs model.Preferences) {
	if controller.Dragging() {
		return
	}
	prefs = sanitize(prefs)
	if prefs == controller.prefs {
		return
	}
	controller.prefs = prefs
	controller.machine.SetMode(prefs.Mode)
	controller.view.Apply(prefs)
	controller.ApplyHints()
}

// AvailableFonts queries the font provider. Failures yield an empty list.
func (controller *Controller) AvailableFonts() []string {
	if controller.fonts == nil {
		return nil
	}
	fonts, err := controller.fonts()
	if err != nil {
		slog.Debug("font discovery failed", "error", err)
		return nil
	}
	return fonts
}

// Close persists the final geometry.
func (controller *Controller) Close() {
	controller.save()
}

func (controller *Controller) commit() {
	controller.prefs = sanitize(controller.prefs)
	controller.save()
	controller.view.Apply(controller.prefs)
}

func (controller *Controller) save() {
	if err := controller.store.Save(controller.prefs); err != nil {
		slog.Warn("save preferences failed", "error", err)
	}
}

func (controller *Controller) hint(name string, err error) {
	if err != nil {
		slog.Debug("window hint ignored", "hint", name, "error", err)
	}
}

func sanitize(prefs model.Preferences) model.Preferences {
	prefs = prefs.Normalize()
	if palette, ok := theme.Lookup(prefs.Theme); ok {
		prefs.Theme = palette.Name
	} else {
		prefs.Theme = theme.Default
	}
	return prefs
}

func distance(a, b model.Position) float64 {
	return math.Hypot(float64(a.X-b.X), float64(a.Y-b.Y))
}

type nopStore struct{}

func (nopStore) Save(model.Preferences) error { return nil }

type nopHints struct{}

func (nopHints) SetLayer(model.Layer) error { return nil }
func (nopHints) Move(int, int) error        { return nil }
func (nopHints) SetOpacity(float64) error   { return nil }

type nopView struct{}

func (nopView) Apply(model.Preferences) {}
func (nopView) Redraw()                 {}
func (nopView) ShowMenu(render.Point)   {}
func (nopView) ReportError(error)       {}
