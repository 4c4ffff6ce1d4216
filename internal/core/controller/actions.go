package controller

import (
	"fmt"
	"log/slog"
	"strings"

	"deskclock/internal/core/model"
	"deskclock/internal/core/theme"
)

// SetMode switches between clock and stopwatch display.
func (controller *Controller) SetMode(mode model.Mode) {
	controller.machine.SetMode(mode)
	controller.prefs.Mode = controller.machine.Mode()
	controller.commit()
}

// ToggleStopwatch starts or stops the stopwatch. Ignored in clock mode.
func (controller *Controller) ToggleStopwatch() {
	if controller.machine.Mode() != model.ModeStopwatch {
		return
	}
	controller.machine.Toggle()
	controller.view.Redraw()
}

// ResetStopwatch zeroes and stops the stopwatch.
func (controller *Controller) ResetStopwatch() {
	controller.machine.Reset()
	controller.view.Redraw()
}

// SetTheme selects a palette by name. Unknown names are ignored.
func (controller *Controller) SetTheme(name string) {
	palette, ok := theme.Lookup(name)
	if !ok {
		slog.Warn("unknown theme", "theme", name)
		return
	}
	controller.prefs.Theme = palette.Name
	controller.commit()
}

// SetSize resizes the face. The size is clamped before it is saved.
func (controller *Controller) SetSize(size int) {
	controller.prefs.Size = size
	controller.commit()
}

// SetOpacity changes window opacity.
func (controller *Controller) SetOpacity(opacity float64) {
	controller.prefs.Opacity = opacity
	controller.commit()
	controller.hint("opacity", controller.hints.SetOpacity(controller.prefs.Opacity))
}

// SetLayer changes the stacking hint.
func (controller *Controller) SetLayer(layer model.Layer) {
	controller.prefs.Layer = layer
	controller.commit()
	controller.hint("layer", controller.hints.SetLayer(controller.prefs.Layer))
}

// SetReadoutFont selects the stopwatch readout font. An empty name restores the default.
func (controller *Controller) SetReadoutFont(name string) {
	controller.prefs.ReadoutFont = strings.TrimSpace(name)
	controller.commit()
}

// SetShowSeconds toggles the second hand and minute ticks.
func (controller *Controller) SetShowSeconds(show bool) {
	controller.prefs.ShowSeconds = show
	controller.commit()
}

// SetShowInMenu installs or removes the application launcher.
func (controller *Controller) SetShowInMenu(enabled bool) {
	if err := controller.integrate("menu entry", enabled, controller.integratorCall(Integrator.SetShowInMenu)); err != nil {
		return
	}
	controller.prefs.ShowInMenu = enabled
	controller.commit()
}

// SetStartAtLogin installs or removes the autostart entry.
func (controller *Controller) SetStartAtLogin(enabled bool) {
	if err := controller.integrate("autostart entry", enabled, controller.integratorCall(Integrator.SetStartAtLogin)); err != nil {
		return
	}
	controller.prefs.StartAtLogin = enabled
	controller.commit()
}

func (controller *Controller) integratorCall(call func(Integrator, bool) error) func(bool) error {
	return func(enabled bool) error {
		if controller.integrator == nil {
			return fmt.Errorf("desktop integration unavailable")
		}
		return call(controller.integrator, enabled)
	}
}

func (controller *Controller) integrate(what string, enabled bool, apply func(bool) error) error {
	err := apply(enabled)
	if err == nil {
		return nil
	}
	action := "remove"
	if enabled {
		action = "install"
	}
	err = fmt.Errorf("%s %s: %w", action, what, err)
	slog.Error("desktop integration failed", "error", err)
	controller.view.ReportError(err)
	return err
}

// KWinAvailable reports whether the KWin helper actions can be offered.
func (controller *Controller) KWinAvailable() bool {
	return controller.kwin != nil && controller.kwin.Available()
}

// KWinRuleEnabled reports whether the KWin keep-above rule is installed.
func (controller *Controller) KWinRuleEnabled() bool {
	if !controller.KWinAvailable() {
		return false
	}
	enabled, err := controller.kwin.RuleEnabled()
	if err != nil {
		slog.Debug("kwin rule state unknown", "error", err)
		return false
	}
	return enabled
}

// SetKWinRule installs or removes the KWin keep-above rule. Installing it
// also moves the widget to the top layer.
func (controller *Controller) SetKWinRule(enabled bool) {
	err := controller.integrate("KWin keep-above rule", enabled, func(enabled bool) error {
		if !controller.KWinAvailable() {
			return fmt.Errorf("KWin is not running in this session")
		}
		return controller.kwin.SetRuleEnabled(enabled)
	})
	if err != nil {
		return
	}
	if enabled {
		controller.SetLayer(model.LayerAboveAll)
	}
}

// ReloadKWinRules asks KWin to re-read its window rules.
func (controller *Controller) ReloadKWinRules() {
	if !controller.KWinAvailable() {
		return
	}
	if err := controller.kwin.Reload(); err != nil {
		err = fmt.Errorf("reload KWin rules (log out and back in if the rule is not applied): %w", err)
		slog.Warn("kwin reload failed", "error", err)
		controller.view.ReportError(err)
		return
	}
	slog.Info("kwin rules reloaded")
}
