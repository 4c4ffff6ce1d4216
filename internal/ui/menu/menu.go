package menu

import (
	"fmt"
	"math"

	"deskclock/internal/core/controller"
	"deskclock/internal/core/model"
	"deskclock/internal/core/theme"

	"fyne.io/fyne/v2"
)

// Title is the label shared by the context and tray menus.
const Title = "deskclock"

var (
	sizePresets    = []int{100, 150, 200, 300, 400}
	opacityPresets = []float64{1, 0.9, 0.75, 0.5, 0.25}
	layerLabels    = map[model.Layer]string{
		model.LayerAboveAll: "Always on top",
		model.LayerNormal:   "Normal",
		model.LayerBelowAll: "Always below",
	}
)

// Callbacks defines handlers for actions the controller does not own.
type Callbacks struct {
	OnPreferences func()
	OnQuit        func()
}

// Build returns a menu reflecting the controller's current state. It is
// rebuilt on every open so checked items and the font list stay current.
func Build(ctrl *controller.Controller, callbacks Callbacks) *fyne.Menu {
	prefs := ctrl.Preferences()
	machine := ctrl.Machine()

	items := []*fyne.MenuItem{
		submenu("Mode", modeItems(ctrl, prefs.Mode)...),
	}

	if prefs.Mode == model.ModeStopwatch {
		label := "Start"
		if machine.Running() {
			label = "Stop"
		}
		items = append(items,
			fyne.NewMenuItem(label, ctrl.ToggleStopwatch),
			fyne.NewMenuItem("Reset", ctrl.ResetStopwatch),
		)
	}

	items = append(items,
		fyne.NewMenuItemSeparator(),
		submenu("Theme", themeItems(ctrl, prefs.Theme)...),
		submenu("Size", sizeItems(ctrl, prefs.Size)...),
		submenu("Opacity", opacityItems(ctrl, prefs.Opacity)...),
		submenu("Layer", layerItems(ctrl, prefs.Layer)...),
		fyne.NewMenuItem("Center on screen", ctrl.CenterOnScreen),
		submenu("KWin helper", kwinItems(ctrl)...),
		submenu("Readout font", fontItems(ctrl, prefs.ReadoutFont)...),
		toggle("Show seconds", prefs.ShowSeconds, ctrl.SetShowSeconds),
		fyne.NewMenuItemSeparator(),
		toggle("Show in applications menu", prefs.ShowInMenu, ctrl.SetShowInMenu),
		toggle("Start at login", prefs.StartAtLogin, ctrl.SetStartAtLogin),
		fyne.NewMenuItemSeparator(),
	)
	if callbacks.OnPreferences != nil {
		items = append(items, fyne.NewMenuItem("Preferences...", callbacks.OnPreferences))
	}
	items = append(items,
		fyne.NewMenuItem("Quit", func() {
			if callbacks.OnQuit != nil {
				callbacks.OnQuit()
			}
		}),
	)

	return fyne.NewMenu(Title, items...)
}

func modeItems(ctrl *controller.Controller, current model.Mode) []*fyne.MenuItem {
	return []*fyne.MenuItem{
		choice("Clock", current == model.ModeClock, func() { ctrl.SetMode(model.ModeClock) }),
		choice("Stopwatch", current == model.ModeStopwatch, func() { ctrl.SetMode(model.ModeStopwatch) }),
	}
}

func themeItems(ctrl *controller.Controller, current string) []*fyne.MenuItem {
	names := theme.Names()
	items := make([]*fyne.MenuItem, 0, len(names))
	for _, name := range names {
		items = append(items, choice(name, name == current, func() { ctrl.SetTheme(name) }))
	}
	return items
}

func sizeItems(ctrl *controller.Controller, current int) []*fyne.MenuItem {
	items := make([]*fyne.MenuItem, 0, len(sizePresets))
	for _, size := range sizePresets {
		label := fmt.Sprintf("%d px", size)
		items = append(items, choice(label, size == current, func() { ctrl.SetSize(size) }))
	}
	return items
}

func opacityItems(ctrl *controller.Controller, current float64) []*fyne.MenuItem {
	items := make([]*fyne.MenuItem, 0, len(opacityPresets))
	for _, opacity := range opacityPresets {
		label := fmt.Sprintf("%d%%", int(math.Round(opacity*100)))
		items = append(items, choice(label, math.Abs(opacity-current) < 0.005, func() { ctrl.SetOpacity(opacity) }))
	}
	return items
}

func layerItems(ctrl *controller.Controller, current model.Layer) []*fyne.MenuItem {
	layers := model.Layers()
	items := make([]*fyne.MenuItem, 0, len(layers))
	for _, layer := range layers {
		items = append(items, choice(layerLabels[layer], layer == current, func() { ctrl.SetLayer(layer) }))
	}
	return items
}

func kwinItems(ctrl *controller.Controller) []*fyne.MenuItem {
	rule := toggle("Enable keep-above rule", ctrl.KWinRuleEnabled(), ctrl.SetKWinRule)
	reload := fyne.NewMenuItem("Reload KWin rules", ctrl.ReloadKWinRules)
	if ctrl.KWinAvailable() {
		return []*fyne.MenuItem{rule, reload}
	}
	rule.Disabled = true
	reload.Disabled = true
	unavailable := fyne.NewMenuItem("Unavailable outside KDE/KWin", nil)
	unavailable.Disabled = true
	return []*fyne.MenuItem{rule, reload, unavailable}
}

func fontItems(ctrl *controller.Controller, current string) []*fyne.MenuItem {
	items := []*fyne.MenuItem{
		choice("Default", current == "", func() { ctrl.SetReadoutFont("") }),
	}
	fonts := ctrl.AvailableFonts()
	if len(fonts) == 0 {
		return items
	}
	items = append(items, fyne.NewMenuItemSeparator())
	for _, family := range fonts {
		items = append(items, choice(family, family == current, func() { ctrl.SetReadoutFont(family) }))
	}
	return items
}

func submenu(label string, items ...*fyne.MenuItem) *fyne.MenuItem {
	item := fyne.NewMenuItem(label, nil)
	item.ChildMenu = fyne.NewMenu("", items...)
	return item
}

func choice(label string, checked bool, action func()) *fyne.MenuItem {
	item := fyne.NewMenuItem(label, action)
	item.Checked = checked
	return item
}

func toggle(label string, checked bool, set func(bool)) *fyne.MenuItem {
	return choice(label, checked, func() { set(!checked) })
}
