package preferences

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"deskclock/internal/core/model"
	"deskclock/internal/core/theme"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

const defaultFontLabel = "Default"

var layerLabels = map[model.Layer]string{
	model.LayerAboveAll: "Always on top",
	model.LayerNormal:   "Normal",
	model.LayerBelowAll: "Always below",
}

// Source supplies the current preferences and font list when the form opens.
type Source interface {
	Preferences() model.Preferences
	AvailableFonts() []string
}

// Window handles the preferences UI.
type Window struct {
	window       fyne.Window
	source       Source
	editor       Editor
	settings     Settings
	size         *widget.Entry
	opacity      *widget.Slider
	theme        *widget.Select
	layer        *widget.Select
	font         *widget.Select
	showSeconds  *widget.Check
	showInMenu   *widget.Check
	startAtLogin *widget.Check
}

// New creates a preferences window. Changes are written through editor.
func New(app fyne.App, source Source, editor Editor) *Window {
	window := app.NewWindow("deskclock preferences")

	size := widget.NewEntry()
	opacity := widget.NewSlider(model.MinOpacity, model.MaxOpacity)
	opacity.Step = 0.05

	themeSelect := widget.NewSelect(theme.Names(), nil)

	layerOptions := make([]string, 0, len(layerLabels))
	for _, layer := range model.Layers() {
		layerOptions = append(layerOptions, layerLabels[layer])
	}
	layerSelect := widget.NewSelect(layerOptions, nil)
	fontSelect := widget.NewSelect([]string{defaultFontLabel}, nil)

	showSeconds := widget.NewCheck("Show seconds", nil)
	showInMenu := widget.NewCheck("Show in applications menu", nil)
	startAtLogin := widget.NewCheck("Start at login", nil)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Appearance", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Size"), size, widget.NewLabel(fmt.Sprintf("px (%d-%d)", model.MinSize, model.MaxSize))),
		widget.NewLabel("Opacity"),
		opacity,
		container.NewHBox(widget.NewLabel("Theme"), themeSelect),
		container.NewHBox(widget.NewLabel("Readout font"), fontSelect),
		showSeconds,
		widget.NewLabelWithStyle("Desktop", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Layer"), layerSelect),
		showInMenu,
		startAtLogin,
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(380, 420))
	window.SetCloseIntercept(window.Hide)

	prefs := &Window{
		window:       window,
		source:       source,
		editor:       editor,
		size:         size,
		opacity:      opacity,
		theme:        themeSelect,
		layer:        layerSelect,
		font:         fontSelect,
		showSeconds:  showSeconds,
		showInMenu:   showInMenu,
		startAtLogin: startAtLogin,
	}

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = window.Hide
	return prefs
}

// Show reloads the current values and displays the window.
func (prefs *Window) Show() {
	prefs.load(FromPreferences(prefs.source.Preferences()), prefs.source.AvailableFonts())
	prefs.window.Show()
	prefs.window.RequestFocus()
}

func (prefs *Window) load(settings Settings, fonts []string) {
	prefs.settings = settings

	prefs.size.SetText(strconv.Itoa(settings.Size))
	prefs.opacity.SetValue(settings.Opacity)
	prefs.theme.SetSelected(settings.Theme)
	prefs.layer.SetSelected(layerLabels[settings.Layer])

	options := append([]string{defaultFontLabel}, fonts...)
	if settings.ReadoutFont != "" && !contains(fonts, settings.ReadoutFont) {
		options = append(options, settings.ReadoutFont)
	}
	prefs.font.SetOptions(options)
	if settings.ReadoutFont == "" {
		prefs.font.SetSelected(defaultFontLabel)
	} else {
		prefs.font.SetSelected(settings.ReadoutFont)
	}

	prefs.showSeconds.SetChecked(settings.ShowSeconds)
	prefs.showInMenu.SetChecked(settings.ShowInMenu)
	prefs.startAtLogin.SetChecked(settings.StartAtLogin)
}

func (prefs *Window) handleSave() {
	ApplyChanges(prefs.editor, prefs.settings, prefs.read())
	prefs.window.Hide()
}

// read collects form values. Unparseable sizes keep the previous value.
func (prefs *Window) read() Settings {
	settings := prefs.settings

	if size, ok := parsePositiveInt(prefs.size.Text); ok {
		settings.Size = model.ClampSize(size)
	}
	// The slider snaps to its step; ignore drift smaller than one step.
	if math.Abs(prefs.opacity.Value-settings.Opacity) >= prefs.opacity.Step/2 {
		settings.Opacity = prefs.opacity.Value
	}
	if prefs.theme.Selected != "" {
		settings.Theme = prefs.theme.Selected
	}
	for layer, label := range layerLabels {
		if label == prefs.layer.Selected {
			settings.Layer = layer
		}
	}
	switch prefs.font.Selected {
	case "", defaultFontLabel:
		settings.ReadoutFont = ""
	default:
		settings.ReadoutFont = prefs.font.Selected
	}
	settings.ShowSeconds = prefs.showSeconds.Checked
	settings.ShowInMenu = prefs.showInMenu.Checked
	settings.StartAtLogin = prefs.startAtLogin.Checked
	return settings
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}

func contains(values []string, target string) bool {
	for _, value := range values {
		if value == target {
			return true
		}
	}
	return false
}
