package preferences

import (
	"deskclock/internal/core/model"
)

// Settings defines the preferences edited by the form.
type Settings struct {
	Size         int
	Opacity      float64
	Theme        string
	Layer        model.Layer
	ReadoutFont  string
	ShowSeconds  bool
	ShowInMenu   bool
	StartAtLogin bool
}

// Editor applies individual preference changes. The widget controller
// satisfies it.
type Editor interface {
	SetSize(size int)
	SetOpacity(opacity float64)
	SetTheme(name string)
	SetLayer(layer model.Layer)
	SetReadoutFont(name string)
	SetShowSeconds(show bool)
	SetShowInMenu(enabled bool)
	SetStartAtLogin(enabled bool)
}

// FromPreferences extracts the editable fields.
func FromPreferences(prefs model.Preferences) Settings {
	return Settings{
		Size:         prefs.Size,
		Opacity:      prefs.Opacity,
		Theme:        prefs.Theme,
		Layer:        prefs.Layer,
		ReadoutFont:  prefs.ReadoutFont,
		ShowSeconds:  prefs.ShowSeconds,
		ShowInMenu:   prefs.ShowInMenu,
		StartAtLogin: prefs.StartAtLogin,
	}
}

// ApplyChanges calls editor for every field that differs between before and
// after, so untouched fields do not trigger saves or desktop integration.
func ApplyChanges(editor Editor, before, after Settings) {
	if after.Size != before.Size {
		editor.SetSize(after.Size)
	}
	if after.Opacity != before.Opacity {
		editor.SetOpacity(after.Opacity)
	}
	if after.Theme != before.Theme {
		editor.SetTheme(after.Theme)
	}
	if after.Layer != before.Layer {
		editor.SetLayer(after.Layer)
	}
	if after.ReadoutFont != before.ReadoutFont {
		editor.SetReadoutFont(after.ReadoutFont)
	}
	if after.ShowSeconds != before.ShowSeconds {
		editor.SetShowSeconds(after.ShowSeconds)
	}
	if after.ShowInMenu != before.ShowInMenu {
		editor.SetShowInMenu(after.ShowInMenu)
	}
	if after.StartAtLogin != before.StartAtLogin {
		editor.SetStartAtLogin(after.StartAtLogin)
	}
}
