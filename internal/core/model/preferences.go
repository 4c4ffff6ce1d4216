package model

import (
	"fmt"
	"strings"
)

// Mode selects what the face displays.
type Mode string

const (
	ModeClock     Mode = "clock"
	ModeStopwatch Mode = "stopwatch"
)

// Layer is the stacking hint requested from the window manager.
type Layer string

const (
	LayerAboveAll Layer = "on-top"
	LayerNormal   Layer = "normal"
	LayerBelowAll Layer = "on-bottom"
)

const (
	MinSize     = 64
	MaxSize     = 1024
	DefaultSize = 200

	MinOpacity     = 0.1
	MaxOpacity     = 1.0
	DefaultOpacity = 1.0

	DefaultTheme = "classic"
)

// Position is the top-left corner of the widget window in screen pixels.
type Position struct {
	X int
	Y int
}

// Preferences contains every persisted user setting.
type Preferences struct {
	Size         int
	Opacity      float64
	Theme        string
	ReadoutFont  string
	Position     Position
	Mode         Mode
	Layer        Layer
	ShowSeconds  bool
	ShowInMenu   bool
	StartAtLogin bool
}

// DefaultPreferences returns the built-in defaults.
func DefaultPreferences() Preferences {
	return Preferences{
		Size:        DefaultSize,
		Opacity:     DefaultOpacity,
		Theme:       DefaultTheme,
		Position:    Position{X: 100, Y: 100},
		Mode:        ModeClock,
		Layer:       LayerAboveAll,
		ShowSeconds: true,
	}
}

// Normalize clamps numeric fields and replaces unknown enum values with defaults.
// Theme names are validated by the caller against the theme table.
func (prefs Preferences) Normalize() Preferences {
	prefs.Size = ClampSize(prefs.Size)
	prefs.Opacity = ClampOpacity(prefs.Opacity)
	if _, err := ParseMode(string(prefs.Mode)); err != nil {
		prefs.Mode = ModeClock
	}
	if _, err := ParseLayer(string(prefs.Layer)); err != nil {
		prefs.Layer = LayerAboveAll
	}
	prefs.Theme = strings.TrimSpace(prefs.Theme)
	if prefs.Theme == "" {
		prefs.Theme = DefaultTheme
	}
	prefs.ReadoutFont = strings.TrimSpace(prefs.ReadoutFont)
	return prefs
}

// ClampSize keeps a window size within [MinSize, MaxSize].
func ClampSize(size int) int {
	if size < MinSize {
		return MinSize
	}
	if size > MaxSize {
		return MaxSize
	}
	return size
}

// ClampOpacity keeps opacity within [MinOpacity, MaxOpacity].
func ClampOpacity(opacity float64) float64 {
	if opacity != opacity || opacity < MinOpacity {
		return MinOpacity
	}
	if opacity > MaxOpacity {
		return MaxOpacity
	}
	return opacity
}

// ParseMode converts user input into a Mode.
func ParseMode(value string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(value))) {
	case ModeClock:
		return ModeClock, nil
	case ModeStopwatch:
		return ModeStopwatch, nil
	default:
		return "", fmt.Errorf("unknown mode %q (want clock or stopwatch)", value)
	}
}

// ParseLayer converts user input into a Layer.
func ParseLayer(value string) (Layer, error) {
	switch Layer(strings.ToLower(strings.TrimSpace(value))) {
	case LayerAboveAll:
		return LayerAboveAll, nil
	case LayerNormal:
		return LayerNormal, nil
	case LayerBelowAll:
		return LayerBelowAll, nil
	default:
		return "", fmt.Errorf("unknown layer %q (want on-top, normal or on-bottom)", value)
	}
}

// Layers lists the layer hints in menu order.
func Layers() []Layer {
	return []Layer{LayerAboveAll, LayerNormal, LayerBelowAll}
}
