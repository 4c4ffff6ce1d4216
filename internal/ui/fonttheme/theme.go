// Package fonttheme wraps a Fyne theme so the monospace font, used for the
// stopwatch readout, can be swapped for a user-selected font file.
package fonttheme

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
)

// Resolver maps a font family name to a font file path.
type Resolver func(family string) (string, error)

// Theme delegates to a base theme except for the monospace font.
type Theme struct {
	base    fyne.Theme
	resolve Resolver

	mu     sync.RWMutex
	family string
	mono   fyne.Resource
}

// New wraps base. resolve is consulted whenever the family changes.
func New(base fyne.Theme, resolve Resolver) *Theme {
	return &Theme{base: base, resolve: resolve}
}

// SetFamily loads the font for family. An empty family restores the base font.
// It reports whether the active font changed.
func (t *Theme) SetFamily(family string) (bool, error) {
	family = strings.TrimSpace(family)

	t.mu.RLock()
	unchanged := family == t.family
	t.mu.RUnlock()
	if unchanged {
		return false, nil
	}

	var resource fyne.Resource
	if family != "" {
		loaded, err := t.load(family)
		if err != nil {
			return false, err
		}
		resource = loaded
	}

	t.mu.Lock()
	t.family = family
	t.mono = resource
	t.mu.Unlock()
	return true, nil
}

// Family returns the active readout family, empty for the default.
func (t *Theme) Family() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.family
}

func (t *Theme) load(family string) (fyne.Resource, error) {
	if t.resolve == nil {
		return nil, fmt.Errorf("load font %q: no resolver", family)
	}
	path, err := t.resolve(family)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ttf", ".otf":
	default:
		return nil, fmt.Errorf("load font %q: unsupported font file %s", family, filepath.Base(path))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load font %q: %w", family, err)
	}
	return fyne.NewStaticResource(filepath.Base(path), data), nil
}

func (t *Theme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	return t.base.Color(name, variant)
}

func (t *Theme) Font(style fyne.TextStyle) fyne.Resource {
	if style.Monospace {
		t.mu.RLock()
		mono := t.mono
		t.mu.RUnlock()
		if mono != nil {
			return mono
		}
	}
	return t.base.Font(style)
}

func (t *Theme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

func (t *Theme) Size(name fyne.ThemeSizeName) float32 {
	return t.base.Size(name)
}
