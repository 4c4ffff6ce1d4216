package storage

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"deskclock/internal/core/model"
	"deskclock/internal/core/theme"
	"gopkg.in/yaml.v3"
)

const (
	preferencesFileName = "preferences.yaml"
	recentSaves         = 4
)

type yamlPreferences struct {
	Size         int     `yaml:"size"`
	Opacity      float64 `yaml:"opacity"`
	Theme        string  `yaml:"theme"`
	ReadoutFont  string  `yaml:"readout_font"`
	PositionX    int     `yaml:"position_x"`
	PositionY    int     `yaml:"position_y"`
	Mode         string  `yaml:"mode"`
	Layer        string  `yaml:"layer"`
	ShowSeconds  bool    `yaml:"show_seconds"`
	ShowInMenu   bool    `yaml:"show_in_menu"`
	StartAtLogin bool    `yaml:"start_at_login"`
}

// Store reads and writes the preferences file.
type Store struct {
	path string

	mu     sync.Mutex
	recent [][]byte
}

// NewStore returns a store under the user config directory for appName.
func NewStore(appName string) (*Store, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("resolve user config dir: %w", err)
	}
	return NewStoreAt(filepath.Join(configDir, appName, preferencesFileName)), nil
}

// NewStoreAt returns a store backed by an explicit file path.
func NewStoreAt(path string) *Store {
	return &Store{path: path}
}

// Path returns the preferences file location.
func (store *Store) Path() string {
	return store.path
}

// Load reads user preferences from YAML.
// A missing file yields defaults and no error. A malformed file yields
// defaults together with the parse error so the caller can log it.
func (store *Store) Load() (model.Preferences, error) {
	defaults := model.DefaultPreferences()

	rawData, err := os.ReadFile(store.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaults, nil
		}
		return defaults, fmt.Errorf("read preferences file: %w", err)
	}

	prefs, err := decodePreferences(rawData)
	if err != nil {
		return defaults, err
	}
	return prefs, nil
}

// Save writes user preferences to YAML.
func (store *Store) Save(prefs model.Preferences) error {
	if err := os.MkdirAll(filepath.Dir(store.path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	serialized, err := yaml.Marshal(toYAML(prefs.Normalize()))
	if err != nil {
		return fmt.Errorf("marshal preferences yaml: %w", err)
	}

	// Recorded before the write so the watcher never sees the content first.
	store.remember(serialized)
	if err := writeFileAtomic(store.path, serialized, 0o644); err != nil {
		return fmt.Errorf("write preferences file: %w", err)
	}
	return nil
}

// remember records content written by Save. A few entries are kept because
// watcher events for one save can arrive after the next save has started.
func (store *Store) remember(data []byte) {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.recent = append(store.recent, data)
	if len(store.recent) > recentSaves {
		store.recent = store.recent[len(store.recent)-recentSaves:]
	}
}

// wroteLast reports whether data equals the content of a recent Save.
func (store *Store) wroteLast(data []byte) bool {
	store.mu.Lock()
	defer store.mu.Unlock()
	for _, saved := range store.recent {
		if bytes.Equal(saved, data) {
			return true
		}
	}
	return false
}

// writeFileAtomic writes to a temporary file in the same directory and renames
// it over path, so readers see either the old or the new content in full.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

func decodePreferences(rawData []byte) (model.Preferences, error) {
	fileData := toYAML(model.DefaultPreferences())
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return model.DefaultPreferences(), fmt.Errorf("parse preferences yaml: %w", err)
	}
	return fromYAML(fileData), nil
}

func toYAML(prefs model.Preferences) yamlPreferences {
	return yamlPreferences{
		Size:         prefs.Size,
		Opacity:      prefs.Opacity,
		Theme:        prefs.Theme,
		ReadoutFont:  prefs.ReadoutFont,
		PositionX:    prefs.Position.X,
		PositionY:    prefs.Position.Y,
		Mode:         string(prefs.Mode),
		Layer:        string(prefs.Layer),
		ShowSeconds:  prefs.ShowSeconds,
		ShowInMenu:   prefs.ShowInMenu,
		StartAtLogin: prefs.StartAtLogin,
	}
}

func fromYAML(fileData yamlPreferences) model.Preferences {
	prefs := model.DefaultPreferences()

	prefs.Size = model.ClampSize(fileData.Size)
	prefs.Opacity = model.ClampOpacity(fileData.Opacity)
	if palette, ok := theme.Lookup(fileData.Theme); ok {
		prefs.Theme = palette.Name
	}
	prefs.ReadoutFont = fileData.ReadoutFont
	prefs.Position = model.Position{X: fileData.PositionX, Y: fileData.PositionY}
	if mode, err := model.ParseMode(fileData.Mode); err == nil {
		prefs.Mode = mode
	}
	if layer, err := model.ParseLayer(fileData.Layer); err == nil {
		prefs.Layer = layer
	}
	prefs.ShowSeconds = fileData.ShowSeconds
	prefs.ShowInMenu = fileData.ShowInMenu
	prefs.StartAtLogin = fileData.StartAtLogin

	return prefs.Normalize()
}
