package menu

import (
	"errors"
	"testing"
	"time"

	"deskclock/internal/core/clock"
	"deskclock/internal/core/controller"
	"deskclock/internal/core/model"

	"fyne.io/fyne/v2"
)

type recordingStore struct {
	saved []model.Preferences
}

func (store *recordingStore) Save(prefs model.Preferences) error {
	store.saved = append(store.saved, prefs)
	return nil
}

type stubKWin struct {
	enabled bool
}

func (kwin *stubKWin) Available() bool            { return true }
func (kwin *stubKWin) RuleEnabled() (bool, error) { return kwin.enabled, nil }
func (kwin *stubKWin) Reload() error              { return nil }

func (kwin *stubKWin) SetRuleEnabled(enabled bool) error {
	kwin.enabled = enabled
	return nil
}

func newController(t *testing.T, prefs model.Preferences, fonts controller.FontProvider) (*controller.Controller, *recordingStore) {
	t.Helper()
	return newControllerWith(t, prefs, controller.Config{Fonts: fonts})
}

func newControllerWith(t *testing.T, prefs model.Preferences, config controller.Config) (*controller.Controller, *recordingStore) {
	t.Helper()
	store := &recordingStore{}
	config.Store = store
	machine := clock.New(prefs.Mode, clock.WithNow(time.Now))
	return controller.New(prefs, machine, config), store
}

func find(t *testing.T, menu *fyne.Menu, labels ...string) *fyne.MenuItem {
	t.Helper()
	var item *fyne.MenuItem
	for _, label := range labels {
		item = nil
		for _, candidate := range menu.Items {
			if candidate.Label == label {
				item = candidate
				break
			}
		}
		if item == nil {
			t.Fatalf("menu item %q not found", label)
		}
		menu = item.ChildMenu
	}
	return item
}

func hasItem(menu *fyne.Menu, label string) bool {
	for _, item := range menu.Items {
		if item.Label == label {
			return true
		}
	}
	return false
}

func TestBuildReflectsPreferences(t *testing.T) {
	prefs := model.DefaultPreferences()
	prefs.Theme = "ocean"
	prefs.Size = 300
	prefs.Opacity = 0.75
	ctrl, _ := newController(t, prefs, nil)

	built := Build(ctrl, Callbacks{})

	if !find(t, built, "Mode", "Clock").Checked {
		t.Fatal("expected clock mode checked")
	}
	if !find(t, built, "Theme", "ocean").Checked {
		t.Fatal("expected ocean theme checked")
	}
	if !find(t, built, "Size", "300 px").Checked {
		t.Fatal("expected 300 px checked")
	}
	if !find(t, built, "Opacity", "75%").Checked {
		t.Fatal("expected 75% checked")
	}
	if !find(t, built, "Layer", "Always on top").Checked {
		t.Fatal("expected on-top layer checked")
	}
	if !find(t, built, "Show seconds").Checked {
		t.Fatal("expected show seconds checked")
	}
	if hasItem(built, "Start") || hasItem(built, "Reset") {
		t.Fatal("stopwatch controls should be hidden in clock mode")
	}
}

func TestStopwatchItems(t *testing.T) {
	prefs := model.DefaultPreferences()
	prefs.Mode = model.ModeStopwatch
	ctrl, _ := newController(t, prefs, nil)

	find(t, Build(ctrl, Callbacks{}), "Start").Action()
	if !ctrl.Machine().Running() {
		t.Fatal("expected stopwatch running after Start")
	}

	find(t, Build(ctrl, Callbacks{}), "Stop").Action()
	if ctrl.Machine().Running() {
		t.Fatal("expected stopwatch stopped after Stop")
	}

	find(t, Build(ctrl, Callbacks{}), "Reset").Action()
	if ctrl.Machine().Elapsed() != 0 {
		t.Fatal("expected zero elapsed after Reset")
	}
}

func TestActionsSavePreferences(t *testing.T) {
	tests := []struct {
		name  string
		path  []string
		check func(model.Preferences) bool
	}{
		{"theme", []string{"Theme", "dark"}, func(p model.Preferences) bool { return p.Theme == "dark" }},
		{"size", []string{"Size", "100 px"}, func(p model.Preferences) bool { return p.Size == 100 }},
		{"opacity", []string{"Opacity", "50%"}, func(p model.Preferences) bool { return p.Opacity == 0.5 }},
		{"layer", []string{"Layer", "Always below"}, func(p model.Preferences) bool { return p.Layer == model.LayerBelowAll }},
		{"mode", []string{"Mode", "Stopwatch"}, func(p model.Preferences) bool { return p.Mode == model.ModeStopwatch }},
		{"seconds", []string{"Show seconds"}, func(p model.Preferences) bool { return !p.ShowSeconds }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl, store := newController(t, model.DefaultPreferences(), nil)
			find(t, Build(ctrl, Callbacks{}), tt.path...).Action()

			if len(store.saved) != 1 {
				t.Fatalf("expected one save, got %d", len(store.saved))
			}
			if !tt.check(store.saved[0]) {
				t.Fatalf("unexpected saved preferences %+v", store.saved[0])
			}
		})
	}
}

func TestFontSubmenuQueriesProvider(t *testing.T) {
	calls := 0
	fonts := func() ([]string, error) {
		calls++
		return []string{"DejaVu Sans Mono", "Noto Sans"}, nil
	}
	prefs := model.DefaultPreferences()
	prefs.ReadoutFont = "Noto Sans"
	ctrl, store := newController(t, prefs, fonts)

	built := Build(ctrl, Callbacks{})
	if !find(t, built, "Readout font", "Noto Sans").Checked {
		t.Fatal("expected current font checked")
	}
	find(t, built, "Readout font", "Default").Action()
	Build(ctrl, Callbacks{})

	if calls != 2 {
		t.Fatalf("expected provider queried per build, got %d calls", calls)
	}
	if store.saved[0].ReadoutFont != "" {
		t.Fatalf("expected default font restored, got %q", store.saved[0].ReadoutFont)
	}
}

func TestFontSubmenuWithoutProvider(t *testing.T) {
	ctrl, _ := newController(t, model.DefaultPreferences(), func() ([]string, error) {
		return nil, errors.New("fc-list missing")
	})

	fontMenu := find(t, Build(ctrl, Callbacks{}), "Readout font").ChildMenu
	if len(fontMenu.Items) != 1 || fontMenu.Items[0].Label != "Default" {
		t.Fatalf("expected only the default entry, got %d items", len(fontMenu.Items))
	}
}

func TestQuitCallback(t *testing.T) {
	ctrl, _ := newController(t, model.DefaultPreferences(), nil)
	quit := false
	find(t, Build(ctrl, Callbacks{OnQuit: func() { quit = true }}), "Quit").Action()
	if !quit {
		t.Fatal("expected quit callback")
	}
}

func TestPreferencesItemOnlyWithCallback(t *testing.T) {
	ctrl, _ := newController(t, model.DefaultPreferences(), nil)
	if hasItem(Build(ctrl, Callbacks{}), "Preferences...") {
		t.Fatal("preferences item needs a callback")
	}

	opened := false
	find(t, Build(ctrl, Callbacks{OnPreferences: func() { opened = true }}), "Preferences...").Action()
	if !opened {
		t.Fatal("expected preferences callback")
	}
}

func TestCenterOnScreenItem(t *testing.T) {
	prefs := model.DefaultPreferences()
	prefs.Size = 200
	ctrl, store := newControllerWith(t, prefs, controller.Config{
		Screens: func() ([]model.Rect, error) {
			return []model.Rect{{Width: 1000, Height: 800}}, nil
		},
	})

	find(t, Build(ctrl, Callbacks{}), "Center on screen").Action()

	if len(store.saved) != 1 || store.saved[0].Position != (model.Position{X: 400, Y: 300}) {
		t.Fatalf("expected centered position to be saved, got %+v", store.saved)
	}
}

func TestKWinHelperDisabledOutsideKWin(t *testing.T) {
	ctrl, _ := newController(t, model.DefaultPreferences(), nil)
	built := Build(ctrl, Callbacks{})

	for _, label := range []string{"Enable keep-above rule", "Reload KWin rules", "Unavailable outside KDE/KWin"} {
		if !find(t, built, "KWin helper", label).Disabled {
			t.Fatalf("expected %q to be disabled", label)
		}
	}
}

func TestKWinHelperToggle(t *testing.T) {
	kwin := &stubKWin{}
	prefs := model.DefaultPreferences()
	prefs.Layer = model.LayerNormal
	ctrl, store := newControllerWith(t, prefs, controller.Config{KWin: kwin})

	rule := find(t, Build(ctrl, Callbacks{}), "KWin helper", "Enable keep-above rule")
	if rule.Checked || rule.Disabled {
		t.Fatalf("expected an enabled, unchecked toggle, got %+v", rule)
	}
	rule.Action()
	if !kwin.enabled {
		t.Fatal("expected rule to be installed")
	}
	if store.saved[len(store.saved)-1].Layer != model.LayerAboveAll {
		t.Fatal("expected the top layer after enabling the rule")
	}
	if !find(t, Build(ctrl, Callbacks{}), "KWin helper", "Enable keep-above rule").Checked {
		t.Fatal("expected toggle checked after install")
	}
	if hasItem(find(t, Build(ctrl, Callbacks{}), "KWin helper").ChildMenu, "Unavailable outside KDE/KWin") {
		t.Fatal("availability note shown inside KWin")
	}
}
