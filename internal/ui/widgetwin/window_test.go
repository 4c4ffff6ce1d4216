package widgetwin

import (
	"errors"
	"testing"
	"time"

	"deskclock/internal/core/clock"
	"deskclock/internal/core/controller"
	"deskclock/internal/core/model"
	"deskclock/internal/core/render"
	"deskclock/internal/ui/fonttheme"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	fynetheme "fyne.io/fyne/v2/theme"
)

func newTestWindow(t *testing.T, prefs model.Preferences) (*Window, *controller.Controller) {
	t.Helper()
	app := test.NewApp()
	t.Cleanup(app.Quit)

	fonts := fonttheme.New(fynetheme.DefaultTheme(), func(string) (string, error) {
		return "", errors.New("no fonts in tests")
	})
	win := New(app, fonts, Callbacks{})
	t.Cleanup(win.hints.Stop)

	machine := clock.New(prefs.Mode, clock.WithNow(time.Now))
	ctrl := controller.New(prefs, machine, controller.Config{View: win})
	win.Bind(ctrl)
	return win, ctrl
}

func TestApplyResizesToFace(t *testing.T) {
	win, ctrl := newTestWindow(t, model.DefaultPreferences())

	if got := win.window.Canvas().Size(); got != fyne.NewSize(200, 200) {
		t.Fatalf("expected 200x200, got %v", got)
	}

	ctrl.SetSize(300)
	if got := win.window.Canvas().Size(); got != fyne.NewSize(300, 300) {
		t.Fatalf("expected 300x300, got %v", got)
	}

	ctrl.SetMode(model.ModeStopwatch)
	if got := win.window.Canvas().Size(); got != fyne.NewSize(300, 360) {
		t.Fatalf("expected readout band below face, got %v", got)
	}
}

func TestApplyThemeBackground(t *testing.T) {
	win, ctrl := newTestWindow(t, model.DefaultPreferences())

	ctrl.SetTheme("dark")
	before := win.background.FillColor
	ctrl.SetTheme("light")
	if win.background.FillColor == before {
		t.Fatal("expected background to follow theme")
	}
}

func TestShowMenuOpensPopUp(t *testing.T) {
	win, _ := newTestWindow(t, model.DefaultPreferences())
	win.Show()

	win.ShowMenu(render.Point{X: 20, Y: 20})
	if win.window.Canvas().Overlays().Top() == nil {
		t.Fatal("expected context menu overlay")
	}
}

func TestReportErrorShowsDialog(t *testing.T) {
	win, _ := newTestWindow(t, model.DefaultPreferences())
	win.Show()

	win.ReportError(errors.New("install autostart entry: permission denied"))
	if win.window.Canvas().Overlays().Top() == nil {
		t.Fatal("expected error dialog overlay")
	}
}

func TestQuitPersistsAndCallsBack(t *testing.T) {
	app := test.NewApp()
	t.Cleanup(app.Quit)
	fonts := fonttheme.New(fynetheme.DefaultTheme(), nil)

	quit := false
	win := New(app, fonts, Callbacks{OnQuit: func() { quit = true }})
	t.Cleanup(win.hints.Stop)

	store := &countingStore{}
	prefs := model.DefaultPreferences()
	ctrl := controller.New(prefs, clock.New(prefs.Mode), controller.Config{Store: store, View: win})
	win.Bind(ctrl)

	win.Quit()
	if !quit {
		t.Fatal("expected quit callback")
	}
	if store.saves != 1 {
		t.Fatalf("expected geometry saved on quit, got %d saves", store.saves)
	}
}

type countingStore struct {
	saves int
}

func (store *countingStore) Save(model.Preferences) error {
	store.saves++
	return nil
}
