package face

import (
	"testing"
	"time"

	"deskclock/internal/core/clock"
	"deskclock/internal/core/controller"
	"deskclock/internal/core/model"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
)

func newTestFace(t *testing.T, prefs model.Preferences, now *time.Time) (*Face, *controller.Controller) {
	t.Helper()
	test.NewApp()
	machine := clock.New(prefs.Mode, clock.WithNow(func() time.Time { return *now }))
	ctrl := controller.New(prefs, machine, controller.Config{})
	return New(ctrl), ctrl
}

func primary(x, y float32) *desktop.MouseEvent {
	return &desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y), AbsolutePosition: fyne.NewPos(x, y)},
		Button:     desktop.MouseButtonPrimary,
	}
}

func TestRendererObjectsFollowPreferences(t *testing.T) {
	now := time.Date(2024, 1, 1, 10, 10, 30, 0, time.UTC)
	prefs := model.DefaultPreferences()
	f, ctrl := newTestFace(t, prefs, &now)

	renderer := test.WidgetRenderer(f)
	// dial + 60 ticks + 3 hands + hub
	if got := len(renderer.Objects()); got != 65 {
		t.Fatalf("expected 65 objects, got %d", got)
	}
	if size := renderer.MinSize(); size.Width != 200 || size.Height != 200 {
		t.Fatalf("unexpected min size %v", size)
	}

	ctrl.SetShowSeconds(false)
	renderer.Refresh()
	// dial + 12 ticks + 2 hands + hub
	if got := len(renderer.Objects()); got != 16 {
		t.Fatalf("expected 16 objects without seconds, got %d", got)
	}
}

func TestStopwatchReadoutRendered(t *testing.T) {
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	prefs := model.DefaultPreferences()
	prefs.Mode = model.ModeStopwatch
	f, _ := newTestFace(t, prefs, &now)

	f.MouseDown(primary(100, 100))
	f.MouseUp(primary(100, 100))
	now = now.Add(1500 * time.Millisecond)
	f.MouseDown(primary(100, 100))
	f.MouseUp(primary(100, 100))

	renderer := test.WidgetRenderer(f)
	renderer.Refresh()
	objects := renderer.Objects()
	text, ok := objects[len(objects)-1].(*canvas.Text)
	if !ok {
		t.Fatalf("expected readout text last, got %T", objects[len(objects)-1])
	}
	if text.Text != "00:01.500" {
		t.Fatalf("expected 00:01.500, got %q", text.Text)
	}
	if !text.TextStyle.Monospace {
		t.Fatal("readout should use the monospace font slot")
	}
}

func TestSecondaryButtonDoesNotToggle(t *testing.T) {
	now := time.Now()
	prefs := model.DefaultPreferences()
	prefs.Mode = model.ModeStopwatch
	f, ctrl := newTestFace(t, prefs, &now)

	event := primary(100, 100)
	event.Button = desktop.MouseButtonSecondary
	f.MouseDown(event)
	f.MouseUp(event)

	if ctrl.Machine().Running() {
		t.Fatal("secondary button must not toggle the stopwatch")
	}
}

func TestDragMovesWindowPosition(t *testing.T) {
	now := time.Now()
	prefs := model.DefaultPreferences()
	prefs.Position = model.Position{X: 100, Y: 100}
	f, ctrl := newTestFace(t, prefs, &now)

	f.MouseDown(primary(10, 10))
	f.Dragged(&fyne.DragEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(60, 90), AbsolutePosition: fyne.NewPos(60, 90)},
		Dragged:    fyne.NewDelta(50, 80),
	})
	f.DragEnd()

	want := model.Position{X: 150, Y: 180}
	if got := ctrl.Preferences().Position; got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

type savingStore struct {
	saved []model.Preferences
}

func (store *savingStore) Save(prefs model.Preferences) error {
	store.saved = append(store.saved, prefs)
	return nil
}

// followingWindow is a hint sink whose window jumps to every requested position.
type followingWindow struct {
	position model.Position
}

func (window *followingWindow) SetLayer(model.Layer) error { return nil }
func (window *followingWindow) SetOpacity(float64) error   { return nil }
func (window *followingWindow) Move(x, y int) error {
	window.position = model.Position{X: x, Y: y}
	return nil
}

func newDragFace(t *testing.T, hints controller.Hints) (*Face, *controller.Controller, *savingStore) {
	t.Helper()
	test.NewApp()
	prefs := model.DefaultPreferences()
	prefs.Position = model.Position{X: 100, Y: 100}
	store := &savingStore{}
	ctrl := controller.New(prefs, clock.New(prefs.Mode), controller.Config{Store: store, Hints: hints})
	return New(ctrl), ctrl, store
}

func dragEvent(x, y float32) *fyne.DragEvent {
	return &fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y), AbsolutePosition: fyne.NewPos(x, y)}}
}

func TestDragWithStationaryWindow(t *testing.T) {
	f, ctrl, store := newDragFace(t, nil)

	f.MouseDown(primary(50, 50))
	for step := 1; step <= 10; step++ {
		f.Dragged(dragEvent(50+float32(step)*5, 50+float32(step)*8))
	}
	f.MouseUp(primary(100, 130))
	f.DragEnd()

	want := model.Position{X: 150, Y: 180}
	if got := ctrl.Preferences().Position; got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if len(store.saved) != 1 || store.saved[0].Position != want {
		t.Fatalf("expected one save at %v, got %+v", want, store.saved)
	}
}

func TestDragWithWindowFollowingPointer(t *testing.T) {
	window := &followingWindow{position: model.Position{X: 100, Y: 100}}
	f, ctrl, store := newDragFace(t, window)
	f.SetOrigin(func() (model.Position, bool) { return window.position, true })

	// Pointer travels on screen from (150,150) to (200,230); local
	// coordinates are relative to wherever the window is at that moment.
	local := func(screenX, screenY int) (float32, float32) {
		return float32(screenX - window.position.X), float32(screenY - window.position.Y)
	}
	f.MouseDown(primary(local(150, 150)))
	for step := 1; step <= 10; step++ {
		x, y := local(150+step*5, 150+step*8)
		f.Dragged(dragEvent(x, y))
	}
	f.MouseUp(primary(local(200, 230)))

	want := model.Position{X: 150, Y: 180}
	if got := ctrl.Preferences().Position; got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if window.position != want {
		t.Fatalf("expected window moved to %v, got %v", want, window.position)
	}
	if len(store.saved) != 1 {
		t.Fatalf("expected one save, got %d", len(store.saved))
	}
}
