package controller

import (
	"log/slog"

	"deskclock/internal/core/model"
	"deskclock/internal/core/render"
)

// CenterOnScreen moves the widget to the middle of the screen it is on, or of
// the first screen when it is on none.
func (controller *Controller) CenterOnScreen() {
	screens := controller.listScreens()
	if len(screens) == 0 {
		return
	}
	screen, ok := model.ScreenAt(screens, controller.windowCenter())
	if !ok {
		screen = screens[0]
	}
	controller.centerOn(screen)
}

// RecoverPosition centers the widget on the first screen when its saved
// position is on no attached screen. It reports whether the widget moved.
func (controller *Controller) RecoverPosition() bool {
	screens := controller.listScreens()
	if len(screens) == 0 {
		return false
	}
	if _, ok := model.ScreenAt(screens, controller.windowCenter()); ok {
		return false
	}
	slog.Info("saved position is off screen, centering", "x", controller.prefs.Position.X, "y", controller.prefs.Position.Y)
	controller.centerOn(screens[0])
	return true
}

func (controller *Controller) centerOn(screen model.Rect) {
	width, height := controller.windowSize()
	position := screen.Center(width, height)
	if position == controller.prefs.Position {
		return
	}
	controller.prefs.Position = position
	controller.commit()
	controller.hint("move", controller.hints.Move(position.X, position.Y))
}

func (controller *Controller) listScreens() []model.Rect {
	if controller.screens == nil {
		return nil
	}
	screens, err := controller.screens()
	if err != nil {
		slog.Debug("screen layout unavailable", "error", err)
		return nil
	}
	return screens
}

func (controller *Controller) windowSize() (int, int) {
	width, height := render.Bounds(controller.prefs.Size, controller.machine.Mode())
	return int(width), int(height)
}

func (controller *Controller) windowCenter() model.Position {
	width, height := controller.windowSize()
	return model.Position{
		X: controller.prefs.Position.X + width/2,
		Y: controller.prefs.Position.Y + height/2,
	}
}
