package controller

import (
	"deskclock/internal/core/model"
	"deskclock/internal/core/render"
)

// EventKind is the kind of pointer event delivered by the toolkit.
type EventKind string

const (
	EventPress        EventKind = "press"
	EventMove         EventKind = "move"
	EventRelease      EventKind = "release"
	EventSecondaryTap EventKind = "secondary_tap"
)

// DragSlop is how far the pointer may travel before a press becomes a drag.
const DragSlop = 4

// PointerEvent carries the pointer position in widget and screen coordinates.
type PointerEvent struct {
	Kind   EventKind
	Local  render.Point
	Screen model.Position
}

// Geometry is the window's top-left corner and face size.
type Geometry struct {
	Position model.Position
	Size     int
}

type route struct {
	kind   EventKind
	region render.Region
}

type handler func(controller *Controller, event PointerEvent, region render.Region)

type pressState struct {
	screen   model.Position
	origin   model.Position
	region   render.Region
	dragging bool
}

func defaultRoutes() map[route]handler {
	routes := make(map[route]handler)
	for _, region := range []render.Region{render.RegionFace, render.RegionReadout, render.RegionBackground} {
		routes[route{EventPress, region}] = (*Controller).beginPress
		routes[route{EventMove, region}] = (*Controller).dragTo
		routes[route{EventRelease, region}] = (*Controller).endPress
		routes[route{EventSecondaryTap, region}] = (*Controller).openMenu
	}
	return routes
}

// HandlePointer dispatches a pointer event through the routing table.
func (controller *Controller) HandlePointer(event PointerEvent) {
	region := render.HitTest(controller.prefs.Size, controller.machine.Mode(), event.Local)
	if next, ok := controller.routes[route{event.Kind, region}]; ok {
		next(controller, event, region)
	}
}

// Dragging reports whether a drag-to-move is in progress.
func (controller *Controller) Dragging() bool {
	return controller.press != nil && controller.press.dragging
}

func (controller *Controller) beginPress(event PointerEvent, region render.Region) {
	controller.press = &pressState{
		screen: event.Screen,
		origin: controller.prefs.Position,
		region: region,
	}
}

func (controller *Controller) dragTo(event PointerEvent, _ render.Region) {
	press := controller.press
	if press == nil {
		return
	}
	if !press.dragging && distance(event.Screen, press.screen) <= DragSlop {
		return
	}
	press.dragging = true

	position := model.Position{
		X: press.origin.X + event.Screen.X - press.screen.X,
		Y: press.origin.Y + event.Screen.Y - press.screen.Y,
	}
	if position == controller.prefs.Position {
		return
	}
	controller.prefs.Position = position
	controller.hint("move", controller.hints.Move(position.X, position.Y))
}

func (controller *Controller) endPress(event PointerEvent, region render.Region) {
	press := controller.press
	if press == nil {
		return
	}
	controller.dragTo(event, region)
	controller.press = nil

	if press.dragging {
		controller.save()
		return
	}
	if press.region == render.RegionFace && region == render.RegionFace {
		controller.ToggleStopwatch()
	}
}

func (controller *Controller) openMenu(event PointerEvent, _ render.Region) {
	controller.press = nil
	controller.view.ShowMenu(event.Local)
}
