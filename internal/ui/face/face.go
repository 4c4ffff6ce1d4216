package face

import (
	"image/color"

	"deskclock/internal/core/controller"
	"deskclock/internal/core/model"
	"deskclock/internal/core/render"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// Face draws the clock and forwards pointer input to the controller.
type Face struct {
	widget.BaseWidget
	controller  *controller.Controller
	origin      Origin
	pressOrigin model.Position
	last        *controller.PointerEvent
}

// Origin reports where the window's top-left corner currently is on screen.
// ok is false while no move has been confirmed by the window system.
type Origin func() (position model.Position, ok bool)

var (
	_ desktop.Mouseable      = (*Face)(nil)
	_ fyne.Draggable         = (*Face)(nil)
	_ fyne.SecondaryTappable = (*Face)(nil)
	_ fyne.WidgetRenderer    = (*faceRenderer)(nil)
)

// New creates a face bound to ctrl.
func New(ctrl *controller.Controller) *Face {
	face := &Face{controller: ctrl}
	face.ExtendBaseWidget(face)
	return face
}

// SetOrigin installs the source of the window's real screen position. Without
// one, the window is assumed to stay where it was when the press started.
func (face *Face) SetOrigin(origin Origin) {
	face.origin = origin
}

func (face *Face) CreateRenderer() fyne.WidgetRenderer {
	renderer := &faceRenderer{face: face}
	renderer.Refresh()
	return renderer
}

func (face *Face) MouseDown(event *desktop.MouseEvent) {
	if event.Button != desktop.MouseButtonPrimary {
		return
	}
	face.dispatch(controller.EventPress, &event.PointEvent)
}

func (face *Face) MouseUp(event *desktop.MouseEvent) {
	if event.Button != desktop.MouseButtonPrimary {
		return
	}
	face.dispatch(controller.EventRelease, &event.PointEvent)
}

func (face *Face) Dragged(event *fyne.DragEvent) {
	face.dispatch(controller.EventMove, &event.PointEvent)
}

// DragEnd finishes a drag at the last known pointer position in case the
// driver does not deliver a matching MouseUp.
func (face *Face) DragEnd() {
	if face.last == nil {
		return
	}
	event := *face.last
	event.Kind = controller.EventRelease
	face.controller.HandlePointer(event)
}

func (face *Face) TappedSecondary(event *fyne.PointEvent) {
	face.dispatch(controller.EventSecondaryTap, event)
}

func (face *Face) dispatch(kind controller.EventKind, point *fyne.PointEvent) {
	if kind == controller.EventPress {
		face.pressOrigin = face.controller.Geometry().Position
	}
	// AbsolutePosition is canvas relative; the canvas origin is the window
	// origin. The requested position may not have been applied yet, so it is
	// never used here.
	origin := face.windowOrigin()
	event := controller.PointerEvent{
		Kind:  kind,
		Local: render.Point{X: point.Position.X, Y: point.Position.Y},
		Screen: model.Position{
			X: origin.X + int(point.AbsolutePosition.X),
			Y: origin.Y + int(point.AbsolutePosition.Y),
		},
	}
	face.last = &event
	face.controller.HandlePointer(event)
}

func (face *Face) windowOrigin() model.Position {
	if face.origin != nil {
		if position, ok := face.origin(); ok {
			return position
		}
	}
	return face.pressOrigin
}

type faceRenderer struct {
	face    *Face
	frame   render.Frame
	dial    *canvas.Circle
	hub     *canvas.Circle
	ticks   []*canvas.Line
	hands   []*canvas.Line
	readout *canvas.Text
	status  *canvas.Text
	objects []fyne.CanvasObject
}

func (renderer *faceRenderer) Destroy() {}

func (renderer *faceRenderer) Layout(fyne.Size) {}

func (renderer *faceRenderer) MinSize() fyne.Size {
	return fyne.NewSize(renderer.frame.Width, renderer.frame.Height)
}

func (renderer *faceRenderer) Objects() []fyne.CanvasObject {
	return renderer.objects
}

func (renderer *faceRenderer) Refresh() {
	renderer.frame = render.Build(renderer.face.controller.RenderInput())
	frame := renderer.frame

	if renderer.dial == nil {
		renderer.dial = canvas.NewCircle(color.Transparent)
		renderer.hub = canvas.NewCircle(color.Transparent)
		renderer.readout = canvas.NewText("", color.Transparent)
		renderer.readout.Alignment = fyne.TextAlignCenter
		renderer.readout.TextStyle = fyne.TextStyle{Monospace: true, Bold: true}
		renderer.status = canvas.NewText("", color.Transparent)
		renderer.status.Alignment = fyne.TextAlignCenter
	}

	applyCircle(renderer.dial, frame.Face)
	applyCircle(renderer.hub, frame.Hub)
	renderer.ticks = syncLines(renderer.ticks, frame.Ticks)

	handLines := make([]render.Line, len(frame.Hands))
	for index, hand := range frame.Hands {
		handLines[index] = hand.Line
	}
	renderer.hands = syncLines(renderer.hands, handLines)

	objects := make([]fyne.CanvasObject, 0, 3+len(renderer.ticks)+len(renderer.hands))
	objects = append(objects, renderer.dial)
	for _, tick := range renderer.ticks {
		objects = append(objects, tick)
	}
	for _, hand := range renderer.hands {
		objects = append(objects, hand)
	}
	objects = append(objects, renderer.hub)

	if frame.Status != nil {
		objects = append(objects, applyText(renderer.status, *frame.Status, frame))
	}
	if frame.Readout != nil {
		objects = append(objects, applyText(renderer.readout, *frame.Readout, frame))
	}
	renderer.objects = objects

	for _, object := range objects {
		object.Refresh()
	}
}

func applyText(text *canvas.Text, shape render.Text, frame render.Frame) *canvas.Text {
	text.Text = shape.Content
	text.Color = shape.Color
	text.TextSize = shape.Size
	text.Move(fyne.NewPos(0, shape.Position.Y))
	text.Resize(fyne.NewSize(frame.Width, shape.Size*1.3))
	return text
}

func applyCircle(circle *canvas.Circle, shape render.Circle) {
	circle.FillColor = shape.Fill
	circle.StrokeColor = shape.Stroke
	circle.StrokeWidth = shape.StrokeWidth
	circle.Position1 = fyne.NewPos(shape.Center.X-shape.Radius, shape.Center.Y-shape.Radius)
	circle.Position2 = fyne.NewPos(shape.Center.X+shape.Radius, shape.Center.Y+shape.Radius)
}

// syncLines reuses existing line objects and grows or shrinks the slice to match shapes.
func syncLines(lines []*canvas.Line, shapes []render.Line) []*canvas.Line {
	for len(lines) < len(shapes) {
		lines = append(lines, canvas.NewLine(color.Transparent))
	}
	lines = lines[:len(shapes)]
	for index, shape := range shapes {
		line := lines[index]
		line.StrokeColor = shape.Color
		line.StrokeWidth = shape.Width
		line.Position1 = fyne.NewPos(shape.From.X, shape.From.Y)
		line.Position2 = fyne.NewPos(shape.To.X, shape.To.Y)
	}
	return lines
}
