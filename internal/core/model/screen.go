package model

// Rect is a screen area in pixels.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Contains reports whether point lies inside the rectangle.
func (rect Rect) Contains(point Position) bool {
	return point.X >= rect.X && point.X < rect.X+rect.Width &&
		point.Y >= rect.Y && point.Y < rect.Y+rect.Height
}

// Center returns the top-left corner that centers a width x height window.
func (rect Rect) Center(width, height int) Position {
	return Position{
		X: rect.X + (rect.Width-width)/2,
		Y: rect.Y + (rect.Height-height)/2,
	}
}

// ScreenAt returns the first screen containing point.
func ScreenAt(screens []Rect, point Position) (Rect, bool) {
	for _, screen := range screens {
		if screen.Contains(point) {
			return screen, true
		}
	}
	return Rect{}, false
}
