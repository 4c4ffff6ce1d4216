//go:build linux

package platform

import "deskclock/internal/core/model"

// Screens returns the monitor rectangles of the X11 display.
func Screens() ([]model.Rect, error) {
	return listX11Screens(runCommand)
}
