package render

import (
	"math"

	"deskclock/internal/core/model"
)

// Region classifies a point inside the widget.
type Region string

const (
	RegionFace       Region = "face"
	RegionReadout    Region = "readout"
	RegionBackground Region = "background"
)

// HitTest reports which region of the widget contains the local point.
func HitTest(size int, mode model.Mode, point Point) Region {
	width, height := Bounds(size, mode)
	if point.X < 0 || point.Y < 0 || point.X > width || point.Y > height {
		return RegionBackground
	}
	side := width
	if point.Y > side {
		if mode == model.ModeStopwatch {
			return RegionReadout
		}
		return RegionBackground
	}
	dx := float64(point.X - side/2)
	dy := float64(point.Y - side/2)
	if math.Hypot(dx, dy) <= float64(side/2) {
		return RegionFace
	}
	return RegionBackground
}
