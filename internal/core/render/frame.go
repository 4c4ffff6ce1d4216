package render

import (
	"image/color"
	"math"

	"deskclock/internal/core/clock"
	"deskclock/internal/core/model"
	"deskclock/internal/core/theme"
)

// Point is a position in window-local pixels.
type Point struct {
	X float32
	Y float32
}

// HandKind identifies a hand on the face.
type HandKind string

const (
	HandHour   HandKind = "hour"
	HandMinute HandKind = "minute"
	HandSecond HandKind = "second"
)

// Line is a straight stroke.
type Line struct {
	From  Point
	To    Point
	Width float32
	Color color.NRGBA
}

// Circle is a filled disc with an optional outline.
type Circle struct {
	Center      Point
	Radius      float32
	Fill        color.NRGBA
	Stroke      color.NRGBA
	StrokeWidth float32
}

// Hand is a line from the center together with its angle in degrees.
type Hand struct {
	Kind  HandKind
	Angle float64
	Line  Line
}

// Text is a label centered horizontally on Position.X with its top at Position.Y.
type Text struct {
	Content  string
	Position Point
	Size     float32
	Color    color.NRGBA
	Font     string
}

// Frame is the complete set of draw commands for one repaint.
type Frame struct {
	Width   float32
	Height  float32
	Face    Circle
	Ticks   []Line
	Hands   []Hand
	Hub     Circle
	Readout *Text
	Status  *Text
}

// Input is everything the render engine reads.
type Input struct {
	Snapshot    clock.Snapshot
	Palette     theme.Palette
	Size        int
	ShowSeconds bool
	ReadoutFont string
}

const (
	hourHandLength   = 0.50
	minuteHandLength = 0.70
	secondHandLength = 0.85
	readoutBand      = 0.2
)

// Bounds returns the content size for a face of the given size and mode.
// Stopwatch mode adds a band beneath the circle for the digital readout.
func Bounds(size int, mode model.Mode) (float32, float32) {
	side := float32(model.ClampSize(size))
	if mode == model.ModeStopwatch {
		return side, side + side*readoutBand
	}
	return side, side
}

// Build produces the draw commands for input. It has no side effects.
func Build(input Input) Frame {
	width, height := Bounds(input.Size, input.Snapshot.Mode)
	side := width
	center := Point{X: side / 2, Y: side / 2}
	rimWidth := maxf(2, side*0.03)
	radius := side/2 - rimWidth
	palette := input.Palette

	frame := Frame{
		Width:  width,
		Height: height,
		Face: Circle{
			Center:      center,
			Radius:      radius,
			Fill:        palette.Face,
			Stroke:      palette.Rim,
			StrokeWidth: rimWidth,
		},
	}

	showMinorTicks := input.ShowSeconds || input.Snapshot.Mode == model.ModeStopwatch
	for position := 0; position < 60; position++ {
		angle := float64(position) * 6
		if position%5 == 0 {
			frame.Ticks = append(frame.Ticks, Line{
				From:  polar(center, radius*0.82, angle),
				To:    polar(center, radius*0.96, angle),
				Width: maxf(1.5, side*0.02),
				Color: palette.MajorTick,
			})
			continue
		}
		if showMinorTicks {
			frame.Ticks = append(frame.Ticks, Line{
				From:  polar(center, radius*0.90, angle),
				To:    polar(center, radius*0.96, angle),
				Width: maxf(1, side*0.006),
				Color: palette.MinorTick,
			})
		}
	}

	snapshot := input.Snapshot
	if snapshot.Mode == model.ModeStopwatch {
		frame.Hands = []Hand{
			hand(HandMinute, ElapsedMinuteAngle(snapshot.Elapsed), center, radius*minuteHandLength, side*0.03, palette.MinuteHand),
			hand(HandSecond, ElapsedSecondAngle(snapshot.Elapsed), center, radius*secondHandLength, side*0.012, palette.SecondHand),
		}
		band := side * readoutBand
		frame.Status = &Text{
			Content:  StatusLabel(snapshot.Running),
			Position: Point{X: side / 2, Y: side + band*0.04},
			Size:     maxf(7, band*0.22),
			Color:    fade(palette.Readout, 0.7),
		}
		frame.Readout = &Text{
			Content:  FormatElapsed(snapshot.Elapsed),
			Position: Point{X: side / 2, Y: side + band*0.32},
			Size:     band * 0.55,
			Color:    palette.Readout,
			Font:     input.ReadoutFont,
		}
	} else {
		now := snapshot.Now
		frame.Hands = []Hand{
			hand(HandHour, HourAngle(now), center, radius*hourHandLength, side*0.045, palette.HourHand),
			hand(HandMinute, MinuteAngle(now), center, radius*minuteHandLength, side*0.03, palette.MinuteHand),
		}
		if input.ShowSeconds {
			frame.Hands = append(frame.Hands,
				hand(HandSecond, SecondAngle(now), center, radius*secondHandLength, side*0.012, palette.SecondHand))
		}
	}

	frame.Hub = Circle{
		Center: center,
		Radius: maxf(3, side*0.035),
		Fill:   palette.Hub,
	}
	return frame
}

func hand(kind HandKind, angle float64, center Point, length, width float32, col color.NRGBA) Hand {
	return Hand{
		Kind:  kind,
		Angle: angle,
		Line: Line{
			From:  center,
			To:    polar(center, length, angle),
			Width: maxf(1, width),
			Color: col,
		},
	}
}

// polar converts an angle measured clockwise from twelve o'clock into a point.
func polar(center Point, length float32, degrees float64) Point {
	radians := degrees * math.Pi / 180
	return Point{
		X: center.X + length*float32(math.Sin(radians)),
		Y: center.Y - length*float32(math.Cos(radians)),
	}
}

func fade(col color.NRGBA, factor float64) color.NRGBA {
	col.A = uint8(float64(col.A) * factor)
	return col
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
