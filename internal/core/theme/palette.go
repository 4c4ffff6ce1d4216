package theme

import (
	"image/color"
	"sort"
	"strings"
)

// Palette is the set of colors used to paint the face.
type Palette struct {
	Name       string
	Face       color.NRGBA
	Rim        color.NRGBA
	HourHand   color.NRGBA
	MinuteHand color.NRGBA
	SecondHand color.NRGBA
	MajorTick  color.NRGBA
	MinorTick  color.NRGBA
	Hub        color.NRGBA
	Readout    color.NRGBA
}

const Default = "classic"

var palettes = map[string]Palette{
	"classic": {
		Name:       "classic",
		Face:       color.NRGBA{R: 250, G: 248, B: 240, A: 255},
		Rim:        color.NRGBA{R: 40, G: 40, B: 40, A: 255},
		HourHand:   color.NRGBA{R: 30, G: 30, B: 30, A: 255},
		MinuteHand: color.NRGBA{R: 30, G: 30, B: 30, A: 255},
		SecondHand: color.NRGBA{R: 200, G: 30, B: 30, A: 255},
		MajorTick:  color.NRGBA{R: 30, G: 30, B: 30, A: 255},
		MinorTick:  color.NRGBA{R: 120, G: 120, B: 120, A: 255},
		Hub:        color.NRGBA{R: 200, G: 30, B: 30, A: 255},
		Readout:    color.NRGBA{R: 30, G: 30, B: 30, A: 255},
	},
	"dark": {
		Name:       "dark",
		Face:       color.NRGBA{R: 28, G: 28, B: 32, A: 255},
		Rim:        color.NRGBA{R: 90, G: 90, B: 100, A: 255},
		HourHand:   color.NRGBA{R: 235, G: 235, B: 235, A: 255},
		MinuteHand: color.NRGBA{R: 235, G: 235, B: 235, A: 255},
		SecondHand: color.NRGBA{R: 232, G: 190, B: 66, A: 255},
		MajorTick:  color.NRGBA{R: 220, G: 220, B: 220, A: 255},
		MinorTick:  color.NRGBA{R: 110, G: 110, B: 120, A: 255},
		Hub:        color.NRGBA{R: 232, G: 190, B: 66, A: 255},
		Readout:    color.NRGBA{R: 232, G: 190, B: 66, A: 255},
	},
	"light": {
		Name:       "light",
		Face:       color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		Rim:        color.NRGBA{R: 200, G: 200, B: 205, A: 255},
		HourHand:   color.NRGBA{R: 60, G: 60, B: 70, A: 255},
		MinuteHand: color.NRGBA{R: 90, G: 90, B: 100, A: 255},
		SecondHand: color.NRGBA{R: 0, G: 122, B: 255, A: 255},
		MajorTick:  color.NRGBA{R: 90, G: 90, B: 100, A: 255},
		MinorTick:  color.NRGBA{R: 190, G: 190, B: 195, A: 255},
		Hub:        color.NRGBA{R: 0, G: 122, B: 255, A: 255},
		Readout:    color.NRGBA{R: 60, G: 60, B: 70, A: 255},
	},
	"ocean": {
		Name:       "ocean",
		Face:       color.NRGBA{R: 12, G: 46, B: 74, A: 255},
		Rim:        color.NRGBA{R: 64, G: 160, B: 190, A: 255},
		HourHand:   color.NRGBA{R: 220, G: 240, B: 245, A: 255},
		MinuteHand: color.NRGBA{R: 220, G: 240, B: 245, A: 255},
		SecondHand: color.NRGBA{R: 255, G: 140, B: 90, A: 255},
		MajorTick:  color.NRGBA{R: 160, G: 215, B: 230, A: 255},
		MinorTick:  color.NRGBA{R: 70, G: 120, B: 150, A: 255},
		Hub:        color.NRGBA{R: 255, G: 140, B: 90, A: 255},
		Readout:    color.NRGBA{R: 160, G: 215, B: 230, A: 255},
	},
	"solarized": {
		Name:       "solarized",
		Face:       color.NRGBA{R: 253, G: 246, B: 227, A: 255},
		Rim:        color.NRGBA{R: 147, G: 161, B: 161, A: 255},
		HourHand:   color.NRGBA{R: 7, G: 54, B: 66, A: 255},
		MinuteHand: color.NRGBA{R: 88, G: 110, B: 117, A: 255},
		SecondHand: color.NRGBA{R: 220, G: 50, B: 47, A: 255},
		MajorTick:  color.NRGBA{R: 88, G: 110, B: 117, A: 255},
		MinorTick:  color.NRGBA{R: 147, G: 161, B: 161, A: 255},
		Hub:        color.NRGBA{R: 181, G: 137, B: 0, A: 255},
		Readout:    color.NRGBA{R: 7, G: 54, B: 66, A: 255},
	},
}

// Lookup returns the palette for name. Unknown names report false.
func Lookup(name string) (Palette, bool) {
	palette, ok := palettes[strings.ToLower(strings.TrimSpace(name))]
	return palette, ok
}

// Get returns the palette for name, falling back to the default palette.
func Get(name string) Palette {
	if palette, ok := Lookup(name); ok {
		return palette
	}
	return palettes[Default]
}

// Names returns all theme names sorted alphabetically.
func Names() []string {
	names := make([]string, 0, len(palettes))
	for name := range palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
