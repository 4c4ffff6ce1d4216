package platform

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"deskclock/internal/core/model"
)

// commandRunner runs an external tool and returns its combined output.
type commandRunner func(name string, args ...string) ([]byte, error)

func runCommand(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).CombinedOutput()
}

// X11Hints sends window manager hints to an X11 window using the
// wmctrl, xdotool and xprop tools. Every call is best effort.
type X11Hints struct {
	windowID string
	run      commandRunner
}

// NewX11Hints targets the X11 window with the given id.
func NewX11Hints(windowID uintptr) *X11Hints {
	return &X11Hints{
		windowID: "0x" + strconv.FormatUint(uint64(windowID), 16),
		run:      runCommand,
	}
}

// SetLayer requests keep-above, keep-below or normal stacking.
func (hints *X11Hints) SetLayer(layer model.Layer) error {
	var steps [][]string
	switch layer {
	case model.LayerAboveAll:
		steps = [][]string{{"remove", "below"}, {"add", "above"}}
	case model.LayerBelowAll:
		steps = [][]string{{"remove", "above"}, {"add", "below"}}
	default:
		steps = [][]string{{"remove", "above"}, {"remove", "below"}}
	}
	for _, step := range steps {
		if err := hints.exec("wmctrl", "-i", "-r", hints.windowID, "-b", step[0]+","+step[1]); err != nil {
			return err
		}
	}
	return nil
}

// Move places the window's top-left corner at x, y.
func (hints *X11Hints) Move(x, y int) error {
	return hints.exec("xdotool", "windowmove", hints.windowID, strconv.Itoa(x), strconv.Itoa(y))
}

// SetOpacity sets _NET_WM_WINDOW_OPACITY, honoured by compositing managers.
func (hints *X11Hints) SetOpacity(opacity float64) error {
	opacity = model.ClampOpacity(opacity)
	value := uint32(opacity * float64(^uint32(0)))
	return hints.exec("xprop", "-id", hints.windowID,
		"-f", "_NET_WM_WINDOW_OPACITY", "32c",
		"-set", "_NET_WM_WINDOW_OPACITY", strconv.FormatUint(uint64(value), 10))
}

// SkipTaskbar keeps the widget out of taskbars and pagers.
func (hints *X11Hints) SkipTaskbar() error {
	return hints.exec("wmctrl", "-i", "-r", hints.windowID, "-b", "add,skip_taskbar,skip_pager")
}

func (hints *X11Hints) exec(name string, args ...string) error {
	output, err := hints.run(name, args...)
	if err != nil {
		return fmt.Errorf("%s: %w: %s", name, err, strings.TrimSpace(string(output)))
	}
	return nil
}
