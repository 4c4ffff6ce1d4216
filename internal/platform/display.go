package platform

import (
	"errors"
	"os"
	"runtime"
)

// ErrNoDisplay means no display server is reachable.
var ErrNoDisplay = errors.New("no display server available (DISPLAY and WAYLAND_DISPLAY are unset)")

// CheckDisplay fails on Linux when neither X11 nor Wayland is reachable.
func CheckDisplay() error {
	return checkDisplay(runtime.GOOS, os.Getenv)
}

func checkDisplay(goos string, getenv func(string) string) error {
	if goos != "linux" {
		return nil
	}
	if getenv("DISPLAY") == "" && getenv("WAYLAND_DISPLAY") == "" {
		return ErrNoDisplay
	}
	return nil
}
