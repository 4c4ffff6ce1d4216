//go:build linux

package widgetwin

import (
	"fmt"
	"log/slog"

	"deskclock/internal/core/controller"
	"deskclock/internal/platform"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver"
)

// nativeHints returns an X11 hint backend for window. Wayland compositors do
// not let clients position or restack themselves, so only X11 is handled.
func nativeHints(window fyne.Window) (controller.Hints, error) {
	nativeWindow, ok := window.(driver.NativeWindow)
	if !ok {
		return nil, platform.ErrUnsupported
	}

	var handle uintptr
	nativeWindow.RunNative(func(context any) {
		switch value := context.(type) {
		case driver.X11WindowContext:
			handle = value.WindowHandle
		case *driver.X11WindowContext:
			handle = value.WindowHandle
		}
	})
	if handle == 0 {
		return nil, fmt.Errorf("x11 window handle: %w", platform.ErrUnsupported)
	}

	hints := platform.NewX11Hints(handle)
	if err := hints.SkipTaskbar(); err != nil {
		slog.Debug("window hint rejected", "hint", "skip_taskbar", "error", err)
	}
	return hints, nil
}
