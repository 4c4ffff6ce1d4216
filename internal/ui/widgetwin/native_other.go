//go:build !linux && !windows

package widgetwin

import (
	"deskclock/internal/core/controller"
	"deskclock/internal/platform"

	"fyne.io/fyne/v2"
)

func nativeHints(fyne.Window) (controller.Hints, error) {
	return nil, platform.ErrUnsupported
}
