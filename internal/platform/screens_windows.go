//go:build windows

package platform

import (
	"fmt"
	"sync"
	"syscall"

	"deskclock/internal/core/model"
)

type win32Rect struct {
	Left   int32
	Top    int32
	Right  int32
	Bottom int32
}

var (
	user32DLL               = syscall.NewLazyDLL("user32.dll")
	procEnumDisplayMonitors = user32DLL.NewProc("EnumDisplayMonitors")

	monitorMu       sync.Mutex
	monitorRects    []model.Rect
	monitorCallback = syscall.NewCallback(func(monitor, dc uintptr, bounds *win32Rect, data uintptr) uintptr {
		monitorRects = append(monitorRects, model.Rect{
			X:      int(bounds.Left),
			Y:      int(bounds.Top),
			Width:  int(bounds.Right - bounds.Left),
			Height: int(bounds.Bottom - bounds.Top),
		})
		return 1
	})
)

// Screens returns the bounds of every attached monitor.
func Screens() ([]model.Rect, error) {
	monitorMu.Lock()
	defer monitorMu.Unlock()

	monitorRects = nil
	ok, _, err := procEnumDisplayMonitors.Call(0, 0, monitorCallback, 0)
	if ok == 0 {
		return nil, fmt.Errorf("enumerate monitors: %w", err)
	}
	return append([]model.Rect(nil), monitorRects...), nil
}
