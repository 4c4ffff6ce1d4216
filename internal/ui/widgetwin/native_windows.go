//go:build windows

package widgetwin

import (
	"fmt"
	"math"
	"syscall"

	"deskclock/internal/core/controller"
	"deskclock/internal/core/model"
	"deskclock/internal/platform"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver"
)

const (
	gwlExStyle  int32 = -20
	wsExLayered       = 0x00080000
	lwaAlpha          = 0x2

	swpNoSize     = 0x0001
	swpNoMove     = 0x0002
	swpNoZOrder   = 0x0004
	swpNoActivate = 0x0010
)

var (
	hwndTopmost   = ^uintptr(0) // -1
	hwndNoTopmost = ^uintptr(1) // -2
	hwndBottom    = uintptr(1)
)

var (
	user32DLL                      = syscall.NewLazyDLL("user32.dll")
	procGetWindowLongPtrW          = user32DLL.NewProc("GetWindowLongPtrW")
	procSetWindowLongPtrW          = user32DLL.NewProc("SetWindowLongPtrW")
	procSetLayeredWindowAttributes = user32DLL.NewProc("SetLayeredWindowAttributes")
	procSetWindowPos               = user32DLL.NewProc("SetWindowPos")
)

type win32Hints struct {
	hwnd uintptr
}

func nativeHints(window fyne.Window) (controller.Hints, error) {
	nativeWindow, ok := window.(driver.NativeWindow)
	if !ok {
		return nil, platform.ErrUnsupported
	}

	var hwnd uintptr
	nativeWindow.RunNative(func(context any) {
		switch value := context.(type) {
		case driver.WindowsWindowContext:
			hwnd = value.HWND
		case *driver.WindowsWindowContext:
			hwnd = value.HWND
		}
	})
	if hwnd == 0 {
		return nil, fmt.Errorf("win32 window handle: %w", platform.ErrUnsupported)
	}
	return &win32Hints{hwnd: hwnd}, nil
}

func (hints *win32Hints) SetLayer(layer model.Layer) error {
	after := hwndNoTopmost
	switch layer {
	case model.LayerAboveAll:
		after = hwndTopmost
	case model.LayerBelowAll:
		after = hwndBottom
	}
	return hints.setWindowPos(after, 0, 0, swpNoMove|swpNoSize|swpNoActivate)
}

func (hints *win32Hints) Move(x, y int) error {
	return hints.setWindowPos(0, x, y, swpNoSize|swpNoZOrder|swpNoActivate)
}

func (hints *win32Hints) SetOpacity(opacity float64) error {
	alpha := uint8(math.Round(model.ClampOpacity(opacity) * 255))

	style, _, _ := procGetWindowLongPtrW.Call(hints.hwnd, int32ToUintptr(gwlExStyle))
	if style&wsExLayered == 0 {
		procSetWindowLongPtrW.Call(hints.hwnd, int32ToUintptr(gwlExStyle), style|wsExLayered)
	}
	ok, _, err := procSetLayeredWindowAttributes.Call(hints.hwnd, 0, uintptr(alpha), uintptr(lwaAlpha))
	if ok == 0 {
		return fmt.Errorf("set layered window attributes: %w", err)
	}
	return nil
}

func (hints *win32Hints) setWindowPos(after uintptr, x, y int, flags uintptr) error {
	ok, _, err := procSetWindowPos.Call(hints.hwnd, after, intToUintptr(x), intToUintptr(y), 0, 0, flags)
	if ok == 0 {
		return fmt.Errorf("set window pos: %w", err)
	}
	return nil
}

func int32ToUintptr(value int32) uintptr {
	return uintptr(uint32(value))
}

func intToUintptr(value int) uintptr {
	return int32ToUintptr(int32(value))
}
