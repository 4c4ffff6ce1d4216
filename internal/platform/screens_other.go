//go:build !linux && !windows

package platform

import "deskclock/internal/core/model"

// Screens is not available on this platform.
func Screens() ([]model.Rect, error) {
	return nil, ErrUnsupported
}
