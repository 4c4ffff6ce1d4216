package platform

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"deskclock/internal/core/model"
)

// listX11Screens asks xrandr for the monitor layout and falls back to the
// root window size reported by xdotool.
func listX11Screens(run commandRunner) ([]model.Rect, error) {
	output, err := run("xrandr", "--listmonitors")
	if err == nil {
		if screens := parseXrandrMonitors(string(output)); len(screens) > 0 {
			return screens, nil
		}
	}

	output, fallbackErr := run("xdotool", "getdisplaygeometry")
	if fallbackErr != nil {
		return nil, fmt.Errorf("list screens: %w", errors.Join(err, fallbackErr))
	}
	screen, ok := parseDisplayGeometry(string(output))
	if !ok {
		return nil, fmt.Errorf("list screens: unexpected xdotool output %q", strings.TrimSpace(string(output)))
	}
	return []model.Rect{screen}, nil
}

// parseXrandrMonitors reads lines such as " 0: +*DP-1 2560/597x1440/336+0+0  DP-1".
// The primary monitor, marked with '*', is returned first.
func parseXrandrMonitors(output string) []model.Rect {
	var screens []model.Rect
	for _, line := range strings.Split(output, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 3 || !strings.HasSuffix(fields[0], ":") {
			continue
		}
		screen, ok := parseMonitorGeometry(fields[2])
		if !ok {
			continue
		}
		if strings.Contains(fields[1], "*") {
			screens = append([]model.Rect{screen}, screens...)
			continue
		}
		screens = append(screens, screen)
	}
	return screens
}

func parseMonitorGeometry(field string) (model.Rect, bool) {
	parts := strings.Split(field, "+")
	if len(parts) != 3 {
		return model.Rect{}, false
	}
	widthPart, heightPart, ok := strings.Cut(parts[0], "x")
	if !ok {
		return model.Rect{}, false
	}
	values := make([]int, 0, 4)
	for _, raw := range []string{widthPart, heightPart, parts[1], parts[2]} {
		raw, _, _ = strings.Cut(raw, "/")
		value, err := strconv.Atoi(raw)
		if err != nil {
			return model.Rect{}, false
		}
		values = append(values, value)
	}
	if values[0] <= 0 || values[1] <= 0 {
		return model.Rect{}, false
	}
	return model.Rect{X: values[2], Y: values[3], Width: values[0], Height: values[1]}, true
}

func parseDisplayGeometry(output string) (model.Rect, bool) {
	fields := strings.Fields(output)
	if len(fields) != 2 {
		return model.Rect{}, false
	}
	width, widthErr := strconv.Atoi(fields[0])
	height, heightErr := strconv.Atoi(fields[1])
	if widthErr != nil || heightErr != nil || width <= 0 || height <= 0 {
		return model.Rect{}, false
	}
	return model.Rect{Width: width, Height: height}, true
}
