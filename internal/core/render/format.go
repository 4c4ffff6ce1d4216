package render

import (
	"fmt"
	"time"
)

// FormatElapsed renders a stopwatch reading as MM:SS.mmm, or H:MM:SS.mmm past an hour.
func FormatElapsed(elapsed time.Duration) string {
	if elapsed < 0 {
		elapsed = 0
	}
	millis := elapsed.Milliseconds()
	hours := millis / 3_600_000
	minutes := millis / 60_000 % 60
	seconds := millis / 1000 % 60
	millis = millis % 1000
	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d.%03d", hours, minutes, seconds, millis)
	}
	return fmt.Sprintf("%02d:%02d.%03d", minutes, seconds, millis)
}

// StatusLabel is the line shown above the stopwatch reading.
func StatusLabel(running bool) string {
	if running {
		return "STOPWATCH • RUNNING"
	}
	return "STOPWATCH • PAUSED"
}
