package render

import "time"

// HourAngle returns the hour hand angle in degrees clockwise from twelve.
// Minutes, seconds and nanoseconds all contribute so the hand never jumps.
func HourAngle(t time.Time) float64 {
	hours := float64(t.Hour()%12) +
		float64(t.Minute())/60 +
		float64(t.Second())/3600 +
		float64(t.Nanosecond())/3.6e12
	return hours * 30
}

// MinuteAngle returns the minute hand angle in degrees clockwise from twelve.
func MinuteAngle(t time.Time) float64 {
	minutes := float64(t.Minute()) +
		float64(t.Second())/60 +
		float64(t.Nanosecond())/6e10
	return minutes * 6
}

// SecondAngle returns the second hand angle. The hand sweeps continuously.
func SecondAngle(t time.Time) float64 {
	seconds := float64(t.Second()) + float64(t.Nanosecond())/1e9
	return seconds * 6
}

// ElapsedMinuteAngle places elapsed minutes on a sixty-minute dial.
func ElapsedMinuteAngle(elapsed time.Duration) float64 {
	if elapsed < 0 {
		elapsed = 0
	}
	minutes := elapsed.Minutes()
	whole := float64(int64(minutes) / 60 * 60)
	return (minutes - whole) * 6
}

// ElapsedSecondAngle places elapsed seconds on a sixty-second dial.
func ElapsedSecondAngle(elapsed time.Duration) float64 {
	if elapsed < 0 {
		elapsed = 0
	}
	seconds := elapsed.Seconds()
	whole := float64(int64(seconds) / 60 * 60)
	return (seconds - whole) * 6
}
