package clock

import (
	"testing"
	"time"
)

func TestTickerEmitsTicks(t *testing.T) {
	ticker := NewTicker(5 * time.Millisecond)
	events := ticker.Subscribe(8)
	ticker.Start()
	defer ticker.Stop()

	deadline := time.After(2 * time.Second)
	ticks := 0
	for ticks < 3 {
		select {
		case event := <-events:
			if event.Type == EventTick {
				ticks++
			}
		case <-deadline:
			t.Fatalf("expected 3 ticks, got %d", ticks)
		}
	}
}

func TestTickerStopClosesSubscribers(t *testing.T) {
	ticker := NewTicker(time.Hour)
	events := ticker.Subscribe(1)
	ticker.Start()
	ticker.Stop()

	for range events {
	}
	ticker.Stop()
}

func TestNewTickerDefaultsInterval(t *testing.T) {
	if got := NewTicker(0).Interval(); got != DefaultTickInterval {
		t.Fatalf("expected %v, got %v", DefaultTickInterval, got)
	}
}
