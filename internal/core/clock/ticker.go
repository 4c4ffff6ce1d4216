package clock

import (
	"sync"
	"time"
)

// DefaultTickInterval is the repaint interval used when none is configured.
const DefaultTickInterval = 40 * time.Millisecond

// Ticker emits tick events at a fixed interval to its subscribers.
type Ticker struct {
	mu       sync.Mutex
	interval time.Duration
	events   []chan Event
	stopCh   chan struct{}
	running  bool
}

// NewTicker creates a stopped ticker.
func NewTicker(interval time.Duration) *Ticker {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return &Ticker{interval: interval}
}

// Interval returns the tick interval.
func (ticker *Ticker) Interval() time.Duration {
	return ticker.interval
}

// Subscribe registers a new observer channel.
// Slow observers miss ticks instead of blocking the loop.
func (ticker *Ticker) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	ticker.mu.Lock()
	ticker.events = append(ticker.events, ch)
	ticker.mu.Unlock()
	return ch
}

// Start launches the ticking loop.
func (ticker *Ticker) Start() {
	ticker.mu.Lock()
	if ticker.running {
		ticker.mu.Unlock()
		return
	}
	ticker.running = true
	ticker.stopCh = make(chan struct{})
	stopCh := ticker.stopCh
	ticker.mu.Unlock()

	ticker.Notify(Event{Type: EventStateChange, At: time.Now()})
	go ticker.run(stopCh)
}

// Stop terminates the ticking loop and closes observers.
func (ticker *Ticker) Stop() {
	ticker.mu.Lock()
	if !ticker.running {
		ticker.mu.Unlock()
		return
	}
	close(ticker.stopCh)
	ticker.running = false
	events := ticker.events
	ticker.events = nil
	ticker.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

// Notify pushes an event to every observer outside the regular cadence.
func (ticker *Ticker) Notify(event Event) {
	ticker.mu.Lock()
	defer ticker.mu.Unlock()
	for _, ch := range ticker.events {
		select {
		case ch <- event:
		default:
		}
	}
}

func (ticker *Ticker) run(stopCh chan struct{}) {
	timer := time.NewTicker(ticker.interval)
	defer timer.Stop()

	for {
		select {
		case <-stopCh:
			return
		case tickTime := <-timer.C:
			ticker.Notify(Event{Type: EventTick, At: tickTime})
		}
	}
}
