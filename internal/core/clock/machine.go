package clock

import (
	"sync"
	"time"

	"deskclock/internal/core/model"
)

// Option configures a Machine.
type Option func(*Machine)

// WithNow replaces the wall clock, mainly for simulated time.
func WithNow(now func() time.Time) Option {
	return func(machine *Machine) {
		if now != nil {
			machine.now = now
		}
	}
}

// Snapshot is a read-only view of the machine at one instant.
type Snapshot struct {
	Mode    model.Mode
	Running bool
	Elapsed time.Duration
	Now     time.Time
}

// Machine is the clock/stopwatch state machine.
// Stopwatch time accumulates only while running and survives mode switches.
type Machine struct {
	mu        sync.Mutex
	mode      model.Mode
	running   bool
	elapsed   time.Duration
	startedAt time.Time
	now       func() time.Time
}

// New creates a machine in the given mode with a stopped, zeroed stopwatch.
func New(mode model.Mode, options ...Option) *Machine {
	if mode != model.ModeStopwatch {
		mode = model.ModeClock
	}
	machine := &Machine{
		mode: mode,
		now:  time.Now,
	}
	for _, option := range options {
		option(machine)
	}
	return machine
}

// Mode returns the current display mode.
func (machine *Machine) Mode() model.Mode {
	machine.mu.Lock()
	defer machine.mu.Unlock()
	return machine.mode
}

// SetMode switches between clock and stopwatch display. Leaving stopwatch
// mode freezes the stopwatch at its current reading; returning finds it stopped.
func (machine *Machine) SetMode(mode model.Mode) {
	if mode != model.ModeStopwatch {
		mode = model.ModeClock
	}
	machine.mu.Lock()
	defer machine.mu.Unlock()
	if mode == model.ModeClock {
		machine.stopLocked()
	}
	machine.mode = mode
}

// Running reports whether the stopwatch is running.
func (machine *Machine) Running() bool {
	machine.mu.Lock()
	defer machine.mu.Unlock()
	return machine.running
}

// Start starts the stopwatch. Starting a running stopwatch is a no-op.
func (machine *Machine) Start() {
	machine.mu.Lock()
	defer machine.mu.Unlock()
	machine.startLocked()
}

// Stop stops the stopwatch and folds the running span into elapsed.
func (machine *Machine) Stop() {
	machine.mu.Lock()
	defer machine.mu.Unlock()
	machine.stopLocked()
}

// Toggle flips the stopwatch between running and stopped and
// reports whether it is running afterwards.
func (machine *Machine) Toggle() bool {
	machine.mu.Lock()
	defer machine.mu.Unlock()
	if machine.running {
		machine.stopLocked()
	} else {
		machine.startLocked()
	}
	return machine.running
}

// Reset zeroes the stopwatch and stops it.
func (machine *Machine) Reset() {
	machine.mu.Lock()
	defer machine.mu.Unlock()
	machine.running = false
	machine.elapsed = 0
	machine.startedAt = time.Time{}
}

// Elapsed returns the stopwatch reading at the current instant.
func (machine *Machine) Elapsed() time.Duration {
	machine.mu.Lock()
	defer machine.mu.Unlock()
	return machine.elapsedLocked(machine.now())
}

// Snapshot captures mode, run state, elapsed time and wall time together.
func (machine *Machine) Snapshot() Snapshot {
	machine.mu.Lock()
	defer machine.mu.Unlock()
	now := machine.now()
	return Snapshot{
		Mode:    machine.mode,
		Running: machine.running,
		Elapsed: machine.elapsedLocked(now),
		Now:     now,
	}
}

func (machine *Machine) startLocked() {
	if machine.running {
		return
	}
	machine.running = true
	machine.startedAt = machine.now()
}

func (machine *Machine) stopLocked() {
	if !machine.running {
		return
	}
	machine.elapsed = machine.elapsedLocked(machine.now())
	machine.running = false
	machine.startedAt = time.Time{}
}

func (machine *Machine) elapsedLocked(now time.Time) time.Duration {
	if !machine.running {
		return machine.elapsed
	}
	span := now.Sub(machine.startedAt)
	if span < 0 {
		span = 0
	}
	return machine.elapsed + span
}
