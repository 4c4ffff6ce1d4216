package clock

import (
	"testing"
	"time"

	"deskclock/internal/core/model"
)

type fakeClock struct {
	now time.Time
}

func (clock *fakeClock) Now() time.Time {
	return clock.now
}

func (clock *fakeClock) Advance(delta time.Duration) {
	clock.now = clock.now.Add(delta)
}

func newFakeMachine(mode model.Mode) (*Machine, *fakeClock) {
	clock := &fakeClock{now: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)}
	return New(mode, WithNow(clock.Now)), clock
}

func TestNewNormalizesUnknownMode(t *testing.T) {
	machine := New("lap")
	if machine.Mode() != model.ModeClock {
		t.Fatalf("expected clock mode, got %q", machine.Mode())
	}
}

func TestToggleAccumulatesElapsed(t *testing.T) {
	machine, clock := newFakeMachine(model.ModeStopwatch)

	if running := machine.Toggle(); !running {
		t.Fatal("expected stopwatch to run after first toggle")
	}
	clock.Advance(1500 * time.Millisecond)
	if running := machine.Toggle(); running {
		t.Fatal("expected stopwatch to stop after second toggle")
	}
	if got := machine.Elapsed(); got != 1500*time.Millisecond {
		t.Fatalf("expected 1.5s, got %v", got)
	}

	machine.Start()
	clock.Advance(500 * time.Millisecond)
	machine.Stop()
	if got := machine.Elapsed(); got != 2*time.Second {
		t.Fatalf("expected 2s after second run, got %v", got)
	}
}

func TestElapsedMonotonicWhileRunning(t *testing.T) {
	machine, clock := newFakeMachine(model.ModeStopwatch)
	machine.Start()

	previous := machine.Elapsed()
	for i := 0; i < 100; i++ {
		clock.Advance(17 * time.Millisecond)
		current := machine.Elapsed()
		if current < previous {
			t.Fatalf("elapsed went backwards: %v -> %v", previous, current)
		}
		previous = current
	}
}

func TestElapsedFrozenWhileStopped(t *testing.T) {
	machine, clock := newFakeMachine(model.ModeStopwatch)
	machine.Start()
	clock.Advance(3 * time.Second)
	machine.Stop()

	frozen := machine.Elapsed()
	for i := 0; i < 10; i++ {
		clock.Advance(time.Minute)
		if got := machine.Elapsed(); got != frozen {
			t.Fatalf("expected frozen %v, got %v", frozen, got)
		}
	}
}

func TestResetFromAnyState(t *testing.T) {
	cases := []struct {
		name    string
		prepare func(*Machine, *fakeClock)
	}{
		{name: "fresh", prepare: func(*Machine, *fakeClock) {}},
		{name: "running", prepare: func(machine *Machine, clock *fakeClock) {
			machine.Start()
			clock.Advance(2 * time.Second)
		}},
		{name: "stopped", prepare: func(machine *Machine, clock *fakeClock) {
			machine.Start()
			clock.Advance(2 * time.Second)
			machine.Stop()
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			machine, clock := newFakeMachine(model.ModeStopwatch)
			tc.prepare(machine, clock)

			machine.Reset()
			if machine.Running() {
				t.Fatal("expected reset to stop the stopwatch")
			}
			clock.Advance(time.Second)
			if got := machine.Elapsed(); got != 0 {
				t.Fatalf("expected zero elapsed, got %v", got)
			}
		})
	}
}

func TestModeSwitchPreservesStopwatch(t *testing.T) {
	machine, clock := newFakeMachine(model.ModeClock)
	machine.SetMode(model.ModeStopwatch)
	machine.Start()
	clock.Advance(4 * time.Second)
	machine.Stop()

	machine.SetMode(model.ModeClock)
	clock.Advance(time.Hour)
	machine.SetMode(model.ModeStopwatch)

	if got := machine.Elapsed(); got != 4*time.Second {
		t.Fatalf("expected 4s preserved across mode switch, got %v", got)
	}
}

func TestSwitchToClockFreezesRunningStopwatch(t *testing.T) {
	machine, clock := newFakeMachine(model.ModeStopwatch)
	machine.Start()
	clock.Advance(time.Second)

	machine.SetMode(model.ModeClock)
	if machine.Running() {
		t.Fatal("expected stopwatch stopped after switching to clock mode")
	}
	clock.Advance(10 * time.Second)
	machine.SetMode(model.ModeStopwatch)

	if got := machine.Elapsed(); got != time.Second {
		t.Fatalf("expected elapsed frozen at 1s, got %v", got)
	}
	if machine.Running() {
		t.Fatal("expected stopwatch to come back stopped")
	}
}

func TestSnapshotUsesInjectedClock(t *testing.T) {
	machine, clock := newFakeMachine(model.ModeClock)
	snapshot := machine.Snapshot()
	if !snapshot.Now.Equal(clock.now) {
		t.Fatalf("expected %v, got %v", clock.now, snapshot.Now)
	}
	if snapshot.Mode != model.ModeClock || snapshot.Running || snapshot.Elapsed != 0 {
		t.Fatalf("unexpected snapshot: %+v", snapshot)
	}
}
