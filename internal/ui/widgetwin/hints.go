package widgetwin

import (
	"log/slog"
	"sync"

	"deskclock/internal/core/controller"
	"deskclock/internal/core/model"
)

// hintWorker applies window manager hints off the UI thread. Requests that
// arrive while a previous one is running are coalesced so a fast drag only
// applies the latest position.
type hintWorker struct {
	resolve func() (controller.Hints, error)

	mu       sync.Mutex
	backend  controller.Hints
	resolved bool
	layer    *model.Layer
	opacity  *float64
	position *model.Position
	applied  *model.Position
	wake     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

var _ controller.Hints = (*hintWorker)(nil)

func newHintWorker(resolve func() (controller.Hints, error)) *hintWorker {
	worker := &hintWorker{
		resolve: resolve,
		wake:    make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	go worker.run()
	return worker
}

func (worker *hintWorker) SetLayer(layer model.Layer) error {
	return worker.queue(func() { worker.layer = &layer })
}

func (worker *hintWorker) Move(x, y int) error {
	return worker.queue(func() { worker.position = &model.Position{X: x, Y: y} })
}

func (worker *hintWorker) SetOpacity(opacity float64) error {
	return worker.queue(func() { worker.opacity = &opacity })
}

// Applied returns the last position the backend accepted.
func (worker *hintWorker) Applied() (model.Position, bool) {
	worker.mu.Lock()
	defer worker.mu.Unlock()
	if worker.applied == nil {
		return model.Position{}, false
	}
	return *worker.applied, true
}

// Stop ends the worker goroutine. Pending hints are dropped.
func (worker *hintWorker) Stop() {
	worker.stopOnce.Do(func() { close(worker.done) })
}

// queue records a pending hint. The backend is resolved here because
// resolution may need the UI thread. A failed resolution is retried on the
// next hint since the native handle only exists once the window is mapped.
func (worker *hintWorker) queue(set func()) error {
	if err := worker.ensureBackend(); err != nil {
		return err
	}
	worker.mu.Lock()
	set()
	worker.mu.Unlock()

	select {
	case worker.wake <- struct{}{}:
	default:
	}
	return nil
}

func (worker *hintWorker) ensureBackend() error {
	worker.mu.Lock()
	resolved := worker.resolved
	worker.mu.Unlock()
	if resolved {
		return nil
	}

	backend, err := worker.resolve()
	if err != nil {
		slog.Debug("window hints unavailable", "error", err)
		return err
	}
	worker.mu.Lock()
	worker.backend = backend
	worker.resolved = true
	worker.mu.Unlock()
	return nil
}

func (worker *hintWorker) run() {
	for {
		select {
		case <-worker.done:
			return
		case <-worker.wake:
		}

		worker.mu.Lock()
		backend := worker.backend
		layer, opacity, position := worker.layer, worker.opacity, worker.position
		worker.layer, worker.opacity, worker.position = nil, nil, nil
		worker.mu.Unlock()

		if backend == nil {
			continue
		}
		if layer != nil {
			logHint("layer", backend.SetLayer(*layer))
		}
		if opacity != nil {
			logHint("opacity", backend.SetOpacity(*opacity))
		}
		if position != nil {
			err := backend.Move(position.X, position.Y)
			logHint("move", err)
			if err == nil {
				worker.mu.Lock()
				worker.applied = position
				worker.mu.Unlock()
			}
		}
	}
}

func logHint(name string, err error) {
	if err != nil {
		slog.Debug("window hint rejected", "hint", name, "error", err)
	}
}
