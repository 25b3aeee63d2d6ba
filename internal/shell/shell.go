// Package shell is the boundary to the native host that embeds the game.
// Before the simulation starts the game asks the host to lock the screen
// orientation; the host answers once, possibly from another goroutine.
package shell

import (
	"context"
	"io"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/descent/internal/viewport"
)

// Shell locks the device orientation.
// done must be called exactly once, with nil on success. Calls after the
// first are ignored by Launcher.
type Shell interface {
	LockOrientation(o viewport.Orientation, done func(error))
}

// Desktop is the shell for terminals and desktop windows, which have no
// orientation to lock. It completes immediately.
type Desktop struct{}

// LockOrientation implements Shell.
func (Desktop) LockOrientation(_ viewport.Orientation, done func(error)) {
	done(nil)
}

// Deferred holds a lock request until the host reports the outcome through
// Complete. Mobile bindings use it: the request is made from Go, the answer
// arrives later through an exported function.
type Deferred struct {
	mu        sync.Mutex
	pending   func(error)
	requested viewport.Orientation
	asked     bool
	onRequest func(viewport.Orientation)
}

// NewDeferred creates a deferred shell. onRequest, if not nil, is called
// with each request so the binding can forward it to native code.
func NewDeferred(onRequest func(viewport.Orientation)) *Deferred {
	return &Deferred{onRequest: onRequest}
}

// LockOrientation implements Shell.
func (d *Deferred) LockOrientation(o viewport.Orientation, done func(error)) {
	d.mu.Lock()
	d.pending = done
	d.requested = o
	d.asked = true
	notify := d.onRequest
	d.mu.Unlock()

	if notify != nil {
		notify(o)
	}
}

// Requested returns the orientation of the last request, if any.
func (d *Deferred) Requested() (viewport.Orientation, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.requested, d.asked
}

// Complete reports the host's answer. It returns false when no request is
// waiting.
func (d *Deferred) Complete(err error) bool {
	d.mu.Lock()
	done := d.pending
	d.pending = nil
	d.mu.Unlock()

	if done == nil {
		return false
	}
	done(err)
	return true
}

// Launcher requests the orientation lock once and starts the simulation
// when the host answers. A failed lock is logged and the game starts in
// whatever orientation the device is in.
type Launcher struct {
	shell  Shell
	logger *log.Logger

	request  sync.Once
	complete sync.Once
	ready    atomic.Bool
	started  chan struct{}
	err      error
}

// NewLauncher creates a launcher. A nil logger discards messages.
func NewLauncher(sh Shell, logger *log.Logger) *Launcher {
	if sh == nil {
		sh = Desktop{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Launcher{
		shell:   sh,
		logger:  logger,
		started: make(chan struct{}),
	}
}

// Start asks the shell for the orientation lock and calls start once the
// shell answers. Only the first call has any effect.
func (l *Launcher) Start(o viewport.Orientation, start func()) {
	l.request.Do(func() {
		l.logger.Debug("requesting orientation lock", "orientation", o)
		l.shell.LockOrientation(o, func(err error) {
			l.complete.Do(func() {
				l.err = err
				if err != nil {
					l.logger.Warn("orientation lock failed, starting anyway", "orientation", o, "err", err)
				} else {
					l.logger.Info("orientation locked", "orientation", o)
				}
				l.ready.Store(true)
				close(l.started)
				if start != nil {
					start()
				}
			})
		})
	})
}

// Ready reports whether the shell has answered.
func (l *Launcher) Ready() bool {
	return l.ready.Load()
}

// Err returns the lock error once Ready is true.
func (l *Launcher) Err() error {
	if !l.Ready() {
		return nil
	}
	return l.err
}

// Wait blocks until the shell answers or ctx is done.
func (l *Launcher) Wait(ctx context.Context) error {
	select {
	case <-l.started:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
