package shell

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/vovakirdan/descent/internal/viewport"
)

func TestDesktopStartsImmediately(t *testing.T) {
	l := NewLauncher(Desktop{}, nil)

	var calls int
	l.Start(viewport.Portrait, func() { calls++ })

	if !l.Ready() {
		t.Fatal("desktop launcher should be ready right away")
	}
	if calls != 1 {
		t.Errorf("start called %d times, expected 1", calls)
	}
	if l.Err() != nil {
		t.Errorf("unexpected error: %v", l.Err())
	}
}

func TestLauncherRequestsOnce(t *testing.T) {
	var requests atomic.Int32
	d := NewDeferred(func(viewport.Orientation) { requests.Add(1) })
	l := NewLauncher(d, nil)

	var starts atomic.Int32
	l.Start(viewport.Landscape, func() { starts.Add(1) })
	l.Start(viewport.Portrait, func() { starts.Add(1) })

	if got := requests.Load(); got != 1 {
		t.Errorf("shell asked %d times, expected 1", got)
	}
	if o, ok := d.Requested(); !ok || o != viewport.Landscape {
		t.Errorf("requested %v (%v), expected landscape", o, ok)
	}
	if l.Ready() {
		t.Fatal("launcher should wait for the shell")
	}

	if !d.Complete(nil) {
		t.Fatal("Complete should find the pending request")
	}
	if d.Complete(nil) {
		t.Error("second Complete should find nothing pending")
	}
	if !l.Ready() || starts.Load() != 1 {
		t.Errorf("ready=%v starts=%d after completion", l.Ready(), starts.Load())
	}
}

func TestLauncherStartsOnFailure(t *testing.T) {
	d := NewDeferred(nil)
	l := NewLauncher(d, nil)

	started := false
	l.Start(viewport.Portrait, func() { started = true })

	lockErr := errors.New("rotation locked by user")
	d.Complete(lockErr)

	if !started {
		t.Error("a failed lock should still start the simulation")
	}
	if !errors.Is(l.Err(), lockErr) {
		t.Errorf("Err() = %v, expected %v", l.Err(), lockErr)
	}
}

// doubleShell answers twice to make sure the launcher ignores repeats.
type doubleShell struct{}

func (doubleShell) LockOrientation(_ viewport.Orientation, done func(error)) {
	done(nil)
	done(errors.New("late"))
}

func TestLauncherIgnoresRepeatedAnswers(t *testing.T) {
	l := NewLauncher(doubleShell{}, nil)

	calls := 0
	l.Start(viewport.Landscape, func() { calls++ })

	if calls != 1 || l.Err() != nil {
		t.Errorf("calls=%d err=%v, expected one clean start", calls, l.Err())
	}
}

func TestLauncherWaitAcrossGoroutines(t *testing.T) {
	d := NewDeferred(nil)
	l := NewLauncher(d, nil)
	l.Start(viewport.Portrait, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := l.Wait(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Wait before completion = %v, expected deadline exceeded", err)
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		d.Complete(nil)
	}()

	if err := l.Wait(context.Background()); err != nil {
		t.Errorf("Wait() = %v", err)
	}
	wg.Wait()
	if !l.Ready() {
		t.Error("launcher should be ready after Wait returns")
	}
}
