package client

import (
	"sync"
	"time"
)

// DefaultIdleDuration matches the backend's session idle window.
const DefaultIdleDuration = 15 * time.Minute

// IdleTimer invokes a callback exactly once after a period of inactivity.
// Reset restarts the full countdown; once the callback has fired the timer
// stays dead until a new one is created (the consumer is expected to sign
// out, which tears this down). Stop releases the timer without firing.
type IdleTimer struct {
	mu    sync.Mutex
	timer *time.Timer
	d     time.Duration
	done  bool
}

// NewIdleTimer starts the countdown immediately. A non-positive duration
// falls back to the default.
func NewIdleTimer(d time.Duration, fn func()) *IdleTimer {
	if d <= 0 {
		d = DefaultIdleDuration
	}
	t := &IdleTimer{d: d}
	t.timer = time.AfterFunc(d, func() {
		t.mu.Lock()
		if t.done {
			t.mu.Unlock()
			return
		}
		t.done = true
		t.mu.Unlock()
		fn()
	})
	return t
}

// Reset restarts the countdown at its full duration. Calls after the timer
// has fired or been stopped are no-ops.
func (t *IdleTimer) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.done {
		return
	}
	t.timer.Reset(t.d)
}

// Stop cancels the countdown without invoking the callback.
func (t *IdleTimer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.done {
		return
	}
	t.done = true
	t.timer.Stop()
}
