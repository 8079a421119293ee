package clock

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

const RefreshInterval = 200 * time.Millisecond

// Dispatcher runs fn on the thread that owns the UI.
type Dispatcher func(fn func())

// Ticker is a self-rescheduling single-shot timer. Each run arms the next one
// only after its own work completes, so delays accumulate instead of being
// corrected against a fixed rate.
type Ticker struct {
	clock    clockwork.Clock
	interval time.Duration
	dispatch Dispatcher
	onTick   func(now time.Time)

	mu        sync.Mutex
	timer     clockwork.Timer
	started   bool
	cancelled bool
}

func NewTicker(c clockwork.Clock, interval time.Duration, dispatch Dispatcher, onTick func(now time.Time)) *Ticker {
	if c == nil {
		c = clockwork.NewRealClock()
	}
	if dispatch == nil {
		dispatch = func(fn func()) { fn() }
	}

	return &Ticker{
		clock:    c,
		interval: interval,
		dispatch: dispatch,
		onTick:   onTick,
	}
}

// Start arms the first tick. It has no effect once started or cancelled.
func (t *Ticker) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.started || t.cancelled {
		return
	}
	t.started = true
	t.armLocked()
}

// Cancel drops the pending tick. Calling it repeatedly, or before Start, is a no-op.
func (t *Ticker) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.cancelled = true
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}

// Pending reports whether a tick is armed.
func (t *Ticker) Pending() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.timer != nil
}

func (t *Ticker) Cancelled() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.cancelled
}

func (t *Ticker) armLocked() {
	t.timer = t.clock.AfterFunc(t.interval, t.expire)
}

// expire runs on the clock's goroutine; the refresh itself is handed to the UI thread.
func (t *Ticker) expire() {
	t.dispatch(t.run)
}

func (t *Ticker) run() {
	t.mu.Lock()
	if t.cancelled {
		t.mu.Unlock()
		return
	}
	t.timer = nil
	t.mu.Unlock()

	if t.onTick != nil {
		t.onTick(t.clock.Now())
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.cancelled {
		t.armLocked()
	}
}
