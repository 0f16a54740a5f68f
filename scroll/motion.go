package scroll

import (
	"sync"
	"time"
)

// DefaultScrollDebounce is how long the scroll position must hold still
// before the tracker transitions back to idle.
const DefaultScrollDebounce = 100 * time.Millisecond

// MotionState is a snapshot of scroll motion: whether the view is currently
// scrolling and the last observed direction per axis. Directions are DirNone
// before any movement and reset to DirNone on every idle transition.
type MotionState struct {
	Scrolling bool
	Main      Direction
	Cross     Direction
}

// stopper is the cancellable handle of a scheduled idle transition.
type stopper interface {
	Stop() bool
}

// timerFunc schedules fn after d and returns a handle to cancel it. The
// default is time.AfterFunc; tests inject a manual implementation.
type timerFunc func(d time.Duration, fn func()) stopper

func afterFunc(d time.Duration, fn func()) stopper {
	return time.AfterFunc(d, fn)
}

// MotionTracker consumes raw scroll position updates and derives per-axis
// direction plus a debounced idle/moving flag. Updates never overlap into
// two pending timers: every update cancels the previous idle timer before
// arming a fresh one.
//
// The idle timer fires on a runtime goroutine, so all state is guarded by a
// mutex. Close cancels any pending timer; a tracker must be closed when its
// engine is discarded so no callback fires into dead state.
type MotionTracker struct {
	mu       sync.Mutex
	debounce time.Duration
	newTimer timerFunc

	lastMain  int
	lastCross int

	state  MotionState
	idle   stopper
	gen    uint64
	closed bool
}

// NewMotionTracker creates a tracker with the given debounce duration and
// initial position. A non-positive duration falls back to
// DefaultScrollDebounce.
func NewMotionTracker(debounce time.Duration, main, cross int) *MotionTracker {
	if debounce <= 0 {
		debounce = DefaultScrollDebounce
	}
	return &MotionTracker{
		debounce:  debounce,
		newTimer:  afterFunc,
		lastMain:  main,
		lastCross: cross,
	}
}

// Update records a raw position. Any change on either axis, however small,
// transitions the tracker to moving and rearms the idle timer. An axis with
// no change keeps its previous direction until a new delta arrives or the
// idle timer fires.
func (t *MotionTracker) Update(main, cross int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return
	}

	dm := main - t.lastMain
	dc := cross - t.lastCross
	t.lastMain = main
	t.lastCross = cross

	if dm == 0 && dc == 0 && !t.state.Scrolling {
		return
	}

	t.state.Scrolling = true
	if dm != 0 {
		t.state.Main = dir(dm)
	}
	if dc != 0 {
		t.state.Cross = dir(dc)
	}

	if t.idle != nil {
		t.idle.Stop()
	}
	// Stop can lose the race against a timer that already fired: its
	// callback may be blocked on t.mu right now. Stamp the timer with a
	// generation so such a stale callback is a no-op.
	t.gen++
	gen := t.gen
	t.idle = t.newTimer(t.debounce, func() { t.settle(gen) })
}

// settle is the idle timer callback: one burst of updates produces exactly
// one moving→idle transition, from the timer armed by the burst's last
// update and no other.
func (t *MotionTracker) settle(gen uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed || gen != t.gen {
		return
	}
	t.state = MotionState{}
	t.idle = nil
}

// Reposition records a new position without registering motion. Anchor
// corrections after re-measurement move the viewport under the content, but
// the user did not scroll: state, directions, and any pending idle timer
// are left untouched.
func (t *MotionTracker) Reposition(main, cross int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return
	}
	t.lastMain = main
	t.lastCross = cross
}

// State returns the current motion snapshot.
func (t *MotionTracker) State() MotionState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Position returns the last recorded offsets.
func (t *MotionTracker) Position() (main, cross int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.lastMain, t.lastCross
}

// Close cancels any pending idle timer. The tracker ignores further updates
// once closed.
func (t *MotionTracker) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return
	}
	t.closed = true
	if t.idle != nil {
		t.idle.Stop()
		t.idle = nil
	}
}

func dir(delta int) Direction {
	if delta > 0 {
		return DirForward
	}
	return DirBackward
}
