package scroll

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// manualTimer lets tests fire or inspect the idle timer deterministically.
type manualTimer struct {
	fn      func()
	stopped bool
}

func (m *manualTimer) Stop() bool {
	was := m.stopped
	m.stopped = true
	return !was
}

type manualClock struct {
	timers []*manualTimer
}

func (c *manualClock) afterFunc(_ time.Duration, fn func()) stopper {
	tm := &manualTimer{fn: fn}
	c.timers = append(c.timers, tm)
	return tm
}

// fire runs the most recently armed timer if it is still pending.
func (c *manualClock) fire(t *testing.T) {
	t.Helper()
	require.NotEmpty(t, c.timers)
	last := c.timers[len(c.timers)-1]
	require.False(t, last.stopped, "fired a cancelled timer")
	last.stopped = true
	last.fn()
}

// pending counts timers that were armed and never stopped.
func (c *manualClock) pending() int {
	n := 0
	for _, tm := range c.timers {
		if !tm.stopped {
			n++
		}
	}
	return n
}

func newTestTracker(main, cross int) (*MotionTracker, *manualClock) {
	clock := &manualClock{}
	tr := NewMotionTracker(DefaultScrollDebounce, main, cross)
	tr.newTimer = clock.afterFunc
	return tr, clock
}

func TestMotionInitialState(t *testing.T) {
	t.Parallel()

	tr, _ := newTestTracker(0, 0)
	defer tr.Close()

	st := tr.State()
	require.False(t, st.Scrolling)
	require.Equal(t, DirNone, st.Main)
	require.Equal(t, DirNone, st.Cross)
}

func TestMotionDebounceTransition(t *testing.T) {
	t.Parallel()

	tr, clock := newTestTracker(0, 0)
	defer tr.Close()

	// A single update moves the tracker to scrolling; the timer firing
	// moves it back to idle exactly once and resets the direction.
	tr.Update(10, 0)
	st := tr.State()
	require.True(t, st.Scrolling)
	require.Equal(t, DirForward, st.Main)

	clock.fire(t)
	st = tr.State()
	require.False(t, st.Scrolling)
	require.Equal(t, DirNone, st.Main)
	require.Equal(t, DirNone, st.Cross)
	require.Zero(t, clock.pending())
}

func TestMotionSinglePendingTimer(t *testing.T) {
	t.Parallel()

	tr, clock := newTestTracker(0, 0)
	defer tr.Close()

	tr.Update(1, 0)
	tr.Update(2, 0)
	tr.Update(3, 0)

	// Each update cancels the previous timer before arming a new one.
	require.Equal(t, 3, len(clock.timers))
	require.Equal(t, 1, clock.pending())
}

func TestMotionDirectionPerAxis(t *testing.T) {
	t.Parallel()

	tr, _ := newTestTracker(100, 100)
	defer tr.Close()

	tr.Update(110, 90)
	st := tr.State()
	require.Equal(t, DirForward, st.Main)
	require.Equal(t, DirBackward, st.Cross)

	// A zero-delta axis retains its previous direction.
	tr.Update(105, 90)
	st = tr.State()
	require.Equal(t, DirBackward, st.Main)
	require.Equal(t, DirBackward, st.Cross)
}

func TestMotionSubUnitDelta(t *testing.T) {
	t.Parallel()

	tr, _ := newTestTracker(0, 0)
	defer tr.Close()

	// Even a one-unit change counts as movement.
	tr.Update(0, 1)
	st := tr.State()
	require.True(t, st.Scrolling)
	require.Equal(t, DirNone, st.Main)
	require.Equal(t, DirForward, st.Cross)
}

func TestMotionNoChangeWhileIdle(t *testing.T) {
	t.Parallel()

	tr, clock := newTestTracker(5, 5)
	defer tr.Close()

	tr.Update(5, 5)
	require.False(t, tr.State().Scrolling)
	require.Empty(t, clock.timers)
}

func TestMotionStaleIdleCallback(t *testing.T) {
	t.Parallel()

	tr, clock := newTestTracker(0, 0)
	defer tr.Close()

	tr.Update(10, 0)
	first := clock.timers[0]

	// Simulate the timer having already fired when the next update tries
	// to cancel it: Stop reports false and the callback runs anyway,
	// racing the update for the lock.
	first.stopped = true
	tr.Update(20, 0)
	first.fn()

	// The stale callback must not settle the tracker while a fresh
	// debounce timer is pending.
	st := tr.State()
	require.True(t, st.Scrolling)
	require.Equal(t, DirForward, st.Main)
	require.Equal(t, 1, clock.pending())

	// The current timer still ends the burst.
	clock.fire(t)
	require.False(t, tr.State().Scrolling)
}

func TestMotionReposition(t *testing.T) {
	t.Parallel()

	tr, clock := newTestTracker(0, 0)
	defer tr.Close()

	// Repositioning while idle is not movement and arms no timer.
	tr.Reposition(40, 0)
	require.False(t, tr.State().Scrolling)
	require.Empty(t, clock.timers)

	// The new position is the baseline for the next update.
	tr.Update(40, 0)
	require.False(t, tr.State().Scrolling)
	tr.Update(35, 0)
	require.Equal(t, DirBackward, tr.State().Main)

	// Repositioning mid-burst leaves the pending timer alone.
	tr.Reposition(100, 0)
	require.True(t, tr.State().Scrolling)
	require.Equal(t, 1, clock.pending())
}

func TestMotionCloseCancelsTimer(t *testing.T) {
	t.Parallel()

	tr, clock := newTestTracker(0, 0)

	tr.Update(10, 0)
	require.Equal(t, 1, clock.pending())

	tr.Close()
	require.Zero(t, clock.pending())

	// Updates after close are ignored.
	tr.Update(20, 0)
	require.False(t, tr.State().Scrolling)
	require.Equal(t, 1, len(clock.timers))
}

func TestMotionRealTimer(t *testing.T) {
	t.Parallel()

	tr := NewMotionTracker(10*time.Millisecond, 0, 0)
	defer tr.Close()

	tr.Update(50, 0)
	require.True(t, tr.State().Scrolling)

	require.Eventually(t, func() bool {
		return !tr.State().Scrolling
	}, time.Second, 2*time.Millisecond)
	require.Equal(t, DirNone, tr.State().Main)
}
