package scroll

// Window is a fixed-size index window over a collection, the simpler
// alternative for callers that do not need per-item measurement. The window
// always spans exactly its configured size, except when the collection is
// smaller, in which case it covers the whole collection.
//
// All operations are idempotent and saturating: moves past a boundary clamp
// there and repeated calls have no further effect.
type Window struct {
	count int
	size  int
	start int
}

// NewWindow creates a window of the given size over count items.
func NewWindow(count, size int) *Window {
	if count < 0 {
		count = 0
	}
	if size < 1 {
		size = 1
	}
	return &Window{count: count, size: size}
}

// Bounds returns the current half-open window [start, end).
func (w *Window) Bounds() (start, end int) {
	return w.start, min(w.start+w.size, w.count)
}

// Start returns the first index of the window.
func (w *Window) Start() int {
	return w.start
}

// Size returns the configured window size.
func (w *Window) Size() int {
	return w.size
}

// Move shifts the window by amount in the given direction, clamped to the
// collection bounds. DirNone and non-positive amounts are no-ops.
func (w *Window) Move(d Direction, amount int) {
	if d == DirNone || amount <= 0 {
		return
	}
	if d == DirBackward {
		amount = -amount
	}
	w.Jump(w.start + amount)
}

// Jump positions the window so it starts at start, clamped so the window
// stays within the collection.
func (w *Window) Jump(start int) {
	w.start = clamp(start, 0, max(0, w.count-w.size))
}

// SetCount replaces the collection length, re-clamping the window.
func (w *Window) SetCount(count int) {
	if count < 0 {
		count = 0
	}
	w.count = count
	w.Jump(w.start)
}
