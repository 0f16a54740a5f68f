package scroll

import (
	"sync"
	"time"
)

// ScrollHost is the narrow surface the engine needs from its scrollable
// host: reading and writing the scroll position. Hosts remain responsible
// for delivering position updates back into [Engine.UpdateScroll] through
// whatever event mechanism they have.
type ScrollHost interface {
	ScrollPosition() (main, cross int)
	SetScrollPosition(main, cross int)
}

// Options configures an Engine.
type Options struct {
	// Count is the collection length.
	Count int

	// BaseSize is the size assumed for items that have not been measured
	// yet.
	BaseSize Size

	// Overscan is how many extra items to materialize beyond the strictly
	// visible range on each side.
	Overscan int

	// Horizontal enables the cross (horizontal) axis. When disabled,
	// cross-axis navigation is a no-op.
	Horizontal bool

	// ScrollDebounce is how long the position must hold still before the
	// motion state returns to idle. Zero means DefaultScrollDebounce.
	ScrollDebounce time.Duration
}

// Engine ties the size ledger, range calculation, motion tracking, and
// navigation together for one collection view. Each engine exclusively owns
// its ledger and motion state; the host owns the actual scrollable surface.
//
// All methods are safe for concurrent use. Close must be called when the
// view is discarded so the pending idle timer cannot fire afterwards.
//
// Item indices are assumed stable across update cycles; mutating the
// collection mid-scroll without SetCount or Resize is undefined.
type Engine struct {
	mu     sync.Mutex
	host   ScrollHost
	store  *SizeStore
	motion *MotionTracker

	vp         Viewport
	overscan   int
	horizontal bool
}

// New creates an engine for the given host. The initial scroll position is
// read from the host.
func New(host ScrollHost, opts Options) *Engine {
	main, cross := host.ScrollPosition()
	e := &Engine{
		host:       host,
		store:      NewSizeStore(opts.Count, opts.BaseSize),
		motion:     NewMotionTracker(opts.ScrollDebounce, main, cross),
		overscan:   max(opts.Overscan, 0),
		horizontal: opts.Horizontal,
	}
	e.vp.OffsetMain = main
	e.vp.OffsetCross = cross
	return e
}

// UpdateScroll feeds a raw scroll position into the engine. Hosts call this
// from their native scroll event stream.
func (e *Engine) UpdateScroll(main, cross int) {
	e.mu.Lock()
	e.vp.OffsetMain = main
	e.vp.OffsetCross = cross
	e.mu.Unlock()
	e.motion.Update(main, cross)
}

// AdjustScroll moves the viewport without registering motion. Hosts use it
// for anchor corrections after re-measurement: the content shifted under
// the viewport, but the user did not scroll.
func (e *Engine) AdjustScroll(main, cross int) {
	e.mu.Lock()
	e.vp.OffsetMain = main
	e.vp.OffsetCross = cross
	e.mu.Unlock()
	e.motion.Reposition(main, cross)
}

// SetViewportSize records the viewport dimensions. Hosts call this on every
// resize.
func (e *Engine) SetViewportSize(main, cross int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.vp.SizeMain = main
	e.vp.SizeCross = cross
}

// Viewport returns the current viewport state.
func (e *Engine) Viewport() Viewport {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.vp
}

// SetItemSize records a measured size for an item, adjusting running totals
// by the delta. Out-of-range indices are a no-op.
func (e *Engine) SetItemSize(idx int, sz Size) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.store.SetSize(idx, sz)
}

// ItemSize returns the recorded or default size for an item.
func (e *Engine) ItemSize(idx int) Size {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.store.Size(idx)
}

// ItemOffset returns the main-axis start offset of an item, a pure
// read-through to the size ledger.
func (e *Engine) ItemOffset(idx int) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.store.Offset(idx)
}

// IndexAtOffset returns the index of the item occupying the given main-axis
// offset, clamped into the content extent.
func (e *Engine) IndexAtOffset(offset int) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.store.IndexAt(offset)
}

// Count returns the collection length.
func (e *Engine) Count() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.store.Count()
}

// SetCount replaces the collection length. All measured sizes are discarded;
// indices are assumed to be meaningless across a length change.
func (e *Engine) SetCount(count int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.store = NewSizeStore(count, e.store.Base())
}

// Resize changes the collection length while keeping measurements for
// surviving indices. Hosts use it when items are appended or truncated and
// the remaining indices still mean the same thing.
func (e *Engine) Resize(count int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.store.Resize(count)
}

// TotalSize returns the total content extent on both axes: the main-axis
// sum of item sizes and the largest cross-axis extent. Hosts use it to size
// spacer surfaces.
func (e *Engine) TotalSize() (main, cross int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.store.TotalMain(), e.store.TotalCross()
}

// VisibleRange returns the inclusive index range the current viewport must
// materialize.
func (e *Engine) VisibleRange() Range {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.store.Range(e.vp, e.overscan)
}

// Rows materializes the visible range as {index, offset, size} rows. The
// host joins them with the actual items for rendering.
func (e *Engine) Rows() []Row {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.store.Rows(e.vp, e.overscan)
}

// Motion returns the current scroll motion snapshot.
func (e *Engine) Motion() MotionState {
	return e.motion.State()
}

// Close tears the engine down, cancelling any pending idle timer.
func (e *Engine) Close() {
	e.motion.Close()
}
