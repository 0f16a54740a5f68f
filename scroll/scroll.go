// Package scroll implements a virtual scrolling engine for very large
// ordered collections. Only a small visible slice of the collection is ever
// materialized: the engine keeps a per-index size ledger, computes the index
// range covered by the viewport, tracks scroll direction and an idle/moving
// flag, and exposes an imperative navigation API expressed in item offsets.
//
// The engine is framework-agnostic. Hosts feed it raw scroll positions and
// measured item sizes, and apply its navigation writes through the narrow
// [ScrollHost] interface; rendering of the visible rows is entirely the
// host's concern.
package scroll

// Axis identifies one of the two scroll axes. The main axis is the axis the
// collection is laid out along; the cross axis is perpendicular to it.
type Axis uint8

// Scroll axes.
const (
	Main Axis = iota
	Cross
)

// Direction is the direction of travel along an axis.
type Direction int8

// Directions. DirNone means no movement has been observed on the axis since
// the last idle transition.
const (
	DirBackward Direction = -1
	DirNone     Direction = 0
	DirForward  Direction = 1
)

// String returns a human-readable direction label.
func (d Direction) String() string {
	switch {
	case d > 0:
		return "forward"
	case d < 0:
		return "backward"
	default:
		return "none"
	}
}

// Size holds the dimensions of a single item in cells. Main is the extent
// along the scroll axis (height for a vertical list), Cross the extent
// across it.
type Size struct {
	Main  int
	Cross int
}

// Viewport is one evaluation of the visible window. It is immutable per
// evaluation; hosts supply fresh values on every scroll or resize event.
type Viewport struct {
	OffsetMain  int
	OffsetCross int
	SizeMain    int
	SizeCross   int
}

// Range is an inclusive index range into the collection. For an empty
// collection the range is the degenerate {0, 0}.
type Range struct {
	Start int
	End   int
}

// Contains reports whether idx falls within the range.
func (r Range) Contains(idx int) bool {
	return idx >= r.Start && idx <= r.End
}

// Len returns the number of indices covered by the range.
func (r Range) Len() int {
	return r.End - r.Start + 1
}

// Row is one materialized entry of the visible range: the item index, its
// start offset on the main axis, and its current (measured or default) size.
type Row struct {
	Index  int
	Offset int
	Size   Size
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
