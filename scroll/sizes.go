package scroll

// SizeStore is the per-index size ledger for one collection. Every index
// starts out with a caller-supplied base size; once an item has been
// measured its recorded size takes over. Mutations adjust running totals by
// their delta rather than forcing a recompute.
//
// Main-axis offsets are served by a Fenwick tree holding deltas from the
// base size, so Offset and SetSize are O(log n) instead of the O(n) rescan a
// naive prefix sum would need on every scroll tick.
type SizeStore struct {
	count int
	base  Size

	// tree is a 1-based Fenwick tree over (measured - base) main-axis
	// deltas. Unmeasured entries contribute zero, so construction needs no
	// initialization pass.
	tree []int

	// main holds measured main-axis sizes, -1 while unmeasured.
	main []int

	// cross holds measured cross-axis sizes, -1 while unmeasured. maxCross
	// caches the largest cross extent; it is recomputed lazily when a
	// measurement shrinks.
	cross      []int
	maxCross   int
	crossDirty bool
}

// NewSizeStore creates a ledger for count items with the given base size.
// Negative base dimensions are treated as zero.
func NewSizeStore(count int, base Size) *SizeStore {
	if count < 0 {
		count = 0
	}
	base.Main = max(base.Main, 0)
	base.Cross = max(base.Cross, 0)

	s := &SizeStore{
		count:    count,
		base:     base,
		tree:     make([]int, count+1),
		main:     make([]int, count),
		cross:    make([]int, count),
		maxCross: base.Cross,
	}
	for i := range s.main {
		s.main[i] = -1
		s.cross[i] = -1
	}
	return s
}

// Count returns the number of items in the collection.
func (s *SizeStore) Count() int {
	return s.count
}

// Base returns the default size used for unmeasured items.
func (s *SizeStore) Base() Size {
	return s.base
}

// Resize changes the collection length, keeping measurements for indices
// that survive. New indices start unmeasured; the Fenwick tree is rebuilt
// from the surviving deltas.
func (s *SizeStore) Resize(count int) {
	if count < 0 {
		count = 0
	}
	keep := min(count, s.count)

	main := make([]int, count)
	cross := make([]int, count)
	copy(main, s.main[:keep])
	copy(cross, s.cross[:keep])
	for i := keep; i < count; i++ {
		main[i] = -1
		cross[i] = -1
	}

	s.count = count
	s.main = main
	s.cross = cross
	s.tree = make([]int, count+1)
	for i := 0; i < keep; i++ {
		if main[i] >= 0 {
			s.add(i, main[i]-s.base.Main)
		}
	}
	s.crossDirty = true
}

// Size returns the recorded size for idx, or the base default if the item
// has not been measured. Out-of-range indices yield the base default.
func (s *SizeStore) Size(idx int) Size {
	if idx < 0 || idx >= s.count {
		return s.base
	}
	sz := s.base
	if s.main[idx] >= 0 {
		sz.Main = s.main[idx]
	}
	if s.cross[idx] >= 0 {
		sz.Cross = s.cross[idx]
	}
	return sz
}

// SetSize records a measured size for idx. Re-recording adjusts the running
// totals by the delta from the previous value, so repeated calls with the
// same size are idempotent. Out-of-range indices are a no-op; negative
// dimensions are clamped to zero.
func (s *SizeStore) SetSize(idx int, sz Size) {
	if idx < 0 || idx >= s.count {
		return
	}
	sz.Main = max(sz.Main, 0)
	sz.Cross = max(sz.Cross, 0)

	old := s.base.Main
	if s.main[idx] >= 0 {
		old = s.main[idx]
	}
	if delta := sz.Main - old; delta != 0 {
		s.add(idx, delta)
	}
	s.main[idx] = sz.Main

	prevCross := s.base.Cross
	if s.cross[idx] >= 0 {
		prevCross = s.cross[idx]
	}
	s.cross[idx] = sz.Cross
	switch {
	case sz.Cross >= s.maxCross:
		s.maxCross = sz.Cross
		s.crossDirty = false
	case prevCross == s.maxCross && sz.Cross < prevCross:
		// The previous maximum may have shrunk.
		s.crossDirty = true
	}
}

// Offset returns the cumulative main-axis size of all items before idx.
// Offset(Count()) is the total main-axis size; indices are clamped into
// [0, Count()].
func (s *SizeStore) Offset(idx int) int {
	idx = clamp(idx, 0, s.count)
	return idx*s.base.Main + s.prefix(idx)
}

// TotalMain returns the total main-axis size of the collection, counting
// unmeasured items at the base default.
func (s *SizeStore) TotalMain() int {
	return s.Offset(s.count)
}

// TotalCross returns the largest cross-axis extent in the collection, for
// host layout sizing on the cross axis.
func (s *SizeStore) TotalCross() int {
	if s.count == 0 {
		return 0
	}
	if s.crossDirty {
		s.maxCross = 0
		measured := 0
		for _, c := range s.cross {
			if c >= 0 {
				measured++
				s.maxCross = max(s.maxCross, c)
			}
		}
		if measured < s.count {
			s.maxCross = max(s.maxCross, s.base.Cross)
		}
		s.crossDirty = false
	}
	return s.maxCross
}

// IndexAt returns the index of the item occupying the given main-axis
// offset. Offsets are clamped into the content extent, so past-the-end
// offsets resolve to the last item. Returns 0 for an empty collection.
func (s *SizeStore) IndexAt(offset int) int {
	if s.count == 0 {
		return 0
	}
	offset = clamp(offset, 0, s.TotalMain()-1)

	// Offset is nondecreasing in the index, so binary-search the largest
	// index whose start offset is still <= offset.
	lo, hi := 0, s.count-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if s.Offset(mid) <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

// add applies a main-axis delta at idx to the Fenwick tree.
func (s *SizeStore) add(idx, delta int) {
	for i := idx + 1; i <= s.count; i += i & -i {
		s.tree[i] += delta
	}
}

// prefix sums the deltas of the first n items.
func (s *SizeStore) prefix(n int) int {
	sum := 0
	for i := n; i > 0; i -= i & -i {
		sum += s.tree[i]
	}
	return sum
}
