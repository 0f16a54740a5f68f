package scroll

// Range computes the inclusive index range the viewport must materialize.
// An item that straddles a viewport boundary counts as visible. Overscan is
// applied symmetrically and clamped independently at both ends, so the
// result never leaves [0, Count()-1]. An empty collection yields {0, 0}.
func (s *SizeStore) Range(vp Viewport, overscan int) Range {
	if s.count == 0 {
		return Range{}
	}
	overscan = max(overscan, 0)
	offset := max(vp.OffsetMain, 0)

	anchor := s.IndexAt(offset)
	start := max(0, anchor-overscan)

	// A degenerate viewport still yields the smallest valid range: the
	// anchor item plus overscan.
	if vp.SizeMain <= 0 {
		return Range{Start: start, End: min(s.count-1, anchor+overscan)}
	}

	// The viewport covers [offset, offset+SizeMain); the last visible item
	// is the one occupying the final covered cell. IndexAt clamps, so a
	// viewport larger than the content saturates at the last index.
	last := s.IndexAt(offset + vp.SizeMain - 1)
	return Range{Start: start, End: min(s.count-1, last+overscan)}
}

// Rows materializes the visible range as {index, offset, size} rows.
func (s *SizeStore) Rows(vp Viewport, overscan int) []Row {
	if s.count == 0 {
		return nil
	}
	r := s.Range(vp, overscan)
	rows := make([]Row, 0, r.Len())
	offset := s.Offset(r.Start)
	for i := r.Start; i <= r.End; i++ {
		sz := s.Size(i)
		rows = append(rows, Row{Index: i, Offset: offset, Size: sz})
		offset += sz.Main
	}
	return rows
}
