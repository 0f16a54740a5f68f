package scroll

// Align controls where an item lands in the viewport after ScrollToIndex.
type Align uint8

// Alignments.
const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
)

// ScrollToIndex scrolls the host so the item at idx is positioned according
// to align: at the top edge (AlignStart), centered (AlignCenter), or at the
// bottom edge (AlignEnd) of the viewport. The target offset is clamped into
// the scrollable extent. Out-of-range indices leave the position unchanged.
func (e *Engine) ScrollToIndex(idx int, align Align) {
	e.mu.Lock()
	if idx < 0 || idx >= e.store.Count() {
		e.mu.Unlock()
		return
	}
	target := e.store.Offset(idx)
	switch align {
	case AlignCenter:
		target -= e.vp.SizeMain / 2
	case AlignEnd:
		target -= e.vp.SizeMain
	}
	target = clamp(target, 0, max(0, e.store.TotalMain()-e.vp.SizeMain))
	e.mu.Unlock()

	// Write outside the lock: the host may deliver the resulting scroll
	// event synchronously, re-entering UpdateScroll.
	_, cross := e.host.ScrollPosition()
	e.host.SetScrollPosition(target, cross)
}

// ScrollToOffset scrolls the given axis to offset, clamped into the
// scrollable extent of that axis. The cross axis is a no-op unless the
// engine was configured with the horizontal axis enabled.
func (e *Engine) ScrollToOffset(offset int, axis Axis) {
	e.mu.Lock()
	var target int
	switch axis {
	case Main:
		target = clamp(offset, 0, max(0, e.store.TotalMain()-e.vp.SizeMain))
	case Cross:
		if !e.horizontal {
			e.mu.Unlock()
			return
		}
		target = clamp(offset, 0, max(0, e.store.TotalCross()-e.vp.SizeCross))
	default:
		e.mu.Unlock()
		return
	}
	e.mu.Unlock()

	main, cross := e.host.ScrollPosition()
	if axis == Main {
		e.host.SetScrollPosition(target, cross)
	} else {
		e.host.SetScrollPosition(main, target)
	}
}

// ScrollToTop scrolls the main axis to the beginning of the content.
func (e *Engine) ScrollToTop() {
	e.ScrollToOffset(0, Main)
}

// ScrollToBottom scrolls the main axis to the end of the content.
func (e *Engine) ScrollToBottom() {
	main, _ := e.TotalSize()
	e.ScrollToOffset(main, Main)
}

// ScrollToLeft scrolls the cross axis to the beginning of the content.
func (e *Engine) ScrollToLeft() {
	e.ScrollToOffset(0, Cross)
}

// ScrollToRight scrolls the cross axis to the end of the content.
func (e *Engine) ScrollToRight() {
	_, cross := e.TotalSize()
	e.ScrollToOffset(cross, Cross)
}
