package vlist

import (
	"time"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/ultraviolet/screen"

	"github.com/scrollkit/scrollkit/scroll"
)

// List is a virtual scrolling list widget. Only the items inside the scroll
// engine's visible range are rendered; rendered buffers are cached and items
// are measured the first time they appear, with the measurement reported
// back into the engine so offsets stay exact.
//
// The widget itself is the engine's [scroll.ScrollHost]: navigation calls
// write the widget's scroll offset, and every offset write is fed back into
// the engine as a position update.
type List struct {
	width, height int

	items []Item
	eng   *scroll.Engine

	// Scroll position, in lines (main) and columns (cross). Owned by the
	// widget in its ScrollHost role.
	offsetMain  int
	offsetCross int

	// Rendered buffers for items in and near the visible range.
	cache map[int]*renderedBuffer

	overscan int

	focused     bool
	selectedIdx int
}

// renderedBuffer holds one item's rendered screen buffer.
type renderedBuffer struct {
	buf    *uv.ScreenBuffer
	height int
}

// Options configures a List.
type Options struct {
	// BaseHeight is the height assumed for unmeasured items. Values below
	// one line fall back to a conservative default.
	BaseHeight int

	// Overscan is how many items to keep rendered beyond the viewport on
	// each side. Zero is honored; negative values fall back to the
	// default.
	Overscan int

	// Horizontal enables horizontal scrolling of overly wide items.
	Horizontal bool

	// ScrollDebounce is forwarded to the engine's motion tracker.
	ScrollDebounce time.Duration
}

const (
	defaultBaseHeight = 3
	defaultOverscan   = 5
)

// New creates a list with the given items.
func New(opts Options, items ...Item) *List {
	if opts.BaseHeight < 1 {
		opts.BaseHeight = defaultBaseHeight
	}
	if opts.Overscan < 0 {
		opts.Overscan = defaultOverscan
	}
	l := &List{
		items:       items,
		cache:       make(map[int]*renderedBuffer),
		overscan:    opts.Overscan,
		selectedIdx: -1,
	}
	l.eng = scroll.New(l, scroll.Options{
		Count:          len(items),
		BaseSize:       scroll.Size{Main: opts.BaseHeight},
		Overscan:       opts.Overscan,
		Horizontal:     opts.Horizontal,
		ScrollDebounce: opts.ScrollDebounce,
	})
	return l
}

// Engine exposes the underlying scroll engine: motion state, totals, and
// the full navigation API.
func (l *List) Engine() *scroll.Engine { return l.eng }

// ScrollPosition implements scroll.ScrollHost.
func (l *List) ScrollPosition() (main, cross int) {
	return l.offsetMain, l.offsetCross
}

// SetScrollPosition implements scroll.ScrollHost. Every write is delivered
// back into the engine, the widget equivalent of a native scroll event.
func (l *List) SetScrollPosition(main, cross int) {
	l.offsetMain = main
	l.offsetCross = cross
	l.eng.UpdateScroll(main, cross)
}

// Close releases the engine's timer resources.
func (l *List) Close() { l.eng.Close() }

// Len returns the number of items.
func (l *List) Len() int { return len(l.items) }

// SetSize sets the viewport size ahead of drawing.
func (l *List) SetSize(width, height int) {
	l.resize(width, height)
}

func (l *List) resize(width, height int) {
	widthChanged := width != l.width && width > 0
	l.width = width
	l.height = height
	l.eng.SetViewportSize(height, width)

	// A width change invalidates every measurement and rendered buffer.
	if widthChanged {
		l.cache = make(map[int]*renderedBuffer)
		l.eng.SetCount(len(l.items))
	}
	l.clampOffset()
}

// Draw implements uv.Drawable.
func (l *List) Draw(scr uv.Screen, area uv.Rectangle) {
	if area.Dx() <= 0 || area.Dy() <= 0 {
		return
	}
	l.resize(area.Dx(), area.Dy())

	if len(l.items) == 0 {
		screen.ClearArea(scr, area)
		return
	}

	rows := l.measure(l.eng.Rows())
	l.prune(rows)
	l.composite(scr, area, rows)
}

// measure renders and measures any unmeasured rows. When measurements shift
// content above the anchor item, the offset is adjusted so the anchor keeps
// its place on screen, then the range is recomputed.
func (l *List) measure(rows []scroll.Row) []scroll.Row {
	anchorIdx := -1
	anchorOffset := 0
	if l.offsetMain > 0 {
		for _, row := range rows {
			if row.Offset >= l.offsetMain {
				anchorIdx = row.Index
				anchorOffset = row.Offset
				break
			}
		}
	}

	changed := false
	for _, row := range rows {
		if _, ok := l.cache[row.Index]; ok {
			continue
		}
		if l.render(row.Index) != row.Size.Main {
			changed = true
		}
	}
	if !changed {
		return rows
	}

	if anchorIdx >= 0 {
		delta := l.eng.ItemOffset(anchorIdx) - anchorOffset
		l.offsetMain += delta
		l.clampOffset()
		// Not a scroll: the content moved, the user did not.
		l.eng.AdjustScroll(l.offsetMain, l.offsetCross)
	}

	// Offsets moved; recompute and render anything newly exposed.
	rows = l.eng.Rows()
	for _, row := range rows {
		if _, ok := l.cache[row.Index]; !ok {
			l.render(row.Index)
		}
	}
	return rows
}

// render draws one item into a fresh buffer, records the measured size in
// the engine, and caches the buffer. Returns the measured height.
func (l *List) render(idx int) int {
	if idx < 0 || idx >= len(l.items) {
		return 0
	}
	item := l.items[idx]
	height := max(item.Height(l.width), 0)

	buf := uv.NewScreenBuffer(l.width, height)
	if height > 0 {
		item.Draw(&buf, uv.Rect(0, 0, l.width, height))
	}
	l.cache[idx] = &renderedBuffer{buf: &buf, height: height}
	l.eng.SetItemSize(idx, scroll.Size{Main: height, Cross: l.width})
	return height
}

// composite copies the visible portion of each cached row into the screen.
func (l *List) composite(scr uv.Screen, area uv.Rectangle, rows []scroll.Row) {
	screen.ClearArea(scr, area)

	for _, row := range rows {
		cached, ok := l.cache[row.Index]
		if !ok {
			continue
		}

		itemY := row.Offset - l.offsetMain
		if itemY+cached.height <= 0 {
			continue
		}
		if itemY >= l.height {
			break
		}

		srcY := 0
		dstY := itemY
		if itemY < 0 {
			srcY = -itemY
			dstY = 0
		}
		srcEnd := min(cached.height, srcY+l.height-dstY)

		buf := cached.buf.Buffer
		destY := area.Min.Y + dstY
		for y := srcY; y < srcEnd && destY < area.Max.Y; y++ {
			if y >= buf.Height() {
				break
			}
			line := buf.Line(y)
			destX := area.Min.X
			for x := l.offsetCross; x < len(line) && destX < area.Max.X; x++ {
				scr.SetCell(destX, destY, line.At(x))
				destX++
			}
			destY++
		}
	}
}

// prune drops cached buffers far outside the rendered range.
func (l *List) prune(rows []scroll.Row) {
	if len(rows) == 0 || len(l.cache) <= len(rows)*2 {
		return
	}
	keepStart := max(0, rows[0].Index-l.overscan*2)
	keepEnd := min(len(l.items)-1, rows[len(rows)-1].Index+l.overscan*2)
	for idx := range l.cache {
		if idx < keepStart || idx > keepEnd {
			delete(l.cache, idx)
		}
	}
}

func (l *List) clampOffset() {
	total, _ := l.eng.TotalSize()
	maxOffset := max(0, total-l.height)
	l.offsetMain = min(max(l.offsetMain, 0), maxOffset)
}

// ScrollBy scrolls by the given number of lines.
func (l *List) ScrollBy(delta int) {
	l.offsetMain += delta
	l.clampOffset()
	l.eng.UpdateScroll(l.offsetMain, l.offsetCross)
}

// ScrollToTop scrolls to the beginning of the list.
func (l *List) ScrollToTop() { l.eng.ScrollToTop() }

// ScrollToBottom scrolls to the end of the list.
func (l *List) ScrollToBottom() { l.eng.ScrollToBottom() }

// ScrollToIndex scrolls so the item at idx is positioned per align.
func (l *List) ScrollToIndex(idx int, align scroll.Align) {
	l.eng.ScrollToIndex(idx, align)
}

// SetItems replaces all items, discarding measurements and buffers.
func (l *List) SetItems(items ...Item) {
	l.items = items
	l.cache = make(map[int]*renderedBuffer)
	l.eng.SetCount(len(items))
	if l.selectedIdx >= len(items) {
		l.selectedIdx = len(items) - 1
	}
	l.clampOffset()
	l.eng.UpdateScroll(l.offsetMain, l.offsetCross)
}

// AppendItems adds items to the end of the list. Existing measurements and
// rendered buffers are kept; the new tail is measured lazily as it comes
// into view.
func (l *List) AppendItems(items ...Item) {
	l.items = append(l.items, items...)
	l.eng.Resize(len(l.items))
}

// UpdateItem replaces the item at idx, forcing a re-measure on next draw.
func (l *List) UpdateItem(idx int, item Item) {
	if idx < 0 || idx >= len(l.items) {
		return
	}
	l.items[idx] = item
	delete(l.cache, idx)
}

// ItemAt returns the item at idx, or nil when out of range.
func (l *List) ItemAt(idx int) Item {
	if idx < 0 || idx >= len(l.items) {
		return nil
	}
	return l.items[idx]
}

// IndexAt returns the index of the item at the given viewport-relative line,
// or -1 if the line is past the content.
func (l *List) IndexAt(y int) int {
	if y < 0 || y >= l.height || len(l.items) == 0 {
		return -1
	}
	total, _ := l.eng.TotalSize()
	contentY := l.offsetMain + y
	if contentY >= total {
		return -1
	}
	return l.eng.IndexAtOffset(contentY)
}

// Focus marks the list focused, focusing the selected item if it supports
// it.
func (l *List) Focus() {
	l.focused = true
	l.setItemFocus(l.selectedIdx, true)
}

// Blur removes focus from the list and the selected item.
func (l *List) Blur() {
	l.focused = false
	l.setItemFocus(l.selectedIdx, false)
}

// IsFocused reports whether the list is focused.
func (l *List) IsFocused() bool { return l.focused }

// Selected returns the selected index, -1 when nothing is selected.
func (l *List) Selected() int { return l.selectedIdx }

// SelectedItem returns the selected item, nil when nothing is selected.
func (l *List) SelectedItem() Item { return l.ItemAt(l.selectedIdx) }

// SetSelected moves the selection. Out-of-range indices clear it.
func (l *List) SetSelected(idx int) {
	if idx < 0 || idx >= len(l.items) {
		idx = -1
	}
	if idx == l.selectedIdx {
		return
	}
	if l.focused {
		l.setItemFocus(l.selectedIdx, false)
		l.setItemFocus(idx, true)
	}
	l.selectedIdx = idx
}

// SelectNext moves the selection down one item.
func (l *List) SelectNext() {
	if len(l.items) == 0 {
		return
	}
	if l.selectedIdx < 0 {
		l.SetSelected(0)
		return
	}
	l.SetSelected(min(l.selectedIdx+1, len(l.items)-1))
}

// SelectPrev moves the selection up one item.
func (l *List) SelectPrev() {
	if len(l.items) == 0 {
		return
	}
	if l.selectedIdx < 0 {
		l.SetSelected(0)
		return
	}
	l.SetSelected(max(l.selectedIdx-1, 0))
}

// SelectedItemInView reports whether the selection is inside the visible
// range.
func (l *List) SelectedItemInView() bool {
	if l.selectedIdx < 0 {
		return false
	}
	return l.eng.VisibleRange().Contains(l.selectedIdx)
}

// ScrollToSelected brings the selected item fully into view, aligning to
// whichever edge it is beyond.
func (l *List) ScrollToSelected() {
	if l.selectedIdx < 0 || l.selectedIdx >= len(l.items) {
		return
	}
	top := l.eng.ItemOffset(l.selectedIdx)
	bottom := top + l.eng.ItemSize(l.selectedIdx).Main
	switch {
	case top < l.offsetMain:
		l.eng.ScrollToIndex(l.selectedIdx, scroll.AlignStart)
	case bottom > l.offsetMain+l.height:
		// Put the item's bottom edge on the last viewport line.
		l.eng.ScrollToOffset(bottom-l.height, scroll.Main)
	}
}

// setItemFocus updates one item's focus state and drops its stale buffer.
func (l *List) setItemFocus(idx int, focus bool) {
	if idx < 0 || idx >= len(l.items) {
		return
	}
	if f, ok := l.items[idx].(Focusable); ok {
		if focus {
			f.Focus()
		} else {
			f.Blur()
		}
		delete(l.cache, idx)
	}
}
