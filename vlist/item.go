// Package vlist provides a terminal list widget that renders only the
// visible slice of its items. All height bookkeeping, range computation,
// motion tracking, and navigation is delegated to a [scroll.Engine]; this
// package owns rendering, item measurement, and the buffer cache.
package vlist

import (
	"strings"

	"charm.land/glamour/v2"
	"charm.land/glamour/v2/ansi"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
)

// Item is a list entry that can draw itself into a screen buffer. Heights
// are width-dependent; the list measures an item the first time it becomes
// visible and reports the result into the scroll engine.
type Item interface {
	uv.Drawable

	// ID returns a stable identifier for the item.
	ID() string

	// Height returns the item's height in lines at the given width.
	Height(width int) int
}

// Focusable is an optional interface for items that change appearance when
// they hold the selection.
type Focusable interface {
	Focus()
	Blur()
	IsFocused() bool
}

// FocusState provides focus bookkeeping for items. Embed it to make an item
// Focusable; styles are optional.
type FocusState struct {
	focused    bool
	focusStyle *lipgloss.Style
	blurStyle  *lipgloss.Style
}

// Focus implements Focusable.
func (f *FocusState) Focus() { f.focused = true }

// Blur implements Focusable.
func (f *FocusState) Blur() { f.focused = false }

// IsFocused implements Focusable.
func (f *FocusState) IsFocused() bool { return f.focused }

// SetStyles sets the styles used while focused and blurred.
func (f *FocusState) SetStyles(focus, blur *lipgloss.Style) {
	f.focusStyle = focus
	f.blurStyle = blur
}

// style returns the style for the current focus state, or nil.
func (f *FocusState) style() *lipgloss.Style {
	if f.focused {
		return f.focusStyle
	}
	return f.blurStyle
}

// TextItem is a plain text item, optionally word-wrapped to the list width.
// Wrapped content is cached per width.
type TextItem struct {
	FocusState
	id      string
	content string
	wrap    bool
	cache   map[int]string
}

// NewTextItem creates a text item with the given ID and content.
func NewTextItem(id, content string) *TextItem {
	return &TextItem{id: id, content: content, cache: make(map[int]string)}
}

// NewWrappingTextItem creates a text item that wraps to the list width.
func NewWrappingTextItem(id, content string) *TextItem {
	it := NewTextItem(id, content)
	it.wrap = true
	return it
}

// WithStyles sets focus and blur styles and returns the item.
func (t *TextItem) WithStyles(focus, blur *lipgloss.Style) *TextItem {
	t.SetStyles(focus, blur)
	return t
}

// ID implements Item.
func (t *TextItem) ID() string { return t.id }

// Height implements Item.
func (t *TextItem) Height(width int) int {
	lines := strings.Count(t.text(width), "\n") + 1
	if style := t.style(); style != nil {
		lines += style.GetVerticalFrameSize()
	}
	return lines
}

// Draw implements Item.
func (t *TextItem) Draw(scr uv.Screen, area uv.Rectangle) {
	content := t.text(area.Dx())
	if style := t.style(); style != nil {
		content = style.Width(area.Dx()).Render(content)
	}
	uv.NewStyledString(content).Draw(scr, area)
}

func (t *TextItem) text(width int) string {
	if !t.wrap {
		return t.content
	}
	contentWidth := width
	if style := t.style(); style != nil {
		contentWidth -= style.GetHorizontalFrameSize()
	}
	if cached, ok := t.cache[contentWidth]; ok {
		return cached
	}
	wrapped := lipgloss.Wrap(t.content, contentWidth, "")
	t.cache[contentWidth] = wrapped
	return wrapped
}

// markdownMaxWidth caps markdown wrapping for readable line lengths.
const markdownMaxWidth = 120

// MarkdownItem renders markdown through glamour, caching the rendered
// output per width.
type MarkdownItem struct {
	FocusState
	id       string
	markdown string
	styles   *ansi.StyleConfig
	cache    map[int]string
}

// NewMarkdownItem creates a markdown item with the given ID and source.
func NewMarkdownItem(id, markdown string) *MarkdownItem {
	return &MarkdownItem{id: id, markdown: markdown, cache: make(map[int]string)}
}

// WithStyleConfig sets a custom glamour style configuration.
func (m *MarkdownItem) WithStyleConfig(cfg ansi.StyleConfig) *MarkdownItem {
	m.styles = &cfg
	return m
}

// ID implements Item.
func (m *MarkdownItem) ID() string { return m.id }

// Height implements Item.
func (m *MarkdownItem) Height(width int) int {
	return strings.Count(m.render(width), "\n") + 1
}

// Draw implements Item.
func (m *MarkdownItem) Draw(scr uv.Screen, area uv.Rectangle) {
	uv.NewStyledString(m.render(area.Dx())).Draw(scr, area)
}

func (m *MarkdownItem) render(width int) string {
	width = min(width, markdownMaxWidth)
	if cached, ok := m.cache[width]; ok {
		return cached
	}

	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if m.styles != nil {
		opts = append(opts, glamour.WithStyles(*m.styles))
	}
	renderer, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return m.markdown
	}
	rendered, err := renderer.Render(m.markdown)
	if err != nil {
		// Plain source beats an empty hole in the list.
		return m.markdown
	}
	rendered = strings.TrimRight(rendered, "\n\r ")

	m.cache[width] = rendered
	return rendered
}

// SpacerItem is an empty item occupying vertical space, useful as a gap
// between other items.
type SpacerItem struct {
	id     string
	height int
}

var _ Item = (*SpacerItem)(nil)

// NewSpacerItem creates a spacer of the given height in lines.
func NewSpacerItem(id string, height int) *SpacerItem {
	return &SpacerItem{id: id, height: max(height, 0)}
}

// ID implements Item.
func (s *SpacerItem) ID() string { return s.id }

// Height implements Item.
func (s *SpacerItem) Height(int) int { return s.height }

// Draw implements Item. Spacers draw nothing.
func (s *SpacerItem) Draw(uv.Screen, uv.Rectangle) {}
