// Package demo is the interactive showcase for the virtual scrolling stack:
// a generated collection far too large to render, browsed through the vlist
// widget with fuzzy-search jumps driven by the engine's navigation API.
package demo

import (
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"charm.land/log/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/dustin/go-humanize"
	"github.com/sahilm/fuzzy"

	"github.com/scrollkit/scrollkit/scroll"
	"github.com/scrollkit/scrollkit/vlist"
)

// Config holds the demo's command line knobs.
type Config struct {
	Items      int
	Overscan   int
	Debounce   time.Duration
	Horizontal bool
}

// Model is the bubbletea model for the demo.
type Model struct {
	cfg  Config
	keys keyMap

	list     *vlist.List
	contents []string

	input     textinput.Model
	searching bool
	matches   fuzzy.Matches
	matchIdx  int

	width, height int
}

var footerStyle = lipgloss.NewStyle().Faint(true)

// New builds the demo model.
func New(cfg Config) *Model {
	items, contents := generateItems(cfg.Items)

	l := vlist.New(vlist.Options{
		BaseHeight:     1,
		Overscan:       cfg.Overscan,
		Horizontal:     cfg.Horizontal,
		ScrollDebounce: cfg.Debounce,
	}, items...)
	l.Focus()
	l.SetSelected(0)

	input := textinput.New()
	input.Placeholder = "fuzzy search"

	return &Model{
		cfg:      cfg,
		keys:     defaultKeyMap(),
		list:     l,
		contents: contents,
		input:    input,
	}
}

// Close releases engine resources.
func (m *Model) Close() {
	m.list.Close()
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(m.width, m.listHeight())
		m.input.SetWidth(m.width - 1)

	case tea.MouseWheelMsg:
		switch msg.Button {
		case tea.MouseWheelUp:
			m.list.ScrollBy(-3)
		case tea.MouseWheelDown:
			m.list.ScrollBy(3)
		}

	case tea.MouseClickMsg:
		if idx := m.list.IndexAt(msg.Y); idx >= 0 {
			m.list.SetSelected(idx)
		}

	case tea.KeyPressMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.list.SelectPrev()
			m.list.ScrollToSelected()
		case key.Matches(msg, m.keys.Down):
			m.list.SelectNext()
			m.list.ScrollToSelected()
		case key.Matches(msg, m.keys.PageUp):
			m.list.ScrollBy(-m.listHeight())
		case key.Matches(msg, m.keys.PageDown):
			m.list.ScrollBy(m.listHeight())
		case key.Matches(msg, m.keys.Top):
			m.list.ScrollToTop()
		case key.Matches(msg, m.keys.Bottom):
			m.list.ScrollToBottom()
		case key.Matches(msg, m.keys.Search):
			m.searching = true
			m.input.SetValue("")
			return m, m.input.Focus()
		case key.Matches(msg, m.keys.Next):
			m.cycleMatch(1)
		case key.Matches(msg, m.keys.Prev):
			m.cycleMatch(-1)
		}
	}

	return m, nil
}

// updateSearch handles key input while the search prompt is open.
func (m *Model) updateSearch(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searching = false
		m.input.Blur()
		m.matches = fuzzy.Find(m.input.Value(), m.contents)
		m.matchIdx = 0
		m.jumpToMatch()
		return m, nil
	case "esc":
		m.searching = false
		m.input.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// cycleMatch advances through the current matches and jumps.
func (m *Model) cycleMatch(step int) {
	if len(m.matches) == 0 {
		return
	}
	m.matchIdx = (m.matchIdx + step + len(m.matches)) % len(m.matches)
	m.jumpToMatch()
}

// jumpToMatch centers the current match in the viewport.
func (m *Model) jumpToMatch() {
	if len(m.matches) == 0 {
		return
	}
	idx := m.matches[m.matchIdx].Index
	m.list.SetSelected(idx)
	m.list.ScrollToIndex(idx, scroll.AlignCenter)
	log.Debug("jump to match", "index", idx, "matches", len(m.matches))
}

// listHeight is the list viewport height: everything minus the footer and,
// while searching, the prompt line.
func (m *Model) listHeight() int {
	h := m.height - 1
	if m.searching {
		h--
	}
	return max(h, 1)
}

// View implements tea.Model.
func (m *Model) View() tea.View {
	var v tea.View
	if m.width <= 0 || m.height <= 0 {
		return v
	}

	listHeight := m.listHeight()
	buf := uv.NewScreenBuffer(m.width, listHeight)
	m.list.Draw(&buf, uv.Rect(0, 0, m.width, listHeight))

	sections := []string{buf.Render()}
	if m.searching {
		sections = append(sections, m.input.View())
	}
	sections = append(sections, m.footer())

	v.Layer = lipgloss.NewCanvas(lipgloss.NewLayer(strings.Join(sections, "\n")))
	return v
}

// footer summarizes collection size, scroll position, and motion state.
func (m *Model) footer() string {
	eng := m.list.Engine()
	total, _ := eng.TotalSize()
	vp := eng.Viewport()

	motion := "idle"
	if st := eng.Motion(); st.Scrolling {
		motion = "scrolling " + st.Main.String()
	}

	status := fmt.Sprintf(
		"%s items · %s lines · offset %d · %s · / to search · q to quit",
		humanize.Comma(int64(m.list.Len())),
		humanize.Comma(int64(total)),
		vp.OffsetMain,
		motion,
	)
	return footerStyle.Render(status)
}
