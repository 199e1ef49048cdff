// Package textview implements a truncating "show more" text view for Bubble
// Tea. The view clips its content to a configured number of display lines,
// overlays an inline expand control on the last visible line when content is
// hidden, and reveals the full text when activated by key, mouse click, or a
// host-sent ToggleMsg.
//
// Truncation is detected by measurement: the content is sized once without a
// line constraint (intrinsic size) and once under the constraint, and the
// view is truncated exactly when the two differ. The two measurements are
// delivered as independent messages and may settle in either order; the
// truncation state is re-derived after each one.
package textview

import (
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	rw "github.com/mattn/go-runewidth"
	"github.com/mstarzyk/expandable"
)

// ToggleMsg asks a view to toggle its expanded state, subject to the same
// gating as a direct tap. Hosts send it when the user activates the view
// through an app-level control.
type ToggleMsg struct{}

// KeyMap holds the key bindings the view responds to while focused.
type KeyMap struct {
	Toggle key.Binding
}

// DefaultKeyMap returns the default bindings: enter or space toggles.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "expand/collapse"),
		),
	}
}

// lastID distinguishes view instances so measurement and animation messages
// reach the view that issued them, even when a host forwards every message
// to every view.
var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// intrinsicMsg delivers the unconstrained measurement of the content.
type intrinsicMsg struct {
	id   int
	gen  int
	size Size
}

// constrainedMsg delivers the measurement under the line-count constraint.
type constrainedMsg struct {
	id   int
	gen  int
	size Size
}

// Model is a truncating text view. Create one with New, give it a width with
// SetWidth, and forward messages through Update. The zero value is not
// usable.
type Model struct {
	// KeyMap holds the bindings honored while the view is focused.
	KeyMap KeyMap

	id      int
	content expandable.Content
	opts    expandable.Options
	styles  Styles

	width   int
	yOffset int

	// gen is the measurement generation. Width, content, and option changes
	// bump it; results stamped with an older generation are dropped.
	gen                int
	intrinsic          Size
	constrained        Size
	intrinsicSettled   bool
	constrainedSettled bool
	labelWidth         int

	expanded  bool
	truncated bool
	focused   bool

	// Expand transition. State flips immediately on expand; only the number
	// of revealed lines is interpolated.
	animRun   int
	animating bool
	animStart time.Time
	animFrom  int
	animTo    int
	revealed  int
}

// New creates a collapsed view displaying content under the given options,
// with theme styles as fallback for any style the options leave unset.
func New(content expandable.Content, opts expandable.Options, styles Styles) Model {
	return Model{
		KeyMap:     DefaultKeyMap(),
		id:         nextID(),
		content:    content,
		opts:       opts,
		styles:     styles,
		labelWidth: rw.StringWidth(opts.MoreLabel()),
	}
}

// SetWidth sets the wrap width and schedules remeasurement. The returned
// command must be executed for truncation detection to settle.
func (m *Model) SetWidth(width int) tea.Cmd {
	if width == m.width {
		return nil
	}
	m.width = width
	return m.remeasure()
}

// SetContent replaces the displayed content and schedules remeasurement.
func (m *Model) SetContent(content expandable.Content) tea.Cmd {
	m.content = content
	return m.remeasure()
}

// SetOptions replaces the presentation options and schedules remeasurement.
func (m *Model) SetOptions(opts expandable.Options) tea.Cmd {
	m.opts = opts
	m.labelWidth = rw.StringWidth(opts.MoreLabel())
	return m.remeasure()
}

// SetYOffset records the view's top row in host coordinates, used to
// hit-test mouse clicks.
func (m *Model) SetYOffset(y int) {
	m.yOffset = y
}

// Focus makes the view respond to its key bindings.
func (m *Model) Focus() {
	m.focused = true
}

// Blur makes the view ignore key input.
func (m *Model) Blur() {
	m.focused = false
}

// Focused reports whether the view responds to key input.
func (m Model) Focused() bool { return m.focused }

// Width returns the current wrap width.
func (m Model) Width() int { return m.width }

// Expanded reports whether the view is showing its full content.
func (m Model) Expanded() bool { return m.expanded }

// Truncated reports whether the constrained rendering differs from the
// intrinsic one. Until both measurements of the current generation settle
// this is false: the view assumes untruncated until proven otherwise.
func (m Model) Truncated() bool { return m.truncated }

// ShouldShowMore reports whether the expand control is visible: the view is
// collapsed and the content is truncated.
func (m Model) ShouldShowMore() bool { return !m.expanded && m.truncated }

// remeasure starts a new measurement generation and returns commands that
// produce the intrinsic and constrained sizes as two separate messages. They
// may be delivered in either order.
func (m *Model) remeasure() tea.Cmd {
	m.gen++
	m.intrinsicSettled = false
	m.constrainedSettled = false
	m.truncated = false

	id, gen := m.id, m.gen
	text := m.content.Raw()
	width := m.width
	limit := m.opts.LineLimit()
	return tea.Batch(
		func() tea.Msg {
			return intrinsicMsg{id: id, gen: gen, size: measure(text, width)}
		},
		func() tea.Msg {
			return constrainedMsg{id: id, gen: gen, size: measureConstrained(text, width, limit)}
		},
	)
}

// deriveTruncated re-evaluates the truncation predicate. It runs after every
// measurement update, never independently of one.
func (m *Model) deriveTruncated() {
	m.truncated = m.intrinsicSettled && m.constrainedSettled && m.intrinsic != m.constrained
}

// Update handles measurement results, animation frames, and activation by
// key, mouse, or ToggleMsg.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case intrinsicMsg:
		if msg.id != m.id || msg.gen != m.gen {
			return m, nil
		}
		m.intrinsic = msg.size
		m.intrinsicSettled = true
		m.deriveTruncated()
		return m, nil

	case constrainedMsg:
		if msg.id != m.id || msg.gen != m.gen {
			return m, nil
		}
		m.constrained = msg.size
		m.constrainedSettled = true
		m.deriveTruncated()
		return m, nil

	case ToggleMsg:
		return m.toggle()

	case tea.KeyMsg:
		if m.focused && key.Matches(msg, m.KeyMap.Toggle) {
			return m.toggle()
		}
		return m, nil

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && m.contains(msg.X, msg.Y) {
			return m.toggle()
		}
		return m, nil

	case frameMsg:
		return m.advanceAnim(msg)
	}

	return m, nil
}

// toggle applies the tap gating: a collapsed view expands only when there is
// hidden content, and an expanded view collapses only when the configuration
// allows it. Any other tap is a no-op.
func (m Model) toggle() (Model, tea.Cmd) {
	switch {
	case !m.expanded && m.truncated:
		m.expanded = true
		return m.startExpand()

	case m.expanded && m.opts.CollapseEnabled():
		m.expanded = false
		m.animating = false
		m.animRun++
		// Truncation is re-derived from fresh measurements, not assumed to
		// still hold.
		return m, m.remeasure()
	}
	return m, nil
}

// startExpand begins the reveal animation from the constrained height to the
// intrinsic height. When the intrinsic size has not settled yet the view
// snaps open without animating.
func (m Model) startExpand() (Model, tea.Cmd) {
	if !m.intrinsicSettled || !m.constrainedSettled || m.intrinsic.Height <= m.constrained.Height {
		return m, nil
	}
	m.animRun++
	m.animating = true
	m.animStart = time.Now()
	m.animFrom = m.constrained.Height
	m.animTo = m.intrinsic.Height
	m.revealed = m.animFrom
	return m, frame(m.id, m.animRun)
}

func (m Model) advanceAnim(msg frameMsg) (Model, tea.Cmd) {
	if msg.id != m.id || msg.run != m.animRun || !m.animating {
		return m, nil
	}
	t := float64(msg.now.Sub(m.animStart)) / float64(animDuration)
	if t >= 1 {
		m.animating = false
		m.revealed = m.animTo
		return m, nil
	}
	if t < 0 {
		t = 0
	}
	span := float64(m.animTo - m.animFrom)
	m.revealed = m.animFrom + int(m.opts.Easing()(t)*span+0.5)
	return m, frame(m.id, m.animRun)
}

// View renders the current presentation at the configured width.
func (m Model) View() string {
	if m.content.Empty() {
		return ""
	}

	showMore := m.ShouldShowMore()
	text := m.content.Raw()
	if showMore && m.opts.CollapseBlankLines() {
		text = m.content.CollapseBlankLines()
	}

	lines := wrapLines(text, m.width)
	switch {
	case !m.expanded:
		// The line constraint is gated by expansion state alone; the
		// truncation flag only controls the overlay.
		if limit := m.opts.LineLimit(); limit > 0 && len(lines) > limit {
			lines = lines[:limit]
		}
	case m.animating:
		if m.revealed > 0 && m.revealed < len(lines) {
			lines = lines[:m.revealed]
		}
	}

	if !m.content.IsStyled() {
		style := m.textStyle()
		for i := range lines {
			lines[i] = style.Render(lines[i])
		}
	}

	if showMore && len(lines) > 0 {
		last := len(lines) - 1
		lines[last] = composeOverlay(lines[last], m.styledLabel(), m.labelWidth, m.width)
	}

	return strings.Join(lines, "\n")
}

// Height reports the number of display lines the current View occupies.
// Hosts use it for layout and mouse hit-testing.
func (m Model) Height() int {
	v := m.View()
	if v == "" {
		return 0
	}
	return strings.Count(v, "\n") + 1
}

// contains reports whether host coordinates fall inside the view's content
// area. The whole area is a tap target, not just the expand control.
func (m Model) contains(x, y int) bool {
	if y < m.yOffset || y >= m.yOffset+m.Height() {
		return false
	}
	if m.width <= 0 {
		return x >= 0
	}
	return x >= 0 && x < m.width
}

func (m Model) textStyle() lipgloss.Style {
	if s, ok := m.opts.Style(); ok {
		return s
	}
	return m.styles.Text
}

func (m Model) styledLabel() string {
	style := m.styles.More
	if s, ok := m.opts.MoreStyle(); ok {
		style = s
	}
	return style.Render(m.opts.MoreLabel())
}
