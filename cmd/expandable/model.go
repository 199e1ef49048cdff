package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mstarzyk/expandable"
	"github.com/mstarzyk/expandable/markdown"
	"github.com/mstarzyk/expandable/textview"
)

var _ tea.Model = model{}

// model is the demo's root Bubble Tea model: a scrollable stack of
// expandable text views, one per loaded file.
type model struct {
	viewport viewport.Model
	entries  []entry
	views    []textview.Model
	focus    int
	theme    expandable.Theme
	styles   textview.Styles
	ready    bool
}

func newModel(entries []entry, opts expandable.Options, theme expandable.Theme) model {
	styles := textview.NewStyles(theme)
	views := make([]textview.Model, len(entries))
	for i := range entries {
		views[i] = textview.New(expandable.Plain(""), opts, styles)
	}
	m := model{
		entries: entries,
		views:   views,
		theme:   theme,
		styles:  styles,
	}
	if len(m.views) > 0 {
		m.views[0].Focus()
	}
	return m
}

// Init implements tea.Model.
func (m model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	// Measurement and animation messages find their view by id, so they are
	// forwarded to everyone.
	var cmds []tea.Cmd
	var cmd tea.Cmd
	for i := range m.views {
		m.views[i], cmd = m.views[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	m.syncViewport()
	return m, tea.Batch(cmds...)
}

// View implements tea.Model.
func (m model) View() string {
	if !m.ready {
		return "Loading..."
	}
	return m.viewport.View() + "\n" + m.statusLine()
}

func (m model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	vpHeight := msg.Height - 1 // status line
	if vpHeight < 1 {
		vpHeight = 1
	}
	if !m.ready {
		m.viewport = viewport.New(msg.Width, vpHeight)
		m.ready = true
	} else {
		m.viewport.Width = msg.Width
		m.viewport.Height = vpHeight
	}

	// Content is width-sensitive: markdown files re-render at the new width.
	var cmds []tea.Cmd
	for i := range m.views {
		content := expandable.Plain(m.entries[i].source)
		if m.entries[i].markdown {
			content = expandable.Styled(markdown.Render(m.entries[i].source, msg.Width, m.theme))
		}
		cmds = append(cmds, m.views[i].SetContent(content))
		cmds = append(cmds, m.views[i].SetWidth(msg.Width))
	}
	m.syncViewport()
	return m, tea.Batch(cmds...)
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "tab":
		m.cycleFocus(1)
		m.syncViewport()
		return m, nil
	case "shift+tab":
		m.cycleFocus(-1)
		m.syncViewport()
		return m, nil
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	if m.focus >= 0 && m.focus < len(m.views) {
		m.views[m.focus], cmd = m.views[m.focus].Update(msg)
		cmds = append(cmds, cmd)
	}

	// The viewport scrolls on the remaining navigation keys. Runes are
	// excluded ('q' quits, 'j'/'k' would conflict with future bindings), as
	// are the toggle keys the focused view just consumed.
	if msg.Type != tea.KeyRunes && msg.Type != tea.KeyEnter && msg.Type != tea.KeySpace {
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}
	m.syncViewport()
	return m, tea.Batch(cmds...)
}

func (m model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		// Views hit-test in content coordinates; account for scroll.
		adjusted := msg
		adjusted.Y += m.viewport.YOffset
		for i := range m.views {
			m.views[i], cmd = m.views[i].Update(adjusted)
			cmds = append(cmds, cmd)
		}
	}
	m.syncViewport()
	return m, tea.Batch(cmds...)
}

func (m *model) cycleFocus(delta int) {
	if len(m.views) == 0 {
		return
	}
	m.views[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.views)) % len(m.views)
	m.views[m.focus].Focus()
}

// syncViewport rebuilds the scrollable content and records each view's top
// row so mouse clicks can be hit-tested after scrolling.
func (m *model) syncViewport() {
	if !m.ready {
		return
	}
	blocks := make([]string, 0, len(m.views))
	offset := 0
	for i := range m.views {
		block := m.headerLine(i)
		m.views[i].SetYOffset(offset + 1) // first content row, after the header
		if view := m.views[i].View(); view != "" {
			block += "\n" + view
		}
		blocks = append(blocks, block)
		// Header, content, and the blank separator row before the next block.
		offset += 1 + m.views[i].Height() + 1
	}
	m.viewport.SetContent(strings.Join(blocks, "\n\n"))
}

func (m model) headerLine(i int) string {
	if i == m.focus {
		return m.styles.More.Render(m.entries[i].name)
	}
	return m.styles.Muted.Render(m.entries[i].name)
}

func (m model) statusLine() string {
	return m.styles.Muted.Render("tab: next file · enter: expand · q: quit")
}
