package main

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/mstarzyk/expandable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storyText() string {
	var b strings.Builder
	for i := 1; i <= 10; i++ {
		if i > 1 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "story line %d", i)
	}
	return b.String()
}

func storyEntries() []entry {
	return []entry{{name: "story.txt", source: storyText()}}
}

// drainCmd executes a command tree and collects the produced messages.
func drainCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, drainCmd(c)...)
		}
		return msgs
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// initDemo creates a model, delivers the window size, and lets the scheduled
// measurements land.
func initDemo(t *testing.T, entries []entry, opts expandable.Options) model {
	t.Helper()
	m := newModel(entries, opts, expandable.DefaultTheme())
	updated, cmd := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	demo, ok := updated.(model)
	require.True(t, ok)
	for _, msg := range drainCmd(cmd) {
		updated, _ = demo.Update(msg)
		demo, ok = updated.(model)
		require.True(t, ok)
	}
	return demo
}

func TestModelUpdate(t *testing.T) {
	t.Parallel()

	t.Run("resize measures the views", func(t *testing.T) {
		t.Parallel()
		m := initDemo(t, storyEntries(), expandable.DefaultOptions())
		assert.True(t, m.ready)
		require.Len(t, m.views, 1)
		assert.True(t, m.views[0].Truncated())
		assert.Contains(t, m.viewport.View(), "more")
	})

	t.Run("tab cycles focus between files", func(t *testing.T) {
		t.Parallel()
		entries := []entry{
			{name: "a.txt", source: "alpha"},
			{name: "b.txt", source: "beta"},
		}
		m := initDemo(t, entries, expandable.DefaultOptions())
		require.True(t, m.views[0].Focused())

		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
		m = updated.(model)
		assert.False(t, m.views[0].Focused())
		assert.True(t, m.views[1].Focused())

		updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
		m = updated.(model)
		assert.True(t, m.views[0].Focused())
	})

	t.Run("enter expands the focused view", func(t *testing.T) {
		t.Parallel()
		m := initDemo(t, storyEntries(), expandable.DefaultOptions())
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		m = updated.(model)
		assert.True(t, m.views[0].Expanded())
	})

	t.Run("click inside a view expands it", func(t *testing.T) {
		t.Parallel()
		m := initDemo(t, storyEntries(), expandable.DefaultOptions())
		// Row 0 is the file header; row 1 is the first content row.
		updated, _ := m.Update(tea.MouseMsg{
			X: 3, Y: 2,
			Action: tea.MouseActionPress,
			Button: tea.MouseButtonLeft,
		})
		m = updated.(model)
		assert.True(t, m.views[0].Expanded())
	})

	t.Run("click on the status area does nothing", func(t *testing.T) {
		t.Parallel()
		m := initDemo(t, storyEntries(), expandable.DefaultOptions())
		updated, _ := m.Update(tea.MouseMsg{
			X: 3, Y: 20,
			Action: tea.MouseActionPress,
			Button: tea.MouseButtonLeft,
		})
		m = updated.(model)
		assert.False(t, m.views[0].Expanded())
	})

	t.Run("q quits", func(t *testing.T) {
		t.Parallel()
		m := initDemo(t, storyEntries(), expandable.DefaultOptions())
		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	})
}

func TestDemoEndToEnd(t *testing.T) {
	t.Parallel()

	m := newModel(storyEntries(), expandable.DefaultOptions(), expandable.DefaultTheme())
	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(80, 24))

	// Collapsed: the expand control is visible, the tail of the story is not.
	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("more")) && !bytes.Contains(out, []byte("story line 10"))
	}, teatest.WithDuration(5*time.Second))

	// Expand and wait for the reveal animation to finish.
	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})
	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("story line 10"))
	}, teatest.WithDuration(5*time.Second))

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	final, ok := tm.FinalModel(t, teatest.WithFinalTimeout(5*time.Second)).(model)
	require.True(t, ok)
	assert.True(t, final.views[0].Expanded())
}
