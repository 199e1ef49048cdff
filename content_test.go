package expandable_test

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/mstarzyk/expandable"
	"github.com/stretchr/testify/assert"
)

func TestPlain(t *testing.T) {
	t.Parallel()

	t.Run("trims surrounding whitespace and newlines", func(t *testing.T) {
		t.Parallel()
		c := expandable.Plain("\n\n  hello world \t\n")
		assert.Equal(t, "hello world", c.Raw())
	})

	t.Run("preserves interior whitespace", func(t *testing.T) {
		t.Parallel()
		c := expandable.Plain("line one\n\nline two")
		assert.Equal(t, "line one\n\nline two", c.Raw())
	})

	t.Run("is not styled", func(t *testing.T) {
		t.Parallel()
		assert.False(t, expandable.Plain("x").IsStyled())
	})

	t.Run("whitespace-only input is empty", func(t *testing.T) {
		t.Parallel()
		assert.True(t, expandable.Plain("  \n\t ").Empty())
	})
}

func TestStyled(t *testing.T) {
	t.Parallel()

	t.Run("performs no trimming", func(t *testing.T) {
		t.Parallel()
		c := expandable.Styled("\n  styled  \n")
		assert.Equal(t, "\n  styled  \n", c.Raw())
	})

	t.Run("is styled", func(t *testing.T) {
		t.Parallel()
		assert.True(t, expandable.Styled("x").IsStyled())
	})
}

func TestCollapseBlankLines(t *testing.T) {
	t.Parallel()

	t.Run("collapses runs of blank lines to one", func(t *testing.T) {
		t.Parallel()
		c := expandable.Plain("a\n\n\n\nb")
		assert.Equal(t, "a\n\nb", c.CollapseBlankLines())
	})

	t.Run("single blank lines are preserved", func(t *testing.T) {
		t.Parallel()
		c := expandable.Plain("a\n\nb\n\nc")
		assert.Equal(t, "a\n\nb\n\nc", c.CollapseBlankLines())
	})

	t.Run("whitespace-only lines count as blank", func(t *testing.T) {
		t.Parallel()
		c := expandable.Styled("a\n \n\t\nb")
		assert.Equal(t, "a\n \nb", c.CollapseBlankLines())
	})

	t.Run("lines holding only ANSI sequences count as blank", func(t *testing.T) {
		t.Parallel()
		styledBlank := lipgloss.NewStyle().Bold(true).Render("")
		c := expandable.Styled("a\n" + styledBlank + "\n\nb")
		got := c.CollapseBlankLines()
		assert.Equal(t, "a\n"+styledBlank+"\nb", got)
	})

	t.Run("does not mutate the content", func(t *testing.T) {
		t.Parallel()
		c := expandable.Plain("a\n\n\n\nb")
		_ = c.CollapseBlankLines()
		assert.Equal(t, "a\n\n\n\nb", c.Raw())
	})

	t.Run("no blank lines is a no-op", func(t *testing.T) {
		t.Parallel()
		c := expandable.Plain("a\nb\nc")
		assert.Equal(t, "a\nb\nc", c.CollapseBlankLines())
	})
}
