package textview_test

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/mstarzyk/expandable"
	"github.com/mstarzyk/expandable/textview"
	"github.com/stretchr/testify/assert"
)

func TestNewStyles(t *testing.T) {
	t.Parallel()

	styles := textview.NewStyles(expandable.DefaultTheme())

	assert.Equal(t, lipgloss.NoColor{}, styles.Text.GetForeground())
	assert.Equal(t, lipgloss.Color("5"), styles.More.GetForeground())
	assert.True(t, styles.More.GetBold())
	assert.Equal(t, lipgloss.Color("8"), styles.Muted.GetForeground())
	assert.True(t, styles.Muted.GetFaint())
}
