package textview

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/mstarzyk/expandable"
)

// Styles maps a Theme to lipgloss styles for rendering.
type Styles struct {
	Text  lipgloss.Style
	More  lipgloss.Style
	Muted lipgloss.Style
}

// NewStyles creates Styles from a Theme.
func NewStyles(t expandable.Theme) Styles {
	return Styles{
		Text:  lipgloss.NewStyle().Foreground(ansiColor(t.Text)),
		More:  lipgloss.NewStyle().Foreground(ansiColor(t.More)).Bold(true),
		Muted: lipgloss.NewStyle().Foreground(ansiColor(t.Muted)).Faint(true),
	}
}

func ansiColor(index int) lipgloss.TerminalColor {
	if index < 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(index))
}
