package textview

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	animDuration = 250 * time.Millisecond
	animInterval = time.Second / 60
)

// frameMsg advances an expand transition. The run number ties frames to one
// animation so frames from a superseded run are dropped.
type frameMsg struct {
	id  int
	run int
	now time.Time
}

func frame(id, run int) tea.Cmd {
	return tea.Tick(animInterval, func(now time.Time) tea.Msg {
		return frameMsg{id: id, run: run, now: now}
	})
}
