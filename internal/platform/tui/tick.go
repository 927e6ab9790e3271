package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is a scheduled frame for the session in Slot. Frames carry the
// generation they were requested under; the session drops stale ones.
type FrameMsg struct {
	Slot int
	Gen  uint64
	Time time.Time
}

// frameCmd requests the next frame after interval.
func frameCmd(interval time.Duration, slot int, gen uint64) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg{Slot: slot, Gen: gen, Time: t}
	})
}
