// Package tui provides the Bubble Tea integration: the terminal loop,
// input mapping, cue dispatch, and screen rendering.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends one tick message after
// the frame interval. The model re-issues it while the game is playing;
// leaving the playing phase simply stops the chain.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
