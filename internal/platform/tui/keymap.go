package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappy-tui/internal/core"
)

// KeyMapper translates Bubble Tea key and mouse messages to game actions.
// Mapping is phase-aware: the same space bar starts a run from the idle
// screen and flaps during one.
type KeyMapper struct{}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action for the given phase.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg, phase core.Phase) (action core.Action, isQuit bool) {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case " ", "up", "w":
		switch phase {
		case core.PhaseIdle:
			return core.ActionStart, false
		case core.PhaseGameOver:
			return core.ActionRestart, false
		}
		return core.ActionFlap, false
	case "enter":
		switch phase {
		case core.PhaseIdle:
			return core.ActionStart, false
		case core.PhaseGameOver:
			return core.ActionRestart, false
		}
		return core.ActionNone, false
	case "r":
		if phase == core.PhaseGameOver {
			return core.ActionRestart, false
		}
		return core.ActionNone, false
	case "p", "esc":
		return core.ActionPause, false
	case "m":
		return core.ActionMute, false
	}

	return core.ActionNone, false
}

// MapMouse translates a mouse message to an action for the given phase.
// A left-button press anywhere on the surface is an impulse request, or
// the start action from the idle screen.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg, phase core.Phase) core.Action {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return core.ActionNone
	}
	switch phase {
	case core.PhaseIdle:
		return core.ActionStart
	case core.PhaseGameOver:
		return core.ActionRestart
	}
	return core.ActionFlap
}
