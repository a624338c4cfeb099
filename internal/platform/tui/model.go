package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappy-tui/internal/audio"
	"github.com/vovakirdan/flappy-tui/internal/core"
	"github.com/vovakirdan/flappy-tui/internal/game"
	"github.com/vovakirdan/flappy-tui/internal/storage"
)

// Model is the Bubble Tea model hosting the game. It owns the frame
// driver: a tick command is in flight only while the game is playing,
// so leaving the playing phase stops the chain and re-entering starts
// a fresh one.
type Model struct {
	game   *game.Game
	screen *core.Screen
	store  *storage.Store
	cues   *audio.Player
	keymap *KeyMapper

	config     core.RuntimeConfig
	inputFrame core.InputFrame
	state      core.Snapshot
	quitting   bool
	scoreSaved bool // Whether the score was saved for the current game over
}

// NewModel creates the model and puts the game on its idle screen.
func NewModel(g *game.Game, store *storage.Store, cues *audio.Player, cfg core.RuntimeConfig) Model {
	// Use a time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	g.Init(cfg)

	return Model{
		game:       g,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		cues:       cues,
		keymap:     NewKeyMapper(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		state:      g.State(),
	}
}

// Init implements tea.Model. The game starts idle, so no tick is
// scheduled yet; the first start action begins the chain.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		action, isQuit := m.keymap.MapKey(msg, m.state.Phase)
		if isQuit {
			m.quitting = true
			m.cues.StopLoop()
			return m, tea.Quit
		}
		return m.handleAction(action)

	case tea.MouseMsg:
		return m.handleAction(m.keymap.MapMouse(msg, m.state.Phase))

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.game.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleAction routes a semantic action. Start and restart step the game
// immediately (no tick chain is running outside the playing phase);
// everything else is queued into the input frame for the next tick.
func (m Model) handleAction(action core.Action) (tea.Model, tea.Cmd) {
	switch action {
	case core.ActionNone:
		return m, nil

	case core.ActionMute:
		m.cues.ToggleMute()
		return m, nil

	case core.ActionStart, core.ActionRestart:
		if m.state.Phase == core.PhasePlaying {
			return m, nil
		}
		in := core.NewInputFrame()
		in.Set(action)
		result := m.game.Step(in)
		m.state = result.State
		if m.state.Phase == core.PhasePlaying {
			m.scoreSaved = false
			m.inputFrame.Clear()
			m.cues.StartLoop()
			return m, tickCmd(m.config.TickRate)
		}
		return m, nil

	default:
		m.inputFrame.Set(action)
		return m, nil
	}
}

// handleTick advances the simulation by one frame and reschedules the
// next tick only if the game is still playing.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.state.Phase != core.PhasePlaying {
		// Stale tick from a chain that already ended
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.state = result.State
	m.inputFrame.Clear()

	m.dispatchCues(result.Events)

	if m.state.Phase == core.PhaseGameOver {
		m.saveScore()
		return m, nil
	}

	return m, tickCmd(m.config.TickRate)
}

// dispatchCues plays the audio cues reported by the simulation.
func (m Model) dispatchCues(events []core.Event) {
	for _, e := range events {
		switch e {
		case core.EventFlap:
			m.cues.PlayFlap()
		case core.EventScore:
			m.cues.PlayScore()
		case core.EventHit:
			m.cues.StopLoop()
			m.cues.PlayHit()
		}
	}
}

// saveScore persists the final score once per game over. Best-effort:
// gameplay continues regardless of storage availability.
func (m *Model) saveScore() {
	if m.scoreSaved || m.state.Score <= 0 {
		return
	}
	if m.store != nil {
		//nolint:errcheck // Best-effort save, game continues regardless
		m.store.SaveScore(m.state.Score)
	}
	m.scoreSaved = true
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	if m.cues.Muted() {
		m.screen.DrawTextColor(2, m.screen.Height()-1, " muted (m) ", core.ColorGray)
	}

	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program hosting the game.
func Run(g *game.Game, store *storage.Store, cues *audio.Player, cfg core.RuntimeConfig) error {
	model := NewModel(g, store, cues, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Tap-to-flap
	)

	_, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
