package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flappy-tui/internal/storage"
)

const maxScores = 100 // Max scores to load into the table

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

var (
	scoreboardTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("11")).
				MarginBottom(1)

	scoreboardStatsStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245")).
				MarginTop(1)
)

// ScoreboardModel is the Bubble Tea model for the scoreboard screen.
type ScoreboardModel struct {
	store    *storage.Store
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	stats    *storage.Stats
	quitting bool
}

// NewScoreboardModel creates a scoreboard over the stored scores.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
		{Title: "Date", Width: 18},
	}

	var rows []table.Row
	if store != nil {
		if scores, err := store.TopScores(maxScores); err == nil {
			for i, entry := range scores {
				rows = append(rows, table.Row{
					fmt.Sprintf("%d", i+1),
					fmt.Sprintf("%d", entry.Score),
					entry.CreatedAt.Format("2006-01-02 15:04"),
				})
			}
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height-6),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).Foreground(lipgloss.Color("11"))
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("11"))
	t.SetStyles(styles)

	var stats *storage.Stats
	if store != nil {
		stats, _ = store.GetStats()
	}

	return ScoreboardModel{
		store: store,
		table: t,
		help:  help.New(),
		keys:  DefaultScoreboardKeyMap(),
		stats: stats,
	}
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles scoreboard input.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 6)
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	view := scoreboardTitleStyle.Render("High Scores - Flappy Bird") + "\n"
	view += m.table.View() + "\n"

	if m.stats != nil && m.stats.Runs > 0 {
		view += scoreboardStatsStyle.Render(fmt.Sprintf(
			"%d runs  |  best %d  |  average %.1f",
			m.stats.Runs, m.stats.HighScore, m.stats.AvgScore,
		)) + "\n"
	}

	view += "\n" + m.help.View(m.keys)
	return view
}

// RunScoreboard shows the interactive scoreboard.
func RunScoreboard(store *storage.Store, width, height int) error {
	model := NewScoreboardModel(store, width, height)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
