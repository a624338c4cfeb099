// flappy is a terminal rendition of the classic one-button arcade game:
// keep the bird airborne, thread the pipe gaps, rack up a score.
//
// Usage:
//
//	flappy              - Play the game
//	flappy scores       - Show high scores
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.flappy/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy-tui/internal/audio"
	"github.com/vovakirdan/flappy-tui/internal/config"
	"github.com/vovakirdan/flappy-tui/internal/core"
	"github.com/vovakirdan/flappy-tui/internal/game"
	"github.com/vovakirdan/flappy-tui/internal/platform/tui"
	"github.com/vovakirdan/flappy-tui/internal/storage"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string

	// Play flags
	flagConfig     string
	flagDifficulty string
	flagMute       bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy Bird in your terminal",
	Long: `Flappy Bird for the terminal.

Controls:
  Space/Up/W   - Flap (starts a run from the title screen)
  Click        - Flap
  P/Esc        - Pause
  R/Enter      - Restart (after game over)
  M            - Mute/unmute audio
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Wider gaps, slower pipe cadence
  normal - Classic constants
  hard   - Narrower gaps, faster pipe cadence

Examples:
  flappy
  flappy --difficulty hard
  flappy --config ./my-flappy.yaml --mute
  flappy scores`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.flappy/scores.db", "Path to scores database")

	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.Flags().BoolVar(&flagMute, "mute", false, "Start with audio muted")

	rootCmd.AddCommand(scoresCmd)
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagDifficulty != "" {
		config.ApplyPreset(&cfg, config.DifficultyPreset(flagDifficulty))
	}

	// Terminal size for the initial screen buffer
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	g := game.New(cfg)

	cues := audio.NewPlayer()
	if cfg.Audio.Enabled {
		if audioErr := cues.Init(); audioErr != nil {
			log.Warn("audio unavailable, continuing silent", "err", audioErr)
		}
	}
	cues.SetMuted(flagMute || !cfg.Audio.Enabled)
	defer cues.Close()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("could not open scores database", "err", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(g, store, cues, rt)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
