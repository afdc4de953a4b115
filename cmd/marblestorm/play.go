package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcadekit/marblestorm/internal/core"
	"github.com/arcadekit/marblestorm/internal/games/marble"
	"github.com/arcadekit/marblestorm/internal/platform/tui"
	"github.com/arcadekit/marblestorm/internal/registry"
	"github.com/arcadekit/marblestorm/internal/sim"
	"github.com/arcadekit/marblestorm/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagCurve      string
	flagLevel      int
	flagEndless    bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Marble Storm",
	Long: `Start a game of Marble Storm.

Controls:
  A/D or Left/Right  - Aim the shooter
  Space              - Fire
  C/Tab              - Swap current and next marble
  1/2/3              - Use slow-mo / reverse / EMP powerup
  P                  - Pause
  R                  - Restart (after game over)
  Q/Ctrl+C           - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  marblestorm play
  marblestorm play --endless
  marblestorm play --difficulty hard
  marblestorm play --curve spiral --level 5
  marblestorm play --config ./my-marble.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagCurve, "curve", "", "Track shape override (see 'marblestorm curves')")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Campaign level to start at (1-based)")
	playCmd.Flags().BoolVar(&flagEndless, "endless", false, "Play endless mode instead of the campaign")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "marble"
	if flagEndless {
		gameID = "marble_endless"
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Apply CLI overrides before creation
	marble.SetConfigPath(flagConfig)
	marble.SetDifficultyPreset(flagDifficulty)
	if flagLevel > 0 {
		marble.SetStartLevel(flagLevel - 1)
	}
	if flagCurve != "" {
		curve, curveErr := sim.ParseCurve(flagCurve)
		if curveErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", curveErr)
			fmt.Fprintln(os.Stderr, "Run 'marblestorm curves' to see available track shapes.")
			os.Exit(1)
		}
		marble.SetCurve(curve)
	}

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
