package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/ink-runner/internal/config"
	"github.com/vovakirdan/ink-runner/internal/core"
	"github.com/vovakirdan/ink-runner/internal/platform/tui"
	"github.com/vovakirdan/ink-runner/internal/storage"
)

var (
	flagConfigPath string
	flagDifficulty string
	flagTutorial   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a run directly",
	Long: `Start a run without going through the menu.

Controls:
  Space/W/Up  - Jump
  Mouse drag  - Draw an ink platform
  E           - Revive after death (if available)
  P/Esc       - Pause
  R           - Restart after a run ends
  Q/Ctrl+C    - Quit`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay()
	},
}

func init() {
	playCmd.Flags().StringVar(&flagConfigPath, "config", "", "Path to a tuning config file (YAML)")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "normal", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().BoolVar(&flagTutorial, "tutorial", false, "Start with the scripted intro sequence")
}

func runPlay() error {
	rcfg, err := config.LoadRunner(flagConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	preset := config.DifficultyPreset(flagDifficulty)
	switch preset {
	case config.DifficultyEasy, config.DifficultyNormal, config.DifficultyHard, config.DifficultyFixed:
	default:
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	config.ApplyPreset(&rcfg, preset)

	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		width, height = 80, 24
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
	}

	// Persistence is best effort; the game runs without a database.
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: scores will not be saved: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close() //nolint:errcheck // best-effort close on exit
	}

	_, err = tui.Run(rcfg, store, cfg, flagTutorial)
	return err
}
