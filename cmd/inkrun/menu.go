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

var menuConfigPath string

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a difficulty and play",
	Long: `Open the interactive difficulty menu. Selecting a difficulty starts
a run; when the run ends you return to the menu. Tab opens the
scoreboard.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMenu()
	},
}

func init() {
	menuCmd.Flags().StringVar(&menuConfigPath, "config", "", "Path to a tuning config file (YAML)")
}

func runMenu() error {
	baseCfg, err := config.LoadRunner(menuConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		width, height = 80, 24
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: scores will not be saved: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close() //nolint:errcheck // best-effort close on exit
	}

	firstRun := true
	for {
		result, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = result.Config

		if result.Quit {
			return nil
		}

		if result.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue
		}

		rcfg := baseCfg
		config.ApplyPreset(&rcfg, result.Preset)

		runCfg := cfg
		runCfg.Seed = flagSeed
		if runCfg.Seed == 0 {
			runCfg.Seed = time.Now().UnixNano()
		}

		tutorial := firstRun && !hasRecordedRuns(store)
		backToMenu, err := tui.Run(rcfg, store, runCfg, tutorial)
		if err != nil {
			return err
		}
		firstRun = false
		if !backToMenu {
			return nil
		}
	}
}

// hasRecordedRuns reports whether the store already holds finished runs.
// A nil or failing store counts as empty so the tutorial still shows.
func hasRecordedRuns(store *storage.Store) bool {
	if store == nil {
		return false
	}
	stats, err := store.Stats()
	if err != nil {
		return false
	}
	return stats.RunCount > 0
}
