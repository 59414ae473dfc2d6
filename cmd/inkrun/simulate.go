package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/ink-runner/internal/config"
	"github.com/vovakirdan/ink-runner/internal/core"
	"github.com/vovakirdan/ink-runner/internal/sim"
	"github.com/vovakirdan/ink-runner/internal/storage"
)

var (
	flagSimRuns       int
	flagSimTimeout    int
	flagSimDifficulty string
	flagSimConfigPath string
	flagSimSave       bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run headless seeded simulations",
	Long: `Run the simulation core without a terminal UI. Each run uses a
deterministic seed (base seed plus run index) and is driven at the
configured tick rate until the player dies or the timeout fires.
Useful for balancing tuning configs and checking determinism.

Examples:
  inkrun simulate --runs 20 --seed 42
  inkrun simulate --runs 5 --difficulty hard --timeout 120
  inkrun simulate --runs 100 --save`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSimulate()
	},
}

func init() {
	simulateCmd.Flags().IntVar(&flagSimRuns, "runs", 10, "Number of runs to simulate")
	simulateCmd.Flags().IntVar(&flagSimTimeout, "timeout", 180, "Per-run timeout in seconds")
	simulateCmd.Flags().StringVar(&flagSimDifficulty, "difficulty", "normal", "Difficulty preset: easy, normal, hard")
	simulateCmd.Flags().StringVar(&flagSimConfigPath, "config", "", "Path to a tuning config file (YAML)")
	simulateCmd.Flags().BoolVar(&flagSimSave, "save", false, "Persist simulated outcomes to the runs database")
}

func runSimulate() error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "inkrun-sim",
	})

	rcfg, err := config.LoadRunner(flagSimConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	config.ApplyPreset(&rcfg, config.DifficultyPreset(flagSimDifficulty))

	baseSeed := flagSeed
	if baseSeed == 0 {
		baseSeed = time.Now().UnixNano()
	}

	var store *storage.Store
	if flagSimSave {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			return fmt.Errorf("failed to open runs database: %w", err)
		}
		defer store.Close() //nolint:errcheck // best-effort close on exit
	}

	if flagFPS <= 0 {
		flagFPS = 60
	}
	dtMs := 1000.0 / float64(flagFPS)

	logger.Info("starting simulation batch",
		"runs", flagSimRuns, "seed", baseSeed,
		"difficulty", flagSimDifficulty, "fps", flagFPS)

	var totalScore, bestScore int
	var totalMs float64

	engine := sim.New(rcfg)
	for i := 0; i < flagSimRuns; i++ {
		seed := baseSeed + int64(i)
		engine.Reset(core.RuntimeConfig{
			ScreenW:  120,
			ScreenH:  36,
			TickRate: flagFPS,
			Seed:     seed,
		})
		engine.SetRunTimeout(float64(flagSimTimeout) * 1000)
		engine.Start()

		for engine.Phase() == sim.PhaseRunning {
			engine.Tick(dtMs)
		}
		engine.Finish()

		out := engine.Outcome()
		snap := engine.Snapshot()
		logger.Info("run finished",
			"run", i+1, "seed", seed,
			"score", out.Score, "coins", out.CoinsCollected,
			"duration_ms", int(out.RunDurationMs), "jumps", out.JumpsPerformed,
			"hash", fmt.Sprintf("%016x", snap.Hash()))

		totalScore += out.Score
		totalMs += out.RunDurationMs
		if out.Score > bestScore {
			bestScore = out.Score
		}

		if store != nil {
			_, err := store.SaveRun(storage.RunRecord{
				Score:      out.Score,
				Coins:      out.CoinsCollected,
				DurationMs: int64(out.RunDurationMs),
				Jumps:      out.JumpsPerformed,
				DrawTimeMs: int64(out.DrawTimeMs),
			})
			if err != nil {
				logger.Warn("failed to save run", "run", i+1, "err", err)
			}
		}
	}

	if flagSimRuns > 0 {
		logger.Info("batch complete",
			"runs", flagSimRuns,
			"best", bestScore,
			"avg_score", totalScore/flagSimRuns,
			"avg_duration_ms", int(totalMs/float64(flagSimRuns)))
	}
	return nil
}
