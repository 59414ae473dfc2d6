// inkrun is a terminal runner where platforms are drawn with the mouse.
//
// Usage:
//
//	inkrun play              - Start a run directly
//	inkrun menu              - Pick a difficulty interactively
//	inkrun scores            - Show the best recorded runs
//	inkrun serve             - Start SSH server for remote play
//	inkrun simulate          - Run headless seeded simulations
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.inkrun/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "inkrun",
	Short: "Ink Runner - an endless runner with mouse-drawn platforms",
	Long: `Ink Runner is a terminal endless runner. The world scrolls left;
jump over hazards and drag the mouse to draw temporary ink platforms
to run across. Ink is a scarce resource that recharges between lines.

Available commands:
  play      - Start a run directly
  menu      - Interactive difficulty picker
  scores    - View the best recorded runs
  serve     - Start SSH server for remote play
  simulate  - Run headless seeded simulations

Examples:
  inkrun play
  inkrun play --difficulty hard
  inkrun menu
  inkrun serve --ssh :2222
  inkrun scores
  inkrun simulate --runs 20 --seed 42`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.inkrun/runs.db", "Path to runs database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simulateCmd)
}
