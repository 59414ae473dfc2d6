package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ink-runner/internal/platform/tui"
)

var (
	flagSSHAddr       string
	flagHostKey       string
	flagSSHDBPath     string
	flagSSHConfigPath string
	flagIdleTimeout   int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Ink Runner SSH server",
	Long: `Start an SSH server that lets users connect and play over the wire.

Each SSH connection gets its own session with the difficulty menu.
Runs are stored per-server (all users share the same leaderboard).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.inkrun/host_key

Examples:
  inkrun serve                           # Listen on :23234 with auto-generated key
  inkrun serve --ssh :2222               # Listen on port 2222
  inkrun serve --host-key ./my_host_key  # Use specific host key
  inkrun serve --db ./runs.db            # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagSSHDBPath, "db", "~/.inkrun/runs.db", "Path to runs database")
	serveCmd.Flags().StringVar(&flagSSHConfigPath, "config", "", "Path to a tuning config file (YAML)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagSSHDBPath,
		ConfigPath:  flagSSHConfigPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting Ink Runner SSH server on %s\n", cfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
