package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-gorillas/internal/platform"
	"github.com/vovakirdan/tui-gorillas/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start SSH server for remote play",
	Long: `Start an SSH server so matches can be played over SSH.

Each connection gets its own hot-seat match in its terminal. Finished
rounds are saved to the results database with source "ssh".

Examples:
  gorillas serve
  gorillas serve --ssh :2222
  gorillas serve --ssh 0.0.0.0:23234 --host-key ./host_key

Connect with:
  ssh -p 23234 localhost`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH listen address")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to SSH host key (default: ~/.gorillas/host_key)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 30*time.Minute, "Close idle sessions after this long")
	serveCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom rules YAML")
}

func runServe(cmd *cobra.Command, args []string) {
	logger := stderrLogger("gorillas-ssh")
	rules := loadRules()

	var store platform.RoundSaver
	if st := openStore(logger); st != nil {
		defer st.Close()
		store = st
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.IdleTimeout = flagIdleTimeout
	cfg.FPS = flagFPS
	cfg.Rules = rules

	srv, err := tui.NewSSHServer(cfg, store, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Gorillas SSH server listening on %s\n", srv.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := srv.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
