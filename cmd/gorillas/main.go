// gorillas is the classic artillery duel: two gorillas on a city skyline
// take turns throwing exploding bananas at each other.
//
// Usage:
//
//	gorillas play            - Play a hot-seat match in the terminal (or --gui)
//	gorillas serve           - Start SSH server for remote play
//	gorillas results         - Show saved round results
//	gorillas config          - Print the effective rules as YAML
//
// Global flags:
//
//	--fps <rate>         - Frame rate of the terminal UI (default: 30)
//	--seed <value>       - Set RNG seed for reproducible arenas
//	--db <path>          - Set database path (default: ~/.gorillas/gorillas.db)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-gorillas/internal/config"
	"github.com/vovakirdan/tui-gorillas/internal/storage"
)

var (
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagConfig   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gorillas",
	Short: "Gorillas - the banana-throwing artillery duel",
	Long: `Two gorillas stand on the roofs of a random city skyline and take
turns throwing exploding bananas. Pick an angle and a speed, mind the wind,
and knock out your opponent.

Available commands:
  play     - Play a match on this machine
  serve    - Start SSH server for remote play
  results  - Show saved round results
  config   - Print the effective rules

Examples:
  gorillas play
  gorillas play --p1 Kong --p2 Bonzo --wind gusty
  gorillas play --gui
  gorillas serve --ssh :2222
  gorillas results -i`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Frame rate of the terminal UI")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(configCmd)
}

// loadRules loads, validates and exits on a broken config.
func loadRules() config.GorillasConfig {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// fileLogger logs to ~/.gorillas/gorillas.log; the terminal belongs to the game.
// The returned close func is never nil.
func fileLogger() (*log.Logger, func()) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		level = log.InfoLevel
	}

	dir := config.HomeDir()
	if dir == "" {
		return log.New(os.Stderr), func() {}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return log.New(os.Stderr), func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "gorillas.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return log.New(os.Stderr), func() {}
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           level,
	})
	return logger, func() { f.Close() }
}

// stderrLogger is used by long-running commands without a UI.
func stderrLogger(prefix string) *log.Logger {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
}

// openStore opens the results database, or returns nil with a warning.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open results database, rounds will not be saved", "err", err)
		return nil
	}
	return store
}
