package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-gorillas/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective rules as YAML",
	Long: `Load the rules the way 'play' does and print them.

Rules are looked up in order: --config, ~/.gorillas/configs/gorillas.yaml,
./configs/gorillas.yaml, then the built-in defaults. Save the output to one
of those paths to customise the game.

Examples:
  gorillas config > ~/.gorillas/configs/gorillas.yaml
  gorillas config --config ./my-rules.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom rules YAML")
}

func runConfig(cmd *cobra.Command, args []string) {
	cfg := loadRules()
	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
