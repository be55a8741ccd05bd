package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/trex-runner/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default game config",
	Long: `Print the built-in game configuration as YAML.

Save it as ~/.trex/configs/trex.yaml (or pass it with --config) and edit
any value; keys you delete keep their defaults.

Examples:
  trex config > ~/.trex/configs/trex.yaml`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
