package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/trex-runner/internal/config"
	"github.com/vovakirdan/trex-runner/internal/core"
	"github.com/vovakirdan/trex-runner/internal/platform/tui"
	"github.com/vovakirdan/trex-runner/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start the runner in this terminal.

Controls:
  Space/Up/W/Enter - Jump (also starts a run)
  P/Esc            - Pause / resume
  R                - Restart after game over
  Ctrl+S           - Save a screenshot to ~/.trex/screenshots
  Q/Ctrl+C         - Quit

Tuning is read from --config, ~/.trex/configs/trex.yaml or ./configs/trex.yaml,
falling back to the built-in defaults.

Examples:
  trex play
  trex play --seed 7
  trex play --config ./fast.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runPlay(_ *cobra.Command, _ []string) error {
	gameCfg, err := config.LoadTrex(flagConfig)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	opts := tui.Options{
		Game: gameCfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Logger: logger,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		// Continue without storage - game still works
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("playing without persistence", "err", err)
	} else {
		slot := storage.NewHighScoreSlot(store, storage.DefaultSlot, logger)
		defer store.Close()
		defer slot.Close() // Flush before the store closes
		opts.HighScores = slot
		opts.Runs = store
	}

	if err := tui.Run(opts); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
