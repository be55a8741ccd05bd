package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/trex-runner/internal/games/trex"
	"github.com/vovakirdan/trex-runner/internal/platform/tui"
	"github.com/vovakirdan/trex-runner/internal/storage"
)

var (
	flagLimit int
	flagClear bool
	flagPlain bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the best recorded runs and the stored high score.

On a terminal this opens a scrollable table; when piped it prints text.

Examples:
  trex scores
  trex scores --limit 20
  trex scores --plain
  trex scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to print in plain mode")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the run history and the high score")
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print text even on a terminal")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			return err
		}
		if err := store.ClearSlot(storage.DefaultSlot); err != nil {
			return err
		}
		logger.Info("scores cleared", "db", flagDBPath)
		fmt.Println("Scores cleared.")
		return nil
	}

	if !flagPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		width, height, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil {
			width, height = 80, 24
		}
		return tui.RunScoreboard(store, width, height)
	}

	return printScores(store)
}

// printScores writes the top runs as plain text.
func printScores(store *storage.Store) error {
	runs, err := store.TopRuns(flagLimit)
	if err != nil {
		return fmt.Errorf("error retrieving scores: %w", err)
	}

	fmt.Println("High Scores - T-Rex Runner")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'trex play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-8s  %s\n", "Rank", "Score", "Distance", "Date")
	fmt.Printf("  %-4s  %-6s  %-8s  %s\n", "----", "-----", "--------", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-6s  %-8.0f  %s\n", i+1, trex.FormatScore(r.Score), r.Distance, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	bestRun, err := store.BestRun()
	if err != nil {
		return fmt.Errorf("error retrieving best run: %w", err)
	}
	fmt.Printf("Best run: %s\n", trex.FormatScore(bestRun))
	if best, _, err := store.ReadSlot(storage.DefaultSlot); err == nil {
		fmt.Printf("Best: %s\n", trex.FormatScore(best))
	}
	return nil
}
