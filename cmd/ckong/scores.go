package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nybblesio/ckong/internal/platform/tui"
	"github.com/nybblesio/ckong/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresPlayer string
	flagScoresClear  bool
	flagScoresTable  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the score history",
	Long: `Display the best finished games from the score history, followed by
the machine's high-score table.

Examples:
  ckong scores
  ckong scores --limit 25
  ckong scores --player ABC
  ckong scores --table
  ckong scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of games to show")
	scoresCmd.Flags().StringVar(&flagScoresPlayer, "player", "", "Only show games by these initials")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the score history")
	scoresCmd.Flags().BoolVar(&flagScoresTable, "table", false, "Browse the history in an interactive table")
}

func runScores(cmd *cobra.Command, args []string) error {
	a, err := setup("")
	if err != nil {
		return err
	}
	defer a.close()

	// Open score storage
	store, err := storage.Open(a.paths.Scores)
	if err != nil {
		return fmt.Errorf("cannot open scores database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(); err != nil {
			return err
		}
		fmt.Println("Score history cleared.")
		return nil
	}

	mach := a.loadMachine()
	if flagScoresTable {
		width, height := terminalSize()
		_, err := tui.RunScoreboard(store, mach, width, height)
		return err
	}

	var scores []storage.ScoreEntry
	if flagScoresPlayer != "" {
		scores, err = store.PlayerScores(flagScoresPlayer)
		if len(scores) > flagScoresLimit {
			scores = scores[:flagScoresLimit]
		}
	} else {
		scores, err = store.TopScores(flagScoresLimit)
	}
	if err != nil {
		return fmt.Errorf("cannot retrieve scores: %w", err)
	}

	fmt.Println("Score history")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Run 'ckong play' to set the first high score!")
	} else {
		// Print header
		fmt.Printf("  %-4s  %-4s  %-8s  %-5s  %-5s  %s\n", "Rank", "Name", "Score", "Level", "Stage", "Date")
		fmt.Printf("  %-4s  %-4s  %-8s  %-5s  %-5s  %s\n", "----", "----", "-----", "-----", "-----", "----")

		for i, entry := range scores {
			dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
			fmt.Printf("  %-4d  %-4s  %08d  %-5d  %-5d  %s\n", i+1, entry.Initials, entry.Score, entry.Level, entry.Stage, dateStr)
		}
	}

	if stats, err := store.GetStats(); err == nil && stats.GamesCount > 0 {
		fmt.Println()
		fmt.Printf("Games played: %d  Average: %.0f  Best level: %d\n", stats.GamesCount, stats.AvgScore, stats.BestLevel)
	}

	fmt.Println()
	fmt.Println("Machine table")
	for i, s := range mach.Table {
		fmt.Printf("  %d  %s  %06d\n", i+1, s.Initials(), s.Score)
	}
	return nil
}
