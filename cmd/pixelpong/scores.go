package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pixelpong/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recent match results",
	Long: `Display recent match results and overall win counts.

Examples:
  pixelpong scores
  pixelpong scores --limit 25`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of matches to show")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening match database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	matches, err := store.RecentMatches(flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving matches: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Recent Matches")
	fmt.Println()

	if len(matches) == 0 {
		fmt.Println("No matches recorded yet.")
		fmt.Println()
		fmt.Println("Play 'pixelpong play' to record the first one!")
		return
	}

	columns := []table.Column{
		{Title: "Date", Width: 16},
		{Title: "Score", Width: 7},
		{Title: "Winner", Width: 8},
		{Title: "Mode", Width: 9},
		{Title: "Difficulty", Width: 11},
		{Title: "Length", Width: 6},
	}
	rows := make([]table.Row, 0, len(matches))
	for _, m := range matches {
		rows = append(rows, table.Row{
			m.CreatedAt.Format("2006-01-02 15:04"),
			fmt.Sprintf("%d:%d", m.LeftScore, m.RightScore),
			winnerLabel(m.Winner),
			modeLabel(m.VsAI),
			m.Difficulty,
			strconv.Itoa(m.Duration) + "s",
		})
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)),
	)
	fmt.Println(t.View())

	left, right, draws, err := store.WinCounts()
	if err == nil {
		fmt.Println()
		fmt.Printf("Totals: left %d, right %d, draws %d\n", left, right, draws)
	}
}

func winnerLabel(winner int) string {
	switch winner {
	case 1:
		return "LEFT"
	case 2:
		return "RIGHT"
	default:
		return "DRAW"
	}
}

func modeLabel(vsAI bool) string {
	if vsAI {
		return "VS AI"
	}
	return "VS FRIEND"
}
