package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tankduel/internal/core"
	"tankduel/internal/match"
	"tankduel/internal/storage"
)

var flagHistoryLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent match results",
	Long: `Display recent duels together with the overall win tally.

Examples:
  tankduel history
  tankduel history --limit 50`,
	Run: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "Number of matches to show")
}

func runHistory(cmd *cobra.Command, args []string) {
	// Open match storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening match database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	entries, err := store.RecentMatches(flagHistoryLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving matches: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Match History - Tank Duel")
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No matches recorded yet.")
		fmt.Println()
		fmt.Println("Play 'tankduel play' to record the first duel!")
		return
	}

	// Print header
	fmt.Printf("  %-16s  %-8s  %-10s  %-5s  %-7s  %s\n", "When", "Arena", "Winner", "HP", "Shots", "Ticks")
	fmt.Printf("  %-16s  %-8s  %-10s  %-5s  %-7s  %s\n", "----", "-----", "------", "--", "-----", "-----")

	// Print matches, newest first
	for _, e := range entries {
		winner := e.Winner.String()
		if e.Reason == match.ReasonQuit || e.Winner == core.PlayerNone {
			winner = "aborted"
		}
		hp := fmt.Sprintf("%d-%d", e.Health1, e.Health2)
		shots := fmt.Sprintf("%d/%d", e.Shots1, e.Shots2)
		fmt.Printf("  %-16s  %-8s  %-10s  %-5s  %-7s  %d\n",
			e.CreatedAt.Format("2006-01-02 15:04"), e.Arena, winner, hp, shots, e.DurationTicks)
	}

	// Show the running tally
	stats, err := store.WinCounts()
	if err == nil && stats.Total > 0 {
		fmt.Println()
		fmt.Printf("Totals: Player 1 %d wins, Player 2 %d wins", stats.Player1, stats.Player2)
		if stats.Aborted > 0 {
			fmt.Printf(", %d aborted", stats.Aborted)
		}
		fmt.Println()
	}
}
