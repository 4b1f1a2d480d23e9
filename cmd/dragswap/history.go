package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dragswap/internal/storage"
)

var (
	flagHistorySession string
	flagHistoryLimit   int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded swaps",
	Long: `Display the most recent swaps recorded in the history database,
newest first.

Examples:
  dragswap history
  dragswap history --limit 5
  dragswap history --session local-1700000000000000000`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().StringVar(&flagHistorySession, "session", "", "Only show swaps of this session")
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "Number of swaps to show")
}

func runHistory(_ *cobra.Command, _ []string) error {
	if flagDBPath == "" {
		return errors.New("history is disabled: --db is empty")
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening history database: %w", err)
	}
	defer store.Close()

	var swaps []storage.SwapEntry
	if flagHistorySession != "" {
		swaps, err = store.SessionSwaps(flagHistorySession, flagHistoryLimit)
	} else {
		swaps, err = store.RecentSwaps(flagHistoryLimit)
	}
	if err != nil {
		return fmt.Errorf("error retrieving swaps: %w", err)
	}

	fmt.Println("Swap History")
	fmt.Println()

	if len(swaps) == 0 {
		fmt.Println("No swaps recorded yet.")
		fmt.Println()
		fmt.Println("Run 'dragswap play' and drag a tile onto another!")
		return nil
	}

	// Print header
	fmt.Printf("  %-16s  %-6s  %-36s  %s\n", "Date", "Swap", "Session", "Order after")
	fmt.Printf("  %-16s  %-6s  %-36s  %s\n", "----", "----", "-------", "-----------")

	for _, e := range swaps {
		fmt.Printf("  %-16s  %d <> %d  %-36s  %s\n",
			e.CreatedAt.Format("2006-01-02 15:04"),
			e.Source+1, e.Target+1,
			e.SessionID,
			strings.Join(e.Order, ", "),
		)
	}

	stats, err := store.Stats()
	if err == nil {
		fmt.Println()
		fmt.Printf("Total: %d swaps in %d sessions\n", stats.TotalSwaps, stats.Sessions)
	}
	return nil
}
