package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/safezone/internal/games/safezone"
	"github.com/vovakirdan/safezone/internal/platform/tui"
	"github.com/vovakirdan/safezone/internal/registry"
	"github.com/vovakirdan/safezone/internal/storage"
)

var (
	flagHistoryPlain bool
	flagHistoryClear bool
	flagHistoryLimit int
)

var historyCmd = &cobra.Command{
	Use:   "history [game]",
	Short: "Show the round journal",
	Long: `Display recently finished rounds and per-game totals.

On a terminal this opens an interactive browser; use --plain to print
a table instead (the default when output is piped).

Examples:
  safezone history
  safezone history safezone-classic --plain
  safezone history safezone --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&flagHistoryPlain, "plain", false, "Print a plain table instead of the interactive view")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete the journal of the given game")
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Rounds to print in plain mode")
}

func runHistory(cmd *cobra.Command, args []string) {
	gameID := safezone.ID
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'safezone list' to see available variants.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening round journal: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagHistoryClear {
		if err := store.ClearRounds(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		fmt.Printf("Cleared the journal of %s.\n", gameID)
		return
	}

	fd := int(os.Stdout.Fd())
	if !flagHistoryPlain && term.IsTerminal(fd) {
		width, height, sizeErr := term.GetSize(fd)
		if sizeErr != nil {
			width, height = 80, 24
		}
		if err := tui.RunHistory(store, gameID, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	printHistory(store, gameID)
}

func printHistory(store *storage.Store, gameID string) {
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		return
	}

	rounds, err := store.RecentRounds(gameID, flagHistoryLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving rounds: %v\n", err)
		return
	}

	fmt.Printf("Round History - %s\n", game.Title())
	fmt.Println()

	if len(rounds) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'safezone play %s' to start one!\n", gameID)
		return
	}

	fmt.Printf("  %-16s  %-12s  %-7s  %-5s  %s\n", "Date", "Player", "Outcome", "Lives", "Survived")
	fmt.Printf("  %-16s  %-12s  %-7s  %-5s  %s\n", "----", "------", "-------", "-----", "--------")
	for _, r := range rounds {
		fmt.Printf("  %-16s  %-12s  %-7s  %-5d  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.Session, r.Outcome, r.LivesLeft,
			safezone.FormatTime(r.Survived))
	}

	if sum, err := store.Summarize(gameID); err == nil {
		fmt.Println()
		fmt.Printf("Rounds: %d  Won: %d  Died: %d\n", sum.Rounds, sum.Wins, sum.Deaths)
	}
}
