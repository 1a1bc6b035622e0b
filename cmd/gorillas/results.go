package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-gorillas/internal/platform/tui"
	"github.com/vovakirdan/tui-gorillas/internal/storage"
)

var (
	flagLimit       int
	flagInteractive bool
	flagClear       bool
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Show saved round results",
	Long: `List the most recent rounds and every player's win/loss record.

Examples:
  gorillas results
  gorillas results --limit 50
  gorillas results -i
  gorillas results --clear`,
	Args: cobra.NoArgs,
	Run:  runResults,
}

func init() {
	resultsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of recent rounds to list")
	resultsCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse results in a full-screen table")
	resultsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all saved rounds")
}

func runResults(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagClear:
		n, err := store.ClearRounds()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Deleted %d rounds.\n", n)

	case flagInteractive:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

	default:
		if err := printResults(os.Stdout, store, flagLimit); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}

// resultsStore is the read side of the results database.
type resultsStore interface {
	RecentRounds(limit int) ([]storage.Round, error)
	Tallies() ([]storage.Tally, error)
	CountRounds() (int, error)
}

func printResults(w io.Writer, store resultsStore, limit int) error {
	total, err := store.CountRounds()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Gorillas - %d rounds played\n\n", total)

	if total == 0 {
		fmt.Fprintln(w, "No rounds recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Run 'gorillas play' and hit your opponent!")
		return nil
	}

	rounds, err := store.RecentRounds(limit)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "  %-16s  %-14s  %-14s  %6s  %5s  %s\n", "Date", "Winner", "Loser", "Throws", "Wind", "Via")
	fmt.Fprintf(w, "  %-16s  %-14s  %-14s  %6s  %5s  %s\n", "----", "------", "-----", "------", "----", "---")
	for _, r := range rounds {
		fmt.Fprintf(w, "  %-16s  %-14s  %-14s  %6d  %+5d  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.Winner, r.Loser, r.Throws, r.Wind, r.Source)
	}

	tallies, err := store.Tallies()
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %-14s  %4s  %6s\n", "Player", "Wins", "Losses")
	for _, t := range tallies {
		fmt.Fprintf(w, "  %-14s  %4d  %6d\n", t.Name, t.Wins, t.Losses)
	}
	return nil
}
