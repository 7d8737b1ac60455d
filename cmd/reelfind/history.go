// cmd/reelfind/history.go
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vmunix/reelfind/internal/history"
	"github.com/vmunix/reelfind/internal/query"
	"github.com/vmunix/reelfind/internal/render"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show earlier searches",
	Long:  "Lists the searches recorded by 'reelfind browse', marking the one that will be restored.",
	Args:  cobra.NoArgs,
	RunE:  runHistoryCmd,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().Bool("clear", false, "Delete all history")
}

// historyEntry is the --json form of a history entry.
type historyEntry struct {
	Position  int    `json:"position"`
	Location  string `json:"location"`
	Term      string `json:"term"`
	Year      string `json:"year,omitempty"`
	VisitedAt string `json:"visited_at"`
	Current   bool   `json:"current"`
}

func runHistoryCmd(cmd *cobra.Command, args []string) error {
	clearAll, _ := cmd.Flags().GetBool("clear")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	a := newApp(cfg, newLogger(os.Stderr, cfg.Log.Level))

	ctx := withBackground(cmd.Context())
	hist, err := a.openHistory(ctx)
	if err != nil {
		return err
	}
	defer hist.Close()

	out := cmd.OutOrStdout()
	if clearAll {
		if err := hist.Clear(ctx); err != nil {
			return fmt.Errorf("clear history: %w", err)
		}
		fmt.Fprintln(out, "History cleared")
		return nil
	}

	entries, cursor := hist.Entries()
	if jsonOutput {
		return printJSON(out, historyJSON(entries, cursor))
	}
	printHistoryHuman(out, entries, cursor)
	return nil
}

func historyJSON(entries []history.Entry, cursor int) []historyEntry {
	out := make([]historyEntry, 0, len(entries))
	for i, e := range entries {
		key, _ := query.Parse(e.Location)
		out = append(out, historyEntry{
			Position:  e.Position,
			Location:  e.Location,
			Term:      key.Term,
			Year:      key.Year,
			VisitedAt: e.VisitedAt.UTC().Format("2006-01-02T15:04:05Z"),
			Current:   i == cursor,
		})
	}
	return out
}

func printHistoryHuman(w io.Writer, entries []history.Entry, cursor int) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No history")
		return
	}

	fmt.Fprintf(w, "    # │ %-40s │ %4s │ %s\n", "TITLE", "YEAR", "VISITED")
	fmt.Fprintln(w, "──────┼──────────────────────────────────────────┼──────┼──────────────────")
	for i, e := range entries {
		marker := " "
		if i == cursor {
			marker = ">"
		}
		title := "(empty)"
		key, ok := query.Parse(e.Location)
		if ok {
			title = key.Term
		}
		fmt.Fprintf(w, "%s %3d │ %-40s │ %4s │ %s\n",
			marker, i+1, render.Truncate(title, 40), key.Year, e.VisitedAt.Local().Format("2006-01-02 15:04"))
	}
}
