// cmd/reelfind/search.go
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/vmunix/reelfind/internal/query"
	"github.com/vmunix/reelfind/internal/render"
	"github.com/vmunix/reelfind/internal/search"
)

var searchCmd = &cobra.Command{
	Use:   "search [flags] <title>...",
	Short: "Search OMDb for movies",
	Long: `Search OMDb for movies and print the results.

Examples:
  reelfind search batman
  reelfind search --year 1989 batman
  reelfind search --pages 3 --verbose "star wars"
  reelfind search --json alien`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearchCmd,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().StringP("year", "y", "", "Release year")
	searchCmd.Flags().IntP("pages", "p", 1, "Number of pages to load")
	searchCmd.Flags().BoolP("verbose", "v", false, "Show poster URLs")
	searchCmd.Flags().Bool("stats", false, "Print cache and request counters")
}

type searchOptions struct {
	Term    string
	Year    string
	Pages   int
	Verbose bool
	JSON    bool
}

// searchOutput is the --json document.
type searchOutput struct {
	Query        string         `json:"query"`
	TotalResults int            `json:"total_results"`
	Movies       []search.Movie `json:"movies"`
	Pages        int            `json:"pages"`
	HasMore      bool           `json:"has_more"`
	Error        string         `json:"error,omitempty"`
}

func runSearchCmd(cmd *cobra.Command, args []string) error {
	year, _ := cmd.Flags().GetString("year")
	pages, _ := cmd.Flags().GetInt("pages")
	verbose, _ := cmd.Flags().GetBool("verbose")
	stats, _ := cmd.Flags().GetBool("stats")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	a := newApp(cfg, newLogger(os.Stderr, cfg.Log.Level))

	opts := searchOptions{
		Term:    strings.Join(args, " "),
		Year:    year,
		Pages:   pages,
		Verbose: verbose,
		JSON:    jsonOutput,
	}
	out := cmd.OutOrStdout()
	if err := runSearch(cmd.Context(), out, a, opts); err != nil {
		return err
	}

	if stats {
		fmt.Fprintln(out)
		return printStats(out, prometheus.DefaultGatherer)
	}
	return nil
}

func runSearch(ctx context.Context, w io.Writer, a *app, opts searchOptions) error {
	key, ok := query.Parse(query.Encode(opts.Term, opts.Year))
	if !ok {
		return errors.New("search term is required")
	}
	ctx = withBackground(ctx)

	a.coord.Activate(key)
	res, err := a.coord.Fetch(ctx, key, search.ModeInitial)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	collected := searchOutput{
		Query:        key.String(),
		TotalResults: res.Set.TotalResults,
		Movies:       res.Set.Items,
		Pages:        res.Page,
		HasMore:      res.HasMore,
		Error:        res.Set.ErrorText,
	}

	var display search.Renderer = nopRenderer{}
	if !opts.JSON {
		display = a.coord.Guarded(render.NewText(w,
			render.WithPlaceholder(a.cfg.Search.PlaceholderPoster),
			render.WithVerbose(opts.Verbose),
		))
	}
	display.DisplayResult(res)

	for collected.Pages < opts.Pages && collected.HasMore {
		more, err := a.coord.Fetch(ctx, key, search.ModeMore)
		if errors.Is(err, search.ErrSuppressed) {
			break
		}
		if err != nil {
			return fmt.Errorf("load more: %w", err)
		}
		display.DisplayMore(more)
		if !more.Set.Successful {
			collected.Error = more.Set.ErrorText
			break
		}
		collected.Movies = append(collected.Movies, more.Set.Items...)
		collected.Pages = more.Page
		collected.HasMore = more.HasMore
	}

	if opts.JSON {
		return printJSON(w, collected)
	}
	return nil
}

type nopRenderer struct{}

func (nopRenderer) DisplayResult(search.Result) {}
func (nopRenderer) DisplayMore(search.Result)   {}

// printStats writes the reelfind_ counters from g, one per line.
func printStats(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}

	var lines []string
	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), "reelfind_") {
			continue
		}
		for _, m := range mf.GetMetric() {
			var labels []string
			for _, lp := range m.GetLabel() {
				labels = append(labels, fmt.Sprintf("%s=%q", lp.GetName(), lp.GetValue()))
			}
			name := mf.GetName()
			if len(labels) > 0 {
				name += "{" + strings.Join(labels, ",") + "}"
			}
			lines = append(lines, fmt.Sprintf("%-60s %g", name, m.GetCounter().GetValue()))
		}
	}
	sort.Strings(lines)

	fmt.Fprintln(w, "Stats:")
	if len(lines) == 0 {
		fmt.Fprintln(w, "  (none)")
		return nil
	}
	for _, l := range lines {
		fmt.Fprintf(w, "  %s\n", l)
	}
	return nil
}
