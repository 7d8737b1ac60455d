// Package render formats search results for terminals.
package render

import (
	"fmt"
	"io"
	"sync"

	"github.com/vmunix/reelfind/internal/query"
	"github.com/vmunix/reelfind/internal/search"
)

// DefaultPlaceholder stands in for a missing poster.
const DefaultPlaceholder = "(no poster)"

const titleWidth = 42

// Header returns the result count line, e.g. "23 movies found".
func Header(total int) string {
	if total == 1 {
		return "1 movie found"
	}
	return fmt.Sprintf("%d movies found", total)
}

// IMDbURL returns the IMDb page for an IMDb ID.
func IMDbURL(id string) string {
	return "https://www.imdb.com/title/" + id + "/"
}

// Poster returns the poster URL of m, or placeholder when it has none.
func Poster(m search.Movie, placeholder string) string {
	if m.PosterURL == "" {
		return placeholder
	}
	return m.PosterURL
}

// Truncate shortens s to at most width runes, ending in "..." when cut.
func Truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 3 {
		return string(r[:width])
	}
	return string(r[:width-3]) + "..."
}

// Text writes results as a table. It is safe for concurrent use and
// ignores repeated deliveries of a result it already wrote.
type Text struct {
	mu          sync.Mutex
	w           io.Writer
	placeholder string
	verbose     bool

	shown   bool
	key     query.Key
	page    int    // last page written for key
	rows    int    // rows written for key
	errText string // error written in place of results
	errPage int    // page whose load-more error was written
}

// TextOption configures a Text renderer.
type TextOption func(*Text)

// WithPlaceholder sets the text shown for movies without a poster.
func WithPlaceholder(p string) TextOption {
	return func(t *Text) {
		if p != "" {
			t.placeholder = p
		}
	}
}

// WithVerbose adds poster and IMDb lines under each row.
func WithVerbose(v bool) TextOption {
	return func(t *Text) { t.verbose = v }
}

// NewText creates a renderer writing to w.
func NewText(w io.Writer, opts ...TextOption) *Text {
	t := &Text{w: w, placeholder: DefaultPlaceholder}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// DisplayResult writes the first pages of a search, replacing whatever was
// shown for the previous query.
func (t *Text) DisplayResult(res search.Result) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.shown && res.Key == t.key && res.Page == t.page && res.Set.ErrorText == t.errText {
		return
	}
	t.shown = true
	t.key = res.Key
	t.page = res.Page
	t.rows = 0
	t.errPage = 0
	t.errText = res.Set.ErrorText

	if !res.Set.Successful {
		fmt.Fprintln(t.w, res.Set.ErrorText)
		return
	}

	fmt.Fprintf(t.w, "%s\n\n", Header(res.Set.TotalResults))
	fmt.Fprintf(t.w, "  # │ %-*s │ %4s │ %-7s │ %s\n", titleWidth, "TITLE", "YEAR", "TYPE", "IMDB")
	fmt.Fprintln(t.w, "────┼────────────────────────────────────────────┼──────┼─────────┼──────────────────────────────────────")

	match := BestMatch(res.Key.Term, res.Set.Items)
	for i, m := range res.Set.Items {
		t.writeRow(m, match.Highlighted() && match.Index == i)
	}
	t.writeHint(res)
}

// DisplayMore writes a further page below the rows already shown. A failed
// page writes its error once; earlier rows stay as they are.
func (t *Text) DisplayMore(res search.Result) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.shown || res.Key != t.key || res.Page <= t.page {
		return
	}

	if !res.Set.Successful {
		if t.errPage == res.Page {
			return
		}
		t.errPage = res.Page
		fmt.Fprintf(t.w, "    │ %s\n", res.Set.ErrorText)
		return
	}

	t.page = res.Page
	t.errPage = 0
	for _, m := range res.Set.Items {
		t.writeRow(m, false)
	}
	t.writeHint(res)
}

func (t *Text) writeRow(m search.Movie, best bool) {
	t.rows++
	marker := " "
	if best {
		marker = "*"
	}
	fmt.Fprintf(t.w, "%s%2d │ %-*s │ %4s │ %-7s │ %s\n",
		marker, t.rows, titleWidth, Truncate(m.Title, titleWidth), m.Year, m.Type, IMDbURL(m.ID))
	if t.verbose {
		fmt.Fprintf(t.w, "    │ Poster: %s\n", Poster(m, t.placeholder))
	}
}

func (t *Text) writeHint(res search.Result) {
	if res.HasMore {
		fmt.Fprintf(t.w, "\nShowing %d of %d. More results available.\n", t.rows, res.Set.TotalResults)
	}
}
