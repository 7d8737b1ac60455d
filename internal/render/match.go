package render

import (
	"strings"
	"unicode"

	"github.com/hbollon/go-edlib"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/vmunix/reelfind/internal/search"
)

// Confidence grades how closely a title matches the search term.
type Confidence int

const (
	ConfidenceNone   Confidence = iota // Score < 0.70
	ConfidenceLow                      // Score >= 0.70
	ConfidenceMedium                   // Score >= 0.85
	ConfidenceHigh                     // Score >= 0.95
)

func (c Confidence) String() string {
	switch c {
	case ConfidenceHigh:
		return "high"
	case ConfidenceMedium:
		return "medium"
	case ConfidenceLow:
		return "low"
	default:
		return "none"
	}
}

// Match is the movie whose title best matches a search term.
type Match struct {
	Index      int // position in the slice passed to BestMatch, -1 for no match
	Score      float64
	Confidence Confidence
}

// Highlighted reports whether the match is strong enough to mark in output.
func (m Match) Highlighted() bool {
	return m.Index >= 0 && m.Confidence >= ConfidenceMedium
}

// BestMatch finds the movie whose title is closest to term using
// Jaro-Winkler similarity, which favors shared prefixes.
// Ties keep the earlier movie, so OMDb's ordering wins.
func BestMatch(term string, movies []search.Movie) Match {
	best := Match{Index: -1}
	want := CleanTitle(term)
	if want == "" {
		return best
	}

	for i, m := range movies {
		score := float64(edlib.JaroWinklerSimilarity(want, CleanTitle(m.Title)))
		if score > best.Score {
			best.Index = i
			best.Score = score
		}
	}

	switch {
	case best.Score >= 0.95:
		best.Confidence = ConfidenceHigh
	case best.Score >= 0.85:
		best.Confidence = ConfidenceMedium
	case best.Score >= 0.70:
		best.Confidence = ConfidenceLow
	default:
		best.Index = -1
	}
	return best
}

// CleanTitle folds a title for comparison: lower case, no accents, no
// leading article, punctuation dropped, whitespace collapsed.
func CleanTitle(title string) string {
	s := removeAccents(strings.ToLower(title))
	s = strings.ReplaceAll(s, "&", " and ")
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "'", "")

	// "Léon: The Professional" compares as "leon professional".
	parts := strings.Split(s, ":")
	for i, part := range parts {
		parts[i] = stripLeadingArticle(strings.TrimSpace(part))
	}
	s = strings.Join(parts, " ")

	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func removeAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)
	return result
}

func stripLeadingArticle(s string) string {
	for _, art := range []string{"the ", "a ", "an "} {
		if strings.HasPrefix(s, art) {
			return strings.TrimPrefix(s, art)
		}
	}
	return s
}
