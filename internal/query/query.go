// Package query derives canonical search keys from address-bar style query strings.
package query

import (
	"net/url"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Parameter names understood by the search API.
const (
	ParamTerm = "s"
	ParamYear = "y"
)

// Key identifies one logical search, independent of page.
type Key struct {
	Term string
	Year string
}

// Normalize extracts the trimmed search term and optional year.
// It returns false when the term is empty, meaning there is nothing to search.
func Normalize(v url.Values) (Key, bool) {
	term := trimmed(v, ParamTerm)
	if term == "" {
		return Key{}, false
	}
	return Key{Term: term, Year: trimmed(v, ParamYear)}, true
}

// Parse normalizes a raw query string such as "?s=batman&y=1989".
// Malformed pairs are skipped rather than rejected.
func Parse(raw string) (Key, bool) {
	raw = strings.TrimPrefix(raw, "?")
	// ParseQuery keeps every pair it could decode alongside the first error.
	v, _ := url.ParseQuery(raw)
	return Normalize(v)
}

// Encode serializes form input into a location. Both fields are always
// present, as a submitted form would send them.
func Encode(term, year string) string {
	v := url.Values{}
	v.Set(ParamTerm, term)
	v.Set(ParamYear, year)
	return v.Encode()
}

// Values returns the canonical parameter set for the key.
func (k Key) Values() url.Values {
	v := url.Values{}
	if k.Term != "" {
		v.Set(ParamTerm, k.Term)
	}
	if k.Year != "" {
		v.Set(ParamYear, k.Year)
	}
	return v
}

// String returns the canonical encoding, e.g. "s=batman&y=1989".
func (k Key) String() string {
	return k.Values().Encode()
}

// IsZero reports whether k is the empty key.
func (k Key) IsZero() bool {
	return k == Key{}
}

func trimmed(v url.Values, name string) string {
	if !v.Has(name) {
		return ""
	}
	return norm.NFC.String(strings.TrimSpace(v.Get(name)))
}
