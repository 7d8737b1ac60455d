// Package omdb provides a client for the OMDb search API.
package omdb

import (
	"fmt"
	"strconv"
)

// SearchParams specifies one page of an OMDb title search.
type SearchParams struct {
	Term string // s
	Year string // y, optional
	Page int    // page, omitted when < 2
}

// SearchResponse is the raw body of an OMDb search call.
type SearchResponse struct {
	Response     string `json:"Response"` // "True" or "False"
	Search       []Item `json:"Search,omitempty"`
	TotalResults string `json:"totalResults,omitempty"` // e.g., "23"
	Error        string `json:"Error,omitempty"`
}

// Item is one movie, series or episode in a search page.
type Item struct {
	Title  string `json:"Title"`
	Year   string `json:"Year"`
	IMDBID string `json:"imdbID"` // e.g., "tt0372784"
	Type   string `json:"Type"`   // movie, series, episode
	Poster string `json:"Poster"` // URL or "N/A"
}

// OK reports whether OMDb answered the search successfully.
func (r *SearchResponse) OK() bool {
	return r.Response == "True"
}

// Total parses the string-encoded totalResults field.
// A failed response has no total and yields 0.
func (r *SearchResponse) Total() (int, error) {
	if !r.OK() {
		return 0, nil
	}
	n, err := strconv.Atoi(r.TotalResults)
	if err != nil {
		return 0, fmt.Errorf("%w: totalResults %q", ErrMalformedResponse, r.TotalResults)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: negative totalResults %d", ErrMalformedResponse, n)
	}
	return n, nil
}
