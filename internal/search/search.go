// Package search coordinates fetching, caching and paginating movie searches.
package search

import (
	"context"
	"strings"

	"github.com/vmunix/reelfind/internal/query"
	"github.com/vmunix/reelfind/pkg/omdb"
)

//go:generate mockgen -source=search.go -destination=mocks/mock_search.go -package=mocks

// DefaultPageSize is the number of items OMDb returns per page.
const DefaultPageSize = 10

// Mode distinguishes a first-page search from a "load more" request.
type Mode int

const (
	ModeInitial Mode = iota
	ModeMore
)

func (m Mode) String() string {
	switch m {
	case ModeInitial:
		return "initial"
	case ModeMore:
		return "more"
	default:
		return "unknown"
	}
}

// Movie is one search hit.
type Movie struct {
	ID        string `json:"id"` // IMDb ID, e.g. "tt0372784"
	Title     string `json:"title"`
	Year      string `json:"year"`
	Type      string `json:"type"`
	PosterURL string `json:"poster_url,omitempty"` // empty when OMDb has no poster
}

// ResultSet is the accumulated result of a logical search, or a failure.
type ResultSet struct {
	Items        []Movie `json:"items"`
	TotalResults int     `json:"total_results"`
	Successful   bool    `json:"successful"`
	ErrorText    string  `json:"error,omitempty"`
}

// Complete reports whether every available item is held.
func (rs ResultSet) Complete() bool {
	return len(rs.Items) >= rs.TotalResults
}

// Result is what a fetch resolves to.
//
// For ModeInitial, Set is the whole accumulated result set and Page the
// number of pages it holds. For ModeMore, Set holds only the newly fetched
// page and Page is that page's number.
type Result struct {
	Key     query.Key `json:"-"`
	Mode    Mode      `json:"-"`
	Page    int       `json:"page"`
	Set     ResultSet `json:"result"`
	HasMore bool      `json:"has_more"`
	Cached  bool      `json:"cached"`
}

// API issues search requests against the metadata service.
type API interface {
	Search(ctx context.Context, p omdb.SearchParams) (*omdb.SearchResponse, error)
}

// Renderer displays results for the query context carried in Result.Key.
// Implementations must tolerate repeated identical calls.
type Renderer interface {
	DisplayResult(res Result)
	DisplayMore(res Result)
}

func movieFromItem(it omdb.Item) Movie {
	m := Movie{
		ID:    it.IMDBID,
		Title: it.Title,
		Year:  it.Year,
		Type:  it.Type,
	}
	if strings.HasPrefix(it.Poster, "http") {
		m.PosterURL = it.Poster
	}
	return m
}

// resultSetFromResponse converts a decoded OMDb body. A totalResults value
// that cannot be parsed is reported as an error and treated as a transport
// failure by the caller.
func resultSetFromResponse(resp *omdb.SearchResponse) (ResultSet, error) {
	if resp == nil {
		return ResultSet{}, omdb.ErrMalformedResponse
	}
	if !resp.OK() {
		return ResultSet{ErrorText: resp.Error}, nil
	}
	total, err := resp.Total()
	if err != nil {
		return ResultSet{}, err
	}
	items := make([]Movie, 0, len(resp.Search))
	for _, it := range resp.Search {
		items = append(items, movieFromItem(it))
	}
	return ResultSet{
		Items:        items,
		TotalResults: total,
		Successful:   true,
	}, nil
}
