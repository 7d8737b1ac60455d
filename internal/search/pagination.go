// internal/search/pagination.go
package search

import "github.com/vmunix/reelfind/internal/query"

// Paginator answers "load more" questions from cache state.
//
// Page numbers are derived from the number of cached items, which assumes
// the API returns full pages until the last one.
type Paginator struct {
	cache    *Cache
	pageSize int
}

// NewPaginator creates a paginator over cache. A non-positive pageSize
// selects DefaultPageSize.
func NewPaginator(cache *Cache, pageSize int) *Paginator {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Paginator{cache: cache, pageSize: pageSize}
}

// PageSize returns the configured page size.
func (p *Paginator) PageSize() int {
	return p.pageSize
}

// CanLoadMore reports whether a successful entry exists for key and holds
// fewer items than the API reported in total.
func (p *Paginator) CanLoadMore(key query.Key) bool {
	rs, ok := p.cache.Get(key)
	return ok && rs.Successful && !rs.Complete()
}

// NextPage returns the 1-based page to request next for key.
func (p *Paginator) NextPage(key query.Key) (int, bool) {
	rs, ok := p.cache.Get(key)
	if !ok || !rs.Successful || rs.Complete() {
		return 0, false
	}
	return len(rs.Items)/p.pageSize + 1, true
}

// PagesHeld returns how many pages n items span, at least 1.
func (p *Paginator) PagesHeld(n int) int {
	pages := (n + p.pageSize - 1) / p.pageSize
	return max(pages, 1)
}
