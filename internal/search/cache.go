// internal/search/cache.go
package search

import (
	"slices"
	"sync"

	"github.com/vmunix/reelfind/internal/query"
)

// Cache holds the accumulated result set of every search seen in this
// process. Entries are never evicted.
//
// Entries are replaced wholesale on every update, so a ResultSet returned by
// Get is never modified afterwards.
type Cache struct {
	mu      sync.RWMutex
	entries map[query.Key]ResultSet
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{
		entries: make(map[query.Key]ResultSet),
	}
}

// Get returns the cached result set for key.
func (c *Cache) Get(key query.Key) (ResultSet, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	rs, ok := c.entries[key]
	return rs, ok
}

// Put inserts or replaces the entry for key.
func (c *Cache) Put(key query.Key, rs ResultSet) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if rs.Successful && len(rs.Items) > rs.TotalResults {
		rs.Items = rs.Items[:rs.TotalResults]
	}
	rs.Items = slices.Clip(rs.Items)
	c.entries[key] = rs
}

// AppendPage appends a fetched page to an existing entry.
//
// Nothing is appended when there is no entry for key, when the page reports
// a failure, or when the entry already holds TotalResults items. Items past
// TotalResults are dropped. The returned ResultSet is the entry after the
// call; the bool reports whether any item was appended.
func (c *Cache) AppendPage(key query.Key, page ResultSet) (ResultSet, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	rs, ok := c.entries[key]
	if !ok || !page.Successful || !rs.Successful || rs.Complete() {
		return rs, false
	}

	items := page.Items
	if room := rs.TotalResults - len(rs.Items); len(items) > room {
		items = items[:room]
	}
	if len(items) == 0 {
		return rs, false
	}

	// A fresh backing array keeps previously returned slices immutable.
	rs.Items = slices.Concat(rs.Items, items)
	c.entries[key] = rs
	return rs, true
}

// Len returns the number of cached searches.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}
