package search

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/reelfind/internal/query"
)

func movies(from, n int) []Movie {
	out := make([]Movie, 0, n)
	for i := from; i < from+n; i++ {
		out = append(out, Movie{ID: fmt.Sprintf("tt%07d", i), Title: fmt.Sprintf("Movie %d", i)})
	}
	return out
}

func TestCache_GetPut(t *testing.T) {
	c := NewCache()
	key := query.Key{Term: "batman"}

	_, ok := c.Get(key)
	assert.False(t, ok, "empty cache should miss")

	c.Put(key, ResultSet{Items: movies(0, 10), TotalResults: 23, Successful: true})

	got, ok := c.Get(key)
	require.True(t, ok)
	assert.Len(t, got.Items, 10)
	assert.Equal(t, 23, got.TotalResults)

	_, ok = c.Get(query.Key{Term: "batman", Year: "1989"})
	assert.False(t, ok, "year is part of the key")

	c.Put(key, ResultSet{Items: movies(100, 2), TotalResults: 2, Successful: true})
	got, _ = c.Get(key)
	assert.Len(t, got.Items, 2, "put replaces wholesale")
	assert.Equal(t, 1, c.Len())
}

func TestCache_AppendPage(t *testing.T) {
	c := NewCache()
	key := query.Key{Term: "batman"}
	c.Put(key, ResultSet{Items: movies(0, 10), TotalResults: 23, Successful: true})

	rs, ok := c.AppendPage(key, ResultSet{Items: movies(10, 10), TotalResults: 23, Successful: true})
	require.True(t, ok)
	assert.Len(t, rs.Items, 20)
	assert.Equal(t, "tt0000010", rs.Items[10].ID, "pages keep arrival order")

	rs, ok = c.AppendPage(key, ResultSet{Items: movies(20, 3), TotalResults: 23, Successful: true})
	require.True(t, ok)
	assert.Len(t, rs.Items, 23)
	assert.True(t, rs.Complete())
}

func TestCache_AppendPage_NoEntry(t *testing.T) {
	c := NewCache()

	_, ok := c.AppendPage(query.Key{Term: "ghost"}, ResultSet{Items: movies(0, 10), Successful: true})
	assert.False(t, ok)
	assert.Zero(t, c.Len(), "append must not create entries")
}

func TestCache_AppendPage_FailureSkipped(t *testing.T) {
	c := NewCache()
	key := query.Key{Term: "batman"}
	c.Put(key, ResultSet{Items: movies(0, 10), TotalResults: 23, Successful: true})

	rs, ok := c.AppendPage(key, ResultSet{ErrorText: "Too many results."})
	assert.False(t, ok)
	assert.Len(t, rs.Items, 10)
}

func TestCache_AppendPage_FullIsNoop(t *testing.T) {
	c := NewCache()
	key := query.Key{Term: "cat"}
	c.Put(key, ResultSet{Items: movies(0, 3), TotalResults: 3, Successful: true})

	rs, ok := c.AppendPage(key, ResultSet{Items: movies(3, 10), TotalResults: 3, Successful: true})
	assert.False(t, ok)
	assert.Len(t, rs.Items, 3)
}

func TestCache_AppendPage_TruncatesOverflow(t *testing.T) {
	c := NewCache()
	key := query.Key{Term: "cat"}
	c.Put(key, ResultSet{Items: movies(0, 10), TotalResults: 12, Successful: true})

	rs, ok := c.AppendPage(key, ResultSet{Items: movies(10, 10), TotalResults: 12, Successful: true})
	require.True(t, ok)
	assert.Len(t, rs.Items, 12, "items never exceed totalResults")
}

func TestCache_Put_TruncatesOverflow(t *testing.T) {
	c := NewCache()
	key := query.Key{Term: "cat"}
	c.Put(key, ResultSet{Items: movies(0, 10), TotalResults: 4, Successful: true})

	got, _ := c.Get(key)
	assert.Len(t, got.Items, 4)
}

func TestCache_ReadersKeepConsistentSnapshot(t *testing.T) {
	c := NewCache()
	key := query.Key{Term: "batman"}
	c.Put(key, ResultSet{Items: movies(0, 10), TotalResults: 23, Successful: true})

	before, _ := c.Get(key)
	c.AppendPage(key, ResultSet{Items: movies(10, 10), TotalResults: 23, Successful: true})

	assert.Len(t, before.Items, 10, "earlier snapshot is unaffected by appends")
	after, _ := c.Get(key)
	assert.Len(t, after.Items, 20)
}
