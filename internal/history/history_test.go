package history

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openMemory(t *testing.T) *History {
	t.Helper()
	h, err := Open(context.Background(), "", nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = h.Close() })
	return h
}

func TestHistory_Empty(t *testing.T) {
	h := openMemory(t)
	ctx := context.Background()

	assert.Empty(t, h.Location())

	moved, err := h.Back(ctx)
	require.NoError(t, err)
	assert.False(t, moved)

	moved, err = h.Forward(ctx)
	require.NoError(t, err)
	assert.False(t, moved)

	entries, cursor := h.Entries()
	assert.Empty(t, entries)
	assert.Equal(t, -1, cursor)
}

func TestHistory_BackForward(t *testing.T) {
	h := openMemory(t)
	ctx := context.Background()

	require.NoError(t, h.Push(ctx, "s=alien&y="))
	require.NoError(t, h.Push(ctx, "s=aliens&y="))
	require.NoError(t, h.Push(ctx, "s=alien+3&y="))
	assert.Equal(t, "s=alien+3&y=", h.Location())

	moved, err := h.Back(ctx)
	require.NoError(t, err)
	assert.True(t, moved)
	assert.Equal(t, "s=aliens&y=", h.Location())

	moved, err = h.Back(ctx)
	require.NoError(t, err)
	assert.True(t, moved)
	assert.Equal(t, "s=alien&y=", h.Location())

	moved, err = h.Back(ctx)
	require.NoError(t, err)
	assert.False(t, moved, "already at the oldest entry")

	moved, err = h.Forward(ctx)
	require.NoError(t, err)
	assert.True(t, moved)
	assert.Equal(t, "s=aliens&y=", h.Location())
}

func TestHistory_PushDropsForwardEntries(t *testing.T) {
	h := openMemory(t)
	ctx := context.Background()

	require.NoError(t, h.Push(ctx, "s=a"))
	require.NoError(t, h.Push(ctx, "s=b"))
	require.NoError(t, h.Push(ctx, "s=c"))
	_, err := h.Back(ctx)
	require.NoError(t, err)
	_, err = h.Back(ctx)
	require.NoError(t, err)

	require.NoError(t, h.Push(ctx, "s=d"))

	entries, cursor := h.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "s=a", entries[0].Location)
	assert.Equal(t, "s=d", entries[1].Location)
	assert.Equal(t, 1, cursor)

	moved, err := h.Forward(ctx)
	require.NoError(t, err)
	assert.False(t, moved)
}

func TestHistory_PersistsAcrossOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "history.db")
	ctx := context.Background()

	h, err := Open(ctx, path, nil)
	require.NoError(t, err)
	require.NoError(t, h.Push(ctx, "s=heat&y=1995"))
	require.NoError(t, h.Push(ctx, "s=ronin&y="))
	_, err = h.Back(ctx)
	require.NoError(t, err)
	require.NoError(t, h.Close())

	reopened, err := Open(ctx, path, nil)
	require.NoError(t, err)
	defer reopened.Close()

	assert.Equal(t, "s=heat&y=1995", reopened.Location(), "cursor position is restored")
	entries, cursor := reopened.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, 0, cursor)
	assert.False(t, entries[0].VisitedAt.IsZero())

	moved, err := reopened.Forward(ctx)
	require.NoError(t, err)
	assert.True(t, moved)
	assert.Equal(t, "s=ronin&y=", reopened.Location())
}

func TestHistory_Clear(t *testing.T) {
	h := openMemory(t)
	ctx := context.Background()

	require.NoError(t, h.Push(ctx, "s=a"))
	require.NoError(t, h.Push(ctx, "s=b"))
	require.NoError(t, h.Clear(ctx))

	assert.Empty(t, h.Location())
	entries, cursor := h.Entries()
	assert.Empty(t, entries)
	assert.Equal(t, -1, cursor)

	require.NoError(t, h.Push(ctx, "s=c"))
	assert.Equal(t, "s=c", h.Location())
}
