// Package history keeps the navigable list of visited search locations.
//
// It plays the part of a browser's address bar and session history: every
// submitted search pushes a location, back and forward move a cursor, and
// pushing after going back drops the forward entries. Entries and cursor are
// stored in SQLite so the current location survives a restart.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/vmunix/reelfind/internal/migrations"
)

// Entry is one visited location.
type Entry struct {
	Position  int
	Location  string
	VisitedAt time.Time
}

// History is a persisted back/forward stack of locations.
type History struct {
	db  *sql.DB
	log *slog.Logger

	mu      sync.Mutex
	entries []Entry
	cursor  int // index into entries; -1 when empty
}

// Open opens or creates the history database at path.
// An empty path or ":memory:" keeps history in a private in-memory database.
func Open(ctx context.Context, path string, log *slog.Logger) (*History, error) {
	if log == nil {
		log = slog.Default()
	}

	dsn := path
	if path == "" || path == ":memory:" {
		dsn = ":memory:"
	} else if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create history dir: %w", err)
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open history: %w", err)
	}
	// Every connection to ":memory:" is a separate database.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, migrations.HistorySQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate history: %w", err)
	}

	h := &History{db: db, log: log, cursor: -1}
	if err := h.load(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	log.Debug("history opened", "path", path, "entries", len(h.entries), "cursor", h.cursor)
	return h, nil
}

// Close releases the database.
func (h *History) Close() error {
	return h.db.Close()
}

func (h *History) load(ctx context.Context) error {
	rows, err := h.db.QueryContext(ctx,
		"SELECT position, location, visited_at FROM history ORDER BY position")
	if err != nil {
		return fmt.Errorf("load history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Position, &e.Location, &e.VisitedAt); err != nil {
			return fmt.Errorf("scan history: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("load history: %w", err)
	}

	var pos int
	err = h.db.QueryRowContext(ctx, "SELECT position FROM history_cursor WHERE id = 1").Scan(&pos)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("load history cursor: %w", err)
	}

	h.entries = entries
	h.cursor = len(entries) - 1
	if err == nil {
		for i, e := range entries {
			if e.Position == pos {
				h.cursor = i
				break
			}
		}
	}
	return nil
}

// Location returns the current location, or "" when history is empty.
func (h *History) Location() string {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.cursor < 0 {
		return ""
	}
	return h.entries[h.cursor].Location
}

// Push records location after the current entry and makes it current.
// Entries ahead of the cursor are discarded.
func (h *History) Push(ctx context.Context, location string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	pos := 0
	if h.cursor >= 0 {
		pos = h.entries[h.cursor].Position + 1
	}
	entry := Entry{Position: pos, Location: location, VisitedAt: time.Now().UTC()}

	tx, err := h.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM history WHERE position >= ?", pos); err != nil {
		return fmt.Errorf("truncate history: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		"INSERT INTO history (position, location, visited_at) VALUES (?, ?, ?)",
		entry.Position, entry.Location, entry.VisitedAt,
	); err != nil {
		return fmt.Errorf("insert history: %w", err)
	}
	if err := setCursor(ctx, tx, pos); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit history: %w", err)
	}

	h.entries = append(h.entries[:h.cursor+1], entry)
	h.cursor = len(h.entries) - 1
	h.log.Debug("history push", "location", location, "position", pos)
	return nil
}

// Back moves to the previous entry. It reports false at the oldest entry.
func (h *History) Back(ctx context.Context) (bool, error) {
	return h.move(ctx, -1)
}

// Forward moves to the next entry. It reports false at the newest entry.
func (h *History) Forward(ctx context.Context) (bool, error) {
	return h.move(ctx, 1)
}

func (h *History) move(ctx context.Context, delta int) (bool, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	next := h.cursor + delta
	if h.cursor < 0 || next < 0 || next >= len(h.entries) {
		return false, nil
	}
	if err := setCursor(ctx, h.db, h.entries[next].Position); err != nil {
		return false, err
	}
	h.cursor = next
	return true, nil
}

// Entries returns a copy of all entries and the index of the current one
// (-1 when empty).
func (h *History) Entries() ([]Entry, int) {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]Entry, len(h.entries))
	copy(out, h.entries)
	return out, h.cursor
}

// Clear removes every entry.
func (h *History) Clear(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	tx, err := h.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM history"); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM history_cursor"); err != nil {
		return fmt.Errorf("clear history cursor: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit history: %w", err)
	}

	h.entries = nil
	h.cursor = -1
	return nil
}

// execer abstracts *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func setCursor(ctx context.Context, ex execer, pos int) error {
	_, err := ex.ExecContext(ctx,
		`INSERT INTO history_cursor (id, position) VALUES (1, ?)
		 ON CONFLICT(id) DO UPDATE SET position = excluded.position`,
		pos,
	)
	if err != nil {
		return fmt.Errorf("set history cursor: %w", err)
	}
	return nil
}
