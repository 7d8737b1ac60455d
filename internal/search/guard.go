package search

import (
	"log/slog"
	"sync"

	"github.com/vmunix/reelfind/internal/query"
)

// Guard holds the query currently on screen.
type Guard struct {
	mu     sync.RWMutex
	active query.Key
}

// Activate makes key the query on screen.
func (g *Guard) Activate(key query.Key) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.active = key
}

// Active returns the query on screen, if any.
func (g *Guard) Active() (query.Key, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.active, !g.active.IsZero()
}

// Current reports whether key is the query on screen.
func (g *Guard) Current(key query.Key) bool {
	active, ok := g.Active()
	return ok && active == key
}

// guardedRenderer drops results whose query is no longer on screen.
type guardedRenderer struct {
	next  Renderer
	guard *Guard
	log   *slog.Logger
}

func (r *guardedRenderer) DisplayResult(res Result) {
	if !r.current(res) {
		return
	}
	r.next.DisplayResult(res)
}

func (r *guardedRenderer) DisplayMore(res Result) {
	if !r.current(res) {
		return
	}
	r.next.DisplayMore(res)
}

func (r *guardedRenderer) current(res Result) bool {
	if r.guard.Current(res.Key) {
		return true
	}
	staleDiscarded.WithLabelValues(res.Mode.String()).Inc()
	r.log.Debug("discarding stale result", "query", res.Key.String(), "mode", res.Mode.String())
	return false
}
