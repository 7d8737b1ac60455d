// internal/search/dedup.go
package search

import (
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/vmunix/reelfind/internal/query"
)

// fetchKey identifies one in-flight request.
type fetchKey struct {
	key  query.Key
	mode Mode
}

func (k fetchKey) String() string {
	return k.mode.String() + ":" + k.key.String()
}

// Deduplicator tracks in-flight requests so identical concurrent requests
// collapse into one.
type Deduplicator struct {
	mu       sync.Mutex
	inflight map[fetchKey]struct{}
	group    singleflight.Group
}

// NewDeduplicator creates an empty deduplicator.
func NewDeduplicator() *Deduplicator {
	return &Deduplicator{
		inflight: make(map[fetchKey]struct{}),
	}
}

// TryBegin marks (key, mode) in flight. It returns false, and changes
// nothing, when the pair is already in flight.
// Every successful TryBegin must be paired with exactly one End.
func (d *Deduplicator) TryBegin(key query.Key, mode Mode) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	fk := fetchKey{key: key, mode: mode}
	if _, busy := d.inflight[fk]; busy {
		return false
	}
	d.inflight[fk] = struct{}{}
	return true
}

// End clears the in-flight marker for (key, mode).
func (d *Deduplicator) End(key query.Key, mode Mode) {
	d.mu.Lock()
	defer d.mu.Unlock()

	delete(d.inflight, fetchKey{key: key, mode: mode})
}

// InFlight reports whether (key, mode) is currently in flight.
func (d *Deduplicator) InFlight(key query.Key, mode Mode) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	_, busy := d.inflight[fetchKey{key: key, mode: mode}]
	return busy
}

// Do runs fn once for concurrent callers with the same (key, mode) and hands
// every caller the same result. shared reports whether the result was
// handed to more than one caller.
func (d *Deduplicator) Do(key query.Key, mode Mode, fn func() (Result, error)) (res Result, shared bool, err error) {
	v, err, shared := d.group.Do(fetchKey{key: key, mode: mode}.String(), func() (any, error) {
		if !d.TryBegin(key, mode) {
			return Result{}, ErrSuppressed
		}
		defer d.End(key, mode)
		return fn()
	})
	res, _ = v.(Result)
	return res, shared, err
}
