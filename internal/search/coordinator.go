// internal/search/coordinator.go
package search

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/vmunix/reelfind/internal/query"
	"github.com/vmunix/reelfind/pkg/omdb"
)

// DefaultErrorMessage replaces transport error details shown to the user.
const DefaultErrorMessage = "Unexpected error occurred. Please try again."

// Config configures a Coordinator.
type Config struct {
	PageSize     int
	ErrorMessage string
}

// Coordinator owns the result cache, the in-flight set and the active query
// for one session.
type Coordinator struct {
	api    API
	cache  *Cache
	pager  *Paginator
	dedup  *Deduplicator
	guard  *Guard
	errMsg string
	log    *slog.Logger
}

// NewCoordinator creates a coordinator that fetches through api.
func NewCoordinator(api API, cfg Config, log *slog.Logger) *Coordinator {
	if log == nil {
		log = slog.Default()
	}
	errMsg := cfg.ErrorMessage
	if errMsg == "" {
		errMsg = DefaultErrorMessage
	}
	cache := NewCache()
	return &Coordinator{
		api:    api,
		cache:  cache,
		pager:  NewPaginator(cache, cfg.PageSize),
		dedup:  NewDeduplicator(),
		guard:  &Guard{},
		errMsg: errMsg,
		log:    log,
	}
}

// Cache exposes the result cache.
func (c *Coordinator) Cache() *Cache { return c.cache }

// Paginator exposes the paginator.
func (c *Coordinator) Paginator() *Paginator { return c.pager }

// Deduplicator exposes the in-flight tracker.
func (c *Coordinator) Deduplicator() *Deduplicator { return c.dedup }

// Activate records key as the query now on screen. Results for any other
// query are discarded by renderers returned from Guarded.
func (c *Coordinator) Activate(key query.Key) {
	c.guard.Activate(key)
}

// Active returns the query on screen.
func (c *Coordinator) Active() (query.Key, bool) {
	return c.guard.Active()
}

// Guarded wraps r so it only displays results for the active query.
func (c *Coordinator) Guarded(r Renderer) Renderer {
	return &guardedRenderer{next: r, guard: c.guard, log: c.log}
}

// Fetch resolves the search identified by key.
//
// ModeInitial returns the cached result when there is one; otherwise it
// joins or starts the single in-flight request for key. ModeMore fetches
// the next page and appends it to the cached entry. ErrSuppressed is
// returned when the caller should do nothing. Transport failures are not
// returned as errors: they resolve to a failed ResultSet carrying the
// generic error message.
func (c *Coordinator) Fetch(ctx context.Context, key query.Key, mode Mode) (Result, error) {
	switch mode {
	case ModeInitial:
		return c.fetchInitial(ctx, key)
	case ModeMore:
		return c.fetchMore(ctx, key)
	default:
		return Result{}, fmt.Errorf("%w: %d", ErrUnknownMode, mode)
	}
}

func (c *Coordinator) fetchInitial(ctx context.Context, key query.Key) (Result, error) {
	if rs, ok := c.cache.Get(key); ok {
		cacheHits.Inc()
		c.log.Debug("cache hit", "query", key.String(), "items", len(rs.Items), "total", rs.TotalResults)
		return c.initialResult(key, rs, true), nil
	}

	res, shared, err := c.dedup.Do(key, ModeInitial, func() (Result, error) {
		// A caller that missed the cache may arrive just after the previous
		// request for key settled.
		if rs, ok := c.cache.Get(key); ok {
			cacheHits.Inc()
			return c.initialResult(key, rs, true), nil
		}

		rs := c.request(ctx, key, ModeInitial, 0)
		if rs.Successful {
			c.cache.Put(key, rs)
			rs, _ = c.cache.Get(key)
		}
		return c.initialResult(key, rs, false), nil
	})
	if shared {
		sharedFetches.Inc()
	}
	return res, err
}

func (c *Coordinator) fetchMore(ctx context.Context, key query.Key) (Result, error) {
	if !c.dedup.TryBegin(key, ModeMore) {
		suppressedFetches.WithLabelValues("in_flight").Inc()
		return Result{}, ErrSuppressed
	}
	defer c.dedup.End(key, ModeMore)

	page, ok := c.pager.NextPage(key)
	if !ok {
		suppressedFetches.WithLabelValues("exhausted").Inc()
		return Result{}, ErrSuppressed
	}

	prev, _ := c.cache.Get(key)
	rs := c.request(ctx, key, ModeMore, page)
	if rs.Successful {
		updated, appended := c.cache.AppendPage(key, rs)
		if !appended {
			c.log.Warn("page added no items", "query", key.String(), "page", page, "items", len(rs.Items))
			rs.Items = nil
		} else if n := len(prev.Items); n <= len(updated.Items) && len(updated.Items)-n < len(rs.Items) {
			// Only what the cache kept is displayed.
			rs.Items = updated.Items[n:]
		}
	}

	return Result{
		Key:     key,
		Mode:    ModeMore,
		Page:    page,
		Set:     rs,
		HasMore: c.pager.CanLoadMore(key),
	}, nil
}

// request performs one API call and converts the outcome to a ResultSet.
// Transport failures become a failed ResultSet with the generic message.
func (c *Coordinator) request(ctx context.Context, key query.Key, mode Mode, page int) ResultSet {
	start := time.Now()
	resp, err := c.api.Search(ctx, omdb.SearchParams{
		Term: key.Term,
		Year: key.Year,
		Page: page,
	})
	if err == nil {
		var rs ResultSet
		rs, err = resultSetFromResponse(resp)
		if err == nil {
			outcome := "ok"
			if !rs.Successful {
				outcome = "api_error"
			}
			apiRequests.WithLabelValues(mode.String(), outcome).Inc()
			c.log.Debug("search fetched",
				"query", key.String(),
				"mode", mode.String(),
				"page", page,
				"items", len(rs.Items),
				"total", rs.TotalResults,
				"error", rs.ErrorText,
				"duration_ms", time.Since(start).Milliseconds(),
			)
			return rs
		}
	}

	apiRequests.WithLabelValues(mode.String(), "transport_error").Inc()
	c.log.Warn("search request failed",
		"query", key.String(),
		"mode", mode.String(),
		"page", page,
		"error", err,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return ResultSet{ErrorText: c.errMsg}
}

func (c *Coordinator) initialResult(key query.Key, rs ResultSet, cached bool) Result {
	return Result{
		Key:     key,
		Mode:    ModeInitial,
		Page:    c.pager.PagesHeld(len(rs.Items)),
		Set:     rs,
		HasMore: rs.Successful && !rs.Complete(),
		Cached:  cached,
	}
}
