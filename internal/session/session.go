// Package session drives searches from navigation events.
//
// A Session reads the current location from its Navigator, decides which
// query is on screen, and dispatches fetches whose results flow through a
// renderer guarded against stale responses.
package session

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/vmunix/reelfind/internal/query"
	"github.com/vmunix/reelfind/internal/search"
)

//go:generate mockgen -source=session.go -destination=mocks/mock_session.go -package=mocks

// Navigator supplies the current location and moves through history.
type Navigator interface {
	Location() string
	Push(ctx context.Context, location string) error
	Back(ctx context.Context) (bool, error)
	Forward(ctx context.Context) (bool, error)
}

// FormFiller is implemented by renderers that show the search form.
// It is called when navigation restores a location.
type FormFiller interface {
	FillForm(key query.Key)
}

// Fetcher resolves searches. *search.Coordinator implements it.
type Fetcher interface {
	Fetch(ctx context.Context, key query.Key, mode search.Mode) (search.Result, error)
	Activate(key query.Key)
	Guarded(r search.Renderer) search.Renderer
}

// Session connects navigation, fetching and display.
type Session struct {
	fetcher Fetcher
	nav     Navigator
	display search.Renderer
	form    FormFiller
	log     *slog.Logger

	group errgroup.Group
}

// New creates a session. Results reach r only while their query is on screen.
func New(fetcher Fetcher, nav Navigator, r search.Renderer, log *slog.Logger) *Session {
	if log == nil {
		log = slog.Default()
	}
	s := &Session{
		fetcher: fetcher,
		nav:     nav,
		display: fetcher.Guarded(r),
		log:     log,
	}
	if f, ok := r.(FormFiller); ok {
		s.form = f
	}
	return s
}

// Show loads and displays the search at the current location. With
// fillForm the form inputs are set from the location first. A location
// without a search term changes nothing.
func (s *Session) Show(ctx context.Context, fillForm bool) {
	key, ok := query.Parse(s.nav.Location())
	if !ok {
		return
	}
	if fillForm && s.form != nil {
		s.form.FillForm(key)
	}
	s.fetcher.Activate(key)

	s.group.Go(func() error {
		res, err := s.fetcher.Fetch(ctx, key, search.ModeInitial)
		if err != nil {
			s.logFetchError(key, search.ModeInitial, err)
			return nil
		}
		s.display.DisplayResult(res)
		return nil
	})
}

// Submit records the form input as a new location and shows it.
func (s *Session) Submit(ctx context.Context, term, year string) error {
	if err := s.nav.Push(ctx, query.Encode(term, year)); err != nil {
		return err
	}
	s.Show(ctx, false)
	return nil
}

// Back navigates to the previous location. It reports false when there is
// none.
func (s *Session) Back(ctx context.Context) (bool, error) {
	return s.navigate(ctx, s.nav.Back)
}

// Forward navigates to the next location. It reports false when there is
// none.
func (s *Session) Forward(ctx context.Context) (bool, error) {
	return s.navigate(ctx, s.nav.Forward)
}

func (s *Session) navigate(ctx context.Context, step func(context.Context) (bool, error)) (bool, error) {
	moved, err := step(ctx)
	if err != nil || !moved {
		return false, err
	}
	s.Show(ctx, true)
	return true, nil
}

// LoadMore fetches the next page of the search at the current location.
func (s *Session) LoadMore(ctx context.Context) {
	key, ok := query.Parse(s.nav.Location())
	if !ok {
		return
	}

	s.group.Go(func() error {
		res, err := s.fetcher.Fetch(ctx, key, search.ModeMore)
		if err != nil {
			s.logFetchError(key, search.ModeMore, err)
			return nil
		}
		s.display.DisplayMore(res)
		return nil
	})
}

// Wait blocks until every dispatched fetch has been displayed or dropped.
func (s *Session) Wait() error {
	return s.group.Wait()
}

func (s *Session) logFetchError(key query.Key, mode search.Mode, err error) {
	if errors.Is(err, search.ErrSuppressed) {
		s.log.Debug("fetch suppressed", "query", key.String(), "mode", mode.String())
		return
	}
	s.log.Error("fetch failed", "query", key.String(), "mode", mode.String(), "error", err)
}
