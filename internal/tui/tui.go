// Package tui provides the interactive search screen.
package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vmunix/reelfind/internal/search"
	"github.com/vmunix/reelfind/internal/session"
)

// Options configure the search screen.
type Options struct {
	Coordinator *search.Coordinator
	Navigator   session.Navigator
	Logger      *slog.Logger

	// Term and Year start a search immediately. Without a term the
	// navigator's current location is shown.
	Term string
	Year string

	Placeholder string
}

// Run starts the program and blocks until the user quits or ctx is done.
func Run(ctx context.Context, opts Options) error {
	if opts.Coordinator == nil || opts.Navigator == nil {
		return fmt.Errorf("tui requires a coordinator and a navigator")
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	r := &renderer{}
	sess := session.New(opts.Coordinator, opts.Navigator, r, log.With("component", "session"))

	m := newModel(ctx, sess, opts.Coordinator.Active, opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	r.send = p.Send

	_, err := p.Run()
	cancel()
	_ = sess.Wait()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
