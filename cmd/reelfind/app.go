package main

import (
	"context"
	"log/slog"

	"github.com/vmunix/reelfind/internal/config"
	"github.com/vmunix/reelfind/internal/history"
	"github.com/vmunix/reelfind/internal/search"
	"github.com/vmunix/reelfind/pkg/omdb"
)

// app holds the components shared by the commands.
type app struct {
	cfg   *config.Config
	log   *slog.Logger
	coord *search.Coordinator
}

func newApp(cfg *config.Config, logger *slog.Logger) *app {
	client := omdb.NewClient(cfg.OMDb.APIKey,
		omdb.WithBaseURL(cfg.OMDb.BaseURL),
		omdb.WithTimeout(cfg.OMDb.Timeout),
		omdb.WithLogger(logger),
	)
	coord := search.NewCoordinator(client, search.Config{
		PageSize:     cfg.Search.PageSize,
		ErrorMessage: cfg.Search.ErrorMessage,
	}, logger.With("component", "search"))

	return &app{cfg: cfg, log: logger, coord: coord}
}

func (a *app) openHistory(ctx context.Context) (*history.History, error) {
	return history.Open(ctx, a.cfg.History.Path, a.log.With("component", "history"))
}
