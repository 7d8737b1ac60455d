package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/vmunix/reelfind/internal/config"
)

// fakeOMDb serves total numbered movies for any search term, ten per page.
// Pages listed in fail answer with a 500.
func fakeOMDb(t *testing.T, total int, fail ...int) *httptest.Server {
	t.Helper()
	failing := make(map[int]bool)
	for _, p := range fail {
		failing[p] = true
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page := 1
		if p := r.URL.Query().Get("page"); p != "" {
			page, _ = strconv.Atoi(p)
		}
		if failing[page] {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		if total == 0 {
			_, _ = w.Write([]byte(`{"Response":"False","Error":"Movie not found!"}`))
			return
		}

		var items []map[string]string
		for i := (page - 1) * 10; i < min(page*10, total); i++ {
			items = append(items, map[string]string{
				"Title":  fmt.Sprintf("%s %d", r.URL.Query().Get("s"), i),
				"Year":   "2001",
				"imdbID": fmt.Sprintf("tt%07d", i),
				"Type":   "movie",
				"Poster": "N/A",
			})
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"Search":       items,
			"totalResults": strconv.Itoa(total),
			"Response":     "True",
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func testConfigFor(baseURL string) *config.Config {
	cfg := &config.Config{}
	cfg.OMDb.APIKey = "test-key"
	cfg.OMDb.BaseURL = baseURL
	cfg.OMDb.Timeout = 2 * time.Second
	cfg.Search.PageSize = 10
	cfg.Search.ErrorMessage = config.DefaultErrorMessage
	cfg.Search.PlaceholderPoster = config.DefaultPlaceholder
	cfg.History.Path = ":memory:"
	cfg.Log.Level = "error"
	return cfg
}

func testApp(t *testing.T, baseURL string) *app {
	t.Helper()
	return newApp(testConfigFor(baseURL), slog.New(slog.NewTextHandler(io.Discard, nil)))
}
