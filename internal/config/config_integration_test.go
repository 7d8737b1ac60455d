package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFullWorkflow(t *testing.T) {
	tmp := t.TempDir()

	// 1. Write default config
	cfgPath := filepath.Join(tmp, "reelfind", "config.toml")
	require.NoError(t, WriteDefault(cfgPath, false))

	// 2. Set required env vars (t.Setenv auto-restores on cleanup)
	t.Setenv("OMDB_API_KEY", "test-omdb-key")
	t.Setenv("REELFIND_HISTORY", filepath.Join(tmp, "history.db"))

	// 3. Load with validation
	cfg, err := Load(cfgPath)
	require.NoError(t, err)

	// 4. Verify env substitution
	assert.Equal(t, "test-omdb-key", cfg.OMDb.APIKey)
	assert.Equal(t, filepath.Join(tmp, "history.db"), cfg.History.Path)

	// 5. Verify the shipped values match the built-in defaults
	assert.Equal(t, DefaultBaseURL, cfg.OMDb.BaseURL)
	assert.Equal(t, DefaultTimeout, cfg.OMDb.Timeout)
	assert.Equal(t, DefaultPageSize, cfg.Search.PageSize)
	assert.Equal(t, DefaultErrorMessage, cfg.Search.ErrorMessage)
	assert.Equal(t, DefaultPlaceholder, cfg.Search.PlaceholderPoster)
}
