package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestConfig_Valid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[omdb]
api_key = "abcdef123456"

[history]
path = ":memory:"
`), 0644))

	var out bytes.Buffer
	require.NoError(t, testConfig(&out, path))

	got := out.String()
	assert.Contains(t, got, "Configuration valid!")
	assert.Contains(t, got, "****3456")
	assert.NotContains(t, got, "abcdef123456")
}

func TestTestConfig_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[omdb]
api_key = "${REELFIND_TEST_UNSET_KEY}"

[log]
level = "loud"
`), 0644))

	var out bytes.Buffer
	err := testConfig(&out, path)
	require.Error(t, err)

	got := out.String()
	assert.Contains(t, got, "Missing environment variables:")
	assert.Contains(t, got, "REELFIND_TEST_UNSET_KEY")
	assert.Contains(t, got, "Validation errors:")
	assert.Contains(t, got, "log.level")
}

func TestTestConfig_NotFound(t *testing.T) {
	err := testConfig(&bytes.Buffer{}, filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorContains(t, err, "failed to load config")
}

func TestMaskKey(t *testing.T) {
	assert.Equal(t, "****", maskKey(""))
	assert.Equal(t, "****", maskKey("abcd"))
	assert.Equal(t, "****bcde", maskKey("abcde"))
}
