// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	DefaultBaseURL      = "https://www.omdbapi.com/"
	DefaultTimeout      = 10 * time.Second
	DefaultPageSize     = 10
	DefaultErrorMessage = "Unexpected error occurred. Please try again."
	DefaultPlaceholder  = "(no poster)"
	DefaultLogLevel     = "info"

	// APIKeyEnv is read when no config file supplies the key.
	APIKeyEnv = "OMDB_API_KEY"
)

// Config is the root configuration structure.
type Config struct {
	OMDb    OMDbConfig    `toml:"omdb"`
	Search  SearchConfig  `toml:"search"`
	History HistoryConfig `toml:"history"`
	Log     LogConfig     `toml:"log"`
}

type OMDbConfig struct {
	APIKey  string        `toml:"api_key"`
	BaseURL string        `toml:"base_url"`
	Timeout time.Duration `toml:"timeout"`
}

type SearchConfig struct {
	PageSize          int    `toml:"page_size"`
	ErrorMessage      string `toml:"error_message"`
	PlaceholderPoster string `toml:"placeholder_poster"`
}

type HistoryConfig struct {
	// Path of the SQLite history database; ":memory:" keeps history for
	// the current process only.
	Path string `toml:"path"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns the built-in configuration with the API key taken from
// OMDB_API_KEY.
func Default() *Config {
	cfg := &Config{}
	cfg.OMDb.APIKey = os.Getenv(APIKeyEnv)
	cfg.OMDb.Timeout = DefaultTimeout
	cfg.applyDefaults()
	return cfg
}

// Load reads, parses and validates the configuration file.
// Unresolved environment variables and validation failures are reported
// together as a *Error.
func Load(path string) (*Config, error) {
	cfg, missing, err := load(path)
	if err != nil {
		return nil, err
	}

	cfgErr := &Error{Path: path, Missing: missing, Errors: cfg.Validate()}
	if cfgErr.HasErrors() {
		return nil, cfgErr
	}
	return cfg, nil
}

// LoadWithoutValidation reads and parses the configuration file, applying
// defaults but skipping validation and unresolved variable checks.
func LoadWithoutValidation(path string) (*Config, error) {
	cfg, _, err := load(path)
	return cfg, err
}

func load(path string) (*Config, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading config: %w", err)
	}

	content, missing := substituteEnvVars(string(data))

	var cfg Config
	md, err := toml.Decode(content, &cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing config: %w", err)
	}

	// An explicit timeout of zero disables the client timeout.
	if !md.IsDefined("omdb", "timeout") {
		cfg.OMDb.Timeout = DefaultTimeout
	}

	if cfg.OMDb.APIKey == "" {
		cfg.OMDb.APIKey = os.Getenv(APIKeyEnv)
	}
	cfg.applyDefaults()

	return &cfg, missing, nil
}

func (c *Config) applyDefaults() {
	if c.OMDb.BaseURL == "" {
		c.OMDb.BaseURL = DefaultBaseURL
	}
	if c.Search.PageSize == 0 {
		c.Search.PageSize = DefaultPageSize
	}
	if c.Search.ErrorMessage == "" {
		c.Search.ErrorMessage = DefaultErrorMessage
	}
	if c.Search.PlaceholderPoster == "" {
		c.Search.PlaceholderPoster = DefaultPlaceholder
	}
	if c.History.Path == "" {
		c.History.Path = DefaultHistoryPath()
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
}

// envVarPattern matches ${VAR}, ${VAR:-default} and ${VAR:?message}.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// substituteEnvVars replaces environment variable references. References
// that cannot be resolved are left in place and reported in missing.
func substituteEnvVars(content string) (string, []string) {
	var missing []string
	seen := make(map[string]bool)
	report := func(s string) {
		if !seen[s] {
			seen[s] = true
			missing = append(missing, s)
		}
	}

	out := envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		expr := match[2 : len(match)-1] // Strip ${ and }

		if name, def, ok := strings.Cut(expr, ":-"); ok {
			if value := os.Getenv(name); value != "" {
				return value
			}
			return def
		}

		if name, msg, ok := strings.Cut(expr, ":?"); ok {
			if value := os.Getenv(name); value != "" {
				return value
			}
			report(name + ": " + msg)
			return match
		}

		if value, ok := os.LookupEnv(expr); ok {
			return value
		}
		report(expr)
		return match
	})
	return out, missing
}
