// internal/config/validate.go
package config

import (
	"fmt"
	"net/url"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if c.OMDb.APIKey == "" {
		errs = append(errs, fmt.Sprintf("omdb.api_key: required (set it in the config or %s)", APIKeyEnv))
	}
	if c.OMDb.BaseURL != "" {
		u, err := url.Parse(c.OMDb.BaseURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errs = append(errs, fmt.Sprintf("omdb.base_url: must be an http(s) URL, got %q", c.OMDb.BaseURL))
		}
	}
	if c.OMDb.Timeout < 0 {
		errs = append(errs, fmt.Sprintf("omdb.timeout: must not be negative, got %s", c.OMDb.Timeout))
	}

	if c.Search.PageSize < 1 || c.Search.PageSize > 100 {
		errs = append(errs, fmt.Sprintf("search.page_size: must be between 1 and 100, got %d", c.Search.PageSize))
	}

	if !validLogLevels[c.Log.Level] {
		errs = append(errs, fmt.Sprintf("log.level: must be one of debug, info, warn, error; got %q", c.Log.Level))
	}

	return errs
}
