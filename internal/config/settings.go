package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/monokit-dev/monokit/internal/paths"
)

// DefaultConcurrency is the number of workspaces read in parallel
const DefaultConcurrency = 10

// Settings represents the structure of $MONOKIT_HOME/settings.json
type Settings struct {
	Cache       *bool    `json:"cache,omitempty"`
	Concurrency *int     `json:"concurrency,omitempty"`
	Debug       *bool    `json:"debug,omitempty"`
	Format      []string `json:"format,omitempty"`
	MaxLogFiles *int     `json:"max_log_files,omitempty"`
}

// CacheEnabled reports whether the workspace lookup cache should be used
func (s *Settings) CacheEnabled() bool {
	if s == nil || s.Cache == nil {
		return true
	}
	return *s.Cache
}

// ConcurrencyOrDefault returns the configured concurrency or DefaultConcurrency
func (s *Settings) ConcurrencyOrDefault() int {
	if s == nil || s.Concurrency == nil || *s.Concurrency < 1 {
		return DefaultConcurrency
	}
	return *s.Concurrency
}

// LoadSettings loads settings from $MONOKIT_HOME/settings.json (or ~/.monokit/settings.json if not set)
// Returns empty Settings if file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	return LoadSettingsFrom(paths.GetSettingsPath())
}

// LoadSettingsFrom loads settings from the given file
func LoadSettingsFrom(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	return &settings, nil
}
