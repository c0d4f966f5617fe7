package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/monokit-dev/monokit/internal/config"
	"github.com/monokit-dev/monokit/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"100"`
	NoCache     bool             `help:"Do not use the package location cache"`

	PackagesList PackagesListCmd `cmd:"packages-list" help:"Inject the monorepo packages list into target files"`
	GitChanges   GitChangesCmd   `cmd:"git-changes" help:"List uncommitted git changes"`
	PackagePath  PackagePathCmd  `cmd:"package-path" help:"Print the directory of a workspace package by name"`
	Workspaces   WorkspacesCmd   `cmd:"workspaces" help:"List the monorepo workspaces"`
	Init         InitCmd         `cmd:"init" help:"Create a packages list configuration file"`
	Cache        CacheCmd        `cmd:"cache" help:"Manage the package location cache"`
	Settings     SettingsCmd     `cmd:"settings" help:"Manage settings (meta)"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Precedence: CLI flags > env vars > settings.json > defaults
	if c.settings != nil {
		if c.MaxLogFiles == logging.DefaultMaxLogFiles {
			if _, hasEnv := os.LookupEnv("MONOKIT_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv("MONOKIT_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// Child processes (formatters) inherit the debug settings and log file
	if c.Debug || c.DebugFile != "" {
		os.Setenv("MONOKIT_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("MONOKIT_DEBUG_FILE", logFilePath)
		}
	}
	if c.MaxLogFiles != logging.DefaultMaxLogFiles {
		os.Setenv("MONOKIT_MAX_LOG_FILES", fmt.Sprintf("%d", c.MaxLogFiles))
	}

	// The container opens the cache database, whose GORM logger needs logging
	useCache := !c.NoCache && c.settings.CacheEnabled()
	container, err := NewContainer(c.settings, useCache)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}
