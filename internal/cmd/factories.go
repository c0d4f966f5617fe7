package cmd

import (
	"context"

	adapterformatter "github.com/monokit-dev/monokit/internal/adapters/formatter"
	adapterfs "github.com/monokit-dev/monokit/internal/adapters/fsaccess"
	adaptergit "github.com/monokit-dev/monokit/internal/adapters/git"
	adapterstorage "github.com/monokit-dev/monokit/internal/adapters/storage"
	adapterworkspace "github.com/monokit-dev/monokit/internal/adapters/workspace"
	"github.com/monokit-dev/monokit/internal/application"
	"github.com/monokit-dev/monokit/internal/config"
	"github.com/monokit-dev/monokit/internal/logging"
	"github.com/monokit-dev/monokit/internal/ports"
	"github.com/monokit-dev/monokit/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	// Services
	GitService          *services.GitService
	PackagesListService *services.PackagesListService
	WorkspaceService    *services.WorkspaceService

	// Use cases
	PackagesListUpdater *application.PackagesListUpdater

	Settings *config.Settings

	// Internal - for cleanup only
	cache *adapterstorage.SQLiteCache
}

// NewContainer creates a new Container with all dependencies wired. A cache
// that cannot be opened is skipped with a warning.
func NewContainer(settings *config.Settings, useCache bool) (*Container, error) {
	if settings == nil {
		settings = &config.Settings{}
	}

	var (
		cache        *adapterstorage.SQLiteCache
		packageCache ports.PackageCache
	)
	if useCache {
		opened, err := adapterstorage.NewSQLiteCacheForHome()
		if err != nil {
			logging.Logger.Warn("Package cache unavailable", "error", err)
		} else {
			cache = opened
			packageCache = opened
		}
	}

	gitRepo := adaptergit.NewCLIRepository()
	workspaceReader := adapterworkspace.NewFSReader()

	gitService := services.NewGitService(gitRepo)
	workspaceService := services.NewWorkspaceService(workspaceReader, packageCache)
	workspaceService.SetConcurrency(settings.ConcurrencyOrDefault())
	packagesListService := services.NewPackagesListService(workspaceService, gitService)
	updater := application.NewPackagesListUpdater(
		gitService,
		packagesListService,
		adapterfs.NewChecker(),
		newFormatter(settings),
	)

	return &Container{
		GitService:          gitService,
		PackagesListService: packagesListService,
		WorkspaceService:    workspaceService,
		PackagesListUpdater: updater,
		Settings:            settings,
		cache:               cache,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.cache != nil {
		return c.cache.Close()
	}
	return nil
}

// newFormatter returns the formatter runner, falling back to the settings'
// format command when a config declares none
func newFormatter(settings *config.Settings) ports.Formatter {
	return &defaultFormatter{
		fallback: settings.Format,
		runner:   adapterformatter.NewRunner(),
	}
}

type defaultFormatter struct {
	fallback []string
	runner   *adapterformatter.Runner
}

func (f *defaultFormatter) Format(ctx context.Context, dir string, command []string, file string) error {
	if len(command) == 0 {
		command = f.fallback
	}
	return f.runner.Format(ctx, dir, command, file)
}
