package main

import (
	"context"

	"github.com/monokit-dev/monokit/clirk"
	"github.com/monokit-dev/monokit/internal/adapters/formatter"
	"github.com/monokit-dev/monokit/internal/adapters/fsaccess"
	adaptergit "github.com/monokit-dev/monokit/internal/adapters/git"
	"github.com/monokit-dev/monokit/internal/adapters/workspace"
	"github.com/monokit-dev/monokit/internal/application"
	"github.com/monokit-dev/monokit/internal/logging"
	"github.com/monokit-dev/monokit/internal/services"
	"github.com/monokit-dev/monokit/version"
)

func main() {
	clirk.Main(func(ctx context.Context) error {
		// MONOKIT_DEBUG and MONOKIT_DEBUG_FILE turn logging on
		if _, err := logging.Initialize(false, "", logging.DefaultMaxLogFiles); err != nil {
			return err
		}

		c, err := clirk.Run(application.PackagesListCLIOptions(&clirk.Package{
			Name:    "monorepo-packages-list",
			Version: version.Version,
			Bin:     "monorepo-packages-list",
		}))
		if err != nil {
			return err
		}
		defer c.Stop()

		args, err := application.ValidatePackagesListArgs(c.Args)
		if err != nil {
			return err
		}

		gitService := services.NewGitService(adaptergit.NewCLIRepository())
		workspaceService := services.NewWorkspaceService(workspace.NewFSReader(), nil)
		updater := application.NewPackagesListUpdater(
			gitService,
			services.NewPackagesListService(workspaceService, gitService),
			fsaccess.NewChecker(),
			formatter.NewRunner(),
		)

		return updater.Update(ctx, application.UpdateRequest{
			ConfigFile:  args.ConfigFile,
			TargetFiles: args.TargetFiles,
			Out:         c.Stdout(),
		})
	})
}
