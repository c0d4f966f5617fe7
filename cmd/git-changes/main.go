package main

import (
	"context"

	"github.com/monokit-dev/monokit/clirk"
	adaptergit "github.com/monokit-dev/monokit/internal/adapters/git"
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

		c, err := clirk.Run(application.GitChangesCLIOptions(&clirk.Package{
			Name:    "git-changes",
			Version: version.Version,
			Bin:     "git-changes",
		}))
		if err != nil {
			return err
		}
		defer c.Stop()

		dir := ""
		if dirs := c.Args.Positional; len(dirs) > 0 {
			dir = dirs[0]
		}

		return application.ListGitChanges(ctx, services.NewGitService(adaptergit.NewCLIRepository()), application.ChangesRequest{
			Dir: dir,
			Filter: services.ChangeFilter{
				Staged:   c.Args.Bool("staged"),
				Unstaged: c.Args.Bool("unstaged"),
			},
			JSON: c.Args.Bool("json"),
			Out:  c.Stdout(),
		})
	})
}
