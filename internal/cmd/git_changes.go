package cmd

import (
	"context"
	"os"

	"github.com/monokit-dev/monokit/internal/application"
	"github.com/monokit-dev/monokit/internal/services"
)

// GitChangesCmd lists uncommitted changes
type GitChangesCmd struct {
	Dir      string `arg:"" optional:"" help:"Directory inside the repository (defaults to the current one)"`
	JSON     bool   `help:"Print the changes as JSON"`
	Staged   bool   `help:"Only staged changes" short:"s"`
	Unstaged bool   `help:"Only unstaged changes" short:"u"`
}

// Run executes the git-changes command
func (g *GitChangesCmd) Run(cli *CLI) error {
	return application.ListGitChanges(context.Background(), cli.Container.GitService, application.ChangesRequest{
		Dir: g.Dir,
		Filter: services.ChangeFilter{
			Staged:   g.Staged,
			Unstaged: g.Unstaged,
		},
		JSON: g.JSON,
		Out:  os.Stdout,
	})
}
