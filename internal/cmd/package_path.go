package cmd

import (
	"context"
	"fmt"

	"github.com/monokit-dev/monokit/internal/services"
)

// PackagePathCmd prints the directory of a workspace package
type PackagePathCmd struct {
	Name        string `arg:"" help:"Package name as declared in its package.json"`
	Absolute    bool   `help:"Print an absolute path instead of one relative to the monorepo root" short:"a"`
	Concurrency int    `help:"Number of package.json files read in parallel (0 = settings or default)"`
	Dir         string `help:"Directory inside the monorepo (defaults to the current one)"`
	FailOnError bool   `help:"Stop at the first unreadable package.json"`
}

// Run executes the package-path command
func (p *PackagePathCmd) Run(cli *CLI) error {
	root, err := cli.Container.GitService.FindRoot(p.Dir)
	if err != nil {
		return err
	}

	concurrency := p.Concurrency
	if concurrency == 0 {
		concurrency = cli.Container.Settings.ConcurrencyOrDefault()
	}

	path, err := cli.Container.WorkspaceService.PackagePathByName(context.Background(), p.Name, services.PackagePathOptions{
		WorkingDir:  root,
		Absolute:    p.Absolute,
		Concurrency: concurrency,
		FailOnError: p.FailOnError,
	})
	if err != nil {
		return err
	}

	fmt.Println(path)
	return nil
}
