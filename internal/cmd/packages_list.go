package cmd

import (
	"context"
	"os"

	"github.com/monokit-dev/monokit/internal/application"
)

// PackagesListCmd injects the packages list into target files
type PackagesListCmd struct {
	Config string   `help:"Config file path, relative to the monorepo root" short:"c"`
	Files  []string `arg:"" optional:"" help:"Target files overriding the configured ones, in config order"`
}

// Run executes the packages-list command
func (p *PackagesListCmd) Run(cli *CLI) error {
	return cli.Container.PackagesListUpdater.Update(context.Background(), application.UpdateRequest{
		ConfigFile:  p.Config,
		TargetFiles: p.Files,
		Out:         os.Stdout,
	})
}
