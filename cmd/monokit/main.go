package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/monokit-dev/monokit/clirk"
	"github.com/monokit-dev/monokit/internal/cmd"
	"github.com/monokit-dev/monokit/internal/config"
	"github.com/monokit-dev/monokit/version"
)

func main() {
	// Load settings from ~/.monokit/settings.json
	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintln(os.Stderr, clirk.Warning(fmt.Sprintf("failed to load settings: %v", err)))
		settings = &config.Settings{}
	}

	// Container is created in CLI.AfterApply() after logging is initialized
	var cli cmd.CLI
	cli.SetSettings(settings)
	kctx := kong.Parse(&cli,
		kong.Name("monokit"),
		kong.Description(version.Tagline),
		kong.Vars{
			"version": version.Info(),
		},
		kong.UsageOnError(),
		kong.Bind(&cli),
	)

	code := clirk.Clitch(context.Background(), os.Stderr, func(context.Context) error {
		defer cli.Close()
		return kctx.Run()
	})
	os.Exit(code)
}
