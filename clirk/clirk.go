package clirk

import (
	"errors"
	"fmt"

	"github.com/monokit-dev/monokit/internal/logging"
)

// ErrExited is returned by Run after --help or --version was handled and
// Exit(0) was called
var ErrExited = errors.New("program exited")

// Run validates opts, injects --help and --version unless the program
// declares them itself, builds the context, installs the SIGINT handler and
// answers --help/--version.
func Run(opts Options) (*Context, error) {
	parsed, err := ValidateOptions(opts)
	if err != nil {
		return nil, err
	}

	helpHandledByUser := parsed.ArgsOptions.Boolean.Contains("help")
	versionHandledByUser := parsed.ArgsOptions.Boolean.Contains("version")

	AddFlags(parsed, Flags{
		Help:    !helpHandledByUser,
		Version: !versionHandledByUser,
	})

	ctx, err := NewContext(parsed)
	if err != nil {
		var parseErr *ParseError
		if errors.As(err, &parseErr) {
			return nil, UsageError(err.Error(), nil)
		}
		return nil, err
	}

	logging.Logger.Debug("CLI context created",
		"name", ctx.Name,
		"command", ctx.CommandName,
		"positional", ctx.Args.Positional)

	if ctx.SigintHandler != nil && !parsed.DisableSigint {
		ctx.applySigintHandler()
	}

	if !helpHandledByUser && ctx.Args.Bool("help") {
		fmt.Fprintln(ctx.stdout, ctx.HelpMessage())
		ctx.Exit(0)
		return ctx, ErrExited
	}

	if !versionHandledByUser && ctx.Args.Bool("version") {
		fmt.Fprintln(ctx.stdout, ctx.VersionMessage())
		ctx.Exit(0)
		return ctx, ErrExited
	}

	return ctx, nil
}
