package clirk

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"runtime/debug"
	"strings"
	"sync"

	"github.com/monokit-dev/monokit/internal/pkgjson"
)

// OptionType is the value type of an option
type OptionType string

const (
	OptionBoolean OptionType = "boolean"
	OptionString  OptionType = "string"
)

// Package is the metadata of the program's own package
type Package struct {
	Path        string
	Name        string
	Version     string
	Description string
	Homepage    string
	// Bin is the name of the first declared executable, if any
	Bin string
}

// Parameter is a documented positional argument
type Parameter struct {
	Name        string
	Description []string
}

// Option is a documented flag
type Option struct {
	Name        string
	Description []string
	Aliases     []string
	Type        OptionType
}

// Context is the resolved runtime state of a program
type Context struct {
	Package     Package
	Args        Args
	ArgsOptions ArgsOptions

	Title       string
	Name        string
	CommandName string
	Icon        string
	Description []string
	Examples    []string
	Usage       []string

	UsageLabel      string
	Parameters      []Parameter
	ParametersLabel string
	Options         []Option
	OptionsLabel    string

	SigintHandler SigintHandler
	SigintMessage string

	stdout io.Writer
	exit   func(int)
	styles Styles

	stopOnce sync.Once
	stop     func()
}

// NewContext resolves package metadata, parses the arguments and builds the
// parameter and option lookups
func NewContext(opts *Options) (*Context, error) {
	pkg, err := resolvePackage(opts)
	if err != nil {
		return nil, err
	}

	description := []string(opts.Description)
	if len(description) == 0 && pkg.Description != "" {
		description = []string{pkg.Description}
	}

	commandName := filepath.Base(opts.Program)

	parameters := make([]Parameter, 0, len(opts.Parameters))
	for _, p := range opts.Parameters {
		parameters = append(parameters, Parameter{Name: p.Name, Description: p.Description})
	}

	options, err := buildOptions(opts.ArgsOptions, opts.Options)
	if err != nil {
		return nil, err
	}

	name := opts.Name
	if name == "" {
		name = pkg.Bin
	}
	if name == "" {
		name = commandName
	}

	examples := []string(opts.Examples)
	if len(examples) == 0 {
		examples = []string{defaultExample(name, parameters)}
	}

	args, err := ParseArgs(commandName, opts.Args, opts.ArgsOptions)
	if err != nil {
		return nil, err
	}

	styles := PlainStyles()
	if opts.Styles != nil {
		styles = *opts.Styles
	}

	return &Context{
		Package:         pkg,
		Args:            args,
		ArgsOptions:     opts.ArgsOptions,
		Title:           opts.Title,
		Name:            name,
		CommandName:     commandName,
		Icon:            opts.Icon,
		Description:     description,
		Examples:        examples,
		Usage:           opts.Usage,
		UsageLabel:      opts.UsageLabel,
		Parameters:      parameters,
		ParametersLabel: opts.ParametersLabel,
		Options:         options,
		OptionsLabel:    opts.OptionsLabel,
		SigintHandler:   opts.SigintHandler,
		SigintMessage:   opts.SigintMessage,
		stdout:          opts.Stdout,
		exit:            opts.Exit,
		styles:          styles,
	}, nil
}

// Stdout is where the program writes its messages
func (c *Context) Stdout() io.Writer {
	return c.stdout
}

// Exit terminates the program with code
func (c *Context) Exit(code int) {
	c.Stop()
	c.exit(code)
}

// Stop detaches the SIGINT handler, if one was installed
func (c *Context) Stop() {
	c.stopOnce.Do(func() {
		if c.stop != nil {
			c.stop()
		}
	})
}

func defaultExample(name string, parameters []Parameter) string {
	example := name + " [OPTIONS]"
	if len(parameters) == 0 {
		return example
	}
	names := make([]string, 0, len(parameters))
	for _, p := range parameters {
		names = append(names, p.Name)
	}
	return example + " <" + strings.Join(names, "> <") + ">"
}

func buildOptions(argsOptions ArgsOptions, entries []Entry) ([]Option, error) {
	options := make([]Option, 0, len(entries))
	for _, e := range entries {
		var typ OptionType
		switch {
		case argsOptions.Boolean.Contains(e.Name):
			typ = OptionBoolean
		case argsOptions.String.Contains(e.Name):
			typ = OptionString
		default:
			return nil, fmt.Errorf("option not configured: %q", e.Name)
		}

		options = append(options, Option{
			Name:        e.Name,
			Description: e.Description,
			Aliases:     uniqueStrings(argsOptions.Alias[e.Name]),
			Type:        typ,
		})
	}
	return options, nil
}

func uniqueStrings(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

// resolvePackage uses the explicit package, then the closest package.json
// from Dir, then the Go build info of the running binary
func resolvePackage(opts *Options) (Package, error) {
	if opts.Package != nil {
		return *opts.Package, nil
	}

	if opts.Dir != "" {
		manifest, dir, err := pkgjson.FindUp(opts.Dir)
		if err != nil {
			if errors.Is(err, pkgjson.ErrNotFound) {
				return Package{}, fmt.Errorf("could not find package for path: %s", opts.Dir)
			}
			return Package{}, fmt.Errorf("failed to read package for path %s: %w", opts.Dir, err)
		}
		return Package{
			Path:        dir,
			Name:        manifest.Name,
			Version:     manifest.Version,
			Description: manifest.Description,
			Homepage:    manifest.Homepage,
			Bin:         manifest.FirstBin(),
		}, nil
	}

	info, ok := debug.ReadBuildInfo()
	if !ok || info.Main.Path == "" {
		return Package{}, fmt.Errorf("could not find package for path: %s", opts.Dir)
	}

	version := strings.TrimPrefix(info.Main.Version, "v")
	if version == "" || version == "(devel)" {
		version = "0.0.0-dev"
	}
	return Package{
		Path:    info.Main.Path,
		Name:    filepath.Base(info.Main.Path),
		Version: version,
	}, nil
}
