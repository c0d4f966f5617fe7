// Package clirk sets up a command-line program: it validates the program's
// option definitions, parses arguments, resolves package metadata and takes
// care of --help, --version and SIGINT.
package clirk

import (
	"io"
	"maps"
	"os"
	"slices"

	"github.com/monokit-dev/monokit/schema"
)

// Default labels and messages
const (
	DefaultUsageLabel      = "USAGE"
	DefaultParametersLabel = "PARAMETERS"
	DefaultOptionsLabel    = "OPTIONS"
)

// ArgsOptions configures how arguments are parsed
type ArgsOptions struct {
	String  schema.StringList            `json:"string" validate:"dive,min=1"`
	Boolean schema.StringList            `json:"boolean" validate:"dive,min=1"`
	Alias   map[string]schema.StringList `json:"alias" validate:"dive,keys,min=1,endkeys,dive,min=1"`
	Default map[string]any               `json:"default"`
}

// Entry is a named block of description lines (a parameter or an option)
type Entry struct {
	Name        string            `json:"name" validate:"required"`
	Description schema.StringList `json:"description" validate:"dive,min=1"`
}

// SigintHandler is called when the process receives SIGINT
type SigintHandler func(ctx *Context) error

// Options describes a command-line program
type Options struct {
	// Dir is where the program's package.json is looked up from. Ignored when
	// Package is set.
	Dir     string   `json:"dir"`
	Package *Package `json:"-"`

	ArgsOptions ArgsOptions `json:"argsOptions"`

	Title       string            `json:"title" validate:"required"`
	Name        string            `json:"name"`
	Icon        string            `json:"icon"`
	Description schema.StringList `json:"description" validate:"dive,min=1"`
	Examples    schema.StringList `json:"examples" validate:"dive,min=1"`
	Usage       schema.StringList `json:"usage" validate:"dive,min=1"`

	UsageLabel      string  `json:"usageLabel" validate:"required"`
	Parameters      []Entry `json:"parameters" validate:"dive"`
	ParametersLabel string  `json:"parametersLabel" validate:"required"`
	Options         []Entry `json:"options" validate:"dive"`
	OptionsLabel    string  `json:"optionsLabel" validate:"required"`

	SigintHandler SigintHandler `json:"-"`
	DisableSigint bool          `json:"-"`
	SigintMessage string        `json:"sigintMessage" validate:"required"`

	// Args defaults to os.Args[1:], Program to os.Args[0]
	Args    []string  `json:"-"`
	Program string    `json:"-"`
	Stdout  io.Writer `json:"-"`
	Exit    func(int) `json:"-"`
	Styles  *Styles   `json:"-"`
}

// ApplyDefaults fills every unset field
func (o *Options) ApplyDefaults() {
	if o.UsageLabel == "" {
		o.UsageLabel = DefaultUsageLabel
	}
	if o.ParametersLabel == "" {
		o.ParametersLabel = DefaultParametersLabel
	}
	if o.OptionsLabel == "" {
		o.OptionsLabel = DefaultOptionsLabel
	}
	if o.SigintMessage == "" {
		o.SigintMessage = Terminated("Received SIGINT")
	}
	if o.SigintHandler == nil && !o.DisableSigint {
		o.SigintHandler = DefaultSigintHandler
	}
	if o.Args == nil {
		if len(os.Args) > 1 {
			o.Args = os.Args[1:]
		} else {
			o.Args = []string{}
		}
	}
	if o.Program == "" && len(os.Args) > 0 {
		o.Program = os.Args[0]
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Exit == nil {
		o.Exit = os.Exit
	}
	if o.Styles == nil {
		styles := DefaultStyles()
		o.Styles = &styles
	}
	if o.ArgsOptions.Alias == nil {
		o.ArgsOptions.Alias = map[string]schema.StringList{}
	}
	if o.ArgsOptions.Default == nil {
		o.ArgsOptions.Default = map[string]any{}
	}
}

// ValidateOptions returns a defaulted copy of opts, or a *schema.ValidationError
func ValidateOptions(opts Options) (*Options, error) {
	parsed := opts.clone()
	if err := schema.Parse(parsed); err != nil {
		return nil, err
	}
	return parsed, nil
}

// findEntry looks up an entry by name
func findEntry(entries []Entry, name string) (Entry, bool) {
	for _, e := range entries {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

func (o Options) clone() *Options {
	c := o
	c.ArgsOptions.String = slices.Clone(o.ArgsOptions.String)
	c.ArgsOptions.Boolean = slices.Clone(o.ArgsOptions.Boolean)
	if o.ArgsOptions.Alias != nil {
		c.ArgsOptions.Alias = make(map[string]schema.StringList, len(o.ArgsOptions.Alias))
		for k, v := range o.ArgsOptions.Alias {
			c.ArgsOptions.Alias[k] = slices.Clone(v)
		}
	}
	c.ArgsOptions.Default = maps.Clone(o.ArgsOptions.Default)
	c.Description = slices.Clone(o.Description)
	c.Examples = slices.Clone(o.Examples)
	c.Usage = slices.Clone(o.Usage)
	c.Parameters = slices.Clone(o.Parameters)
	c.Options = slices.Clone(o.Options)
	c.Args = slices.Clone(o.Args)
	return &c
}
