package clirk

import (
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/spf13/pflag"
)

// Args are the parsed command-line arguments. Boolean flags are always
// present; string flags only when given or defaulted.
type Args struct {
	values     map[string]any
	aliases    map[string]string
	Positional []string
}

func (a Args) lookup(name string) (any, bool) {
	if canonical, ok := a.aliases[name]; ok {
		name = canonical
	}
	v, ok := a.values[name]
	return v, ok
}

// Has reports whether the flag has a value
func (a Args) Has(name string) bool {
	_, ok := a.lookup(name)
	return ok
}

// Bool returns the value of a boolean flag
func (a Args) Bool(name string) bool {
	v, _ := a.lookup(name)
	switch b := v.(type) {
	case bool:
		return b
	case string:
		parsed, _ := strconv.ParseBool(b)
		return parsed
	default:
		return false
	}
}

// String returns the first value of a string flag
func (a Args) String(name string) string {
	values := a.Strings(name)
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

// Strings returns every value given for a string flag
func (a Args) Strings(name string) []string {
	v, _ := a.lookup(name)
	switch s := v.(type) {
	case []string:
		return s
	case string:
		return []string{s}
	case nil:
		return nil
	default:
		return []string{fmt.Sprint(s)}
	}
}

// Value returns the raw value (bool, []string or a configured default)
func (a Args) Value(name string) (any, bool) {
	return a.lookup(name)
}

// ParseError is returned when the command line does not match the options
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParseArgs parses argv according to opts
func ParseArgs(program string, argv []string, opts ArgsOptions) (Args, error) {
	fs := pflag.NewFlagSet(program, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	args := Args{values: map[string]any{}, aliases: map[string]string{}}

	bools := map[string]*bool{}
	for _, name := range opts.Boolean {
		if fs.Lookup(name) != nil {
			continue
		}
		def, _ := opts.Default[name].(bool)
		bools[name] = fs.BoolP(name, shorthand(name), def, "")
	}

	strs := map[string]*[]string{}
	for _, name := range opts.String {
		if fs.Lookup(name) != nil {
			continue
		}
		strs[name] = fs.StringArrayP(name, shorthand(name), nil, "")
	}

	for _, name := range sortedKeys(opts.Alias) {
		target := fs.Lookup(name)
		if target == nil {
			// Aliases of undeclared flags bind to a string flag
			strs[name] = fs.StringArrayP(name, shorthand(name), nil, "")
			target = fs.Lookup(name)
		}
		for _, alias := range opts.Alias[name] {
			if owner, ok := args.aliases[alias]; ok && owner == name {
				continue
			}
			if err := registerAlias(fs, target, name, alias); err != nil {
				return Args{}, err
			}
			args.aliases[alias] = name
		}
	}

	if err := fs.Parse(argv); err != nil {
		return Args{}, &ParseError{Err: err}
	}

	for name, v := range opts.Default {
		args.values[name] = v
	}
	for name, v := range bools {
		args.values[name] = *v
	}
	for name, v := range strs {
		if len(*v) > 0 {
			args.values[name] = slices.Clone(*v)
			continue
		}
		if def, ok := opts.Default[name]; ok {
			args.values[name] = def
		}
	}

	args.Positional = fs.Args()
	if args.Positional == nil {
		args.Positional = []string{}
	}
	return args, nil
}

// registerAlias adds alias as another name of target. Single letters also
// work as a shorthand (-v).
func registerAlias(fs *pflag.FlagSet, target *pflag.Flag, name, alias string) error {
	if fs.Lookup(alias) != nil {
		return fmt.Errorf("alias %q of %q is already defined", alias, name)
	}

	short := ""
	if len(alias) == 1 {
		if fs.ShorthandLookup(alias) != nil {
			return fmt.Errorf("alias %q of %q is already defined", alias, name)
		}
		short = alias
	}

	f := fs.VarPF(target.Value, alias, short, "")
	f.NoOptDefVal = target.NoOptDefVal
	f.Hidden = true
	return nil
}

// shorthand makes single-letter flags usable as -x
func shorthand(name string) string {
	if len(name) == 1 {
		return name
	}
	return ""
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
