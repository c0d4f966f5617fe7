package clirk

import "github.com/monokit-dev/monokit/schema"

// Flags selects the built-in flags to inject
type Flags struct {
	Help    bool
	Version bool
}

var flagDescriptions = map[string]string{
	"help":    "Display this help message.",
	"version": "Display the package name and version.",
}

// AddFlags injects the selected built-in flags into opts in place: each one
// becomes a boolean, gets its first letter as alias unless another option
// already uses that letter, and is documented unless the caller already
// documented an option of the same name.
func AddFlags(opts *Options, flags Flags) {
	for _, flag := range []struct {
		name    string
		enabled bool
	}{
		{"help", flags.Help},
		{"version", flags.Version},
	} {
		if !flag.enabled {
			continue
		}

		if !opts.ArgsOptions.Boolean.Contains(flag.name) {
			opts.ArgsOptions.Boolean = append(opts.ArgsOptions.Boolean, flag.name)
		}
		if opts.ArgsOptions.Alias == nil {
			opts.ArgsOptions.Alias = map[string]schema.StringList{}
		}
		if short := flag.name[:1]; !aliasClaimed(opts.ArgsOptions, flag.name, short) {
			opts.ArgsOptions.Alias[flag.name] = append(opts.ArgsOptions.Alias[flag.name], short)
		}

		if _, ok := findEntry(opts.Options, flag.name); !ok {
			opts.Options = append(opts.Options, Entry{
				Name:        flag.name,
				Description: []string{flagDescriptions[flag.name]},
			})
		}
	}
}

// aliasClaimed reports whether a flag other than owner is named alias or
// declares it as one of its aliases
func aliasClaimed(opts ArgsOptions, owner, alias string) bool {
	if opts.Boolean.Contains(alias) || opts.String.Contains(alias) {
		return true
	}
	for name, aliases := range opts.Alias {
		if name != owner && (name == alias || aliases.Contains(alias)) {
			return true
		}
	}
	return false
}
