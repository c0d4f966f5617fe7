package application

import (
	"fmt"

	"github.com/monokit-dev/monokit/clirk"
	"github.com/monokit-dev/monokit/schema"
)

// PackagesListCLIOptions configures the monorepo-packages-list program
func PackagesListCLIOptions(pkg *clirk.Package) clirk.Options {
	return clirk.Options{
		Package: pkg,
		ArgsOptions: clirk.ArgsOptions{
			String: schema.StringList{"config"},
			Alias:  map[string]schema.StringList{"config": {"c"}},
		},
		Title: "Monorepo Packages List CLI",
		Icon:  "📋",
		Description: schema.StringList{
			"Generates a list of a monorepo's packages details and injects it to a target file.",
			" ",
			"A target file should contain a HTML comment with the format:",
			"  <!-- PACKAGES --><!-- /PACKAGES -->",
			" ",
			"The output can be customized by providing a configuration file.",
			"See the README.md for more information.",
			" ",
			"The base path for all relative paths and the working directory for subprocesses will be the root path of the monorepo detected from the current working directory.",
		},
		Examples: schema.StringList{"monorepo-packages-list [OPTIONS] [<FILE> ...]"},
		Parameters: []clirk.Entry{
			{
				Name: "FILE",
				Description: schema.StringList{
					"One or more target files to inject the generated content into.",
					`Default: "README.md"`,
				},
			},
		},
		Options: []clirk.Entry{
			{
				Name: "config",
				Description: schema.StringList{
					"A custom path to a YAML, JSON or HCL configuration file.",
					`Defaults to multiple fallbacks: "(monorepo-)?packages-list.config.(yaml|yml|json|hcl)"`,
				},
			},
		},
	}
}

// GitChangesCLIOptions configures the git-changes program
func GitChangesCLIOptions(pkg *clirk.Package) clirk.Options {
	return clirk.Options{
		Package: pkg,
		ArgsOptions: clirk.ArgsOptions{
			Boolean: schema.StringList{"staged", "unstaged", "json"},
			Alias: map[string]schema.StringList{
				"staged":   {"s"},
				"unstaged": {"u"},
			},
		},
		Title: "Git Changes CLI",
		Icon:  "🔀",
		Description: schema.StringList{
			"Lists the uncommitted changes of the git repository containing the current working directory.",
			" ",
			"Each line shows the staged and unstaged status followed by the path relative to the repository root.",
		},
		Examples: schema.StringList{"git-changes [OPTIONS] [<DIR>]"},
		Parameters: []clirk.Entry{
			{
				Name:        "DIR",
				Description: schema.StringList{"A directory inside the repository.", "Default: the current working directory"},
			},
		},
		Options: []clirk.Entry{
			{Name: "staged", Description: schema.StringList{"Only list changes with a staged status."}},
			{Name: "unstaged", Description: schema.StringList{"Only list changes with an unstaged status."}},
			{Name: "json", Description: schema.StringList{"Print the changes as a JSON array."}},
		},
	}
}

// PackagesListArgs are the validated arguments of monorepo-packages-list
type PackagesListArgs struct {
	ConfigFile  string
	TargetFiles []string
}

// ValidatePackagesListArgs takes the first --config value and the positional
// target files. Empty values are rejected.
func ValidatePackagesListArgs(args clirk.Args) (PackagesListArgs, error) {
	result := PackagesListArgs{TargetFiles: []string{}}

	if args.Has("config") {
		result.ConfigFile = args.String("config")
		if err := schema.Var("config", result.ConfigFile, "min=1"); err != nil {
			return PackagesListArgs{}, clirk.UsageError(err.Error(), nil)
		}
	}

	for i, target := range args.Positional {
		if err := schema.Var(fmt.Sprintf("_[%d]", i), target, "min=1"); err != nil {
			return PackagesListArgs{}, clirk.UsageError(err.Error(), nil)
		}
		result.TargetFiles = append(result.TargetFiles, target)
	}
	return result, nil
}
