package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/monokit-dev/monokit/clirk"
	"github.com/monokit-dev/monokit/internal/listconfig"
	"github.com/monokit-dev/monokit/internal/services"
)

// InitCmd writes a packages list configuration file at the monorepo root
type InitCmd struct {
	Dir   string `help:"Directory inside the monorepo (defaults to the current one)"`
	Force bool   `help:"Overwrite an existing configuration file" short:"f"`
	Yes   bool   `help:"Skip the prompts and write the default configuration" short:"y"`
}

// initAnswers holds the values collected by the init form
type initAnswers struct {
	Format     string
	Private    string
	Sort       string
	TargetFile string
}

// Run executes the init command
func (i *InitCmd) Run(cli *CLI) error {
	root, err := cli.Container.GitService.FindRoot(i.Dir)
	if err != nil {
		return err
	}

	answers := initAnswers{
		Format:     strings.Join(cli.Container.Settings.Format, " "),
		Private:    services.PrivateInclude,
		Sort:       services.SortByPath,
		TargetFile: listconfig.DefaultTargetFile,
	}

	if !i.Yes {
		if err := newInitForm(&answers).Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return clirk.NewUserError("init aborted", nil)
			}
			return fmt.Errorf("failed to run init form: %w", err)
		}
	}

	path, err := listconfig.Write(root, []listconfig.Config{answers.config()}, i.Force)
	if err != nil {
		if errors.Is(err, listconfig.ErrConfigExists) {
			return clirk.UsageError("configuration file already exists: ./"+listconfig.InitFileName, nil)
		}
		return err
	}

	fmt.Println(clirk.Success("Configuration written. " + clirk.Dim("("+path+")")))
	return nil
}

func (a initAnswers) config() listconfig.Config {
	cfg := listconfig.Config{TargetFile: strings.TrimSpace(a.TargetFile)}
	if format := strings.Fields(a.Format); len(format) > 0 {
		cfg.Format = format
	}
	if a.Sort != services.SortByPath {
		cfg.Sort = a.Sort
	}
	if a.Private != services.PrivateInclude {
		cfg.Filter = &listconfig.Filter{Private: a.Private}
	}
	cfg.ApplyDefaults()
	return cfg
}

func newInitForm(answers *initAnswers) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Target file").
				Description("Markdown file holding the <!-- PACKAGES --> markers").
				Value(&answers.TargetFile).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("target file required")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Sort packages by").
				Options(
					huh.NewOption("Path", services.SortByPath),
					huh.NewOption("Name", services.SortByName),
					huh.NewOption("Path (descending)", services.SortByPathDesc),
					huh.NewOption("Name (descending)", services.SortByNameDesc),
				).
				Value(&answers.Sort),
			huh.NewSelect[string]().
				Title("Private packages").
				Options(
					huh.NewOption("List them", services.PrivateInclude),
					huh.NewOption("Hide them", services.PrivateExclude),
					huh.NewOption("List only them", services.PrivateOnly),
				).
				Value(&answers.Private),
			huh.NewInput().
				Title("Format command (optional)").
				Description("Run on the target file after the update, e.g. prettier --write").
				Value(&answers.Format),
		),
	).WithProgramOptions(tea.WithOutput(os.Stderr))
}
