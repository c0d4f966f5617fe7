package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
)

// WorkspacesCmd lists the monorepo workspaces
type WorkspacesCmd struct {
	Absolute bool   `help:"Print absolute paths" short:"a"`
	Dir      string `help:"Directory inside the monorepo (defaults to the current one)"`
	JSON     bool   `help:"Print the workspaces with their package metadata as JSON"`
}

// Run executes the workspaces command
func (w *WorkspacesCmd) Run(cli *CLI) error {
	root, err := cli.Container.GitService.FindRoot(w.Dir)
	if err != nil {
		return err
	}

	if w.JSON {
		workspaces, err := cli.Container.WorkspaceService.ReadWorkspaces(context.Background(), root)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(workspaces); err != nil {
			return fmt.Errorf("failed to encode workspaces: %w", err)
		}
		return nil
	}

	paths, err := cli.Container.WorkspaceService.WorkspacePaths(root, w.Absolute)
	if err != nil {
		return err
	}
	for _, path := range paths {
		fmt.Println(path)
	}
	return nil
}
