package cmd

import (
	"context"
	"fmt"
)

// CacheCmd manages the package location cache
type CacheCmd struct {
	Clear CacheClearCmd `cmd:"clear" help:"Remove every cached package location"`
}

// CacheClearCmd empties the cache
type CacheClearCmd struct{}

// Run executes the cache clear command
func (c *CacheClearCmd) Run(cli *CLI) error {
	removed, err := cli.Container.WorkspaceService.ClearCache(context.Background())
	if err != nil {
		return err
	}
	fmt.Printf("Removed %d cached package locations\n", removed)
	return nil
}
