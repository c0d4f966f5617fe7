package ports

import (
	"context"

	"github.com/monokit-dev/monokit/internal/domain"
)

// WorkspaceReader discovers and reads the workspaces of a monorepo
type WorkspaceReader interface {
	WorkspacePaths(root string) ([]string, error)
	ReadWorkspace(ctx context.Context, root, dir string) (*domain.Workspace, error)
	PackageName(dir string) (string, error)
}
