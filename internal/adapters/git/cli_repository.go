package git

import (
	"context"

	"github.com/monokit-dev/monokit/internal/ports"
)

// CLIRepository implements ports.GitRepository with go-git for repository
// metadata and the git binary for status
type CLIRepository struct{}

// Verify interface compliance at compile time
var _ ports.GitRepository = (*CLIRepository)(nil)

// NewCLIRepository creates a new CLIRepository
func NewCLIRepository() *CLIRepository {
	return &CLIRepository{}
}

// FindRoot implements RepoInspector.FindRoot
func (r *CLIRepository) FindRoot(dir string) (string, error) {
	return findRoot(dir)
}

// RemoteURL implements RepoInspector.RemoteURL
func (r *CLIRepository) RemoteURL(root string) (string, error) {
	return remoteURL(root)
}

// Status implements StatusReader.Status
func (r *CLIRepository) Status(ctx context.Context, root string) (string, error) {
	return status(ctx, root)
}
