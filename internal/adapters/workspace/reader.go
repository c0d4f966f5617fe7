package workspace

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/monokit-dev/monokit/internal/domain"
	"github.com/monokit-dev/monokit/internal/logging"
	"github.com/monokit-dev/monokit/internal/pkgjson"
	"github.com/monokit-dev/monokit/internal/ports"
)

const (
	readmeFile    = "README.md"
	changelogFile = "CHANGELOG.md"
)

// FSReader implements ports.WorkspaceReader on the local file system
type FSReader struct{}

// Verify interface compliance at compile time
var _ ports.WorkspaceReader = (*FSReader)(nil)

// NewFSReader creates a new FSReader
func NewFSReader() *FSReader {
	return &FSReader{}
}

// WorkspacePaths implements WorkspaceReader.WorkspacePaths
func (r *FSReader) WorkspacePaths(root string) ([]string, error) {
	return workspacePaths(root)
}

// PackageName implements WorkspaceReader.PackageName
func (r *FSReader) PackageName(dir string) (string, error) {
	manifest, err := pkgjson.Read(dir)
	if err != nil {
		return "", err
	}
	return manifest.Name, nil
}

// ReadWorkspace implements WorkspaceReader.ReadWorkspace
func (r *FSReader) ReadWorkspace(ctx context.Context, root, dir string) (*domain.Workspace, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	manifest, err := pkgjson.Read(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read package.json: %w", err)
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", dir, err)
	}

	ws := &domain.Workspace{
		Name:         manifest.Name,
		Version:      manifest.Version,
		Description:  manifest.Description,
		Homepage:     manifest.Homepage,
		Private:      manifest.Private,
		Title:        manifest.Name,
		FolderName:   filepath.Base(absDir),
		RelativePath: RelativePath(root, absDir),
		AbsolutePath: absDir,
	}

	readme, err := os.ReadFile(filepath.Join(absDir, readmeFile))
	switch {
	case err == nil:
		ws.Readme = true
		if title := readmeTitle(readme); title != "" {
			ws.Title = title
		}
	case !errors.Is(err, os.ErrNotExist):
		logging.Logger.Warn("Failed to read README", "dir", absDir, "error", err)
	}

	if _, err := os.Stat(filepath.Join(absDir, changelogFile)); err == nil {
		ws.Changelog = true
	}

	return ws, nil
}
