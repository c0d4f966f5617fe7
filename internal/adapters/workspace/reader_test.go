package workspace

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monokit-dev/monokit/internal/domain"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func newMonorepo(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "package.json"), `{"name":"root","private":true,"workspaces":["packages/*","!packages/ignored"]}`)
	writeFile(t, filepath.Join(root, "packages/b/package.json"), `{"name":"@scope/b","version":"2.0.0"}`)
	writeFile(t, filepath.Join(root, "packages/a/package.json"), `{"name":"a","version":"1.0.0","description":"Package A"}`)
	writeFile(t, filepath.Join(root, "packages/a/README.md"), "# The *A* Package\n\nSome text.\n")
	writeFile(t, filepath.Join(root, "packages/a/CHANGELOG.md"), "# Changelog\n")
	writeFile(t, filepath.Join(root, "packages/ignored/package.json"), `{"name":"ignored"}`)
	writeFile(t, filepath.Join(root, "packages/empty/.keep"), "")
	writeFile(t, filepath.Join(root, "packages/a/node_modules/dep/package.json"), `{"name":"dep"}`)
	return root
}

func TestWorkspacePaths(t *testing.T) {
	root := newMonorepo(t)

	paths, err := NewFSReader().WorkspacePaths(root)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "packages/a"),
		filepath.Join(root, "packages/b"),
	}, paths)
}

func TestWorkspacePaths_Pnpm(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "package.json"), `{"name":"root"}`)
	writeFile(t, filepath.Join(root, "pnpm-workspace.yaml"), "packages:\n  - 'apps/**'\n  - tools/cli\n")
	writeFile(t, filepath.Join(root, "apps/web/package.json"), `{"name":"web"}`)
	writeFile(t, filepath.Join(root, "apps/nested/api/package.json"), `{"name":"api"}`)
	writeFile(t, filepath.Join(root, "tools/cli/package.json"), `{"name":"cli"}`)
	writeFile(t, filepath.Join(root, "tools/other/package.json"), `{"name":"other"}`)

	paths, err := NewFSReader().WorkspacePaths(root)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "apps/nested/api"),
		filepath.Join(root, "apps/web"),
		filepath.Join(root, "tools/cli"),
	}, paths)
}

func TestWorkspacePaths_NotConfigured(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "package.json"), `{"name":"root"}`)

	_, err := NewFSReader().WorkspacePaths(root)
	assert.ErrorIs(t, err, domain.ErrWorkspaceNotFound)
}

func TestReadWorkspace(t *testing.T) {
	root := newMonorepo(t)
	reader := NewFSReader()

	t.Run("with readme and changelog", func(t *testing.T) {
		ws, err := reader.ReadWorkspace(context.Background(), root, filepath.Join(root, "packages/a"))
		require.NoError(t, err)
		assert.Equal(t, "a", ws.Name)
		assert.Equal(t, "1.0.0", ws.Version)
		assert.Equal(t, "Package A", ws.Description)
		assert.Equal(t, "The A Package", ws.Title)
		assert.Equal(t, "a", ws.FolderName)
		assert.Equal(t, "packages/a", ws.RelativePath)
		assert.True(t, ws.Readme)
		assert.True(t, ws.Changelog)
	})

	t.Run("title falls back to name", func(t *testing.T) {
		ws, err := reader.ReadWorkspace(context.Background(), root, filepath.Join(root, "packages/b"))
		require.NoError(t, err)
		assert.Equal(t, "@scope/b", ws.Title)
		assert.False(t, ws.Readme)
		assert.False(t, ws.Changelog)
	})

	t.Run("missing package.json", func(t *testing.T) {
		_, err := reader.ReadWorkspace(context.Background(), root, filepath.Join(root, "packages/empty"))
		assert.Error(t, err)
	})
}

func TestPackageName(t *testing.T) {
	root := newMonorepo(t)

	name, err := NewFSReader().PackageName(filepath.Join(root, "packages/b"))
	require.NoError(t, err)
	assert.Equal(t, "@scope/b", name)
}

func TestReadmeTitle(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{name: "atx heading", source: "# Hello\n", want: "Hello"},
		{name: "setext heading", source: "Hello\n=====\n", want: "Hello"},
		{name: "skips code", source: "```\n# not a title\n```\n\n## Real\n", want: "Real"},
		{name: "inline markup", source: "# Use `code` and **bold**\n", want: "Use code and bold"},
		{name: "no heading", source: "plain text\n", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, readmeTitle([]byte(tt.source)))
		})
	}
}
