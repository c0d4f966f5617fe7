package services

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/monokit-dev/monokit/internal/domain"
	portsmocks "github.com/monokit-dev/monokit/internal/ports/mocks"
)

var testWorkspacePaths = []string{"/repo/packages/a", "/repo/packages/b", "/repo/packages/c"}

func TestWorkspacePaths_Relative(t *testing.T) {
	reader := portsmocks.NewMockWorkspaceReader(t)
	reader.EXPECT().WorkspacePaths("/repo").Return(testWorkspacePaths, nil)

	paths, err := NewWorkspaceService(reader, nil).WorkspacePaths("/repo", false)
	require.NoError(t, err)
	assert.Equal(t, []string{"packages/a", "packages/b", "packages/c"}, paths)
}

func TestReadWorkspaces(t *testing.T) {
	reader := portsmocks.NewMockWorkspaceReader(t)
	reader.EXPECT().WorkspacePaths("/repo").Return(testWorkspacePaths, nil)
	for _, p := range testWorkspacePaths {
		reader.EXPECT().ReadWorkspace(mock.Anything, "/repo", p).
			Return(&domain.Workspace{Name: p, AbsolutePath: p}, nil)
	}

	workspaces, err := NewWorkspaceService(reader, nil).ReadWorkspaces(context.Background(), "/repo")
	require.NoError(t, err)
	require.Len(t, workspaces, 3)
	for i, p := range testWorkspacePaths {
		assert.Equal(t, p, workspaces[i].Name)
	}
}

func TestReadWorkspaces_Concurrency(t *testing.T) {
	tests := []struct {
		name        string
		concurrency int
		maxInFlight int32
	}{
		{"sequential", 1, 1},
		{"below one falls back to the default", 0, int32(len(testWorkspacePaths))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var inFlight, maxSeen atomic.Int32
			var once sync.Once
			release := make(chan struct{})

			reader := portsmocks.NewMockWorkspaceReader(t)
			reader.EXPECT().WorkspacePaths("/repo").Return(testWorkspacePaths, nil)
			reader.EXPECT().ReadWorkspace(mock.Anything, "/repo", mock.Anything).
				RunAndReturn(func(_ context.Context, _, dir string) (*domain.Workspace, error) {
					n := inFlight.Add(1)
					for {
						seen := maxSeen.Load()
						if n <= seen || maxSeen.CompareAndSwap(seen, n) {
							break
						}
					}
					if n == tt.maxInFlight {
						once.Do(func() { close(release) })
					}
					select {
					case <-release:
					case <-time.After(time.Second):
					}
					inFlight.Add(-1)
					return &domain.Workspace{Name: dir}, nil
				}).Times(len(testWorkspacePaths))

			service := NewWorkspaceService(reader, nil)
			service.SetConcurrency(tt.concurrency)

			workspaces, err := service.ReadWorkspaces(context.Background(), "/repo")

			require.NoError(t, err)
			assert.Len(t, workspaces, len(testWorkspacePaths))
			assert.Equal(t, tt.maxInFlight, maxSeen.Load())
		})
	}
}

func TestReadWorkspaces_Error(t *testing.T) {
	reader := portsmocks.NewMockWorkspaceReader(t)
	reader.EXPECT().WorkspacePaths("/repo").Return([]string{"/repo/packages/a"}, nil)
	reader.EXPECT().ReadWorkspace(mock.Anything, "/repo", "/repo/packages/a").
		Return(nil, errors.New("boom"))

	_, err := NewWorkspaceService(reader, nil).ReadWorkspaces(context.Background(), "/repo")
	assert.EqualError(t, err, "failed to read workspace packages/a: boom")
}

func TestPackagePathByName(t *testing.T) {
	tests := []struct {
		name     string
		opts     PackagePathOptions
		setup    func(reader *portsmocks.MockWorkspaceReader)
		expected string
		errMsg   string
	}{
		{
			name: "relative path",
			opts: PackagePathOptions{WorkingDir: "/repo", Concurrency: 1},
			setup: func(reader *portsmocks.MockWorkspaceReader) {
				reader.EXPECT().WorkspacePaths("/repo").Return(testWorkspacePaths, nil)
				reader.EXPECT().PackageName("/repo/packages/a").Return("a", nil)
				reader.EXPECT().PackageName("/repo/packages/b").Return("target", nil)
			},
			expected: "packages/b",
		},
		{
			name: "absolute path",
			opts: PackagePathOptions{WorkingDir: "/repo", Absolute: true, Concurrency: 1},
			setup: func(reader *portsmocks.MockWorkspaceReader) {
				reader.EXPECT().WorkspacePaths("/repo").Return(testWorkspacePaths, nil)
				reader.EXPECT().PackageName("/repo/packages/a").Return("target", nil)
			},
			expected: "/repo/packages/a",
		},
		{
			name: "not found",
			opts: PackagePathOptions{WorkingDir: "/repo"},
			setup: func(reader *portsmocks.MockWorkspaceReader) {
				reader.EXPECT().WorkspacePaths("/repo").Return(testWorkspacePaths, nil)
				reader.EXPECT().PackageName(mock.Anything).Return("other", nil)
			},
			errMsg: `package "target" not found in workspaces`,
		},
		{
			name: "read errors are ignored by default",
			opts: PackagePathOptions{WorkingDir: "/repo", Concurrency: 1},
			setup: func(reader *portsmocks.MockWorkspaceReader) {
				reader.EXPECT().WorkspacePaths("/repo").Return(testWorkspacePaths, nil)
				reader.EXPECT().PackageName("/repo/packages/a").Return("", errors.New("bad json"))
				reader.EXPECT().PackageName("/repo/packages/b").Return("target", nil)
			},
			expected: "packages/b",
		},
		{
			name: "read errors fail with FailOnError",
			opts: PackagePathOptions{WorkingDir: "/repo", Concurrency: 1, FailOnError: true},
			setup: func(reader *portsmocks.MockWorkspaceReader) {
				reader.EXPECT().WorkspacePaths("/repo").Return(testWorkspacePaths, nil)
				reader.EXPECT().PackageName("/repo/packages/a").Return("", errors.New("bad json"))
			},
			errMsg: "failed to read package.json files: packages/a (bad json)",
		},
		{
			name: "invalid concurrency",
			opts: PackagePathOptions{WorkingDir: "/repo", Concurrency: -1},
			setup: func(reader *portsmocks.MockWorkspaceReader) {},
			errMsg: `Validation error: Expected a number greater than or equal to 1 at "concurrency"`,
		},
		{
			name: "missing working dir",
			opts: PackagePathOptions{},
			setup: func(reader *portsmocks.MockWorkspaceReader) {},
			errMsg: `Validation error: Expected a non-empty string at "workingDir"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := portsmocks.NewMockWorkspaceReader(t)
			tt.setup(reader)

			path, err := NewWorkspaceService(reader, nil).PackagePathByName(context.Background(), "target", tt.opts)

			if tt.errMsg != "" {
				assert.EqualError(t, err, tt.errMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, path)
		})
	}
}

func TestPackagePathByName_NotFoundIsSentinel(t *testing.T) {
	reader := portsmocks.NewMockWorkspaceReader(t)
	reader.EXPECT().WorkspacePaths("/repo").Return(nil, nil)

	_, err := NewWorkspaceService(reader, nil).PackagePathByName(context.Background(), "x", PackagePathOptions{WorkingDir: "/repo"})
	assert.ErrorIs(t, err, domain.ErrPackageNotFound)
}

func TestPackagePathByName_Cache(t *testing.T) {
	ctx := context.Background()

	t.Run("verified hit skips the scan", func(t *testing.T) {
		reader := portsmocks.NewMockWorkspaceReader(t)
		cache := portsmocks.NewMockPackageCache(t)
		cache.EXPECT().Lookup(mock.Anything, "/repo", "target").Return("packages/c", nil)
		reader.EXPECT().PackageName("/repo/packages/c").Return("target", nil)

		path, err := NewWorkspaceService(reader, cache).PackagePathByName(ctx, "target", PackagePathOptions{WorkingDir: "/repo"})
		require.NoError(t, err)
		assert.Equal(t, "packages/c", path)
	})

	t.Run("stale entry is replaced", func(t *testing.T) {
		reader := portsmocks.NewMockWorkspaceReader(t)
		cache := portsmocks.NewMockPackageCache(t)
		cache.EXPECT().Lookup(mock.Anything, "/repo", "target").Return("packages/old", nil)
		reader.EXPECT().PackageName("/repo/packages/old").Return("", errors.New("missing"))
		cache.EXPECT().Delete(mock.Anything, "/repo", "target").Return(nil)
		reader.EXPECT().WorkspacePaths("/repo").Return(testWorkspacePaths, nil)
		reader.EXPECT().PackageName("/repo/packages/a").Return("target", nil)
		cache.EXPECT().Store(mock.Anything, "/repo", "target", "packages/a").Return(nil)

		path, err := NewWorkspaceService(reader, cache).PackagePathByName(ctx, "target", PackagePathOptions{WorkingDir: "/repo", Concurrency: 1})
		require.NoError(t, err)
		assert.Equal(t, "packages/a", path)
	})

	t.Run("miss stores the result", func(t *testing.T) {
		reader := portsmocks.NewMockWorkspaceReader(t)
		cache := portsmocks.NewMockPackageCache(t)
		cache.EXPECT().Lookup(mock.Anything, "/repo", "target").Return("", domain.ErrCacheMiss)
		reader.EXPECT().WorkspacePaths("/repo").Return(testWorkspacePaths, nil)
		reader.EXPECT().PackageName("/repo/packages/a").Return("target", nil)
		cache.EXPECT().Store(mock.Anything, "/repo", "target", "packages/a").Return(errors.New("disk full"))

		path, err := NewWorkspaceService(reader, cache).PackagePathByName(ctx, "target", PackagePathOptions{WorkingDir: "/repo", Concurrency: 1})
		require.NoError(t, err)
		assert.Equal(t, "packages/a", path)
	})
}

func TestClearCache(t *testing.T) {
	cache := portsmocks.NewMockPackageCache(t)
	cache.EXPECT().Clear(mock.Anything).Return(int64(4), nil)

	removed, err := NewWorkspaceService(nil, cache).ClearCache(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(4), removed)

	removed, err = NewWorkspaceService(nil, nil).ClearCache(context.Background())
	require.NoError(t, err)
	assert.Zero(t, removed)
}
