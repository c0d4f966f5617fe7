package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/monokit-dev/monokit/internal/domain"
	portsmocks "github.com/monokit-dev/monokit/internal/ports/mocks"
)

func TestGetChanges(t *testing.T) {
	gitRepo := portsmocks.NewMockGitRepository(t)
	gitRepo.EXPECT().FindRoot("/cwd/foo/bar").Return("/cwd", nil)
	gitRepo.EXPECT().Status(mock.Anything, "/cwd").Return("?? new.ts\x00M  changed.ts\x00", nil)

	service := NewGitService(gitRepo)

	changes, err := service.GetChanges(context.Background(), "/cwd/foo/bar")

	require.NoError(t, err)
	assert.Equal(t, map[string]domain.GitChange{
		"new.ts":     {Path: "new.ts", Unstaged: domain.StatusUntracked},
		"changed.ts": {Path: "changed.ts", Staged: domain.StatusModified},
	}, changes)
}

func TestGetChanges_NotARepository(t *testing.T) {
	gitRepo := portsmocks.NewMockGitRepository(t)
	gitRepo.EXPECT().FindRoot("/not/a/repo").Return("", domain.ErrNotGitRepository)

	service := NewGitService(gitRepo)

	_, err := service.GetChanges(context.Background(), "/not/a/repo")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotGitRepository)
	assert.EqualError(t, err, `the directory "/not/a/repo" is not part of a git repository`)
}

func TestGetChanges_StatusFails(t *testing.T) {
	gitRepo := portsmocks.NewMockGitRepository(t)
	gitRepo.EXPECT().FindRoot("/cwd").Return("/cwd", nil)
	gitRepo.EXPECT().Status(mock.Anything, "/cwd").Return("", errors.New("git error"))

	service := NewGitService(gitRepo)

	_, err := service.GetChanges(context.Background(), "/cwd")

	assert.EqualError(t, err, "failed to get git changes: git error")
}

func TestRemoteURL_ErrorIsIgnored(t *testing.T) {
	gitRepo := portsmocks.NewMockGitRepository(t)
	gitRepo.EXPECT().RemoteURL("/repo").Return("", errors.New("broken config"))

	service := NewGitService(gitRepo)

	assert.Empty(t, service.RemoteURL("/repo"))
}

func TestListChanges(t *testing.T) {
	changes := map[string]domain.GitChange{
		"b.ts": {Path: "b.ts", Staged: domain.StatusModified},
		"a.ts": {Path: "a.ts", Unstaged: domain.StatusUntracked},
		"c.ts": {Path: "c.ts", Staged: domain.StatusAdded, Unstaged: domain.StatusModified},
	}

	tests := []struct {
		name     string
		filter   ChangeFilter
		expected []string
	}{
		{"all", ChangeFilter{}, []string{"a.ts", "b.ts", "c.ts"}},
		{"staged", ChangeFilter{Staged: true}, []string{"b.ts", "c.ts"}},
		{"unstaged", ChangeFilter{Unstaged: true}, []string{"a.ts", "c.ts"}},
		{"both", ChangeFilter{Staged: true, Unstaged: true}, []string{"a.ts", "b.ts", "c.ts"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := ListChanges(changes, tt.filter)

			paths := make([]string, 0, len(list))
			for _, c := range list {
				paths = append(paths, c.Path)
			}
			assert.Equal(t, tt.expected, paths)
		})
	}
}
