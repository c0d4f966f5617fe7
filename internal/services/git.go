package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/monokit-dev/monokit/internal/domain"
	"github.com/monokit-dev/monokit/internal/logging"
	"github.com/monokit-dev/monokit/internal/ports"
)

// GitService reads repository information and uncommitted changes
type GitService struct {
	gitRepo ports.GitRepository
}

// NewGitService creates a new GitService
func NewGitService(gitRepo ports.GitRepository) *GitService {
	return &GitService{
		gitRepo: gitRepo,
	}
}

// FindRoot returns the repository root containing dir (defaults to the
// working directory)
func (s *GitService) FindRoot(dir string) (string, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get working directory: %w", err)
		}
		dir = wd
	}

	root, err := s.gitRepo.FindRoot(dir)
	if err != nil {
		if errors.Is(err, domain.ErrNotGitRepository) {
			return "", fmt.Errorf("the directory %q is %w", dir, domain.ErrNotGitRepository)
		}
		return "", err
	}
	return root, nil
}

// RemoteURL returns the web URL of the origin remote, or "" if unknown
func (s *GitService) RemoteURL(root string) string {
	url, err := s.gitRepo.RemoteURL(root)
	if err != nil {
		logging.Logger.Warn("Failed to read remote URL", "root", root, "error", err)
		return ""
	}
	return url
}

// GetChanges returns the uncommitted changes of the repository containing
// dir, keyed by path relative to the repository root
func (s *GitService) GetChanges(ctx context.Context, dir string) (map[string]domain.GitChange, error) {
	root, err := s.FindRoot(dir)
	if err != nil {
		return nil, err
	}

	output, err := s.gitRepo.Status(ctx, root)
	if err != nil {
		return nil, fmt.Errorf("failed to get git changes: %w", err)
	}

	changes := domain.ParseGitStatusOutput(output)
	logging.Logger.Debug("Git changes read", "root", root, "count", len(changes))
	return changes, nil
}

// ChangeFilter selects which changes ListChanges returns
type ChangeFilter struct {
	Staged   bool
	Unstaged bool
}

// ListChanges returns the changes sorted by path. With neither Staged nor
// Unstaged set every change is returned.
func ListChanges(changes map[string]domain.GitChange, filter ChangeFilter) []domain.GitChange {
	all := !filter.Staged && !filter.Unstaged

	list := make([]domain.GitChange, 0, len(changes))
	for _, change := range changes {
		if all ||
			(filter.Staged && change.IsStaged()) ||
			(filter.Unstaged && change.IsUnstaged()) {
			list = append(list, change)
		}
	}

	sort.Slice(list, func(i, j int) bool {
		return list[i].Path < list[j].Path
	})
	return list
}
