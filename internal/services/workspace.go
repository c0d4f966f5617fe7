package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/monokit-dev/monokit/internal/domain"
	"github.com/monokit-dev/monokit/internal/logging"
	"github.com/monokit-dev/monokit/internal/ports"
	"github.com/monokit-dev/monokit/schema"
)

// DefaultConcurrency bounds parallel package.json reads
const DefaultConcurrency = 10

// WorkspaceService discovers and reads monorepo workspaces
type WorkspaceService struct {
	cache       ports.PackageCache
	concurrency int
	reader      ports.WorkspaceReader
}

// NewWorkspaceService creates a new WorkspaceService. cache may be nil.
func NewWorkspaceService(reader ports.WorkspaceReader, cache ports.PackageCache) *WorkspaceService {
	return &WorkspaceService{
		cache:       cache,
		concurrency: DefaultConcurrency,
		reader:      reader,
	}
}

// SetConcurrency bounds the parallel reads of ReadWorkspaces. Values below 1
// restore DefaultConcurrency.
func (s *WorkspaceService) SetConcurrency(n int) {
	if n < 1 {
		n = DefaultConcurrency
	}
	s.concurrency = n
}

// WorkspacePaths returns the sorted workspace directories below root,
// absolute or relative to root
func (s *WorkspaceService) WorkspacePaths(root string, absolute bool) ([]string, error) {
	paths, err := s.reader.WorkspacePaths(root)
	if err != nil {
		return nil, err
	}
	if absolute {
		return paths, nil
	}

	relative := make([]string, 0, len(paths))
	for _, p := range paths {
		relative = append(relative, relativeTo(root, p))
	}
	return relative, nil
}

// ReadWorkspaces reads the metadata of every workspace below root, in
// workspace path order
func (s *WorkspaceService) ReadWorkspaces(ctx context.Context, root string) ([]domain.Workspace, error) {
	paths, err := s.reader.WorkspacePaths(root)
	if err != nil {
		return nil, err
	}

	workspaces := make([]domain.Workspace, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, p := range paths {
		g.Go(func() error {
			ws, err := s.reader.ReadWorkspace(ctx, root, p)
			if err != nil {
				return fmt.Errorf("failed to read workspace %s: %w", relativeTo(root, p), err)
			}
			workspaces[i] = *ws
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	logging.Logger.Debug("Workspaces read", "root", root, "count", len(workspaces))
	return workspaces, nil
}

// PackagePathOptions configures PackagePathByName
type PackagePathOptions struct {
	WorkingDir  string `json:"workingDir" validate:"required"`
	Absolute    bool   `json:"absolute"`
	Concurrency int    `json:"concurrency" validate:"gte=1"`
	FailOnError bool   `json:"failOnError"`
}

// ApplyDefaults implements schema.Defaulter
func (o *PackagePathOptions) ApplyDefaults() {
	if o.Concurrency == 0 {
		o.Concurrency = DefaultConcurrency
	}
}

// PackagePathByName searches the workspaces below WorkingDir for the package
// called name and returns its directory. The search stops at the first match.
// Unreadable package.json files are skipped unless FailOnError is set.
func (s *WorkspaceService) PackagePathByName(ctx context.Context, name string, opts PackagePathOptions) (string, error) {
	if err := schema.Parse(&opts); err != nil {
		return "", err
	}

	root, err := filepath.Abs(opts.WorkingDir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", opts.WorkingDir, err)
	}

	found := s.cachedPath(ctx, root, name)
	if found == "" {
		found, err = s.searchPackage(ctx, root, name, opts)
		if err != nil {
			return "", err
		}
		s.storePath(ctx, root, name, found)
	}

	if opts.Absolute {
		return found, nil
	}
	return relativeTo(root, found), nil
}

func (s *WorkspaceService) searchPackage(ctx context.Context, root, name string, opts PackagePathOptions) (string, error) {
	paths, err := s.reader.WorkspacePaths(root)
	if err != nil {
		return "", err
	}

	searchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		mu       sync.Mutex
		found    string
		failures = map[string]error{}
	)

	g := new(errgroup.Group)
	g.SetLimit(opts.Concurrency)

	for _, p := range paths {
		if searchCtx.Err() != nil {
			break
		}
		g.Go(func() error {
			if searchCtx.Err() != nil {
				return nil
			}

			pkgName, err := s.reader.PackageName(p)

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				failures[relativeTo(root, p)] = err
				if opts.FailOnError {
					cancel()
				}
				return nil
			}
			if pkgName == name && found == "" {
				found = p
				cancel()
			}
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return "", err
	}

	if len(failures) > 0 {
		if opts.FailOnError {
			return "", fmt.Errorf("failed to read package.json files: %s", formatFailures(failures))
		}
		logging.Logger.Warn("Skipped unreadable package.json files", "count", len(failures))
	}

	if found == "" {
		return "", fmt.Errorf("package %q %w", name, domain.ErrPackageNotFound)
	}
	return found, nil
}

// cachedPath returns the cached directory of name if it still holds that package
func (s *WorkspaceService) cachedPath(ctx context.Context, root, name string) string {
	if s.cache == nil {
		return ""
	}

	rel, err := s.cache.Lookup(ctx, root, name)
	if err != nil {
		if !errors.Is(err, domain.ErrCacheMiss) {
			logging.Logger.Warn("Package cache lookup failed", "name", name, "error", err)
		}
		return ""
	}

	dir := filepath.Join(root, rel)
	if pkgName, err := s.reader.PackageName(dir); err == nil && pkgName == name {
		logging.Logger.Debug("Package cache hit", "name", name, "path", rel)
		return dir
	}

	logging.Logger.Debug("Dropping stale package cache entry", "name", name, "path", rel)
	if err := s.cache.Delete(ctx, root, name); err != nil {
		logging.Logger.Warn("Failed to delete stale cache entry", "name", name, "error", err)
	}
	return ""
}

func (s *WorkspaceService) storePath(ctx context.Context, root, name, dir string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Store(ctx, root, name, relativeTo(root, dir)); err != nil {
		logging.Logger.Warn("Failed to update package cache", "name", name, "error", err)
	}
}

// ClearCache removes all cached package locations
func (s *WorkspaceService) ClearCache(ctx context.Context) (int64, error) {
	if s.cache == nil {
		return 0, nil
	}
	return s.cache.Clear(ctx)
}

func formatFailures(failures map[string]error) string {
	keys := make([]string, 0, len(failures))
	for k := range failures {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s (%v)", k, failures[k]))
	}
	return strings.Join(parts, ", ")
}

func relativeTo(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return rel
}
