package workspace

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"
	"gopkg.in/yaml.v3"

	"github.com/monokit-dev/monokit/internal/domain"
	"github.com/monokit-dev/monokit/internal/logging"
	"github.com/monokit-dev/monokit/internal/pkgjson"
)

const pnpmWorkspaceFile = "pnpm-workspace.yaml"

// Directories never searched for workspaces
var skippedDirs = map[string]bool{
	"node_modules": true,
	".git":         true,
}

type pnpmWorkspace struct {
	Packages []string `yaml:"packages"`
}

// patternSet holds compiled workspace globs
type patternSet struct {
	include []glob.Glob
	exclude []glob.Glob
}

func (p *patternSet) match(rel string) bool {
	matched := false
	for _, g := range p.include {
		if g.Match(rel) {
			matched = true
			break
		}
	}
	if !matched {
		return false
	}
	for _, g := range p.exclude {
		if g.Match(rel) {
			return false
		}
	}
	return true
}

// readPatterns returns the workspace patterns of the monorepo at root, from
// package.json#workspaces or pnpm-workspace.yaml
func readPatterns(root string) ([]string, error) {
	manifest, err := pkgjson.Read(root)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read root package.json: %w", err)
	}
	if manifest != nil && len(manifest.Workspaces) > 0 {
		return manifest.Workspaces, nil
	}

	data, err := os.ReadFile(filepath.Join(root, pnpmWorkspaceFile))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, domain.ErrWorkspaceNotFound
		}
		return nil, fmt.Errorf("failed to read %s: %w", pnpmWorkspaceFile, err)
	}

	var ws pnpmWorkspace
	if err := yaml.Unmarshal(data, &ws); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", pnpmWorkspaceFile, err)
	}
	if len(ws.Packages) == 0 {
		return nil, domain.ErrWorkspaceNotFound
	}
	return ws.Packages, nil
}

// compilePatterns compiles workspace patterns. A leading "!" excludes.
func compilePatterns(patterns []string) (*patternSet, error) {
	set := &patternSet{}
	for _, raw := range patterns {
		pattern := strings.TrimSpace(raw)
		negate := strings.HasPrefix(pattern, "!")
		pattern = strings.TrimPrefix(pattern, "!")
		pattern = strings.TrimPrefix(pattern, "./")
		pattern = strings.TrimSuffix(pattern, "/")
		if pattern == "" {
			continue
		}

		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid workspace pattern %q: %w", raw, err)
		}

		if negate {
			set.exclude = append(set.exclude, g)
		} else {
			set.include = append(set.include, g)
		}
	}
	return set, nil
}

// workspacePaths returns the absolute, sorted directories of all workspaces
// below root that contain a package.json
func workspacePaths(root string) ([]string, error) {
	patterns, err := readPatterns(root)
	if err != nil {
		return nil, err
	}

	set, err := compilePatterns(patterns)
	if err != nil {
		return nil, err
	}

	var paths []string
	err = filepath.WalkDir(root, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if p == root {
				return walkErr
			}
			logging.Logger.Warn("Skipping unreadable path", "path", p, "error", walkErr)
			return fs.SkipDir
		}
		if !d.IsDir() {
			return nil
		}
		if skippedDirs[d.Name()] {
			return fs.SkipDir
		}
		if p == root {
			return nil
		}

		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if !set.match(rel) {
			return nil
		}
		if _, err := os.Stat(filepath.Join(p, pkgjson.FileName)); err == nil {
			paths = append(paths, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search workspaces: %w", err)
	}

	sort.Strings(paths)
	logging.Logger.Debug("Workspaces found", "root", root, "count", len(paths))
	return paths, nil
}

// RelativePath returns dir relative to root with forward slashes
func RelativePath(root, dir string) string {
	rel, err := filepath.Rel(root, dir)
	if err != nil {
		return filepath.ToSlash(dir)
	}
	return path.Clean(filepath.ToSlash(rel))
}
