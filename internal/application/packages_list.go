package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/monokit-dev/monokit/clirk"
	"github.com/monokit-dev/monokit/internal/adapters/markdown"
	"github.com/monokit-dev/monokit/internal/domain"
	"github.com/monokit-dev/monokit/internal/listconfig"
	"github.com/monokit-dev/monokit/internal/logging"
	"github.com/monokit-dev/monokit/internal/ports"
	"github.com/monokit-dev/monokit/internal/services"
)

// PackagesMarker names the HTML comments the list is injected between
const PackagesMarker = "PACKAGES"

// UpdateRequest describes one packages list update run
type UpdateRequest struct {
	// WorkingDir is where the monorepo root is searched from
	WorkingDir string
	// ConfigFile overrides the config search, relative to the monorepo root
	ConfigFile string
	// TargetFiles override the target file of the config at the same index
	TargetFiles []string
	Out         io.Writer
}

// PackagesListUpdater injects generated packages lists into target files
type PackagesListUpdater struct {
	fileAccess  ports.FileAccess
	formatter   ports.Formatter
	gitService  *services.GitService
	listService *services.PackagesListService
}

// NewPackagesListUpdater creates a new PackagesListUpdater
func NewPackagesListUpdater(
	gitService *services.GitService,
	listService *services.PackagesListService,
	fileAccess ports.FileAccess,
	formatter ports.Formatter,
) *PackagesListUpdater {
	return &PackagesListUpdater{
		fileAccess:  fileAccess,
		formatter:   formatter,
		gitService:  gitService,
		listService: listService,
	}
}

// Update finds the monorepo root, loads the configs and writes one list per
// config into its target file
func (u *PackagesListUpdater) Update(ctx context.Context, req UpdateRequest) error {
	if req.Out == nil {
		req.Out = os.Stdout
	}

	workingDir := req.WorkingDir
	if workingDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}
		workingDir = wd
	}

	root, err := u.gitService.FindRoot(workingDir)
	if err != nil {
		if errors.Is(err, domain.ErrNotGitRepository) {
			return clirk.UsageError(fmt.Sprintf("monorepo root not found starting from: %s", workingDir), nil)
		}
		return err
	}
	logging.Logger.Info("Updating packages lists", "root", root)

	configs, err := listconfig.NewLoader(root, req.Out).Load(req.ConfigFile)
	if err != nil {
		return err
	}

	for i, cfg := range configs {
		target := cfg.TargetFile
		if i < len(req.TargetFiles) && req.TargetFiles[i] != "" {
			target = req.TargetFiles[i]
		}
		if err := u.updateFile(ctx, req.Out, root, target, cfg); err != nil {
			return err
		}
	}
	return nil
}

func (u *PackagesListUpdater) updateFile(ctx context.Context, out io.Writer, root, target string, cfg listconfig.Config) error {
	absPath := target
	if !filepath.IsAbs(absPath) {
		absPath = filepath.Join(root, target)
	}
	relPath, err := filepath.Rel(root, absPath)
	if err != nil {
		relPath = absPath
	}

	if err := u.fileAccess.CheckWritable(absPath); err != nil {
		logging.Logger.Debug("Target file not writable", "path", absPath, "error", err)
		return clirk.UsageError(fmt.Sprintf("file is not writable: %s", relPath), nil)
	}

	content, err := os.ReadFile(absPath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", relPath, err)
	}

	list, err := u.listService.Generate(ctx, cfg.ListOptions(root))
	if err != nil {
		return fmt.Errorf("failed to generate packages list for %s: %w", relPath, err)
	}

	updated, err := markdown.Inject(content, PackagesMarker, list)
	if err != nil {
		if errors.Is(err, domain.ErrMarkerNotFound) {
			return clirk.NewUserError(fmt.Sprintf("no packages list markers found in: %s", relPath),
				fmt.Errorf("expected <!-- %s --><!-- /%s -->", PackagesMarker, PackagesMarker))
		}
		return err
	}

	if err := os.WriteFile(absPath, updated, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", relPath, err)
	}

	if err := u.formatter.Format(ctx, root, cfg.Format, relPath); err != nil {
		return fmt.Errorf("failed to format %s: %w", relPath, err)
	}

	logging.Logger.Info("Packages list updated", "path", relPath)
	fmt.Fprintln(out, clirk.Success("Monorepo packages list updated. "+clirk.Dim("("+filepath.ToSlash(relPath)+")")))
	return nil
}
