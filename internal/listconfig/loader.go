package listconfig

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/monokit-dev/monokit/clirk"
	"github.com/monokit-dev/monokit/internal/logging"
)

// SearchPlaces are the config file names looked up in the monorepo root, in order
var SearchPlaces = []string{
	"monorepo-packages-list.config.yaml",
	"monorepo-packages-list.config.yml",
	"monorepo-packages-list.config.json",
	"monorepo-packages-list.config.hcl",
	"packages-list.config.yaml",
	"packages-list.config.yml",
	"packages-list.config.json",
	"packages-list.config.hcl",
}

// Loader reads packages list configs relative to a monorepo root
type Loader struct {
	out  io.Writer
	root string
}

// NewLoader creates a Loader that reports which file it used to out
func NewLoader(root string, out io.Writer) *Loader {
	return &Loader{
		out:  out,
		root: root,
	}
}

// Load reads configFile, or the first existing search place when configFile
// is empty. Without any file the default configuration is returned.
func (l *Loader) Load(configFile string) ([]Config, error) {
	path, err := l.locate(configFile)
	if err != nil {
		return nil, err
	}

	if path == "" {
		fmt.Fprintln(l.out, clirk.Dim("No configuration file found, using default configuration."))
		return Default(), nil
	}

	rel := l.relative(path)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, clirk.NewUserError(fmt.Sprintf("failed to read the config file: ./%s", rel), err)
	}

	configs, err := decode(path, data)
	if err != nil {
		return nil, clirk.NewUserError(fmt.Sprintf("failed to parse the config file: ./%s", rel), err)
	}
	if configs == nil {
		fmt.Fprintln(l.out, clirk.Dim("No configuration file found, using default configuration."))
		return Default(), nil
	}

	logging.Logger.Debug("Packages list config loaded", "path", path, "count", len(configs))
	fmt.Fprintln(l.out, clirk.Dim("Using configuration from ./"+rel))
	return configs, nil
}

func (l *Loader) locate(configFile string) (string, error) {
	if configFile != "" {
		path := configFile
		if !filepath.IsAbs(path) {
			path = filepath.Join(l.root, path)
		}
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return "", clirk.UsageError(fmt.Sprintf("config file not found: ./%s", l.relative(path)), nil)
			}
			return "", fmt.Errorf("failed to access config file: %w", err)
		}
		return path, nil
	}

	for _, name := range SearchPlaces {
		path := filepath.Join(l.root, name)
		info, err := os.Stat(path)
		if err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", nil
}

func (l *Loader) relative(path string) string {
	rel, err := filepath.Rel(l.root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}
