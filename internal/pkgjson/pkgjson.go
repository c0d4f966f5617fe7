// Package pkgjson reads the subset of package.json that monokit cares about.
package pkgjson

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileName is the manifest file name of a package
const FileName = "package.json"

// ErrNotFound is returned when no package.json exists in a directory or its parents
var ErrNotFound = errors.New("package.json not found")

// BinEntry is one executable declared by a package
type BinEntry struct {
	Name string
	Path string
}

// Bin keeps the executables in declaration order
type Bin []BinEntry

// Workspaces holds the workspace glob patterns of a monorepo root
type Workspaces []string

// Manifest is a parsed package.json
type Manifest struct {
	Name        string     `json:"name"`
	Version     string     `json:"version"`
	Description string     `json:"description"`
	Homepage    string     `json:"homepage"`
	Private     bool       `json:"private"`
	Bin         Bin        `json:"bin"`
	Workspaces  Workspaces `json:"workspaces"`
}

// FirstBin returns the name of the first declared executable, or "" when none
func (m *Manifest) FirstBin() string {
	if len(m.Bin) == 0 {
		return ""
	}
	if m.Bin[0].Name == "" {
		return UnscopedName(m.Name)
	}
	return m.Bin[0].Name
}

// UnscopedName strips the "@scope/" prefix of a package name
func UnscopedName(name string) string {
	if strings.HasPrefix(name, "@") {
		if idx := strings.Index(name, "/"); idx >= 0 {
			return name[idx+1:]
		}
	}
	return name
}

// UnmarshalJSON accepts "bin": "./cli.js" and "bin": {"name": "./cli.js"}
func (b *Bin) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*b = Bin{{Path: single}}
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("bin: expected a string or an object")
	}

	var entries Bin
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := keyTok.(string)

		var path string
		if err := dec.Decode(&path); err != nil {
			return fmt.Errorf("bin %q: %w", key, err)
		}
		entries = append(entries, BinEntry{Name: key, Path: path})
	}
	*b = entries
	return nil
}

// UnmarshalJSON accepts ["packages/*"] and {"packages": ["packages/*"]}
func (w *Workspaces) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*w = list
		return nil
	}

	var object struct {
		Packages []string `json:"packages"`
	}
	if err := json.Unmarshal(data, &object); err != nil {
		return fmt.Errorf("workspaces: expected an array or an object with packages")
	}
	*w = object.Packages
	return nil
}

// Read parses the package.json inside dir
func Read(dir string) (*Manifest, error) {
	return ReadFile(filepath.Join(dir, FileName))
}

// ReadFile parses a package.json file
func ReadFile(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &m, nil
}

// FindUp looks for the closest package.json starting at dir and walking up.
// It returns the manifest and the directory it was found in.
func FindUp(dir string) (*Manifest, string, error) {
	current, err := filepath.Abs(dir)
	if err != nil {
		return nil, "", fmt.Errorf("failed to resolve %s: %w", dir, err)
	}

	for {
		m, err := Read(current)
		if err == nil {
			return m, current, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, "", err
		}

		parent := filepath.Dir(current)
		if parent == current {
			return nil, "", ErrNotFound
		}
		current = parent
	}
}
