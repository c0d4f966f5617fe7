package listconfig

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// InitFileName is the config file created by Write
const InitFileName = "packages-list.config.yaml"

// ErrConfigExists is returned by Write when the file exists and overwriting
// was not requested
var ErrConfigExists = errors.New("config file already exists")

// Write stores configs as YAML in root/InitFileName. A single config is
// written as an object, several as a list.
func Write(root string, configs []Config, overwrite bool) (string, error) {
	path := filepath.Join(root, InitFileName)

	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return "", fmt.Errorf("%w: ./%s", ErrConfigExists, InitFileName)
		}
	}

	var value any = configs
	if len(configs) == 1 {
		value = configs[0]
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(value); err != nil {
		return "", fmt.Errorf("failed to encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", InitFileName, err)
	}
	return path, nil
}
