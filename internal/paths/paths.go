package paths

import (
	"os"
	"path/filepath"
)

// GetMonokitHome returns MONOKIT_HOME or ~/.monokit default
func GetMonokitHome() string {
	home := os.Getenv("MONOKIT_HOME")
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".monokit"
		}
		return filepath.Join(homeDir, ".monokit")
	}
	return ExpandPath(home)
}

// GetCacheDBPath returns $MONOKIT_HOME/cache.db
func GetCacheDBPath() string {
	return filepath.Join(GetMonokitHome(), "cache.db")
}

// GetSettingsPath returns $MONOKIT_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetMonokitHome(), "settings.json")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
