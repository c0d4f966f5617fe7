package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMonokitHome_FromEnv(t *testing.T) {
	t.Setenv("MONOKIT_HOME", "/tmp/monokit-home")

	assert.Equal(t, "/tmp/monokit-home", GetMonokitHome())
	assert.Equal(t, "/tmp/monokit-home/cache.db", GetCacheDBPath())
	assert.Equal(t, "/tmp/monokit-home/settings.json", GetSettingsPath())
}

func TestGetMonokitHome_Default(t *testing.T) {
	t.Setenv("MONOKIT_HOME", "")
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(homeDir, ".monokit"), GetMonokitHome())
}

func TestExpandPath(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		input    string
		expected string
	}{
		{"~", homeDir},
		{"~/foo", filepath.Join(homeDir, "foo")},
		{"/abs/path", "/abs/path"},
		{"relative", "relative"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExpandPath(tt.input))
		})
	}
}
