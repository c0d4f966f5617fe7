package formatter

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat_EmptyCommand(t *testing.T) {
	assert.NoError(t, NewRunner().Format(context.Background(), t.TempDir(), nil, "README.md"))
}

func TestFormat_MissingCommandIsSkipped(t *testing.T) {
	r := &Runner{lookPath: func(string) (string, error) { return "", errors.New("not found") }}
	assert.NoError(t, r.Format(context.Background(), t.TempDir(), []string{"prettier", "--write"}, "README.md"))
}

func TestFormat_RunsCommandWithFile(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	dir := t.TempDir()

	err := NewRunner().Format(context.Background(), dir,
		[]string{"sh", "-c", `printf formatted > "$0"`}, "out.md")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "out.md"))
	require.NoError(t, err)
	assert.Equal(t, "formatted", string(data))
}

func TestFormat_ReportsFailure(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	err := NewRunner().Format(context.Background(), t.TempDir(),
		[]string{"sh", "-c", "echo bad >&2; exit 3"}, "out.md")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exit code 3")
	assert.Contains(t, err.Error(), "bad")
}
