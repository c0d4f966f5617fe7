package formatter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/monokit-dev/monokit/internal/logging"
	"github.com/monokit-dev/monokit/internal/ports"
)

// Runner implements ports.Formatter by running an external command
type Runner struct {
	lookPath func(string) (string, error)
}

// Verify interface compliance at compile time
var _ ports.Formatter = (*Runner)(nil)

// NewRunner creates a new Runner
func NewRunner() *Runner {
	return &Runner{lookPath: exec.LookPath}
}

// Format runs command with file appended as the last argument, from dir.
// An empty command is a no-op. A command that is not installed is skipped
// with a warning.
func (r *Runner) Format(ctx context.Context, dir string, command []string, file string) error {
	if len(command) == 0 || command[0] == "" {
		return nil
	}

	bin, err := r.lookPath(command[0])
	if err != nil {
		logging.Logger.Warn("Formatter not found, skipping", "command", command[0], "error", err)
		return nil
	}

	args := append(append([]string{}, command[1:]...), file)
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = dir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	logging.Logger.Debug("Running formatter", "command", command, "file", file, "dir", dir)
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("formatter failed with exit code %d: %s: %s",
				exitErr.ExitCode(), strings.Join(command, " "), strings.TrimSpace(stderr.String()))
		}
		return fmt.Errorf("failed to run formatter: %w", err)
	}
	return nil
}
