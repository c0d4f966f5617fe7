package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/monokit-dev/monokit/internal/logging"
)

// statusArgs produce a machine-readable, NUL separated status including
// staged, unstaged and untracked files. Example output:
//
//	"?? untracked.ts\x00"
//	" M unstaged-modified.ts\x00"
//	"MM both-modified.ts\x00"
//	"R  new.ts\x00old.ts\x00" (rename: target first, then origin)
var statusArgs = []string{"status", "--porcelain", "--short", "--null"}

// status runs git status in root and returns its raw output
func status(ctx context.Context, root string) (string, error) {
	logging.Logger.Debug("Reading git status", "root", root)

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, "git", statusArgs...)
	cmd.Dir = root
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		logging.Logger.Error("Git status failed", "error", err, "stderr", stderr.String())

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			msg := strings.TrimSpace(stderr.String())
			if msg == "" {
				msg = "no output"
			}
			return "", fmt.Errorf("command failed with exit code %d: git %s: %s",
				exitErr.ExitCode(), strings.Join(statusArgs, " "), msg)
		}
		return "", err
	}

	return stdout.String(), nil
}
