package clirk

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"

	"github.com/monokit-dev/monokit/internal/logging"
)

// HelpHint is attached to errors caused by wrong usage
const HelpHint = "Run with --help for usage information."

// UserError is an error meant to be shown to the user as is
type UserError struct {
	Message string
	Cause   error
}

func (e *UserError) Error() string {
	if e.Cause == nil {
		return e.Message
	}
	return fmt.Sprintf("%s (%s)", e.Message, e.Cause)
}

func (e *UserError) Unwrap() error {
	return e.Cause
}

// NewUserError creates a user-facing error
func NewUserError(msg string, cause error) error {
	return &UserError{Message: msg, Cause: cause}
}

// UsageError creates a user-facing error that points to --help
func UsageError(msg string, cause error) error {
	return errors.WithHint(NewUserError(msg, cause), HelpHint)
}

// Main runs fn and exits the process: 0 on success, 1 on error
func Main(fn func(ctx context.Context) error) {
	os.Exit(Clitch(context.Background(), os.Stderr, fn))
}

// Clitch runs fn, reports its error to w and returns the exit code
func Clitch(ctx context.Context, w io.Writer, fn func(ctx context.Context) error) int {
	err := fn(ctx)
	if err == nil || errors.Is(err, ErrExited) {
		return 0
	}

	logging.Logger.Error("Command failed", "error", err)

	var userErr *UserError
	if errors.As(err, &userErr) {
		fmt.Fprintln(w, Failure(err.Error()))
	} else {
		fmt.Fprintln(w, Failure("Error: "+err.Error()))
	}

	for _, hint := range errors.GetAllHints(err) {
		fmt.Fprintln(w, Dim(hint))
	}
	return 1
}
