package fsaccess

import (
	"fmt"
	"os"

	"github.com/monokit-dev/monokit/internal/domain"
	"github.com/monokit-dev/monokit/internal/ports"
)

// Checker implements ports.FileAccess
type Checker struct{}

// Verify interface compliance at compile time
var _ ports.FileAccess = (*Checker)(nil)

// NewChecker creates a new Checker
func NewChecker() *Checker {
	return &Checker{}
}

// CheckWritable returns domain.ErrNotWritable unless path is an existing
// regular file the current user may write
func (c *Checker) CheckWritable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrNotWritable, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%w: not a regular file", domain.ErrNotWritable)
	}
	if err := checkWritable(path, info); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrNotWritable, err)
	}
	return nil
}
