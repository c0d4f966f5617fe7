package ports

import "context"

// Formatter runs an external formatting command on a file
type Formatter interface {
	Format(ctx context.Context, dir string, command []string, file string) error
}
