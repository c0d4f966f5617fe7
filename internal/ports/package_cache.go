package ports

import "context"

// PackageCache remembers where packages were found, per monorepo root
type PackageCache interface {
	Clear(ctx context.Context) (int64, error)
	Delete(ctx context.Context, root, name string) error
	Lookup(ctx context.Context, root, name string) (string, error)
	Store(ctx context.Context, root, name, relativePath string) error
}
