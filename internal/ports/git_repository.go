package ports

import "context"

// RepoInspector locates repositories and reads their metadata
type RepoInspector interface {
	FindRoot(dir string) (string, error)
	RemoteURL(root string) (string, error)
}

// StatusReader reads the working tree status
type StatusReader interface {
	Status(ctx context.Context, root string) (string, error)
}

// GitRepository is the composite interface
type GitRepository interface {
	RepoInspector
	StatusReader
}
