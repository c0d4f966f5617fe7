package domain

import "errors"

var (
	ErrCacheMiss         = errors.New("cache miss")
	ErrMarkerNotFound    = errors.New("marker not found")
	ErrNotGitRepository  = errors.New("not part of a git repository")
	ErrNotWritable       = errors.New("file is not writable")
	ErrPackageNotFound   = errors.New("not found in workspaces")
	ErrWorkspaceNotFound = errors.New("no workspaces configured")
)
