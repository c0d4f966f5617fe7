package storage

import (
	"path/filepath"
	"time"
)

// locationModel builds the row stored for a package found below root
func locationModel(root, name, relativePath string, now time.Time) PackageLocationModel {
	return PackageLocationModel{
		LastVerified: now,
		Name:         name,
		RelativePath: filepath.ToSlash(relativePath),
		Root:         filepath.Clean(root),
	}
}

// modelRelativePath returns the stored path in the host's separator format
func modelRelativePath(m PackageLocationModel) string {
	return filepath.FromSlash(m.RelativePath)
}
