package ports

// FileAccess checks file permissions
type FileAccess interface {
	CheckWritable(path string) error
}
