package domain

// ChangeStatus is one column of `git status --porcelain`
type ChangeStatus string

const (
	StatusAdded     ChangeStatus = "A"
	StatusModified  ChangeStatus = "M"
	StatusDeleted   ChangeStatus = "D"
	StatusRenamed   ChangeStatus = "R"
	StatusCopied    ChangeStatus = "C"
	StatusUntracked ChangeStatus = "?"
)

// KnownChangeStatuses holds every status git reports that monokit tracks
var KnownChangeStatuses = map[ChangeStatus]bool{
	StatusAdded:     true,
	StatusModified:  true,
	StatusDeleted:   true,
	StatusRenamed:   true,
	StatusCopied:    true,
	StatusUntracked: true,
}

// String returns a readable name of the status
func (s ChangeStatus) String() string {
	switch s {
	case StatusAdded:
		return "added"
	case StatusModified:
		return "modified"
	case StatusDeleted:
		return "deleted"
	case StatusRenamed:
		return "renamed"
	case StatusCopied:
		return "copied"
	case StatusUntracked:
		return "untracked"
	default:
		return ""
	}
}

// GitChange is an uncommitted change of a single file.
// At least one of Staged and Unstaged is set; Staged is never untracked.
type GitChange struct {
	Path       string       `json:"path"`
	OriginPath string       `json:"originPath,omitempty"`
	Staged     ChangeStatus `json:"staged,omitempty"`
	Unstaged   ChangeStatus `json:"unstaged,omitempty"`
}

// IsRenameOrCopy reports whether either column is a rename or copy
func (c GitChange) IsRenameOrCopy() bool {
	return c.Staged == StatusRenamed || c.Staged == StatusCopied ||
		c.Unstaged == StatusRenamed || c.Unstaged == StatusCopied
}

// IsStaged reports whether the change has a staged part
func (c GitChange) IsStaged() bool {
	return c.Staged != ""
}

// IsUnstaged reports whether the change has an unstaged part (untracked included)
func (c GitChange) IsUnstaged() bool {
	return c.Unstaged != ""
}

// StatusCode renders the two-column porcelain code, e.g. "M " or "??"
func (c GitChange) StatusCode() string {
	if c.Unstaged == StatusUntracked {
		return "??"
	}
	code := []byte{' ', ' '}
	if c.Staged != "" {
		code[0] = c.Staged[0]
	}
	if c.Unstaged != "" {
		code[1] = c.Unstaged[0]
	}
	return string(code)
}
