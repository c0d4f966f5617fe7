package domain

// Workspace is a package directory of the monorepo
type Workspace struct {
	Name         string `json:"name"`
	Version      string `json:"version,omitempty"`
	Description  string `json:"description,omitempty"`
	Homepage     string `json:"homepage,omitempty"`
	Private      bool   `json:"private"`
	Title        string `json:"title"`        // First README heading, falls back to Name
	FolderName   string `json:"folderName"`   // Base name of the workspace directory
	RelativePath string `json:"relativePath"` // Slash-separated path from the monorepo root
	AbsolutePath string `json:"absolutePath"`
	Readme       bool   `json:"readme"`    // README.md exists
	Changelog    bool   `json:"changelog"` // CHANGELOG.md exists
}
