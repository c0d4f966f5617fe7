package application

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/monokit-dev/monokit/internal/domain"
	"github.com/monokit-dev/monokit/internal/services"
)

// ChangesRequest describes one git-changes listing
type ChangesRequest struct {
	Dir    string
	Filter services.ChangeFilter
	JSON   bool
	Out    io.Writer
}

// ListGitChanges prints the uncommitted changes of the repository containing
// req.Dir, one per line or as a JSON array
func ListGitChanges(ctx context.Context, gitService *services.GitService, req ChangesRequest) error {
	changes, err := gitService.GetChanges(ctx, req.Dir)
	if err != nil {
		return err
	}

	list := services.ListChanges(changes, req.Filter)

	if req.JSON {
		enc := json.NewEncoder(req.Out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(list); err != nil {
			return fmt.Errorf("failed to encode changes: %w", err)
		}
		return nil
	}

	_, err = io.WriteString(req.Out, FormatChanges(list))
	return err
}

// FormatChanges renders changes like `git status --short`:
// "XY path" or "XY origin -> path"
func FormatChanges(changes []domain.GitChange) string {
	var sb strings.Builder
	for _, change := range changes {
		sb.WriteString(change.StatusCode())
		sb.WriteString(" ")
		if change.OriginPath != "" {
			sb.WriteString(change.OriginPath)
			sb.WriteString(" -> ")
		}
		sb.WriteString(change.Path)
		sb.WriteString("\n")
	}
	return sb.String()
}
