package services

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/template"

	"github.com/gobwas/glob"

	"github.com/monokit-dev/monokit/internal/domain"
	"github.com/monokit-dev/monokit/internal/logging"
	"github.com/monokit-dev/monokit/schema"
)

// Sort orders accepted by PackagesListOptions.Sort
const (
	SortByPath     = "path"
	SortByName     = "name"
	SortByPathDesc = "-path"
	SortByNameDesc = "-name"
)

// Private modes accepted by PackagesFilter.Private
const (
	PrivateInclude = "include"
	PrivateExclude = "exclude"
	PrivateOnly    = "only"
)

// DefaultItemTemplate renders one package per list item
const DefaultItemTemplate = "- [**{{.Title}}**]({{with .RepoURL}}{{.}}{{else}}./{{.RelativePath}}{{end}})" +
	"{{with .Version}} `{{.}}`{{end}}" +
	"{{with .Description}}  \n  {{.}}{{end}}"

// DefaultBeforeTemplate precedes the list with the number of packages
const DefaultBeforeTemplate = "{{.Count}} {{plural .Count \"package\" \"packages\"}}:\n\n"

// DefaultDelimiter separates list items
const DefaultDelimiter = "\n\n"

// URLTemplates are per-package URL templates. A template rendering to an
// empty string leaves the URL unset.
type URLTemplates struct {
	Repo      string `json:"repoUrl,omitempty"`
	Package   string `json:"packageUrl,omitempty"`
	Docs      string `json:"docsUrl,omitempty"`
	Readme    string `json:"readmeUrl,omitempty"`
	Changelog string `json:"changelogUrl,omitempty"`
}

// PackagesFilter selects packages by name glob and private flag
type PackagesFilter struct {
	Include schema.StringList `json:"include,omitempty" validate:"dive,min=1"`
	Exclude schema.StringList `json:"exclude,omitempty" validate:"dive,min=1"`
	Private string            `json:"private,omitempty" validate:"oneof=include exclude only"`
}

// PackageItem is the data an item template renders
type PackageItem struct {
	domain.Workspace
	RepositoryURL string // Web URL of the origin remote
	RepoURL       string
	PackageURL    string
	DocsURL       string
	ReadmeURL     string
	ChangelogURL  string
}

// PackagesSummary is the data the before and after templates render
type PackagesSummary struct {
	Count    int
	Packages []PackageItem
}

// PackagesListOptions configures PackagesListService.Generate. Func fields
// take precedence over their template counterparts.
type PackagesListOptions struct {
	WorkingDir   string                                `json:"workingDir" validate:"required"`
	Template     string                                `json:"template,omitempty"`
	TemplateFunc func(PackageItem) (string, error)     `json:"-"`
	TemplateData URLTemplates                          `json:"templateData"`
	Sort         string                                `json:"sort,omitempty" validate:"oneof=path name -path -name"`
	SortFunc     func(a, b domain.Workspace) int       `json:"-"`
	Filter       PackagesFilter                        `json:"filter"`
	FilterFunc   func(domain.Workspace) bool           `json:"-"`
	Delimiter    *string                               `json:"delimiter,omitempty"`
	Before       *string                               `json:"before,omitempty"`
	BeforeFunc   func(PackagesSummary) (string, error) `json:"-"`
	After        *string                               `json:"after,omitempty"`
	AfterFunc    func(PackagesSummary) (string, error) `json:"-"`
}

// ApplyDefaults implements schema.Defaulter
func (o *PackagesListOptions) ApplyDefaults() {
	if o.Template == "" && o.TemplateFunc == nil {
		o.Template = DefaultItemTemplate
	}
	if o.Sort == "" {
		o.Sort = SortByPath
	}
	if o.Filter.Private == "" {
		o.Filter.Private = PrivateInclude
	}
	if o.Delimiter == nil {
		delimiter := DefaultDelimiter
		o.Delimiter = &delimiter
	}
	if o.Before == nil && o.BeforeFunc == nil {
		before := DefaultBeforeTemplate
		o.Before = &before
	}
	if o.After == nil && o.AfterFunc == nil {
		after := ""
		o.After = &after
	}
}

// PackagesListService generates markdown lists of the monorepo's packages
type PackagesListService struct {
	gitService       *GitService
	workspaceService *WorkspaceService
}

// NewPackagesListService creates a new PackagesListService. gitService may
// be nil, leaving RepositoryURL empty.
func NewPackagesListService(workspaceService *WorkspaceService, gitService *GitService) *PackagesListService {
	return &PackagesListService{
		gitService:       gitService,
		workspaceService: workspaceService,
	}
}

// compiledList holds the parsed templates and filters of one Generate call
type compiledList struct {
	item    *template.Template
	urls    map[string]*template.Template
	before  *template.Template
	after   *template.Template
	include []glob.Glob
	exclude []glob.Glob
}

// Generate reads the workspaces below WorkingDir, filters and sorts them,
// renders each with the item template and joins the results with the
// delimiter, wrapped by before and after
func (s *PackagesListService) Generate(ctx context.Context, opts PackagesListOptions) (string, error) {
	if opts.WorkingDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get working directory: %w", err)
		}
		opts.WorkingDir = wd
	}

	if err := schema.Parse(&opts); err != nil {
		return "", err
	}

	compiled, err := compileList(&opts)
	if err != nil {
		return "", err
	}

	workspaces, err := s.workspaceService.ReadWorkspaces(ctx, opts.WorkingDir)
	if err != nil {
		return "", err
	}

	workspaces = filterWorkspaces(workspaces, &opts, compiled)
	sortWorkspaces(workspaces, &opts)

	var repositoryURL string
	if s.gitService != nil {
		repositoryURL = s.gitService.RemoteURL(opts.WorkingDir)
	}

	items := make([]PackageItem, 0, len(workspaces))
	for _, ws := range workspaces {
		item, err := buildItem(ws, repositoryURL, compiled)
		if err != nil {
			return "", err
		}
		items = append(items, item)
	}

	rendered := make([]string, 0, len(items))
	for _, item := range items {
		text, err := renderItem(item, &opts, compiled)
		if err != nil {
			return "", fmt.Errorf("failed to render package %s: %w", item.Name, err)
		}
		rendered = append(rendered, text)
	}

	summary := PackagesSummary{Count: len(items), Packages: items}
	before, err := renderWrapper(summary, opts.BeforeFunc, compiled.before)
	if err != nil {
		return "", err
	}
	after, err := renderWrapper(summary, opts.AfterFunc, compiled.after)
	if err != nil {
		return "", err
	}

	logging.Logger.Debug("Packages list generated", "workingDir", opts.WorkingDir, "count", len(items))
	return before + strings.Join(rendered, *opts.Delimiter) + after, nil
}

func compileList(opts *PackagesListOptions) (*compiledList, error) {
	compiled := &compiledList{urls: map[string]*template.Template{}}
	var err error

	if opts.TemplateFunc == nil {
		if compiled.item, err = parseTemplate("item", opts.Template); err != nil {
			return nil, err
		}
	}

	urlTemplates := map[string]string{
		"repoUrl":      opts.TemplateData.Repo,
		"packageUrl":   opts.TemplateData.Package,
		"docsUrl":      opts.TemplateData.Docs,
		"readmeUrl":    opts.TemplateData.Readme,
		"changelogUrl": opts.TemplateData.Changelog,
	}
	for name, text := range urlTemplates {
		if text == "" {
			continue
		}
		if compiled.urls[name], err = parseTemplate(name, text); err != nil {
			return nil, err
		}
	}

	if opts.BeforeFunc == nil {
		if compiled.before, err = parseTemplate("before", *opts.Before); err != nil {
			return nil, err
		}
	}
	if opts.AfterFunc == nil {
		if compiled.after, err = parseTemplate("after", *opts.After); err != nil {
			return nil, err
		}
	}

	if compiled.include, err = compileGlobs(opts.Filter.Include); err != nil {
		return nil, err
	}
	if compiled.exclude, err = compileGlobs(opts.Filter.Exclude); err != nil {
		return nil, err
	}
	return compiled, nil
}

// compileGlobs compiles package name globs. "*" also matches "/" so that
// "*" covers scoped names.
func compileGlobs(patterns []string) ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(patterns))
	for _, pattern := range patterns {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid filter pattern %q: %w", pattern, err)
		}
		globs = append(globs, g)
	}
	return globs, nil
}

func matchesAny(globs []glob.Glob, name string) bool {
	for _, g := range globs {
		if g.Match(name) {
			return true
		}
	}
	return false
}

func filterWorkspaces(workspaces []domain.Workspace, opts *PackagesListOptions, compiled *compiledList) []domain.Workspace {
	kept := make([]domain.Workspace, 0, len(workspaces))
	for _, ws := range workspaces {
		if opts.FilterFunc != nil {
			if opts.FilterFunc(ws) {
				kept = append(kept, ws)
			}
			continue
		}

		switch opts.Filter.Private {
		case PrivateExclude:
			if ws.Private {
				continue
			}
		case PrivateOnly:
			if !ws.Private {
				continue
			}
		}
		if len(compiled.include) > 0 && !matchesAny(compiled.include, ws.Name) {
			continue
		}
		if matchesAny(compiled.exclude, ws.Name) {
			continue
		}
		kept = append(kept, ws)
	}
	return kept
}

func sortWorkspaces(workspaces []domain.Workspace, opts *PackagesListOptions) {
	compare := opts.SortFunc
	if compare == nil {
		compare = sortCompare(opts.Sort)
	}
	sort.SliceStable(workspaces, func(i, j int) bool {
		return compare(workspaces[i], workspaces[j]) < 0
	})
}

func sortCompare(order string) func(a, b domain.Workspace) int {
	key := func(ws domain.Workspace) string { return ws.RelativePath }
	if strings.TrimPrefix(order, "-") == SortByName {
		key = func(ws domain.Workspace) string { return ws.Name }
	}
	sign := 1
	if strings.HasPrefix(order, "-") {
		sign = -1
	}
	return func(a, b domain.Workspace) int {
		return sign * strings.Compare(key(a), key(b))
	}
}

func buildItem(ws domain.Workspace, repositoryURL string, compiled *compiledList) (PackageItem, error) {
	item := PackageItem{Workspace: ws, RepositoryURL: repositoryURL}

	targets := map[string]*string{
		"repoUrl":      &item.RepoURL,
		"packageUrl":   &item.PackageURL,
		"docsUrl":      &item.DocsURL,
		"readmeUrl":    &item.ReadmeURL,
		"changelogUrl": &item.ChangelogURL,
	}

	// URL templates see the workspace and the repository URL only
	base := PackageItem{Workspace: ws, RepositoryURL: repositoryURL}
	for name, tmpl := range compiled.urls {
		url, err := renderTemplate(tmpl, base)
		if err != nil {
			return PackageItem{}, fmt.Errorf("failed to render package %s: %w", ws.Name, err)
		}
		*targets[name] = strings.TrimSpace(url)
	}
	return item, nil
}

func renderItem(item PackageItem, opts *PackagesListOptions, compiled *compiledList) (string, error) {
	if opts.TemplateFunc != nil {
		return opts.TemplateFunc(item)
	}
	return renderTemplate(compiled.item, item)
}

func renderWrapper(summary PackagesSummary, fn func(PackagesSummary) (string, error), tmpl *template.Template) (string, error) {
	if fn != nil {
		return fn(summary)
	}
	return renderTemplate(tmpl, summary)
}
