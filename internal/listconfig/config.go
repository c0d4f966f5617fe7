package listconfig

import (
	"github.com/monokit-dev/monokit/internal/services"
	"github.com/monokit-dev/monokit/schema"
)

// DefaultTargetFile is injected when a config names no target file
const DefaultTargetFile = "README.md"

// TemplateData holds the per-package URL templates
type TemplateData struct {
	Repo      string `json:"repoUrl,omitempty" yaml:"repoUrl,omitempty" hcl:"repo_url,optional"`
	Package   string `json:"packageUrl,omitempty" yaml:"packageUrl,omitempty" hcl:"package_url,optional"`
	Docs      string `json:"docsUrl,omitempty" yaml:"docsUrl,omitempty" hcl:"docs_url,optional"`
	Readme    string `json:"readmeUrl,omitempty" yaml:"readmeUrl,omitempty" hcl:"readme_url,optional"`
	Changelog string `json:"changelogUrl,omitempty" yaml:"changelogUrl,omitempty" hcl:"changelog_url,optional"`
}

// Filter selects the listed packages
type Filter struct {
	Include schema.StringList `json:"include,omitempty" yaml:"include,omitempty" hcl:"include,optional" validate:"dive,min=1"`
	Exclude schema.StringList `json:"exclude,omitempty" yaml:"exclude,omitempty" hcl:"exclude,optional" validate:"dive,min=1"`
	Private string            `json:"private,omitempty" yaml:"private,omitempty" hcl:"private,optional" validate:"omitempty,oneof=include exclude only"`
}

// Config is one packages list: where it goes and how it is rendered
type Config struct {
	TargetFile   string            `json:"targetFile,omitempty" yaml:"targetFile,omitempty" hcl:"target_file,optional" validate:"required"`
	Format       schema.StringList `json:"format,omitempty" yaml:"format,omitempty" hcl:"format,optional" validate:"dive,min=1"`
	Template     string            `json:"template,omitempty" yaml:"template,omitempty" hcl:"template,optional"`
	TemplateData *TemplateData     `json:"templateData,omitempty" yaml:"templateData,omitempty" hcl:"template_data,block"`
	Sort         string            `json:"sort,omitempty" yaml:"sort,omitempty" hcl:"sort,optional" validate:"omitempty,oneof=path name -path -name"`
	Filter       *Filter           `json:"filter,omitempty" yaml:"filter,omitempty" hcl:"filter,block"`
	Delimiter    *string           `json:"delimiter,omitempty" yaml:"delimiter,omitempty" hcl:"delimiter,optional"`
	Before       *string           `json:"before,omitempty" yaml:"before,omitempty" hcl:"before,optional"`
	After        *string           `json:"after,omitempty" yaml:"after,omitempty" hcl:"after,optional"`
}

// ApplyDefaults implements schema.Defaulter
func (c *Config) ApplyDefaults() {
	if c.TargetFile == "" {
		c.TargetFile = DefaultTargetFile
	}
}

// ListOptions converts the config into generator options rooted at workingDir
func (c *Config) ListOptions(workingDir string) services.PackagesListOptions {
	opts := services.PackagesListOptions{
		WorkingDir: workingDir,
		Template:   c.Template,
		Sort:       c.Sort,
		Delimiter:  c.Delimiter,
		Before:     c.Before,
		After:      c.After,
	}
	if c.TemplateData != nil {
		opts.TemplateData = services.URLTemplates{
			Repo:      c.TemplateData.Repo,
			Package:   c.TemplateData.Package,
			Docs:      c.TemplateData.Docs,
			Readme:    c.TemplateData.Readme,
			Changelog: c.TemplateData.Changelog,
		}
	}
	if c.Filter != nil {
		opts.Filter = services.PackagesFilter{
			Include: c.Filter.Include,
			Exclude: c.Filter.Exclude,
			Private: c.Filter.Private,
		}
	}
	return opts
}

// Default returns the configuration used when no file exists
func Default() []Config {
	cfg := Config{}
	cfg.ApplyDefaults()
	return []Config{cfg}
}
