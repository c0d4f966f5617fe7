package listconfig

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monokit-dev/monokit/clirk"
	"github.com/monokit-dev/monokit/internal/services"
)

func writeConfig(t *testing.T, root, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte(content), 0o644))
}

func TestLoad_Default(t *testing.T) {
	root := t.TempDir()
	var out bytes.Buffer

	configs, err := NewLoader(root, &out).Load("")
	require.NoError(t, err)
	assert.Equal(t, []Config{{TargetFile: "README.md"}}, configs)
	assert.Contains(t, out.String(), "No configuration file found, using default configuration.")
}

func TestLoad_Formats(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		expected []Config
	}{
		{
			name:     "yaml object",
			file:     "packages-list.config.yaml",
			content:  "sort: -name\nformat: [prettier, --write]\n",
			expected: []Config{{TargetFile: "README.md", Sort: "-name", Format: []string{"prettier", "--write"}}},
		},
		{
			name: "yaml list",
			file: "monorepo-packages-list.config.yml",
			content: "- template: ''\n  delimiter: ''\n" +
				"- targetFile: PACKAGES.md\n  filter:\n    private: exclude\n    include: '@scope/*'\n",
			expected: []Config{
				{TargetFile: "README.md", Template: "", Delimiter: strPtr("")},
				{TargetFile: "PACKAGES.md", Filter: &Filter{Private: "exclude", Include: []string{"@scope/*"}}},
			},
		},
		{
			name:    "json object",
			file:    "packages-list.config.json",
			content: `{"targetFile": "docs/LIST.md", "templateData": {"repoUrl": "https://x/{{.RelativePath}}"}}`,
			expected: []Config{{
				TargetFile:   "docs/LIST.md",
				TemplateData: &TemplateData{Repo: "https://x/{{.RelativePath}}"},
			}},
		},
		{
			name:    "json list",
			file:    "packages-list.config.json",
			content: `[{"before": ""}, {"targetFile": "B.md", "format": "prettier"}]`,
			expected: []Config{
				{TargetFile: "README.md", Before: strPtr("")},
				{TargetFile: "B.md", Format: []string{"prettier"}},
			},
		},
		{
			name: "hcl blocks",
			file: "packages-list.config.hcl",
			content: `packages_list {
  sort = "name"
}

packages_list {
  target_file = "PACKAGES.md"
  format      = ["prettier", "--write"]

  template_data {
    package_url = "https://npm/{{.Name}}"
  }

  filter {
    exclude = ["tsconfig"]
  }
}
`,
			expected: []Config{
				{TargetFile: "README.md", Sort: "name"},
				{
					TargetFile:   "PACKAGES.md",
					Format:       []string{"prettier", "--write"},
					TemplateData: &TemplateData{Package: "https://npm/{{.Name}}"},
					Filter:       &Filter{Exclude: []string{"tsconfig"}},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			writeConfig(t, root, tt.file, tt.content)
			var out bytes.Buffer

			configs, err := NewLoader(root, &out).Load("")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, configs)
			assert.Contains(t, out.String(), "Using configuration from ./"+tt.file)
		})
	}
}

func TestLoad_SearchOrder(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "packages-list.config.yaml", "sort: name\n")
	writeConfig(t, root, "monorepo-packages-list.config.json", `{"sort": "-path"}`)

	configs, err := NewLoader(root, &bytes.Buffer{}).Load("")
	require.NoError(t, err)
	assert.Equal(t, "-path", configs[0].Sort)
}

func TestLoad_CustomFile(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "config"), 0o755))
	writeConfig(t, root, "config/list.yaml", "targetFile: OTHER.md\n")
	writeConfig(t, root, "packages-list.config.yaml", "sort: name\n")
	var out bytes.Buffer

	configs, err := NewLoader(root, &out).Load("config/list.yaml")
	require.NoError(t, err)
	assert.Equal(t, []Config{{TargetFile: "OTHER.md"}}, configs)
	assert.Contains(t, out.String(), "Using configuration from ./config/list.yaml")
}

func TestLoad_CustomFileMissing(t *testing.T) {
	_, err := NewLoader(t.TempDir(), &bytes.Buffer{}).Load("missing.yaml")
	require.Error(t, err)
	assert.Equal(t, "config file not found: ./missing.yaml", err.Error())
	assert.Equal(t, []string{clirk.HelpHint}, errors.GetAllHints(err))
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		cause   string
	}{
		{
			name:    "unknown yaml key",
			file:    "packages-list.config.yaml",
			content: "templateFn: x\n",
			cause:   `Unrecognized key(s) "templateFn" in object`,
		},
		{
			name:    "unknown json key",
			file:    "packages-list.config.json",
			content: `{"workingDir": "/"}`,
			cause:   `Unrecognized key(s) "workingDir" in object`,
		},
		{
			name:    "empty list",
			file:    "packages-list.config.json",
			content: `[]`,
			cause:   `Expected at least 1 item(s) at "configs"`,
		},
		{
			name:    "invalid sort",
			file:    "packages-list.config.yaml",
			content: "sort: size\n",
			cause:   `Expected one of: path, name, -path, -name at "sort"`,
		},
		{
			name:    "unknown hcl attribute",
			file:    "packages-list.config.hcl",
			content: "packages_list {\n  working_dir = \"/\"\n}\n",
			cause:   "Unsupported argument",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			writeConfig(t, root, tt.file, tt.content)

			_, err := NewLoader(root, &bytes.Buffer{}).Load("")
			require.Error(t, err)

			var userErr *clirk.UserError
			require.True(t, errors.As(err, &userErr))
			assert.Equal(t, "failed to parse the config file: ./"+tt.file, userErr.Message)
			assert.Contains(t, err.Error(), tt.cause)
		})
	}
}

func TestListOptions(t *testing.T) {
	cfg := Config{
		TargetFile:   "README.md",
		Template:     "{{.Name}}",
		Sort:         "name",
		TemplateData: &TemplateData{Docs: "https://docs/{{.Name}}"},
		Filter:       &Filter{Private: "only", Exclude: []string{"x"}},
		Before:       strPtr(""),
	}

	opts := cfg.ListOptions("/repo")
	assert.Equal(t, "/repo", opts.WorkingDir)
	assert.Equal(t, "{{.Name}}", opts.Template)
	assert.Equal(t, "name", opts.Sort)
	assert.Equal(t, services.URLTemplates{Docs: "https://docs/{{.Name}}"}, opts.TemplateData)
	assert.Equal(t, "only", opts.Filter.Private)
	assert.Equal(t, []string{"x"}, []string(opts.Filter.Exclude))
	require.NotNil(t, opts.Before)
	assert.Empty(t, *opts.Before)
	assert.Nil(t, opts.After)
}

func strPtr(s string) *string { return &s }
