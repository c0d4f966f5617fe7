package services

import (
	"fmt"
	"regexp"
	"strings"
	"text/template"

	"github.com/monokit-dev/monokit/internal/domain"
)

// templateFuncs are available in item, URL, before and after templates
var templateFuncs = template.FuncMap{
	"anchor":  domain.HeadingAnchor,
	"default": defaultValue,
	"join":    func(sep string, items []string) string { return strings.Join(items, sep) },
	"lower":   strings.ToLower,
	"plural":  plural,
	"regexReplace": func(pattern, repl, s string) (string, error) {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return "", err
		}
		return re.ReplaceAllString(s, repl), nil
	},
	"replace": func(old, new, s string) string { return strings.ReplaceAll(s, old, new) },
	"trim":    strings.TrimSpace,
	"upper":   strings.ToUpper,
}

// defaultValue returns def when value is empty: {{.Version | default "0.0.0"}}
func defaultValue(def string, value any) string {
	s := fmt.Sprint(value)
	if value == nil || s == "" {
		return def
	}
	return s
}

// plural picks the singular or plural form for n
func plural(n int, singular, pluralForm string) string {
	if n == 1 {
		return singular
	}
	return pluralForm
}

func parseTemplate(name, text string) (*template.Template, error) {
	tmpl, err := template.New(name).Funcs(templateFuncs).Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("invalid %s template: %w", name, err)
	}
	return tmpl, nil
}

func renderTemplate(tmpl *template.Template, data any) (string, error) {
	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("failed to render %s template: %w", tmpl.Name(), err)
	}
	return sb.String(), nil
}
