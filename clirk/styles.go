package clirk

import "github.com/monokit-dev/monokit/internal/theme"

// Styles are the text decorations used by the help message
type Styles struct {
	Bold      func(string) string
	Cyan      func(string) string
	Dim       func(string) string
	Underline func(string) string
	Yellow    func(string) string
}

// DefaultStyles renders with the terminal's ANSI colors
func DefaultStyles() Styles {
	return Styles{
		Bold:      func(s string) string { return theme.BoldStyle.Render(s) },
		Cyan:      func(s string) string { return theme.CyanStyle.Render(s) },
		Dim:       func(s string) string { return theme.DimStyle.Render(s) },
		Underline: func(s string) string { return theme.UnderlineStyle.Render(s) },
		Yellow:    func(s string) string { return theme.YellowStyle.Render(s) },
	}
}

// PlainStyles leaves text untouched
func PlainStyles() Styles {
	plain := func(s string) string { return s }
	return Styles{Bold: plain, Cyan: plain, Dim: plain, Underline: plain, Yellow: plain}
}
