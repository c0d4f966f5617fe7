package clirk

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func bracketStyles() *Styles {
	wrap := func(tag string) func(string) string {
		return func(s string) string { return "[" + tag + "]" + s + "[/" + tag + "]" }
	}
	return &Styles{
		Bold:      wrap("b"),
		Cyan:      wrap("c"),
		Dim:       wrap("d"),
		Underline: wrap("u"),
		Yellow:    wrap("y"),
	}
}

type exitRecorder struct {
	codes []int
}

func (r *exitRecorder) exit(code int) {
	r.codes = append(r.codes, code)
}

func testPackage() *Package {
	return &Package{
		Path:     "/path/to/package",
		Name:     "test-cli",
		Version:  "0.1.0",
		Homepage: "https://example.com",
	}
}

func baseOptions(t *testing.T, args ...string) (Options, *bytes.Buffer, *exitRecorder) {
	t.Helper()
	out := &bytes.Buffer{}
	rec := &exitRecorder{}
	if args == nil {
		args = []string{}
	}
	return Options{
		Package:       testPackage(),
		Title:         "Test CLI",
		Args:          args,
		Program:       "/usr/local/bin/test-cli",
		Stdout:        out,
		Exit:          rec.exit,
		Styles:        bracketStyles(),
		DisableSigint: true,
	}, out, rec
}

func writePackageJSON(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte(content), 0644))
}
