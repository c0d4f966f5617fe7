package clirk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monokit-dev/monokit/schema"
)

func parsedOptions(t *testing.T, opts Options) *Options {
	t.Helper()
	if opts.Title == "" {
		opts.Title = "T"
	}
	parsed, err := ValidateOptions(opts)
	require.NoError(t, err)
	return parsed
}

func TestAddFlags_EmptyConfig(t *testing.T) {
	opts := parsedOptions(t, Options{})

	AddFlags(opts, Flags{Help: true, Version: true})

	assert.Equal(t, schema.StringList{"help", "version"}, opts.ArgsOptions.Boolean)
	assert.Equal(t, schema.StringList{"h"}, opts.ArgsOptions.Alias["help"])
	assert.Equal(t, schema.StringList{"v"}, opts.ArgsOptions.Alias["version"])

	help, ok := findEntry(opts.Options, "help")
	require.True(t, ok)
	assert.Equal(t, schema.StringList{"Display this help message."}, help.Description)

	version, ok := findEntry(opts.Options, "version")
	require.True(t, ok)
	assert.Equal(t, schema.StringList{"Display the package name and version."}, version.Description)
}

func TestAddFlags_KeepsExistingDescription(t *testing.T) {
	opts := parsedOptions(t, Options{
		Options: []Entry{{Name: "help", Description: schema.StringList{"My custom help description."}}},
	})

	AddFlags(opts, Flags{Help: true})

	help, ok := findEntry(opts.Options, "help")
	require.True(t, ok)
	assert.Equal(t, schema.StringList{"My custom help description."}, help.Description)
	assert.Len(t, opts.Options, 1)
}

func TestAddFlags_OnlySelected(t *testing.T) {
	t.Run("help", func(t *testing.T) {
		opts := parsedOptions(t, Options{})

		AddFlags(opts, Flags{Help: true})

		assert.Equal(t, schema.StringList{"help"}, opts.ArgsOptions.Boolean)
		assert.Equal(t, schema.StringList{"h"}, opts.ArgsOptions.Alias["help"])
		assert.NotContains(t, opts.ArgsOptions.Alias, "version")
	})

	t.Run("version", func(t *testing.T) {
		opts := parsedOptions(t, Options{})

		AddFlags(opts, Flags{Version: true})

		assert.Equal(t, schema.StringList{"version"}, opts.ArgsOptions.Boolean)
		assert.Equal(t, schema.StringList{"v"}, opts.ArgsOptions.Alias["version"])
		assert.NotContains(t, opts.ArgsOptions.Alias, "help")
	})
}

func TestAddFlags_MergesWithoutDuplicates(t *testing.T) {
	opts := parsedOptions(t, Options{
		ArgsOptions: ArgsOptions{
			Boolean: schema.StringList{"debug", "help"},
			Alias:   map[string]schema.StringList{"debug": {"d"}},
		},
	})

	AddFlags(opts, Flags{Help: true})

	assert.Equal(t, schema.StringList{"debug", "help"}, opts.ArgsOptions.Boolean)
	assert.Equal(t, schema.StringList{"d"}, opts.ArgsOptions.Alias["debug"])
	assert.Equal(t, schema.StringList{"h"}, opts.ArgsOptions.Alias["help"])
}

func TestAddFlags_NoFlags(t *testing.T) {
	opts := parsedOptions(t, Options{
		ArgsOptions: ArgsOptions{Boolean: schema.StringList{"safe"}},
	})

	AddFlags(opts, Flags{})

	assert.Equal(t, schema.StringList{"safe"}, opts.ArgsOptions.Boolean)
	assert.Empty(t, opts.ArgsOptions.Alias)
	assert.Empty(t, opts.Options)
}

func TestAddFlags_SkipsClaimedShorthand(t *testing.T) {
	tests := []struct {
		name string
		args ArgsOptions
	}{
		{
			name: "alias of another option",
			args: ArgsOptions{
				String: schema.StringList{"host"},
				Alias:  map[string]schema.StringList{"host": {"h"}},
			},
		},
		{
			name: "single-letter option",
			args: ArgsOptions{Boolean: schema.StringList{"h"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := parsedOptions(t, Options{ArgsOptions: tt.args})

			AddFlags(opts, Flags{Help: true, Version: true})

			assert.Empty(t, opts.ArgsOptions.Alias["help"])
			assert.Equal(t, schema.StringList{"v"}, opts.ArgsOptions.Alias["version"])
		})
	}
}
