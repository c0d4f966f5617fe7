package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type decodeTarget struct {
	TargetFile string     `json:"targetFile" yaml:"targetFile"`
	Format     StringList `json:"format" yaml:"format"`
}

func TestStringList_JSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected StringList
	}{
		{"single", `{"format": "prettier"}`, StringList{"prettier"}},
		{"array", `{"format": ["prettier", "--write"]}`, StringList{"prettier", "--write"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out decodeTarget
			require.NoError(t, DecodeJSONStrict([]byte(tt.input), &out))
			assert.Equal(t, tt.expected, out.Format)
		})
	}
}

func TestStringList_JSONInvalid(t *testing.T) {
	var out decodeTarget
	err := DecodeJSONStrict([]byte(`{"format": 1}`), &out)

	assert.Error(t, err)
}

func TestStringList_YAML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected StringList
	}{
		{"scalar", "format: prettier\n", StringList{"prettier"}},
		{"sequence", "format:\n  - prettier\n  - --write\n", StringList{"prettier", "--write"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out decodeTarget
			require.NoError(t, DecodeYAMLStrict([]byte(tt.input), &out))
			assert.Equal(t, tt.expected, out.Format)
		})
	}
}

func TestDecodeStrict_UnknownKeys(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		var out decodeTarget
		err := DecodeJSONStrict([]byte(`{"workingDir": "x"}`), &out)

		require.Error(t, err)
		assert.Equal(t, `Validation error: Unrecognized key(s) "workingDir" in object`, err.Error())
	})

	t.Run("yaml", func(t *testing.T) {
		var out decodeTarget
		err := DecodeYAMLStrict([]byte("workingDir: x\n"), &out)

		require.Error(t, err)
		assert.Equal(t, `Validation error: Unrecognized key(s) "workingDir" in object`, err.Error())
	})
}

func TestStringList_Contains(t *testing.T) {
	list := StringList{"h", "help"}

	assert.True(t, list.Contains("h"))
	assert.False(t, list.Contains("v"))
}
