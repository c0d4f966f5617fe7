package clirk

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClitch(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode int
		contains     []string
		notContains  []string
	}{
		{
			name:         "success",
			expectedCode: 0,
		},
		{
			name:         "exited",
			err:          fmt.Errorf("wrapped: %w", ErrExited),
			expectedCode: 0,
		},
		{
			name:         "user error",
			err:          NewUserError("file is not writable: README.md", nil),
			expectedCode: 1,
			contains:     []string{"file is not writable: README.md"},
			notContains:  []string{"Error:", HelpHint},
		},
		{
			name:         "user error with cause",
			err:          NewUserError("failed to parse the config file: ./x.yaml", errors.New("bad yaml")),
			expectedCode: 1,
			contains:     []string{"failed to parse the config file: ./x.yaml (bad yaml)"},
		},
		{
			name:         "usage error",
			err:          UsageError("unknown flag: --x", nil),
			expectedCode: 1,
			contains:     []string{"unknown flag: --x", HelpHint},
		},
		{
			name:         "unexpected error",
			err:          errors.New("boom"),
			expectedCode: 1,
			contains:     []string{"Error: boom"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := &bytes.Buffer{}

			code := Clitch(context.Background(), out, func(context.Context) error { return tt.err })

			assert.Equal(t, tt.expectedCode, code)
			for _, s := range tt.contains {
				assert.Contains(t, out.String(), s)
			}
			for _, s := range tt.notContains {
				assert.NotContains(t, out.String(), s)
			}
			if tt.expectedCode == 0 {
				assert.Empty(t, out.String())
			}
		})
	}
}

func TestOutputHelpers(t *testing.T) {
	assert.Contains(t, Success("done"), SymbolSuccess+" done")
	assert.Contains(t, Failure("bad"), SymbolFailure+" bad")
	assert.Contains(t, Warning("hmm"), SymbolWarning+" hmm")
	assert.Contains(t, Terminated("stop"), SymbolTerminated+" stop")
	assert.Contains(t, Info("fyi"), SymbolInfo+" fyi")
}
