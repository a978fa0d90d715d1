package cli

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/grovetools/playground/errors"
	"github.com/stretchr/testify/assert"
)

func TestErrorHandlerMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want []string
	}{
		{"version not found", errors.VersionNotFound(4, 2), []string{"Version 4 does not exist (2 saved)", "playground history"}},
		{"unknown channel", errors.UnknownChannel("sass"), []string{`Unknown channel "sass"`, "html, css, js"}},
		{"corrupt archive", errors.ArchiveCorrupt("miniEditorVersions", fmt.Errorf("bad json")), []string{`"miniEditorVersions" cannot be read`}},
		{"wrapped code", fmt.Errorf("restore: %w", errors.VersionNotFound(1, 0)), []string{"Version 1 does not exist"}},
		{"plain error", fmt.Errorf("boom"), []string{"Error: boom"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := &ErrorHandler{Out: &buf}
			assert.Equal(t, tt.err, h.Handle(tt.err))
			for _, w := range tt.want {
				assert.Contains(t, buf.String(), w)
			}
		})
	}
}

func TestErrorHandlerVerboseDetails(t *testing.T) {
	var buf bytes.Buffer
	h := &ErrorHandler{Verbose: true, Out: &buf}
	h.Handle(errors.UnknownChannel("sass"))

	assert.Contains(t, buf.String(), "Error details:")
	assert.Contains(t, buf.String(), `"UNKNOWN_CHANNEL"`)
}

func TestErrorHandlerNil(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, (&ErrorHandler{Out: &buf}).Handle(nil))
	assert.Empty(t, buf.String())
}
