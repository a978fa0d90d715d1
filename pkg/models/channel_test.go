package models

import (
	"testing"

	"github.com/grovetools/playground/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseChannel(t *testing.T) {
	tests := []struct {
		input string
		want  Channel
	}{
		{"markup", Markup},
		{"HTML", Markup},
		{"htmlCode", Markup},
		{"css", Style},
		{" style ", Style},
		{"js", Script},
		{"javascript", Script},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseChannel(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseChannel("xml")
	assert.True(t, errors.Is(err, errors.ErrCodeUnknownChannel))
}

func TestChannelKeys(t *testing.T) {
	assert.Equal(t, "htmlCode", Markup.Key())
	assert.Equal(t, "cssCode", Style.Key())
	assert.Equal(t, "jsCode", Script.Key())
	assert.Equal(t, "HTML", Markup.Label())
	assert.Equal(t, "JS", Script.Label())
	assert.False(t, Channel("xml").Valid())
}

func TestSnapshotVersionRoundTrip(t *testing.T) {
	s := Snapshot{}.With(Markup, "<p>hi</p>").With(Style, "p{}").With(Script, "1")
	assert.Equal(t, "<p>hi</p>", s.Get(Markup))

	v := NewVersion("2026-10-17 09:00:00", s)
	assert.Equal(t, "p{}", v.CSS)
	assert.Equal(t, s, v.Snapshot())
}
