package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
	Note  string `json:"note,omitempty"`
}

func TestReflectArrayValidates(t *testing.T) {
	doc, err := ReflectArray(&entry{}, "Entries", true)
	require.NoError(t, err)
	assert.Contains(t, string(doc), `"type": "array"`)

	v, err := NewValidator("entries.json", doc)
	require.NoError(t, err)

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"empty array", `[]`, false},
		{"valid items", `[{"name":"a","count":1},{"name":"b","count":2,"note":"x"}]`, false},
		{"extra fields allowed", `[{"name":"a","count":1,"extra":true}]`, false},
		{"object instead of array", `{"name":"a","count":1}`, true},
		{"missing required field", `[{"name":"a"}]`, true},
		{"wrong field type", `[{"name":1,"count":1}]`, true},
		{"item not an object", `["a"]`, true},
		{"malformed json", `[{"name":`, true},
		{"trailing data", `[] []`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateJSON([]byte(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestReflectStrictObject(t *testing.T) {
	doc, err := Reflect(&entry{}, "Entry", false)
	require.NoError(t, err)

	v, err := NewValidator("entry.json", doc)
	require.NoError(t, err)

	assert.NoError(t, v.Validate(entry{Name: "a", Count: 3}))
	assert.Error(t, v.ValidateJSON([]byte(`{"name":"a","count":1,"extra":1}`)))
}
