package schema

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

func reflector(allowAdditional bool) *jsonschema.Reflector {
	return &jsonschema.Reflector{
		AllowAdditionalProperties: allowAdditional,
		ExpandedStruct:            true,
		Anonymous:                 true,
	}
}

// Reflect generates the schema document for v's struct type.
func Reflect(v interface{}, title string, allowAdditional bool) ([]byte, error) {
	s := reflector(allowAdditional).Reflect(v)
	s.Title = title
	return json.MarshalIndent(s, "", "  ")
}

// ReflectArray generates the schema document for a JSON array whose items
// are objects of item's struct type.
func ReflectArray(item interface{}, title string, allowAdditional bool) ([]byte, error) {
	itemSchema := reflector(allowAdditional).Reflect(item)
	itemSchema.Version = ""

	doc := &jsonschema.Schema{
		Version:     jsonschema.Version,
		Title:       title,
		Type:        "array",
		Items:       itemSchema,
		Definitions: itemSchema.Definitions,
	}
	itemSchema.Definitions = nil

	return json.MarshalIndent(doc, "", "  ")
}
