package config

import (
	"sync"

	"github.com/grovetools/playground/schema"
)

var (
	schemaOnce      sync.Once
	schemaValidator *schema.Validator
	schemaErr       error
)

// GenerateSchema generates the JSON Schema for playground.yml. Unknown
// top-level sections are allowed since they carry extensions.
func GenerateSchema() ([]byte, error) {
	return schema.Reflect(&Config{}, "Playground Configuration", true)
}

func validator() (*schema.Validator, error) {
	schemaOnce.Do(func() {
		doc, err := GenerateSchema()
		if err != nil {
			schemaErr = err
			return
		}
		schemaValidator, schemaErr = schema.NewValidator("playground.schema.json", doc)
	})
	return schemaValidator, schemaErr
}

// validateSchema checks decoded configuration values against the schema.
func validateSchema(values map[string]interface{}) error {
	v, err := validator()
	if err != nil {
		return err
	}
	return v.Validate(values)
}
