package sarif

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/kaptinlin/jsonschema"
)

//go:embed sarif-schema-2.1.0.json
var schemaJSON []byte

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.AssertFormat = true
		schema, schemaErr = compiler.Compile(schemaJSON)
		if schemaErr != nil {
			schemaErr = fmt.Errorf("compile sarif schema: %w", schemaErr)
		}
	})
	return schema, schemaErr
}

// Validate checks encoded SARIF against the embedded 2.1.0 schema.
func Validate(data []byte) error {
	s, err := compiledSchema()
	if err != nil {
		return err
	}
	result := s.ValidateJSON(data)
	if result.IsValid() {
		return nil
	}
	return fmt.Errorf("sarif schema validation failed: %v", result.Errors)
}

// ValidateLog encodes log and validates the encoding.
func ValidateLog(log *Log) error {
	data, err := Marshal(log)
	if err != nil {
		return err
	}
	return Validate(data)
}
