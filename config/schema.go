//file: config/schema.go

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// SchemaValidator holds a compiled JSON Schema (draft-07). It is
// constructed once at startup and passed explicitly to everything that
// validates configuration; there is no package-level validator state.
type SchemaValidator struct {
	schema *gojsonschema.Schema
	path   string
}

// NewSchemaValidator reads and compiles the schema file at path. A
// missing or malformed schema is fatal to startup, so the error is
// returned as-is for the caller to surface.
func NewSchemaValidator(path string) (*SchemaValidator, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}

	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema %s: %w", path, err)
	}

	return &SchemaValidator{schema: schema, path: path}, nil
}

// Validate runs the compiled schema against raw. Every violation is
// logged individually (field path plus message) and folded into the
// returned error, so a failing config surfaces complete diagnostics
// rather than just the first problem. sourceLabel names the config
// being checked ("default config", a project file path, the merged
// result) in the diagnostics.
func (v *SchemaValidator) Validate(raw RawConfig, sourceLabel string, log Logger) error {
	result, err := v.schema.Validate(gojsonschema.NewGoLoader(map[string]interface{}(raw)))
	if err != nil {
		return fmt.Errorf("schema validation of %s failed to run: %w", sourceLabel, err)
	}

	if result.Valid() {
		return nil
	}

	var details []string
	for _, violation := range result.Errors() {
		field := violation.Field()
		msg := violation.Description()
		log.Error("config schema violation",
			"source", sourceLabel,
			"field", field,
			"problem", msg)
		details = append(details, fmt.Sprintf("%s: %s", field, msg))
	}

	return fmt.Errorf("%s does not match the config schema: %s",
		sourceLabel, strings.Join(details, "; "))
}
