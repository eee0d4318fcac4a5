//file: cmd/schema-gen/main_test.go

package main

import (
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/xeipuuv/gojsonschema"
)

const fixtureDefaults = `{
  "patterns": ["tests/**/*.yaml"],
  "ignore": [],
  "verbose": false,
  "dryRun": false,
  "testKeyword": "it",
  "no-defaults": false
}`

func TestGenerateSchemaRoundTrip(t *testing.T) {
	schemaBytes, err := GenerateSchema([]byte(fixtureDefaults))
	if err != nil {
		t.Fatalf("GenerateSchema() error = %v, want nil", err)
	}

	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemaBytes))
	if err != nil {
		t.Fatalf("generated schema does not compile: %v", err)
	}

	// The defaults it was generated from must validate.
	result, err := schema.Validate(gojsonschema.NewBytesLoader([]byte(fixtureDefaults)))
	if err != nil {
		t.Fatal(err)
	}
	if !result.Valid() {
		t.Errorf("defaults rejected by their own schema: %v", result.Errors())
	}

	// An unknown key must be rejected.
	result, err = schema.Validate(gojsonschema.NewStringLoader(
		strings.Replace(fixtureDefaults, `"verbose": false`, `"verbose": false, "extra": 1`, 1)))
	if err != nil {
		t.Fatal(err)
	}
	if result.Valid() {
		t.Error("schema accepted an unknown key, want additionalProperties: false")
	}

	// A missing key must be rejected: every default key is required.
	result, err = schema.Validate(gojsonschema.NewStringLoader(`{"patterns": []}`))
	if err != nil {
		t.Fatal(err)
	}
	if result.Valid() {
		t.Error("schema accepted a config missing required keys")
	}
}

func TestGenerateSchemaPreservesKeyOrder(t *testing.T) {
	schemaBytes, err := GenerateSchema([]byte(fixtureDefaults))
	if err != nil {
		t.Fatalf("GenerateSchema() error = %v, want nil", err)
	}
	schema := string(schemaBytes)

	last := -1
	for _, key := range []string{"patterns", "ignore", "verbose", "dryRun", "testKeyword", "no-defaults"} {
		idx := strings.Index(schema, `"`+key+`"`)
		if idx < 0 {
			t.Fatalf("schema missing key %q", key)
		}
		if idx < last {
			t.Errorf("key %q out of file order in schema", key)
		}
		last = idx
	}
}

func TestGenerateSchemaTypes(t *testing.T) {
	schemaBytes, err := GenerateSchema([]byte(fixtureDefaults))
	if err != nil {
		t.Fatalf("GenerateSchema() error = %v, want nil", err)
	}

	var schema map[string]interface{}
	if err := json.Unmarshal(schemaBytes, &schema); err != nil {
		t.Fatalf("generated schema is not valid JSON: %v", err)
	}

	props, _ := schema["properties"].(map[string]interface{})
	if props == nil {
		t.Fatal("schema has no properties object")
	}

	keyword, _ := props["testKeyword"].(map[string]interface{})
	enum, _ := keyword["enum"].([]interface{})
	if len(enum) != 2 {
		t.Errorf("testKeyword enum = %v, want [it test]", enum)
	}

	patterns, _ := props["patterns"].(map[string]interface{})
	if patterns["type"] != "array" {
		t.Errorf("patterns type = %v, want array", patterns["type"])
	}
	verbose, _ := props["verbose"].(map[string]interface{})
	if verbose["type"] != "boolean" {
		t.Errorf("verbose type = %v, want boolean", verbose["type"])
	}
}

func TestGenerateSchemaRejectsNonObject(t *testing.T) {
	if _, err := GenerateSchema([]byte(`["not", "an", "object"]`)); err == nil {
		t.Error("GenerateSchema() error = nil, want failure for a non-object config")
	}
}

func TestGenerateSchemaUninferableType(t *testing.T) {
	if _, err := GenerateSchema([]byte(`{"weird": null}`)); err == nil {
		t.Error("GenerateSchema() error = nil, want failure for a null default value")
	}
}
