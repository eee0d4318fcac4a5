//file: cmd/schema-gen/main.go

// schema-gen regenerates config/config.schema.json from
// config/default.json so the two can never drift: every key in the
// default config becomes a required, typed schema property and nothing
// else is allowed.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"

	json "github.com/goccy/go-json"
)

func main() {
	defaultPath := flag.String("default", "config/default.json", "path to the default config")
	schemaPath := flag.String("out", "config/config.schema.json", "path to write the schema to")
	flag.Parse()

	if err := run(*defaultPath, *schemaPath); err != nil {
		log.Fatal(err)
	}
}

func run(defaultPath, schemaPath string) error {
	data, err := os.ReadFile(defaultPath)
	if err != nil {
		return fmt.Errorf("failed to read default config: %w", err)
	}

	schema, err := GenerateSchema(data)
	if err != nil {
		return err
	}

	if err := os.WriteFile(schemaPath, schema, 0644); err != nil {
		return fmt.Errorf("failed to write schema: %w", err)
	}
	fmt.Printf("wrote %s\n", schemaPath)
	return nil
}

// GenerateSchema derives a draft-07 schema from the default config
// bytes. Property order follows the key order of the config file.
func GenerateSchema(defaultConfig []byte) ([]byte, error) {
	var values map[string]interface{}
	if err := json.Unmarshal(defaultConfig, &values); err != nil {
		return nil, fmt.Errorf("default config is not valid JSON: %w", err)
	}

	keys, err := topLevelKeys(defaultConfig)
	if err != nil {
		return nil, err
	}

	var b bytes.Buffer
	b.WriteString("{\n")
	b.WriteString("  \"$schema\": \"http://json-schema.org/draft-07/schema#\",\n")
	b.WriteString("  \"title\": \"testweave configuration\",\n")
	b.WriteString("  \"type\": \"object\",\n")
	b.WriteString("  \"additionalProperties\": false,\n")

	b.WriteString("  \"required\": [\n")
	for i, key := range keys {
		comma := ","
		if i == len(keys)-1 {
			comma = ""
		}
		fmt.Fprintf(&b, "    %q%s\n", key, comma)
	}
	b.WriteString("  ],\n")

	b.WriteString("  \"properties\": {\n")
	for i, key := range keys {
		prop, err := propertySchema(key, values[key])
		if err != nil {
			return nil, err
		}
		comma := ","
		if i == len(keys)-1 {
			comma = ""
		}
		fmt.Fprintf(&b, "    %q: %s%s\n", key, prop, comma)
	}
	b.WriteString("  }\n")
	b.WriteString("}\n")
	return b.Bytes(), nil
}

// propertySchema infers the schema fragment for one default value.
// testKeyword is special-cased to its enum.
func propertySchema(key string, value interface{}) (string, error) {
	if key == "testKeyword" {
		return `{ "type": "string", "enum": ["it", "test"] }`, nil
	}
	switch value.(type) {
	case bool:
		return `{ "type": "boolean" }`, nil
	case string:
		return `{ "type": "string" }`, nil
	case float64:
		return `{ "type": "number" }`, nil
	case []interface{}:
		return `{ "type": "array", "items": { "type": "string" } }`, nil
	default:
		return "", fmt.Errorf("cannot infer a schema type for key %q", key)
	}
}

// topLevelKeys extracts the object's keys in file order, which a plain
// unmarshal into a map would lose.
func topLevelKeys(data []byte) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("default config is not valid JSON: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("default config must be a JSON object")
	}

	var keys []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("default config is not valid JSON: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v in default config", tok)
		}
		keys = append(keys, key)

		// Skip the value, whatever shape it is.
		var discard interface{}
		if err := dec.Decode(&discard); err != nil {
			return nil, fmt.Errorf("default config is not valid JSON: %w", err)
		}
	}
	return keys, nil
}
