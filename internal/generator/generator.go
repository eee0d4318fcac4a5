//file: internal/generator/generator.go

// Package generator turns a parsed YAML outline into a skeleton test
// file of nested describe blocks and todo test stubs.
package generator

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const indentStep = "  "

// Generate renders the skeleton for one YAML document. Mapping keys
// whose values nest further become describe blocks; scalar values,
// sequence items and keys with empty values become todo stubs. Sibling
// order follows the document, which is why this works on yaml.Node
// rather than a map. testKeyword is "it" or "test".
func Generate(doc *yaml.Node, testKeyword, sourceName string) (string, error) {
	if testKeyword == "" {
		testKeyword = "it"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "// Generated from %s. Do not edit by hand.\n", sourceName)

	node := unwrap(doc)
	if node == nil {
		return b.String(), nil
	}

	b.WriteString("\n")
	if err := writeNode(&b, node, testKeyword, 0); err != nil {
		return "", fmt.Errorf("failed to generate skeleton for %s: %w", sourceName, err)
	}
	return b.String(), nil
}

// unwrap strips the document wrapper and reports nil for empty input.
func unwrap(doc *yaml.Node) *yaml.Node {
	if doc == nil || doc.Kind == 0 {
		return nil
	}
	if doc.Kind == yaml.DocumentNode {
		if len(doc.Content) == 0 {
			return nil
		}
		return doc.Content[0]
	}
	return doc
}

func writeNode(b *strings.Builder, node *yaml.Node, keyword string, depth int) error {
	switch node.Kind {
	case yaml.MappingNode:
		// Content alternates key, value.
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i]
			value := node.Content[i+1]
			if err := writeEntry(b, key.Value, value, keyword, depth); err != nil {
				return err
			}
		}
		return nil
	case yaml.SequenceNode:
		for _, item := range node.Content {
			if err := writeItem(b, item, keyword, depth); err != nil {
				return err
			}
		}
		return nil
	case yaml.ScalarNode:
		if !isEmptyScalar(node) {
			writeTodo(b, node.Value, keyword, depth)
		}
		return nil
	case yaml.AliasNode:
		if node.Alias != nil {
			return writeNode(b, node.Alias, keyword, depth)
		}
		return nil
	default:
		return fmt.Errorf("unsupported YAML node kind %d at line %d", node.Kind, node.Line)
	}
}

// writeEntry renders one mapping entry. An entry with nothing under it
// is a todo; anything nested opens a describe block named by the key.
func writeEntry(b *strings.Builder, key string, value *yaml.Node, keyword string, depth int) error {
	if value.Kind == yaml.ScalarNode && isEmptyScalar(value) {
		writeTodo(b, key, keyword, depth)
		return nil
	}

	indent := strings.Repeat(indentStep, depth)
	fmt.Fprintf(b, "%sdescribe('%s', () => {\n", indent, escape(key))
	if err := writeNode(b, value, keyword, depth+1); err != nil {
		return err
	}
	fmt.Fprintf(b, "%s});\n", indent)
	return nil
}

// writeItem renders one sequence element: scalars become todos,
// mappings recurse so outlines can nest describe blocks inside lists.
func writeItem(b *strings.Builder, item *yaml.Node, keyword string, depth int) error {
	if item.Kind == yaml.ScalarNode {
		if !isEmptyScalar(item) {
			writeTodo(b, item.Value, keyword, depth)
		}
		return nil
	}
	return writeNode(b, item, keyword, depth)
}

func writeTodo(b *strings.Builder, name, keyword string, depth int) {
	fmt.Fprintf(b, "%s%s.todo('%s');\n", strings.Repeat(indentStep, depth), keyword, escape(name))
}

// isEmptyScalar reports whether a scalar carries no content (an
// explicit null or a bare key with nothing after the colon).
func isEmptyScalar(node *yaml.Node) bool {
	return node.Tag == "!!null" || node.Value == ""
}

// escape makes a string safe inside a single-quoted JS literal.
func escape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `'`, `\'`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return s
}
