// Package jsonschema validates JSON documents against JSON Schema,
// backed by santhosh-tekuri/jsonschema.
package jsonschema

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Validate checks a JSON document against a schema. It returns false
// with a nil error when the document merely fails validation; a non-nil
// error means the schema or the document itself could not be parsed.
func Validate(document, schema string) (bool, error) {
	compiled, err := compile(schema)
	if err != nil {
		return false, err
	}

	var value any
	if err := json.Unmarshal([]byte(document), &value); err != nil {
		return false, fmt.Errorf("invalid JSON: %w", err)
	}

	return compiled.Validate(value) == nil, nil
}

// Errors returns the individual validation failures for a document, or
// nil when the document is valid.
func Errors(document, schema string) ([]string, error) {
	compiled, err := compile(schema)
	if err != nil {
		return nil, err
	}

	var value any
	if err := json.Unmarshal([]byte(document), &value); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	err = compiled.Validate(value)
	if err == nil {
		return nil, nil
	}

	validationErr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return []string{err.Error()}, nil
	}

	return flatten(validationErr), nil
}

func compile(schema string) (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", strings.NewReader(schema)); err != nil {
		return nil, fmt.Errorf("invalid schema: %w", err)
	}

	compiled, err := compiler.Compile("schema.json")
	if err != nil {
		return nil, fmt.Errorf("invalid schema: %w", err)
	}
	return compiled, nil
}

func flatten(err *jsonschema.ValidationError) []string {
	if len(err.Causes) == 0 {
		location := err.InstanceLocation
		if location == "" {
			location = "/"
		}
		return []string{fmt.Sprintf("%s: %s", location, err.Message)}
	}

	var out []string
	for _, cause := range err.Causes {
		out = append(out, flatten(cause)...)
	}
	return out
}
