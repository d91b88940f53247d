// Package jsonpath extracts values from JSON documents using JSONPath
// expressions, backed by gjson.
package jsonpath

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// Extract resolves a JSONPath expression against a JSON document and
// returns the matched value rendered as a string. Missing paths are an
// error; a JSON null renders as "null".
func Extract(document, path string) (string, error) {
	if document == "" {
		return "", fmt.Errorf("empty JSON document")
	}
	if path == "" {
		return "", fmt.Errorf("empty JSONPath expression")
	}

	result := gjson.Get(document, toGjsonPath(path))
	if !result.Exists() {
		return "", fmt.Errorf("path not found: %s", path)
	}

	if result.Type == gjson.Null {
		return "null", nil
	}

	return result.String(), nil
}

// toGjsonPath rewrites a JSONPath expression into gjson's dotted form:
// $.users[0].name -> users.0.name. Filter expressions and wildcards are
// not supported.
func toGjsonPath(path string) string {
	path = strings.TrimPrefix(path, "$")
	if path == "" {
		return "@this"
	}
	path = strings.TrimPrefix(path, ".")

	// Bracket notation: ['name'] / ["name"] / [0]
	replacer := strings.NewReplacer(
		"['", ".", "']", "",
		`["`, ".", `"]`, "",
		"[", ".", "]", "",
	)
	path = replacer.Replace(path)

	return strings.TrimPrefix(path, ".")
}
