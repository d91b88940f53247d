// Package encode serializes flat field mappings into URL-encoded query
// strings.
package encode

import (
	"fmt"
	"net/url"
	"strings"
)

// Bag is a flat mapping of field names to values. A value is either a
// scalar (string, number, bool) or a slice of scalars for multi-valued
// fields such as multi-select controls. Bags are supplied by the caller
// and never mutated by this package.
type Bag map[string]any

// Query serializes a Bag into a URL-encoded query string of the form
// "k1=v1&k2=v2". A slice value emits one pair per element, preserving
// element order. Pair order across distinct keys follows map iteration
// order and is not guaranteed.
//
// Encoding is URI-component style: spaces become %20, never +.
func Query(bag Bag) string {
	if len(bag) == 0 {
		return ""
	}

	var sb strings.Builder
	for key, value := range bag {
		switch v := value.(type) {
		case []string:
			for _, item := range v {
				appendPair(&sb, key, item)
			}
		case []any:
			for _, item := range v {
				appendPair(&sb, key, stringify(item))
			}
		default:
			appendPair(&sb, key, stringify(v))
		}
	}

	return sb.String()
}

func appendPair(sb *strings.Builder, key, value string) {
	if sb.Len() > 0 {
		sb.WriteByte('&')
	}
	sb.WriteString(Component(key))
	sb.WriteByte('=')
	sb.WriteString(Component(value))
}

// Component percent-encodes a single query component. url.QueryEscape
// encodes spaces as +, which form submission targets do not uniformly
// accept, so they are rewritten to %20.
func Component(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func stringify(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", s)
	}
}

// Pairs serializes an ordered list of name/value pairs. Unlike Query it
// guarantees output order, which form submission requires (controls are
// serialized in document order).
func Pairs(pairs [][2]string) string {
	var sb strings.Builder
	for _, p := range pairs {
		appendPair(&sb, p[0], p[1])
	}
	return sb.String()
}
