// Package form models HTML-style forms and derives how they should be
// submitted: the effective HTTP method (honoring the _method override
// shim), whether multipart encoding is required, and the ordered
// name/value pairs of the form's controls.
//
// Serialization is deliberately permissive: every named control emits
// its pair regardless of disabled or checked state. Callers are assumed
// to hand over exactly the controls they want sent.
package form

import (
	"errors"
	"strings"

	"github.com/formwire/formwire/encode"
)

// Control type values with behavior attached. Any other type string is
// treated as a plain value-carrying control.
const (
	TypeFile           = "file"
	TypeSelectMultiple = "select-multiple"
)

// MultipartEnctype is the enctype attribute value that forces a
// multipart submission.
const MultipartEnctype = "multipart/form-data"

// methodOverride is the name of the shim control whose value replaces
// the form's declared method.
const methodOverride = "_method"

// ErrInvalidMethod reports a form whose effective method cannot be
// dispatched. Detected fast at submission time rather than producing an
// undefined result.
var ErrInvalidMethod = errors.New("invalid form method")

// Option is one choice of a select-multiple control.
type Option struct {
	Value    string
	Selected bool
}

// Control is a single named form control. File controls carry their
// filename and content; select-multiple controls carry their options.
type Control struct {
	Name     string
	Type     string
	Value    string
	Options  []Option
	Filename string
	Content  []byte
}

// Form is an externally owned, externally mutable form. Nothing derived
// from it is cached; Inspect walks the controls fresh on every call.
// Action is the submission URL.
type Form struct {
	Action   string
	Method   string
	Enctype  string
	Controls []Control
}

// Pair is one serialized (name, value) entry in document order.
type Pair struct {
	Name  string
	Value string
}

// Snapshot is the derived submission shape of a form at one instant.
type Snapshot struct {
	Method    string
	Multipart bool
	Pairs     []Pair
}

// Inspect computes the snapshot for a form: effective method, multipart
// requirement, and serialized pairs.
//
// A _method control wins over the declared method attribute, upper-cased.
// Multipart is required when the enctype is exactly multipart/form-data
// or any control is a file control; the method shim never disables it.
func Inspect(f *Form) Snapshot {
	method := strings.ToUpper(f.Method)
	if method == "" {
		method = "GET"
	}

	snapshot := Snapshot{
		Multipart: f.Enctype == MultipartEnctype,
	}

	for _, control := range f.Controls {
		if control.Type == TypeFile {
			snapshot.Multipart = true
		}
		if control.Name == methodOverride {
			method = strings.ToUpper(control.Value)
		}

		switch control.Type {
		case TypeSelectMultiple:
			for _, option := range control.Options {
				if option.Selected {
					snapshot.Pairs = append(snapshot.Pairs, Pair{control.Name, option.Value})
				}
			}
		default:
			snapshot.Pairs = append(snapshot.Pairs, Pair{control.Name, control.Value})
		}
	}

	snapshot.Method = method
	return snapshot
}

// Encode serializes the snapshot's pairs as a URL-encoded string,
// preserving document order.
func (s Snapshot) Encode() string {
	pairs := make([][2]string, len(s.Pairs))
	for i, p := range s.Pairs {
		pairs[i] = [2]string{p.Name, p.Value}
	}
	return encode.Pairs(pairs)
}
