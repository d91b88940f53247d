package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a form file validation error
type ValidationError struct {
	Path    string
	Message string
}

// Error returns the error message
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

var knownControlTypes = map[string]bool{
	"":                true, // omitted type means a plain value control
	"text":            true,
	"hidden":          true,
	"checkbox":        true,
	"radio":           true,
	"password":        true,
	"textarea":        true,
	"select":          true,
	"select-multiple": true,
	"file":            true,
}

var knownMethods = map[string]bool{
	"GET": true, "POST": true, "PUT": true, "DELETE": true,
}

// Validate checks a form file definition before it is materialized.
func Validate(ff *FormFile) []ValidationError {
	var errors []ValidationError

	if ff.Action == "" {
		errors = append(errors, ValidationError{
			Path:    "action",
			Message: "action is required",
		})
	}

	if ff.Method != "" && !knownMethods[strings.ToUpper(ff.Method)] {
		errors = append(errors, ValidationError{
			Path:    "method",
			Message: fmt.Sprintf("invalid method: %s", ff.Method),
		})
	}

	for i, control := range ff.Controls {
		path := fmt.Sprintf("controls[%d]", i)

		if control.Name == "" {
			errors = append(errors, ValidationError{
				Path:    path + ".name",
				Message: "name is required",
			})
		}

		if !knownControlTypes[control.Type] {
			errors = append(errors, ValidationError{
				Path:    path + ".type",
				Message: fmt.Sprintf("unknown control type: %s", control.Type),
			})
		}

		if control.Type == "file" && control.Path == "" {
			errors = append(errors, ValidationError{
				Path:    path + ".path",
				Message: "file controls require a path",
			})
		}

		if control.Type == "select-multiple" && len(control.Options) == 0 {
			errors = append(errors, ValidationError{
				Path:    path + ".options",
				Message: "select-multiple controls require options",
			})
		}

		if control.Name == "_method" && !knownMethods[strings.ToUpper(control.Value)] {
			errors = append(errors, ValidationError{
				Path:    path + ".value",
				Message: fmt.Sprintf("_method override must be a dispatchable method, got %q", control.Value),
			})
		}
	}

	return errors
}
