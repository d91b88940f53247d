package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate_ValidFile(t *testing.T) {
	ff := &FormFile{
		Action: "https://api.example.com/users",
		Method: "post",
		Controls: []ControlSpec{
			{Name: "name", Type: "text", Value: "a"},
			{Name: "_method", Type: "hidden", Value: "PUT"},
		},
	}

	assert.Empty(t, Validate(ff))
}

func TestValidate_MissingAction(t *testing.T) {
	errs := Validate(&FormFile{Method: "post"})

	assert.Len(t, errs, 1)
	assert.Equal(t, "action", errs[0].Path)
}

func TestValidate_BadMethod(t *testing.T) {
	errs := Validate(&FormFile{Action: "https://x", Method: "yeet"})

	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "invalid method")
}

func TestValidate_ControlProblems(t *testing.T) {
	ff := &FormFile{
		Action: "https://x",
		Controls: []ControlSpec{
			{Type: "text"},                   // missing name
			{Name: "f", Type: "file"},        // missing path
			{Name: "s", Type: "select-multiple"}, // missing options
			{Name: "x", Type: "canvas"},      // unknown type
			{Name: "_method", Value: "SPIN"}, // undispatchable override
		},
	}

	errs := Validate(ff)

	assert.Len(t, errs, 5)
}
