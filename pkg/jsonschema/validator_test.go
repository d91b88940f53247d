package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const userSchema = `{
	"type": "object",
	"required": ["name"],
	"properties": {
		"name": {"type": "string"},
		"age": {"type": "integer", "minimum": 0}
	}
}`

func TestValidate_Valid(t *testing.T) {
	ok, err := Validate(`{"name":"alice","age":30}`, userSchema)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestValidate_Invalid(t *testing.T) {
	ok, err := Validate(`{"age":-1}`, userSchema)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestValidate_BadSchema(t *testing.T) {
	_, err := Validate(`{}`, `{`)
	assert.Error(t, err)
}

func TestValidate_BadDocument(t *testing.T) {
	_, err := Validate(`{not json`, userSchema)
	assert.Error(t, err)
}

func TestErrors_ReportsFailures(t *testing.T) {
	failures, err := Errors(`{"age":-1}`, userSchema)
	require.NoError(t, err)
	assert.NotEmpty(t, failures)
}

func TestErrors_NilForValidDocument(t *testing.T) {
	failures, err := Errors(`{"name":"bob"}`, userSchema)
	require.NoError(t, err)
	assert.Nil(t, failures)
}
