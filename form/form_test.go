package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInspect_DeclaredMethodUpperCased(t *testing.T) {
	f := &Form{
		Method: "post",
		Controls: []Control{
			{Name: "name", Type: "text", Value: "a"},
		},
	}

	snap := Inspect(f)

	assert.Equal(t, "POST", snap.Method)
	assert.False(t, snap.Multipart)
	assert.Equal(t, []Pair{{"name", "a"}}, snap.Pairs)
}

func TestInspect_MethodOverrideWins(t *testing.T) {
	f := &Form{
		Method: "post",
		Controls: []Control{
			{Name: "_method", Type: "hidden", Value: "delete"},
			{Name: "id", Type: "hidden", Value: "7"},
		},
	}

	snap := Inspect(f)

	assert.Equal(t, "DELETE", snap.Method)
	// The shim control still serializes like any other control.
	assert.Equal(t, []Pair{{"_method", "delete"}, {"id", "7"}}, snap.Pairs)
}

func TestInspect_EmptyMethodDefaultsToGet(t *testing.T) {
	snap := Inspect(&Form{})

	assert.Equal(t, "GET", snap.Method)
}

func TestInspect_MultipartFromEnctype(t *testing.T) {
	f := &Form{Method: "post", Enctype: MultipartEnctype}

	assert.True(t, Inspect(f).Multipart)
}

func TestInspect_MultipartFromFileControl(t *testing.T) {
	f := &Form{
		Method:  "post",
		Enctype: "application/x-www-form-urlencoded",
		Controls: []Control{
			{Name: "avatar", Type: TypeFile, Filename: "a.png", Content: []byte{1}},
		},
	}

	assert.True(t, Inspect(f).Multipart, "file control forces multipart regardless of enctype")
}

func TestInspect_MethodShimNeverDisablesMultipart(t *testing.T) {
	f := &Form{
		Method:  "post",
		Enctype: MultipartEnctype,
		Controls: []Control{
			{Name: "_method", Type: "hidden", Value: "put"},
		},
	}

	snap := Inspect(f)

	assert.Equal(t, "PUT", snap.Method)
	assert.True(t, snap.Multipart)
}

func TestInspect_SelectMultipleEmitsSelectedOptions(t *testing.T) {
	f := &Form{
		Method: "get",
		Controls: []Control{
			{Name: "tag", Type: TypeSelectMultiple, Options: []Option{
				{Value: "red", Selected: true},
				{Value: "green"},
				{Value: "blue", Selected: true},
			}},
		},
	}

	snap := Inspect(f)

	assert.Equal(t, []Pair{{"tag", "red"}, {"tag", "blue"}}, snap.Pairs)
}

func TestInspect_PermissiveSerialization(t *testing.T) {
	// Controls serialize unconditionally; there is no disabled/unchecked
	// filtering in this layer.
	f := &Form{
		Method: "post",
		Controls: []Control{
			{Name: "a", Type: "checkbox", Value: "unchecked-still-sent"},
			{Name: "b", Type: "text", Value: ""},
		},
	}

	snap := Inspect(f)

	assert.Len(t, snap.Pairs, 2)
}

func TestSnapshot_EncodePreservesDocumentOrder(t *testing.T) {
	snap := Snapshot{Pairs: []Pair{{"z", "1"}, {"a", "two words"}}}

	assert.Equal(t, "z=1&a=two%20words", snap.Encode())
}
