package encode

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuery_ScalarRoundTrip(t *testing.T) {
	bag := Bag{
		"name":  "Jean Grey",
		"team":  "x-men",
		"level": 9,
		"alive": true,
	}

	encoded := Query(bag)
	decoded, err := url.ParseQuery(encoded)
	require.NoError(t, err)

	// Order across keys is map iteration order; compare as a set.
	assert.Equal(t, "Jean Grey", decoded.Get("name"))
	assert.Equal(t, "x-men", decoded.Get("team"))
	assert.Equal(t, "9", decoded.Get("level"))
	assert.Equal(t, "true", decoded.Get("alive"))
	assert.Len(t, decoded, 4)
}

func TestQuery_SliceEmitsOnePairPerElement(t *testing.T) {
	bag := Bag{"tag": []string{"b", "a", "c"}}

	encoded := Query(bag)

	assert.Equal(t, "tag=b&tag=a&tag=c", encoded)
}

func TestQuery_AnySliceKeepsOrder(t *testing.T) {
	bag := Bag{"id": []any{3, 1, 2}}

	assert.Equal(t, "id=3&id=1&id=2", Query(bag))
}

func TestQuery_SpacesEncodeAsPercent20(t *testing.T) {
	encoded := Query(Bag{"q": "hello world"})

	assert.Equal(t, "q=hello%20world", encoded)
	assert.NotContains(t, encoded, "+")
}

func TestQuery_ReservedCharacters(t *testing.T) {
	encoded := Query(Bag{"expr": "a&b=c"})

	assert.Equal(t, "expr=a%26b%3Dc", encoded)
}

func TestQuery_EmptyAndNilBags(t *testing.T) {
	assert.Equal(t, "", Query(nil))
	assert.Equal(t, "", Query(Bag{}))
}

func TestQuery_NilValueEncodesEmpty(t *testing.T) {
	assert.Equal(t, "note=", Query(Bag{"note": nil}))
}

func TestPairs_PreservesOrder(t *testing.T) {
	encoded := Pairs([][2]string{
		{"z", "1"},
		{"a", "2"},
		{"z", "3"},
	})

	assert.Equal(t, "z=1&a=2&z=3", encoded)
}
