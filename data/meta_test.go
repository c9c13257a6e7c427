package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMeta_RenamesRegisteredHeaders(t *testing.T) {
	raw := map[string]interface{}{
		"Title":      "Hello",
		"Tags":       "a, b",
		"Some Thing": 1,
	}
	headers := map[string]string{
		"title": "Title",
		"tags":  "Tags",
		"other": "Some Thing",
	}

	m := ParseMeta(raw, headers)

	assert.Equal(t, "Hello", m["title"])
	assert.Equal(t, "a, b", m["tags"])
	assert.Equal(t, 1, m["other"])
	assert.NotContains(t, m, "some thing")
}

func TestParseMeta_MissingHeadersAreEmpty(t *testing.T) {
	m := ParseMeta(nil, map[string]string{"filter": "Filter"})

	assert.Contains(t, m, "filter")
	assert.Equal(t, "", m["filter"])
}

func TestParseMeta_KeepsUnregisteredKeys(t *testing.T) {
	m := ParseMeta(map[string]interface{}{"Custom": "x"}, DefaultHeaders())

	assert.Equal(t, "x", m["custom"])
	assert.Equal(t, "", m.String(FieldTitle))
}

func TestMeta_String(t *testing.T) {
	m := Meta{"s": "text", "n": 3}

	assert.Equal(t, "text", m.String("s"))
	assert.Equal(t, "", m.String("n"))
	assert.Equal(t, "", m.String("missing"))
}
