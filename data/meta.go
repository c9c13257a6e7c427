package data

import "strings"

// Internal field ids of the headers known to the host.
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldAuthor      = "author"
	FieldDate        = "date"
	FieldTemplate    = "template"
	FieldHidden      = "hidden"
	FieldGUID        = "guid"
)

// Meta holds the parsed meta block of a page keyed by field id.
type Meta map[string]interface{}

func (m Meta) String(field string) string {
	if s, ok := m[field].(string); ok {
		return s
	}

	return ""
}

// DefaultHeaders maps the field ids the host understands on its own to
// their header names.
func DefaultHeaders() map[string]string {
	return map[string]string{
		FieldTitle:       "Title",
		FieldDescription: "Description",
		FieldAuthor:      "Author",
		FieldDate:        "Date",
		FieldTemplate:    "Template",
		FieldHidden:      "Hidden",
		FieldGUID:        "GUID",
	}
}

// ParseMeta turns the raw meta block into Meta. Keys are matched case
// insensitively. Every registered header is renamed to its field id, and
// registered headers missing from the block are set to the empty string.
func ParseMeta(raw map[string]interface{}, headers map[string]string) Meta {
	meta := make(Meta, len(raw)+len(headers))
	for k, v := range raw {
		meta[strings.ToLower(k)] = v
	}

	for fieldID, headerName := range headers {
		headerKey := strings.ToLower(headerName)
		if v, ok := meta[headerKey]; ok {
			if headerKey != fieldID {
				meta[fieldID] = v
				delete(meta, headerKey)
			}
		} else if _, ok := meta[fieldID]; !ok {
			meta[fieldID] = ""
		}
	}

	return meta
}
