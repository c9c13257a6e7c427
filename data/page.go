package data

import (
	"path"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
)

type Page struct {
	Path  string            // File system path
	ID    string            // Slash separated path relative to the content root, without extension
	HTML  *goquery.Document // HTML content
	GUID  uuid.UUID
	Title string
	Date  time.Time
	Meta  Meta
}

func (p *Page) Directory() string {
	return path.Dir(p.Path)
}

func (p *Page) HasDate() bool {
	return !p.Date.IsZero()
}

func (p *Page) Description() string {
	return p.Meta.String(FieldDescription)
}

func (p *Page) Author() string {
	return p.Meta.String(FieldAuthor)
}

func (p *Page) Template() string {
	return p.Meta.String(FieldTemplate)
}

// IsHidden reports whether the page asked to be left out of page listings.
func (p *Page) IsHidden() bool {
	switch v := p.Meta[FieldHidden].(type) {
	case bool:
		return v
	case string:
		return v == "true" || v == "yes"
	}

	return false
}
