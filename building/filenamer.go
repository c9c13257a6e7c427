package building

import (
	"fmt"
	"hash/fnv"
	"strings"
	"unicode"

	"github.com/bgraf/pagetags/data"
)

const (
	indexFileName = "index.html"
	tagsFileName  = "tags.html"
	staticDirName = "res"
)

// normalizeFileName lowercases s and replaces everything but letters and
// digits by '_'. When that changes s, a hash of s is appended after a '-',
// which never occurs in a normalized name, so "Go" and "go" keep apart.
func normalizeFileName(s string) string {
	normalized := strings.Map(func(r rune) rune {
		r = unicode.ToLower(r)
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '_'
	}, s)

	if normalized == s {
		return normalized
	}

	return withHash(normalized, s)
}

func withHash(name, s string) string {
	h := fnv.New32a()
	h.Write([]byte(s))

	return fmt.Sprintf("%s-%08x", name, h.Sum32())
}

// Filenamer names the files of a build. All names are relative to the
// build directory, so they double as relative links.
type Filenamer struct {
}

// PageFile names the file of p. Only a visible "index" page may take
// index.html, and no page takes tags.html.
func (f Filenamer) PageFile(p *data.Page) string {
	name := normalizeFileName(p.ID)

	switch {
	case name == "tags":
		name = withHash(name, p.ID)
	case name == data.LandingPageID && p.IsHidden():
		name = withHash(name, p.ID)
	}

	return fmt.Sprintf("%s.html", name)
}

func (f Filenamer) TagFile(tag string) string {
	return fmt.Sprintf("tag-%s.html", normalizeFileName(tag))
}

func (f Filenamer) IndexURL() string {
	return "./" + indexFileName
}

func (f Filenamer) TagsURL() string {
	return "./" + tagsFileName
}

func (f Filenamer) PageURL(p *data.Page) string {
	return "./" + f.PageFile(p)
}

func (f Filenamer) TagURL(tag string) string {
	return "./" + f.TagFile(tag)
}

func (f Filenamer) StaticURL(name string) string {
	return fmt.Sprintf("./%s/%s", staticDirName, name)
}
