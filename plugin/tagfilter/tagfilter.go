// Package tagfilter adds "Tags" and "Filter" meta headers to pages and lets
// templates narrow a page list to the pages sharing a tag with a filter.
//
// A page declares its own tags with "Tags: foo, bar". An index page declares
// "Filter: foo" and renders {{ applyTagFilter .Pages }} to list only pages
// tagged foo. Without a filter applyTagFilter returns the pages unchanged.
package tagfilter

import (
	"html/template"

	"github.com/bgraf/pagetags/data"
	"github.com/bgraf/pagetags/plugin"
	"github.com/bgraf/pagetags/tags"
	"github.com/rs/zerolog/log"
)

const (
	FieldTags   = "tags"
	FieldFilter = "filter"

	HeaderTags   = "Tags"
	HeaderFilter = "Filter"
)

// Template function names.
const (
	FuncApplyTagFilter = "applyTagFilter"
	FuncFilterByTags   = "filterByTags"
	FuncAllTags        = "allTags"
	FuncPageTags       = "pageTags"
	FuncPageFilter     = "pageFilter"
)

type TagFilter struct {
	allTags tags.Accumulator
}

func New() *TagFilter {
	return &TagFilter{}
}

func (tf *TagFilter) Name() string {
	return "tagfilter"
}

func (tf *TagFilter) OnMetaHeaders(headers map[string]string) {
	headers[FieldTags] = HeaderTags
	headers[FieldFilter] = HeaderFilter
}

func (tf *TagFilter) OnMetaParsed(meta data.Meta) {
	meta[FieldTags] = tags.Parse(meta[FieldTags])
	meta[FieldFilter] = tags.Parse(meta[FieldFilter])
}

// OnPagesLoaded collects the tags of all pages of the cycle.
func (tf *TagFilter) OnPagesLoaded(cycle *plugin.Cycle) {
	tf.allTags.Reset()

	for _, p := range cycle.Pages {
		tf.allTags.Add(PageTags(p))
	}

	log.Debug().Int("tags", tf.allTags.Len()).Int("pages", len(cycle.Pages)).Msg("collected tags")
}

func (tf *TagFilter) OnTemplateRegistration(cycle *plugin.Cycle, funcs template.FuncMap) {
	funcs[FuncApplyTagFilter] = func(pages []*data.Page) []*data.Page {
		if cycle == nil {
			return pages
		}

		return ApplyTagFilter(pages, cycle.Current)
	}
	funcs[FuncFilterByTags] = func(pages []*data.Page, filter interface{}) []*data.Page {
		return FilterByTags(pages, asList(filter))
	}
	funcs[FuncAllTags] = tf.AllTags
	funcs[FuncPageTags] = PageTags
	funcs[FuncPageFilter] = PageFilter
}

// AllTags returns every distinct tag seen in the current cycle.
func (tf *TagFilter) AllTags() tags.List {
	return tf.allTags.Tags()
}

// ApplyTagFilter narrows pages to those matching the filter of current.
// Without a current page or filter the pages are returned unchanged.
func ApplyTagFilter(pages []*data.Page, current *data.Page) []*data.Page {
	if current == nil {
		return pages
	}

	return FilterByTags(pages, PageFilter(current))
}

func FilterByTags(pages []*data.Page, filter tags.List) []*data.Page {
	return tags.Filter(pages, filter, PageTags)
}

// CollectAllTags returns the distinct tags of pages.
func CollectAllTags(pages []*data.Page) tags.List {
	return tags.Collect(pages, PageTags)
}

// PageTags returns the tags of p. Pages loaded without this plugin still
// carry the raw header string, which is parsed on the fly.
func PageTags(p *data.Page) tags.List {
	if p == nil {
		return tags.List{}
	}

	return asList(p.Meta[FieldTags])
}

func PageFilter(p *data.Page) tags.List {
	if p == nil {
		return tags.List{}
	}

	return asList(p.Meta[FieldFilter])
}

func asList(v interface{}) tags.List {
	if l, ok := v.(tags.List); ok {
		return l
	}

	return tags.Parse(v)
}
