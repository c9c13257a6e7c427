// Package plugin defines the hooks a plugin can implement and the Host that
// invokes them at fixed points of the load and render pipeline.
//
// A plugin implements Plugin plus any subset of the hook interfaces. The Host
// calls hooks in registration order and never concurrently.
package plugin

import (
	"html/template"

	"github.com/bgraf/pagetags/data"
)

type Plugin interface {
	Name() string
}

// MetaHeadersHook is invoked before any meta block is parsed. Implementations
// add entries mapping a field id to the header name used in meta blocks.
type MetaHeadersHook interface {
	OnMetaHeaders(headers map[string]string)
}

// MetaParsedHook is invoked once per page right after its meta block was parsed.
type MetaParsedHook interface {
	OnMetaParsed(meta data.Meta)
}

// PagesLoadedHook is invoked at the start of every render cycle, after all
// pages are loaded and before anything is rendered.
type PagesLoadedHook interface {
	OnPagesLoaded(cycle *Cycle)
}

// TemplateHook registers template functions. It is invoked once with a nil
// cycle when the templates are parsed, then again for every render cycle.
// The names and signatures registered must not depend on the cycle.
type TemplateHook interface {
	OnTemplateRegistration(cycle *Cycle, funcs template.FuncMap)
}

// Cycle is the render of a single page.
type Cycle struct {
	Pages    []*data.Page // all pages, in display order
	Current  *data.Page   // page being rendered, nil for listings
	Previous *data.Page
	Next     *data.Page
}
