package plugin

import (
	"html/template"
	"sync"

	"github.com/bgraf/pagetags/data"
	"github.com/rs/zerolog/log"
)

type Host struct {
	mu      sync.Mutex
	plugins []Plugin
	names   map[string]struct{}
}

func NewHost(plugins ...Plugin) *Host {
	h := &Host{
		names: make(map[string]struct{}),
	}

	for _, p := range plugins {
		h.Register(p)
	}

	return h
}

// Register appends p to the plugin list. It panics when a plugin with the
// same name is already registered.
func (h *Host) Register(p Plugin) {
	name := p.Name()
	if _, exists := h.names[name]; exists {
		panic("plugin already registered: " + name)
	}

	h.names[name] = struct{}{}
	h.plugins = append(h.plugins, p)

	log.Debug().Str("plugin", name).Msg("registered plugin")
}

func (h *Host) Plugins() []Plugin {
	plugins := make([]Plugin, len(h.plugins))
	copy(plugins, h.plugins)

	return plugins
}

// MetaHeaders returns the host's default headers extended by every plugin.
func (h *Host) MetaHeaders() map[string]string {
	headers := data.DefaultHeaders()

	for _, p := range h.plugins {
		if hook, ok := p.(MetaHeadersHook); ok {
			hook.OnMetaHeaders(headers)
		}
	}

	return headers
}

func (h *Host) MetaParsed(meta data.Meta) {
	for _, p := range h.plugins {
		if hook, ok := p.(MetaParsedHook); ok {
			hook.OnMetaParsed(meta)
		}
	}
}

// StoreOptions wires header registration and the meta parsed hook into a store.
func (h *Host) StoreOptions() *data.StoreOptions {
	return &data.StoreOptions{
		Headers:      h.MetaHeaders(),
		OnMetaParsed: h.MetaParsed,
	}
}

// NewStore loads all pages below rootDirectory through the plugins.
func (h *Host) NewStore(rootDirectory string) (*data.Store, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	return data.NewStore(rootDirectory, h.StoreOptions())
}

// Run starts a render cycle for current, runs the pages loaded hooks and
// calls f. Cycles are serialized, so f may use plugin state freely.
func (h *Host) Run(pages []*data.Page, current *data.Page, f func(cycle *Cycle) error) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	cycle := newCycle(pages, current)

	for _, p := range h.plugins {
		if hook, ok := p.(PagesLoadedHook); ok {
			hook.OnPagesLoaded(cycle)
		}
	}

	return f(cycle)
}

// TemplateFuncs copies base and lets every plugin add its functions for cycle.
func (h *Host) TemplateFuncs(cycle *Cycle, base template.FuncMap) template.FuncMap {
	funcs := make(template.FuncMap, len(base))
	for name, f := range base {
		funcs[name] = f
	}

	for _, p := range h.plugins {
		if hook, ok := p.(TemplateHook); ok {
			hook.OnTemplateRegistration(cycle, funcs)
		}
	}

	return funcs
}

func newCycle(pages []*data.Page, current *data.Page) *Cycle {
	cycle := &Cycle{
		Pages:   pages,
		Current: current,
	}

	if current == nil {
		return cycle
	}

	for i, p := range pages {
		if p != current {
			continue
		}

		if i > 0 {
			cycle.Previous = pages[i-1]
		}
		if i+1 < len(pages) {
			cycle.Next = pages[i+1]
		}

		break
	}

	return cycle
}

// Reload reads a page from disk again, running the meta parsed hooks under
// the host lock.
func (h *Host) Reload(store *data.Store, page *data.Page) (*data.Page, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	return store.ReloadByGUID(page.GUID)
}
