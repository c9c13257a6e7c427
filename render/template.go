package render

import (
	"fmt"
	"html/template"
	"io"

	"github.com/bgraf/pagetags/data"
	"github.com/bgraf/pagetags/plugin"
	"github.com/bgraf/pagetags/res"
	"github.com/goodsign/monday"
)

// Linker builds the URLs templates link to.
type Linker interface {
	IndexURL() string
	TagsURL() string
	PageURL(p *data.Page) string
	TagURL(tag string) string
	StaticURL(name string) string
}

type Options struct {
	Locale monday.Locale
}

// Engine renders the embedded templates. Template functions registered by
// plugins are bound anew for every render cycle.
type Engine struct {
	host      *plugin.Host
	funcs     template.FuncMap
	templates *template.Template
}

func NewEngine(host *plugin.Host, linker Linker, opts Options) (*Engine, error) {
	funcs := MakeTemplateFuncmap(opts.Locale)

	funcs["indexURL"] = linker.IndexURL
	funcs["tagsURL"] = linker.TagsURL
	funcs["pageURL"] = func(p *data.Page) template.URL {
		return template.URL(linker.PageURL(p))
	}
	funcs["tagURL"] = func(tag string) template.URL {
		return template.URL(linker.TagURL(tag))
	}
	funcs["staticURL"] = func(name string) template.URL {
		return template.URL(linker.StaticURL(name))
	}

	templates, err := template.New("").Funcs(host.TemplateFuncs(nil, funcs)).ParseFS(res.Templates, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	return &Engine{
		host:      host,
		funcs:     funcs,
		templates: templates,
	}, nil
}

// Render executes the named template for cycle. The payload is extended by
// the cycle's pages unless it already carries them.
func (e *Engine) Render(w io.Writer, cycle *plugin.Cycle, name string, payload map[string]interface{}) error {
	tmpl, err := e.templates.Clone()
	if err != nil {
		return fmt.Errorf("could not clone templates: %w", err)
	}

	tmpl.Funcs(e.host.TemplateFuncs(cycle, e.funcs))

	if payload == nil {
		payload = make(map[string]interface{})
	}

	setDefault(payload, "Pages", cycle.Pages)
	setDefault(payload, "Page", cycle.Current)
	setDefault(payload, "Previous", cycle.Previous)
	setDefault(payload, "Next", cycle.Next)

	if err := tmpl.ExecuteTemplate(w, name, payload); err != nil {
		return fmt.Errorf("could not execute template: %w", err)
	}

	return nil
}

func setDefault(payload map[string]interface{}, key string, value interface{}) {
	if _, ok := payload[key]; !ok {
		payload[key] = value
	}
}
