package building

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"github.com/bgraf/pagetags/data"
	"github.com/bgraf/pagetags/filesystem"
	"github.com/bgraf/pagetags/plugin"
	"github.com/bgraf/pagetags/plugin/tagfilter"
	"github.com/bgraf/pagetags/render"
	"github.com/bgraf/pagetags/res"
	"github.com/goodsign/monday"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Clean            bool
	ContentDirectory string
	BuildDirectory   string
	Locale           monday.Locale
}

// Result summarizes a finished build.
type Result struct {
	Pages int
	Tags  int
}

// Build renders every page below the content directory into the build
// directory, followed by the page index, the tag index and one page per tag.
func Build(ctx context.Context, host *plugin.Host, opts Options) (Result, error) {
	if opts.Clean {
		if err := filesystem.RemoveDirectoryContents(opts.BuildDirectory); err != nil {
			return Result{}, fmt.Errorf("could not clean build directory: %w", err)
		}
	}

	if err := filesystem.CreateDirectoryIfNotExists(opts.BuildDirectory); err != nil {
		return Result{}, fmt.Errorf("could not ensure build directory: %w", err)
	}

	filenamer := Filenamer{}

	engine, err := render.NewEngine(host, filenamer, render.Options{Locale: opts.Locale})
	if err != nil {
		return Result{}, err
	}

	store, err := host.NewStore(opts.ContentDirectory)
	if err != nil {
		return Result{}, err
	}

	store.OrderPagesByDate()

	state := &buildState{
		Options:   opts,
		host:      host,
		engine:    engine,
		store:     store,
		pages:     store.VisiblePages(),
		filenamer: filenamer,
	}

	if err := state.writePageFiles(ctx); err != nil {
		return Result{}, err
	}

	if store.LandingPage() == nil {
		if err := state.writeIndexFile(); err != nil {
			return Result{}, err
		}
	}

	allTags := tagfilter.CollectAllTags(state.pages)

	if err := state.writeTagsIndexFile(); err != nil {
		return Result{}, err
	}

	for _, tag := range allTags {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		if err := state.writeTagFile(tag); err != nil {
			return Result{}, err
		}
	}

	if err := filesystem.InstallEmbedFS(res.Static, "static", filepath.Join(opts.BuildDirectory, staticDirName)); err != nil {
		return Result{}, fmt.Errorf("installation of static files failed: %w", err)
	}

	log.Info().Int("pages", len(store.Pages)).Int("tags", len(allTags)).Msg("build done")

	return Result{Pages: len(store.Pages), Tags: len(allTags)}, nil
}

type buildState struct {
	Options
	host      *plugin.Host
	engine    *render.Engine
	store     *data.Store
	pages     []*data.Page
	filenamer Filenamer
}

// WriteFile writes a file at the given path interpreted relative to the build directory.
func (state *buildState) WriteFile(path string, content []byte) error {
	if filepath.IsAbs(path) {
		return fmt.Errorf("absolute path")
	}

	p := filepath.Join(state.BuildDirectory, path)

	return os.WriteFile(p, content, 0o666)
}

func (state *buildState) render(current *data.Page, name, fileName string, payload map[string]interface{}) error {
	var buf bytes.Buffer

	err := state.host.Run(state.pages, current, func(cycle *plugin.Cycle) error {
		return state.engine.Render(&buf, cycle, name, payload)
	})
	if err != nil {
		return err
	}

	if err := state.WriteFile(fileName, buf.Bytes()); err != nil {
		return fmt.Errorf("could not write '%s': %w", fileName, err)
	}

	log.Debug().Str("file", fileName).Msg("written")

	return nil
}

func (state *buildState) writePageFiles(ctx context.Context) error {
	for _, p := range state.store.Pages {
		if err := ctx.Err(); err != nil {
			return err
		}

		fragment, err := state.store.Fragment(p)
		if err != nil {
			return fmt.Errorf("failed to build page '%s': %w", p.ID, err)
		}

		err = state.render(p, "page.html", state.filenamer.PageFile(p), map[string]interface{}{
			"Fragment": template.HTML(fragment),
		})
		if err != nil {
			return fmt.Errorf("failed to render page '%s': %w", p.ID, err)
		}

		log.Info().Str("page", p.ID).Msg("rendered page")
	}

	return nil
}

func (state *buildState) writeIndexFile() error {
	return state.render(nil, "index.html", indexFileName, map[string]interface{}{
		"Groups": render.MakePageGroups(state.pages),
	})
}

func (state *buildState) writeTagsIndexFile() error {
	return state.render(nil, "tags.html", tagsFileName, nil)
}

func (state *buildState) writeTagFile(tag string) error {
	pages := tagfilter.FilterByTags(state.pages, []string{tag})

	return state.render(nil, "index.html", state.filenamer.TagFile(tag), map[string]interface{}{
		"Groups": render.MakePageGroups(pages),
		"Tag":    tag,
	})
}
