package serve

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/bgraf/pagetags/config"
	"github.com/bgraf/pagetags/data"
	"github.com/bgraf/pagetags/plugin"
	"github.com/bgraf/pagetags/plugin/builtin"
	"github.com/bgraf/pagetags/render"
	"github.com/bgraf/pagetags/res"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func RunServeCmd(cmd *cobra.Command, args []string) error {
	if !config.HasContentDirectory() {
		return fmt.Errorf("no content directory configured")
	}

	host := builtin.NewHost()

	store, err := host.NewStore(config.ContentDirectory())
	if err != nil {
		return err
	}

	gin.SetMode(gin.ReleaseMode)

	router, err := NewRouter(host, store, Options{Live: true, Render: render.Options{Locale: config.Locale()}})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:    config.ServeAddress(),
		Handler: router,
	}

	go func() {
		<-cmd.Context().Done()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		_ = srv.Shutdown(ctx)
	}()

	log.Info().Str("addr", srv.Addr).Msg("serving preview")

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

type Options struct {
	// Live reloads a page from disk on every request.
	Live   bool
	Render render.Options
}

// linker links to the routes of the preview server.
type linker struct{}

func (linker) IndexURL() string             { return "/" }
func (linker) TagsURL() string              { return "/tags/" }
func (linker) PageURL(p *data.Page) string  { return "/page/" + p.GUID.String() }
func (linker) TagURL(tag string) string     { return "/tag/" + url.PathEscape(tag) }
func (linker) StaticURL(name string) string { return "/static/" + name }

func NewRouter(host *plugin.Host, store *data.Store, opts Options) (*gin.Engine, error) {
	engine, err := render.NewEngine(host, linker{}, opts.Render)
	if err != nil {
		return nil, err
	}

	static, err := fs.Sub(res.Static, "static")
	if err != nil {
		return nil, err
	}

	store.OrderPagesByDate()

	api := &serveAPI{
		host:   host,
		store:  store,
		engine: engine,
		live:   opts.Live,
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.UseRawPath = true

	r.GET("/", api.ServeIndex)
	r.GET("/page/:GUID", api.ServePage)
	r.GET("/tags/", api.ServeTags)
	r.GET("/tag/:tag", api.ServeTag)
	r.StaticFS("/static", http.FS(static))

	return r, nil
}

// serveAPI handles one request at a time, so pages can be reloaded while
// other handlers read the store.
type serveAPI struct {
	mu     sync.Mutex
	host   *plugin.Host
	store  *data.Store
	engine *render.Engine
	live   bool
}

func (api *serveAPI) pageByGUID(guid uuid.UUID) *data.Page {
	page := api.store.PageByGUID(guid)
	if page == nil || !api.live {
		return page
	}

	reloaded, err := api.host.Reload(api.store, page)
	if err != nil {
		log.Error().Err(err).Str("page", page.ID).Msg("reload failed")
		return page
	}

	api.store.OrderPagesByDate()

	return reloaded
}

func (api *serveAPI) render(c *gin.Context, current *data.Page, name string, payload map[string]interface{}) {
	var buf bytes.Buffer

	err := api.host.Run(api.store.VisiblePages(), current, func(cycle *plugin.Cycle) error {
		return api.engine.Render(&buf, cycle, name, payload)
	})
	if err != nil {
		log.Error().Err(err).Str("template", name).Msg("render failed")
		c.String(http.StatusInternalServerError, "error")
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

func (api *serveAPI) renderPage(c *gin.Context, page *data.Page) {
	fragment, err := api.store.Fragment(page)
	if err != nil {
		c.String(http.StatusInternalServerError, "error")
		return
	}

	api.render(c, page, "page.html", map[string]interface{}{
		"Fragment": template.HTML(fragment),
	})
}

func (api *serveAPI) ServePage(c *gin.Context) {
	api.mu.Lock()
	defer api.mu.Unlock()

	guid, err := uuid.Parse(c.Param("GUID"))
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	page := api.pageByGUID(guid)
	if page == nil {
		c.String(http.StatusNotFound, "not found")
		return
	}

	api.renderPage(c, page)
}
