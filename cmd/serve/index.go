package serve

import (
	"github.com/bgraf/pagetags/plugin/tagfilter"
	"github.com/bgraf/pagetags/render"
	"github.com/bgraf/pagetags/tags"
	"github.com/gin-gonic/gin"
)

// ServeIndex renders the "index" page when there is one, the page listing otherwise.
func (api *serveAPI) ServeIndex(c *gin.Context) {
	api.mu.Lock()
	defer api.mu.Unlock()

	if index := api.store.LandingPage(); index != nil {
		api.renderPage(c, api.pageByGUID(index.GUID))
		return
	}

	api.render(c, nil, "index.html", map[string]interface{}{
		"Groups": render.MakePageGroups(api.store.VisiblePages()),
	})
}

func (api *serveAPI) ServeTags(c *gin.Context) {
	api.mu.Lock()
	defer api.mu.Unlock()

	api.render(c, nil, "tags.html", nil)
}

func (api *serveAPI) ServeTag(c *gin.Context) {
	api.mu.Lock()
	defer api.mu.Unlock()

	tag := c.Param("tag")

	pages := tagfilter.FilterByTags(api.store.VisiblePages(), tags.List{tag})

	api.render(c, nil, "index.html", map[string]interface{}{
		"Groups": render.MakePageGroups(pages),
		"Tag":    tag,
	})
}
