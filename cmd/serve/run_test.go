package serve

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bgraf/pagetags/data"
	"github.com/bgraf/pagetags/plugin/builtin"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, files map[string]string, live bool) (*gin.Engine, *data.Store, string) {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}

	gin.SetMode(gin.TestMode)

	host := builtin.NewHost()
	store, err := host.NewStore(dir)
	require.NoError(t, err)

	router, err := NewRouter(host, store, Options{Live: live})
	require.NoError(t, err)

	return router, store, dir
}

func get(router http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

var site = map[string]string{
	"go.md":   "---\nTitle: Go Post\nTags: go, web\n---\n",
	"rust.md": "---\nTitle: Rust Post\nTags: rust\n---\n",
}

func TestServeIndex_Listing(t *testing.T) {
	router, _, _ := newTestRouter(t, site, false)

	w := get(router, "/")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Go Post")
	assert.Contains(t, w.Body.String(), "Rust Post")
}

func TestServeIndex_FilteredIndexPage(t *testing.T) {
	files := map[string]string{
		"index.md": "---\nTitle: Home\nFilter: web\n---\n\nWelcome\n",
	}
	for k, v := range site {
		files[k] = v
	}

	router, _, _ := newTestRouter(t, files, false)

	w := get(router, "/")

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Welcome")

	filtered := section(t, body, `class="filtered"`)
	assert.Contains(t, filtered, "Go Post")
	assert.NotContains(t, filtered, "Rust Post")
}

// section returns the part of body from marker up to the closing section tag.
func section(t *testing.T, body, marker string) string {
	t.Helper()

	start := strings.Index(body, marker)
	require.GreaterOrEqual(t, start, 0, "marker %q not found", marker)

	end := strings.Index(body[start:], "</section>")
	require.GreaterOrEqual(t, end, 0)

	return body[start : start+end]
}

func TestServeTag(t *testing.T) {
	router, _, _ := newTestRouter(t, site, false)

	w := get(router, "/tag/rust")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Rust Post")
	assert.NotContains(t, w.Body.String(), "Go Post")
}

func TestServeTags(t *testing.T) {
	router, _, _ := newTestRouter(t, site, false)

	w := get(router, "/tags/")

	require.Equal(t, http.StatusOK, w.Code)
	for _, tag := range []string{"go", "web", "rust"} {
		assert.Contains(t, w.Body.String(), `href="/tag/`+tag+`"`)
	}
}

func TestServePage_LiveReload(t *testing.T) {
	router, store, dir := newTestRouter(t, site, true)

	page := store.PageByID("go")
	require.NotNil(t, page)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.md"), []byte("---\nTitle: Go Updated\nTags: go\n---\n"), 0o644))

	w := get(router, "/page/"+page.GUID.String())

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Go Updated")
}

func TestServePage_NotFound(t *testing.T) {
	router, _, _ := newTestRouter(t, site, false)

	assert.Equal(t, http.StatusNotFound, get(router, "/page/not-a-guid").Code)
	assert.Equal(t, http.StatusNotFound, get(router, "/page/00000000-0000-0000-0000-000000000001").Code)
}

func TestServeStatic(t *testing.T) {
	router, _, _ := newTestRouter(t, site, false)

	w := get(router, "/static/style.css")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestServePage_EmptyTagIsNotLinked(t *testing.T) {
	files := map[string]string{
		"a.md": "---\nTitle: Trailing\nTags: a,\n---\n",
	}
	router, store, _ := newTestRouter(t, files, false)

	page := store.PageByID("a")
	require.NotNil(t, page)

	for _, path := range []string{"/", "/tags/", "/page/" + page.GUID.String()} {
		w := get(router, path)

		require.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Body.String(), `href="/tag/a"`, path)
		assert.NotContains(t, w.Body.String(), `href="/tag/"`, path)
	}
}

func TestServePage_LiveReloadReordersPages(t *testing.T) {
	files := map[string]string{
		"old.md": "---\nTitle: Old\nDate: 2021-01-01\n---\n",
		"new.md": "---\nTitle: New\nDate: 2021-06-01\n---\n",
	}
	router, store, dir := newTestRouter(t, files, true)

	require.Equal(t, "new", store.Pages[0].ID)
	old := store.PageByID("old")
	require.NotNil(t, old)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "old.md"), []byte("---\nTitle: Old\nDate: 2021-09-01\n---\n"), 0o644))

	w := get(router, "/page/"+old.GUID.String())
	require.Equal(t, http.StatusOK, w.Code)

	require.Len(t, store.Pages, 2)
	assert.Equal(t, "old", store.Pages[0].ID)
	assert.Equal(t, "new", store.Pages[1].ID)

	body := get(router, "/").Body.String()
	assert.Less(t, strings.Index(body, ">Old<"), strings.Index(body, ">New<"))
}
