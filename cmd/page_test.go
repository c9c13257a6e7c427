package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/bgraf/pagetags/plugin/builtin"
	"github.com/bgraf/pagetags/plugin/tagfilter"
	"github.com/bgraf/pagetags/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeTitle(t *testing.T) {
	assert.Equal(t, "hello-world", normalizeTitle("  Hello, World! "))
	assert.Equal(t, "", normalizeTitle("!!!"))
}

func TestNormalizeTagInput(t *testing.T) {
	assert.Equal(t, "", normalizeTagInput("   "))
	assert.Equal(t, "a, b", normalizeTagInput(" a ,b"))
	assert.Equal(t, "a, , b", normalizeTagInput("a,,b"))
}

func TestWriteMetaBlock(t *testing.T) {
	var buf bytes.Buffer

	err := writeMetaBlock(&buf, pageMeta{Title: "Home", Tags: "a, b"})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Title: Home\n")
	assert.Contains(t, out, "Tags: a, b\n")
	assert.NotContains(t, out, "Filter")
}

func TestCreatePage_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	pageFile := filepath.Join(dir, "blog", "home.md")

	require.NoError(t, createPage(pageFile, pageMeta{Title: "Home", Tags: "go, web", Filter: "go"}))

	store, err := builtin.NewHost().NewStore(dir)
	require.NoError(t, err)
	require.Len(t, store.Pages, 1)

	page := store.Pages[0]
	assert.Equal(t, "blog/home", page.ID)
	assert.Equal(t, "Home", page.Title)
	assert.Equal(t, tags.List{"go", "web"}, tagfilter.PageTags(page))
	assert.Equal(t, tags.List{"go"}, tagfilter.PageFilter(page))

	assert.Error(t, createPage(pageFile, pageMeta{Title: "Home"}), "existing pages are not overwritten")
}

func TestPrintTags(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.md"), []byte("---\nTags: go, web\n---\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.md"), []byte("---\nTags: go\n---\n"), 0o644))

	store, err := builtin.NewHost().NewStore(dir)
	require.NoError(t, err)
	store.OrderPagesByDate()

	var buf bytes.Buffer
	require.NoError(t, printTags(&buf, store.Pages))
	assert.Equal(t, "go\t2\nweb\t1\n", buf.String())

	buf.Reset()
	require.NoError(t, printFilteredPages(&buf, store.Pages, tags.List{"web"}))
	assert.Equal(t, "a\ta\tgo, web\n", buf.String())
}
