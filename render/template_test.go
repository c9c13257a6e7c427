package render

import (
	"bytes"
	"html/template"
	"testing"
	"time"

	"github.com/bgraf/pagetags/data"
	"github.com/bgraf/pagetags/plugin"
	"github.com/bgraf/pagetags/plugin/tagfilter"
	"github.com/bgraf/pagetags/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testLinker struct{}

func (testLinker) IndexURL() string             { return "/" }
func (testLinker) TagsURL() string              { return "/tags/" }
func (testLinker) PageURL(p *data.Page) string  { return "/page/" + p.ID }
func (testLinker) TagURL(tag string) string     { return "/tag/" + tag }
func (testLinker) StaticURL(name string) string { return "/static/" + name }

func testPage(id, title string, tagList, filter tags.List) *data.Page {
	return &data.Page{
		ID:    id,
		Title: title,
		Meta: data.Meta{
			tagfilter.FieldTags:   tagList,
			tagfilter.FieldFilter: filter,
		},
	}
}

func renderCycle(t *testing.T, pages []*data.Page, current *data.Page, name string, payload map[string]interface{}) string {
	t.Helper()

	host := plugin.NewHost(tagfilter.New())
	engine, err := NewEngine(host, testLinker{}, Options{})
	require.NoError(t, err)

	var buf bytes.Buffer
	err = host.Run(pages, current, func(cycle *plugin.Cycle) error {
		return engine.Render(&buf, cycle, name, payload)
	})
	require.NoError(t, err)

	return buf.String()
}

func TestEngine_PageWithFilter(t *testing.T) {
	pages := []*data.Page{
		testPage("go", "Go Post", tags.List{"go"}, nil),
		testPage("rust", "Rust Post", tags.List{"rust"}, nil),
	}
	index := testPage("index", "Home", nil, tags.List{"go"})

	out := renderCycle(t, pages, index, "page.html", map[string]interface{}{
		"Fragment": template.HTML("<p>welcome</p>"),
	})

	assert.Contains(t, out, "<p>welcome</p>")
	assert.Contains(t, out, "Pages tagged go")
	assert.Contains(t, out, `href="/page/go"`)
	assert.NotContains(t, out, "Rust Post")
}

func TestEngine_PageWithoutFilter(t *testing.T) {
	pages := []*data.Page{
		testPage("a", "First", tags.List{"x"}, nil),
		testPage("b", "Second", tags.List{"y"}, nil),
	}

	out := renderCycle(t, pages, pages[0], "page.html", map[string]interface{}{
		"Fragment": template.HTML(""),
	})

	assert.NotContains(t, out, "Pages tagged")
	assert.Contains(t, out, `href="/tag/x"`)
	assert.Contains(t, out, `class="next" href="/page/b"`)
}

func TestEngine_TagsIndex(t *testing.T) {
	pages := []*data.Page{
		testPage("a", "A", tags.List{"one", "two"}, nil),
		testPage("b", "B", tags.List{"two", "three"}, nil),
	}

	out := renderCycle(t, pages, nil, "tags.html", nil)

	for _, tag := range []string{"one", "two", "three"} {
		assert.Contains(t, out, `href="/tag/`+tag+`"`)
	}
}

func TestMakePageGroups(t *testing.T) {
	may := time.Date(2021, 5, 20, 0, 0, 0, 0, time.UTC)
	mayEarly := time.Date(2021, 5, 2, 0, 0, 0, 0, time.UTC)
	april := time.Date(2021, 4, 1, 0, 0, 0, 0, time.UTC)

	pages := []*data.Page{
		{ID: "a", Date: may},
		{ID: "b", Date: mayEarly},
		{ID: "c", Date: april},
		{ID: "d"},
	}

	groups := MakePageGroups(pages)

	require.Len(t, groups, 3)
	assert.Len(t, groups[0].Pages, 2)
	assert.Equal(t, time.Date(2021, 5, 1, 0, 0, 0, 0, time.UTC), groups[0].Date)
	assert.Len(t, groups[1].Pages, 1)
	assert.False(t, groups[2].HasDate())
	assert.Nil(t, MakePageGroups(nil))
}

func TestTagSet_StableColors(t *testing.T) {
	ts := NewTagSet()

	first := ts.HexColor("go")
	assert.Equal(t, first, ts.HexColor("go"))
	assert.Equal(t, first, NewTagSet().HexColor("go"))
	assert.Regexp(t, `^#[0-9a-f]{6}$`, first)
}
