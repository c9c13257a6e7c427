package render

import (
	"hash/fnv"
	"sync"

	"github.com/lucasb-eyer/go-colorful"
)

// TagSet hands out one color per tag. Colors are derived from the tag name,
// so they stay the same across builds.
type TagSet struct {
	mu     sync.Mutex
	colors map[string]colorful.Color
}

func NewTagSet() *TagSet {
	return &TagSet{
		colors: make(map[string]colorful.Color),
	}
}

func (ts *TagSet) HexColor(tag string) string {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	c, ok := ts.colors[tag]
	if !ok {
		c = tagColor(tag)
		ts.colors[tag] = c
	}

	return c.Hex()
}

func tagColor(tag string) colorful.Color {
	h := fnv.New32a()
	h.Write([]byte(tag))

	hue := float64(h.Sum32() % 360)
	return colorful.Hsv(hue, 0.45, 0.85).Clamped()
}
