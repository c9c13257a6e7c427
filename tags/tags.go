// Package tags parses comma separated tag strings and filters tagged records.
package tags

import "strings"

const Separator = ","

// List is an ordered list of tags in order of appearance. Duplicates are kept.
type List []string

// Parse splits raw on commas and trims every token. Anything that is not a
// non-empty string yields an empty list.
//
// Empty tokens produced by consecutive or trailing commas are kept, so
// "a,,b" parses to ["a", "", "b"].
func Parse(raw interface{}) List {
	s, ok := raw.(string)
	if !ok || len(s) == 0 {
		return List{}
	}

	parts := strings.Split(s, Separator)

	list := make(List, len(parts))
	for i, part := range parts {
		list[i] = strings.TrimSpace(part)
	}

	return list
}

func (l List) Contains(tag string) bool {
	for _, t := range l {
		if t == tag {
			return true
		}
	}

	return false
}

// Intersects reports whether l and other share at least one tag.
func (l List) Intersects(other List) bool {
	for _, t := range l {
		if other.Contains(t) {
			return true
		}
	}

	return false
}

func (l List) String() string {
	return strings.Join(l, Separator+" ")
}

// Filter returns the items whose tags intersect filter, in their original
// order. An empty filter returns items unchanged.
func Filter[T any](items []T, filter List, tagsOf func(T) List) []T {
	if len(filter) == 0 {
		return items
	}

	result := make([]T, 0, len(items))
	for _, item := range items {
		if filter.Intersects(tagsOf(item)) {
			result = append(result, item)
		}
	}

	return result
}

// Collect returns every distinct tag of items exactly once, in first-seen order.
func Collect[T any](items []T, tagsOf func(T) List) List {
	var acc Accumulator
	for _, item := range items {
		acc.Add(tagsOf(item))
	}

	return acc.Tags()
}
