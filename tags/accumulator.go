package tags

// Accumulator collects the distinct tags seen during one load cycle.
// The zero value is empty and ready to use.
type Accumulator struct {
	seen map[string]struct{}
	tags List
}

// Reset empties the accumulator. Call it at the start of every load cycle.
func (a *Accumulator) Reset() {
	a.seen = nil
	a.tags = nil
}

func (a *Accumulator) Add(tags List) {
	if a.seen == nil {
		a.seen = make(map[string]struct{})
	}

	for _, tag := range tags {
		if _, ok := a.seen[tag]; ok {
			continue
		}

		a.seen[tag] = struct{}{}
		a.tags = append(a.tags, tag)
	}
}

// Tags returns a snapshot of the accumulated tags.
func (a *Accumulator) Tags() List {
	snapshot := make(List, len(a.tags))
	copy(snapshot, a.tags)

	return snapshot
}

func (a *Accumulator) Len() int {
	return len(a.tags)
}
