package tags

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccumulator(t *testing.T) {
	var acc Accumulator
	assert.Empty(t, acc.Tags())

	acc.Add(List{"a", "b"})
	acc.Add(List{"b", "c", "a"})

	assert.Equal(t, 3, acc.Len())
	assert.ElementsMatch(t, List{"a", "b", "c"}, acc.Tags())
}

func TestAccumulator_SnapshotIsCopy(t *testing.T) {
	var acc Accumulator
	acc.Add(List{"a"})

	snapshot := acc.Tags()
	snapshot[0] = "changed"

	assert.Equal(t, List{"a"}, acc.Tags())
}

func TestAccumulator_Reset(t *testing.T) {
	var acc Accumulator
	acc.Add(List{"a", "b"})

	acc.Reset()
	assert.Zero(t, acc.Len())

	acc.Add(List{"b"})
	assert.Equal(t, List{"b"}, acc.Tags())
}
