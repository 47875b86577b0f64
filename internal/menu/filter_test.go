package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterEmptyQueryKeepsEverything(t *testing.T) {
	entries, heights := groceries()

	filtered := Filter(entries, heights, "")
	full := NewZipper(entries, heights)
	require.NotNil(t, filtered)
	require.NotNil(t, full)

	assert.Equal(t, full.Len(), filtered.Len())
	assert.Equal(t, full.CurrentValue(), filtered.CurrentValue())
	assert.Equal(t, full.CurrentTop(), filtered.CurrentTop())
}

func TestFilterCaseInsensitiveSubstring(t *testing.T) {
	entries, heights := groceries()

	z := Filter(entries, heights, "AN")
	require.NotNil(t, z)

	// banana matches "an"; dividers survive unconditionally.
	assert.Equal(t, "banana", z.CurrentValue())
	var values []string
	for i := 0; i < z.Len(); i++ {
		r := z.Row(i)
		if !r.Entry.Divider {
			values = append(values, r.Entry.Value)
		}
	}
	assert.Equal(t, []string{"banana"}, values)
	assert.Equal(t, 3, z.Len()) // both dividers kept
}

func TestFilterSingleSurvivor(t *testing.T) {
	entries := Label([]Entry[string]{
		Item("apple"),
		Item("zebra"),
	}, func(s string) string { return s })

	z := Filter(entries, []int{1, 1}, "z")
	require.NotNil(t, z)
	assert.Equal(t, "zebra", z.CurrentValue())
	assert.Equal(t, 1, z.Len())
}

func TestFilterNoSurvivors(t *testing.T) {
	entries, heights := groceries()
	assert.Nil(t, Filter(entries, heights, "quince"))
}

func TestFilterKeepsHeightPairing(t *testing.T) {
	entries, heights := groceries()

	z := Filter(entries, heights, "carrot")
	require.NotNil(t, z)
	assert.Equal(t, 3, z.CurrentHeight())
	// Rows above: both dividers (1 each); apple and banana filtered out.
	assert.Equal(t, 2, z.CurrentTop())
}

func TestExcludeDropsSelectedValues(t *testing.T) {
	entries, heights := groceries()

	kept, keptHeights := Exclude(entries, heights, []string{"banana", "daikon"})
	require.Len(t, kept, 4)
	require.Len(t, keptHeights, 4)

	for _, e := range kept {
		if !e.Divider {
			assert.NotContains(t, []string{"banana", "daikon"}, e.Value)
		}
	}
	// apple keeps its height 2, carrot its height 3.
	assert.Equal(t, []int{1, 2, 1, 3}, keptHeights)
}

func TestExcludeNothingSelected(t *testing.T) {
	entries, heights := groceries()
	kept, keptHeights := Exclude(entries, heights, nil)
	assert.Len(t, kept, len(entries))
	assert.Equal(t, heights, keptHeights)
}

func TestExcludeEverything(t *testing.T) {
	entries, heights := groceries()
	kept, keptHeights := Exclude(entries, heights, []string{"apple", "banana", "carrot", "daikon"})
	// Only dividers remain, which cannot form a zipper.
	assert.Nil(t, NewZipper(kept, keptHeights))
}
