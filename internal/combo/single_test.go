package combo

import (
	"testing"

	"github.com/ruminaider/selectbox/internal/menu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fruitEntries() []menu.Entry[string] {
	return []menu.Entry[string]{
		menu.Divider[string]("Fruit"),
		menu.Item("apple"),
		menu.Item("banana"),
		menu.Divider[string]("Veg"),
		menu.Item("carrot"),
	}
}

func fruitMeasurements() Measurements {
	return Measurements{
		EntryHeights: []int{1, 2, 2, 1, 2},
		MenuHeight:   4,
	}
}

func newSingle(t *testing.T) Single[string] {
	t.Helper()
	return NewSingle(Options[string]{
		ID:    "picker",
		Label: func(v string) string { return v },
	}, fruitEntries())
}

func TestSingleStartsClosed(t *testing.T) {
	s := newSingle(t)
	assert.False(t, s.Open())
	assert.Nil(t, s.Zipper())
	assert.Empty(t, s.Query())
}

func TestSingleFocusOpensAndCenters(t *testing.T) {
	s := newSingle(t)

	s, cmds, ev := s.Focus(fruitMeasurements(), 0, nil)
	assert.True(t, s.Open())
	assert.Equal(t, EventNone, ev.Kind)
	require.NotNil(t, s.Zipper())
	assert.Equal(t, "apple", s.Zipper().CurrentValue())

	require.Len(t, cmds, 1)
	assert.Equal(t, ScrollTo, cmds[0].Kind)
	assert.Equal(t, "picker-menu", cmds[0].TargetID)
	// apple: top 1, height 2, menu 4 → 1 - (4-2)/2 = 0.
	assert.Equal(t, 0, cmds[0].Offset)
	assert.Equal(t, 0, s.ScrollTop())
}

func TestSingleFocusFastForwardsToSelected(t *testing.T) {
	s := newSingle(t)
	selected := "carrot"

	s, cmds, _ := s.Focus(fruitMeasurements(), 0, &selected)
	require.NotNil(t, s.Zipper())
	assert.Equal(t, "carrot", s.Zipper().CurrentValue())

	// carrot: top 6, height 2, menu 4 → 6 - 1 = 5.
	require.Len(t, cmds, 1)
	assert.Equal(t, 5, cmds[0].Offset)
}

func TestSingleFocusUnknownSelectionStaysAtFirstItem(t *testing.T) {
	s := newSingle(t)
	selected := "tomato"

	s, _, _ = s.Focus(fruitMeasurements(), 0, &selected)
	require.NotNil(t, s.Zipper())
	assert.Equal(t, "apple", s.Zipper().CurrentValue())
}

func TestSingleFocusWithNoSelectableEntries(t *testing.T) {
	s := NewSingle(Options[string]{
		ID:    "picker",
		Label: func(v string) string { return v },
	}, []menu.Entry[string]{menu.Divider[string]("empty group")})

	s, cmds, ev := s.Focus(Measurements{EntryHeights: []int{1}, MenuHeight: 4}, 0, nil)
	assert.True(t, s.Open())
	assert.Nil(t, s.Zipper())
	assert.Empty(t, cmds)
	assert.Equal(t, EventNone, ev.Kind)

	// Navigation and commit degrade to no-ops on the empty menu.
	s, cmds, ev = s.MoveDown()
	assert.Empty(t, cmds)
	assert.Equal(t, EventNone, ev.Kind)
	_, _, ev = s.Select()
	assert.Equal(t, EventNone, ev.Kind)
}

func TestSingleQueryChangedRefiltersAndScrollsToTop(t *testing.T) {
	s := newSingle(t)
	s, _, _ = s.Focus(fruitMeasurements(), 0, nil)
	s, _, _ = s.MouseEnter("banana")

	s, cmds, ev := s.QueryChanged("car")
	assert.Equal(t, EventNone, ev.Kind)
	require.NotNil(t, s.Zipper())
	assert.Equal(t, "carrot", s.Zipper().CurrentValue())

	_, hovered := s.MouseFocus()
	assert.False(t, hovered, "stale hover target must be dropped")

	require.Len(t, cmds, 1)
	assert.Equal(t, ScrollTo, cmds[0].Kind)
	assert.Equal(t, 0, cmds[0].Offset)
	assert.Equal(t, "car", s.Query())
}

func TestSingleQueryChangedNoMatches(t *testing.T) {
	s := newSingle(t)
	s, _, _ = s.Focus(fruitMeasurements(), 0, nil)

	s, _, _ = s.QueryChanged("zzz")
	assert.Nil(t, s.Zipper())

	// Typing more and then clearing rebuilds from the full list.
	s, _, _ = s.QueryChanged("")
	require.NotNil(t, s.Zipper())
	assert.Equal(t, "apple", s.Zipper().CurrentValue())
}

func TestSingleArrowNavigationIssuesScrollCommands(t *testing.T) {
	s := newSingle(t)
	s, _, _ = s.Focus(fruitMeasurements(), 0, nil)

	s, cmds, _ := s.MoveDown() // banana: top 3, height 2
	require.NotNil(t, s.Zipper())
	assert.Equal(t, "banana", s.Zipper().CurrentValue())
	require.Len(t, cmds, 1)
	// 3+2 > 0+4 → 3+2-4 = 1.
	assert.Equal(t, 1, cmds[0].Offset)
	assert.Equal(t, 1, s.ScrollTop())

	s, cmds, _ = s.MoveDown() // carrot: top 6, height 2 → 6+2-4 = 4
	assert.Equal(t, "carrot", s.Zipper().CurrentValue())
	assert.Equal(t, 4, cmds[0].Offset)

	// At the last item another MoveDown still re-issues the same target.
	s, cmds, _ = s.MoveDown()
	assert.Equal(t, "carrot", s.Zipper().CurrentValue())
	assert.Equal(t, 4, cmds[0].Offset)

	s, cmds, _ = s.MoveUp() // banana: top 3 < scrollTop 4 → 3
	assert.Equal(t, "banana", s.Zipper().CurrentValue())
	assert.Equal(t, 3, cmds[0].Offset)
}

func TestSingleSelectCommitsAndCloses(t *testing.T) {
	s := newSingle(t)
	s, _, _ = s.Focus(fruitMeasurements(), 0, nil)
	s, _, _ = s.MoveDown()

	s, _, ev := s.Select()
	assert.Equal(t, EventSelect, ev.Kind)
	assert.Equal(t, "banana", ev.Value)
	assert.False(t, s.Open())
	assert.Nil(t, s.Zipper())
	assert.Empty(t, s.Query())
}

func TestSingleClickCommits(t *testing.T) {
	s := newSingle(t)
	s, _, _ = s.Focus(fruitMeasurements(), 0, nil)

	s, _, ev := s.Click("carrot")
	assert.Equal(t, EventSelect, ev.Kind)
	assert.Equal(t, "carrot", ev.Value)
	assert.False(t, s.Open())
}

func TestSingleEscapeClosesWithoutEvent(t *testing.T) {
	s := newSingle(t)
	s, _, _ = s.Focus(fruitMeasurements(), 0, nil)

	s, cmds, ev := s.Close()
	assert.False(t, s.Open())
	assert.Empty(t, cmds)
	assert.Equal(t, EventNone, ev.Kind)
}

func TestSingleBlurGuard(t *testing.T) {
	s := newSingle(t)
	s, _, _ = s.Focus(fruitMeasurements(), 0, nil)

	// Mousedown on the menu defers the blur that precedes the click.
	s, _, _ = s.MenuMouseDown()
	s, _, _ = s.Blur()
	assert.True(t, s.Open())

	s, _, _ = s.MenuMouseUp()
	s, _, _ = s.Blur()
	assert.False(t, s.Open())
}

func TestSingleClearPressed(t *testing.T) {
	s := newSingle(t)
	s, _, _ = s.Focus(fruitMeasurements(), 0, nil)

	_, _, ev := s.ClearPressed()
	assert.Equal(t, EventClear, ev.Kind)

	// With query text present, backspace is ordinary editing.
	s, _, _ = s.QueryChanged("ba")
	_, _, ev = s.ClearPressed()
	assert.Equal(t, EventNone, ev.Kind)
}

func TestSingleMouseFocus(t *testing.T) {
	s := newSingle(t)
	s, _, _ = s.Focus(fruitMeasurements(), 0, nil)

	s, cmds, ev := s.MouseEnter("banana")
	assert.Empty(t, cmds)
	assert.Equal(t, EventNone, ev.Kind)
	v, ok := s.MouseFocus()
	require.True(t, ok)
	assert.Equal(t, "banana", v)

	// Hover never moves keyboard focus.
	assert.Equal(t, "apple", s.Zipper().CurrentValue())

	s, _, _ = s.MouseLeave()
	_, ok = s.MouseFocus()
	assert.False(t, ok)
}
