// Package menu holds the data model and navigation algorithms for a
// searchable dropdown list: divider-aware entries, a cursor that can never
// rest on a divider, substring filtering, and viewport scroll math.
package menu

// Entry is a single menu row: either a selectable item carrying a value or a
// non-selectable divider heading.
type Entry[T any] struct {
	Value   T
	Title   string // divider heading; empty for items
	Divider bool
}

// Item creates a selectable entry.
func Item[T any](value T) Entry[T] {
	return Entry[T]{Value: value}
}

// Divider creates a non-selectable group heading.
func Divider[T any](title string) Entry[T] {
	return Entry[T]{Title: title, Divider: true}
}

// Labeled is an entry with its display label precomputed. Labels are derived
// once per widget instance, not per keystroke.
type Labeled[T any] struct {
	Entry[T]
	Label string
}

// Label pairs every entry with its display text. Items are labeled via
// toLabel; dividers keep their title.
func Label[T any](entries []Entry[T], toLabel func(T) string) []Labeled[T] {
	labeled := make([]Labeled[T], len(entries))
	for i, e := range entries {
		l := Labeled[T]{Entry: e}
		if e.Divider {
			l.Label = e.Title
		} else {
			l.Label = toLabel(e.Value)
		}
		labeled[i] = l
	}
	return labeled
}

// Row is a labeled entry paired with its rendered height. Rows are built
// positionally from an entry slice and a height table of equal length; that
// alignment is the caller's contract.
type Row[T any] struct {
	Entry  Labeled[T]
	Height int
}

func zipRows[T any](entries []Labeled[T], heights []int) []Row[T] {
	rows := make([]Row[T], len(entries))
	for i, e := range entries {
		rows[i] = Row[T]{Entry: e, Height: heights[i]}
	}
	return rows
}
