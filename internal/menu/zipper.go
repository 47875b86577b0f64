package menu

// Zipper is a cursor over a non-empty row sequence. The cursor always rests
// on an item, never on a divider; a list without any item has no zipper
// (nil). Navigation never wraps and is a no-op at either boundary.
//
// The row slice and its prefix-sum offset table are immutable after
// construction, so moved copies share them and a zipper value can be kept
// and compared across transitions.
type Zipper[T any] struct {
	rows   []Row[T]
	tops   []int // tops[i] = sum of heights of rows before i
	cursor int   // index of the focused row; rows[cursor] is never a divider
}

// NewZipper builds a zipper over entries paired positionally with heights and
// places the cursor on the first item, skipping leading dividers. It returns
// nil when the list is empty or contains only dividers.
func NewZipper[T any](entries []Labeled[T], heights []int) *Zipper[T] {
	return newZipper(zipRows(entries, heights))
}

func newZipper[T any](rows []Row[T]) *Zipper[T] {
	tops := make([]int, len(rows))
	sum := 0
	for i, r := range rows {
		tops[i] = sum
		sum += r.Height
	}
	z := &Zipper[T]{rows: rows, tops: tops}
	cursor, ok := z.itemFrom(0, +1)
	if !ok {
		return nil
	}
	z.cursor = cursor
	return z
}

// itemFrom scans from index i in the given direction for the nearest
// non-divider row.
func (z *Zipper[T]) itemFrom(i, dir int) (int, bool) {
	for ; i >= 0 && i < len(z.rows); i += dir {
		if !z.rows[i].Entry.Divider {
			return i, true
		}
	}
	return 0, false
}

// Next moves the cursor to the following item, skipping dividers. At the last
// item it returns the receiver unchanged.
func (z *Zipper[T]) Next() *Zipper[T] {
	next, ok := z.itemFrom(z.cursor+1, +1)
	if !ok {
		return z
	}
	moved := *z
	moved.cursor = next
	return &moved
}

// Previous moves the cursor to the preceding item, skipping dividers. At the
// first item it returns the receiver unchanged.
func (z *Zipper[T]) Previous() *Zipper[T] {
	prev, ok := z.itemFrom(z.cursor-1, -1)
	if !ok {
		return z
	}
	moved := *z
	moved.cursor = prev
	return &moved
}

// Current returns the focused entry, guaranteed to be an item.
func (z *Zipper[T]) Current() Labeled[T] {
	return z.rows[z.cursor].Entry
}

// CurrentValue returns the focused item's value.
func (z *Zipper[T]) CurrentValue() T {
	return z.rows[z.cursor].Entry.Value
}

// CurrentTop returns the summed height of all rows strictly before the
// focused one, in original order.
func (z *Zipper[T]) CurrentTop() int {
	return z.tops[z.cursor]
}

// CurrentHeight returns the focused row's height.
func (z *Zipper[T]) CurrentHeight() int {
	return z.rows[z.cursor].Height
}

// CursorIndex returns the focused row's index in the full row sequence,
// dividers included.
func (z *Zipper[T]) CursorIndex() int {
	return z.cursor
}

// Len returns the number of rows, dividers included.
func (z *Zipper[T]) Len() int {
	return len(z.rows)
}

// Row returns the row at index i.
func (z *Zipper[T]) Row(i int) Row[T] {
	return z.rows[i]
}

// Top returns the vertical offset of the row at index i.
func (z *Zipper[T]) Top(i int) int {
	return z.tops[i]
}

// TotalHeight returns the summed height of all rows.
func (z *Zipper[T]) TotalHeight() int {
	if len(z.rows) == 0 {
		return 0
	}
	last := len(z.rows) - 1
	return z.tops[last] + z.rows[last].Height
}

// RemoveCurrent drops the focused row, re-pointing the cursor at the next
// remaining item when one follows, falling back to the nearest preceding
// item, and returning nil when no item remains.
func (z *Zipper[T]) RemoveCurrent() *Zipper[T] {
	rows := make([]Row[T], 0, len(z.rows)-1)
	rows = append(rows, z.rows[:z.cursor]...)
	rows = append(rows, z.rows[z.cursor+1:]...)

	trimmed := newZipper(rows)
	if trimmed == nil {
		return nil
	}
	// newZipper parked the cursor on the first item; prefer the item that
	// followed the removed one, then the one that preceded it.
	if next, ok := trimmed.itemFrom(z.cursor, +1); ok {
		trimmed.cursor = next
	} else if prev, ok := trimmed.itemFrom(z.cursor-1, -1); ok {
		trimmed.cursor = prev
	}
	return trimmed
}

// FastForward advances the cursor to the first item, in original order, whose
// value satisfies match. When nothing matches the zipper is returned
// unchanged.
func (z *Zipper[T]) FastForward(match func(T) bool) *Zipper[T] {
	for i, r := range z.rows {
		if !r.Entry.Divider && match(r.Entry.Value) {
			moved := *z
			moved.cursor = i
			return &moved
		}
	}
	return z
}
