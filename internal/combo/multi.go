package combo

import "github.com/ruminaider/selectbox/internal/menu"

// Multi is the multi-select combobox state machine. Committed selections are
// an ordered sequence owned by the host; transitions receive it read-only and
// report splice positions through events, never mutating it. Values already
// selected are excluded from the candidate list before filtering, so they
// cannot be offered twice.
//
// queryPosition is the insertion cursor: the index among the rendered
// selection chips at which the query textfield sits and newly committed
// values are spliced. It is clamped to [0, len(selections)] lazily, against
// the selection sequence passed into each transition; the fresh widget uses
// an end-of-sequence sentinel until first clamped.
type Multi[T comparable] struct {
	opts    Options[T]
	entries []menu.Labeled[T]

	query         string
	zip           *menu.Zipper[T]
	unfiltered    *menu.Zipper[T]
	open          bool
	mouseFocus    *T
	preventBlur   bool
	preventClose  bool
	m             Measurements
	scrollTop     int
	queryPosition int // -1 until first clamp: "after the last chip"
	queryWidth    int
}

// NewMulti creates a closed multi-select widget over entries.
func NewMulti[T comparable](opts Options[T], entries []menu.Entry[T]) Multi[T] {
	return Multi[T]{
		opts:          opts,
		entries:       menu.Label(entries, opts.Label),
		queryPosition: -1,
	}
}

// --- Accessors for the host's renderer ---

// Open reports whether the menu is showing.
func (s Multi[T]) Open() bool { return s.open }

// Query returns the live query text.
func (s Multi[T]) Query() string { return s.query }

// Zipper returns the filtered navigation state, nil when no candidate is
// selectable.
func (s Multi[T]) Zipper() *menu.Zipper[T] { return s.zip }

// Unfiltered returns the navigation state over the whole candidate list,
// ignoring the query. Hosts use it for "n of m" match counts.
func (s Multi[T]) Unfiltered() *menu.Zipper[T] { return s.unfiltered }

// MouseFocus returns the hovered value, if any.
func (s Multi[T]) MouseFocus() (T, bool) {
	if s.mouseFocus == nil {
		var zero T
		return zero, false
	}
	return *s.mouseFocus, true
}

// ScrollTop returns the menu offset as of the last issued scroll command.
func (s Multi[T]) ScrollTop() int { return s.scrollTop }

// QueryPosition returns the insertion cursor clamped against the given
// selection count.
func (s Multi[T]) QueryPosition(selectionCount int) int {
	return s.clampPos(selectionCount)
}

// QueryWidth returns the last reported textfield width.
func (s Multi[T]) QueryWidth() int { return s.queryWidth }

// Opts returns the instance configuration.
func (s Multi[T]) Opts() Options[T] { return s.opts }

// --- Transitions ---

// Focus opens the menu with a fresh layout snapshot. Candidates are the full
// entry list minus already-selected values, heights excluded pairwise from
// the full-list measurement so the two stay aligned.
func (s Multi[T]) Focus(m Measurements, scrollTop int, selections []T) (Multi[T], []Command, Event[T]) {
	s.open = true
	s.m = m
	s.scrollTop = scrollTop
	s.query = ""
	s.mouseFocus = nil
	s.queryPosition = s.clampPos(len(selections))

	cand, heights := menu.Exclude(s.entries, m.EntryHeights, selections)
	s.zip = menu.NewZipper(cand, heights)
	s.unfiltered = s.zip

	cmds := []Command{focusElement(s.opts.InputID())}
	if s.zip != nil {
		s.scrollTop = menu.CenterTarget(s.zip.CurrentTop(), s.zip.CurrentHeight(), m.MenuHeight)
		cmds = append(cmds, scrollTo(s.opts.MenuID(), s.scrollTop))
	}
	return s, cmds, noEvent[T]()
}

// QueryChanged refilters the candidate list from scratch with the new text.
func (s Multi[T]) QueryChanged(text string, selections []T) (Multi[T], []Command, Event[T]) {
	if !s.open {
		return s, nil, noEvent[T]()
	}
	s.query = text
	cand, heights := menu.Exclude(s.entries, s.m.EntryHeights, selections)
	s.zip = menu.Filter(cand, heights, text)
	s.mouseFocus = nil
	s.scrollTop = 0
	return s, []Command{scrollTo(s.opts.MenuID(), 0)}, noEvent[T]()
}

// ResizeQuery records the textfield's rendered width, measured by the host.
func (s Multi[T]) ResizeQuery(width int) (Multi[T], []Command, Event[T]) {
	s.queryWidth = width
	return s, nil, noEvent[T]()
}

// MoveDown moves keyboard focus to the next candidate and keeps it visible.
func (s Multi[T]) MoveDown() (Multi[T], []Command, Event[T]) {
	return s.move((*menu.Zipper[T]).Next)
}

// MoveUp moves keyboard focus to the previous candidate and keeps it visible.
func (s Multi[T]) MoveUp() (Multi[T], []Command, Event[T]) {
	return s.move((*menu.Zipper[T]).Previous)
}

func (s Multi[T]) move(step func(*menu.Zipper[T]) *menu.Zipper[T]) (Multi[T], []Command, Event[T]) {
	if !s.open || s.zip == nil {
		return s, nil, noEvent[T]()
	}
	s.zip = step(s.zip)
	s.scrollTop = menu.ScrollTarget(s.zip.CurrentTop(), s.zip.CurrentHeight(), s.scrollTop, s.m.MenuHeight)
	return s, []Command{scrollTo(s.opts.MenuID(), s.scrollTop)}, noEvent[T]()
}

// MoveQueryLeft shifts the insertion cursor one chip to the left. Gated on
// the TextfieldMovable option; the textfield is refocused either way the
// cursor moves.
func (s Multi[T]) MoveQueryLeft(selections []T) (Multi[T], []Command, Event[T]) {
	if !s.opts.TextfieldMovable {
		return s, nil, noEvent[T]()
	}
	pos := s.clampPos(len(selections))
	if pos > 0 {
		pos--
	}
	s.queryPosition = pos
	return s, []Command{focusElement(s.opts.InputID())}, noEvent[T]()
}

// MoveQueryRight shifts the insertion cursor one chip to the right.
func (s Multi[T]) MoveQueryRight(selections []T) (Multi[T], []Command, Event[T]) {
	pos := s.clampPos(len(selections))
	if pos < len(selections) {
		pos++
	}
	s.queryPosition = pos
	return s, []Command{focusElement(s.opts.InputID())}, noEvent[T]()
}

// Select commits the keyboard-focused candidate at the insertion cursor. The
// host splices the value into its selection sequence at Event.Position.
func (s Multi[T]) Select(selections []T) (Multi[T], []Command, Event[T]) {
	if !s.open || s.zip == nil {
		return s, nil, noEvent[T]()
	}
	return s.commit(s.zip.CurrentValue(), selections)
}

// Click commits the clicked candidate at the insertion cursor.
func (s Multi[T]) Click(value T, selections []T) (Multi[T], []Command, Event[T]) {
	if !s.open || s.zip == nil {
		return s, nil, noEvent[T]()
	}
	s.zip = s.zip.FastForward(func(v T) bool { return v == value })
	return s.commit(value, selections)
}

func (s Multi[T]) commit(value T, selections []T) (Multi[T], []Command, Event[T]) {
	pos := s.clampPos(len(selections))
	ev := Event[T]{Kind: EventSelect, Value: value, Position: pos}
	// The cursor stays just after the chip the host is about to splice in.
	s.queryPosition = pos + 1

	if !s.opts.KeepQuery {
		s = s.closed()
		s.query = ""
		return s, []Command{blurElement(s.opts.InputID())}, ev
	}

	// keepQuery: the menu stays open for the next similar search. The
	// committed value joins the exclusion set, which on the live zipper is
	// exactly dropping the focused row; this keeps the cursor stable where a
	// full refilter would reset it to the first match.
	s.zip = s.zip.RemoveCurrent()
	s.unfiltered = rebuildUnfiltered(s, value, selections)

	cmds := []Command{focusElement(s.opts.InputID())}
	if s.zip != nil {
		s.scrollTop = menu.ScrollTarget(s.zip.CurrentTop(), s.zip.CurrentHeight(), s.scrollTop, s.m.MenuHeight)
		cmds = append(cmds, scrollTo(s.opts.MenuID(), s.scrollTop))
	}
	return s, cmds, ev
}

func rebuildUnfiltered[T comparable](s Multi[T], committed T, selections []T) *menu.Zipper[T] {
	excluded := make([]T, 0, len(selections)+1)
	excluded = append(excluded, selections...)
	excluded = append(excluded, committed)
	cand, heights := menu.Exclude(s.entries, s.m.EntryHeights, excluded)
	return menu.NewZipper(cand, heights)
}

// UnselectAt asks the host to remove the chip at index, triggered by the
// chip's explicit remove affordance. The insertion cursor is not shifted;
// it re-clamps against the shrunken sequence on the next transition.
func (s Multi[T]) UnselectAt(index int, selections []T) (Multi[T], []Command, Event[T]) {
	if index < 0 || index >= len(selections) {
		return s, nil, noEvent[T]()
	}
	ev := Event[T]{Kind: EventUnselect, Position: index}
	return s, []Command{focusElement(s.opts.InputID())}, ev
}

// ClearPrevious handles backspace on an empty query: the chip immediately
// left of the insertion cursor is removed. The cursor index itself stays
// fixed, so relative to the remaining chips it ends up one further right.
func (s Multi[T]) ClearPrevious(selections []T) (Multi[T], []Command, Event[T]) {
	if s.query != "" {
		return s, nil, noEvent[T]()
	}
	pos := s.clampPos(len(selections))
	if pos == 0 {
		return s, nil, noEvent[T]()
	}
	ev := Event[T]{Kind: EventUnselect, Position: pos - 1}
	return s, []Command{focusElement(s.opts.InputID())}, ev
}

// Close dismisses the menu without committing.
func (s Multi[T]) Close() (Multi[T], []Command, Event[T]) {
	return s.closed(), nil, noEvent[T]()
}

// Blur closes the menu on focus loss unless a menu or chip mousedown is in
// flight (see Single.Blur for why the guard exists).
func (s Multi[T]) Blur() (Multi[T], []Command, Event[T]) {
	if s.preventBlur || s.preventClose {
		return s, nil, noEvent[T]()
	}
	return s.closed(), nil, noEvent[T]()
}

// MenuMouseDown arms the blur guard.
func (s Multi[T]) MenuMouseDown() (Multi[T], []Command, Event[T]) {
	s.preventBlur = true
	return s, nil, noEvent[T]()
}

// MenuMouseUp releases the blur guard.
func (s Multi[T]) MenuMouseUp() (Multi[T], []Command, Event[T]) {
	s.preventBlur = false
	return s, nil, noEvent[T]()
}

// ChipMouseDown arms the close guard while a chip remove affordance is being
// clicked.
func (s Multi[T]) ChipMouseDown() (Multi[T], []Command, Event[T]) {
	s.preventClose = true
	return s, nil, noEvent[T]()
}

// ChipMouseUp releases the close guard.
func (s Multi[T]) ChipMouseUp() (Multi[T], []Command, Event[T]) {
	s.preventClose = false
	return s, nil, noEvent[T]()
}

// MouseEnter records a hover target. Presentational only.
func (s Multi[T]) MouseEnter(value T) (Multi[T], []Command, Event[T]) {
	s.mouseFocus = &value
	return s, nil, noEvent[T]()
}

// MouseLeave clears the hover target.
func (s Multi[T]) MouseLeave() (Multi[T], []Command, Event[T]) {
	s.mouseFocus = nil
	return s, nil, noEvent[T]()
}

func (s Multi[T]) clampPos(n int) int {
	if s.queryPosition < 0 || s.queryPosition > n {
		return n
	}
	return s.queryPosition
}

func (s Multi[T]) closed() Multi[T] {
	s.open = false
	s.zip = nil
	s.unfiltered = nil
	s.mouseFocus = nil
	s.preventBlur = false
	s.preventClose = false
	return s
}
