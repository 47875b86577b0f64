package combo

import "github.com/ruminaider/selectbox/internal/menu"

// Single is the single-select combobox state machine. The zero-ish state
// returned by NewSingle is closed; transitions are value methods returning
// the successor state, the ordered command list, and the outward event.
//
// The committed selection itself lives with the host; the widget only
// receives it on Focus so the cursor can be fast-forwarded to it.
type Single[T comparable] struct {
	opts    Options[T]
	entries []menu.Labeled[T]

	query       string
	zip         *menu.Zipper[T]
	open        bool
	mouseFocus  *T
	preventBlur bool
	m           Measurements
	scrollTop   int
}

// NewSingle creates a closed widget over entries. Labels are precomputed here
// and reused for every filter pass.
func NewSingle[T comparable](opts Options[T], entries []menu.Entry[T]) Single[T] {
	return Single[T]{
		opts:    opts,
		entries: menu.Label(entries, opts.Label),
	}
}

// --- Accessors for the host's renderer ---

// Open reports whether the menu is showing.
func (s Single[T]) Open() bool { return s.open }

// Query returns the live query text.
func (s Single[T]) Query() string { return s.query }

// Zipper returns the current navigation state, nil when no entry is
// selectable (empty menu: render nothing, ignore navigation keys).
func (s Single[T]) Zipper() *menu.Zipper[T] { return s.zip }

// MouseFocus returns the hovered value, if any.
func (s Single[T]) MouseFocus() (T, bool) {
	if s.mouseFocus == nil {
		var zero T
		return zero, false
	}
	return *s.mouseFocus, true
}

// ScrollTop returns the menu offset as of the last issued scroll command.
func (s Single[T]) ScrollTop() int { return s.scrollTop }

// Opts returns the instance configuration.
func (s Single[T]) Opts() Options[T] { return s.opts }

// --- Transitions ---

// Focus opens the menu with a fresh layout snapshot. The zipper is built from
// the full entry list; when the host already has a committed selection the
// cursor fast-forwards to its first occurrence (staying on the first item
// when it no longer exists). A one-time centering scroll is issued.
func (s Single[T]) Focus(m Measurements, scrollTop int, selected *T) (Single[T], []Command, Event[T]) {
	s.open = true
	s.m = m
	s.scrollTop = scrollTop
	s.query = ""
	s.mouseFocus = nil
	s.zip = menu.NewZipper(s.entries, m.EntryHeights)

	var cmds []Command
	if s.zip != nil {
		if selected != nil {
			want := *selected
			s.zip = s.zip.FastForward(func(v T) bool { return v == want })
		}
		s.scrollTop = menu.CenterTarget(s.zip.CurrentTop(), s.zip.CurrentHeight(), m.MenuHeight)
		cmds = append(cmds, scrollTo(s.opts.MenuID(), s.scrollTop))
	}
	return s, cmds, noEvent[T]()
}

// QueryChanged rebuilds the zipper from scratch against the measurements
// taken at open. Keyboard focus resets to the first match and any hover
// target is dropped, since the hovered row may no longer exist.
func (s Single[T]) QueryChanged(text string) (Single[T], []Command, Event[T]) {
	if !s.open {
		return s, nil, noEvent[T]()
	}
	s.query = text
	s.zip = menu.Filter(s.entries, s.m.EntryHeights, text)
	s.mouseFocus = nil
	s.scrollTop = 0
	return s, []Command{scrollTo(s.opts.MenuID(), 0)}, noEvent[T]()
}

// MoveDown moves keyboard focus to the next item and keeps it visible.
func (s Single[T]) MoveDown() (Single[T], []Command, Event[T]) {
	return s.move((*menu.Zipper[T]).Next)
}

// MoveUp moves keyboard focus to the previous item and keeps it visible.
func (s Single[T]) MoveUp() (Single[T], []Command, Event[T]) {
	return s.move((*menu.Zipper[T]).Previous)
}

func (s Single[T]) move(step func(*menu.Zipper[T]) *menu.Zipper[T]) (Single[T], []Command, Event[T]) {
	if !s.open || s.zip == nil {
		return s, nil, noEvent[T]()
	}
	s.zip = step(s.zip)
	s.scrollTop = menu.ScrollTarget(s.zip.CurrentTop(), s.zip.CurrentHeight(), s.scrollTop, s.m.MenuHeight)
	return s, []Command{scrollTo(s.opts.MenuID(), s.scrollTop)}, noEvent[T]()
}

// Select commits the keyboard-focused item and closes the menu.
func (s Single[T]) Select() (Single[T], []Command, Event[T]) {
	if !s.open || s.zip == nil {
		return s, nil, noEvent[T]()
	}
	value := s.zip.CurrentValue()
	return s.commit(value)
}

// Click commits the clicked item and closes the menu.
func (s Single[T]) Click(value T) (Single[T], []Command, Event[T]) {
	if !s.open {
		return s, nil, noEvent[T]()
	}
	return s.commit(value)
}

func (s Single[T]) commit(value T) (Single[T], []Command, Event[T]) {
	s = s.closed()
	s.query = ""
	return s, nil, Event[T]{Kind: EventSelect, Value: value}
}

// Close dismisses the menu without committing; a previously committed
// selection is host state and stays untouched.
func (s Single[T]) Close() (Single[T], []Command, Event[T]) {
	return s.closed(), nil, noEvent[T]()
}

// Blur closes the menu on focus loss, unless a mousedown on the menu is in
// flight: a click fires blur on the input before its select handler runs, and
// without the guard the menu would close before the click registers.
func (s Single[T]) Blur() (Single[T], []Command, Event[T]) {
	if s.preventBlur {
		return s, nil, noEvent[T]()
	}
	return s.closed(), nil, noEvent[T]()
}

// MenuMouseDown arms the blur guard.
func (s Single[T]) MenuMouseDown() (Single[T], []Command, Event[T]) {
	s.preventBlur = true
	return s, nil, noEvent[T]()
}

// MenuMouseUp releases the blur guard.
func (s Single[T]) MenuMouseUp() (Single[T], []Command, Event[T]) {
	s.preventBlur = false
	return s, nil, noEvent[T]()
}

// ClearPressed handles backspace/delete decoded on an empty query: the host
// is asked to drop its committed selection. Any other query state is plain
// text editing and flows through QueryChanged instead.
func (s Single[T]) ClearPressed() (Single[T], []Command, Event[T]) {
	if s.query != "" {
		return s, nil, noEvent[T]()
	}
	return s, nil, Event[T]{Kind: EventClear}
}

// MouseEnter records a hover target. Presentational only.
func (s Single[T]) MouseEnter(value T) (Single[T], []Command, Event[T]) {
	s.mouseFocus = &value
	return s, nil, noEvent[T]()
}

// MouseLeave clears the hover target.
func (s Single[T]) MouseLeave() (Single[T], []Command, Event[T]) {
	s.mouseFocus = nil
	return s, nil, noEvent[T]()
}

func (s Single[T]) closed() Single[T] {
	s.open = false
	s.zip = nil
	s.mouseFocus = nil
	s.preventBlur = false
	return s
}
