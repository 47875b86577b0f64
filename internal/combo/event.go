package combo

// EventKind identifies the outward message a transition emits.
type EventKind int

const (
	// EventNone means the transition changed widget state only.
	EventNone EventKind = iota
	// EventSelect commits a value. For multi-select, Position is the index
	// in the host's selection sequence at which to splice the value.
	EventSelect
	// EventUnselect removes the selection at Position (multi-select only).
	EventUnselect
	// EventClear clears the committed selection (single-select) or is unused.
	EventClear
)

// Event is the outward message emitted alongside a transition. The host owns
// the selection state and pattern-matches on Kind to apply it.
type Event[T any] struct {
	Kind     EventKind
	Value    T
	Position int
}

func noEvent[T any]() Event[T] {
	return Event[T]{Kind: EventNone}
}
