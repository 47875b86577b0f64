package combo

// Options configures a widget instance. Label is required; it is applied once
// at construction to precompute entry labels.
type Options[T any] struct {
	// ID namespaces the element IDs this instance addresses in commands.
	ID string
	// Placeholder is the query textfield's placeholder text.
	Placeholder string
	// KeepQuery preserves the query text across a multi-select commit
	// instead of resetting it, useful for repeated similar searches.
	KeepQuery bool
	// TextfieldMovable permits moving the insertion cursor left among
	// existing selection chips.
	TextfieldMovable bool
	// Label renders a value for display and filtering.
	Label func(T) string
}

// MenuID returns the element ID of the scrollable menu container.
func (o Options[T]) MenuID() string {
	return o.ID + "-menu"
}

// InputID returns the element ID of the query textfield.
func (o Options[T]) InputID() string {
	return o.ID + "-input"
}
