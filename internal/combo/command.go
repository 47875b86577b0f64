// Package combo implements the state machines behind a searchable dropdown:
// a single-select variant and a multi-select variant with chip-style
// selections. Each host event drives exactly one transition, which returns
// the new state, an ordered list of fire-and-forget side-effect commands, and
// at most one outward event for the host to act on.
package combo

// CommandKind identifies a side-effect command for the host.
type CommandKind int

const (
	// ScrollTo sets the scroll container's absolute offset.
	ScrollTo CommandKind = iota
	// FocusElement gives keyboard focus to the target element.
	FocusElement
	// BlurElement removes keyboard focus from the target element.
	BlurElement
)

// Command is one side effect requested by a transition. Commands carry
// absolute targets, so re-delivery or reordering against later commands for
// the same target is harmless; the host executes them best-effort without
// acknowledgement.
type Command struct {
	Kind     CommandKind
	TargetID string
	Offset   int // scroll offset; meaningful for ScrollTo only
}

func scrollTo(id string, offset int) Command {
	return Command{Kind: ScrollTo, TargetID: id, Offset: offset}
}

func focusElement(id string) Command {
	return Command{Kind: FocusElement, TargetID: id}
}

func blurElement(id string) Command {
	return Command{Kind: BlurElement, TargetID: id}
}
