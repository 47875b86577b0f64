package combo

// Measurements is the layout snapshot the host takes when the menu opens or
// refreshes. EntryHeights is ordered to match the candidate entry list
// exactly; keeping that pairing aligned is the host's contract.
type Measurements struct {
	EntryHeights []int
	MenuHeight   int
}
