package menu

// ScrollTarget computes the minimal scroll adjustment that keeps the focused
// row fully visible: scroll up until its top enters the viewport, scroll down
// until its bottom does, otherwise leave the offset alone. The returned
// offset is absolute, so repeated commands for the same focus are idempotent.
func ScrollTarget(currentTop, currentHeight, scrollTop, menuHeight int) int {
	switch {
	case currentTop < scrollTop:
		return currentTop
	case currentTop+currentHeight > scrollTop+menuHeight:
		return currentTop + currentHeight - menuHeight
	default:
		return scrollTop
	}
}

// CenterTarget computes the offset that centers the focused row in the
// viewport. Applied once when the menu opens; the host clamps the result to
// its scroll-container bounds.
func CenterTarget(currentTop, currentHeight, menuHeight int) int {
	return currentTop - (menuHeight-currentHeight)/2
}
