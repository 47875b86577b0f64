package menu

import "strings"

// Filter rebuilds a zipper from the full entry list and its aligned height
// table, keeping every divider and every item whose label contains the query
// case-insensitively. The empty query keeps everything. The result is nil
// when no item survives.
//
// Filtering is re-run from scratch on every edit, and keyboard focus resets
// to the first match; callers that want to restore focus to a known value
// apply FastForward on the result themselves.
func Filter[T any](entries []Labeled[T], heights []int, query string) *Zipper[T] {
	if query == "" {
		return NewZipper(entries, heights)
	}
	needle := strings.ToLower(query)

	var (
		kept     []Labeled[T]
		keptRows []int
	)
	for i, e := range entries {
		if e.Divider || strings.Contains(strings.ToLower(e.Label), needle) {
			kept = append(kept, e)
			keptRows = append(keptRows, heights[i])
		}
	}
	return NewZipper(kept, keptRows)
}

// Exclude drops items whose value is already present in selected, keeping the
// entry/height pairing aligned. Dividers are kept. Multi-select uses this so
// chosen values never reappear in the open menu.
func Exclude[T comparable](entries []Labeled[T], heights []int, selected []T) ([]Labeled[T], []int) {
	chosen := make(map[T]bool, len(selected))
	for _, v := range selected {
		chosen[v] = true
	}

	kept := make([]Labeled[T], 0, len(entries))
	keptHeights := make([]int, 0, len(heights))
	for i, e := range entries {
		if !e.Divider && chosen[e.Value] {
			continue
		}
		kept = append(kept, e)
		keptHeights = append(keptHeights, heights[i])
	}
	return kept, keptHeights
}
