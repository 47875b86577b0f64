package tui

import (
	"strings"

	"github.com/ruminaider/selectbox/internal/combo"
	"github.com/ruminaider/selectbox/internal/dataset"
	"github.com/ruminaider/selectbox/internal/menu"
)

// menuContentTop is the screen line where menu rows start: the query line,
// then the menu box's top border.
const menuContentTop = 2

// menuContentLeft accounts for the menu box border and left padding.
const menuContentLeft = 2

// measure builds the layout snapshot the widget core consumes. Heights are
// terminal rows: one per entry, two for options carrying a hint line. The
// table is aligned with the full entry list; the core excludes pairwise.
func measure(entries []menu.Entry[dataset.Option], menuHeight int) combo.Measurements {
	heights := make([]int, len(entries))
	for i, e := range entries {
		heights[i] = 1
		if !e.Divider && e.Value.Hint != "" {
			heights[i] = 2
		}
	}
	return combo.Measurements{EntryHeights: heights, MenuHeight: menuHeight}
}

// menuLine is one rendered viewport line plus the zipper row it belongs to
// (-1 for divider and padding lines, which are not click targets).
type menuLine struct {
	text string
	row  int
}

// renderMenuLines flattens the zipper into one line per height unit so the
// host can apply its scroll offset by slicing.
func renderMenuLines(z *menu.Zipper[dataset.Option], hover dataset.Option, hasHover bool) []menuLine {
	var lines []menuLine
	for i := 0; i < z.Len(); i++ {
		r := z.Row(i)

		if r.Entry.Divider {
			lines = append(lines, menuLine{text: DividerStyle.Render("── " + r.Entry.Label + " ──"), row: -1})
			for pad := 1; pad < r.Height; pad++ {
				lines = append(lines, menuLine{row: -1})
			}
			continue
		}

		style := RowStyle
		switch {
		case i == z.CursorIndex():
			style = FocusedRowStyle
		case hasHover && r.Entry.Value == hover:
			style = HoverRowStyle
		}
		lines = append(lines, menuLine{text: style.Render(" " + r.Entry.Label + " "), row: i})

		if r.Height > 1 {
			lines = append(lines, menuLine{text: HintStyle.Render("   " + r.Entry.Value.Hint), row: i})
		}
	}
	return lines
}

// viewportSlice applies the scroll offset, returning exactly menuHeight lines
// padded with blanks when the list is shorter than the viewport.
func viewportSlice(lines []menuLine, scrollTop, menuHeight int) []menuLine {
	out := make([]menuLine, 0, menuHeight)
	for i := scrollTop; i < scrollTop+menuHeight; i++ {
		if i >= 0 && i < len(lines) {
			out = append(out, lines[i])
		} else {
			out = append(out, menuLine{row: -1})
		}
	}
	return out
}

// renderMenu draws the framed menu viewport.
func renderMenu(z *menu.Zipper[dataset.Option], hover dataset.Option, hasHover bool, scrollTop, menuHeight int) string {
	if z == nil {
		return MenuBoxStyle.Render(EmptyMenuStyle.Render("no matches"))
	}
	visible := viewportSlice(renderMenuLines(z, hover, hasHover), scrollTop, menuHeight)
	rendered := make([]string, len(visible))
	for i, l := range visible {
		rendered[i] = l.text
	}
	return MenuBoxStyle.Render(strings.Join(rendered, "\n"))
}

// rowAt hit-tests a terminal coordinate against the visible menu lines,
// returning the option under the pointer.
func rowAt(z *menu.Zipper[dataset.Option], y, scrollTop, menuHeight int) (dataset.Option, bool) {
	if z == nil {
		return dataset.Option{}, false
	}
	idx := y - menuContentTop + scrollTop
	if y < menuContentTop || y >= menuContentTop+menuHeight {
		return dataset.Option{}, false
	}
	lines := renderMenuLines(z, dataset.Option{}, false)
	if idx < 0 || idx >= len(lines) || lines[idx].row < 0 {
		return dataset.Option{}, false
	}
	return z.Row(lines[idx].row).Entry.Value, true
}

// clampScroll keeps a commanded absolute offset within the scroll
// container's bounds, the host-side clamp the core relies on.
func clampScroll(offset, totalLines, menuHeight int) int {
	max := totalLines - menuHeight
	if offset > max {
		offset = max
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}
