package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// StatusBar renders the bottom row with match counts and keyboard shortcuts.
type StatusBar struct {
	selected int
	matches  int
	total    int
	multi    bool
	width    int
}

// NewStatusBar creates a status bar for a single- or multi-select demo.
func NewStatusBar(multi bool) StatusBar {
	return StatusBar{multi: multi}
}

// SetWidth sets the available width for rendering.
func (s *StatusBar) SetWidth(w int) {
	s.width = w
}

// Update refreshes the counts shown on the left side.
func (s *StatusBar) Update(selected, matches, total int) {
	s.selected = selected
	s.matches = matches
	s.total = total
}

// View renders the status bar.
func (s StatusBar) View() string {
	left := fmt.Sprintf("%d of %d match", s.matches, s.total)
	if s.multi {
		left = fmt.Sprintf("%d selected · %s", s.selected, left)
	}

	shortcuts := []string{
		StatusBarKeyStyle.Render("↑↓") + ": move",
		StatusBarKeyStyle.Render("Enter") + ": select",
	}
	if s.multi {
		shortcuts = append(shortcuts, StatusBarKeyStyle.Render("Bksp")+": remove")
	}
	shortcuts = append(shortcuts, StatusBarKeyStyle.Render("Esc")+": close")
	rightPart := strings.Join(shortcuts, " · ")

	leftWidth := ansi.StringWidth(left)
	rightWidth := ansi.StringWidth(rightPart)
	availableWidth := s.width - 2 // account for StatusBarStyle padding
	gap := availableWidth - leftWidth - rightWidth
	if gap < 1 {
		gap = 1
	}

	content := left + strings.Repeat(" ", gap) + rightPart

	return StatusBarStyle.Width(s.width).Render(content)
}
