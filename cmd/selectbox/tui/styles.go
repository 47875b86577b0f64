package tui

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

// Catppuccin Mocha palette.
var flavor = catppuccin.Mocha

// Color constants extracted from the Mocha palette for convenience.
var (
	colorBase     = lipgloss.Color(flavor.Base().Hex)
	colorSurface0 = lipgloss.Color(flavor.Surface0().Hex)
	colorSurface1 = lipgloss.Color(flavor.Surface1().Hex)
	colorText     = lipgloss.Color(flavor.Text().Hex)
	colorSubtext0 = lipgloss.Color(flavor.Subtext0().Hex)
	colorBlue     = lipgloss.Color(flavor.Blue().Hex)
	colorGreen    = lipgloss.Color(flavor.Green().Hex)
	colorYellow   = lipgloss.Color(flavor.Yellow().Hex)
	colorMauve    = lipgloss.Color(flavor.Mauve().Hex)
	colorOverlay0 = lipgloss.Color(flavor.Overlay0().Hex)
)

// Query field styles.
var (
	// PromptStyle is the marker before the query textfield.
	PromptStyle = lipgloss.NewStyle().
			Foreground(colorBlue).
			Bold(true)

	// SelectedValueStyle shows the committed selection next to the prompt.
	SelectedValueStyle = lipgloss.NewStyle().
				Foreground(colorGreen)
)

// Menu styles.
var (
	// DividerStyle is used for non-selectable group headings.
	DividerStyle = lipgloss.NewStyle().
			Foreground(colorMauve).
			Bold(true)

	// FocusedRowStyle highlights the keyboard-focused item.
	FocusedRowStyle = lipgloss.NewStyle().
			Foreground(colorBase).
			Background(colorBlue).
			Bold(true)

	// HoverRowStyle highlights the mouse-hovered item.
	HoverRowStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorSurface1)

	// RowStyle is the default item row.
	RowStyle = lipgloss.NewStyle().
			Foreground(colorText)

	// HintStyle is the dim second line under items that carry a hint.
	HintStyle = lipgloss.NewStyle().
			Foreground(colorOverlay0)

	// MenuBoxStyle frames the scrollable menu viewport.
	MenuBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			PaddingLeft(1).
			PaddingRight(1)

	// EmptyMenuStyle is shown when no entry survives filtering.
	EmptyMenuStyle = lipgloss.NewStyle().
			Foreground(colorOverlay0).
			Italic(true)
)

// Chip styles (multi-select).
var (
	// ChipStyle renders one committed selection.
	ChipStyle = lipgloss.NewStyle().
			Foreground(colorBase).
			Background(colorGreen).
			Padding(0, 1)

	// ChipRemoveStyle is the remove affordance inside a chip.
	ChipRemoveStyle = lipgloss.NewStyle().
			Foreground(colorBase).
			Background(colorGreen).
			Bold(true)
)

// Status bar styles.
var (
	// StatusBarStyle is the base style for the bottom status bar.
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Background(colorSurface0).
			Padding(0, 1)

	// StatusBarKeyStyle highlights keyboard shortcuts in the status bar.
	StatusBarKeyStyle = lipgloss.NewStyle().
				Foreground(colorYellow).
				Background(colorSurface0).
				Bold(true)
)
