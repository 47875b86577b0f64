package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/ruminaider/selectbox/internal/combo"
	"github.com/ruminaider/selectbox/internal/config"
	"github.com/ruminaider/selectbox/internal/dataset"
	"github.com/ruminaider/selectbox/internal/menu"
)

// MultiModel hosts the multi-select widget. The ordered selection sequence
// lives here, in the host; the widget reports index-based splices and
// removals through events and this model applies them.
type MultiModel struct {
	box     combo.Multi[dataset.Option]
	entries []menu.Entry[dataset.Option]
	input   textinput.Model

	menuHeight int
	scrollTop  int
	width      int
	ready      bool

	status StatusBar

	// Selections is the host-owned ordered selection sequence.
	Selections []dataset.Option
	Quitting   bool
}

// NewMultiModel creates the demo host around a closed multi-select widget.
func NewMultiModel(cfg config.Config, entries []menu.Entry[dataset.Option]) MultiModel {
	ti := textinput.New()
	ti.Placeholder = cfg.Placeholder
	ti.Prompt = ""
	ti.Focus()

	return MultiModel{
		box: combo.NewMulti(combo.Options[dataset.Option]{
			ID:               "multi",
			Placeholder:      cfg.Placeholder,
			KeepQuery:        cfg.KeepQuery,
			TextfieldMovable: cfg.TextfieldMovable,
			Label:            func(o dataset.Option) string { return o.Name },
		}, entries),
		entries:    entries,
		input:      ti,
		menuHeight: cfg.MenuHeight,
		status:     NewStatusBar(true),
	}
}

func (m MultiModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *MultiModel) applyCommands(cmds []combo.Command) {
	for _, c := range cmds {
		switch c.Kind {
		case combo.ScrollTo:
			m.scrollTop = clampScroll(c.Offset, m.totalLines(), m.menuHeight)
		case combo.FocusElement:
			m.input.Focus()
		case combo.BlurElement:
			m.input.Blur()
		}
	}
}

func (m *MultiModel) totalLines() int {
	if z := m.box.Zipper(); z != nil {
		return z.TotalHeight()
	}
	return 0
}

func (m *MultiModel) openMenu() {
	box, cmds, _ := m.box.Focus(measure(m.entries, m.menuHeight), m.scrollTop, m.Selections)
	m.box = box
	m.applyCommands(cmds)
	m.input.SetValue("")
}

// transition applies one state-machine step: new state, then commands, then
// the outward event against the host-owned selections.
func (m *MultiModel) transition(box combo.Multi[dataset.Option], cmds []combo.Command, ev combo.Event[dataset.Option]) {
	m.box = box
	m.applyCommands(cmds)

	switch ev.Kind {
	case combo.EventSelect:
		pos := ev.Position
		spliced := make([]dataset.Option, 0, len(m.Selections)+1)
		spliced = append(spliced, m.Selections[:pos]...)
		spliced = append(spliced, ev.Value)
		spliced = append(spliced, m.Selections[pos:]...)
		m.Selections = spliced
		if !m.box.Opts().KeepQuery {
			m.input.SetValue("")
		}
	case combo.EventUnselect:
		pos := ev.Position
		m.Selections = append(m.Selections[:pos:pos], m.Selections[pos+1:]...)
	}
}

func (m MultiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.status.SetWidth(msg.Width)
		if !m.ready {
			m.ready = true
			m.openMenu()
		}
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)

	case tea.MouseMsg:
		return m.updateMouse(msg)
	}
	return m, nil
}

func (m MultiModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.Quitting = true
		return m, tea.Quit

	case "esc":
		if !m.box.Open() {
			m.Quitting = true
			return m, tea.Quit
		}
		m.transition(m.box.Close())
		return m, nil

	case "up":
		m.transition(m.box.MoveUp())
		return m, nil

	case "down":
		if !m.box.Open() {
			m.openMenu()
			return m, nil
		}
		m.transition(m.box.MoveDown())
		return m, nil

	case "enter":
		m.transition(m.box.Select(m.Selections))
		return m, nil

	case "left":
		if m.input.Value() == "" {
			m.transition(m.box.MoveQueryLeft(m.Selections))
			return m, nil
		}

	case "right":
		if m.input.Value() == "" {
			m.transition(m.box.MoveQueryRight(m.Selections))
			return m, nil
		}

	case "backspace":
		if m.input.Value() == "" {
			m.transition(m.box.ClearPrevious(m.Selections))
			return m, nil
		}
	}

	if !m.box.Open() && msg.Type == tea.KeyRunes {
		m.openMenu()
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.transition(m.box.ResizeQuery(runewidth.StringWidth(m.input.Value()) + 1))
		m.transition(m.box.QueryChanged(m.input.Value(), m.Selections))
	}
	return m, cmd
}

func (m MultiModel) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	value, overRow := rowAt(m.box.Zipper(), msg.Y, m.scrollTop, m.menuHeight)
	chip, overChip := m.chipAt(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionMotion:
		if overRow {
			m.transition(m.box.MouseEnter(value))
		} else {
			m.transition(m.box.MouseLeave())
		}

	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if overChip {
			m.transition(m.box.ChipMouseDown())
		} else if overRow {
			m.transition(m.box.MenuMouseDown())
		}

	case tea.MouseActionRelease:
		m.transition(m.box.ChipMouseUp())
		m.transition(m.box.MenuMouseUp())
		if overChip {
			m.transition(m.box.UnselectAt(chip, m.Selections))
		} else if overRow {
			m.transition(m.box.Click(value, m.Selections))
		}
	}
	return m, nil
}

// renderChip draws one committed selection with its remove affordance. View
// and chipAt both go through here so hit-test widths match what is on screen.
func renderChip(name string) string {
	return ChipStyle.Render(name+" ") + ChipRemoveStyle.Render("✕ ")
}

// chipAt hit-tests the chips line, returning the selection index under the
// pointer.
func (m MultiModel) chipAt(x, y int) (int, bool) {
	if y != 0 {
		return 0, false
	}
	pos := m.box.QueryPosition(len(m.Selections))
	cursor := ansi.StringWidth(PromptStyle.Render("❯ "))
	for i, sel := range m.Selections {
		if i == pos {
			cursor += m.inputWidth() + 1
		}
		w := ansi.StringWidth(renderChip(sel.Name))
		if x >= cursor && x < cursor+w {
			return i, true
		}
		cursor += w + 1
	}
	return 0, false
}

func (m MultiModel) inputWidth() int {
	if v := m.input.Value(); v != "" {
		return runewidth.StringWidth(v) + 1
	}
	return runewidth.StringWidth(m.input.Placeholder) + 1
}

func (m MultiModel) View() string {
	if m.Quitting {
		return ""
	}

	var b strings.Builder

	// Chips with the query textfield spliced in at the insertion cursor.
	b.WriteString(PromptStyle.Render("❯ "))
	pos := m.box.QueryPosition(len(m.Selections))
	for i, sel := range m.Selections {
		if i == pos {
			b.WriteString(m.input.View())
			b.WriteString(" ")
		}
		b.WriteString(renderChip(sel.Name))
		b.WriteString(" ")
	}
	if pos == len(m.Selections) {
		b.WriteString(m.input.View())
	}
	b.WriteString("\n")

	if m.box.Open() {
		hover, hasHover := m.box.MouseFocus()
		b.WriteString(renderMenu(m.box.Zipper(), hover, hasHover, m.scrollTop, m.menuHeight))
		b.WriteString("\n")
	}

	matches, total := m.counts()
	status := m.status
	status.Update(len(m.Selections), matches, total)
	b.WriteString("\n")
	b.WriteString(status.View())
	return b.String()
}

func (m MultiModel) counts() (matches, total int) {
	if z := m.box.Unfiltered(); z != nil {
		for i := 0; i < z.Len(); i++ {
			if !z.Row(i).Entry.Divider {
				total++
			}
		}
	}
	if z := m.box.Zipper(); z != nil {
		for i := 0; i < z.Len(); i++ {
			if !z.Row(i).Entry.Divider {
				matches++
			}
		}
	}
	return matches, total
}
