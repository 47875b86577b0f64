package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ruminaider/selectbox/internal/combo"
	"github.com/ruminaider/selectbox/internal/config"
	"github.com/ruminaider/selectbox/internal/dataset"
	"github.com/ruminaider/selectbox/internal/menu"
)

// SingleModel hosts the single-select widget: it feeds terminal events into
// the state machine, executes the returned command list, and owns the
// committed selection the widget itself only reads.
type SingleModel struct {
	box     combo.Single[dataset.Option]
	entries []menu.Entry[dataset.Option]
	input   textinput.Model

	menuHeight int
	scrollTop  int // the scroll container's offset, set only via commands
	width      int
	ready      bool

	status StatusBar

	// Selected is the host-owned committed selection.
	Selected *dataset.Option
	Quitting bool
}

// NewSingleModel creates the demo host around a closed widget.
func NewSingleModel(cfg config.Config, entries []menu.Entry[dataset.Option]) SingleModel {
	ti := textinput.New()
	ti.Placeholder = cfg.Placeholder
	ti.Prompt = ""
	ti.Focus()

	return SingleModel{
		box: combo.NewSingle(combo.Options[dataset.Option]{
			ID:          "single",
			Placeholder: cfg.Placeholder,
			Label:       func(o dataset.Option) string { return o.Name },
		}, entries),
		entries:    entries,
		input:      ti,
		menuHeight: cfg.MenuHeight,
		status:     NewStatusBar(false),
	}
}

func (m SingleModel) Init() tea.Cmd {
	return textinput.Blink
}

// applyCommands executes the widget's side effects against the host: scroll
// offsets are clamped to the container, focus/blur go to the textinput.
func (m *SingleModel) applyCommands(cmds []combo.Command) {
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

func (m *SingleModel) totalLines() int {
	if z := m.box.Zipper(); z != nil {
		return z.TotalHeight()
	}
	return 0
}

// openMenu delivers the focus event with a fresh measurement snapshot.
func (m *SingleModel) openMenu() {
	box, cmds, _ := m.box.Focus(measure(m.entries, m.menuHeight), m.scrollTop, m.Selected)
	m.box = box
	m.applyCommands(cmds)
	m.input.SetValue("")
	m.input.Focus()
}

func (m *SingleModel) transition(box combo.Single[dataset.Option], cmds []combo.Command, ev combo.Event[dataset.Option]) {
	m.box = box
	m.applyCommands(cmds)
	switch ev.Kind {
	case combo.EventSelect:
		v := ev.Value
		m.Selected = &v
		m.input.SetValue("")
	case combo.EventClear:
		m.Selected = nil
	}
}

func (m SingleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

func (m SingleModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
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
		m.transition(m.box.Select())
		return m, nil

	case "backspace", "delete":
		if m.input.Value() == "" {
			m.transition(m.box.ClearPressed())
			return m, nil
		}
	}

	// Everything else is text editing. Typing while closed reopens first,
	// like focusing the input does in a browser.
	if !m.box.Open() && msg.Type == tea.KeyRunes {
		m.openMenu()
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.transition(m.box.QueryChanged(m.input.Value()))
	}
	return m, cmd
}

func (m SingleModel) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	value, over := rowAt(m.box.Zipper(), msg.Y, m.scrollTop, m.menuHeight)

	switch msg.Action {
	case tea.MouseActionMotion:
		if over {
			m.transition(m.box.MouseEnter(value))
		} else {
			m.transition(m.box.MouseLeave())
		}

	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft && over {
			m.transition(m.box.MenuMouseDown())
		}

	case tea.MouseActionRelease:
		m.transition(m.box.MenuMouseUp())
		if over {
			m.transition(m.box.Click(value))
		}
	}
	return m, nil
}

func (m SingleModel) View() string {
	if m.Quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(PromptStyle.Render("❯ "))
	if m.Selected != nil && !m.box.Open() {
		b.WriteString(SelectedValueStyle.Render(m.Selected.Name))
	} else {
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
	status.Update(0, matches, total)
	b.WriteString("\n")
	b.WriteString(status.View())
	return b.String()
}

func (m SingleModel) counts() (matches, total int) {
	for _, e := range m.entries {
		if !e.Divider {
			total++
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
