// Package toolbar renders the row of action buttons above the editor.
package toolbar

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/clipedit/internal/ui/styles"
)

// Button identifies a toolbar action.
type Button string

const (
	Paste     Button = "paste"
	Copy      Button = "copy"
	Clear     Button = "clear"
	Undo      Button = "undo"
	Redo      Button = "redo"
	Search    Button = "search"
	HalfWidth Button = "half-width"
	FullWidth Button = "full-width"
	Help      Button = "help"
)

type button struct {
	id    Button
	label string
}

// groups are separated by a divider; the second group is the transform
// panel.
var groups = [][]button{
	{{Paste, "Paste"}, {Copy, "Copy"}, {Clear, "Clear"}},
	{{Undo, "Undo"}, {Redo, "Redo"}},
	{{Search, "Find"}},
	{{HalfWidth, "Ａ→A"}, {FullWidth, "A→Ａ"}},
	{{Help, "?"}},
}

// ClickMsg reports a click on an enabled button.
type ClickMsg struct {
	Button Button
}

// Model is the toolbar state.
type Model struct {
	clickable bool
	disabled  map[Button]bool
}

// New creates a toolbar. When clickable is false the buttons render as
// plain labels and clicks are ignored.
func New(clickable bool) Model {
	return Model{clickable: clickable, disabled: map[Button]bool{}}
}

// SetEnabled enables or disables a button. Disabled buttons are dimmed and
// ignore clicks.
func (m Model) SetEnabled(b Button, enabled bool) Model {
	disabled := make(map[Button]bool, len(m.disabled)+1)
	for k, v := range m.disabled {
		disabled[k] = v
	}
	disabled[b] = !enabled
	m.disabled = disabled
	return m
}

// Enabled reports whether b accepts clicks.
func (m Model) Enabled(b Button) bool {
	return !m.disabled[b]
}

func zoneID(b Button) string {
	return "toolbar-" + string(b)
}

// Update turns a left click on a button into a ClickMsg command.
func (m Model) Update(msg tea.Msg) tea.Cmd {
	mouse, ok := msg.(tea.MouseMsg)
	if !ok || !m.clickable {
		return nil
	}
	if mouse.Action != tea.MouseActionRelease || mouse.Button != tea.MouseButtonLeft {
		return nil
	}

	for _, group := range groups {
		for _, b := range group {
			if m.disabled[b.id] {
				continue
			}
			if z := zone.Get(zoneID(b.id)); z != nil && z.InBounds(mouse) {
				id := b.id
				return func() tea.Msg { return ClickMsg{Button: id} }
			}
		}
	}
	return nil
}

// View renders the toolbar on one line.
func (m Model) View() string {
	divider := styles.StatusMutedStyle.Render(" │ ")

	parts := make([]string, 0, len(groups))
	for _, group := range groups {
		rendered := make([]string, 0, len(group))
		for _, b := range group {
			rendered = append(rendered, m.renderButton(b))
		}
		parts = append(parts, strings.Join(rendered, " "))
	}
	return strings.Join(parts, divider)
}

func (m Model) renderButton(b button) string {
	if m.disabled[b.id] {
		return styles.ButtonDisabledStyle.Render(b.label)
	}
	out := styles.ButtonStyle.Render(b.label)
	if m.clickable {
		out = zone.Mark(zoneID(b.id), out)
	}
	return out
}
