// Package searchpanel is the find/replace bar: two text inputs, the case
// and regex toggles, and clickable action buttons.
package searchpanel

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/clipedit/internal/config"
	"github.com/zjrosen/clipedit/internal/keys"
	"github.com/zjrosen/clipedit/internal/log"
	"github.com/zjrosen/clipedit/internal/search"
	"github.com/zjrosen/clipedit/internal/ui/styles"
)

// Zone IDs for the clickable parts of the panel.
const (
	ZoneFind       = "search-find"
	ZonePrev       = "search-prev"
	ZoneReplace    = "search-replace"
	ZoneReplaceAll = "search-replace-all"
	ZoneCase       = "search-case"
	ZoneRegex      = "search-regex"
)

// Action is what the panel asks its owner to do.
type Action int

const (
	ActionFindNext Action = iota
	ActionFindPrev
	ActionReplace
	ActionReplaceAll
)

// ActionMsg requests a search operation with the panel's current request.
type ActionMsg struct {
	Action  Action
	Request search.ReplaceRequest
}

// OptionsSavedMsg reports the outcome of persisting the toggles.
type OptionsSavedMsg struct {
	Err error
}

type field int

const (
	fieldFind field = iota
	fieldReplace
)

// Model is the find/replace panel.
type Model struct {
	find    textinput.Model
	replace textinput.Model
	focus   field
	focused bool

	caseSensitive bool
	useRegex      bool

	// configPath receives toggle changes; empty disables saving.
	configPath string
	width      int
}

// New creates a blurred panel with toggles from cfg.
func New(cfg config.SearchConfig, configPath string) Model {
	find := textinput.New()
	find.Placeholder = "Find"
	find.Prompt = ""

	replace := textinput.New()
	replace.Placeholder = "Replace with (\\n, \\t, $1 allowed)"
	replace.Prompt = ""

	return Model{
		find:          find,
		replace:       replace,
		caseSensitive: cfg.CaseSensitive,
		useRegex:      cfg.UseRegex,
		configPath:    configPath,
	}
}

// SetWidth sets the total panel width.
func (m Model) SetWidth(width int) Model {
	m.width = width
	inputWidth := max(width-lipgloss.Width(m.buttons(fieldFind))-12, 10)
	m.find.Width = inputWidth
	m.replace.Width = inputWidth
	return m
}

// Focus focuses the find input and selects nothing else.
func (m Model) Focus() (Model, tea.Cmd) {
	m.focused = true
	m.focus = fieldFind
	m.replace.Blur()
	return m, m.find.Focus()
}

// Blur removes focus from both inputs.
func (m Model) Blur() Model {
	m.focused = false
	m.find.Blur()
	m.replace.Blur()
	return m
}

// Focused reports whether one of the inputs has focus.
func (m Model) Focused() bool {
	return m.focused
}

// SetTerm replaces the find text, e.g. with the editor selection.
func (m Model) SetTerm(term string) Model {
	m.find.SetValue(term)
	m.find.CursorEnd()
	return m
}

// Query returns the current find query.
func (m Model) Query() search.Query {
	return search.Query{
		Term:          m.find.Value(),
		CaseSensitive: m.caseSensitive,
		UseRegex:      m.useRegex,
	}
}

// Request returns the current find/replace request.
func (m Model) Request() search.ReplaceRequest {
	return search.ReplaceRequest{Query: m.Query(), Replacement: m.replace.Value()}
}

// Options returns the toggles as a config section.
func (m Model) Options() config.SearchConfig {
	return config.SearchConfig{CaseSensitive: m.caseSensitive, UseRegex: m.useRegex}
}

// ToggleCase flips case sensitivity and saves it.
func (m Model) ToggleCase() (Model, tea.Cmd) {
	m.caseSensitive = !m.caseSensitive
	return m, m.save()
}

// ToggleRegex flips regex mode and saves it.
func (m Model) ToggleRegex() (Model, tea.Cmd) {
	m.useRegex = !m.useRegex
	return m, m.save()
}

func (m Model) save() tea.Cmd {
	if m.configPath == "" {
		return nil
	}
	path, opts := m.configPath, m.Options()
	return func() tea.Msg {
		err := config.SaveSearchOptions(path, opts)
		if err != nil {
			log.ErrorErr(log.CatConfig, "Failed to save search options", err, "path", path)
		}
		return OptionsSavedMsg{Err: err}
	}
}

func (m Model) action(a Action) tea.Cmd {
	req := m.Request()
	return func() tea.Msg { return ActionMsg{Action: a, Request: req} }
}

// Update handles keys while focused and clicks on the panel zones.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		return m.handleClick(msg)
	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}
		switch {
		case key.Matches(msg, keys.Search.NextField), key.Matches(msg, keys.Search.PrevField):
			return m.switchField()
		case key.Matches(msg, keys.Search.Submit):
			if m.focus == fieldReplace {
				return m, m.action(ActionReplace)
			}
			return m, m.action(ActionFindNext)
		}
	}

	var cmd tea.Cmd
	if m.focus == fieldFind {
		m.find, cmd = m.find.Update(msg)
	} else {
		m.replace, cmd = m.replace.Update(msg)
	}
	return m, cmd
}

func (m Model) switchField() (Model, tea.Cmd) {
	if m.focus == fieldFind {
		m.focus = fieldReplace
		m.find.Blur()
		return m, m.replace.Focus()
	}
	m.focus = fieldFind
	m.replace.Blur()
	return m, m.find.Focus()
}

func (m Model) handleClick(msg tea.MouseMsg) (Model, tea.Cmd) {
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	inBounds := func(id string) bool {
		z := zone.Get(id)
		return z != nil && z.InBounds(msg)
	}
	switch {
	case inBounds(ZoneFind):
		return m, m.action(ActionFindNext)
	case inBounds(ZonePrev):
		return m, m.action(ActionFindPrev)
	case inBounds(ZoneReplace):
		return m, m.action(ActionReplace)
	case inBounds(ZoneReplaceAll):
		return m, m.action(ActionReplaceAll)
	case inBounds(ZoneCase):
		return m.ToggleCase()
	case inBounds(ZoneRegex):
		return m.ToggleRegex()
	}
	return m, nil
}

// View renders the two panel rows.
func (m Model) View() string {
	label := styles.LabelStyle.Width(9)
	findRow := lipgloss.JoinHorizontal(lipgloss.Top,
		label.Render("Find"),
		m.find.View(),
		"  ",
		m.buttons(fieldFind),
	)
	replaceRow := lipgloss.JoinHorizontal(lipgloss.Top,
		label.Render("Replace"),
		m.replace.View(),
		"  ",
		m.buttons(fieldReplace),
	)
	return findRow + "\n" + replaceRow
}

func (m Model) buttons(row field) string {
	if row == fieldFind {
		return zone.Mark(ZonePrev, styles.ButtonStyle.Render("◀")) + " " +
			zone.Mark(ZoneFind, styles.ButtonStyle.Render("▶")) + " " +
			zone.Mark(ZoneCase, toggle("Aa", m.caseSensitive)) + " " +
			zone.Mark(ZoneRegex, toggle(".*", m.useRegex))
	}
	return zone.Mark(ZoneReplace, styles.ButtonStyle.Render("Replace")) + " " +
		zone.Mark(ZoneReplaceAll, styles.ButtonStyle.Render("All"))
}

func toggle(label string, on bool) string {
	if on {
		return styles.ToggleActiveStyle.Render(label)
	}
	return styles.ToggleStyle.Render(label)
}
