// Package keys contains keybinding definitions.
package keys

import "github.com/charmbracelet/bubbles/key"

// EditorKeys are active while the text area has focus.
type EditorKeys struct {
	Up, Down, Left, Right           key.Binding
	SelectUp, SelectDown            key.Binding
	SelectLeft, SelectRight         key.Binding
	LineStart, LineEnd              key.Binding
	SelectLineStart, SelectLineEnd  key.Binding
	Backspace, Delete, Newline, Tab key.Binding
	PageUp, PageDown                key.Binding
}

// AppKeys work everywhere.
type AppKeys struct {
	Paste       key.Binding
	Copy        key.Binding
	Clear       key.Binding
	SelectAll   key.Binding
	Undo        key.Binding
	Redo        key.Binding
	Search      key.Binding
	FindNext    key.Binding
	FindPrev    key.Binding
	Replace     key.Binding
	ReplaceAll  key.Binding
	ToggleCase  key.Binding
	ToggleRegex key.Binding
	HalfWidth   key.Binding
	FullWidth   key.Binding
	Help        key.Binding
	Escape      key.Binding
	Quit        key.Binding
}

// SearchKeys are active while the search panel has focus.
type SearchKeys struct {
	NextField key.Binding
	PrevField key.Binding
	Submit    key.Binding
}

// Editor holds the text area bindings.
var Editor = EditorKeys{
	Up:              key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "line up")),
	Down:            key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "line down")),
	Left:            key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "char left")),
	Right:           key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "char right")),
	SelectUp:        key.NewBinding(key.WithKeys("shift+up"), key.WithHelp("shift+↑", "select up")),
	SelectDown:      key.NewBinding(key.WithKeys("shift+down"), key.WithHelp("shift+↓", "select down")),
	SelectLeft:      key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("shift+←", "select left")),
	SelectRight:     key.NewBinding(key.WithKeys("shift+right"), key.WithHelp("shift+→", "select right")),
	LineStart:       key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "line start")),
	LineEnd:         key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "line end")),
	SelectLineStart: key.NewBinding(key.WithKeys("shift+home"), key.WithHelp("shift+home", "select to line start")),
	SelectLineEnd:   key.NewBinding(key.WithKeys("shift+end"), key.WithHelp("shift+end", "select to line end")),
	Backspace:       key.NewBinding(key.WithKeys("backspace"), key.WithHelp("backspace", "delete left")),
	Delete:          key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete right")),
	Newline:         key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "new line")),
	Tab:             key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "insert tab")),
	PageUp:          key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
	PageDown:        key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
}

// App holds the global bindings.
var App = AppKeys{
	Paste:       key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),
	Copy:        key.NewBinding(key.WithKeys("alt+c"), key.WithHelp("alt+c", "copy all")),
	Clear:       key.NewBinding(key.WithKeys("alt+d"), key.WithHelp("alt+d", "clear")),
	SelectAll:   key.NewBinding(key.WithKeys("alt+a"), key.WithHelp("alt+a", "select all")),
	Undo:        key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "undo")),
	Redo:        key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "redo")),
	Search:      key.NewBinding(key.WithKeys("ctrl+f"), key.WithHelp("ctrl+f", "find/replace")),
	FindNext:    key.NewBinding(key.WithKeys("ctrl+n", "f3"), key.WithHelp("ctrl+n", "find next")),
	FindPrev:    key.NewBinding(key.WithKeys("ctrl+p", "shift+f3"), key.WithHelp("ctrl+p", "find previous")),
	Replace:     key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "replace")),
	ReplaceAll:  key.NewBinding(key.WithKeys("alt+r"), key.WithHelp("alt+r", "replace all")),
	ToggleCase:  key.NewBinding(key.WithKeys("alt+i"), key.WithHelp("alt+i", "toggle case sensitive")),
	ToggleRegex: key.NewBinding(key.WithKeys("alt+x"), key.WithHelp("alt+x", "toggle regex")),
	HalfWidth:   key.NewBinding(key.WithKeys("alt+h"), key.WithHelp("alt+h", "to half-width")),
	FullWidth:   key.NewBinding(key.WithKeys("alt+w"), key.WithHelp("alt+w", "to full-width")),
	Help:        key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "help")),
	Escape:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	Quit:        key.NewBinding(key.WithKeys("ctrl+c", "ctrl+q"), key.WithHelp("ctrl+q", "quit")),
}

// Search holds the search panel bindings.
var Search = SearchKeys{
	NextField: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
	PrevField: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous field")),
	Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "find next")),
}

// ShortHelp implements help.KeyMap for the status bar.
func (k AppKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Undo, k.Redo, k.Paste, k.Copy, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k AppKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Paste, k.Copy, k.Clear, k.SelectAll},
		{k.Undo, k.Redo},
		{k.Search, k.FindNext, k.FindPrev, k.Replace, k.ReplaceAll, k.ToggleCase, k.ToggleRegex},
		{k.HalfWidth, k.FullWidth},
		{k.Help, k.Escape, k.Quit},
	}
}

// Bindings returns every global binding in FullHelp order.
func (k AppKeys) Bindings() []key.Binding {
	var out []key.Binding
	for _, group := range k.FullHelp() {
		out = append(out, group...)
	}
	return out
}
