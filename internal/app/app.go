// Package app contains the root application model.
package app

import (
	"context"
	"strings"

	bubbleshelp "github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/clipedit/internal/config"
	"github.com/zjrosen/clipedit/internal/flags"
	"github.com/zjrosen/clipedit/internal/keys"
	"github.com/zjrosen/clipedit/internal/log"
	"github.com/zjrosen/clipedit/internal/notify"
	"github.com/zjrosen/clipedit/internal/pubsub"
	"github.com/zjrosen/clipedit/internal/search"
	"github.com/zjrosen/clipedit/internal/session"
	"github.com/zjrosen/clipedit/internal/ui/editor"
	"github.com/zjrosen/clipedit/internal/ui/help"
	"github.com/zjrosen/clipedit/internal/ui/searchpanel"
	"github.com/zjrosen/clipedit/internal/ui/styles"
	"github.com/zjrosen/clipedit/internal/ui/toaster"
	"github.com/zjrosen/clipedit/internal/ui/toolbar"
)

const zoneEditor = "editor"

// Options are the dependencies of the root model. Session must already be
// open. Notices must be the queue the session notifies into.
type Options struct {
	Session    *session.Session
	Notices    *notify.Queue
	Config     config.Config
	ConfigPath string
	Flags      *flags.Registry
	// Events carries store change notifications from the watcher. Nil
	// disables live reload.
	Events *pubsub.Broker[string]
}

// Model is the root application state.
type Model struct {
	ctx     context.Context
	sess    *session.Session
	notices *notify.Queue
	cfg     config.Config

	toolbar   toolbar.Model
	editor    editor.Model
	panel     searchpanel.Model
	showPanel bool
	help      help.Model
	showHelp  bool
	statusKey bubbleshelp.Model
	toaster   toaster.Model

	listener *pubsub.Listener[string]

	width  int
	height int
}

// New creates the root model. ctx bounds session operations and the event
// subscription.
func New(ctx context.Context, opts Options) Model {
	if opts.Notices == nil {
		opts.Notices = notify.NewQueue()
	}

	m := Model{
		ctx:       ctx,
		sess:      opts.Session,
		notices:   opts.Notices,
		cfg:       opts.Config,
		toolbar:   toolbar.New(opts.Flags.Enabled(flags.FlagMouseToolbar)),
		editor:    editor.New(opts.Session.Doc()),
		panel:     searchpanel.New(opts.Config.Search, opts.ConfigPath),
		help:      help.New(opts.Flags.Enabled(flags.FlagMarkdownHelp), opts.Config.UI.MarkdownStyle),
		statusKey: bubbleshelp.New(),
		toaster:   toaster.New(),
	}
	if opts.Events != nil {
		m.listener = pubsub.NewListener(ctx, opts.Events)
	}
	return m.syncToolbar()
}

// Init implements tea.Model. It starts listening for store changes.
func (m Model) Init() tea.Cmd {
	return m.listen()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m.layout(), nil

	case pubsub.Event[string]:
		return m.handleStoreEvent(msg)

	case toaster.DismissMsg:
		m.toaster = m.toaster.Update(msg)
		return m, nil

	case searchpanel.ActionMsg:
		return m.runSearch(msg.Action, msg.Request)

	case searchpanel.OptionsSavedMsg:
		if msg.Err != nil {
			return m.toast("Failed to save search options", toaster.StyleError)
		}
		return m, nil

	case toolbar.ClickMsg:
		return m.handleToolbar(msg.Button)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.showPanel {
		var cmd tea.Cmd
		m.panel, cmd = m.panel.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleStoreEvent(event pubsub.Event[string]) (tea.Model, tea.Cmd) {
	switch event.Type {
	case pubsub.ContentChanged, pubsub.ContentRemoved:
		if _, err := m.sess.Reload(m.ctx); err != nil {
			log.ErrorErr(log.CatSession, "Failed to reload content", err, "path", event.Payload)
		}
		m, cmd := m.afterChange()
		return m, tea.Batch(cmd, m.listen())
	case pubsub.WatchFailed:
		log.Warn(log.CatWatcher, "Watcher error received", "path", event.Payload)
	}
	return m, m.listen()
}

func (m Model) listen() tea.Cmd {
	if m.listener == nil {
		return nil
	}
	return m.listener.Listen()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	app := keys.App

	if key.Matches(msg, app.Quit) {
		return m, tea.Quit
	}

	if m.showHelp {
		if key.Matches(msg, app.Help) || key.Matches(msg, app.Escape) {
			m.showHelp = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, app.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, app.Escape):
		if m.showPanel {
			return m.closePanel(), nil
		}
		m.sess.Doc().SetCaret(m.sess.Doc().Caret())
		return m, nil
	case key.Matches(msg, app.Paste):
		return m.handleToolbar(toolbar.Paste)
	case key.Matches(msg, app.Copy):
		return m.handleToolbar(toolbar.Copy)
	case key.Matches(msg, app.Clear):
		return m.handleToolbar(toolbar.Clear)
	case key.Matches(msg, app.Undo):
		return m.handleToolbar(toolbar.Undo)
	case key.Matches(msg, app.Redo):
		return m.handleToolbar(toolbar.Redo)
	case key.Matches(msg, app.HalfWidth):
		return m.handleToolbar(toolbar.HalfWidth)
	case key.Matches(msg, app.FullWidth):
		return m.handleToolbar(toolbar.FullWidth)
	case key.Matches(msg, app.Search):
		return m.handleToolbar(toolbar.Search)
	case key.Matches(msg, app.SelectAll):
		m.sess.SelectAll()
		return m, nil
	case key.Matches(msg, app.FindNext):
		return m.runSearch(searchpanel.ActionFindNext, m.panel.Request())
	case key.Matches(msg, app.FindPrev):
		return m.runSearch(searchpanel.ActionFindPrev, m.panel.Request())
	case key.Matches(msg, app.Replace):
		return m.runSearch(searchpanel.ActionReplace, m.panel.Request())
	case key.Matches(msg, app.ReplaceAll):
		return m.runSearch(searchpanel.ActionReplaceAll, m.panel.Request())
	case key.Matches(msg, app.ToggleCase):
		var cmd tea.Cmd
		m.panel, cmd = m.panel.ToggleCase()
		return m, cmd
	case key.Matches(msg, app.ToggleRegex):
		var cmd tea.Cmd
		m.panel, cmd = m.panel.ToggleRegex()
		return m, cmd
	}

	if m.panel.Focused() {
		var cmd tea.Cmd
		m.panel, cmd = m.panel.Update(msg)
		return m, cmd
	}
	return m.handleEditorKey(msg)
}

func (m Model) handleEditorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var handled bool
	if m.editor, handled = m.editor.Update(msg); handled {
		return m, nil
	}

	e := keys.Editor
	switch {
	case key.Matches(msg, e.Backspace):
		m.sess.Backspace(m.ctx)
	case key.Matches(msg, e.Delete):
		m.sess.Delete(m.ctx)
	case key.Matches(msg, e.Newline):
		m.sess.Insert(m.ctx, "\n")
	case key.Matches(msg, e.Tab):
		m.sess.Insert(m.ctx, "\t")
	case msg.Type == tea.KeySpace:
		m.sess.Insert(m.ctx, " ")
	case msg.Type == tea.KeyRunes && !msg.Alt:
		if msg.Paste {
			m.sess.PasteText(m.ctx, string(msg.Runes))
		} else {
			m.sess.Insert(m.ctx, string(msg.Runes))
		}
	default:
		return m, nil
	}
	return m.afterChange()
}

func (m Model) handleToolbar(b toolbar.Button) (tea.Model, tea.Cmd) {
	switch b {
	case toolbar.Paste:
		// Failures are reported through the notice queue.
		_ = m.sess.Paste(m.ctx)
	case toolbar.Copy:
		_ = m.sess.Copy(m.ctx)
	case toolbar.Clear:
		m.sess.Clear(m.ctx)
	case toolbar.Undo:
		m.sess.Undo(m.ctx)
	case toolbar.Redo:
		m.sess.Redo(m.ctx)
	case toolbar.HalfWidth:
		m.sess.ToHalfWidth(m.ctx)
	case toolbar.FullWidth:
		m.sess.ToFullWidth(m.ctx)
	case toolbar.Search:
		return m.openPanel()
	case toolbar.Help:
		m.showHelp = true
		return m, nil
	}
	return m.afterChange()
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		return m, nil
	}
	if cmd := m.toolbar.Update(msg); cmd != nil {
		return m, cmd
	}
	if m.showPanel {
		var cmd tea.Cmd
		if m.panel, cmd = m.panel.Update(msg); cmd != nil {
			return m, cmd
		}
	}

	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		if z := zone.Get(zoneEditor); z != nil && z.InBounds(msg) {
			x, y := z.Pos(msg)
			// Skip the panel border.
			m.editor = m.editor.Click(x-1, y-1)
			if m.panel.Focused() {
				m.panel = m.panel.Blur()
				m.editor = m.editor.Focus()
			}
		}
	}
	return m, nil
}

func (m Model) openPanel() (tea.Model, tea.Cmd) {
	m.showPanel = true
	if sel := m.sess.Doc().SelectedText(); sel != "" && !strings.Contains(sel, "\n") {
		m.panel = m.panel.SetTerm(sel)
	}
	m.editor = m.editor.Blur()
	var cmd tea.Cmd
	m.panel, cmd = m.panel.Focus()
	return m.layout(), cmd
}

func (m Model) closePanel() Model {
	m.showPanel = false
	m.panel = m.panel.Blur()
	m.editor = m.editor.Focus()
	return m.layout()
}

func (m Model) runSearch(action searchpanel.Action, req search.ReplaceRequest) (tea.Model, tea.Cmd) {
	switch action {
	case searchpanel.ActionFindNext:
		m.sess.Find(m.ctx, req.Query, false)
	case searchpanel.ActionFindPrev:
		m.sess.Find(m.ctx, req.Query, true)
	case searchpanel.ActionReplace:
		m.sess.Replace(m.ctx, req)
	case searchpanel.ActionReplaceAll:
		m.sess.ReplaceAll(m.ctx, req)
	}
	return m.afterChange()
}

// afterChange refreshes everything that depends on the document and turns
// pending notices into a toast.
func (m Model) afterChange() (Model, tea.Cmd) {
	m.editor = m.editor.ScrollToCaret()
	m = m.syncToolbar()

	pending := m.notices.Drain()
	if len(pending) == 0 {
		return m, nil
	}
	last := pending[len(pending)-1]
	return m.toast(last, toaster.StyleFor(last))
}

func (m Model) toast(message string, style toaster.Style) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.toaster, cmd = m.toaster.Show(message, style, m.cfg.UI.NotificationDuration)
	return m, cmd
}

func (m Model) syncToolbar() Model {
	m.toolbar = m.toolbar.
		SetEnabled(toolbar.Undo, m.sess.CanUndo()).
		SetEnabled(toolbar.Redo, m.sess.CanRedo())
	return m
}

// layout sizes the editor to whatever the other rows leave.
func (m Model) layout() Model {
	if m.width == 0 {
		return m
	}
	rows := m.height - 1 // toolbar
	if m.cfg.UI.ShowStatusBar {
		rows--
	}
	if m.showPanel {
		rows -= 4
		m.panel = m.panel.SetWidth(m.width - 2)
	}
	m.editor = m.editor.SetSize(m.width-2, max(rows, 3)-2)
	m.help = m.help.SetSize(m.width, m.height)
	m.statusKey.Width = m.width / 2
	return m
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 {
		return ""
	}

	parts := []string{
		m.toolbar.View(),
		zone.Mark(zoneEditor, styles.Panel(m.editor.View(), "clipedit", m.width, m.editor.Height()+2, m.editor.Focused())),
	}
	if m.showPanel {
		parts = append(parts, styles.Panel(m.panel.View(), "Find & Replace", m.width, 4, m.panel.Focused()))
	}
	if m.cfg.UI.ShowStatusBar {
		parts = append(parts, m.statusBar())
	}

	view := zone.Scan(lipgloss.JoinVertical(lipgloss.Left, parts...))

	if m.toaster.Visible() {
		view = m.toaster.Overlay(view, m.width, m.height)
	}
	if m.showHelp {
		view = m.help.Overlay(view)
	}
	return view
}

func (m Model) statusBar() string {
	mark := func(label string, on bool) string {
		if on {
			return label
		}
		return styles.StatusMutedStyle.Render(label)
	}

	left := strings.Join([]string{
		m.sess.Stats().String(),
		mark("undo", m.sess.CanUndo()),
		mark("redo", m.sess.CanRedo()),
	}, "  ")
	right := m.statusKey.View(keys.App)

	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right)-2, 1)
	return styles.StatusBarStyle.Render(left + strings.Repeat(" ", gap) + right)
}
