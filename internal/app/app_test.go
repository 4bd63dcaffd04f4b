package app

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/exp/teatest"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/clipedit/internal/clipboard"
	"github.com/zjrosen/clipedit/internal/config"
	"github.com/zjrosen/clipedit/internal/flags"
	"github.com/zjrosen/clipedit/internal/notify"
	"github.com/zjrosen/clipedit/internal/pubsub"
	"github.com/zjrosen/clipedit/internal/session"
	"github.com/zjrosen/clipedit/internal/store"
	"github.com/zjrosen/clipedit/internal/testutil"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	os.Exit(m.Run())
}

type fixture struct {
	model Model
	store *store.Store
	clip  *clipboard.Mock
}

func newFixture(t *testing.T, stored string) *fixture {
	t.Helper()
	st := testutil.NewStore(t)
	if stored != "" {
		testutil.SeedContent(t, st, stored)
	}
	clip := clipboard.NewMock("")
	notices := notify.NewQueue()

	sess := session.New(
		session.WithStore(st),
		session.WithClipboard(clip),
		session.WithNotifier(notices),
	)
	require.NoError(t, sess.Open(context.Background()))

	m := New(context.Background(), Options{
		Session: sess,
		Notices: notices,
		Config:  config.Defaults(),
		Flags:   flags.New(nil),
	})
	return &fixture{model: update(m, tea.WindowSizeMsg{Width: 100, Height: 30}), store: st, clip: clip}
}

func update(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func alt(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}, Alt: true}
}

func typeText(m Model, s string) Model {
	for _, r := range s {
		m = update(m, runes(string(r)))
	}
	return m
}

func TestApp_WindowSizeMsg(t *testing.T) {
	f := newFixture(t, "")

	require.Equal(t, 100, f.model.width)
	require.Equal(t, 30, f.model.height)
	require.Equal(t, 98, f.model.editor.Width())
}

func TestApp_ViewShowsRestoredContent(t *testing.T) {
	f := newFixture(t, "hello from last time")

	view := ansi.Strip(f.model.View())

	require.Contains(t, view, "hello from last time")
	require.Contains(t, view, "Paste")
	require.Contains(t, view, "20 chars")
	require.Len(t, strings.Split(view, "\n"), 30)
}

func TestApp_TypingEditsAndPersists(t *testing.T) {
	f := newFixture(t, "")

	m := typeText(f.model, "hi")
	m = update(m, tea.KeyMsg{Type: tea.KeySpace}, runes("x"), tea.KeyMsg{Type: tea.KeyEnter})

	require.Equal(t, "hi x\n", m.sess.Text())
	entry, err := f.store.Refresh(context.Background(), store.DefaultKey)
	require.NoError(t, err)
	require.Equal(t, "hi x\n", entry.Value)
}

func TestApp_UndoRedo(t *testing.T) {
	f := newFixture(t, "")
	m := typeText(f.model, "ab")

	m = update(m, tea.KeyMsg{Type: tea.KeyCtrlZ})
	require.Equal(t, "a", m.sess.Text())
	require.True(t, m.toolbar.Enabled("redo"))

	m = update(m, tea.KeyMsg{Type: tea.KeyCtrlY})
	require.Equal(t, "ab", m.sess.Text())
	require.False(t, m.toolbar.Enabled("redo"))
}

func TestApp_CopyShowsToast(t *testing.T) {
	f := newFixture(t, "copy me")

	next, cmd := f.model.Update(alt('c'))
	m := next.(Model)

	require.NotNil(t, cmd, "toast schedules its dismissal")
	require.Equal(t, "copy me", f.clip.Text())
	require.True(t, m.toaster.Visible())
	require.Equal(t, notify.MsgCopied, m.toaster.Message())
	require.Contains(t, ansi.Strip(m.View()), "Copied")
}

func TestApp_PasteFallbackToast(t *testing.T) {
	f := newFixture(t, "keep")
	f.clip.ReadErr = clipboard.ErrUnavailable

	m := update(f.model, tea.KeyMsg{Type: tea.KeyCtrlV})

	require.Equal(t, "keep", m.sess.Text())
	require.Equal(t, notify.MsgPasteFallback, m.toaster.Message())
}

func TestApp_BracketedPasteInserts(t *testing.T) {
	f := newFixture(t, "")

	m := update(f.model, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("pasted\ntext"), Paste: true})

	require.Equal(t, "pasted\ntext", m.sess.Text())
	require.Equal(t, notify.MsgPasted, m.toaster.Message())
}

func TestApp_SearchPanelReplaceAll(t *testing.T) {
	f := newFixture(t, "a-a-a")

	m := update(f.model, tea.KeyMsg{Type: tea.KeyCtrlF})
	require.True(t, m.showPanel)
	require.True(t, m.panel.Focused())
	require.False(t, m.editor.Focused())

	m = typeText(m, "a")
	m = update(m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(m, "bb")
	m = update(m, alt('r'))

	require.Equal(t, "bb-bb-bb", m.sess.Text())
	require.Equal(t, notify.Replaced(3), m.toaster.Message())

	m = update(m, tea.KeyMsg{Type: tea.KeyEsc})
	require.False(t, m.showPanel)
	require.True(t, m.editor.Focused())
}

func TestApp_FindNextSelectsMatch(t *testing.T) {
	f := newFixture(t, "Hello World")
	f.model.sess.Doc().SetCaret(0)

	m := update(f.model, tea.KeyMsg{Type: tea.KeyCtrlF})
	m = typeText(m, "world")
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	m = update(next.(Model), cmd())

	start, end := m.sess.Doc().Selection()
	require.Equal(t, [2]int{6, 11}, [2]int{start, end})
}

func TestApp_SearchPrefillsSelection(t *testing.T) {
	f := newFixture(t, "find me")
	f.model.sess.Doc().SetSelection(5, 7)

	m := update(f.model, tea.KeyMsg{Type: tea.KeyCtrlF})

	require.Equal(t, "me", m.panel.Query().Term)
}

func TestApp_Transform(t *testing.T) {
	f := newFixture(t, "abc")

	m := update(f.model, alt('w'))
	require.Equal(t, "ａｂｃ", m.sess.Text())

	m = update(m, alt('h'))
	require.Equal(t, "abc", m.sess.Text())
}

func TestApp_HelpOverlay(t *testing.T) {
	f := newFixture(t, "")

	m := update(f.model, tea.KeyMsg{Type: tea.KeyF1})
	require.True(t, m.showHelp)
	require.Contains(t, ansi.Strip(m.View()), "Keybindings")

	m = update(m, runes("x"))
	require.Empty(t, m.sess.Text(), "keys are swallowed while help is open")

	m = update(m, tea.KeyMsg{Type: tea.KeyEsc})
	require.False(t, m.showHelp)
}

func TestApp_ReloadsOnStoreEvent(t *testing.T) {
	f := newFixture(t, "mine")
	other := testutil.OpenStoreAt(t, f.store.Path())
	require.NoError(t, other.Set(context.Background(), store.DefaultKey, "theirs"))

	m := update(f.model, pubsub.Event[string]{Type: pubsub.ContentChanged, Payload: f.store.Path()})

	require.Equal(t, "theirs", m.sess.Text())
	require.Equal(t, notify.MsgReloaded, m.toaster.Message())
}

func TestApp_WatchFailedIsIgnored(t *testing.T) {
	f := newFixture(t, "mine")

	m := update(f.model, pubsub.Event[string]{Type: pubsub.WatchFailed})

	require.Equal(t, "mine", m.sess.Text())
	require.False(t, m.toaster.Visible())
}

func TestApp_Quit(t *testing.T) {
	f := newFixture(t, "")

	_, cmd := f.model.Update(tea.KeyMsg{Type: tea.KeyCtrlQ})

	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}

func TestApp_Program(t *testing.T) {
	f := newFixture(t, "")

	tm := teatest.NewTestModel(t, f.model, teatest.WithInitialTermSize(80, 20))
	tm.Type("hello")
	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return strings.Contains(string(out), "hello")
	}, teatest.WithDuration(3*time.Second))

	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlQ})
	final := tm.FinalModel(t, teatest.WithFinalTimeout(3*time.Second)).(Model)

	require.Equal(t, "hello", final.sess.Text())
}
