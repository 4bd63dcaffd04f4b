// Package clipboard reads and writes the system clipboard.
package clipboard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/atotto/clipboard"
	"github.com/muesli/termenv"

	"github.com/zjrosen/clipedit/internal/log"
)

// ErrUnavailable is returned when no clipboard backend can serve a read.
var ErrUnavailable = errors.New("clipboard unavailable")

// Clipboard defines the interface for clipboard operations.
type Clipboard interface {
	ReadText(ctx context.Context) (string, error)
	WriteText(ctx context.Context, text string) error
}

// System implements Clipboard using the platform clipboard. Over SSH or
// inside tmux/screen, writes are sent to the terminal as an OSC 52 sequence
// instead.
type System struct {
	out    io.Writer
	getenv func(string) string
}

// NewSystem creates a system clipboard. OSC 52 sequences are written to out,
// or to stdout when out is nil.
func NewSystem(out io.Writer) *System {
	if out == nil {
		out = os.Stdout
	}
	return &System{out: out, getenv: os.Getenv}
}

// ReadText returns the clipboard contents.
func (s *System) ReadText(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if clipboard.Unsupported {
		return "", ErrUnavailable
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("failed to read clipboard: %w", err)
	}
	return text, nil
}

// WriteText copies text to the clipboard.
func (s *System) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.shouldUseOSC52() || clipboard.Unsupported {
		log.Debug(log.CatClipboard, "copying via OSC 52", "bytes", len(text))
		termenv.NewOutput(s.out).Copy(text)
		return nil
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to write clipboard: %w", err)
	}
	return nil
}

// shouldUseOSC52 reports whether the process runs in a remote or
// multiplexed terminal where the local clipboard is not the user's.
func (s *System) shouldUseOSC52() bool {
	for _, key := range []string{"SSH_TTY", "SSH_CLIENT", "SSH_CONNECTION", "TMUX", "STY"} {
		if s.getenv(key) != "" {
			return true
		}
	}
	return false
}

// Mock is an in-memory clipboard for tests.
type Mock struct {
	mu       sync.Mutex
	text     string
	ReadErr  error
	WriteErr error
	Writes   int
}

// NewMock creates a mock clipboard holding text.
func NewMock(text string) *Mock {
	return &Mock{text: text}
}

// ReadText returns the stored text or ReadErr.
func (m *Mock) ReadText(context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ReadErr != nil {
		return "", m.ReadErr
	}
	return m.text, nil
}

// WriteText stores text or returns WriteErr.
func (m *Mock) WriteText(_ context.Context, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.text = text
	m.Writes++
	return nil
}

// Text returns what was last written.
func (m *Mock) Text() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text
}
