// Package notify carries short user-facing notices from the editing core to
// whatever displays them.
package notify

import (
	"fmt"
	"sync"
)

// Notice texts shown to the user.
const (
	MsgCopied          = "Copied"
	MsgCopyFailed      = "Copy failed. Copy the selection manually."
	MsgPasted          = "Pasted"
	MsgPasteFallback   = "Clipboard unavailable. Paste with your terminal (e.g. Ctrl+Shift+V)."
	MsgCleared         = "Cleared"
	MsgNotFound        = "Not found"
	MsgInvalidPattern  = "Invalid regular expression"
	MsgToHalfWidth     = "Converted to half-width"
	MsgToFullWidth     = "Converted to full-width"
	MsgNothingToChange = "Nothing to convert"
	MsgReloaded        = "Reloaded content changed by another window"
)

// Replaced formats the replace-all count notice.
func Replaced(n int) string {
	if n == 1 {
		return "Replaced 1 occurrence"
	}
	return fmt.Sprintf("Replaced %d occurrences", n)
}

// Notifier surfaces a message to the user. Fire-and-forget.
type Notifier interface {
	Notify(message string)
}

// Func adapts a plain function to Notifier.
type Func func(message string)

// Notify calls f(message).
func (f Func) Notify(message string) { f(message) }

// Discard drops every notice.
var Discard Notifier = Func(func(string) {})

// Queue buffers notices until the UI drains them.
type Queue struct {
	mu       sync.Mutex
	messages []string
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Notify appends message to the queue.
func (q *Queue) Notify(message string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.messages = append(q.messages, message)
}

// Drain returns all queued notices in order and empties the queue.
func (q *Queue) Drain() []string {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.messages
	q.messages = nil
	return out
}

// Last returns the most recent queued notice without draining.
func (q *Queue) Last() (string, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.messages) == 0 {
		return "", false
	}
	return q.messages[len(q.messages)-1], true
}
