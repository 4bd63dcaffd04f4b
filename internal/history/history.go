// Package history implements bounded, linear undo/redo over full-text
// snapshots of a document.
//
// Snapshots are whole strings, not diffs. MaxEntries bounds the number of
// prior states kept beyond the current one, so memory stays a small multiple
// of the document size.
package history

import (
	"errors"

	"github.com/zjrosen/clipedit/internal/log"
)

// DefaultMaxEntries is the number of prior states retained when no limit is
// configured.
const DefaultMaxEntries = 10

// ErrAlreadyInitialized is returned when Init is called more than once.
var ErrAlreadyInitialized = errors.New("history already initialized")

// TextAccessor is the part of the document the engine reads and rewrites.
type TextAccessor interface {
	Text() string
	SetText(text string)
}

// Engine owns the undo and redo stacks for one document.
//
// The top of the undo stack always equals the live document text, except
// while Undo or Redo is rewriting it. During that window Record is a no-op so
// that a document which reports its own changes cannot re-record them.
type Engine struct {
	doc        TextAccessor
	maxEntries int

	undoStack []string
	redoStack []string

	initialized bool
	undoing     bool
	redoing     bool
}

// New creates an engine over doc. maxEntries <= 0 selects DefaultMaxEntries.
func New(doc TextAccessor, maxEntries int) *Engine {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &Engine{
		doc:        doc,
		maxEntries: maxEntries,
	}
}

// Init seeds the undo stack with the current document text.
func (e *Engine) Init() error {
	if e.initialized {
		return ErrAlreadyInitialized
	}
	e.undoStack = append(e.undoStack[:0], e.doc.Text())
	e.initialized = true
	log.Debug(log.CatHistory, "history initialized", "max_entries", e.maxEntries)
	return nil
}

// Record pushes a snapshot of the document when force is set or the text
// differs from the newest snapshot. Any new snapshot discards the redo
// stack. Returns whether a snapshot was pushed.
func (e *Engine) Record(force bool) bool {
	if e.Transitioning() {
		return false
	}
	if !e.initialized {
		log.Warn(log.CatHistory, "record before init ignored")
		return false
	}

	current := e.doc.Text()
	if !force && current == e.top() {
		return false
	}

	e.undoStack = append(e.undoStack, current)
	if over := len(e.undoStack) - (e.maxEntries + 1); over > 0 {
		e.undoStack = append(e.undoStack[:0], e.undoStack[over:]...)
	}
	e.redoStack = e.redoStack[:0]

	log.Debug(log.CatHistory, "snapshot recorded",
		"force", force, "undo_depth", len(e.undoStack))
	return true
}

// Undo restores the previous snapshot. Returns false when there is nothing
// before the current state.
func (e *Engine) Undo() bool {
	if len(e.undoStack) <= 1 {
		return false
	}

	e.undoing = true
	defer func() { e.undoing = false }()

	last := len(e.undoStack) - 1
	e.redoStack = append(e.redoStack, e.undoStack[last])
	e.undoStack = e.undoStack[:last]
	e.doc.SetText(e.top())

	log.Debug(log.CatHistory, "undo",
		"undo_depth", len(e.undoStack), "redo_depth", len(e.redoStack))
	return true
}

// Redo reapplies the most recently undone snapshot. Returns false when the
// redo stack is empty.
func (e *Engine) Redo() bool {
	if len(e.redoStack) == 0 {
		return false
	}

	e.redoing = true
	defer func() { e.redoing = false }()

	last := len(e.redoStack) - 1
	next := e.redoStack[last]
	e.redoStack = e.redoStack[:last]
	e.undoStack = append(e.undoStack, next)
	e.doc.SetText(next)

	log.Debug(log.CatHistory, "redo",
		"undo_depth", len(e.undoStack), "redo_depth", len(e.redoStack))
	return true
}

// CanUndo reports whether a prior state exists.
func (e *Engine) CanUndo() bool {
	return len(e.undoStack) > 1
}

// CanRedo reports whether an undone state can be reapplied.
func (e *Engine) CanRedo() bool {
	return len(e.redoStack) > 0
}

// Transitioning reports whether Undo or Redo is currently rewriting the
// document.
func (e *Engine) Transitioning() bool {
	return e.undoing || e.redoing
}

// UndoDepth returns the number of snapshots on the undo stack, including the
// current state.
func (e *Engine) UndoDepth() int {
	return len(e.undoStack)
}

// RedoDepth returns the number of snapshots on the redo stack.
func (e *Engine) RedoDepth() int {
	return len(e.redoStack)
}

// MaxEntries returns the configured bound on prior states.
func (e *Engine) MaxEntries() int {
	return e.maxEntries
}

func (e *Engine) top() string {
	if len(e.undoStack) == 0 {
		return ""
	}
	return e.undoStack[len(e.undoStack)-1]
}
