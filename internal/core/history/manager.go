package history

import (
	"errors"
	"time"

	"github.com/bethropolis/jot/internal/logger"
)

// Sentinel outcomes for callers that prefer errors over the ok results.
var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
	ErrUnchanged     = errors.New("nothing changed")
	ErrNotFound      = errors.New("no such step")
)

// Option configures a Manager.
type Option func(*Manager)

// WithClock replaces time.Now for action timestamps.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}

// WithPreviewWidth sets how many characters Action.Preview keeps.
func WithPreviewWidth(n int) Option {
	return func(m *Manager) {
		if n > 0 {
			m.previewWidth = n
		}
	}
}

// WithTimestampLayout sets the time layout used by Action.String.
func WithTimestampLayout(layout string) Option {
	return func(m *Manager) {
		if layout != "" {
			m.layout = layout
		}
	}
}

// Manager is the history engine: the log, the undo and redo stacks and the
// id allocator. It is not safe for concurrent use; callers serialize access.
type Manager struct {
	log    *Log
	undo   Stack
	redo   Stack
	nextID int

	now          func() time.Time
	previewWidth int
	layout       string
}

// NewManager creates an empty history engine.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		log:          newLog(),
		now:          time.Now,
		previewWidth: DefaultPreviewWidth,
		layout:       TimestampFormat,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// record allocates an id, appends the action and makes it the next undo.
// Any pending redo path is discarded.
func (m *Manager) record(typ OpType, before, after string, amends *int) *Action {
	a := &Action{
		ID:           m.nextID,
		Timestamp:    m.now(),
		Type:         typ,
		Before:       before,
		After:        after,
		Amends:       amends,
		previewWidth: m.previewWidth,
		layout:       m.layout,
	}
	m.nextID++
	m.log.append(a)
	m.undo.Push(a)
	m.redo.Clear()
	logger.DebugTagf("history", "History: recorded %s #%d (Δ %s). Log: %d, undo: %d",
		a.Type, a.ID, FormatDelta(a.Delta()), m.log.Len(), m.undo.Len())
	return a
}

// Set logs current as a checkpoint with Before == After. It always records,
// even when nothing changed since the last entry.
func (m *Manager) Set(current string) *Action {
	return m.record(OpSet, current, current, nil)
}

// Commit logs current if it differs from the newest log entry. It returns
// false, without allocating an id, when there is nothing to commit.
func (m *Manager) Commit(current string) (*Action, bool) {
	before := ""
	if last := m.log.Last(); last != nil {
		before = last.After
	}
	if before == current {
		logger.DebugTagf("history", "History: commit skipped, no change")
		return nil, false
	}
	return m.record(OpCommit, before, current, nil), true
}

// Undo steps back one action and returns the text to restore. It returns
// false when the undo stack is empty.
func (m *Manager) Undo() (string, *Action, bool) {
	a := m.undo.Pop()
	if a == nil {
		logger.DebugTagf("history", "History: nothing to undo")
		return "", nil, false
	}
	m.redo.Push(a)
	logger.DebugTagf("history", "History: undid #%d. undo: %d, redo: %d", a.ID, m.undo.Len(), m.redo.Len())
	return a.Before, a, true
}

// Redo re-applies the most recently undone action. It returns false when
// the redo stack is empty.
func (m *Manager) Redo() (string, *Action, bool) {
	a := m.redo.Pop()
	if a == nil {
		logger.DebugTagf("history", "History: nothing to redo")
		return "", nil, false
	}
	m.undo.Push(a)
	logger.DebugTagf("history", "History: redid #%d. undo: %d, redo: %d", a.ID, m.undo.Len(), m.redo.Len())
	return a.After, a, true
}

// Amend records a new action that revises log entry id. The referenced
// entry is left untouched. It returns false, changing nothing, when id is
// not in the log.
func (m *Manager) Amend(id int, newText, current string) (*Action, bool) {
	if _, ok := m.log.Lookup(id); !ok {
		logger.DebugTagf("history", "History: amend of unknown #%d", id)
		return nil, false
	}
	target := id
	return m.record(OpAmend, current, newText, &target), true
}

// Peek returns the next undo and redo candidates without moving.
func (m *Manager) Peek() (nextUndo, nextRedo *Action) {
	return m.undo.Peek(), m.redo.Peek()
}

// Jump returns the snapshot recorded by entry id. It records nothing; the
// caller commits if the jump should become history.
func (m *Manager) Jump(id int) (string, bool) {
	a, ok := m.log.Lookup(id)
	if !ok {
		return "", false
	}
	return a.After, true
}

// Reset drops the whole history and restarts ids at 0. It cannot be undone.
func (m *Manager) Reset() {
	m.log.clear()
	m.undo.Clear()
	m.redo.Clear()
	m.nextID = 0
	logger.DebugTagf("history", "History: reset")
}

func (m *Manager) Len() int { return m.log.Len() }

func (m *Manager) Lookup(id int) (*Action, bool) { return m.log.Lookup(id) }

func (m *Manager) Last() *Action { return m.log.Last() }

func (m *Manager) Entries() []*Action { return m.log.Entries() }

func (m *Manager) Since(n int) []*Action { return m.log.Since(n) }

func (m *Manager) CanUndo() bool { return !m.undo.IsEmpty() }

func (m *Manager) CanRedo() bool { return !m.redo.IsEmpty() }

// UndoDepth and RedoDepth report stack sizes for display.
func (m *Manager) UndoDepth() int { return m.undo.Len() }

func (m *Manager) RedoDepth() int { return m.redo.Len() }

// NextID is the id the next recorded action will receive.
func (m *Manager) NextID() int { return m.nextID }
