package core

import (
	"fmt"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/bethropolis/jot/internal/core/history"
	"github.com/bethropolis/jot/internal/logger"
)

// The step methods run one history operation against the current note and
// return the status line to show. The error is one of the history sentinels
// when the operation had nothing to do.

func noSuchStep(id int) string { return fmt.Sprintf("No such step #%d", id) }

// SetStep logs the note as a checkpoint, even if unchanged.
func (e *Editor) SetStep() string {
	a := e.history.Set(e.Text())
	e.dispatchHistoryChanged("SET", a)
	return fmt.Sprintf("SET -> step #%d (len %d, Δ %s)", a.ID, a.Len(), history.FormatDelta(a.Delta()))
}

// CommitStep logs the note if it changed since the newest entry.
func (e *Editor) CommitStep() (string, error) {
	a, ok := e.history.Commit(e.Text())
	if !ok {
		return "Nothing changed; commit skipped.", history.ErrUnchanged
	}
	e.dispatchHistoryChanged("COMMIT", a)
	return fmt.Sprintf("COMMIT -> step #%d (len %d, Δ %s)", a.ID, a.Len(), history.FormatDelta(a.Delta())), nil
}

// UndoStep restores the snapshot from before the newest undoable action.
func (e *Editor) UndoStep() (string, error) {
	text, a, ok := e.history.Undo()
	if !ok {
		return "Nothing to undo.", history.ErrNothingToUndo
	}
	e.replaceText(text, "undo")
	e.dispatchHistoryChanged("UNDO", a)
	return fmt.Sprintf("Undo -> #%d (len %d)", a.ID, utf8.RuneCountInString(text)), nil
}

// RedoStep re-applies the most recently undone action.
func (e *Editor) RedoStep() (string, error) {
	text, a, ok := e.history.Redo()
	if !ok {
		return "Nothing to redo.", history.ErrNothingToRedo
	}
	e.replaceText(text, "redo")
	e.dispatchHistoryChanged("REDO", a)
	return fmt.Sprintf("Redo -> #%d (len %d)", a.ID, utf8.RuneCountInString(text)), nil
}

// JumpTo loads the snapshot of entry id into the note without recording.
func (e *Editor) JumpTo(id int) (string, error) {
	text, ok := e.history.Jump(id)
	if !ok {
		return noSuchStep(id), history.ErrNotFound
	}
	e.replaceText(text, "jump")
	return fmt.Sprintf("Jumped to snapshot of #%d (len %d). Commit to record.", id, utf8.RuneCountInString(text)), nil
}

// BeginAmend opens the amend pane pre-filled with the snapshot of entry id.
func (e *Editor) BeginAmend(id int) (string, error) {
	a, ok := e.history.Lookup(id)
	if !ok {
		return noSuchStep(id), history.ErrNotFound
	}
	e.amendTarget = id
	e.amend.setText(a.After)
	e.active = e.amend
	return fmt.Sprintf("Amend log #%d: Ctrl+S to accept, Esc to cancel", id), nil
}

// FinishAmend records the amend pane text as an amendment of the target
// entry and makes it the note.
func (e *Editor) FinishAmend() (string, error) {
	id, ok := e.AmendTarget()
	if !ok {
		return "Not amending.", nil
	}
	newText := e.amend.Text()
	e.closeAmend()

	a, ok := e.history.Amend(id, newText, e.Text())
	if !ok {
		return noSuchStep(id), history.ErrNotFound
	}
	e.replaceText(newText, "amend")
	e.dispatchHistoryChanged("AMEND", a)
	return fmt.Sprintf("AMEND -> #%d (amends #%d), len %d, Δ %s",
		a.ID, id, a.Len(), history.FormatDelta(a.Delta())), nil
}

// CancelAmend discards the amend pane.
func (e *Editor) CancelAmend() string {
	if !e.IsAmending() {
		return ""
	}
	e.closeAmend()
	return "Amend cancelled."
}

func (e *Editor) closeAmend() {
	e.amendTarget = -1
	e.amend.setText("")
	e.active = e.main
}

// PeekSummary describes the next undo and redo candidates.
func (e *Editor) PeekSummary() string {
	u, r := e.history.Peek()
	return fmt.Sprintf("Next UNDO: %s | Next REDO: %s", u.Summary(), r.Summary())
}

// ResetAll clears the history and the note. Callers confirm first.
func (e *Editor) ResetAll() string {
	e.CancelAmend()
	e.history.Reset()
	e.replaceText("", "reset")
	e.dispatchHistoryChanged("RESET", nil)
	return "Reset."
}

// AppendLine adds text as a new last line of the note. The result is not
// recorded until the next commit.
func (e *Editor) AppendLine(text string) string {
	current := e.Text()
	if current == "" {
		current = text
	} else {
		current += "\n" + text
	}
	e.replaceText(current, "append")
	return fmt.Sprintf("Appended (len %d). Commit to record.", utf8.RuneCountInString(current))
}

// SinceSummary lists the ids of the last n entries.
func (e *Editor) SinceSummary(n int) string {
	entries := e.history.Since(n)
	if len(entries) == 0 {
		return "Log is empty."
	}
	ids := make([]string, len(entries))
	for i, a := range entries {
		ids[i] = fmt.Sprintf("#%d %s", a.ID, a.Type)
	}
	return fmt.Sprintf("Last %d: %s", len(entries), strings.Join(ids, ", "))
}

// ExportTo writes the log report to path.
func (e *Editor) ExportTo(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("export: no file name given")
	}
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("export: %w", err)
	}
	meta := history.ExportMeta{Session: e.session, ExportedAt: time.Now()}
	if err := history.Export(f, e.history, meta); err != nil {
		f.Close()
		return "", fmt.Errorf("export: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("export: %w", err)
	}
	logger.Infof("Exported %d log entries to %s", e.history.Len(), path)
	return fmt.Sprintf("Exported %d steps to %s", e.history.Len(), path), nil
}
