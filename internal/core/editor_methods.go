package core

import (
	"fmt"

	"github.com/bethropolis/jot/internal/core/history"
	"github.com/bethropolis/jot/internal/logger"
)

// Text operations act on the active pane.

func (e *Editor) InsertRune(r rune) error { return e.active.textOps.InsertRune(r) }

func (e *Editor) InsertNewLine() error { return e.active.textOps.InsertNewLine() }

func (e *Editor) InsertTab() error { return e.active.textOps.InsertTab() }

func (e *Editor) InsertText(s string) error { return e.active.textOps.InsertText(s) }

func (e *Editor) DeleteBackward() error { return e.active.textOps.DeleteBackward() }

func (e *Editor) DeleteForward() error { return e.active.textOps.DeleteForward() }

func (e *Editor) MoveCursor(deltaLine, deltaCol int) {
	e.active.cursor.Move(deltaLine, deltaCol)
	logger.DebugTagf("core", "MoveCursor: delta(%d,%d) -> (%d,%d)",
		deltaLine, deltaCol, e.GetCursor().Line, e.GetCursor().Col)
}

func (e *Editor) PageMove(deltaPages int) { e.active.cursor.PageMove(deltaPages) }

func (e *Editor) Home() { e.active.cursor.MoveToLineStart() }

func (e *Editor) End() { e.active.cursor.MoveToLineEnd() }

// Paste inserts the clipboard contents at the cursor. It returns false when
// the clipboard is empty.
func (e *Editor) Paste() (bool, error) {
	text := e.clipboard.Read()
	if text == "" {
		return false, nil
	}
	if err := e.active.textOps.InsertText(text); err != nil {
		return false, fmt.Errorf("paste: %w", err)
	}
	return true, nil
}

// CopyNote puts the whole note on the clipboard.
func (e *Editor) CopyNote() (string, error) {
	if err := e.clipboard.Copy(e.Text()); err != nil {
		return "", err
	}
	return fmt.Sprintf("Copied note (len %d).", e.TextLen()), nil
}

// YankEntry puts the snapshot of log entry id on the clipboard.
func (e *Editor) YankEntry(id int) (string, error) {
	a, ok := e.history.Lookup(id)
	if !ok {
		return noSuchStep(id), history.ErrNotFound
	}
	if err := e.clipboard.Copy(a.After); err != nil {
		return "", err
	}
	return fmt.Sprintf("Yanked #%d (len %d).", a.ID, a.Len()), nil
}
