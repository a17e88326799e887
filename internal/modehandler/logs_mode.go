package modehandler

import (
	"github.com/bethropolis/jot/internal/core/history"
	"github.com/bethropolis/jot/internal/input"
)

// openLogs shows the log list. limit > 0 restricts it to the newest entries.
func (mh *ModeHandler) openLogs(limit int) {
	mh.logLimit = limit
	entries := mh.LogEntries()
	if len(entries) == 0 {
		mh.statusBar.SetWarning("Log is empty.")
		return
	}
	mh.logSelection = len(entries) - 1
	mh.setMode(ModeLogs)
	mh.statusBar.SetTemporaryMessage("Logs (peek) - %d steps. j/k move, Enter/g jump, a amend, p peek, y yank, Esc close",
		mh.editor.GetHistoryManager().Len())
}

// LogEntries returns the entries the log list shows.
func (mh *ModeHandler) LogEntries() []*history.Action {
	return mh.editor.GetHistoryManager().Since(mh.logLimit)
}

// LogSelection is the index of the highlighted row in LogEntries.
func (mh *ModeHandler) LogSelection() int { return mh.logSelection }

func (mh *ModeHandler) selectedEntry() *history.Action {
	entries := mh.LogEntries()
	if mh.logSelection < 0 || mh.logSelection >= len(entries) {
		return nil
	}
	return entries[mh.logSelection]
}

func (mh *ModeHandler) moveSelection(delta int) {
	n := len(mh.LogEntries())
	mh.logSelection += delta
	if mh.logSelection >= n {
		mh.logSelection = n - 1
	}
	if mh.logSelection < 0 {
		mh.logSelection = 0
	}
}

func (mh *ModeHandler) handleActionLogs(ae input.ActionEvent) bool {
	switch ae.Action {
	case input.ActionMoveUp:
		mh.moveSelection(-1)
	case input.ActionMoveDown:
		mh.moveSelection(1)
	case input.ActionMovePageUp:
		mh.moveSelection(-10)
	case input.ActionMovePageDown:
		mh.moveSelection(10)
	case input.ActionMoveHome:
		mh.moveSelection(-len(mh.LogEntries()))
	case input.ActionMoveEnd:
		mh.moveSelection(len(mh.LogEntries()))
	case input.ActionQuit:
		mh.setMode(ModeNormal)
	case input.ActionPeek:
		mh.report(mh.editor.PeekSummary(), nil)
	case input.ActionInsertNewLine:
		mh.jumpSelected()
	case input.ActionInsertRune:
		return mh.handleLogsRune(ae.Rune)
	default:
		return false
	}
	return true
}

func (mh *ModeHandler) handleLogsRune(r rune) bool {
	switch r {
	case 'g':
		mh.jumpSelected()
	case 'a':
		if a := mh.selectedEntry(); a != nil {
			mh.setMode(ModeNormal)
			mh.beginAmend(a.ID)
		}
	case 'p':
		mh.report(mh.editor.PeekSummary(), nil)
	case 'y':
		if a := mh.selectedEntry(); a != nil {
			mh.report(mh.editor.YankEntry(a.ID))
		}
	case 'q':
		mh.setMode(ModeNormal)
	case 'k':
		mh.moveSelection(-1)
	case 'j':
		mh.moveSelection(1)
	default:
		return false
	}
	return true
}

func (mh *ModeHandler) jumpSelected() {
	a := mh.selectedEntry()
	if a == nil {
		mh.statusBar.SetWarning("Select a log first.")
		return
	}
	mh.setMode(ModeNormal)
	mh.report(mh.editor.JumpTo(a.ID))
}
