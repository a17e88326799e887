package modehandler

import (
	"github.com/bethropolis/jot/internal/event"
	"github.com/bethropolis/jot/internal/input"
	"github.com/bethropolis/jot/internal/logger"
)

// handleActionNormal runs an action against the note.
func (mh *ModeHandler) handleActionNormal(ae input.ActionEvent) bool {
	switch ae.Action {
	case input.ActionEnterCommandMode:
		mh.cmdBuffer = mh.cmdBuffer[:0]
		mh.setMode(ModeCommand)
		mh.statusBar.SetPrompt(":")
	case input.ActionQuit:
		mh.requestQuit(false)
	case input.ActionForceQuit:
		mh.requestQuit(true)

	case input.ActionCommit:
		mh.report(mh.editor.CommitStep())
	case input.ActionSet:
		mh.report(mh.editor.SetStep(), nil)
	case input.ActionUndo:
		mh.report(mh.editor.UndoStep())
	case input.ActionRedo:
		mh.report(mh.editor.RedoStep())
	case input.ActionPeek:
		mh.report(mh.editor.PeekSummary(), nil)
	case input.ActionShowLogs:
		mh.openLogs(0)
	case input.ActionReset:
		mh.requestReset()

	default:
		return mh.handleEditing(ae)
	}
	return true
}

// handleActionAmend edits the amend pane. Ctrl+S accepts, Esc cancels.
func (mh *ModeHandler) handleActionAmend(ae input.ActionEvent) bool {
	switch ae.Action {
	case input.ActionCommit:
		msg, err := mh.editor.FinishAmend()
		mh.setMode(ModeNormal)
		mh.report(msg, err)
	case input.ActionQuit:
		mh.statusBar.SetTemporaryMessage("%s", mh.editor.CancelAmend())
		mh.setMode(ModeNormal)
	case input.ActionEnterCommandMode:
		if ae.Rune == 0 {
			mh.statusBar.SetWarning("Finish the amend with Ctrl+S or cancel with Esc.")
			return true
		}
		return mh.handleEditing(input.ActionEvent{Action: input.ActionInsertRune, Rune: ae.Rune})
	case input.ActionSet, input.ActionUndo, input.ActionRedo, input.ActionShowLogs,
		input.ActionPeek, input.ActionReset:
		mh.statusBar.SetWarning("Finish the amend with Ctrl+S or cancel with Esc.")
	default:
		return mh.handleEditing(ae)
	}
	return true
}

// handleEditing applies movement and text actions to the active pane.
func (mh *ModeHandler) handleEditing(ae input.ActionEvent) bool {
	original := mh.editor.GetCursor()
	var err error

	switch ae.Action {
	case input.ActionMoveUp:
		mh.editor.MoveCursor(-1, 0)
	case input.ActionMoveDown:
		mh.editor.MoveCursor(1, 0)
	case input.ActionMoveLeft:
		mh.editor.MoveCursor(0, -1)
	case input.ActionMoveRight:
		mh.editor.MoveCursor(0, 1)
	case input.ActionMovePageUp:
		mh.editor.PageMove(-1)
	case input.ActionMovePageDown:
		mh.editor.PageMove(1)
	case input.ActionMoveHome:
		mh.editor.Home()
	case input.ActionMoveEnd:
		mh.editor.End()

	case input.ActionInsertRune:
		err = mh.editor.InsertRune(ae.Rune)
	case input.ActionInsertNewLine:
		err = mh.editor.InsertNewLine()
	case input.ActionInsertTab:
		err = mh.editor.InsertTab()
	case input.ActionDeleteCharBackward:
		err = mh.editor.DeleteBackward()
	case input.ActionDeleteCharForward:
		err = mh.editor.DeleteForward()
	case input.ActionPaste:
		var pasted bool
		pasted, err = mh.editor.Paste()
		if err == nil && !pasted {
			mh.statusBar.SetWarning("Clipboard empty - nothing to paste")
		}

	default:
		return false
	}

	if err != nil {
		logger.Warnf("ModeHandler: %s failed: %v", ae.Action, err)
		mh.statusBar.SetWarning("%s failed: %v", ae.Action, err)
	}
	if pos := mh.editor.GetCursor(); pos != original {
		mh.eventManager.Dispatch(event.TypeCursorMoved, event.CursorMovedData{NewPosition: pos})
	}
	return true
}
