package modehandler

import (
	"github.com/bethropolis/jot/internal/input"
)

// handleActionConfirm waits for y or n. Esc counts as n.
func (mh *ModeHandler) handleActionConfirm(ae input.ActionEvent) bool {
	yes := false
	switch {
	case ae.Action == input.ActionInsertRune && (ae.Rune == 'y' || ae.Rune == 'Y'):
		yes = true
	case ae.Action == input.ActionInsertRune && (ae.Rune == 'n' || ae.Rune == 'N'):
	case ae.Action == input.ActionQuit:
	default:
		return false
	}

	onYes := mh.onConfirm
	mh.onConfirm = nil
	mh.confirmPrompt = ""
	mh.setMode(mh.returnMode)
	mh.statusBar.ResetTemporaryMessage()

	if yes && onYes != nil {
		onYes()
	} else {
		mh.statusBar.SetTemporaryMessage("Cancelled.")
	}
	return true
}
