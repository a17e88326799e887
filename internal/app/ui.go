package app

import (
	"github.com/bethropolis/jot/internal/core/history"
	"github.com/bethropolis/jot/internal/modehandler"
	"github.com/bethropolis/jot/internal/statusbar"
	"github.com/bethropolis/jot/internal/tui"
)

// drawEditor clears screen and redraws all components for the current mode.
func (a *App) drawEditor() {
	a.updateStatusBarContent()

	activeTheme := a.themeManager.Current()
	screen := a.tuiManager.GetScreen()
	width, height := a.tuiManager.Size()

	a.tuiManager.Clear()
	mode := a.modeHandler.GetCurrentMode()
	switch mode {
	case modehandler.ModeLogs:
		tui.DrawLogs(a.tuiManager, a.modeHandler.LogEntries(), a.modeHandler.LogSelection(),
			a.editor.GetHistoryManager().Len(), activeTheme)
	case modehandler.ModeAmend:
		tui.DrawAmend(a.tuiManager, a.editor, activeTheme)
	default:
		tui.DrawBuffer(a.tuiManager, a.editor, activeTheme)
	}
	a.statusBar.Draw(screen, width, height, activeTheme)
	a.messageShown = a.statusBar.Message() != ""

	switch mode {
	case modehandler.ModeCommand:
		tui.DrawPromptCursor(a.tuiManager, ":"+a.modeHandler.GetCommandBuffer())
	case modehandler.ModeConfirm:
		tui.DrawPromptCursor(a.tuiManager, a.modeHandler.ConfirmPrompt()+" ")
	case modehandler.ModeLogs:
		tui.HideCursor(a.tuiManager)
	default:
		tui.DrawCursor(a.tuiManager, a.editor)
	}
	a.tuiManager.Show()
}

// updateStatusBarContent pushes current editor state to the status bar component.
func (a *App) updateStatusBarContent() {
	a.refreshHistoryInfo()
	a.statusBar.SetModified(a.editor.Modified())
	a.statusBar.SetCursorInfo(a.editor.GetCursor())
	a.statusBar.SetEditorMode(a.modeHandler.GetCurrentMode().String())
}

func (a *App) refreshHistoryInfo() {
	hist := a.editor.GetHistoryManager()
	nextUndo, nextRedo := hist.Peek()
	a.statusBar.SetHistoryInfo(statusbar.HistoryInfo{
		Steps:    hist.Len(),
		NextUndo: actionID(nextUndo),
		NextRedo: actionID(nextRedo),
	})
}

func actionID(a *history.Action) int {
	if a == nil {
		return -1
	}
	return a.ID
}
