package app

import (
	"github.com/bethropolis/jot/internal/event"
	"github.com/bethropolis/jot/internal/logger"
)

// subscribeEvents wires app-level reactions to editor events.
func (a *App) subscribeEvents() {
	a.eventManager.Subscribe(event.TypeCursorMoved, a.handleCursorMovedForStatus)
	a.eventManager.Subscribe(event.TypeTextEdited, a.handleTextChangedForStatus)
	a.eventManager.Subscribe(event.TypeTextReplaced, a.handleTextChangedForStatus)
	a.eventManager.Subscribe(event.TypeHistoryChanged, a.handleHistoryChanged)
	a.eventManager.Subscribe(event.TypeModeChanged, a.handleModeChanged)
}

func (a *App) handleCursorMovedForStatus(e event.Event) bool {
	if data, ok := e.Data.(event.CursorMovedData); ok {
		a.statusBar.SetCursorInfo(data.NewPosition)
	}
	return false
}

func (a *App) handleTextChangedForStatus(e event.Event) bool {
	a.statusBar.SetModified(a.editor.Modified())
	if data, ok := e.Data.(event.TextReplacedData); ok {
		logger.DebugTagf("history", "App: text replaced by %s, len %d", data.Reason, data.Len)
	}
	return false
}

// handleHistoryChanged keeps the step counters current and logs the step.
func (a *App) handleHistoryChanged(e event.Event) bool {
	data, ok := e.Data.(event.HistoryChangedData)
	if !ok {
		logger.Warnf("App: HistoryChanged event with unexpected data type: %T", e.Data)
		return false
	}
	logger.DebugTagf("history", "App: %s #%d, log %d, undo %d, redo %d",
		data.Op, data.ActionID, data.LogLen, data.UndoDepth, data.RedoDepth)
	a.refreshHistoryInfo()
	a.statusBar.SetModified(a.editor.Modified())
	return false
}

func (a *App) handleModeChanged(e event.Event) bool {
	if data, ok := e.Data.(event.ModeChangedData); ok {
		a.statusBar.SetEditorMode(data.Mode)
	}
	return false
}
