// internal/app/editor_api.go
package app

import (
	"fmt"

	"github.com/bethropolis/jot/internal/event"
	"github.com/bethropolis/jot/internal/logger"
	"github.com/bethropolis/jot/internal/plugin"
	"github.com/bethropolis/jot/internal/theme"
	"github.com/bethropolis/jot/internal/types"
	"github.com/gdamore/tcell/v2"
)

// Ensure appEditorAPI implements the plugin.EditorAPI interface.
var _ plugin.EditorAPI = (*appEditorAPI)(nil)

// appEditorAPI provides the concrete implementation of the EditorAPI interface.
type appEditorAPI struct {
	app *App
}

func newEditorAPI(app *App) *appEditorAPI {
	return &appEditorAPI{app: app}
}

// --- Note Access ---

func (api *appEditorAPI) GetText() string {
	return api.app.editor.Text()
}

func (api *appEditorAPI) GetLineCount() int {
	return api.app.editor.GetBuffer().LineCount()
}

func (api *appEditorAPI) IsModified() bool {
	return api.app.editor.Modified()
}

// --- History ---

func (api *appEditorAPI) HistoryLen() int {
	return api.app.editor.GetHistoryManager().Len()
}

// Commit records the note. committed is false when nothing changed since the
// newest log entry.
func (api *appEditorAPI) Commit() (string, bool) {
	msg, err := api.app.editor.CommitStep()
	return msg, err == nil
}

// --- Cursor ---

func (api *appEditorAPI) GetCursor() types.Position {
	return api.app.editor.GetCursor()
}

func (api *appEditorAPI) SetCursor(pos types.Position) {
	api.app.editor.SetCursor(pos)
}

// --- Event Loop ---

func (api *appEditorAPI) Post(fn func()) {
	api.app.Post(fn)
}

// --- Event Bus Interaction ---

func (api *appEditorAPI) DispatchEvent(eventType event.Type, data interface{}) {
	api.app.eventManager.Dispatch(eventType, data)
}

func (api *appEditorAPI) SubscribeEvent(eventType event.Type, handler event.Handler) {
	api.app.eventManager.Subscribe(eventType, handler)
}

// --- Command Registration ---

func (api *appEditorAPI) RegisterCommand(name string, cmdFunc plugin.CommandFunc) error {
	if api.app == nil || api.app.GetModeHandler() == nil {
		logger.Errorf("appEditorAPI cannot register command '%s', app or modeHandler is nil", name)
		return fmt.Errorf("internal error: API cannot access command registration")
	}
	return api.app.GetModeHandler().RegisterCommand(name, cmdFunc)
}

// --- Status Bar ---

func (api *appEditorAPI) SetStatusMessage(format string, args ...interface{}) {
	api.app.statusBar.SetTemporaryMessage(format, args...)
}

// --- Theme Access ---

func (api *appEditorAPI) GetThemeStyle(styleName string) tcell.Style {
	return api.app.GetTheme().GetStyle(styleName)
}

func (api *appEditorAPI) SetTheme(name string) error {
	return api.app.SetTheme(name)
}

func (api *appEditorAPI) GetTheme() *theme.Theme {
	return api.app.GetTheme()
}

func (api *appEditorAPI) ListThemes() []string {
	return api.app.themeManager.ListThemes()
}
