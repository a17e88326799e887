// internal/plugin/plugin.go
package plugin

import (
	"github.com/bethropolis/jot/internal/event"
	"github.com/bethropolis/jot/internal/theme"
	"github.com/bethropolis/jot/internal/types"
	"github.com/gdamore/tcell/v2"
)

// CommandFunc is a ':' command. args are the whitespace-separated words after
// the command name.
type CommandFunc func(args []string) error

// EditorAPI is what plugins may do to the editor. Except for Post, every
// method must be called from the UI event loop: inside a command, an event
// handler, or a function passed to Post.
type EditorAPI interface {
	// Note access
	GetText() string
	GetLineCount() int
	IsModified() bool // note differs from the newest log entry

	// History
	HistoryLen() int
	Commit() (msg string, committed bool)

	GetCursor() types.Position
	SetCursor(pos types.Position)

	// Post queues fn to run on the UI event loop. Safe from any goroutine.
	Post(fn func())

	DispatchEvent(eventType event.Type, data interface{})
	SubscribeEvent(eventType event.Type, handler event.Handler)

	RegisterCommand(name string, cmdFunc CommandFunc) error

	SetStatusMessage(format string, args ...interface{})

	GetThemeStyle(styleName string) tcell.Style
	SetTheme(name string) error
	GetTheme() *theme.Theme
	ListThemes() []string
}

// Plugin is implemented by every plugin.
type Plugin interface {
	// Name is the unique identifier of the plugin.
	Name() string

	// Initialize is called once at startup. Plugins register commands and
	// subscribe to events here.
	Initialize(api EditorAPI) error

	// Shutdown is called once when the editor closes.
	Shutdown() error
}
