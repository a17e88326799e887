package event

import (
	"github.com/bethropolis/jot/internal/types"
	"github.com/gdamore/tcell/v2"
)

// Type identifies the kind of event.
type Type int

const (
	TypeUnknown Type = iota

	// Editor
	TypeTextReplaced   // whole text replaced (undo, redo, jump, amend, reset)
	TypeTextEdited     // keystroke-level edit
	TypeHistoryChanged // log or stacks changed
	TypeCursorMoved
	TypeModeChanged

	TypeKeyPressed

	// Lifecycle
	TypeAppReady
	TypeAppQuit

	TypeThemeChanged
)

var typeNames = map[Type]string{
	TypeUnknown:        "Unknown",
	TypeTextReplaced:   "TextReplaced",
	TypeTextEdited:     "TextEdited",
	TypeHistoryChanged: "HistoryChanged",
	TypeCursorMoved:    "CursorMoved",
	TypeModeChanged:    "ModeChanged",
	TypeKeyPressed:     "KeyPressed",
	TypeAppReady:       "AppReady",
	TypeAppQuit:        "AppQuit",
	TypeThemeChanged:   "ThemeChanged",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// Event is the structure passed through the event bus.
type Event struct {
	Type Type
	Data interface{}
}

// TextReplacedData carries the reason and new length (in runes) after a
// whole-text replacement.
type TextReplacedData struct {
	Reason string
	Len    int
}

// HistoryChangedData describes the engine state after a change.
type HistoryChangedData struct {
	Op        string // SET, COMMIT, AMEND, UNDO, REDO, RESET
	ActionID  int    // -1 when no action is involved
	LogLen    int
	UndoDepth int
	RedoDepth int
}

type CursorMovedData struct {
	NewPosition types.Position
}

type ModeChangedData struct {
	Mode string
}

type KeyPressedData struct {
	KeyEvent *tcell.EventKey
}

type ThemeChangedData struct {
	Name string
}

type AppQuitData struct{}

type AppReadyData struct{}
