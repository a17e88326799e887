// internal/input/action.go
package input

// Action is an editor operation decoded from a key event.
type Action int

const (
	ActionUnknown Action = iota
	ActionQuit
	ActionForceQuit

	// History
	ActionCommit
	ActionSet
	ActionUndo
	ActionRedo
	ActionShowLogs
	ActionPeek
	ActionReset

	// Cursor movement
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionMovePageUp
	ActionMovePageDown
	ActionMoveHome
	ActionMoveEnd

	// Text
	ActionInsertRune
	ActionInsertNewLine
	ActionInsertTab
	ActionDeleteCharForward
	ActionDeleteCharBackward
	ActionPaste

	ActionEnterCommandMode
)

var actionNames = map[Action]string{
	ActionUnknown:            "Unknown",
	ActionQuit:               "Quit",
	ActionForceQuit:          "ForceQuit",
	ActionCommit:             "Commit",
	ActionSet:                "Set",
	ActionUndo:               "Undo",
	ActionRedo:               "Redo",
	ActionShowLogs:           "ShowLogs",
	ActionPeek:               "Peek",
	ActionReset:              "Reset",
	ActionMoveUp:             "MoveUp",
	ActionMoveDown:           "MoveDown",
	ActionMoveLeft:           "MoveLeft",
	ActionMoveRight:          "MoveRight",
	ActionMovePageUp:         "MovePageUp",
	ActionMovePageDown:       "MovePageDown",
	ActionMoveHome:           "MoveHome",
	ActionMoveEnd:            "MoveEnd",
	ActionInsertRune:         "InsertRune",
	ActionInsertNewLine:      "InsertNewLine",
	ActionInsertTab:          "InsertTab",
	ActionDeleteCharForward:  "DeleteCharForward",
	ActionDeleteCharBackward: "DeleteCharBackward",
	ActionPaste:              "Paste",
	ActionEnterCommandMode:   "EnterCommandMode",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// ActionEvent is a decoded key event with its payload.
type ActionEvent struct {
	Action Action
	Rune   rune // for ActionInsertRune
}
