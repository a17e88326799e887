package modehandler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bethropolis/jot/internal/plugin"
)

var errUsage = errors.New("wrong number of arguments")

func (mh *ModeHandler) registerBuiltinCommands() {
	builtins := map[string]plugin.CommandFunc{
		"set":    noArgs(func() { mh.report(mh.editor.SetStep(), nil) }),
		"commit": noArgs(func() { mh.report(mh.editor.CommitStep()) }),
		"undo":   noArgs(func() { mh.report(mh.editor.UndoStep()) }),
		"redo":   noArgs(func() { mh.report(mh.editor.RedoStep()) }),
		"peek":   noArgs(func() { mh.report(mh.editor.PeekSummary(), nil) }),
		"logs":   noArgs(func() { mh.openLogs(0) }),
		"reset":  noArgs(mh.requestReset),
		"q":      noArgs(func() { mh.requestQuit(false) }),
		"q!":     noArgs(func() { mh.requestQuit(true) }),
		"since":  mh.cmdSince,
		"jump":   mh.cmdJump,
		"amend":  mh.cmdAmend,
		"append": mh.cmdAppend,
		"export": mh.cmdExport,
		"copy":   mh.cmdCopy,
	}
	for name, fn := range builtins {
		if err := mh.RegisterCommand(name, fn); err != nil {
			panic(err)
		}
	}
}

func noArgs(fn func()) plugin.CommandFunc {
	return func(args []string) error {
		if len(args) != 0 {
			return errUsage
		}
		fn()
		return nil
	}
}

// parseID accepts "3" and "#3".
func parseID(args []string) (int, error) {
	if len(args) != 1 {
		return 0, errUsage
	}
	id, err := strconv.Atoi(strings.TrimPrefix(args[0], "#"))
	if err != nil || id < 0 {
		return 0, fmt.Errorf("invalid step id '%s'", args[0])
	}
	return id, nil
}

func (mh *ModeHandler) cmdSince(args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 {
		return fmt.Errorf("invalid count '%s'", args[0])
	}
	mh.statusBar.SetTemporaryMessage("%s", mh.editor.SinceSummary(n))
	mh.openLogs(n)
	return nil
}

func (mh *ModeHandler) cmdJump(args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}
	mh.report(mh.editor.JumpTo(id))
	return nil
}

func (mh *ModeHandler) cmdAmend(args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}
	mh.beginAmend(id)
	return nil
}

func (mh *ModeHandler) cmdAppend(args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	mh.statusBar.SetTemporaryMessage("%s", mh.editor.AppendLine(strings.Join(args, " ")))
	return nil
}

func (mh *ModeHandler) cmdExport(args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	msg, err := mh.editor.ExportTo(args[0])
	if err != nil {
		return err
	}
	mh.statusBar.SetTemporaryMessage("%s", msg)
	return nil
}

func (mh *ModeHandler) cmdCopy(args []string) error {
	if len(args) != 0 {
		return errUsage
	}
	msg, err := mh.editor.CopyNote()
	if err != nil {
		return err
	}
	mh.statusBar.SetTemporaryMessage("%s", msg)
	return nil
}

// beginAmend opens the amend pane for id and switches to amend mode.
func (mh *ModeHandler) beginAmend(id int) {
	msg, err := mh.editor.BeginAmend(id)
	if err == nil {
		mh.setMode(ModeAmend)
	}
	mh.report(msg, err)
}
