package modehandler

import (
	"strings"

	"github.com/bethropolis/jot/internal/input"
	"github.com/bethropolis/jot/internal/logger"
)

// handleActionCommand edits the command line. Enter runs it, Esc cancels.
func (mh *ModeHandler) handleActionCommand(ae input.ActionEvent) bool {
	switch ae.Action {
	case input.ActionInsertRune, input.ActionEnterCommandMode:
		if ae.Rune == 0 {
			return false
		}
		mh.cmdBuffer = append(mh.cmdBuffer, ae.Rune)
	case input.ActionDeleteCharBackward:
		if len(mh.cmdBuffer) == 0 {
			mh.setMode(ModeNormal)
			mh.statusBar.ResetTemporaryMessage()
			return true
		}
		mh.cmdBuffer = mh.cmdBuffer[:len(mh.cmdBuffer)-1]
	case input.ActionInsertNewLine:
		line := string(mh.cmdBuffer)
		mh.cmdBuffer = mh.cmdBuffer[:0]
		mh.setMode(ModeNormal)
		mh.statusBar.ResetTemporaryMessage()
		mh.executeCommand(line)
		return true
	case input.ActionQuit:
		mh.cmdBuffer = mh.cmdBuffer[:0]
		mh.setMode(ModeNormal)
		mh.statusBar.ResetTemporaryMessage()
		return true
	default:
		return false
	}
	mh.statusBar.SetPrompt(":%s", string(mh.cmdBuffer))
	return true
}

// executeCommand parses and runs a command line such as "jump 3".
func (mh *ModeHandler) executeCommand(line string) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return
	}
	name, args := parts[0], parts[1:]

	cmdFunc, exists := mh.commands[name]
	if !exists {
		mh.statusBar.SetWarning("Unknown command: %s", name)
		return
	}
	logger.DebugTagf("mode", "ModeHandler: executing ':%s' with args %v", name, args)
	if err := cmdFunc(args); err != nil {
		mh.statusBar.SetWarning("Error executing command '%s': %v", name, err)
	}
}

// ExecuteCommand runs a command line as if typed after ':'.
func (mh *ModeHandler) ExecuteCommand(line string) {
	mh.executeCommand(strings.TrimPrefix(line, ":"))
}
