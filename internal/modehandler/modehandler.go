// internal/modehandler/modehandler.go
package modehandler

import (
	"errors"
	"fmt"

	"github.com/bethropolis/jot/internal/core"
	"github.com/bethropolis/jot/internal/core/history"
	"github.com/bethropolis/jot/internal/event"
	"github.com/bethropolis/jot/internal/input"
	"github.com/bethropolis/jot/internal/logger"
	"github.com/bethropolis/jot/internal/plugin"
	"github.com/bethropolis/jot/internal/statusbar"
	"github.com/gdamore/tcell/v2"
)

// InputMode is the state that decides how keys are interpreted.
type InputMode int

const (
	ModeNormal InputMode = iota
	ModeCommand
	ModeLogs
	ModeAmend
	ModeConfirm
)

func (m InputMode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeCommand:
		return "COMMAND"
	case ModeLogs:
		return "LOGS"
	case ModeAmend:
		return "AMEND"
	case ModeConfirm:
		return "CONFIRM"
	}
	return "UNKNOWN"
}

// ModeHandler routes key events to the editor according to the current mode
// and owns the command registry.
type ModeHandler struct {
	editor         *core.Editor
	inputProcessor *input.InputProcessor
	eventManager   *event.Manager
	statusBar      *statusbar.StatusBar
	quitSignal     chan<- struct{}
	confirmReset   bool

	currentMode InputMode
	cmdBuffer   []rune
	commands    map[string]plugin.CommandFunc
	quitting    bool

	// logs mode
	logSelection int
	logLimit     int // 0 shows every entry

	// confirm mode
	confirmPrompt string
	onConfirm     func()
	returnMode    InputMode
}

// Config holds dependencies for the ModeHandler.
type Config struct {
	Editor         *core.Editor
	InputProcessor *input.InputProcessor
	EventManager   *event.Manager
	StatusBar      *statusbar.StatusBar
	QuitSignal     chan<- struct{}
	ConfirmReset   bool
}

// New creates a ModeHandler with the built-in history commands registered.
func New(cfg Config) *ModeHandler {
	if cfg.Editor == nil || cfg.InputProcessor == nil || cfg.EventManager == nil || cfg.StatusBar == nil || cfg.QuitSignal == nil {
		panic("modehandler.New: missing required dependencies in Config")
	}
	mh := &ModeHandler{
		editor:         cfg.Editor,
		inputProcessor: cfg.InputProcessor,
		eventManager:   cfg.EventManager,
		statusBar:      cfg.StatusBar,
		quitSignal:     cfg.QuitSignal,
		confirmReset:   cfg.ConfirmReset,
		currentMode:    ModeNormal,
		commands:       make(map[string]plugin.CommandFunc),
	}
	mh.registerBuiltinCommands()
	return mh
}

// HandleKeyEvent processes one key. It returns true when the screen needs a
// redraw.
func (mh *ModeHandler) HandleKeyEvent(ev *tcell.EventKey) bool {
	mh.eventManager.Dispatch(event.TypeKeyPressed, event.KeyPressedData{KeyEvent: ev})

	actionEvent := mh.inputProcessor.ProcessEvent(ev)
	before := mh.currentMode

	var processed bool
	switch mh.currentMode {
	case ModeNormal:
		processed = mh.handleActionNormal(actionEvent)
	case ModeCommand:
		processed = mh.handleActionCommand(actionEvent)
	case ModeLogs:
		processed = mh.handleActionLogs(actionEvent)
	case ModeAmend:
		processed = mh.handleActionAmend(actionEvent)
	case ModeConfirm:
		processed = mh.handleActionConfirm(actionEvent)
	default:
		logger.Warnf("ModeHandler: unknown input mode %v", mh.currentMode)
	}

	if mh.currentMode != before {
		mh.eventManager.Dispatch(event.TypeModeChanged, event.ModeChangedData{Mode: mh.currentMode.String()})
		processed = true
	}
	return processed
}

func (mh *ModeHandler) setMode(mode InputMode) {
	logger.DebugTagf("mode", "ModeHandler: %s -> %s", mh.currentMode, mode)
	mh.currentMode = mode
}

// report shows a step result. Expected no-op outcomes are shown as warnings.
func (mh *ModeHandler) report(msg string, err error) {
	switch {
	case err == nil:
		mh.statusBar.SetTemporaryMessage("%s", msg)
	case errors.Is(err, history.ErrNothingToUndo), errors.Is(err, history.ErrNothingToRedo),
		errors.Is(err, history.ErrUnchanged), errors.Is(err, history.ErrNotFound):
		mh.statusBar.SetWarning("%s", msg)
	default:
		logger.Errorf("ModeHandler: %v", err)
		mh.statusBar.SetWarning("Error: %v", err)
	}
}

// askConfirm switches to confirm mode; onYes runs when the user answers y.
func (mh *ModeHandler) askConfirm(prompt string, onYes func()) {
	mh.returnMode = mh.currentMode
	mh.confirmPrompt = prompt
	mh.onConfirm = onYes
	mh.setMode(ModeConfirm)
	mh.statusBar.SetPrompt("%s", prompt)
}

// requestReset resets after confirmation when confirmation is enabled.
func (mh *ModeHandler) requestReset() {
	doReset := func() { mh.statusBar.SetTemporaryMessage("%s", mh.editor.ResetAll()) }
	if !mh.confirmReset {
		doReset()
		return
	}
	mh.askConfirm("Clear editor and history? (y/n)", doReset)
}

// requestQuit quits, asking first when the note has uncommitted changes.
func (mh *ModeHandler) requestQuit(force bool) {
	if force || !mh.editor.Modified() {
		mh.quit()
		return
	}
	mh.askConfirm("Uncommitted changes. Quit anyway? (y/n)", mh.quit)
}

func (mh *ModeHandler) quit() {
	if mh.quitting {
		return
	}
	mh.quitting = true
	close(mh.quitSignal)
}

// RegisterCommand adds a command to the registry.
func (mh *ModeHandler) RegisterCommand(name string, cmdFunc plugin.CommandFunc) error {
	if name == "" {
		return fmt.Errorf("command name cannot be empty")
	}
	if _, exists := mh.commands[name]; exists {
		return fmt.Errorf("command '%s' already registered", name)
	}
	mh.commands[name] = cmdFunc
	logger.DebugTagf("mode", "ModeHandler: registered command ':%s'", name)
	return nil
}

func (mh *ModeHandler) GetCurrentMode() InputMode { return mh.currentMode }

// GetCommandBuffer returns the command line being typed.
func (mh *ModeHandler) GetCommandBuffer() string {
	if mh.currentMode == ModeCommand {
		return string(mh.cmdBuffer)
	}
	return ""
}

// ConfirmPrompt returns the pending question in confirm mode.
func (mh *ModeHandler) ConfirmPrompt() string {
	if mh.currentMode == ModeConfirm {
		return mh.confirmPrompt
	}
	return ""
}
