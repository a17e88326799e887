package modehandler

import (
	"testing"

	"github.com/bethropolis/jot/internal/buffer"
	"github.com/bethropolis/jot/internal/core"
	"github.com/bethropolis/jot/internal/core/history"
	"github.com/bethropolis/jot/internal/event"
	"github.com/bethropolis/jot/internal/input"
	"github.com/bethropolis/jot/internal/statusbar"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type harness struct {
	mh     *ModeHandler
	editor *core.Editor
	sb     *statusbar.StatusBar
	quit   chan struct{}
	modes  []string
}

func newHarness(t *testing.T, confirmReset bool) *harness {
	t.Helper()
	h := &harness{quit: make(chan struct{})}
	em := event.NewManager()
	em.Subscribe(event.TypeModeChanged, func(e event.Event) bool {
		h.modes = append(h.modes, e.Data.(event.ModeChangedData).Mode)
		return false
	})
	h.editor = core.NewEditor(buffer.NewSliceBuffer(), history.NewManager())
	h.editor.SetEventManager(em)
	h.sb = statusbar.New(statusbar.DefaultConfig())
	h.mh = New(Config{
		Editor:         h.editor,
		InputProcessor: input.NewInputProcessor(),
		EventManager:   em,
		StatusBar:      h.sb,
		QuitSignal:     h.quit,
		ConfirmReset:   confirmReset,
	})
	return h
}

func (h *harness) key(k tcell.Key) {
	h.mh.HandleKeyEvent(tcell.NewEventKey(k, 0, tcell.ModNone))
}

func (h *harness) typeRunes(s string) {
	for _, r := range s {
		if r == '\n' {
			h.key(tcell.KeyEnter)
			continue
		}
		h.mh.HandleKeyEvent(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
	}
}

func (h *harness) command(line string) {
	h.key(tcell.KeyF2)
	h.typeRunes(line)
	h.key(tcell.KeyEnter)
}

func (h *harness) quitRequested() bool {
	select {
	case <-h.quit:
		return true
	default:
		return false
	}
}

func TestCommitUndoRedoKeys(t *testing.T) {
	h := newHarness(t, true)

	h.typeRunes("Hello")
	h.key(tcell.KeyCtrlS)
	assert.Equal(t, "COMMIT -> step #0 (len 5, Δ +5)", h.sb.Message())

	h.typeRunes(" world")
	h.key(tcell.KeyCtrlS)
	assert.Equal(t, "Hello world", h.editor.Text())

	h.key(tcell.KeyCtrlZ)
	assert.Equal(t, "Hello", h.editor.Text())
	assert.Equal(t, "Undo -> #1 (len 5)", h.sb.Message())

	h.key(tcell.KeyCtrlY)
	assert.Equal(t, "Hello world", h.editor.Text())

	h.key(tcell.KeyCtrlS)
	assert.Equal(t, "Nothing changed; commit skipped.", h.sb.Message())
}

func TestCtrlShiftZRedoes(t *testing.T) {
	h := newHarness(t, true)
	h.typeRunes("abc")
	h.key(tcell.KeyCtrlS)
	h.key(tcell.KeyCtrlZ)
	require.Equal(t, "", h.editor.Text())

	h.mh.HandleKeyEvent(tcell.NewEventKey(tcell.KeyCtrlZ, 0, tcell.ModCtrl|tcell.ModShift))
	assert.Equal(t, "abc", h.editor.Text())
}

func TestCommandMode(t *testing.T) {
	h := newHarness(t, true)

	h.key(tcell.KeyF2)
	assert.Equal(t, ModeCommand, h.mh.GetCurrentMode())
	h.typeRunes("commit")
	assert.Equal(t, "commit", h.mh.GetCommandBuffer())
	h.key(tcell.KeyEnter)
	assert.Equal(t, ModeNormal, h.mh.GetCurrentMode())
	assert.Equal(t, "Nothing changed; commit skipped.", h.sb.Message())

	h.command("frobnicate")
	assert.Equal(t, "Unknown command: frobnicate", h.sb.Message())

	h.command("jump 9")
	assert.Equal(t, "No such step #9", h.sb.Message())

	h.command("jump")
	assert.Contains(t, h.sb.Message(), "wrong number of arguments")

	assert.Equal(t, []string{"COMMAND", "NORMAL", "COMMAND", "NORMAL", "COMMAND", "NORMAL", "COMMAND", "NORMAL"}, h.modes)
}

func TestCommandModeBackspaceOnEmptyLeaves(t *testing.T) {
	h := newHarness(t, true)
	h.key(tcell.KeyF2)
	h.key(tcell.KeyBackspace2)
	assert.Equal(t, ModeNormal, h.mh.GetCurrentMode())
}

func TestAppendAndSince(t *testing.T) {
	h := newHarness(t, true)
	h.typeRunes("first")
	h.command("append second line")
	assert.Equal(t, "first\nsecond line", h.editor.Text())

	h.command("commit")
	h.command("set")
	h.command("since 1")
	assert.Equal(t, ModeLogs, h.mh.GetCurrentMode())
	require.Len(t, h.mh.LogEntries(), 1)
	assert.Equal(t, history.OpSet, h.mh.LogEntries()[0].Type)
}

func TestResetAsksForConfirmation(t *testing.T) {
	h := newHarness(t, true)
	h.typeRunes("abc")
	h.key(tcell.KeyCtrlS)

	h.key(tcell.KeyCtrlR)
	assert.Equal(t, ModeConfirm, h.mh.GetCurrentMode())
	assert.Equal(t, "Clear editor and history? (y/n)", h.mh.ConfirmPrompt())

	h.typeRunes("n")
	assert.Equal(t, ModeNormal, h.mh.GetCurrentMode())
	assert.Equal(t, "Cancelled.", h.sb.Message())
	assert.Equal(t, 1, h.editor.GetHistoryManager().Len())

	h.key(tcell.KeyCtrlR)
	h.typeRunes("y")
	assert.Equal(t, "Reset.", h.sb.Message())
	assert.Equal(t, "", h.editor.Text())
	assert.Equal(t, 0, h.editor.GetHistoryManager().Len())
}

func TestResetWithoutConfirmation(t *testing.T) {
	h := newHarness(t, false)
	h.typeRunes("abc")
	h.key(tcell.KeyCtrlT)
	h.key(tcell.KeyCtrlR)
	assert.Equal(t, ModeNormal, h.mh.GetCurrentMode())
	assert.Equal(t, 0, h.editor.GetHistoryManager().Len())
}

func TestQuit(t *testing.T) {
	t.Run("clean note quits at once", func(t *testing.T) {
		h := newHarness(t, true)
		h.key(tcell.KeyEscape)
		assert.True(t, h.quitRequested())
	})

	t.Run("uncommitted changes ask first", func(t *testing.T) {
		h := newHarness(t, true)
		h.typeRunes("draft")
		h.key(tcell.KeyEscape)
		assert.False(t, h.quitRequested())
		assert.Equal(t, "Uncommitted changes. Quit anyway? (y/n)", h.mh.ConfirmPrompt())
		h.typeRunes("y")
		assert.True(t, h.quitRequested())
	})

	t.Run("force quit skips the question", func(t *testing.T) {
		h := newHarness(t, true)
		h.typeRunes("draft")
		h.key(tcell.KeyCtrlQ)
		assert.True(t, h.quitRequested())
		h.key(tcell.KeyCtrlQ)
	})
}

func TestLogsModeJump(t *testing.T) {
	h := newHarness(t, true)
	h.typeRunes("one")
	h.key(tcell.KeyCtrlS)
	h.typeRunes(" two")
	h.key(tcell.KeyCtrlS)

	h.key(tcell.KeyCtrlL)
	require.Equal(t, ModeLogs, h.mh.GetCurrentMode())
	assert.Equal(t, 1, h.mh.LogSelection())

	h.key(tcell.KeyUp)
	h.key(tcell.KeyUp)
	assert.Equal(t, 0, h.mh.LogSelection())

	h.typeRunes("j")
	assert.Equal(t, ModeLogs, h.mh.GetCurrentMode())
	assert.Equal(t, 1, h.mh.LogSelection())
	h.typeRunes("k")
	assert.Equal(t, 0, h.mh.LogSelection())

	h.typeRunes("g")
	assert.Equal(t, ModeNormal, h.mh.GetCurrentMode())
	assert.Equal(t, "one", h.editor.Text())
	assert.Equal(t, "Jumped to snapshot of #0 (len 3). Commit to record.", h.sb.Message())
	assert.Equal(t, 2, h.editor.GetHistoryManager().Len())
}

func TestLogsModeEmpty(t *testing.T) {
	h := newHarness(t, true)
	h.key(tcell.KeyCtrlL)
	assert.Equal(t, ModeNormal, h.mh.GetCurrentMode())
	assert.Equal(t, "Log is empty.", h.sb.Message())
}

func TestLogsModeYank(t *testing.T) {
	h := newHarness(t, true)
	h.typeRunes("keep me")
	h.key(tcell.KeyCtrlS)
	h.key(tcell.KeyCtrlL)
	h.typeRunes("y")
	assert.Equal(t, "Yanked #0 (len 7).", h.sb.Message())
	assert.Equal(t, ModeLogs, h.mh.GetCurrentMode())

	h.key(tcell.KeyEscape)
	assert.Equal(t, ModeNormal, h.mh.GetCurrentMode())
	h.key(tcell.KeyEnd)
	h.key(tcell.KeyCtrlV)
	assert.Equal(t, "keep mekeep me", h.editor.Text())
}

func TestAmendFlow(t *testing.T) {
	h := newHarness(t, true)
	h.typeRunes("draft")
	h.key(tcell.KeyCtrlS)

	h.key(tcell.KeyCtrlL)
	h.typeRunes("a")
	require.Equal(t, ModeAmend, h.mh.GetCurrentMode())
	assert.True(t, h.editor.IsAmending())

	h.key(tcell.KeyCtrlZ)
	assert.Equal(t, "Finish the amend with Ctrl+S or cancel with Esc.", h.sb.Message())

	h.typeRunes(": final")
	h.key(tcell.KeyCtrlS)
	assert.Equal(t, ModeNormal, h.mh.GetCurrentMode())
	assert.Equal(t, "draft: final", h.editor.Text())
	assert.Equal(t, "AMEND -> #1 (amends #0), len 12, Δ +7", h.sb.Message())

	h.command("amend 0")
	require.Equal(t, ModeAmend, h.mh.GetCurrentMode())
	h.key(tcell.KeyEscape)
	assert.Equal(t, ModeNormal, h.mh.GetCurrentMode())
	assert.Equal(t, "Amend cancelled.", h.sb.Message())
	assert.Equal(t, 2, h.editor.GetHistoryManager().Len())
}

func TestRegisterCommand(t *testing.T) {
	h := newHarness(t, true)
	called := []string{}
	require.NoError(t, h.mh.RegisterCommand("echo", func(args []string) error {
		called = append(called, args...)
		return nil
	}))
	assert.Error(t, h.mh.RegisterCommand("echo", nil))
	assert.Error(t, h.mh.RegisterCommand("", nil))
	assert.Error(t, h.mh.RegisterCommand("commit", nil))

	h.mh.ExecuteCommand(":echo a b")
	assert.Equal(t, []string{"a", "b"}, called)
}
