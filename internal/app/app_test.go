package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bethropolis/jot/internal/config"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, filePath string) (*App, tcell.SimulationScreen) {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	cfg := config.NewDefaultConfig()
	cfg.Editor.SystemClipboard = false
	a, err := NewAppWithScreen(cfg, filePath, s)
	require.NoError(t, err)
	s.SetSize(60, 8)
	a.editor.SetViewSize(60, 8)
	return a, s
}

func screenRow(s tcell.SimulationScreen, y int) string {
	w, _ := s.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, y)
		sb.WriteRune(r)
	}
	return strings.TrimRight(sb.String(), " ")
}

func (a *App) typeKeys(s string) {
	for _, r := range s {
		a.handleEvent(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
	}
}

func TestKeysDriveHistory(t *testing.T) {
	a, s := newTestApp(t, "")
	defer a.tuiManager.Close()

	a.typeKeys("hello")
	assert.True(t, a.handleEvent(tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl)))
	assert.Equal(t, 1, a.editor.GetHistoryManager().Len())

	a.statusBar.ResetTemporaryMessage()
	a.drawEditor()
	assert.Equal(t, "hello", screenRow(s, 0))
	assert.Equal(t, "[1 steps] undo #0 redo - -- Line: 1, Col: 6 -- NORMAL", screenRow(s, 7))
}

func TestLogsModeDrawsList(t *testing.T) {
	a, s := newTestApp(t, "")
	defer a.tuiManager.Close()

	a.typeKeys("abc")
	a.handleEvent(tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl))
	a.handleEvent(tcell.NewEventKey(tcell.KeyCtrlL, 0, tcell.ModCtrl))
	a.drawEditor()

	assert.Equal(t, " History: 1 of 1 steps", screenRow(s, 0))
	assert.True(t, strings.HasPrefix(screenRow(s, 1), "#0 | "))
	assert.Contains(t, screenRow(s, 1), "COMMIT")
}

func TestInterruptRunsPostedFunction(t *testing.T) {
	a, _ := newTestApp(t, "")
	defer a.tuiManager.Close()

	called := false
	assert.True(t, a.handleEvent(tcell.NewEventInterrupt(func() { called = true })))
	assert.True(t, called)
	assert.False(t, a.handleEvent(tcell.NewEventInterrupt("not a func")))
}

func TestPluginCommitThroughAPI(t *testing.T) {
	a, _ := newTestApp(t, "")
	defer a.tuiManager.Close()

	_, ok := a.editorAPI.Commit()
	assert.False(t, ok)

	a.typeKeys("x")
	msg, ok := a.editorAPI.Commit()
	assert.True(t, ok)
	assert.Equal(t, "COMMIT -> step #0 (len 1, Δ +1)", msg)
}

func TestThemeCommand(t *testing.T) {
	a, _ := newTestApp(t, "")
	defer a.tuiManager.Close()

	a.modeHandler.ExecuteCommand("theme jot light")
	assert.Equal(t, "Jot Light", a.GetTheme().Name)
	assert.Equal(t, "Theme set to: Jot Light", a.statusBar.Message())

	a.modeHandler.ExecuteCommand("theme nope")
	assert.Contains(t, a.statusBar.Message(), "theme 'nope' not found")
	assert.Equal(t, "Jot Light", a.GetTheme().Name)
}

func TestWordCountCommand(t *testing.T) {
	a, _ := newTestApp(t, "")
	defer a.tuiManager.Close()

	a.typeKeys("two words")
	a.modeHandler.ExecuteCommand("wc")
	assert.Equal(t, "Lines: 1, Words: 2, Chars: 9, Steps: 0", a.statusBar.Message())
}

func TestSeedFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.txt")
	require.NoError(t, os.WriteFile(path, []byte("line one\r\nline two"), 0o644))

	a, _ := newTestApp(t, path)
	defer a.tuiManager.Close()

	assert.Equal(t, "line one\nline two", a.editor.Text())
	assert.True(t, a.editor.Modified())
	assert.Equal(t, 0, a.editor.GetHistoryManager().Len())
}

func TestRunQuitsOnEscape(t *testing.T) {
	a, s := newTestApp(t, "")

	done := make(chan error, 1)
	go func() { done <- a.Run() }()

	s.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after Esc")
	}
}
