package statusbar

import (
	"testing"
	"time"

	"github.com/bethropolis/jot/internal/theme"
	"github.com/bethropolis/jot/internal/types"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultText(t *testing.T) {
	sb := New(DefaultConfig())
	sb.SetEditorMode("NORMAL")
	assert.Equal(t, "[0 steps] undo - redo - -- Line: 1, Col: 1 -- NORMAL", sb.DefaultText())

	sb.SetHistoryInfo(HistoryInfo{Steps: 3, NextUndo: 2, NextRedo: -1})
	sb.SetModified(true)
	sb.SetCursorInfo(types.Position{Line: 4, Col: 9})
	assert.Equal(t, "[3 steps] undo #2 redo - [Modified] -- Line: 5, Col: 10 -- NORMAL", sb.DefaultText())
}

func TestTemporaryMessageExpires(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	sb := New(Config{MessageTimeout: time.Second})
	sb.now = func() time.Time { return now }

	sb.SetTemporaryMessage("Undo -> #%d (len %d)", 1, 5)
	assert.Equal(t, "Undo -> #1 (len 5)", sb.Message())

	now = now.Add(2 * time.Second)
	assert.Equal(t, "", sb.Message())
}

func TestPromptDoesNotExpire(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	sb := New(Config{MessageTimeout: time.Second})
	sb.now = func() time.Time { return now }

	sb.SetPrompt(":jump 3")
	now = now.Add(time.Hour)
	assert.Equal(t, ":jump 3", sb.Message())

	sb.ResetTemporaryMessage()
	assert.Equal(t, "", sb.Message())
}

func TestDrawUsesLastRow(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(40, 3)

	sb := New(DefaultConfig())
	sb.SetWarning("Nothing to undo.")
	sb.Draw(screen, 40, 3, theme.JotDark)

	got := ""
	for x := 0; x < len("Nothing to undo."); x++ {
		r, _, _, _ := screen.GetContent(x, 2)
		got += string(r)
	}
	assert.Equal(t, "Nothing to undo.", got)

	_, _, style, _ := screen.GetContent(0, 2)
	assert.Equal(t, theme.JotDark.GetStyle(theme.StyleStatusBarWarning), style)
}
