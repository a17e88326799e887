package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/bethropolis/jot/internal/buffer"
	"github.com/bethropolis/jot/internal/core"
	"github.com/bethropolis/jot/internal/core/history"
	"github.com/bethropolis/jot/internal/theme"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTUI(t *testing.T, width, height int) (*TUI, tcell.SimulationScreen) {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	tu, err := NewWithScreen(s)
	require.NoError(t, err)
	s.SetSize(width, height)
	t.Cleanup(tu.Close)
	return tu, s
}

func row(s tcell.SimulationScreen, y int) string {
	w, _ := s.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		r, comb, _, width := s.GetContent(x, y)
		sb.WriteRune(r)
		for _, c := range comb {
			sb.WriteRune(c)
		}
		if width > 1 {
			x += width - 1
		}
	}
	return strings.TrimRight(sb.String(), " ")
}

func newEditor(text string, width, height int) *core.Editor {
	e := core.NewEditor(buffer.NewSliceBufferFromString(text), history.NewManager())
	e.SetTabWidth(4)
	e.SetViewSize(width, height)
	return e
}

func TestDrawBuffer(t *testing.T) {
	tu, s := newTestTUI(t, 12, 4)
	e := newEditor("hello\n\tx\n世界", 12, 4)

	DrawBuffer(tu, e, theme.JotDark)
	assert.Equal(t, "hello", row(s, 0))
	assert.Equal(t, "    x", row(s, 1))
	assert.Equal(t, "世界", row(s, 2))
	assert.Equal(t, "", row(s, 3))
}

func TestDrawBufferClipsLongLines(t *testing.T) {
	tu, s := newTestTUI(t, 5, 2)
	e := newEditor("abcdefghij", 5, 2)

	DrawBuffer(tu, e, theme.JotDark)
	assert.Equal(t, "abcde", row(s, 0))
}

func TestDrawCursor(t *testing.T) {
	tu, s := newTestTUI(t, 20, 5)
	e := newEditor("a\tb", 20, 5)
	e.End()

	DrawCursor(tu, e)
	x, y, visible := s.GetCursor()
	assert.True(t, visible)
	assert.Equal(t, 5, x)
	assert.Equal(t, 0, y)
}

func TestDrawAmend(t *testing.T) {
	tu, s := newTestTUI(t, 50, 5)
	e := newEditor("note", 50, 5)
	e.SetStep()
	_, err := e.BeginAmend(0)
	require.NoError(t, err)

	DrawAmend(tu, e, theme.JotDark)
	assert.Equal(t, " Amend log #0  (Ctrl+S accept, Esc cancel)", row(s, 0))
	assert.Equal(t, "note", row(s, 1))

	DrawCursor(tu, e)
	x, y, visible := s.GetCursor()
	assert.True(t, visible)
	assert.Equal(t, 4, x)
	assert.Equal(t, 1, y)
}

func TestDrawLogs(t *testing.T) {
	clock := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	m := history.NewManager(history.WithClock(func() time.Time { return clock }))
	m.Commit("one")
	m.Commit("one two")
	m.Amend(0, "uno", "one two")

	tu, s := newTestTUI(t, 120, 6)
	DrawLogs(tu, m.Entries(), 2, m.Len(), theme.JotDark)

	assert.Equal(t, " History: 3 of 3 steps", row(s, 0))
	assert.Equal(t, m.Entries()[0].String(), row(s, 1))
	assert.Equal(t, m.Entries()[2].String(), row(s, 3))

	_, _, style, _ := s.GetContent(0, 3)
	assert.Equal(t, theme.JotDark.GetStyle(theme.StyleLogSelected), style)
	_, _, style, _ = s.GetContent(0, 2)
	assert.Equal(t, theme.JotDark.GetStyle(theme.StyleLogEntry), style)
}

func TestLogsTop(t *testing.T) {
	assert.Equal(t, 0, LogsTop(0, 5))
	assert.Equal(t, 0, LogsTop(4, 5))
	assert.Equal(t, 3, LogsTop(7, 5))
	assert.Equal(t, 0, LogsTop(3, 0))
}

func TestDrawPromptCursor(t *testing.T) {
	tu, s := newTestTUI(t, 20, 4)
	DrawPromptCursor(tu, ":jump 3")
	x, y, visible := s.GetCursor()
	assert.True(t, visible)
	assert.Equal(t, 7, x)
	assert.Equal(t, 3, y)
}
