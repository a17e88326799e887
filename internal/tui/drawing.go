// internal/tui/drawing.go
package tui

import (
	"fmt"

	"github.com/bethropolis/jot/internal/config"
	"github.com/bethropolis/jot/internal/core"
	"github.com/bethropolis/jot/internal/core/cursor"
	"github.com/bethropolis/jot/internal/core/history"
	"github.com/bethropolis/jot/internal/theme"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// textAreaHeight is the number of rows above the status bar.
func (t *TUI) textAreaHeight() int {
	_, height := t.Size()
	if h := height - config.StatusBarHeight; h > 0 {
		return h
	}
	return 0
}

func (t *TUI) fillRow(y, width int, style tcell.Style) {
	for x := 0; x < width; x++ {
		t.screen.SetContent(x, y, ' ', nil, style)
	}
}

// drawLine draws line on row y starting at visual column viewX, expanding tabs
// to tabWidth stops. Clusters that would straddle either edge are skipped.
func (t *TUI) drawLine(y, width int, line string, viewX, tabWidth int, style tcell.Style) {
	if tabWidth <= 0 {
		tabWidth = 1
	}
	visualX := 0
	gr := uniseg.NewGraphemes(line)
	for gr.Next() {
		if visualX >= viewX+width {
			break
		}
		if gr.Str() == "\t" {
			next := (visualX/tabWidth + 1) * tabWidth
			for vx := visualX; vx < next; vx++ {
				if vx >= viewX && vx < viewX+width {
					t.screen.SetContent(vx-viewX, y, ' ', nil, style)
				}
			}
			visualX = next
			continue
		}

		clusterWidth := gr.Width()
		if clusterWidth <= 0 {
			continue
		}
		if visualX >= viewX && visualX+clusterWidth <= viewX+width {
			runes := gr.Runes()
			t.screen.SetContent(visualX-viewX, y, runes[0], runes[1:], style)
		}
		visualX += clusterWidth
	}
}

// drawPane draws the visible part of pane into rows [top, top+height).
func (t *TUI) drawPane(pane *core.Pane, top, height, tabWidth int, style tcell.Style) {
	width, _ := t.Size()
	viewY, viewX := pane.GetViewport()
	buf := pane.GetBuffer()

	for row := 0; row < height; row++ {
		y := top + row
		t.fillRow(y, width, style)
		line, err := buf.Line(viewY + row)
		if err != nil {
			continue
		}
		t.drawLine(y, width, string(line), viewX, tabWidth, style)
	}
}

// DrawBuffer draws the note above the status bar.
func DrawBuffer(t *TUI, editor *core.Editor, activeTheme *theme.Theme) {
	t.drawPane(editor.MainPane(), 0, t.textAreaHeight(), editor.TabWidth(), activeTheme.GetStyle(theme.StyleDefault))
}

// DrawAmend draws the amend panel over the text area: a title row followed by
// the replacement text being edited.
func DrawAmend(t *TUI, editor *core.Editor, activeTheme *theme.Theme) {
	id, ok := editor.AmendTarget()
	if !ok {
		return
	}
	width, _ := t.Size()
	height := t.textAreaHeight()
	if height <= 0 {
		return
	}

	titleStyle := activeTheme.GetStyle(theme.StyleAmendTitle)
	t.fillRow(0, width, titleStyle)
	t.drawLine(0, width, fmt.Sprintf(" Amend log #%d  (Ctrl+S accept, Esc cancel)", id), 0, 1, titleStyle)

	t.drawPane(editor.AmendPane(), 1, height-1, editor.TabWidth(), activeTheme.GetStyle(theme.StyleAmendText))
}

// LogsTop returns the first entry index shown so that selected is visible in
// a list of rows lines.
func LogsTop(selected, rows int) int {
	if rows <= 0 || selected < rows {
		return 0
	}
	return selected - rows + 1
}

// DrawLogs draws the log list over the text area. The header row is followed
// by one entry per row; the selected entry is highlighted.
func DrawLogs(t *TUI, entries []*history.Action, selected, total int, activeTheme *theme.Theme) {
	width, _ := t.Size()
	height := t.textAreaHeight()
	if height <= 0 {
		return
	}

	headerStyle := activeTheme.GetStyle(theme.StyleLogHeader)
	t.fillRow(0, width, headerStyle)
	header := fmt.Sprintf(" History: %d of %d steps", len(entries), total)
	t.drawLine(0, width, header, 0, 1, headerStyle)

	rows := height - 1
	top := LogsTop(selected, rows)
	for row := 0; row < rows; row++ {
		y := row + 1
		idx := top + row
		style := activeTheme.GetStyle(theme.StyleDefault)
		if idx >= len(entries) {
			t.fillRow(y, width, style)
			continue
		}
		a := entries[idx]
		switch {
		case idx == selected:
			style = activeTheme.GetStyle(theme.StyleLogSelected)
		case a.Type == history.OpAmend:
			style = activeTheme.GetStyle(theme.StyleLogAmend)
		default:
			style = activeTheme.GetStyle(theme.StyleLogEntry)
		}
		t.fillRow(y, width, style)
		t.drawLine(y, width, a.String(), 0, 1, style)
	}
}

// DrawCursor places the terminal cursor in the active pane. While amending
// the pane starts one row down, below the panel title.
func DrawCursor(t *TUI, editor *core.Editor) {
	pane := editor.ActivePane()
	top, height := 0, t.textAreaHeight()
	if editor.IsAmending() {
		top, height = 1, height-1
	}

	pos := pane.GetCursor()
	viewY, viewX := pane.GetViewport()
	line, err := pane.GetBuffer().Line(pos.Line)
	if err != nil {
		t.screen.HideCursor()
		return
	}

	width, _ := t.Size()
	screenX := cursor.GetVisualCol(string(line), pos.Col, editor.TabWidth()) - viewX
	screenY := pos.Line - viewY
	if screenX < 0 || screenX >= width || screenY < 0 || screenY >= height {
		t.screen.HideCursor()
		return
	}
	t.screen.ShowCursor(screenX, top+screenY)
}

// DrawPromptCursor places the cursor after prompt on the status bar row.
func DrawPromptCursor(t *TUI, prompt string) {
	width, height := t.Size()
	x := uniseg.StringWidth(prompt)
	if x >= width || height <= 0 {
		t.screen.HideCursor()
		return
	}
	t.screen.ShowCursor(x, height-1)
}

// HideCursor hides the terminal cursor.
func HideCursor(t *TUI) {
	t.screen.HideCursor()
}
