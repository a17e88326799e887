package core

import (
	"github.com/bethropolis/jot/internal/buffer"
	"github.com/bethropolis/jot/internal/core/cursor"
	"github.com/bethropolis/jot/internal/core/text"
	"github.com/bethropolis/jot/internal/event"
	"github.com/bethropolis/jot/internal/types"
)

// Pane is one editable text area: a buffer with its own cursor and viewport.
// The editor has a main pane for the note and an amend pane for the amend
// prompt.
type Pane struct {
	editor  *Editor
	buffer  buffer.Buffer
	cursor  *cursor.Manager
	textOps *text.Operations
}

func newPane(e *Editor, buf buffer.Buffer) *Pane {
	p := &Pane{editor: e, buffer: buf}
	p.cursor = cursor.NewManager(p)
	p.textOps = text.NewOperations(p)
	return p
}

func (p *Pane) GetBuffer() buffer.Buffer { return p.buffer }

func (p *Pane) GetEventManager() *event.Manager { return p.editor.eventManager }

func (p *Pane) ScrollOff() int { return p.editor.scrollOff }

func (p *Pane) TabWidth() int { return p.editor.tabWidth }

func (p *Pane) GetCursor() types.Position { return p.cursor.GetPosition() }

func (p *Pane) SetCursor(pos types.Position) { p.cursor.SetPosition(pos) }

// GetViewport returns the top line and leftmost visual column.
func (p *Pane) GetViewport() (int, int) { return p.cursor.GetViewport() }

func (p *Pane) SetViewSize(width, height int) { p.cursor.SetViewSize(width, height) }

func (p *Pane) Text() string { return p.buffer.Text() }

// setText replaces the pane content and puts the cursor at the end.
func (p *Pane) setText(s string) {
	p.buffer.SetText(s)
	p.cursor.MoveToEnd()
}
