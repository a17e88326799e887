package text

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/bethropolis/jot/internal/buffer"
	"github.com/bethropolis/jot/internal/event"
	"github.com/bethropolis/jot/internal/types"
)

// Operations handles keystroke-level insertion and deletion.
type Operations struct {
	editor EditorInterface
}

// EditorInterface defines the editor methods text operations need.
type EditorInterface interface {
	GetBuffer() buffer.Buffer
	GetCursor() types.Position
	SetCursor(pos types.Position)
	GetEventManager() *event.Manager
	TabWidth() int
}

func NewOperations(editor EditorInterface) *Operations {
	return &Operations{editor: editor}
}

// InsertText inserts text at the cursor and leaves the cursor after it.
func (o *Operations) InsertText(text string) error {
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	after, err := o.editor.GetBuffer().Insert(o.editor.GetCursor(), []byte(text))
	if err != nil {
		return fmt.Errorf("buffer insert failed: %w", err)
	}
	o.editor.SetCursor(after)
	o.dispatchEdited()
	return nil
}

func (o *Operations) InsertRune(r rune) error {
	return o.InsertText(string(r))
}

func (o *Operations) InsertNewLine() error {
	return o.InsertRune('\n')
}

// InsertTab inserts spaces up to the next tab stop.
func (o *Operations) InsertTab() error {
	width := o.editor.TabWidth()
	if width <= 0 {
		return o.InsertRune('\t')
	}
	col := o.editor.GetCursor().Col
	return o.InsertText(strings.Repeat(" ", width-col%width))
}

// DeleteBackward deletes the rune before the cursor, joining lines at column 0.
func (o *Operations) DeleteBackward() error {
	buf := o.editor.GetBuffer()
	end := o.editor.GetCursor()
	start := end

	switch {
	case end.Col > 0:
		start.Col--
	case end.Line > 0:
		start.Line--
		start.Col = buf.LineLen(start.Line)
	default:
		return nil
	}

	if err := buf.Delete(start, end); err != nil {
		return fmt.Errorf("buffer delete failed: %w", err)
	}
	o.editor.SetCursor(start)
	o.dispatchEdited()
	return nil
}

// DeleteForward deletes the rune under the cursor, joining with the next line
// at end of line.
func (o *Operations) DeleteForward() error {
	buf := o.editor.GetBuffer()
	start := o.editor.GetCursor()
	end := start

	switch {
	case start.Col < buf.LineLen(start.Line):
		end.Col++
	case start.Line < buf.LineCount()-1:
		end.Line++
		end.Col = 0
	default:
		return nil
	}

	if err := buf.Delete(start, end); err != nil {
		return fmt.Errorf("buffer delete failed: %w", err)
	}
	o.editor.SetCursor(start)
	o.dispatchEdited()
	return nil
}

func (o *Operations) dispatchEdited() {
	if em := o.editor.GetEventManager(); em != nil {
		em.Dispatch(event.TypeTextEdited, event.TextReplacedData{
			Reason: "edit",
			Len:    utf8.RuneCountInString(o.editor.GetBuffer().Text()),
		})
	}
}
