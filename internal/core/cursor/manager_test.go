package cursor

import (
	"testing"

	"github.com/bethropolis/jot/internal/buffer"
	"github.com/bethropolis/jot/internal/types"
	"github.com/stretchr/testify/assert"
)

type fakeEditor struct {
	buf buffer.Buffer
}

func (f *fakeEditor) GetBuffer() buffer.Buffer { return f.buf }
func (f *fakeEditor) ScrollOff() int { return 1 }
func (f *fakeEditor) TabWidth() int { return 4 }

func newManager(text string) *Manager {
	return NewManager(&fakeEditor{buf: buffer.NewSliceBufferFromString(text)})
}

func TestSetPositionClamps(t *testing.T) {
	m := newManager("abc\nde")
	m.SetPosition(types.Position{Line: 9, Col: 9})
	assert.Equal(t, types.Position{Line: 1, Col: 2}, m.GetPosition())

	m.SetPosition(types.Position{Line: -1, Col: -5})
	assert.Equal(t, types.Position{Line: 0, Col: 0}, m.GetPosition())
}

func TestMoveWrapsAcrossLines(t *testing.T) {
	m := newManager("abc\nde")
	m.SetPosition(types.Position{Line: 1, Col: 0})
	m.Move(0, -1)
	assert.Equal(t, types.Position{Line: 0, Col: 3}, m.GetPosition())

	m.Move(0, 1)
	assert.Equal(t, types.Position{Line: 1, Col: 0}, m.GetPosition())
}

func TestLineStartEndAndBufferEnd(t *testing.T) {
	m := newManager("hello\nwörld")
	m.MoveToLineEnd()
	assert.Equal(t, 5, m.GetPosition().Col)
	m.MoveToLineStart()
	assert.Equal(t, 0, m.GetPosition().Col)
	m.MoveToEnd()
	assert.Equal(t, types.Position{Line: 1, Col: 5}, m.GetPosition())
}

func TestScrollToCursorKeepsContext(t *testing.T) {
	m := newManager("0\n1\n2\n3\n4\n5\n6\n7\n8\n9")
	m.SetViewSize(10, 4)
	m.SetPosition(types.Position{Line: 6})
	top, _ := m.GetViewport()
	assert.Equal(t, 4, top)

	m.SetPosition(types.Position{Line: 0})
	top, _ = m.GetViewport()
	assert.Equal(t, 0, top)
}

func TestHorizontalScroll(t *testing.T) {
	m := newManager("abcdefghijkl")
	m.SetViewSize(5, 3)
	m.MoveToLineEnd()
	_, left := m.GetViewport()
	assert.Equal(t, 8, left)
}

func TestGetVisualCol(t *testing.T) {
	assert.Equal(t, 4, GetVisualCol("\tx", 1, 4))
	assert.Equal(t, 5, GetVisualCol("\tx", 2, 4))
	assert.Equal(t, 2, GetVisualCol("ab", 9, 4))
	assert.Equal(t, 4, GetVisualLineLength("日本", 4))
}
