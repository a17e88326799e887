package cursor

import (
	"github.com/bethropolis/jot/internal/buffer"
	"github.com/bethropolis/jot/internal/logger"
	"github.com/bethropolis/jot/internal/types"
	"github.com/rivo/uniseg"
)

// Editor is what the cursor manager needs from its owner.
type Editor interface {
	GetBuffer() buffer.Buffer
	ScrollOff() int
	TabWidth() int
}

// Manager handles cursor positioning and viewport management.
type Manager struct {
	editor       Editor
	position     types.Position
	viewportTop  int
	viewportLeft int // visual column
	viewWidth    int
	viewHeight   int
}

func NewManager(editor Editor) *Manager {
	return &Manager{editor: editor}
}

// SetViewSize updates the view dimensions.
func (m *Manager) SetViewSize(width, height int) {
	m.viewWidth = width
	m.viewHeight = height
	m.ScrollToCursor()
}

// GetViewport returns the top line and leftmost visual column.
func (m *Manager) GetViewport() (int, int) {
	return m.viewportTop, m.viewportLeft
}

func (m *Manager) GetPosition() types.Position {
	return m.position
}

// SetPosition clamps pos to the buffer and moves the cursor there.
func (m *Manager) SetPosition(pos types.Position) {
	buf := m.editor.GetBuffer()
	if buf == nil {
		logger.Warnf("CursorManager.SetPosition: buffer is nil")
		return
	}

	lineCount := buf.LineCount()
	if pos.Line >= lineCount {
		pos.Line = lineCount - 1
	}
	if pos.Line < 0 {
		pos.Line = 0
	}
	if pos.Col < 0 {
		pos.Col = 0
	}
	if n := buf.LineLen(pos.Line); pos.Col > n {
		pos.Col = n
	}

	m.position = pos
	m.ScrollToCursor()
}

// Move moves the cursor by the given delta. Moving left from column 0 wraps to
// the end of the previous line; moving right from the end wraps to the next.
func (m *Manager) Move(deltaLine, deltaCol int) {
	buf := m.editor.GetBuffer()
	pos := m.position
	if deltaLine == 0 && buf != nil {
		switch {
		case deltaCol < 0 && pos.Col == 0 && pos.Line > 0:
			m.SetPosition(types.Position{Line: pos.Line - 1, Col: buf.LineLen(pos.Line - 1)})
			return
		case deltaCol > 0 && pos.Col >= buf.LineLen(pos.Line) && pos.Line < buf.LineCount()-1:
			m.SetPosition(types.Position{Line: pos.Line + 1, Col: 0})
			return
		}
	}
	m.SetPosition(types.Position{Line: pos.Line + deltaLine, Col: pos.Col + deltaCol})
}

// PageMove moves the cursor by whole screens.
func (m *Manager) PageMove(deltaPages int) {
	if m.viewHeight <= 0 {
		return
	}
	m.Move(deltaPages*m.viewHeight, 0)
}

func (m *Manager) MoveToLineStart() {
	m.SetPosition(types.Position{Line: m.position.Line, Col: 0})
}

func (m *Manager) MoveToLineEnd() {
	buf := m.editor.GetBuffer()
	if buf == nil {
		return
	}
	m.SetPosition(types.Position{Line: m.position.Line, Col: buf.LineLen(m.position.Line)})
}

// MoveToEnd puts the cursor after the last rune of the buffer.
func (m *Manager) MoveToEnd() {
	buf := m.editor.GetBuffer()
	if buf == nil {
		return
	}
	last := buf.LineCount() - 1
	m.SetPosition(types.Position{Line: last, Col: buf.LineLen(last)})
}

// ScrollToCursor adjusts the viewport so the cursor stays visible, keeping
// ScrollOff lines of context where the view is tall enough.
func (m *Manager) ScrollToCursor() {
	if m.viewHeight <= 0 {
		return
	}

	scrollOff := m.editor.ScrollOff()
	if scrollOff*2 >= m.viewHeight {
		scrollOff = (m.viewHeight - 1) / 2
	}

	if m.position.Line < m.viewportTop+scrollOff {
		m.viewportTop = m.position.Line - scrollOff
	} else if m.position.Line >= m.viewportTop+m.viewHeight-scrollOff {
		m.viewportTop = m.position.Line - m.viewHeight + scrollOff + 1
	}
	if m.viewportTop < 0 {
		m.viewportTop = 0
	}

	if m.viewWidth <= 0 {
		return
	}
	buf := m.editor.GetBuffer()
	line, err := buf.Line(m.position.Line)
	if err != nil {
		return
	}
	visualCol := GetVisualCol(string(line), m.position.Col, m.editor.TabWidth())
	if visualCol < m.viewportLeft {
		m.viewportLeft = visualCol
	} else if visualCol >= m.viewportLeft+m.viewWidth {
		m.viewportLeft = visualCol - m.viewWidth + 1
	}
}

// GetVisualCol translates a rune column to a screen column, expanding tabs to
// the next tab stop and measuring graphemes with their display width.
func GetVisualCol(line string, col int, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = 1
	}
	visualCol := 0
	runeIndex := 0
	g := uniseg.NewGraphemes(line)
	for g.Next() && runeIndex < col {
		if g.Str() == "\t" {
			visualCol = (visualCol/tabWidth + 1) * tabWidth
		} else {
			visualCol += g.Width()
		}
		runeIndex += len(g.Runes())
	}
	return visualCol
}

// GetVisualLineLength returns the screen width of a whole line.
func GetVisualLineLength(line string, tabWidth int) int {
	return GetVisualCol(line, len([]rune(line)), tabWidth)
}
