package buffer

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/bethropolis/jot/internal/types"
	"github.com/bethropolis/jot/internal/utils"
)

// SliceBuffer keeps one byte slice per line. It always holds at least one line.
type SliceBuffer struct {
	lines    [][]byte
	filePath string
}

var _ Buffer = (*SliceBuffer)(nil)

// NewSliceBuffer creates an empty SliceBuffer.
func NewSliceBuffer() *SliceBuffer {
	return &SliceBuffer{lines: [][]byte{{}}}
}

// NewSliceBufferFromString creates a buffer holding text.
func NewSliceBufferFromString(text string) *SliceBuffer {
	sb := NewSliceBuffer()
	sb.SetText(text)
	return sb
}

// Load reads a file into the buffer as the starting note. A missing file
// leaves the buffer empty.
func (sb *SliceBuffer) Load(filePath string) error {
	sb.filePath = filePath
	if filePath == "" {
		sb.SetText("")
		return nil
	}
	data, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			sb.SetText("")
			return nil
		}
		return fmt.Errorf("failed to read file '%s': %w", filePath, err)
	}
	sb.SetText(strings.ReplaceAll(string(data), "\r\n", "\n"))
	return nil
}

// Text returns the whole note with lines joined by '\n'.
func (sb *SliceBuffer) Text() string {
	return string(bytes.Join(sb.lines, []byte("\n")))
}

// SetText replaces the entire content.
func (sb *SliceBuffer) SetText(text string) {
	parts := strings.Split(text, "\n")
	lines := make([][]byte, len(parts))
	for i, p := range parts {
		lines[i] = []byte(p)
	}
	sb.lines = lines
}

func (sb *SliceBuffer) Lines() [][]byte { return sb.lines }

func (sb *SliceBuffer) LineCount() int { return len(sb.lines) }

func (sb *SliceBuffer) Line(index int) ([]byte, error) {
	if index < 0 || index >= len(sb.lines) {
		return nil, fmt.Errorf("line index %d out of bounds (0-%d)", index, len(sb.lines)-1)
	}
	return sb.lines[index], nil
}

// LineLen returns the rune length of a line, or 0 when index is invalid.
func (sb *SliceBuffer) LineLen(index int) int {
	if index < 0 || index >= len(sb.lines) {
		return 0
	}
	return utf8.RuneCount(sb.lines[index])
}

func (sb *SliceBuffer) FilePath() string { return sb.filePath }

// clamp moves pos inside the buffer and returns its byte offset on the line.
func (sb *SliceBuffer) clamp(pos types.Position) (types.Position, int) {
	if pos.Line < 0 {
		pos.Line = 0
	}
	if pos.Line >= len(sb.lines) {
		pos.Line = len(sb.lines) - 1
	}
	if pos.Col < 0 {
		pos.Col = 0
	}
	if n := sb.LineLen(pos.Line); pos.Col > n {
		pos.Col = n
	}
	return pos, utils.RuneIndexToByteOffset(sb.lines[pos.Line], pos.Col)
}

// Insert inserts text at pos and returns the position just after it.
func (sb *SliceBuffer) Insert(pos types.Position, text []byte) (types.Position, error) {
	pos, offset := sb.clamp(pos)
	if len(text) == 0 {
		return pos, nil
	}
	if !utf8.Valid(text) {
		return pos, errors.New("insert text is not valid UTF-8")
	}

	current := sb.lines[pos.Line]
	tail := append([]byte(nil), current[offset:]...)
	head := append([]byte(nil), current[:offset]...)
	parts := bytes.Split(text, []byte("\n"))

	if len(parts) == 1 {
		sb.lines[pos.Line] = append(append(head, parts[0]...), tail...)
		end := utils.ByteOffsetToRuneIndex(sb.lines[pos.Line], offset+len(parts[0]))
		return types.Position{Line: pos.Line, Col: end}, nil
	}

	newLines := make([][]byte, 0, len(parts))
	newLines = append(newLines, append(head, parts[0]...))
	for _, p := range parts[1 : len(parts)-1] {
		newLines = append(newLines, append([]byte(nil), p...))
	}
	last := parts[len(parts)-1]
	newLines = append(newLines, append(append([]byte(nil), last...), tail...))

	rest := append([][]byte(nil), sb.lines[pos.Line+1:]...)
	sb.lines = append(append(sb.lines[:pos.Line], newLines...), rest...)
	return types.Position{Line: pos.Line + len(parts) - 1, Col: utf8.RuneCount(last)}, nil
}

// Delete removes the text in [start, end). The bounds are swapped if needed.
func (sb *SliceBuffer) Delete(start, end types.Position) error {
	if end.Before(start) {
		start, end = end, start
	}
	start, startOff := sb.clamp(start)
	end, endOff := sb.clamp(end)
	if start == end {
		return nil
	}

	if start.Line == end.Line {
		line := sb.lines[start.Line]
		sb.lines[start.Line] = append(append([]byte(nil), line[:startOff]...), line[endOff:]...)
		return nil
	}

	merged := append(append([]byte(nil), sb.lines[start.Line][:startOff]...), sb.lines[end.Line][endOff:]...)
	rest := append([][]byte(nil), sb.lines[end.Line+1:]...)
	sb.lines = append(append(sb.lines[:start.Line], merged), rest...)
	return nil
}
