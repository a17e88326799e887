// Package buffer stores the editable note as a slice of lines.
package buffer

import "github.com/bethropolis/jot/internal/types"

// Buffer is the text storage the editor works on. Text and SetText are the
// whole-note read/replace contract the history layer relies on.
type Buffer interface {
	Load(filePath string) error
	Text() string
	SetText(text string)
	Lines() [][]byte
	Line(index int) ([]byte, error)
	LineCount() int
	LineLen(index int) int
	Insert(pos types.Position, text []byte) (types.Position, error)
	Delete(start, end types.Position) error
	FilePath() string
}
