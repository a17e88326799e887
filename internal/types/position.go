// Package types holds small value types shared across packages.
package types

// Position is a cursor or text position within a buffer.
// Line is the 0-based line index; Col is the 0-based rune index in the line.
type Position struct {
	Line int
	Col  int
}

// Before reports whether p comes strictly before o.
func (p Position) Before(o Position) bool {
	return p.Line < o.Line || (p.Line == o.Line && p.Col < o.Col)
}
