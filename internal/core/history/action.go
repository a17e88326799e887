// Package history records snapshots of a note in an append-only log and
// walks them with a pair of undo/redo stacks.
package history

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// OpType tags how an Action was produced.
type OpType int

const (
	OpSet OpType = iota
	OpCommit
	OpAmend
)

func (t OpType) String() string {
	switch t {
	case OpSet:
		return "SET"
	case OpCommit:
		return "COMMIT"
	case OpAmend:
		return "AMEND"
	}
	return fmt.Sprintf("OpType(%d)", int(t))
}

// TimestampFormat is the layout used when rendering Action timestamps.
const TimestampFormat = "2006-01-02 15:04:05"

// DefaultPreviewWidth is the number of characters kept by Preview.
const DefaultPreviewWidth = 120

const ellipsis = "…"

// Action is one recorded history entry. It is never modified after it has
// been appended to the log, so the log and both stacks share the same pointer.
type Action struct {
	ID        int
	Timestamp time.Time
	Type      OpType
	Before    string
	After     string
	Amends    *int // set only for OpAmend

	previewWidth int
	layout       string
}

// Delta is the signed change in character count from Before to After.
func (a *Action) Delta() int {
	return utf8.RuneCountInString(a.After) - utf8.RuneCountInString(a.Before)
}

// Len is the character count of After.
func (a *Action) Len() int {
	return utf8.RuneCountInString(a.After)
}

// Preview returns After on a single line, truncated with an ellipsis.
func (a *Action) Preview() string {
	width := a.previewWidth
	if width <= 0 {
		width = DefaultPreviewWidth
	}
	return preview(a.After, width)
}

func preview(s string, width int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	runes := []rune(s)
	return string(runes[:width]) + ellipsis
}

// String renders the action the way the log list shows it.
func (a *Action) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "#%d | %s | %s | Δ %s | len %d",
		a.ID, a.FormattedTime(), a.Type, FormatDelta(a.Delta()), a.Len())
	if a.Type == OpAmend && a.Amends != nil {
		fmt.Fprintf(&sb, " | amends #%d", *a.Amends)
	}
	fmt.Fprintf(&sb, "  —  \"%s\"", a.Preview())
	return sb.String()
}

// FormattedTime renders Timestamp with the manager's layout.
func (a *Action) FormattedTime() string {
	layout := a.layout
	if layout == "" {
		layout = TimestampFormat
	}
	return a.Timestamp.Format(layout)
}

// Summary is the short "#id TYPE (Δ d)" form used by peek.
func (a *Action) Summary() string {
	if a == nil {
		return "(none)"
	}
	return fmt.Sprintf("#%d %s (Δ %s)", a.ID, a.Type, FormatDelta(a.Delta()))
}

// FormatDelta renders a signed delta with an explicit plus sign for
// non-negative values.
func FormatDelta(d int) string {
	if d >= 0 {
		return fmt.Sprintf("+%d", d)
	}
	return fmt.Sprintf("%d", d)
}
