package history

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() func() time.Time {
	t0 := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	return func() time.Time { return t0 }
}

func newTestManager() *Manager {
	return NewManager(WithClock(fixedClock()))
}

func TestCommitAllocatesSequentialIDs(t *testing.T) {
	m := newTestManager()
	text := ""
	for i := 0; i < 10; i++ {
		text += fmt.Sprintf("%d", i)
		a, ok := m.Commit(text)
		require.True(t, ok)
		assert.Equal(t, i, a.ID)
		assert.Equal(t, OpCommit, a.Type)
	}
	assert.Equal(t, 10, m.Len())

	entries := m.Entries()
	for i := 1; i < len(entries); i++ {
		assert.Equal(t, entries[i-1].ID+1, entries[i].ID, "ids must have no gaps")
	}
}

func TestCommitSkipsWhenUnchanged(t *testing.T) {
	t.Run("empty log and empty text", func(t *testing.T) {
		m := newTestManager()
		a, ok := m.Commit("")
		assert.False(t, ok)
		assert.Nil(t, a)
		assert.Equal(t, 0, m.Len())
		assert.Equal(t, 0, m.NextID())
	})

	t.Run("same as last entry", func(t *testing.T) {
		m := newTestManager()
		_, ok := m.Commit("abc")
		require.True(t, ok)
		m.Undo()
		require.True(t, m.CanRedo())

		_, ok = m.Commit("abc")
		assert.False(t, ok)
		assert.Equal(t, 1, m.Len())
		assert.Equal(t, 1, m.NextID())
		assert.True(t, m.CanRedo(), "skipped commit must not clear redo")
	})
}

func TestCommitBeforeIsLastAfter(t *testing.T) {
	m := newTestManager()
	m.Commit("abc")
	a, ok := m.Commit("abcdef")
	require.True(t, ok)
	assert.Equal(t, "abc", a.Before)
	assert.Equal(t, "abcdef", a.After)
	assert.Equal(t, 3, a.Delta())
}

func TestSetAlwaysRecords(t *testing.T) {
	m := newTestManager()
	first := m.Set("")
	second := m.Set("")
	assert.Equal(t, 0, first.ID)
	assert.Equal(t, 1, second.ID)
	assert.Equal(t, OpSet, second.Type)
	assert.Equal(t, second.Before, second.After)
	assert.Equal(t, 0, second.Delta())
	assert.Equal(t, 2, m.Len())
	assert.Equal(t, 2, m.UndoDepth())
}

func TestUndoRedoScenario(t *testing.T) {
	m := newTestManager()
	m.Commit("hello")
	m.Commit("hello world")

	text, a, ok := m.Undo()
	require.True(t, ok)
	assert.Equal(t, "hello", text)
	assert.Equal(t, 1, a.ID)

	text, a, ok = m.Undo()
	require.True(t, ok)
	assert.Equal(t, "", text)
	assert.Equal(t, 0, a.ID)

	_, _, ok = m.Undo()
	assert.False(t, ok)

	text, _, ok = m.Redo()
	require.True(t, ok)
	assert.Equal(t, "hello", text)

	text, _, ok = m.Redo()
	require.True(t, ok)
	assert.Equal(t, "hello world", text)

	_, _, ok = m.Redo()
	assert.False(t, ok)
}

func TestUndoRedoRoundTrip(t *testing.T) {
	m := newTestManager()
	m.Commit("one")
	m.Commit("one two")
	m.Set("one two")
	m.Commit("one two three")

	current := "one two three"
	for m.CanUndo() {
		_, _, ok := m.Undo()
		require.True(t, ok)
		back, _, ok := m.Redo()
		require.True(t, ok)
		assert.Equal(t, current, back)

		restored, _, _ := m.Undo()
		current = restored
	}
}

func TestRecordingClearsRedo(t *testing.T) {
	tests := []struct {
		name   string
		record func(m *Manager)
	}{
		{"set", func(m *Manager) { m.Set("x") }},
		{"commit", func(m *Manager) { m.Commit("changed") }},
		{"amend", func(m *Manager) { m.Amend(0, "new", "a") }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestManager()
			m.Commit("a")
			m.Commit("ab")
			m.Undo()
			require.True(t, m.CanRedo())

			tt.record(m)
			assert.False(t, m.CanRedo())
			_, next := m.Peek()
			assert.Nil(t, next)
		})
	}
}

func TestAmendAppendsWithoutMutating(t *testing.T) {
	m := newTestManager()
	m.Commit("abc")
	m.Commit("abcdef")

	a, ok := m.Amend(0, "xyz", "abcdef")
	require.True(t, ok)
	assert.Equal(t, 2, a.ID)
	assert.Equal(t, OpAmend, a.Type)
	require.NotNil(t, a.Amends)
	assert.Equal(t, 0, *a.Amends)
	assert.Equal(t, "abcdef", a.Before)
	assert.Equal(t, "xyz", a.After)

	orig, ok := m.Lookup(0)
	require.True(t, ok)
	assert.Equal(t, "", orig.Before)
	assert.Equal(t, "abc", orig.After)
	assert.Equal(t, OpCommit, orig.Type)
	assert.Nil(t, orig.Amends)

	undo, _ := m.Peek()
	assert.Same(t, a, undo)
}

func TestAmendUnknownIDChangesNothing(t *testing.T) {
	m := newTestManager()
	m.Commit("a")
	m.Commit("ab")
	m.Undo()

	a, ok := m.Amend(42, "zzz", "a")
	assert.False(t, ok)
	assert.Nil(t, a)
	assert.Equal(t, 2, m.Len())
	assert.Equal(t, 2, m.NextID())
	assert.Equal(t, 1, m.UndoDepth())
	assert.Equal(t, 1, m.RedoDepth())
}

func TestPeekIsReadOnly(t *testing.T) {
	m := newTestManager()
	u, r := m.Peek()
	assert.Nil(t, u)
	assert.Nil(t, r)

	m.Commit("a")
	m.Commit("ab")
	m.Undo()

	u, r = m.Peek()
	require.NotNil(t, u)
	require.NotNil(t, r)
	assert.Equal(t, 0, u.ID)
	assert.Equal(t, 1, r.ID)

	u2, r2 := m.Peek()
	assert.Same(t, u, u2)
	assert.Same(t, r, r2)
	assert.Equal(t, 1, m.UndoDepth())
	assert.Equal(t, 1, m.RedoDepth())
}

func TestJumpIsPreviewOnly(t *testing.T) {
	m := newTestManager()
	m.Commit("first")
	m.Commit("second")

	text, ok := m.Jump(0)
	require.True(t, ok)
	assert.Equal(t, "first", text)
	assert.Equal(t, 2, m.Len())
	assert.Equal(t, 2, m.UndoDepth())
	assert.Equal(t, 0, m.RedoDepth())

	_, ok = m.Jump(7)
	assert.False(t, ok)
	_, ok = m.Jump(-1)
	assert.False(t, ok)
}

func TestResetRestartsIDs(t *testing.T) {
	m := newTestManager()
	m.Commit("a")
	m.Commit("ab")
	m.Undo()

	m.Reset()
	assert.Equal(t, 0, m.Len())
	assert.False(t, m.CanUndo())
	assert.False(t, m.CanRedo())
	assert.Nil(t, m.Last())

	a, ok := m.Commit("fresh")
	require.True(t, ok)
	assert.Equal(t, 0, a.ID)
	assert.Equal(t, "", a.Before)
}

func TestStacksReferenceLogEntries(t *testing.T) {
	m := newTestManager()
	m.Commit("a")
	m.Set("a")
	m.Commit("abc")
	m.Amend(1, "q", "abc")
	m.Undo()
	m.Undo()

	inLog := func(a *Action) bool {
		for _, e := range m.Entries() {
			if e == a {
				return true
			}
		}
		return false
	}
	for _, a := range m.undo.items {
		assert.True(t, inLog(a))
	}
	for _, a := range m.redo.items {
		assert.True(t, inLog(a))
	}
}

func TestSince(t *testing.T) {
	m := newTestManager()
	for _, s := range []string{"a", "ab", "abc", "abcd"} {
		m.Commit(s)
	}
	assert.Len(t, m.Since(0), 4)
	assert.Len(t, m.Since(10), 4)

	last := m.Since(2)
	require.Len(t, last, 2)
	assert.Equal(t, 2, last[0].ID)
	assert.Equal(t, 3, last[1].ID)
}

func TestEntriesIsACopy(t *testing.T) {
	m := newTestManager()
	m.Commit("a")
	entries := m.Entries()
	entries[0] = nil
	assert.NotNil(t, m.Entries()[0])
}

func TestDeltaAndFormatting(t *testing.T) {
	grow := &Action{Before: "abc", After: "abcdefg"}
	shrink := &Action{Before: "abcdefg", After: "abc"}
	assert.Equal(t, "+4", FormatDelta(grow.Delta()))
	assert.Equal(t, "-4", FormatDelta(shrink.Delta()))
	assert.Equal(t, "+0", FormatDelta(0))

	unicode := &Action{Before: "", After: "héllo"}
	assert.Equal(t, 5, unicode.Delta())
}

func TestPreview(t *testing.T) {
	short := &Action{After: "line one\nline two"}
	assert.Equal(t, "line one line two", short.Preview())

	long := &Action{After: strings.Repeat("x", 130)}
	p := long.Preview()
	assert.True(t, strings.HasSuffix(p, "…"))
	assert.Equal(t, strings.Repeat("x", 120)+"…", p)

	exact := &Action{After: strings.Repeat("y", 120)}
	assert.Equal(t, strings.Repeat("y", 120), exact.Preview())

	m := NewManager(WithPreviewWidth(4))
	a := m.Set("abcdef")
	assert.Equal(t, "abcd…", a.Preview())
}

func TestActionString(t *testing.T) {
	m := newTestManager()
	m.Commit("abc")
	m.Commit("abcdefg")
	amend, _ := m.Amend(0, "abc", "abcdefg")

	first, _ := m.Lookup(0)
	assert.Equal(t, `#0 | 2024-03-01 09:30:00 | COMMIT | Δ +3 | len 3  —  "abc"`, first.String())
	assert.Equal(t, `#2 | 2024-03-01 09:30:00 | AMEND | Δ -4 | len 3 | amends #0  —  "abc"`, amend.String())
}

func TestSummary(t *testing.T) {
	var none *Action
	assert.Equal(t, "(none)", none.Summary())

	m := newTestManager()
	a, _ := m.Commit("abcd")
	assert.Equal(t, "#0 COMMIT (Δ +4)", a.Summary())
}

func TestStackPopEmpty(t *testing.T) {
	var s Stack
	assert.Nil(t, s.Pop())
	assert.Nil(t, s.Peek())
	assert.True(t, s.IsEmpty())

	a := &Action{ID: 3}
	s.Push(a)
	assert.Same(t, a, s.Peek())
	assert.Same(t, a, s.Pop())
	assert.Equal(t, 0, s.Len())
}
