package history

// Log is the append-only record of every Action in creation order.
type Log struct {
	entries []*Action
	byID    map[int]*Action
}

func newLog() *Log {
	return &Log{byID: make(map[int]*Action)}
}

func (l *Log) append(a *Action) {
	l.entries = append(l.entries, a)
	l.byID[a.ID] = a
}

func (l *Log) clear() {
	clear(l.entries)
	l.entries = l.entries[:0]
	clear(l.byID)
}

// Len returns the number of recorded actions.
func (l *Log) Len() int { return len(l.entries) }

// Lookup finds an action by id.
func (l *Log) Lookup(id int) (*Action, bool) {
	a, ok := l.byID[id]
	return a, ok
}

// Last returns the most recently appended action, or nil.
func (l *Log) Last() *Action {
	if len(l.entries) == 0 {
		return nil
	}
	return l.entries[len(l.entries)-1]
}

// Entries returns a copy of the log slice. The actions themselves are shared.
func (l *Log) Entries() []*Action {
	out := make([]*Action, len(l.entries))
	copy(out, l.entries)
	return out
}

// Since returns the last n entries, or all of them when n <= 0 or n exceeds
// the log length.
func (l *Log) Since(n int) []*Action {
	if n <= 0 || n >= len(l.entries) {
		return l.Entries()
	}
	out := make([]*Action, n)
	copy(out, l.entries[len(l.entries)-n:])
	return out
}
