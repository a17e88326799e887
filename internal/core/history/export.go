package history

import (
	"fmt"
	"io"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// ExportMeta describes the session a log export belongs to.
type ExportMeta struct {
	Session    uuid.UUID
	ExportedAt time.Time
}

type exportedAction struct {
	ID     int    `json:"id"`
	TS     string `json:"ts"`
	Op     string `json:"op"`
	Before string `json:"before"`
	After  string `json:"after"`
	Delta  int    `json:"delta"`
	Len    int    `json:"len"`
	Amends *int   `json:"amends,omitempty"`
}

type exportDoc struct {
	Session    string           `json:"session"`
	ExportedAt string           `json:"exported_at"`
	Actions    []exportedAction `json:"actions"`
}

// Export writes every log entry, with full snapshots, as indented JSON.
// It is a report only; nothing reads it back.
func Export(w io.Writer, m *Manager, meta ExportMeta) error {
	if meta.ExportedAt.IsZero() {
		meta.ExportedAt = m.now()
	}
	doc := exportDoc{
		Session:    meta.Session.String(),
		ExportedAt: meta.ExportedAt.Format(time.RFC3339),
		Actions:    make([]exportedAction, 0, m.Len()),
	}
	for _, a := range m.Entries() {
		doc.Actions = append(doc.Actions, exportedAction{
			ID:     a.ID,
			TS:     a.FormattedTime(),
			Op:     a.Type.String(),
			Before: a.Before,
			After:  a.After,
			Delta:  a.Delta(),
			Len:    a.Len(),
			Amends: a.Amends,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode history export: %w", err)
	}
	return nil
}
