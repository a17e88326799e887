package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/bethropolis/jot/internal/logger"
)

// Manager copies text to the system clipboard, keeping an internal register
// as a fallback for terminals without clipboard access.
type Manager struct {
	register  string
	useSystem bool

	writeAll func(string) error
	readAll  func() (string, error)
}

// NewManager creates a clipboard manager. When useSystem is false only the
// internal register is used.
func NewManager(useSystem bool) *Manager {
	return &Manager{
		useSystem: useSystem && !clipboard.Unsupported,
		writeAll:  clipboard.WriteAll,
		readAll:   clipboard.ReadAll,
	}
}

// Copy stores text in the register and, if enabled, the system clipboard.
// The register is updated even when the system write fails.
func (m *Manager) Copy(text string) error {
	m.register = text
	if !m.useSystem {
		return nil
	}
	if err := m.writeAll(text); err != nil {
		logger.Warnf("clipboard: system write failed: %v", err)
		return fmt.Errorf("system clipboard: %w", err)
	}
	logger.DebugTagf("clipboard", "copied %d bytes", len(text))
	return nil
}

// Read returns the system clipboard contents, falling back to the register.
func (m *Manager) Read() string {
	if m.useSystem {
		text, err := m.readAll()
		if err == nil && text != "" {
			return text
		}
		if err != nil {
			logger.Warnf("clipboard: system read failed: %v", err)
		}
	}
	return m.register
}
