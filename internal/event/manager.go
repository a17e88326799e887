package event

import (
	"sync"

	"github.com/bethropolis/jot/internal/logger"
)

// Handler is an event subscriber. The return value reports whether the event
// was consumed; dispatch currently ignores it.
type Handler func(e Event) bool

// Manager handles event subscriptions and dispatching.
type Manager struct {
	mu       sync.RWMutex
	handlers map[Type][]Handler
}

func NewManager() *Manager {
	return &Manager{
		handlers: make(map[Type][]Handler),
	}
}

// Subscribe adds a handler function for a specific event type.
func (m *Manager) Subscribe(eventType Type, handler Handler) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.handlers[eventType] = append(m.handlers[eventType], handler)
	logger.DebugTagf("event", "handler subscribed to %s", eventType)
}

// Dispatch sends an event to all registered handlers for its type, synchronously
// and in subscription order.
func (m *Manager) Dispatch(eventType Type, data interface{}) {
	e := Event{Type: eventType, Data: data}

	m.mu.RLock()
	handlers := make([]Handler, len(m.handlers[eventType]))
	copy(handlers, m.handlers[eventType])
	m.mu.RUnlock()

	if len(handlers) == 0 {
		return
	}

	logger.DebugTagf("event", "dispatching %s to %d handler(s)", eventType, len(handlers))
	for _, handler := range handlers {
		handler(e)
	}
}
