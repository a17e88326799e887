// internal/plugin/manager.go
package plugin

import (
	"fmt"
	"sort"
	"sync"

	"github.com/bethropolis/jot/internal/logger"
)

// Manager handles registration and lifecycle of plugins.
type Manager struct {
	mu      sync.RWMutex
	plugins map[string]Plugin
}

func NewManager() *Manager {
	return &Manager{
		plugins: make(map[string]Plugin),
	}
}

// Register adds a plugin. Call before InitializePlugins.
func (m *Manager) Register(plugin Plugin) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	name := plugin.Name()
	if name == "" {
		return fmt.Errorf("plugin registration failed: plugin name cannot be empty")
	}
	if _, exists := m.plugins[name]; exists {
		return fmt.Errorf("plugin registration failed: plugin named '%s' already registered", name)
	}

	m.plugins[name] = plugin
	logger.DebugTagf("plugin", "Plugin Manager: registered plugin '%s'", name)
	return nil
}

// sorted returns the plugins in name order so startup is deterministic.
func (m *Manager) sorted() []Plugin {
	m.mu.RLock()
	defer m.mu.RUnlock()

	list := make([]Plugin, 0, len(m.plugins))
	for _, p := range m.plugins {
		list = append(list, p)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name() < list[j].Name() })
	return list
}

// InitializePlugins calls Initialize on every plugin. A failing plugin is
// logged and skipped.
func (m *Manager) InitializePlugins(api EditorAPI) {
	plugins := m.sorted()
	logger.Infof("Plugin Manager: initializing %d plugins", len(plugins))
	for _, p := range plugins {
		if err := p.Initialize(api); err != nil {
			logger.Errorf("Plugin Manager: error initializing plugin '%s': %v", p.Name(), err)
			continue
		}
		logger.DebugTagf("plugin", "Plugin Manager: initialized plugin '%s'", p.Name())
	}
}

// ShutdownPlugins calls Shutdown on every plugin.
func (m *Manager) ShutdownPlugins() {
	for _, p := range m.sorted() {
		if err := p.Shutdown(); err != nil {
			logger.Errorf("Plugin Manager: error shutting down plugin '%s': %v", p.Name(), err)
		}
	}
}

// GetPlugin returns a registered plugin by name.
func (m *Manager) GetPlugin(name string) (Plugin, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, exists := m.plugins[name]
	return p, exists
}
