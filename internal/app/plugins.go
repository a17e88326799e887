package app

import (
	"fmt"

	"github.com/bethropolis/jot/internal/config"
	"github.com/bethropolis/jot/internal/logger"
	"github.com/bethropolis/jot/internal/plugin"
	"github.com/bethropolis/jot/plugins/autocommit"
	"github.com/bethropolis/jot/plugins/wordcount"
)

// registerPlugins creates and registers the built-in plugins. It returns the
// first registration error; the remaining plugins are still registered.
func registerPlugins(pm *plugin.Manager, cfg *config.Config) error {
	if pm == nil {
		return fmt.Errorf("plugin manager is nil")
	}

	autocommitCfg := cfg.Plugins.Autocommit
	plugins := []plugin.Plugin{
		wordcount.New(),
		autocommit.New(autocommitCfg.Enabled, autocommitCfg.Interval.Duration),
	}

	var finalErr error
	for _, p := range plugins {
		logger.Debugf("Registering plugin: %s", p.Name())
		if err := pm.Register(p); err != nil {
			wrappedErr := fmt.Errorf("failed to register plugin '%s': %w", p.Name(), err)
			logger.Errorf("%v", wrappedErr)
			if finalErr == nil {
				finalErr = wrappedErr
			}
		}
	}
	return finalErr
}
