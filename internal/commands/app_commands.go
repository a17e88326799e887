// Package commands holds ':' commands that act on the application rather
// than on the note, registered through the plugin API like any plugin's.
package commands

import (
	"fmt"
	"strings"

	"github.com/bethropolis/jot/internal/logger"
	"github.com/bethropolis/jot/internal/plugin"
)

// HelpText is the key summary shown by :help.
const HelpText = "Ctrl+S commit | Ctrl+T set | Ctrl+Z undo | Ctrl+Y redo | Ctrl+L logs | Ctrl+P peek | Ctrl+R reset | :q quit"

// RegisterAppCommands registers :theme, :themes and :help.
func RegisterAppCommands(api plugin.EditorAPI) {
	register(api, "theme", themeCommand(api))
	register(api, "themes", func(args []string) error {
		api.SetStatusMessage("Available themes: %s", strings.Join(api.ListThemes(), ", "))
		return nil
	})
	register(api, "help", func(args []string) error {
		api.SetStatusMessage("%s", HelpText)
		return nil
	})
}

func register(api plugin.EditorAPI, name string, fn plugin.CommandFunc) {
	if err := api.RegisterCommand(name, fn); err != nil {
		logger.Warnf("Failed to register ':%s' command: %v", name, err)
	}
}

// themeCommand shows the active theme, or switches to the named one. Theme
// names may contain spaces.
func themeCommand(api plugin.EditorAPI) plugin.CommandFunc {
	return func(args []string) error {
		if len(args) == 0 {
			api.SetStatusMessage("Current theme: %s", api.GetTheme().Name)
			return nil
		}

		themeName := strings.Join(args, " ")
		if err := api.SetTheme(themeName); err != nil {
			return fmt.Errorf("theme '%s' not found. Available: %s", themeName, strings.Join(api.ListThemes(), ", "))
		}
		api.SetStatusMessage("Theme set to: %s", api.GetTheme().Name)
		return nil
	}
}
