// internal/app/app.go
package app

import (
	"fmt"
	"time"

	"github.com/bethropolis/jot/internal/buffer"
	"github.com/bethropolis/jot/internal/commands"
	"github.com/bethropolis/jot/internal/config"
	"github.com/bethropolis/jot/internal/core"
	"github.com/bethropolis/jot/internal/core/clipboard"
	"github.com/bethropolis/jot/internal/core/history"
	"github.com/bethropolis/jot/internal/event"
	"github.com/bethropolis/jot/internal/input"
	"github.com/bethropolis/jot/internal/logger"
	"github.com/bethropolis/jot/internal/modehandler"
	"github.com/bethropolis/jot/internal/plugin"
	"github.com/bethropolis/jot/internal/statusbar"
	"github.com/bethropolis/jot/internal/theme"
	"github.com/bethropolis/jot/internal/tui"
	"github.com/gdamore/tcell/v2"
)

// App encapsulates the core components and main loop of the editor.
//
// Only the goroutine running Run touches the editor and its history. Terminal
// events arrive from a polling goroutine over a channel; other goroutines
// hand work to the loop with Post.
type App struct {
	tuiManager    *tui.TUI
	editor        *core.Editor
	statusBar     *statusbar.StatusBar
	eventManager  *event.Manager
	pluginManager *plugin.Manager
	modeHandler   *modehandler.ModeHandler
	themeManager  *theme.Manager
	editorAPI     plugin.EditorAPI

	quit   chan struct{}
	events chan tcell.Event

	// messageShown records whether the last frame showed a status message,
	// so the loop can redraw once it expires.
	messageShown bool
}

// NewApp creates the application on the terminal. filePath, when set, seeds
// the note with that file's text; nothing is ever written back to it.
func NewApp(cfg *config.Config, filePath string) (*App, error) {
	tuiManager, err := tui.New()
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}
	a, err := newApp(cfg, filePath, tuiManager)
	if err != nil {
		tuiManager.Close()
		return nil, err
	}
	return a, nil
}

// NewAppWithScreen is NewApp on a caller-supplied screen, such as a
// tcell.SimulationScreen.
func NewAppWithScreen(cfg *config.Config, filePath string, screen tcell.Screen) (*App, error) {
	tuiManager, err := tui.NewWithScreen(screen)
	if err != nil {
		return nil, err
	}
	return newApp(cfg, filePath, tuiManager)
}

func newApp(cfg *config.Config, filePath string, tuiManager *tui.TUI) (*App, error) {
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}

	buf := buffer.NewSliceBuffer()
	if filePath != "" {
		if err := buf.Load(filePath); err != nil {
			return nil, fmt.Errorf("failed to load '%s': %w", filePath, err)
		}
		logger.Infof("App: seeded note from '%s' (%d lines)", filePath, buf.LineCount())
	}

	hist := history.NewManager(
		history.WithPreviewWidth(cfg.History.PreviewWidth),
		history.WithTimestampLayout(cfg.History.TimestampFormat),
	)
	editor := core.NewEditor(buf, hist)
	editor.SetTabWidth(cfg.Editor.TabWidth)
	editor.SetScrollOff(cfg.Editor.ScrollOff)
	editor.SetClipboard(clipboard.NewManager(cfg.Editor.SystemClipboard))

	eventManager := event.NewManager()
	editor.SetEventManager(eventManager)

	statusBar := statusbar.New(statusbar.DefaultConfig())
	quitChan := make(chan struct{})

	modeHandler := modehandler.New(modehandler.Config{
		Editor:         editor,
		InputProcessor: input.NewInputProcessor(),
		EventManager:   eventManager,
		StatusBar:      statusBar,
		QuitSignal:     quitChan,
		ConfirmReset:   cfg.History.ConfirmReset,
	})

	themeManager := theme.NewManager(config.ThemesDir())
	if cfg.Editor.Theme != "" {
		if err := themeManager.SetTheme(cfg.Editor.Theme); err != nil {
			logger.Warnf("App: %v, keeping '%s'", err, themeManager.Current().Name)
		}
	}

	a := &App{
		tuiManager:    tuiManager,
		editor:        editor,
		statusBar:     statusBar,
		eventManager:  eventManager,
		pluginManager: plugin.NewManager(),
		modeHandler:   modeHandler,
		themeManager:  themeManager,
		quit:          quitChan,
		events:        make(chan tcell.Event, 16),
	}
	a.editorAPI = newEditorAPI(a)
	tuiManager.SetStyle(themeManager.Current().GetStyle(theme.StyleDefault))

	a.subscribeEvents()
	commands.RegisterAppCommands(a.editorAPI)
	if err := registerPlugins(a.pluginManager, cfg); err != nil {
		logger.Warnf("App: %v", err)
	}
	a.pluginManager.InitializePlugins(a.editorAPI)

	width, height := tuiManager.Size()
	editor.SetViewSize(width, height)

	return a, nil
}

// Run starts the event loop and blocks until the user quits.
func (a *App) Run() error {
	defer a.tuiManager.Close()
	defer a.pluginManager.ShutdownPlugins()

	go a.pollEvents()

	a.eventManager.Dispatch(event.TypeAppReady, event.AppReadyData{})
	a.statusBar.SetTemporaryMessage("jot - Ctrl+S Commit | Ctrl+Z Undo | Ctrl+L Logs | : Command | Esc Quit")
	a.drawEditor()

	expiry := time.NewTicker(time.Second)
	defer expiry.Stop()

	for {
		select {
		case <-a.quit:
			a.eventManager.Dispatch(event.TypeAppQuit, event.AppQuitData{})
			if a.editor.Modified() {
				logger.Warnf("App: exiting with uncommitted changes")
			}
			logger.Infof("App: exiting, %d steps in log", a.editor.GetHistoryManager().Len())
			return nil
		case ev := <-a.events:
			if a.handleEvent(ev) {
				a.drawEditor()
			}
		case <-expiry.C:
			if a.messageShown && a.statusBar.Message() == "" {
				a.drawEditor()
			}
		}
	}
}

// pollEvents forwards terminal events to the loop until the screen closes.
func (a *App) pollEvents() {
	for {
		ev := a.tuiManager.PollEvent()
		if ev == nil {
			return
		}
		select {
		case a.events <- ev:
		case <-a.quit:
			return
		}
	}
}

// handleEvent applies one terminal event and reports whether to redraw.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.tuiManager.Sync()
		width, height := a.tuiManager.Size()
		a.editor.SetViewSize(width, height)
		logger.DebugTagf("draw", "App: resized to %dx%d", width, height)
		return true
	case *tcell.EventKey:
		return a.modeHandler.HandleKeyEvent(ev)
	case *tcell.EventInterrupt:
		if fn, ok := ev.Data().(func()); ok {
			fn()
			return true
		}
	}
	return false
}

// Post queues fn to run on the event loop. Safe to call from any goroutine.
func (a *App) Post(fn func()) {
	if err := a.tuiManager.PostEvent(tcell.NewEventInterrupt(fn)); err != nil {
		logger.Warnf("App: dropped posted function: %v", err)
	}
}

// GetModeHandler allows the API adapter to access the mode handler for command registration.
func (a *App) GetModeHandler() *modehandler.ModeHandler {
	return a.modeHandler
}

// GetEditor returns the editor the app drives.
func (a *App) GetEditor() *core.Editor {
	return a.editor
}

// GetTheme returns the app's active theme.
func (a *App) GetTheme() *theme.Theme {
	return a.themeManager.Current()
}

// SetTheme activates the named theme.
func (a *App) SetTheme(name string) error {
	if err := a.themeManager.SetTheme(name); err != nil {
		return err
	}
	current := a.themeManager.Current()
	a.tuiManager.SetStyle(current.GetStyle(theme.StyleDefault))
	a.eventManager.Dispatch(event.TypeThemeChanged, event.ThemeChangedData{Name: current.Name})
	return nil
}
