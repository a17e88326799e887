// plugins/autocommit/autocommit.go
package autocommit

import (
	"fmt"
	"sync"
	"time"

	"github.com/bethropolis/jot/internal/logger"
	"github.com/bethropolis/jot/internal/plugin"
)

var _ plugin.Plugin = (*AutoCommit)(nil)

// AutoCommit periodically commits the note. The commit itself runs on the UI
// event loop via EditorAPI.Post; the ticker goroutine never touches the
// history directly. Commits of an unchanged note are skipped by the engine.
type AutoCommit struct {
	api plugin.EditorAPI

	mutex    sync.Mutex
	enabled  bool
	interval time.Duration

	stopChan chan struct{}
	wg       sync.WaitGroup
}

// New creates the plugin. A non-positive interval disables it.
func New(enabled bool, interval time.Duration) *AutoCommit {
	return &AutoCommit{
		enabled:  enabled && interval > 0,
		interval: interval,
	}
}

func (p *AutoCommit) Name() string {
	return "autocommit"
}

// Initialize registers :autocommit and starts the ticker if enabled.
func (p *AutoCommit) Initialize(api plugin.EditorAPI) error {
	p.api = api
	if err := api.RegisterCommand("autocommit", p.executeCommand); err != nil {
		return fmt.Errorf("failed to register 'autocommit' command: %w", err)
	}

	p.mutex.Lock()
	defer p.mutex.Unlock()
	logger.Infof("%s initialized. Enabled: %v, Interval: %v", p.Name(), p.enabled, p.interval)
	if p.enabled {
		p.startLocked()
	}
	return nil
}

func (p *AutoCommit) Shutdown() error {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.stopLocked()
	return nil
}

// Enabled reports whether the ticker is running.
func (p *AutoCommit) Enabled() bool {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	return p.stopChan != nil
}

func (p *AutoCommit) startLocked() {
	if p.stopChan != nil || p.interval <= 0 {
		return
	}
	p.stopChan = make(chan struct{})
	p.wg.Add(1)
	go p.commitLoop(p.interval, p.stopChan)
	logger.DebugTagf("autocommit", "%s: ticker started (%v)", p.Name(), p.interval)
}

func (p *AutoCommit) stopLocked() {
	if p.stopChan == nil {
		return
	}
	close(p.stopChan)
	p.stopChan = nil
	p.wg.Wait()
	logger.DebugTagf("autocommit", "%s: ticker stopped", p.Name())
}

func (p *AutoCommit) commitLoop(interval time.Duration, stop <-chan struct{}) {
	defer p.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			p.api.Post(p.commitIfModified)
		case <-stop:
			return
		}
	}
}

// commitIfModified runs on the UI event loop.
func (p *AutoCommit) commitIfModified() {
	if !p.api.IsModified() {
		logger.DebugTagf("autocommit", "%s: note unchanged, nothing to commit", p.Name())
		return
	}
	msg, ok := p.api.Commit()
	if ok {
		logger.Infof("%s: %s", p.Name(), msg)
		p.api.SetStatusMessage("Autocommit: %s", msg)
	}
}

// executeCommand handles ":autocommit [on|off]".
func (p *AutoCommit) executeCommand(args []string) error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	switch {
	case len(args) == 0:
	case args[0] == "on":
		if p.interval <= 0 {
			return fmt.Errorf("no autocommit interval configured")
		}
		p.enabled = true
		p.startLocked()
	case args[0] == "off":
		p.enabled = false
		p.stopLocked()
	default:
		return fmt.Errorf("usage: autocommit [on|off]")
	}

	state := "off"
	if p.stopChan != nil {
		state = fmt.Sprintf("on, every %v", p.interval)
	}
	p.api.SetStatusMessage("Autocommit is %s", state)
	return nil
}
