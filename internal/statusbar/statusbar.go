// internal/statusbar/statusbar.go
package statusbar

import (
	"fmt"
	"sync"
	"time"

	"github.com/bethropolis/jot/internal/config"
	"github.com/bethropolis/jot/internal/theme"
	"github.com/bethropolis/jot/internal/types"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

type Config struct {
	MessageTimeout time.Duration
}

func DefaultConfig() Config {
	return Config{MessageTimeout: config.MessageTimeout}
}

// HistoryInfo is the engine state shown on the left of the bar.
type HistoryInfo struct {
	Steps    int
	NextUndo int // -1 when the undo stack is empty
	NextRedo int // -1 when the redo stack is empty
}

type messageKind int

const (
	kindInfo messageKind = iota
	kindWarning
	kindCommand
)

// StatusBar is the bottom line of the screen. It is updated from the event
// loop and read while drawing.
type StatusBar struct {
	config Config
	mu     sync.RWMutex

	history    HistoryInfo
	cursorPos  types.Position
	isModified bool
	editorMode string

	tempMessage     string
	tempMessageKind messageKind
	tempMessageTime time.Time
	now             func() time.Time
}

func New(cfg Config) *StatusBar {
	return &StatusBar{
		config:  cfg,
		history: HistoryInfo{NextUndo: -1, NextRedo: -1},
		now:     time.Now,
	}
}

func (sb *StatusBar) SetHistoryInfo(info HistoryInfo) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.history = info
}

func (sb *StatusBar) SetModified(modified bool) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.isModified = modified
}

func (sb *StatusBar) SetCursorInfo(pos types.Position) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.cursorPos = pos
}

func (sb *StatusBar) SetEditorMode(mode string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.editorMode = mode
}

// SetTemporaryMessage shows a message until MessageTimeout passes.
func (sb *StatusBar) SetTemporaryMessage(format string, args ...interface{}) {
	sb.setMessage(kindInfo, format, args...)
}

// SetWarning is SetTemporaryMessage in the warning style.
func (sb *StatusBar) SetWarning(format string, args ...interface{}) {
	sb.setMessage(kindWarning, format, args...)
}

// SetPrompt shows command-line input. Prompts do not expire.
func (sb *StatusBar) SetPrompt(format string, args ...interface{}) {
	sb.setMessage(kindCommand, format, args...)
}

func (sb *StatusBar) setMessage(kind messageKind, format string, args ...interface{}) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = fmt.Sprintf(format, args...)
	sb.tempMessageKind = kind
	sb.tempMessageTime = sb.now()
}

func (sb *StatusBar) ResetTemporaryMessage() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = ""
	sb.tempMessageTime = time.Time{}
}

// Message returns the active temporary message, or "".
func (sb *StatusBar) Message() string {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	if !sb.messageActive() {
		return ""
	}
	return sb.tempMessage
}

// messageActive expires old messages. Callers hold the lock.
func (sb *StatusBar) messageActive() bool {
	if sb.tempMessageTime.IsZero() || sb.tempMessage == "" {
		return false
	}
	if sb.tempMessageKind != kindCommand && sb.now().Sub(sb.tempMessageTime) > sb.config.MessageTimeout {
		sb.tempMessage = ""
		sb.tempMessageTime = time.Time{}
		return false
	}
	return true
}

func stackRef(id int) string {
	if id < 0 {
		return "-"
	}
	return fmt.Sprintf("#%d", id)
}

// DefaultText is the status line shown when no message is active.
func (sb *StatusBar) DefaultText() string {
	sb.mu.RLock()
	defer sb.mu.RUnlock()

	modified := ""
	if sb.isModified {
		modified = " [Modified]"
	}
	mode := ""
	if sb.editorMode != "" {
		mode = " -- " + sb.editorMode
	}
	return fmt.Sprintf("[%d steps] undo %s redo %s%s -- Line: %d, Col: %d%s",
		sb.history.Steps, stackRef(sb.history.NextUndo), stackRef(sb.history.NextRedo),
		modified, sb.cursorPos.Line+1, sb.cursorPos.Col+1, mode)
}

// Draw renders the bar on the last screen row.
func (sb *StatusBar) Draw(screen tcell.Screen, width, height int, th *theme.Theme) {
	if height <= 0 || width <= 0 {
		return
	}
	y := height - 1

	sb.mu.Lock()
	active := sb.messageActive()
	text, kind, modified := sb.tempMessage, sb.tempMessageKind, sb.isModified
	sb.mu.Unlock()

	style := th.GetStyle(theme.StyleStatusBar)
	if active {
		switch kind {
		case kindWarning:
			style = th.GetStyle(theme.StyleStatusBarWarning)
		case kindCommand:
			style = th.GetStyle(theme.StyleStatusBarCommand)
		default:
			style = th.GetStyle(theme.StyleStatusBarMessage)
		}
	} else {
		text = sb.DefaultText()
		if modified {
			style = th.GetStyle(theme.StyleStatusBarModified)
		}
	}

	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}

	gr := uniseg.NewGraphemes(text)
	x := 0
	for gr.Next() {
		w := gr.Width()
		if x+w > width {
			break
		}
		runes := gr.Runes()
		screen.SetContent(x, y, runes[0], runes[1:], style)
		x += w
	}
}
