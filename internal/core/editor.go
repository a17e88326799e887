package core

import (
	"unicode/utf8"

	"github.com/bethropolis/jot/internal/buffer"
	"github.com/bethropolis/jot/internal/config"
	"github.com/bethropolis/jot/internal/core/clipboard"
	"github.com/bethropolis/jot/internal/core/history"
	"github.com/bethropolis/jot/internal/event"
	"github.com/bethropolis/jot/internal/logger"
	"github.com/bethropolis/jot/internal/types"
	"github.com/google/uuid"
)

// Editor binds the history engine to the note being edited. The note text is
// the content of the main pane.
type Editor struct {
	main   *Pane
	amend  *Pane
	active *Pane

	history      *history.Manager
	clipboard    *clipboard.Manager
	eventManager *event.Manager
	session      uuid.UUID

	amendTarget int // log id being amended, -1 when not amending

	tabWidth  int
	scrollOff int
}

// NewEditor creates an editor over buf recording into hist.
func NewEditor(buf buffer.Buffer, hist *history.Manager) *Editor {
	if hist == nil {
		hist = history.NewManager()
	}
	e := &Editor{
		history:     hist,
		clipboard:   clipboard.NewManager(false),
		session:     uuid.New(),
		amendTarget: -1,
		tabWidth:    config.DefaultTabWidth,
		scrollOff:   config.DefaultScrollOff,
	}
	e.main = newPane(e, buf)
	e.amend = newPane(e, buffer.NewSliceBuffer())
	e.active = e.main
	return e
}

func (e *Editor) SetEventManager(mgr *event.Manager) { e.eventManager = mgr }

func (e *Editor) GetEventManager() *event.Manager { return e.eventManager }

func (e *Editor) SetClipboard(c *clipboard.Manager) {
	if c != nil {
		e.clipboard = c
	}
}

// SetTabWidth and SetScrollOff ignore non-positive and negative values.
func (e *Editor) SetTabWidth(n int) {
	if n > 0 {
		e.tabWidth = n
	}
}

func (e *Editor) SetScrollOff(n int) {
	if n >= 0 {
		e.scrollOff = n
	}
}

func (e *Editor) TabWidth() int { return e.tabWidth }

// Session identifies this editing session in exports.
func (e *Editor) Session() uuid.UUID { return e.session }

// GetBuffer returns the main note buffer.
func (e *Editor) GetBuffer() buffer.Buffer { return e.main.buffer }

func (e *Editor) GetHistoryManager() *history.Manager { return e.history }

func (e *Editor) MainPane() *Pane { return e.main }

func (e *Editor) AmendPane() *Pane { return e.amend }

// ActivePane is the pane receiving edits: the amend pane while amending.
func (e *Editor) ActivePane() *Pane { return e.active }

func (e *Editor) IsAmending() bool { return e.amendTarget >= 0 }

// AmendTarget returns the id being amended.
func (e *Editor) AmendTarget() (int, bool) { return e.amendTarget, e.amendTarget >= 0 }

// SetViewSize sizes both panes from the full screen size. The amend pane
// loses one line to its title.
func (e *Editor) SetViewSize(width, height int) {
	textHeight := height - config.StatusBarHeight
	if textHeight < 0 {
		textHeight = 0
	}
	e.main.SetViewSize(width, textHeight)
	amendHeight := textHeight - 1
	if amendHeight < 0 {
		amendHeight = 0
	}
	e.amend.SetViewSize(width, amendHeight)
}

func (e *Editor) GetCursor() types.Position { return e.active.GetCursor() }

func (e *Editor) SetCursor(pos types.Position) { e.active.SetCursor(pos) }

func (e *Editor) GetViewport() (int, int) { return e.active.GetViewport() }

// Text returns the current note text.
func (e *Editor) Text() string { return e.main.Text() }

// TextLen returns the note length in characters.
func (e *Editor) TextLen() int { return utf8.RuneCountInString(e.Text()) }

// Modified reports whether the note differs from the newest log entry.
func (e *Editor) Modified() bool {
	if last := e.history.Last(); last != nil {
		return e.Text() != last.After
	}
	return e.Text() != ""
}

// replaceText swaps the whole note, as undo, redo, jump and amend do.
func (e *Editor) replaceText(s, reason string) {
	e.main.setText(s)
	logger.DebugTagf("core", "Editor: text replaced (%s), len %d", reason, utf8.RuneCountInString(s))
	if e.eventManager != nil {
		e.eventManager.Dispatch(event.TypeTextReplaced, event.TextReplacedData{
			Reason: reason,
			Len:    utf8.RuneCountInString(s),
		})
	}
}

func (e *Editor) dispatchHistoryChanged(op string, a *history.Action) {
	if e.eventManager == nil {
		return
	}
	id := -1
	if a != nil {
		id = a.ID
	}
	e.eventManager.Dispatch(event.TypeHistoryChanged, event.HistoryChangedData{
		Op:        op,
		ActionID:  id,
		LogLen:    e.history.Len(),
		UndoDepth: e.history.UndoDepth(),
		RedoDepth: e.history.RedoDepth(),
	})
}
