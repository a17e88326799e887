// internal/input/keymap.go
package input

import (
	"github.com/gdamore/tcell/v2"
)

// Keymap maps special keys to actions.
type Keymap map[tcell.Key]Action

// ModKeymap maps keys pressed with a modifier combination.
type ModKeymap map[tcell.ModMask]Keymap

// RuneKeymap maps runes pressed with a modifier combination (e.g. Ctrl+Shift+Z,
// which terminals that support it report as a rune with modifiers).
type RuneKeymap map[tcell.ModMask]map[rune]Action

// InputProcessor translates tcell key events into ActionEvents. It knows
// nothing about modes; the mode handler interprets the result.
type InputProcessor struct {
	keymap     Keymap
	modKeymap  ModKeymap
	runeKeymap RuneKeymap
}

func NewInputProcessor() *InputProcessor {
	p := &InputProcessor{
		keymap:     make(Keymap),
		modKeymap:  make(ModKeymap),
		runeKeymap: make(RuneKeymap),
	}
	p.loadDefaultBindings()
	return p
}

func (p *InputProcessor) loadDefaultBindings() {
	p.keymap[tcell.KeyUp] = ActionMoveUp
	p.keymap[tcell.KeyDown] = ActionMoveDown
	p.keymap[tcell.KeyLeft] = ActionMoveLeft
	p.keymap[tcell.KeyRight] = ActionMoveRight
	p.keymap[tcell.KeyPgUp] = ActionMovePageUp
	p.keymap[tcell.KeyPgDn] = ActionMovePageDown
	p.keymap[tcell.KeyHome] = ActionMoveHome
	p.keymap[tcell.KeyEnd] = ActionMoveEnd
	p.keymap[tcell.KeyEnter] = ActionInsertNewLine
	p.keymap[tcell.KeyTab] = ActionInsertTab
	p.keymap[tcell.KeyBackspace] = ActionDeleteCharBackward
	p.keymap[tcell.KeyBackspace2] = ActionDeleteCharBackward
	p.keymap[tcell.KeyDelete] = ActionDeleteCharForward
	p.keymap[tcell.KeyEscape] = ActionQuit
	p.keymap[tcell.KeyF2] = ActionEnterCommandMode

	// Ctrl+<letter> arrives as its own key code.
	p.keymap[tcell.KeyCtrlS] = ActionCommit
	p.keymap[tcell.KeyCtrlT] = ActionSet
	p.keymap[tcell.KeyCtrlZ] = ActionUndo
	p.keymap[tcell.KeyCtrlY] = ActionRedo
	p.keymap[tcell.KeyCtrlL] = ActionShowLogs
	p.keymap[tcell.KeyCtrlP] = ActionPeek
	p.keymap[tcell.KeyCtrlR] = ActionReset
	p.keymap[tcell.KeyCtrlV] = ActionPaste
	p.keymap[tcell.KeyCtrlE] = ActionEnterCommandMode
	p.keymap[tcell.KeyCtrlQ] = ActionForceQuit
	p.keymap[tcell.KeyCtrlC] = ActionQuit

	ctrlShift := make(Keymap)
	ctrlShift[tcell.KeyCtrlZ] = ActionRedo
	p.modKeymap[tcell.ModCtrl|tcell.ModShift] = ctrlShift

	p.runeKeymap[tcell.ModCtrl|tcell.ModShift] = map[rune]Action{'z': ActionRedo, 'Z': ActionRedo}
	p.runeKeymap[tcell.ModNone] = map[rune]Action{':': ActionEnterCommandMode}
}

// ProcessEvent decodes ev. Plain runes become ActionInsertRune unless bound.
func (p *InputProcessor) ProcessEvent(ev *tcell.EventKey) ActionEvent {
	key := ev.Key()
	mod := ev.Modifiers()

	if key == tcell.KeyRune {
		if m, ok := p.runeKeymap[mod]; ok {
			if action, ok := m[ev.Rune()]; ok {
				return ActionEvent{Action: action, Rune: ev.Rune()}
			}
		}
		if mod == tcell.ModNone || mod == tcell.ModShift {
			return ActionEvent{Action: ActionInsertRune, Rune: ev.Rune()}
		}
		return ActionEvent{Action: ActionUnknown}
	}

	if m, ok := p.modKeymap[mod]; ok {
		if action, ok := m[key]; ok {
			return ActionEvent{Action: action}
		}
	}

	if action, ok := p.keymap[key]; ok {
		return ActionEvent{Action: action}
	}
	return ActionEvent{Action: ActionUnknown}
}
