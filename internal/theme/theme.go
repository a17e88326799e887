// internal/theme/theme.go
package theme

import (
	"strings"

	"github.com/bethropolis/jot/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// Style names used by the UI.
const (
	StyleDefault           = "Default"
	StyleStatusBar         = "StatusBar"
	StyleStatusBarModified = "StatusBarModified"
	StyleStatusBarMessage  = "StatusBarMessage"
	StyleStatusBarWarning  = "StatusBarWarning"
	StyleStatusBarCommand  = "StatusBarCommand"
	StyleLogEntry          = "Log.entry"
	StyleLogAmend          = "Log.amend"
	StyleLogSelected       = "Log.selected"
	StyleLogHeader         = "Log.header"
	StyleAmendTitle        = "Amend.title"
	StyleAmendText         = "Amend.text"
)

type Theme struct {
	Name   string
	IsDark bool
	Styles map[string]tcell.Style
}

// GetStyle looks up name, then the part before the first dot, then Default.
func (t *Theme) GetStyle(name string) tcell.Style {
	if style, ok := t.Styles[name]; ok {
		return style
	}

	if dotIndex := strings.Index(name, "."); dotIndex != -1 {
		if style, ok := t.Styles[name[:dotIndex]]; ok {
			return style
		}
	}

	if defStyle, ok := t.Styles[StyleDefault]; ok {
		if name != StyleDefault {
			logger.DebugTagf("theme", "Theme '%s': style '%s' not found, falling back to 'Default'", t.Name, name)
		}
		return defStyle
	}

	logger.Warnf("Theme '%s': style '%s' and 'Default' not found, using tcell default", t.Name, name)
	return tcell.StyleDefault
}

// Built-in themes.
var (
	JotDark  = newJotDark()
	JotLight = newJotLight()
)

func newJotDark() *Theme {
	bg := tcell.NewHexColor(0x2a2f38)
	fg := tcell.NewHexColor(0xc5cdd9)
	muted := tcell.NewHexColor(0x5c6370)
	yellow := tcell.NewHexColor(0xe5c07b)
	green := tcell.NewHexColor(0x98c379)
	magenta := tcell.NewHexColor(0xc678dd)
	red := tcell.NewHexColor(0xe06c75)

	base := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(fg)
	bar := tcell.StyleDefault.Background(bg).Foreground(fg)

	return &Theme{
		Name:   "Jot Dark",
		IsDark: true,
		Styles: map[string]tcell.Style{
			StyleDefault:           base,
			StyleStatusBar:         bar,
			StyleStatusBarModified: bar.Foreground(yellow),
			StyleStatusBarMessage:  bar.Bold(true),
			StyleStatusBarWarning:  bar.Foreground(red).Bold(true),
			StyleStatusBarCommand:  bar.Foreground(green).Bold(true),
			StyleLogEntry:          base,
			StyleLogAmend:          base.Foreground(magenta),
			StyleLogSelected:       base.Reverse(true),
			StyleLogHeader:         base.Foreground(muted).Bold(true),
			StyleAmendTitle:        bar.Foreground(yellow).Bold(true),
			StyleAmendText:         base,
		},
	}
}

func newJotLight() *Theme {
	fg := tcell.NewHexColor(0x383a42)
	bg := tcell.NewHexColor(0xe5e5e6)
	blue := tcell.NewHexColor(0x4078f2)
	purple := tcell.NewHexColor(0xa626a4)
	red := tcell.NewHexColor(0xe45649)
	green := tcell.NewHexColor(0x50a14f)

	base := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(fg)
	bar := tcell.StyleDefault.Background(bg).Foreground(fg)

	return &Theme{
		Name:   "Jot Light",
		IsDark: false,
		Styles: map[string]tcell.Style{
			StyleDefault:           base,
			StyleStatusBar:         bar,
			StyleStatusBarModified: bar.Foreground(blue),
			StyleStatusBarMessage:  bar.Bold(true),
			StyleStatusBarWarning:  bar.Foreground(red).Bold(true),
			StyleStatusBarCommand:  bar.Foreground(green).Bold(true),
			StyleLogEntry:          base,
			StyleLogAmend:          base.Foreground(purple),
			StyleLogSelected:       base.Reverse(true),
			StyleLogHeader:         base.Foreground(blue).Bold(true),
			StyleAmendTitle:        bar.Foreground(blue).Bold(true),
			StyleAmendText:         base,
		},
	}
}
