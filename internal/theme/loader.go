// internal/theme/loader.go
package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/jot/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// styleDef is one [styles.<Name>] table. Pointers tell unset from false.
type styleDef struct {
	Fg        *string `toml:"fg"`
	Bg        *string `toml:"bg"`
	Bold      *bool   `toml:"bold"`
	Italic    *bool   `toml:"italic"`
	Underline *bool   `toml:"underline"`
	Reverse   *bool   `toml:"reverse"`
}

type themeFile struct {
	Name    string              `toml:"name"`
	IsDark  bool                `toml:"is_dark"`
	Extends string              `toml:"extends"` // built-in theme to start from
	Styles  map[string]styleDef `toml:"styles"`
}

// LoadThemeFromFile reads a TOML theme. The file name (without extension) is
// used when the file has no name.
func LoadThemeFromFile(filePath string) (*Theme, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file '%s': %w", filePath, err)
	}
	fallback := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
	theme, err := ParseTheme(string(data), fallback)
	if err != nil {
		return nil, fmt.Errorf("theme file '%s': %w", filePath, err)
	}
	return theme, nil
}

// ParseTheme builds a Theme from TOML source. Styles other than Default
// inherit unset attributes from the theme's Default style.
func ParseTheme(src, fallbackName string) (*Theme, error) {
	var tf themeFile
	md, err := toml.Decode(src, &tf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		logger.Warnf("Theme '%s': unrecognized keys: %v", tf.Name, undecoded)
	}
	if tf.Name == "" {
		tf.Name = fallbackName
	}

	theme := &Theme{Name: tf.Name, IsDark: tf.IsDark, Styles: make(map[string]tcell.Style)}

	switch strings.ToLower(tf.Extends) {
	case "":
	case strings.ToLower(JotDark.Name):
		copyStyles(theme, JotDark)
	case strings.ToLower(JotLight.Name):
		copyStyles(theme, JotLight)
	default:
		return nil, fmt.Errorf("unknown base theme '%s'", tf.Extends)
	}

	base, ok := theme.Styles[StyleDefault]
	if !ok {
		base = tcell.StyleDefault
	}
	if def, ok := tf.Styles[StyleDefault]; ok {
		if base, err = applyStyleDef(def, base); err != nil {
			return nil, fmt.Errorf("style 'Default': %w", err)
		}
	}
	theme.Styles[StyleDefault] = base

	for name, def := range tf.Styles {
		if name == StyleDefault {
			continue
		}
		inherit := base
		if existing, ok := theme.Styles[name]; ok {
			inherit = existing
		}
		style, err := applyStyleDef(def, inherit)
		if err != nil {
			logger.Warnf("Theme '%s': skipping style '%s': %v", theme.Name, name, err)
			continue
		}
		theme.Styles[name] = style
	}

	logger.DebugTagf("theme", "parsed theme '%s' with %d styles", theme.Name, len(theme.Styles))
	return theme, nil
}

func copyStyles(dst, src *Theme) {
	for k, v := range src.Styles {
		dst.Styles[k] = v
	}
}

func applyStyleDef(def styleDef, style tcell.Style) (tcell.Style, error) {
	if def.Fg != nil {
		color, err := parseColorString(*def.Fg)
		if err != nil {
			return style, fmt.Errorf("invalid foreground: %w", err)
		}
		style = style.Foreground(color)
	}
	if def.Bg != nil {
		color, err := parseColorString(*def.Bg)
		if err != nil {
			return style, fmt.Errorf("invalid background: %w", err)
		}
		style = style.Background(color)
	}
	if def.Bold != nil {
		style = style.Bold(*def.Bold)
	}
	if def.Italic != nil {
		style = style.Italic(*def.Italic)
	}
	if def.Underline != nil {
		style = style.Underline(*def.Underline)
	}
	if def.Reverse != nil {
		style = style.Reverse(*def.Reverse)
	}
	return style, nil
}

// parseColorString accepts #RRGGBB, "reset", "default" and tcell color names.
func parseColorString(s string) (tcell.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case strings.HasPrefix(s, "#"):
		if len(s) != 7 {
			return tcell.ColorDefault, fmt.Errorf("invalid hex color format '%s', must be #RRGGBB", s)
		}
		val, err := strconv.ParseInt(s[1:], 16, 32)
		if err != nil {
			return tcell.ColorDefault, fmt.Errorf("invalid hex value '%s': %w", s, err)
		}
		return tcell.NewHexColor(int32(val)), nil
	case s == "reset":
		return tcell.ColorReset, nil
	case s == "default":
		return tcell.ColorDefault, nil
	}

	if color, ok := tcell.ColorNames[s]; ok {
		return color, nil
	}
	return tcell.ColorDefault, fmt.Errorf("unknown color '%s'", s)
}
