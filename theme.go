package pitchmd

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

const (
	ansiReset     = "\x1b[0m"
	ansiBold      = "\x1b[1m"
	ansiFaint     = "\x1b[2m"
	ansiItalic    = "\x1b[3m"
	ansiUnderline = "\x1b[4m"
)

// Style describes a terminal style as an ANSI prefix sequence.
type Style struct {
	Prefix string
}

// Styles groups the semantic styles used by the terminal renderer.
type Styles struct {
	Text          Style
	Heading       [3]Style
	Bold          Style
	Italic        Style
	Underline     Style
	CodeInline    Style
	Quote         Style
	ListMarker    Style
	LinkText      Style
	LinkURL       Style
	Blocked       Style
	ThematicBreak Style
}

// Theme provides named styles for terminal rendering.
type Theme interface {
	Name() string
	Styles() Styles
}

type theme struct {
	name   string
	styles Styles
}

func (t theme) Name() string   { return t.name }
func (t theme) Styles() Styles { return t.styles }

// NewTheme returns a Theme from a Styles definition.
func NewTheme(name string, styles Styles) Theme {
	return theme{name: name, styles: styles}
}

func style(prefixes ...string) Style {
	var b strings.Builder
	for _, p := range prefixes {
		b.WriteString(p)
	}
	return Style{Prefix: b.String()}
}

// fgHex returns a 24-bit foreground sequence for a #rrggbb color, or "" if
// the color cannot be parsed.
func fgHex(hex string) string {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return ""
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", v>>16&0xff, v>>8&0xff, v&0xff)
}

type palette struct {
	text, h1, h2, h3    string
	bold, italic, under string
	code, quote, marker string
	link, url, blocked  string
	rule                string
}

func stylesFromPalette(p palette) Styles {
	return Styles{
		Text:          style(fgHex(p.text)),
		Heading:       [3]Style{style(ansiBold, fgHex(p.h1)), style(ansiBold, fgHex(p.h2)), style(ansiBold, fgHex(p.h3))},
		Bold:          style(ansiBold, fgHex(p.bold)),
		Italic:        style(ansiItalic, fgHex(p.italic)),
		Underline:     style(ansiUnderline, fgHex(p.under)),
		CodeInline:    style(fgHex(p.code)),
		Quote:         style(ansiItalic, fgHex(p.quote)),
		ListMarker:    style(fgHex(p.marker)),
		LinkText:      style(ansiUnderline, fgHex(p.link)),
		LinkURL:       style(ansiFaint, fgHex(p.url)),
		Blocked:       style(ansiFaint, fgHex(p.blocked)),
		ThematicBreak: style(fgHex(p.rule)),
	}
}

var (
	paletteDefault = palette{
		text: "#d0d0d0", h1: "#ff87d7", h2: "#87d7ff", h3: "#afd787",
		bold: "#ffffff", italic: "#d7d7af", under: "#d0d0d0",
		code: "#ffaf5f", quote: "#8a8a8a", marker: "#5fafff",
		link: "#5fd7ff", url: "#6c6c6c", blocked: "#767676", rule: "#585858",
	}
	paletteDracula = palette{
		text: "#f8f8f2", h1: "#ff79c6", h2: "#bd93f9", h3: "#8be9fd",
		bold: "#ffb86c", italic: "#f1fa8c", under: "#f8f8f2",
		code: "#50fa7b", quote: "#6272a4", marker: "#bd93f9",
		link: "#8be9fd", url: "#6272a4", blocked: "#6272a4", rule: "#44475a",
	}
	paletteNord = palette{
		text: "#d8dee9", h1: "#88c0d0", h2: "#81a1c1", h3: "#5e81ac",
		bold: "#eceff4", italic: "#ebcb8b", under: "#d8dee9",
		code: "#a3be8c", quote: "#4c566a", marker: "#81a1c1",
		link: "#8fbcbb", url: "#616e88", blocked: "#616e88", rule: "#434c5e",
	}
	paletteGruvbox = palette{
		text: "#ebdbb2", h1: "#fb4934", h2: "#fabd2f", h3: "#b8bb26",
		bold: "#fe8019", italic: "#d3869b", under: "#ebdbb2",
		code: "#8ec07c", quote: "#928374", marker: "#83a598",
		link: "#83a598", url: "#7c6f64", blocked: "#7c6f64", rule: "#504945",
	}
	paletteGithubLight = palette{
		text: "#24292f", h1: "#0550ae", h2: "#0a3069", h3: "#116329",
		bold: "#1f2328", italic: "#6639ba", under: "#24292f",
		code: "#cf222e", quote: "#57606a", marker: "#0969da",
		link: "#0969da", url: "#6e7781", blocked: "#8c959f", rule: "#d0d7de",
	}
	paletteSolarizedDark = palette{
		text: "#839496", h1: "#cb4b16", h2: "#b58900", h3: "#859900",
		bold: "#93a1a1", italic: "#6c71c4", under: "#839496",
		code: "#2aa198", quote: "#586e75", marker: "#268bd2",
		link: "#268bd2", url: "#586e75", blocked: "#586e75", rule: "#073642",
	}
)

var builtinThemes = map[string]Theme{
	"default":        theme{name: "default", styles: stylesFromPalette(paletteDefault)},
	"dracula":        theme{name: "dracula", styles: stylesFromPalette(paletteDracula)},
	"nord":           theme{name: "nord", styles: stylesFromPalette(paletteNord)},
	"gruvbox":        theme{name: "gruvbox", styles: stylesFromPalette(paletteGruvbox)},
	"github-light":   theme{name: "github-light", styles: stylesFromPalette(paletteGithubLight)},
	"solarized-dark": theme{name: "solarized-dark", styles: stylesFromPalette(paletteSolarizedDark)},
}

// AvailableThemes returns the names of built-in themes.
func AvailableThemes() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName returns a built-in theme by name.
func ThemeByName(name string) (Theme, bool) {
	if name == "" {
		return builtinThemes["default"], true
	}
	normalized := strings.ToLower(strings.TrimSpace(name))
	theme, ok := builtinThemes[normalized]
	return theme, ok
}

// DefaultTheme returns the default built-in theme.
func DefaultTheme() Theme {
	return builtinThemes["default"]
}
