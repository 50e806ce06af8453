package pitchmd

import "strings"

// StyleDescriptor describes how a fenced code block is presented. It is
// chosen from the fence's language tag alone and never affects parsing.
type StyleDescriptor struct {
	BackgroundColor string `json:"backgroundColor"`
	FontFamily      string `json:"fontFamily"`
	Padding         string `json:"padding"`
	BorderRadius    string `json:"borderRadius"`
	OverflowPolicy  string `json:"overflow"`
	TextColor       string `json:"color"`
}

const (
	codeBackground   = "#1e1e2e"
	codeFontFamily   = "ui-monospace, SFMono-Regular, Menlo, Consolas, monospace"
	codePadding      = "12px"
	codeBorderRadius = "6px"
	codeOverflow     = "auto"
	codeDefaultColor = "#cdd6f4"
)

// codeColors is keyed by the exact language tag; lookups are case-sensitive.
var codeColors = map[string]string{
	"cpp":        "#f38ba8",
	"c++":        "#f38ba8",
	"java":       "#fab387",
	"js":         "#f9e2af",
	"javascript": "#f9e2af",
	"html":       "#a6e3a1",
	"ts":         "#89b4fa",
	"typescript": "#89b4fa",
	"go":         "#94e2d5",
	"python":     "#74c7ec",
	"py":         "#74c7ec",
	"css":        "#cba6f7",
	"json":       "#f5c2e7",
	"sh":         "#b4befe",
	"bash":       "#b4befe",
}

// ResolveCodeStyle returns the presentation style for a fence language tag.
// Unknown and empty tags get the default style.
func ResolveCodeStyle(language string) StyleDescriptor {
	style := StyleDescriptor{
		BackgroundColor: codeBackground,
		FontFamily:      codeFontFamily,
		Padding:         codePadding,
		BorderRadius:    codeBorderRadius,
		OverflowPolicy:  codeOverflow,
		TextColor:       codeDefaultColor,
	}
	if color, ok := codeColors[language]; ok {
		style.TextColor = color
	}
	return style
}

// CSS renders the descriptor as an inline style attribute value.
func (d StyleDescriptor) CSS() string {
	var b strings.Builder
	decl := func(prop, value string) {
		if value == "" {
			return
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(prop)
		b.WriteString(": ")
		b.WriteString(value)
		b.WriteByte(';')
	}
	decl("background-color", d.BackgroundColor)
	decl("color", d.TextColor)
	decl("font-family", d.FontFamily)
	decl("padding", d.Padding)
	decl("border-radius", d.BorderRadius)
	decl("overflow-x", d.OverflowPolicy)
	return b.String()
}
