package pitchmd

import (
	"strings"
	"testing"
)

func TestResolveCodeStyle(t *testing.T) {
	t.Parallel()
	def := ResolveCodeStyle("")
	if def.TextColor != codeDefaultColor {
		t.Fatalf("expected default color for empty tag, got %q", def.TextColor)
	}
	if got := ResolveCodeStyle("brainfuck"); got != def {
		t.Fatalf("unknown tag should resolve to the default style, got %#v", got)
	}

	aliases := [][2]string{{"cpp", "c++"}, {"js", "javascript"}, {"ts", "typescript"}, {"py", "python"}, {"sh", "bash"}}
	for _, pair := range aliases {
		if ResolveCodeStyle(pair[0]) != ResolveCodeStyle(pair[1]) {
			t.Fatalf("expected %q and %q to share a style", pair[0], pair[1])
		}
	}

	seen := map[string]string{}
	for _, tag := range []string{"cpp", "java", "js", "html"} {
		style := ResolveCodeStyle(tag)
		if style.TextColor == def.TextColor {
			t.Fatalf("expected %q to have its own color", tag)
		}
		if other, ok := seen[style.TextColor]; ok {
			t.Fatalf("%q and %q share color %s", tag, other, style.TextColor)
		}
		seen[style.TextColor] = tag
		if style.BackgroundColor != def.BackgroundColor || style.FontFamily != def.FontFamily ||
			style.Padding != def.Padding || style.BorderRadius != def.BorderRadius || style.OverflowPolicy != def.OverflowPolicy {
			t.Fatalf("%q changed a shared presentation field: %#v", tag, style)
		}
	}
}

func TestResolveCodeStyleIsCaseSensitive(t *testing.T) {
	t.Parallel()
	if ResolveCodeStyle("JS").TextColor != codeDefaultColor {
		t.Fatalf("expected JS (upper case) to fall back to the default color")
	}
	if ResolveCodeStyle("js").TextColor == codeDefaultColor {
		t.Fatalf("expected js to have a language color")
	}
}

func TestStyleDescriptorCSS(t *testing.T) {
	t.Parallel()
	css := ResolveCodeStyle("go").CSS()
	for _, want := range []string{
		"background-color: #1e1e2e;",
		"color: " + codeColors["go"] + ";",
		"font-family: ui-monospace",
		"padding: 12px;",
		"border-radius: 6px;",
		"overflow-x: auto;",
	} {
		if !strings.Contains(css, want) {
			t.Fatalf("css %q missing %q", css, want)
		}
	}
	if got := (StyleDescriptor{}).CSS(); got != "" {
		t.Fatalf("expected empty css for zero descriptor, got %q", got)
	}
}
