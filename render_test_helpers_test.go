package pitchmd

import (
	"bytes"
	"regexp"
	"testing"
)

var ansiRegexp = regexp.MustCompile("\x1b\\[[0-9;]*[A-Za-z]")
var osc8Regexp = regexp.MustCompile("\x1b\\]8;;.*?\x1b\\\\")

func stripANSI(s string) string {
	s = osc8Regexp.ReplaceAllString(s, "")
	s = ansiRegexp.ReplaceAllString(s, "")
	return s
}

var plainTheme = NewTheme("plain", Styles{})

func renderANSI(t *testing.T, src string, opts ...RenderOption) string {
	t.Helper()
	var out bytes.Buffer
	if err := WriteANSI(&out, Render(src, opts...), opts...); err != nil {
		t.Fatalf("write ansi: %v", err)
	}
	return out.String()
}
