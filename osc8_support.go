package pitchmd

import (
	"os"
	"strconv"
	"strings"
)

const (
	osc8Start = "\x1b]8;;"
	osc8End   = "\x1b]8;;\x1b\\"
)

var osc8TermPrograms = map[string]struct{}{
	"iTerm.app": {},
	"WezTerm":   {},
	"vscode":    {},
	"ghostty":   {},
}

// DetectOSC8Support reports whether the current terminal likely renders
// OSC 8 hyperlinks. OSC8=0 in the environment always disables them.
func DetectOSC8Support() bool {
	return detectOSC8(os.Getenv)
}

func detectOSC8(getenv func(string) string) bool {
	switch getenv("OSC8") {
	case "0":
		return false
	case "1":
		return true
	}
	if getenv("DOMTERM") != "" || getenv("WT_SESSION") != "" {
		return true
	}
	if _, ok := osc8TermPrograms[getenv("TERM_PROGRAM")]; ok {
		return true
	}
	if strings.Contains(strings.ToLower(getenv("TERM")), "kitty") {
		return true
	}
	if n, err := strconv.Atoi(getenv("VTE_VERSION")); err == nil && n >= 5000 {
		return true
	}
	return false
}
