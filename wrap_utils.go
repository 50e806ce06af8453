package pitchmd

import (
	"strings"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"
)

func truncateWithEllipsis(text string, limit int) string {
	if ansi.PrintableRuneWidth(text) <= limit {
		return text
	}
	if limit <= 0 {
		return ""
	}
	return truncate.StringWithTail(text, uint(limit), "…")
}

// fitURL shortens url to limit columns, first by dropping the scheme and
// then by truncating. A limit of zero or less leaves url unchanged.
func fitURL(url string, limit int) string {
	if limit <= 0 || ansi.PrintableRuneWidth(url) <= limit {
		return url
	}
	if idx := strings.Index(url, "://"); idx != -1 {
		url = url[idx+3:]
	}
	return truncateWithEllipsis(url, limit)
}
