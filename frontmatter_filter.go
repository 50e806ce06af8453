package pitchmd

import "strings"

// stripFrontMatter drops a leading front-matter block delimited by ---, +++
// or ;;; lines. The block is only recognized when its first line looks like
// metadata and a closing delimiter exists; otherwise src is returned
// unchanged so a leading "---" still parses as a horizontal rule.
func stripFrontMatter(src string) string {
	openLine, rest, ok := cutLine(src)
	if !ok {
		return src
	}
	delim, isFrontMatter := parseOpeningFrontMatterDelimiter(openLine)
	if !isFrontMatter {
		return src
	}
	firstLine, _, ok := cutLine(rest)
	if !ok || !frontMatterMetadataLikely(firstLine) {
		return src
	}
	body, found := skipPastClosingDelimiter(rest, delim)
	if !found {
		return src
	}
	return body
}

// cutLine splits off the first line, without its line ending. ok is false
// when src is empty.
func cutLine(src string) (line, rest string, ok bool) {
	if src == "" {
		return "", "", false
	}
	line, rest, found := strings.Cut(src, "\n")
	if !found {
		rest = ""
	}
	return strings.TrimSuffix(line, "\r"), rest, true
}

func parseOpeningFrontMatterDelimiter(line string) (string, bool) {
	trimmed := strings.TrimSpace(trimBOM(line))
	switch trimmed {
	case "---", "+++", ";;;":
		return trimmed, true
	}
	return "", false
}

func frontMatterMetadataLikely(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		return true
	}
	return strings.ContainsAny(trimmed, ":=")
}

func skipPastClosingDelimiter(src, delim string) (string, bool) {
	for {
		line, rest, ok := cutLine(src)
		if !ok {
			return "", false
		}
		if strings.TrimSpace(line) == delim {
			return rest, true
		}
		src = rest
	}
}

func trimBOM(s string) string {
	return strings.TrimPrefix(s, "\ufeff")
}
