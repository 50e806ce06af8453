package pitchmd

import "strings"

// ParseBlocks parses a Markdown document into blocks without blocking any
// inline content. Use Render to apply a ContentBlockingPolicy.
func ParseBlocks(markdown string) []Block {
	return parseBlocks(markdown, ContentBlockingPolicy{})
}

func parseBlocks(markdown string, policy ContentBlockingPolicy) []Block {
	b := blockBuilder{policy: policy}
	for _, line := range splitLines(markdown) {
		b.addLine(line)
	}
	return b.finish()
}

// splitLines accepts both \n and \r\n line endings.
func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.Split(s, "\n")
}

type parseState uint8

const (
	stateDefault parseState = iota
	stateUnorderedList
	stateOrderedList
	stateCodeFence
)

var headingPrefixes = [...]struct {
	prefix string
	level  int
}{
	{"### ", 3},
	{"## ", 2},
	{"# ", 1},
}

// blockBuilder is the line scanner's accumulator. It is owned by a single
// parse call and never shared.
type blockBuilder struct {
	policy ContentBlockingPolicy
	state  parseState
	blocks []Block

	bullets [][]Inline
	ordered []OrderedItem

	fenceLanguage string
	fenceLines    []string
}

func (b *blockBuilder) addLine(line string) {
	if language, ok := parseFence(line); ok {
		if b.state == stateCodeFence {
			b.emit(CodeBlock{
				Language: b.fenceLanguage,
				Lines:    b.fenceLines,
				Style:    ResolveCodeStyle(b.fenceLanguage),
			})
			b.fenceLanguage = ""
			b.fenceLines = nil
			b.state = stateDefault
			return
		}
		b.closeList()
		b.state = stateCodeFence
		b.fenceLanguage = language
		b.fenceLines = make([]string, 0, 8)
		return
	}
	if b.state == stateCodeFence {
		b.fenceLines = append(b.fenceLines, line)
		return
	}

	trimmed := strings.TrimSpace(line)
	if isHorizontalRule(trimmed) {
		b.closeList()
		b.emit(HorizontalRule{})
		return
	}
	if level, text, ok := parseHeading(line); ok {
		b.closeList()
		b.emit(Heading{Level: level, Inline: b.inline(text)})
		return
	}
	if text, ok := strings.CutPrefix(line, "> "); ok {
		b.closeList()
		b.emit(Blockquote{Inline: b.inline(text)})
		return
	}
	if text, ok := strings.CutPrefix(line, "- "); ok {
		if b.state != stateUnorderedList {
			b.closeList()
			b.state = stateUnorderedList
		}
		b.bullets = append(b.bullets, b.inline(text))
		return
	}
	if label, text, ok := parseOrderedMarker(line); ok {
		if b.state != stateOrderedList {
			b.closeList()
			b.state = stateOrderedList
		}
		b.ordered = append(b.ordered, OrderedItem{Label: label, Inline: b.inline(text)})
		return
	}
	if trimmed == "" {
		b.closeList()
		return
	}
	b.closeList()
	b.emit(Paragraph{Inline: b.inline(line)})
}

// finish flushes an open list. An unterminated code fence is dropped
// together with its collected lines.
func (b *blockBuilder) finish() []Block {
	b.closeList()
	if b.state == stateCodeFence {
		b.fenceLines = nil
		b.state = stateDefault
	}
	return b.blocks
}

func (b *blockBuilder) closeList() {
	switch b.state {
	case stateUnorderedList:
		if len(b.bullets) > 0 {
			b.emit(UnorderedList{Items: b.bullets})
		}
		b.bullets = nil
		b.state = stateDefault
	case stateOrderedList:
		if len(b.ordered) > 0 {
			b.emit(OrderedList{Items: b.ordered})
		}
		b.ordered = nil
		b.state = stateDefault
	}
}

func (b *blockBuilder) emit(block Block) {
	b.blocks = append(b.blocks, block)
}

func (b *blockBuilder) inline(text string) []Inline {
	return TokenizeInline(text, b.policy)
}

// parseFence reports whether line is a fence delimiter: three backticks
// followed by an optional language tag containing no backticks. The tag
// ends at the first whitespace; anything after it is ignored.
func parseFence(line string) (string, bool) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(line), "```")
	if !ok || strings.Contains(rest, "`") {
		return "", false
	}
	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return "", true
	}
	return fields[0], true
}

func isHorizontalRule(trimmed string) bool {
	switch trimmed {
	case "---", "***", "___":
		return true
	}
	return false
}

func parseHeading(line string) (int, string, bool) {
	for _, h := range headingPrefixes {
		if text, ok := strings.CutPrefix(line, h.prefix); ok {
			return h.level, text, true
		}
	}
	return 0, "", false
}

// parseOrderedMarker matches "<digits>. " and returns the digits verbatim.
func parseOrderedMarker(line string) (string, string, bool) {
	i := 0
	for i < len(line) && line[i] >= '0' && line[i] <= '9' {
		i++
	}
	if i == 0 {
		return "", "", false
	}
	text, ok := strings.CutPrefix(line[i:], ". ")
	if !ok {
		return "", "", false
	}
	return line[:i], text, true
}
