package pitchmd

import (
	"strings"
	"unicode/utf8"
)

// PlainText returns the visible text of the document, one line per block
// line, without Markdown delimiters or URLs. Blocked code contributes
// nothing; blocked images and links keep their alt text and labels.
func (d Document) PlainText() string {
	var b strings.Builder
	for _, block := range d.Blocks {
		writeBlockText(&b, block)
	}
	return b.String()
}

// TextLength returns the number of runes in PlainText, excluding line breaks.
func (d Document) TextLength() int {
	text := d.PlainText()
	return utf8.RuneCountInString(text) - strings.Count(text, "\n")
}

func writeBlockText(b *strings.Builder, block Block) {
	switch blk := block.(type) {
	case Heading:
		writeInlineText(b, blk.Inline)
		b.WriteByte('\n')
	case HorizontalRule:
	case Blockquote:
		writeInlineText(b, blk.Inline)
		b.WriteByte('\n')
	case UnorderedList:
		for _, item := range blk.Items {
			writeInlineText(b, item)
			b.WriteByte('\n')
		}
	case OrderedList:
		for _, item := range blk.Items {
			writeInlineText(b, item.Inline)
			b.WriteByte('\n')
		}
	case CodeBlock:
		for _, line := range blk.Lines {
			b.WriteString(line)
			b.WriteByte('\n')
		}
	case Paragraph:
		writeInlineText(b, blk.Inline)
		b.WriteByte('\n')
	}
}

func writeInlineText(b *strings.Builder, nodes []Inline) {
	for _, node := range nodes {
		b.WriteString(inlineText(node))
	}
}

func inlineText(node Inline) string {
	switch n := node.(type) {
	case Text:
		return n.Content
	case Image:
		return n.AltText
	case BlockedImage:
		return n.AltText
	case Link:
		return n.Label
	case BlockedLink:
		return n.Label
	case Bold:
		return n.Content
	case Italic:
		return n.Content
	case Underline:
		return n.Content
	case InlineCode:
		return n.Content
	}
	return ""
}
