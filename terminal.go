package pitchmd

import (
	"io"
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/indent"
)

const (
	defaultRuleWidth = 40
	codeIndent       = 2
)

// WriteANSI writes the document as themed terminal text. Width, theme,
// OSC 8 links and code highlighting come from the options; the content
// policy has already been applied by Render.
func WriteANSI(w io.Writer, doc Document, opts ...RenderOption) error {
	return writeANSI(w, doc, newRenderConfig(opts))
}

func writeANSI(w io.Writer, doc Document, cfg renderConfig) error {
	t := terminalWriter{cfg: cfg, styles: cfg.theme.Styles()}
	for i, block := range doc.Blocks {
		if i > 0 {
			t.out.WriteByte('\n')
		}
		t.block(block)
	}
	_, err := io.WriteString(w, t.out.String())
	return err
}

// termPiece is a run of text in a single style. href marks link text.
type termPiece struct {
	text  string
	style Style
	href  string
}

type termWord struct {
	pieces []termPiece
	width  int
}

type terminalWriter struct {
	cfg    renderConfig
	styles Styles
	out    strings.Builder
}

func (t *terminalWriter) block(block Block) {
	switch b := block.(type) {
	case Heading:
		level := b.Level
		if level < 1 || level > len(t.styles.Heading) {
			level = 1
		}
		base := t.styles.Heading[level-1]
		pieces := append([]termPiece{{text: strings.Repeat("#", level) + " ", style: base}}, t.inlinePieces(b.Inline, base)...)
		t.wrapped(pieces, Style{}, "", "")
	case HorizontalRule:
		width := t.cfg.width
		if width <= 0 {
			width = defaultRuleWidth
		}
		t.writePiece(termPiece{text: strings.Repeat("─", width), style: t.styles.ThematicBreak})
		t.out.WriteByte('\n')
	case Blockquote:
		t.wrapped(t.inlinePieces(b.Inline, t.styles.Quote), t.styles.Quote, "│ ", "│ ")
	case UnorderedList:
		for _, item := range b.Items {
			t.wrapped(t.inlinePieces(item, t.styles.Text), t.styles.ListMarker, "• ", "  ")
		}
	case OrderedList:
		for _, item := range b.Items {
			marker := item.Label + ". "
			t.wrapped(t.inlinePieces(item.Inline, t.styles.Text), t.styles.ListMarker, marker, strings.Repeat(" ", len(marker)))
		}
	case CodeBlock:
		t.code(b)
	case Paragraph:
		t.wrapped(t.inlinePieces(b.Inline, t.styles.Text), Style{}, "", "")
	}
}

func (t *terminalWriter) inlinePieces(nodes []Inline, base Style) []termPiece {
	pieces := make([]termPiece, 0, len(nodes))
	for _, node := range nodes {
		switch n := node.(type) {
		case Text:
			pieces = append(pieces, termPiece{text: n.Content, style: base})
		case Bold:
			pieces = append(pieces, termPiece{text: n.Content, style: t.styles.Bold})
		case Italic:
			pieces = append(pieces, termPiece{text: n.Content, style: t.styles.Italic})
		case Underline:
			pieces = append(pieces, termPiece{text: n.Content, style: t.styles.Underline})
		case InlineCode:
			pieces = append(pieces, termPiece{text: n.Content, style: t.styles.CodeInline})
		case Link:
			pieces = t.appendLink(pieces, n.Label, n.TargetURL)
		case Image:
			pieces = t.appendLink(pieces, imageLabel(n.AltText), n.SourceURL)
		case BlockedLink:
			pieces = append(pieces, termPiece{text: n.Label, style: t.styles.Blocked})
		case BlockedImage:
			pieces = append(pieces, termPiece{text: imageLabel(n.AltText), style: t.styles.Blocked})
		case BlockedCode:
			pieces = append(pieces, termPiece{text: "[code blocked]", style: t.styles.Blocked})
		}
	}
	return pieces
}

func imageLabel(alt string) string {
	if alt == "" {
		return "[image]"
	}
	return "[image: " + alt + "]"
}

func (t *terminalWriter) appendLink(pieces []termPiece, label, url string) []termPiece {
	if hasControl(url) {
		return append(pieces, termPiece{text: label, style: t.styles.LinkText})
	}
	if t.cfg.osc8 && url != "" {
		return append(pieces, termPiece{text: label, style: t.styles.LinkText, href: url})
	}
	pieces = append(pieces, termPiece{text: label, style: t.styles.LinkText})
	if url == "" {
		return pieces
	}
	return append(pieces, termPiece{text: " (" + fitURL(url, t.cfg.width/2) + ")", style: t.styles.LinkURL})
}

// wrapped writes pieces word-wrapped to the configured width. first
// prefixes the first line and rest every following line.
func (t *terminalWriter) wrapped(pieces []termPiece, prefixStyle Style, first, rest string) {
	width := t.cfg.width
	if width > 0 {
		width -= ansi.PrintableRuneWidth(first)
		if width < 1 {
			width = 1
		}
	}
	lines := wrapWords(splitWords(pieces), width)
	if len(lines) == 0 {
		lines = [][]termWord{nil}
	}
	for i, line := range lines {
		prefix := rest
		if i == 0 {
			prefix = first
		}
		if prefix != "" {
			t.writePiece(termPiece{text: prefix, style: prefixStyle})
		}
		for j, word := range line {
			if j > 0 {
				t.out.WriteByte(' ')
			}
			for _, p := range word.pieces {
				t.writePiece(p)
			}
		}
		t.out.WriteByte('\n')
	}
}

func (t *terminalWriter) writePiece(p termPiece) {
	if p.href != "" {
		t.out.WriteString(osc8Start)
		t.out.WriteString(p.href)
		t.out.WriteString("\x1b\\")
	}
	if p.style.Prefix != "" {
		t.out.WriteString(p.style.Prefix)
		t.out.WriteString(p.text)
		t.out.WriteString(ansiReset)
	} else {
		t.out.WriteString(p.text)
	}
	if p.href != "" {
		t.out.WriteString(osc8End)
	}
}

// splitWords breaks pieces at spaces. A word may span several pieces, as in
// "**bold**," where the comma follows the bold run directly.
func splitWords(pieces []termPiece) []termWord {
	var words []termWord
	var cur termWord
	flush := func() {
		if len(cur.pieces) > 0 {
			words = append(words, cur)
			cur = termWord{}
		}
	}
	for _, p := range pieces {
		text := stripControl(p.text)
		for text != "" {
			i := strings.IndexByte(text, ' ')
			if i < 0 {
				cur.add(p, text)
				break
			}
			if i > 0 {
				cur.add(p, text[:i])
			}
			flush()
			text = text[i+1:]
		}
	}
	flush()
	return words
}

func (w *termWord) add(p termPiece, text string) {
	p.text = text
	w.pieces = append(w.pieces, p)
	w.width += ansi.PrintableRuneWidth(text)
}

// wrapWords fills lines greedily. Words wider than width get a line of
// their own. A width of zero or less disables wrapping.
func wrapWords(words []termWord, width int) [][]termWord {
	if len(words) == 0 {
		return nil
	}
	if width <= 0 {
		return [][]termWord{words}
	}
	var lines [][]termWord
	var line []termWord
	lineWidth := 0
	for _, word := range words {
		if len(line) > 0 && lineWidth+1+word.width > width {
			lines = append(lines, line)
			line = nil
			lineWidth = 0
		}
		if len(line) > 0 {
			lineWidth++
		}
		line = append(line, word)
		lineWidth += word.width
	}
	return append(lines, line)
}

func (t *terminalWriter) code(b CodeBlock) {
	if len(b.Lines) == 0 {
		t.out.WriteByte('\n')
		return
	}
	lines := make([]string, len(b.Lines))
	for i, line := range b.Lines {
		lines[i] = stripControl(line)
	}
	source := strings.Join(lines, "\n")
	body, ok := "", false
	if t.cfg.highlight != "" {
		body, ok = highlightCode(source, b.Language, t.cfg.highlight, len(lines))
	}
	if !ok {
		var color string
		if t.styles.Text.Prefix != "" {
			color = fgHex(b.Style.TextColor)
		}
		var sb strings.Builder
		for i, line := range lines {
			if i > 0 {
				sb.WriteByte('\n')
			}
			if color != "" {
				sb.WriteString(color)
				sb.WriteString(line)
				sb.WriteString(ansiReset)
			} else {
				sb.WriteString(line)
			}
		}
		body = sb.String()
	}
	t.out.WriteString(indent.String(body, codeIndent))
	t.out.WriteByte('\n')
}

const maxCachedLexers = 256

// lexerCache holds tags that resolved to a lexer, up to maxCachedLexers.
var (
	lexerCache   = make(map[string]chroma.Lexer)
	lexerCacheMu sync.RWMutex
)

func lexerFor(language string) chroma.Lexer {
	if language == "" {
		return nil
	}
	lexerCacheMu.RLock()
	lexer, ok := lexerCache[language]
	lexerCacheMu.RUnlock()
	if ok {
		return lexer
	}
	lexer = lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Match("file." + language)
	}
	if lexer == nil {
		return nil
	}
	lexer = chroma.Coalesce(lexer)
	lexerCacheMu.Lock()
	if len(lexerCache) < maxCachedLexers {
		lexerCache[language] = lexer
	}
	lexerCacheMu.Unlock()
	return lexer
}

// highlightCode colors source with chroma. The result has exactly lines
// lines; ok is false when no lexer matches the language.
func highlightCode(source, language, styleName string, lines int) (string, bool) {
	lexer := lexerFor(language)
	if lexer == nil {
		return "", false
	}
	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return "", false
	}
	var b strings.Builder
	if err := formatters.Get("terminal16m").Format(&b, styles.Get(styleName), iterator); err != nil {
		return "", false
	}
	out := strings.Split(b.String(), "\n")
	if len(out) > lines {
		out = out[:lines]
	}
	return strings.Join(out, "\n") + ansiReset, true
}
