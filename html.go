package pitchmd

import (
	"io"
	"net/url"
	"strings"
	"unicode"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ToHTML renders the document as an HTML fragment.
func ToHTML(doc Document) string {
	var b strings.Builder
	_ = WriteHTML(&b, doc)
	return b.String()
}

// WriteHTML writes the document as an HTML fragment, one top-level element
// per block. All text and attribute values are escaped. Links and images
// with unsafe URLs (javascript:, protocol-relative, control characters) are
// written as inert spans.
func WriteHTML(w io.Writer, doc Document) error {
	for _, block := range doc.Blocks {
		node := blockNode(block)
		if node == nil {
			continue
		}
		if err := html.Render(w, node); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
}

func textNode(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

func withChildren(n *html.Node, children ...*html.Node) *html.Node {
	for _, c := range children {
		n.AppendChild(c)
	}
	return n
}

var headingAtoms = [...]atom.Atom{atom.H1, atom.H1, atom.H2, atom.H3}

func blockNode(block Block) *html.Node {
	switch b := block.(type) {
	case Heading:
		level := b.Level
		if level < 1 || level >= len(headingAtoms) {
			level = 1
		}
		return withChildren(element(headingAtoms[level]), inlineNodes(b.Inline)...)
	case HorizontalRule:
		return element(atom.Hr)
	case Blockquote:
		return withChildren(element(atom.Blockquote), inlineNodes(b.Inline)...)
	case UnorderedList:
		ul := element(atom.Ul)
		for _, item := range b.Items {
			ul.AppendChild(withChildren(element(atom.Li), inlineNodes(item)...))
		}
		return ul
	case OrderedList:
		ol := element(atom.Ol)
		for _, item := range b.Items {
			ol.AppendChild(withChildren(element(atom.Li, attr("value", item.Label)), inlineNodes(item.Inline)...))
		}
		return ol
	case CodeBlock:
		var attrs []html.Attribute
		if b.Language != "" {
			attrs = append(attrs, attr("class", "language-"+b.Language))
		}
		code := withChildren(element(atom.Code, attrs...), textNode(strings.Join(b.Lines, "\n")))
		return withChildren(element(atom.Pre, attr("style", b.Style.CSS())), code)
	case Paragraph:
		return withChildren(element(atom.P), inlineNodes(b.Inline)...)
	}
	return nil
}

func inlineNodes(nodes []Inline) []*html.Node {
	out := make([]*html.Node, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, inlineNode(n))
	}
	return out
}

func blockedSpan(class, text string) *html.Node {
	return withChildren(element(atom.Span, attr("class", "blocked "+class)), textNode(text))
}

func inlineNode(node Inline) *html.Node {
	switch n := node.(type) {
	case Text:
		return textNode(n.Content)
	case Image:
		src, ok := sanitizeURL(n.SourceURL)
		if !ok {
			return blockedSpan("blocked-image", n.AltText)
		}
		return element(atom.Img, attr("src", src), attr("alt", n.AltText), attr("loading", "lazy"))
	case BlockedImage:
		return blockedSpan("blocked-image", n.AltText)
	case Link:
		href, ok := sanitizeURL(n.TargetURL)
		if !ok {
			return blockedSpan("blocked-link", n.Label)
		}
		return withChildren(element(atom.A, attr("href", href), attr("rel", "nofollow noopener noreferrer")), textNode(n.Label))
	case BlockedLink:
		return blockedSpan("blocked-link", n.Label)
	case Bold:
		return withChildren(element(atom.Strong), textNode(n.Content))
	case Italic:
		return withChildren(element(atom.Em), textNode(n.Content))
	case Underline:
		return withChildren(element(atom.U), textNode(n.Content))
	case InlineCode:
		return withChildren(element(atom.Code), textNode(n.Content))
	case BlockedCode:
		return blockedSpan("blocked-code", "[code blocked]")
	}
	return textNode("")
}

var safeSchemes = map[string]struct{}{
	"http":   {},
	"https":  {},
	"mailto": {},
}

// sanitizeURL accepts http, https and mailto URLs and scheme-less relative
// references. Protocol-relative URLs and any URL containing control or
// formatting runes are rejected.
func sanitizeURL(raw string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", false
	}
	for _, r := range trimmed {
		if unicode.IsControl(r) || unicode.Is(unicode.Cf, r) {
			return "", false
		}
	}
	if strings.HasPrefix(trimmed, "//") || strings.HasPrefix(trimmed, `\\`) {
		return "", false
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return "", false
	}
	if u.Scheme == "" {
		return trimmed, true
	}
	if _, ok := safeSchemes[strings.ToLower(u.Scheme)]; !ok {
		return "", false
	}
	return trimmed, true
}
