// Package pitchmd parses the small Markdown dialect used by pitch pages,
// comments and profiles into a structured document.
//
// The dialect is flat: headings (#, ##, ###), horizontal rules, single-line
// blockquotes, bullet and numbered lists, fenced code blocks and paragraphs.
// Inline content supports images, links, **bold**, *italic*, __underline__
// and `code`. Nested blocks, tables, footnotes and raw HTML are not part of
// the dialect.
//
// Core properties:
//   - Total: every input produces a document, malformed markup degrades to text
//   - Linear time in the input length, including pathological delimiter runs
//   - No shared state: Render is safe to call from many goroutines
//   - A ContentBlockingPolicy replaces images, links and inline code with
//     inert markers for untrusted surfaces
//
// Example:
//
//	doc := pitchmd.Render(src, pitchmd.WithPolicy(pitchmd.Untrusted()))
//	for _, block := range doc.Blocks {
//		switch b := block.(type) {
//		case pitchmd.Heading:
//			fmt.Println(b.Level, b.Inline)
//		case pitchmd.Paragraph:
//			fmt.Println(b.Inline)
//		}
//	}
//
// Documents can be written as HTML (WriteHTML), JSON (WriteJSON), themed
// terminal text (WriteANSI) or plain text (Document.PlainText). Print and
// PreviewHandler wire those to readers, writers and HTTP.
package pitchmd
