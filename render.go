package pitchmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/muesli/reflow/wordwrap"
)

// Render parses Markdown into a Document. Without WithPolicy nothing is
// blocked. Every call is independent, so Render is safe for concurrent use.
func Render(markdown string, opts ...RenderOption) Document {
	cfg := newRenderConfig(opts)
	return render(markdown, cfg)
}

func render(markdown string, cfg renderConfig) Document {
	if cfg.stripFrontMatter {
		markdown = stripFrontMatter(markdown)
	}
	return Document{Blocks: parseBlocks(markdown, cfg.policy)}
}

// ErrUnknownFormat reports an unsupported output format.
var ErrUnknownFormat = errors.New("unknown output format")

// Format selects the presentation written by Print.
type Format uint8

const (
	// FormatANSI writes themed terminal output.
	FormatANSI Format = iota
	// FormatHTML writes an HTML fragment.
	FormatHTML
	// FormatJSON writes the document tree as JSON.
	FormatJSON
	// FormatText writes visible text only.
	FormatText
)

func (f Format) String() string {
	switch f {
	case FormatANSI:
		return "ansi"
	case FormatHTML:
		return "html"
	case FormatJSON:
		return "json"
	case FormatText:
		return "text"
	}
	return "unknown"
}

// ParseFormat parses "ansi", "html", "json" or "text".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "ansi", "terminal":
		return FormatANSI, nil
	case "html":
		return FormatHTML, nil
	case "json":
		return FormatJSON, nil
	case "text", "plain":
		return FormatText, nil
	}
	return 0, fmt.Errorf("format %q: %w", s, ErrUnknownFormat)
}

// PrintRequest configures Print.
type PrintRequest struct {
	Reader  io.Reader
	Writer  io.Writer
	Format  Format
	Width   int
	Theme   Theme
	Options []RenderOption
}

// Print reads Markdown, validates it, renders it and writes the requested
// presentation.
func Print(req PrintRequest) error {
	if req.Reader == nil {
		return fmt.Errorf("print: reader is nil")
	}
	if req.Writer == nil {
		return fmt.Errorf("print: writer is nil")
	}
	src, err := io.ReadAll(req.Reader)
	if err != nil {
		return fmt.Errorf("print: read: %w", err)
	}
	if err := ValidateInput(src); err != nil {
		return fmt.Errorf("print: %w", err)
	}
	opts := make([]RenderOption, 0, len(req.Options)+2)
	opts = append(opts, req.Options...)
	if req.Width > 0 {
		opts = append(opts, WithWidth(req.Width))
	}
	if req.Theme != nil {
		opts = append(opts, WithTheme(req.Theme))
	}
	cfg := newRenderConfig(opts)
	doc := render(string(src), cfg)
	switch req.Format {
	case FormatANSI:
		err = writeANSI(req.Writer, doc, cfg)
	case FormatHTML:
		err = WriteHTML(req.Writer, doc)
	case FormatJSON:
		err = WriteJSON(req.Writer, doc)
	case FormatText:
		text := stripControl(doc.PlainText())
		if cfg.width > 0 {
			text = wordwrap.String(text, cfg.width)
		}
		_, err = io.WriteString(req.Writer, text)
	default:
		return fmt.Errorf("print: %w", ErrUnknownFormat)
	}
	if err != nil {
		return fmt.Errorf("print: write %s: %w", req.Format, err)
	}
	return nil
}
