package pitchmd

import (
	"encoding/json"
	"io"
)

type jsonDocument struct {
	Blocks []jsonBlock `json:"blocks"`
}

type jsonBlock struct {
	Type     string           `json:"type"`
	Level    int              `json:"level,omitempty"`
	Inline   []jsonInline     `json:"inline,omitempty"`
	Items    any              `json:"items,omitempty"`
	Language string           `json:"language,omitempty"`
	Lines    []string         `json:"lines,omitempty"`
	Style    *StyleDescriptor `json:"style,omitempty"`
}

type jsonOrderedItem struct {
	Label  string       `json:"label"`
	Inline []jsonInline `json:"inline"`
}

type jsonInline struct {
	Type      string `json:"type"`
	Content   string `json:"content,omitempty"`
	AltText   string `json:"alt,omitempty"`
	SourceURL string `json:"src,omitempty"`
	Label     string `json:"label,omitempty"`
	TargetURL string `json:"href,omitempty"`
}

// MarshalJSON encodes the document with a "type" discriminator on every
// block and inline node.
func (d Document) MarshalJSON() ([]byte, error) {
	out := jsonDocument{Blocks: make([]jsonBlock, 0, len(d.Blocks))}
	for _, block := range d.Blocks {
		out.Blocks = append(out.Blocks, toJSONBlock(block))
	}
	return json.Marshal(out)
}

// WriteJSON writes the document as indented JSON followed by a newline.
func WriteJSON(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func toJSONBlock(block Block) jsonBlock {
	jb := jsonBlock{Type: block.Kind().String()}
	switch b := block.(type) {
	case Heading:
		jb.Level = b.Level
		jb.Inline = toJSONInlines(b.Inline)
	case Blockquote:
		jb.Inline = toJSONInlines(b.Inline)
	case UnorderedList:
		items := make([][]jsonInline, 0, len(b.Items))
		for _, item := range b.Items {
			items = append(items, toJSONInlines(item))
		}
		jb.Items = items
	case OrderedList:
		items := make([]jsonOrderedItem, 0, len(b.Items))
		for _, item := range b.Items {
			items = append(items, jsonOrderedItem{Label: item.Label, Inline: toJSONInlines(item.Inline)})
		}
		jb.Items = items
	case CodeBlock:
		jb.Language = b.Language
		jb.Lines = b.Lines
		style := b.Style
		jb.Style = &style
	case Paragraph:
		jb.Inline = toJSONInlines(b.Inline)
	}
	return jb
}

func toJSONInlines(nodes []Inline) []jsonInline {
	out := make([]jsonInline, 0, len(nodes))
	for _, node := range nodes {
		ji := jsonInline{Type: node.Kind().String()}
		switch n := node.(type) {
		case Text:
			ji.Content = n.Content
		case Image:
			ji.AltText, ji.SourceURL = n.AltText, n.SourceURL
		case BlockedImage:
			ji.AltText = n.AltText
		case Link:
			ji.Label, ji.TargetURL = n.Label, n.TargetURL
		case BlockedLink:
			ji.Label = n.Label
		case Bold:
			ji.Content = n.Content
		case Italic:
			ji.Content = n.Content
		case Underline:
			ji.Content = n.Content
		case InlineCode:
			ji.Content = n.Content
		}
		out = append(out, ji)
	}
	return out
}
