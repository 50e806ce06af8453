package pitchmd

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// commonMarkShape describes top-level blocks as CommonMark sees them, for
// the subset of inputs where the pitch dialect and CommonMark agree.
func commonMarkShape(t *testing.T, src string) []string {
	t.Helper()
	source := []byte(src)
	doc := goldmark.New().Parser().Parse(text.NewReader(source))
	var shape []string
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			shape = append(shape, fmt.Sprintf("heading/%d", node.Level))
		case *ast.ThematicBreak:
			shape = append(shape, "horizontal_rule")
		case *ast.Blockquote:
			shape = append(shape, "blockquote")
		case *ast.List:
			kind := "unordered_list"
			if node.IsOrdered() {
				kind = "ordered_list"
			}
			shape = append(shape, fmt.Sprintf("%s/%d", kind, node.ChildCount()))
		case *ast.FencedCodeBlock:
			shape = append(shape, fmt.Sprintf("code_block/%s/%d", node.Language(source), node.Lines().Len()))
		case *ast.Paragraph:
			shape = append(shape, "paragraph")
		default:
			t.Fatalf("unexpected CommonMark node %s in %q", n.Kind(), src)
		}
	}
	return shape
}

func dialectShape(src string) []string {
	var shape []string
	for _, block := range ParseBlocks(src) {
		switch b := block.(type) {
		case Heading:
			shape = append(shape, fmt.Sprintf("heading/%d", b.Level))
		case UnorderedList:
			shape = append(shape, fmt.Sprintf("unordered_list/%d", len(b.Items)))
		case OrderedList:
			shape = append(shape, fmt.Sprintf("ordered_list/%d", len(b.Items)))
		case CodeBlock:
			shape = append(shape, fmt.Sprintf("code_block/%s/%d", b.Language, len(b.Lines)))
		default:
			shape = append(shape, block.Kind().String())
		}
	}
	return shape
}

func TestBlockStructureAgreesWithCommonMark(t *testing.T) {
	t.Parallel()
	inputs := []string{
		"# Title\n\nSome text",
		"## Two\n\n### Three",
		"- a\n- b\n\nNext",
		"1. one\n2. two\n3. three",
		"> quoted line",
		"---\n\n***\n\n___",
		"```js\nconsole.log(1)\n```",
		"```\nline one\n\nline three\n```\n\nafter",
		"Intro\n\n- item\n\n---\n\n> quote\n\n```go\nx := 1\n```",
		"#hashtag is not a heading",
		"1.no space is a paragraph",
	}
	for _, src := range inputs {
		want := commonMarkShape(t, src)
		got := dialectShape(src)
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("block structure differs for %q\n dialect: %v\n commonmark: %v", src, got, want)
		}
	}
}

func TestInlineEmphasisAgreesWithCommonMark(t *testing.T) {
	t.Parallel()
	src := []byte("**bold** and *italic* and `code`")
	doc := goldmark.New().Parser().Parse(text.NewReader(src))
	para := doc.FirstChild()
	var cm []string
	for n := para.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Emphasis:
			cm = append(cm, fmt.Sprintf("emphasis/%d", node.Level))
		case *ast.CodeSpan:
			cm = append(cm, "code")
		case *ast.Text:
			cm = append(cm, "text")
		}
	}
	var ours []string
	for _, node := range TokenizeInline(string(src), ContentBlockingPolicy{}) {
		switch node.(type) {
		case Bold:
			ours = append(ours, "emphasis/2")
		case Italic:
			ours = append(ours, "emphasis/1")
		default:
			ours = append(ours, node.Kind().String())
		}
	}
	if !reflect.DeepEqual(ours, cm) {
		t.Fatalf("inline structure differs\n dialect: %v\n commonmark: %v", ours, cm)
	}
}
