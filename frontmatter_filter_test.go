package pitchmd

import (
	"reflect"
	"strings"
	"testing"
)

func TestRenderOmitsFrontMatterAtStart(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		src      string
		contains []string
		omits    []string
	}{
		{
			name:     "yaml",
			src:      "---\ntitle: Post\ndate: 2026-02-09\n---\n\n# Hello\n\nBody.\n",
			contains: []string{"Hello", "Body."},
			omits:    []string{"title: Post", "date: 2026-02-09"},
		},
		{
			name:     "toml",
			src:      "+++\ntitle = \"Post\"\n+++\n\n# Hello\n",
			contains: []string{"Hello"},
			omits:    []string{"title = \"Post\""},
		},
		{
			name:     "json",
			src:      ";;;\n{\"title\": \"Post\"}\n;;;\n\n# Hello\n",
			contains: []string{"Hello"},
			omits:    []string{"\"title\": \"Post\""},
		},
		{
			name:     "bom and crlf",
			src:      "\ufeff---\r\ntitle: Post\r\n---\r\n# Hello\r\n",
			contains: []string{"Hello"},
			omits:    []string{"title: Post"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			out := Render(tc.src, WithStripFrontMatter(true)).PlainText()
			for _, want := range tc.contains {
				if !strings.Contains(out, want) {
					t.Fatalf("missing %q in output: %q", want, out)
				}
			}
			for _, bad := range tc.omits {
				if strings.Contains(out, bad) {
					t.Fatalf("unexpected %q in output: %q", bad, out)
				}
			}
		})
	}
}

func TestRenderKeepsFrontMatterByDefault(t *testing.T) {
	t.Parallel()
	doc := Render("---\ntitle: Post\n---\nBody")
	want := []Block{
		HorizontalRule{},
		Paragraph{Inline: plain("title: Post")},
		HorizontalRule{},
		Paragraph{Inline: plain("Body")},
	}
	if !reflect.DeepEqual(doc.Blocks, want) {
		t.Fatalf("unexpected blocks:\n got: %#v\nwant: %#v", doc.Blocks, want)
	}
}

func TestRenderFrontMatterIsOnlyCheckedAtStart(t *testing.T) {
	t.Parallel()
	src := "# Intro\n\n+++\ntitle = \"Keep me\"\n+++\n\nTail\n"
	out := Render(src, WithStripFrontMatter(true)).PlainText()
	for _, want := range []string{"Intro", "title = \"Keep me\"", "Tail"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in output: %q", want, out)
		}
	}
}

func TestRenderUnclosedFrontMatterIsNotStripped(t *testing.T) {
	t.Parallel()
	src := "---\ntitle: Post\n\n# Hello\n"
	out := Render(src, WithStripFrontMatter(true)).PlainText()
	for _, want := range []string{"title: Post", "Hello"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in output: %q", want, out)
		}
	}
}

func TestRenderStartDelimiterWithoutMetadataIsNotStripped(t *testing.T) {
	t.Parallel()
	doc := Render("---\n# Keep\n---\n\nTail\n", WithStripFrontMatter(true))
	want := []Block{
		HorizontalRule{},
		Heading{Level: 1, Inline: plain("Keep")},
		HorizontalRule{},
		Paragraph{Inline: plain("Tail")},
	}
	if !reflect.DeepEqual(doc.Blocks, want) {
		t.Fatalf("unexpected blocks:\n got: %#v\nwant: %#v", doc.Blocks, want)
	}
}

func TestRenderAfterInitialFrontMatterStopsCheckingForMore(t *testing.T) {
	t.Parallel()
	src := "---\ntitle: Skip\n---\n\nBody\n\n---\nkeep: yes\n---\n"
	out := Render(src, WithStripFrontMatter(true)).PlainText()
	if strings.Contains(out, "title: Skip") {
		t.Fatalf("unexpected front-matter content in output: %q", out)
	}
	for _, want := range []string{"Body", "keep: yes"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in output: %q", want, out)
		}
	}
}
