package pitchmd

import (
	"io"
	"strings"
	"testing"
)

func TestRenderAllocations(t *testing.T) {
	allocs := testing.AllocsPerRun(100, func() {
		_ = Render(samplePitch)
	})
	if allocs > 400 {
		t.Fatalf("too many allocations per Render: got %.2f", allocs)
	}
}

func TestTokenizeInlinePlainTextAllocations(t *testing.T) {
	line := strings.Repeat("no delimiters at all ", 20)
	allocs := testing.AllocsPerRun(100, func() {
		_ = TokenizeInline(line, ContentBlockingPolicy{})
	})
	if allocs > 2 {
		t.Fatalf("plain text should not build scanner tables: got %.2f allocations", allocs)
	}
}

func TestWriteHTMLAllocations(t *testing.T) {
	doc := Render(samplePitch)
	allocs := testing.AllocsPerRun(50, func() {
		_ = WriteHTML(io.Discard, doc)
	})
	if allocs > 1500 {
		t.Fatalf("too many allocations per WriteHTML: got %.2f", allocs)
	}
}
