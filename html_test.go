package pitchmd

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestToHTML(t *testing.T) {
	t.Parallel()
	src := strings.Join([]string{
		"# Title <x>",
		"",
		"Hello **world** & [site](https://e.com/?a=1&b=2)",
		"---",
		"> *quoted*",
		"- one",
		"- `two`",
		"3. three",
		"![A \"cat\"](/img/cat.png)",
	}, "\n")
	got := ToHTML(Render(src))
	want := strings.Join([]string{
		`<h1>Title &lt;x&gt;</h1>`,
		`<p>Hello <strong>world</strong> &amp; <a href="https://e.com/?a=1&amp;b=2" rel="nofollow noopener noreferrer">site</a></p>`,
		`<hr/>`,
		`<blockquote><em>quoted</em></blockquote>`,
		`<ul><li>one</li><li><code>two</code></li></ul>`,
		`<ol><li value="3">three</li></ol>`,
		`<p><img src="/img/cat.png" alt="A &#34;cat&#34;" loading="lazy"/></p>`,
	}, "\n") + "\n"
	if got != want {
		t.Fatalf("unexpected html:\n got: %s\nwant: %s", got, want)
	}
}

func TestToHTMLCodeBlock(t *testing.T) {
	t.Parallel()
	got := ToHTML(Render("```go\nif a < b && c {\n\treturn\n}\n```"))
	want := `<pre style="` + ResolveCodeStyle("go").CSS() + `"><code class="language-go">` +
		"if a &lt; b &amp;&amp; c {\n\treturn\n}" + "</code></pre>\n"
	if got != want {
		t.Fatalf("unexpected code html:\n got: %q\nwant: %q", got, want)
	}

	got = ToHTML(Render("```\nplain\n```"))
	if strings.Contains(got, "class=") {
		t.Fatalf("untagged fence should not carry a language class: %q", got)
	}
}

func TestToHTMLUntrustedLeaksNothing(t *testing.T) {
	t.Parallel()
	src := "![x](https://tracker.example/pixel.png) [y](https://phish.example) `rm -rf /`"
	got := ToHTML(Render(src, WithPolicy(Untrusted())))
	want := `<p><span class="blocked blocked-image">x</span> <span class="blocked blocked-link">y</span> ` +
		`<span class="blocked blocked-code">[code blocked]</span></p>` + "\n"
	if got != want {
		t.Fatalf("unexpected untrusted html:\n got: %s\nwant: %s", got, want)
	}
	for _, leak := range []string{"tracker.example", "phish.example", "rm -rf", "<img", "<a "} {
		if strings.Contains(got, leak) {
			t.Fatalf("blocked content %q leaked into %q", leak, got)
		}
	}
}

func TestToHTMLUnsafeURLs(t *testing.T) {
	t.Parallel()
	got := ToHTML(Render("[x](javascript:alert(1)) ![y](//evil.example/a.png)"))
	want := `<p><span class="blocked blocked-link">x</span>) <span class="blocked blocked-image">y</span></p>` + "\n"
	if got != want {
		t.Fatalf("unexpected html for unsafe urls:\n got: %s\nwant: %s", got, want)
	}
}

func TestSanitizeURL(t *testing.T) {
	t.Parallel()
	allowed := map[string]string{
		"https://example.com":   "https://example.com",
		"http://example.com/a":  "http://example.com/a",
		"HTTPS://EXAMPLE.COM":   "HTTPS://EXAMPLE.COM",
		"mailto:team@pitch.dev": "mailto:team@pitch.dev",
		"/relative/path":        "/relative/path",
		"image.png":             "image.png",
		"#section":              "#section",
		"  https://trimmed.io ": "https://trimmed.io",
	}
	for raw, want := range allowed {
		got, ok := sanitizeURL(raw)
		if !ok || got != want {
			t.Fatalf("sanitizeURL(%q) = %q, %v; want %q", raw, got, ok, want)
		}
	}
	rejected := []string{
		"",
		"javascript:alert(1)",
		"JavaScript:alert(1)",
		"data:text/html;base64,PHNjcmlwdD4=",
		"vbscript:msgbox",
		"//evil.example",
		`\\evil.example`,
		"java\tscript:alert(1)",
		"https://exa\u200bmple.com",
		"https://example.com/\u202e",
	}
	for _, raw := range rejected {
		if got, ok := sanitizeURL(raw); ok {
			t.Fatalf("sanitizeURL(%q) accepted as %q", raw, got)
		}
	}
}

type failingWriter struct{}

var errWriteFailed = errors.New("write failed")

func (failingWriter) Write([]byte) (int, error) { return 0, errWriteFailed }

func TestWriteHTMLPropagatesWriteErrors(t *testing.T) {
	t.Parallel()
	if err := WriteHTML(failingWriter{}, Render("# x")); !errors.Is(err, errWriteFailed) {
		t.Fatalf("expected write error, got %v", err)
	}
	var buf bytes.Buffer
	if err := WriteHTML(&buf, Document{}); err != nil || buf.Len() != 0 {
		t.Fatalf("empty document should write nothing, got %q, %v", buf.String(), err)
	}
}
