package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/pflag"
	xunicode "golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"golang.org/x/term"
	"pkt.systems/pitchmd"
	"pkt.systems/version"
)

const (
	defaultThemeName = "default"
	defaultWidth     = 80
	shutdownTimeout  = 5 * time.Second
)

func init() {
	version.SetDefaultModule("pkt.systems/pitchmd")
}

func main() {
	var (
		themeName        string
		widthFlag        int
		osc8Flag         string
		listThemes       bool
		outPath          string
		boring           bool
		formatFlag       string
		blockFlag        string
		untrusted        bool
		stripFrontMatter bool
		highlight        string
		serveAddr        string
		showVersion      bool
	)

	flags := pflag.NewFlagSet("pitchmd", pflag.ExitOnError)
	flags.StringVarP(&themeName, "theme", "t", defaultThemeName, "Theme name")
	flags.IntVarP(&widthFlag, "width", "w", 0, "Output width override (0 uses terminal width if available)")
	flags.StringVarP(&osc8Flag, "osc8", "8", "auto", "OSC8 hyperlinks: auto|on|off")
	flags.BoolVar(&listThemes, "list-themes", false, "List available themes")
	flags.StringVarP(&outPath, "output", "o", "", "Output file instead of stdout")
	flags.BoolVarP(&boring, "boring", "b", false, "Generate non-ANSI terminal output")
	flags.StringVarP(&formatFlag, "format", "f", "ansi", "Output format: ansi|html|json|text")
	flags.StringVar(&blockFlag, "block", "", "Block inline content: comma list of image,link,code or all")
	flags.BoolVar(&untrusted, "untrusted", false, "Block images, links and inline code (same as --block all)")
	flags.BoolVar(&stripFrontMatter, "strip-front-matter", false, "Drop a leading YAML/TOML/JSON front-matter block")
	flags.StringVar(&highlight, "highlight", "", "Chroma style for code highlighting in ANSI output (e.g. monokai)")
	flags.StringVar(&serveAddr, "serve", "", "Serve live previews over HTTP on this address instead of rendering")
	flags.BoolVarP(&showVersion, "version", "v", false, "Print version and exit")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, version.Module(), version.Current())
		fmt.Fprintf(os.Stderr, "Usage: pitchmd [flags] [inputs...]\n")
		fmt.Fprintln(os.Stderr, "\nIf no input is provided, Markdown is read from stdin.")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	if showVersion {
		fmt.Fprintln(os.Stdout, version.Module(), version.Current())
		return
	}
	if listThemes {
		printThemes()
		return
	}

	policy, err := resolvePolicy(blockFlag, untrusted)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid --block %q: %v\n", blockFlag, err)
		os.Exit(2)
	}
	opts := []pitchmd.RenderOption{
		pitchmd.WithPolicy(policy),
		pitchmd.WithStripFrontMatter(stripFrontMatter),
	}

	if serveAddr != "" {
		if err := serve(serveAddr, opts); err != nil {
			fmt.Fprintf(os.Stderr, "serve: %v\n", err)
			os.Exit(1)
		}
		return
	}

	format, err := pitchmd.ParseFormat(formatFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid --format %q: %v\n", formatFlag, err)
		os.Exit(2)
	}

	reader, closer, err := openInputs(flags.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "open input: %v\n", err)
		os.Exit(1)
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}

	writer, closeOut, err := resolveOutput(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open output: %v\n", err)
		os.Exit(1)
	}
	if closeOut != nil {
		defer func() { _ = closeOut.Close() }()
	}

	theme, ok := pitchmd.ThemeByName(themeName)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown theme %q\n\n", themeName)
		printThemes()
		os.Exit(2)
	}
	if boring {
		theme = boringTheme()
		highlight = ""
	}

	osc8, err := resolveOSC8(osc8Flag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid --osc8 %q: %v\n", osc8Flag, err)
		os.Exit(2)
	}
	opts = append(opts, pitchmd.WithOSC8(osc8 && !boring), pitchmd.WithHighlight(highlight))

	if err := pitchmd.Print(pitchmd.PrintRequest{
		Reader:  decodeInput(reader),
		Writer:  writer,
		Format:  format,
		Width:   resolveWidth(widthFlag),
		Theme:   theme,
		Options: opts,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "render: %v\n", err)
		os.Exit(1)
	}
}

func resolvePolicy(block string, untrusted bool) (pitchmd.ContentBlockingPolicy, error) {
	policy, err := pitchmd.ParsePolicy(block)
	if err != nil {
		return pitchmd.ContentBlockingPolicy{}, err
	}
	if untrusted {
		policy = policy.Union(pitchmd.Untrusted())
	}
	return policy, nil
}

func newPreviewMux(opts []pitchmd.RenderOption) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/preview", pitchmd.PreviewHandler(opts...))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "ok\n")
	})
	return mux
}

func serve(addr string, opts []pitchmd.RenderOption) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	srv := &http.Server{
		Addr:              addr,
		Handler:           newPreviewMux(opts),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()
	fmt.Fprintf(os.Stderr, "pitchmd: preview listening on %s\n", addr)
	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

const utf8BOM = "\xef\xbb\xbf"

// decodeInput converts UTF-16 input with a byte order mark to UTF-8 and
// strips a UTF-8 BOM. All other bytes pass through unchanged so that
// validation still sees invalid UTF-8.
func decodeInput(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	if prefix, err := br.Peek(len(utf8BOM)); err == nil && string(prefix) == utf8BOM {
		_, _ = br.Discard(len(utf8BOM))
		return br
	}
	return transform.NewReader(br, xunicode.BOMOverride(transform.Nop))
}

func printThemes() {
	for _, name := range pitchmd.AvailableThemes() {
		fmt.Fprintln(os.Stdout, name)
	}
}

func resolveWidth(width int) int {
	if width > 0 {
		return width
	}
	return terminalWidth(defaultWidth)
}

func terminalWidth(fallback int) int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if w, err := strconv.Atoi(value); err == nil && w > 0 {
			return w
		}
	}
	return fallback
}

func resolveOSC8(mode string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "auto":
		return pitchmd.DetectOSC8Support(), nil
	case "on", "true", "1", "yes":
		return true, nil
	case "off", "false", "0", "no":
		return false, nil
	default:
		return false, fmt.Errorf("expected auto|on|off")
	}
}

func boringTheme() pitchmd.Theme {
	return pitchmd.NewTheme("boring", pitchmd.Styles{})
}

type inputSource struct {
	open func() (io.Reader, io.Closer, error)
}

// multiInputReader concatenates inputs, opening each lazily.
type multiInputReader struct {
	sources   []inputSource
	idx       int
	cur       io.Reader
	curCloser io.Closer
	closed    bool
}

func (m *multiInputReader) Read(p []byte) (int, error) {
	for {
		if m.closed {
			return 0, io.EOF
		}
		if m.cur == nil {
			if m.idx >= len(m.sources) {
				m.closed = true
				return 0, io.EOF
			}
			reader, closer, err := m.sources[m.idx].open()
			if err != nil {
				return 0, err
			}
			m.cur = reader
			m.curCloser = closer
			m.idx++
		}
		n, err := m.cur.Read(p)
		if n > 0 {
			return n, nil
		}
		if err == io.EOF {
			if m.curCloser != nil {
				_ = m.curCloser.Close()
			}
			m.cur = nil
			m.curCloser = nil
			continue
		}
		if err != nil {
			return 0, err
		}
	}
}

func (m *multiInputReader) Close() error {
	m.closed = true
	if m.curCloser != nil {
		return m.curCloser.Close()
	}
	return nil
}

func openInputs(args []string) (io.Reader, io.Closer, error) {
	if len(args) == 0 {
		return os.Stdin, nil, nil
	}
	sources := make([]inputSource, 0, len(args))
	for _, raw := range args {
		src, err := makeInputSource(raw)
		if err != nil {
			return nil, nil, err
		}
		sources = append(sources, src)
	}
	m := &multiInputReader{sources: sources}
	return m, m, nil
}

func makeInputSource(raw string) (inputSource, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return inputSource{}, fmt.Errorf("empty input argument")
	}
	if raw == "-" {
		return inputSource{open: func() (io.Reader, io.Closer, error) {
			return os.Stdin, nil, nil
		}}, nil
	}
	u, err := url.Parse(raw)
	if err == nil && u.Scheme != "" {
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return inputSource{open: func() (io.Reader, io.Closer, error) {
				return openURL(raw)
			}}, nil
		case "file":
			path := u.Path
			if path == "" {
				path = u.Host
			}
			if unescaped, err := url.PathUnescape(path); err == nil {
				path = unescaped
			}
			return inputSource{open: func() (io.Reader, io.Closer, error) {
				return openFile(path)
			}}, nil
		}
	}
	return inputSource{open: func() (io.Reader, io.Closer, error) {
		return openFile(raw)
	}}, nil
}

func openURL(raw string) (io.Reader, io.Closer, error) {
	body, err := pitchmd.OpenURL(context.Background(), nil, raw)
	if err != nil {
		return nil, nil, err
	}
	return body, body, nil
}

func openFile(path string) (io.Reader, io.Closer, error) {
	f, err := os.Open(normalizePath(path))
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func resolveOutput(path string) (io.Writer, io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		return os.Stdout, nil, nil
	}
	clean := normalizePath(path)
	dir := filepath.Dir(clean)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}
	f, err := os.Create(clean)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}
