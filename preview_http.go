package pitchmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// MaxPreviewBytes limits the request body accepted by PreviewHandler.
const MaxPreviewBytes = 1 << 20

// PreviewHandler returns a handler for live editor previews. It accepts a
// POST whose body is Markdown and answers with the rendered document.
//
// Query parameters:
//   - block: categories to block, as accepted by ParsePolicy
//   - format: html (default), json or text
//
// The block parameter can only add to the policy configured through opts;
// a client cannot unblock content the server blocks.
func PreviewHandler(opts ...RenderOption) http.Handler {
	base := newRenderConfig(opts)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.Header().Set("Allow", http.MethodPost)
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		query := r.URL.Query()
		policy, err := ParsePolicy(query.Get("block"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		format := FormatHTML
		if raw := query.Get("format"); raw != "" {
			format, err = ParseFormat(raw)
			if err == nil && format == FormatANSI {
				err = fmt.Errorf("format %q: %w", raw, ErrUnknownFormat)
			}
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
		}
		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxPreviewBytes))
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
				return
			}
			http.Error(w, "read body: "+err.Error(), http.StatusBadRequest)
			return
		}
		if err := ValidateInput(body); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		cfg := base
		cfg.policy = base.policy.Union(policy)
		doc := render(string(body), cfg)

		switch format {
		case FormatJSON:
			w.Header().Set("Content-Type", "application/json")
			_ = WriteJSON(w, doc)
		case FormatText:
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			_, _ = io.WriteString(w, doc.PlainText())
		default:
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			_ = WriteHTML(w, doc)
		}
	})
}

// HTTPPrintRequest configures HTTPPrint.
type HTTPPrintRequest struct {
	URL     string
	Client  *http.Client
	Writer  io.Writer
	Format  Format
	Width   int
	Theme   Theme
	Options []RenderOption
}

// HTTPPrint fetches Markdown over HTTP(S) and prints it.
func HTTPPrint(ctx context.Context, req HTTPPrintRequest) error {
	if req.URL == "" {
		return fmt.Errorf("http print: URL is required")
	}
	if req.Writer == nil {
		return fmt.Errorf("http print: Writer is nil")
	}
	body, err := OpenURL(ctx, req.Client, req.URL)
	if err != nil {
		return fmt.Errorf("http print: %w", err)
	}
	defer body.Close()
	return Print(PrintRequest{
		Reader:  body,
		Writer:  req.Writer,
		Format:  req.Format,
		Width:   req.Width,
		Theme:   req.Theme,
		Options: req.Options,
	})
}

// OpenURL issues a GET for an http or https URL and returns the response
// body. Non-2xx responses are errors. A nil client uses
// http.DefaultClient.
func OpenURL(ctx context.Context, client *http.Client, rawURL string) (io.ReadCloser, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if req.URL.Scheme != "http" && req.URL.Scheme != "https" {
		return nil, fmt.Errorf("unsupported scheme %q", req.URL.Scheme)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("%s: status %s", rawURL, resp.Status)
	}
	return resp.Body, nil
}
