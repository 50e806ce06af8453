package pitchmd

// RenderOption configures rendering behavior.
type RenderOption func(*renderConfig)

type renderConfig struct {
	policy           ContentBlockingPolicy
	stripFrontMatter bool
	osc8             bool
	highlight        string
	width            int
	theme            Theme
}

func newRenderConfig(opts []RenderOption) renderConfig {
	cfg := renderConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.theme == nil {
		cfg.theme = DefaultTheme()
	}
	return cfg
}

// WithPolicy sets the content-blocking policy applied to inline content.
func WithPolicy(policy ContentBlockingPolicy) RenderOption {
	return func(cfg *renderConfig) {
		cfg.policy = policy
	}
}

// WithStripFrontMatter removes a leading YAML, TOML or JSON front-matter
// block before parsing.
func WithStripFrontMatter(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.stripFrontMatter = enabled
	}
}

// WithOSC8 enables or disables OSC 8 hyperlinks in terminal output.
func WithOSC8(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.osc8 = enabled
	}
}

// WithHighlight enables syntax highlighting of fenced code in terminal
// output using the named chroma style. An empty name disables it.
func WithHighlight(style string) RenderOption {
	return func(cfg *renderConfig) {
		cfg.highlight = style
	}
}

// WithWidth sets the wrap width for terminal output. Zero disables wrapping.
func WithWidth(width int) RenderOption {
	return func(cfg *renderConfig) {
		cfg.width = width
	}
}

// WithTheme sets the terminal theme.
func WithTheme(theme Theme) RenderOption {
	return func(cfg *renderConfig) {
		cfg.theme = theme
	}
}
