package mdlite

import (
	"context"
	"fmt"
)

// Service orchestrates document parsing with optional post-processing. The
// zero configuration is equivalent to calling ParseDocument directly.
type Service struct {
	cfg serviceConfig
}

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	highlight      bool
	highlightStyle string
}

// Option configures a Service.
type Option func(*Service)

// DefaultHighlightStyle is used when WithHighlighting is given an empty name.
const DefaultHighlightStyle = "github"

// WithHighlighting enables chroma syntax highlighting of fenced code blocks
// in the rendered HTML, using the named chroma style. An empty name selects
// DefaultHighlightStyle; an unknown name falls back to chroma's default.
func WithHighlighting(style string) Option {
	if style == "" {
		style = DefaultHighlightStyle
	}
	return func(s *Service) {
		s.cfg.highlight = true
		s.cfg.highlightStyle = style
	}
}

// Input contains conversion parameters.
type Input struct {
	Markdown string // Markdown content (required)
}

// New creates a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Convert parses frontmatter, renders the remainder to HTML, and applies any
// configured post-processing. The context is checked between stages; the
// stages themselves are synchronous and CPU-bound.
func (s *Service) Convert(ctx context.Context, input Input) (Document, error) {
	if input.Markdown == "" {
		return Document{}, ErrEmptyMarkdown
	}
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}

	doc := ParseDocument(input.Markdown)

	if err := ctx.Err(); err != nil {
		return Document{}, err
	}

	if s.cfg.highlight {
		content, err := highlightCodeBlocks(doc.Content, s.cfg.highlightStyle)
		if err != nil {
			return Document{}, fmt.Errorf("highlighting code blocks: %w", err)
		}
		doc.Content = content
	}

	return doc, nil
}
