// Package cmd — the processing pipeline.
// fetch → extract → normalize → sanitize → render.
package cmd

import (
	"context"
	"fmt"

	"github.com/gaurav-prasanna/postpipe/core"
	"github.com/gaurav-prasanna/postpipe/core/extract"
	"github.com/gaurav-prasanna/postpipe/core/fetch"
	"github.com/gaurav-prasanna/postpipe/core/normalize"
	"github.com/gaurav-prasanna/postpipe/core/render"
	"github.com/gaurav-prasanna/postpipe/core/sanitize"
	"github.com/gaurav-prasanna/postpipe/internal/config"
)

// pipeline holds one implementation of every stage.
type pipeline struct {
	fetcher    core.Fetcher
	extractor  core.Extractor
	normalizer core.Normalizer
	sanitizer  core.Sanitizer
	renderer   core.Renderer
}

// processed is the outcome of running one source through the pipeline.
type processed struct {
	Data    []byte
	Meta    core.PostMetadata
	Changed bool // normalization altered the stored content
}

func newPipeline(cfg *config.Config, renderer core.Renderer) *pipeline {
	var sanitizer core.Sanitizer = sanitize.Passthrough{}
	if cfg.Sanitize {
		sanitizer = sanitize.New()
	}

	return &pipeline{
		fetcher:    fetch.New(cfg.Fetch.Timeout, cfg.Fetch.UserAgent),
		extractor:  extract.New(),
		normalizer: normalize.New(normalize.WithStrictBlocks(cfg.StrictBlocks)),
		sanitizer:  sanitizer,
		renderer:   renderer,
	}
}

// process runs a single source through the full pipeline.
func (p *pipeline) process(ctx context.Context, source string) (*processed, error) {
	// 1. Fetch
	result, err := p.fetcher.Fetch(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}

	// 2. Extract the post body
	content, err := p.extractor.Extract(result.HTML)
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}

	// 3. Normalize block structure
	normalized := p.normalizer.Normalize(content)

	// 4. Apply the display policy
	display := p.sanitizer.Sanitize(normalized)

	meta := extract.Metadata(source, result.HTML)

	// 5. Render to output format
	data, err := p.renderer.Render(display, meta)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	return &processed{Data: data, Meta: meta, Changed: normalized != content}, nil
}

// selectRenderer creates the Renderer for a config format name.
func selectRenderer(format string, excerptWords int) (core.Renderer, error) {
	switch format {
	case "html":
		return render.NewHTMLRenderer(), nil
	case "markdown":
		return render.NewMarkdownRenderer(), nil
	case "json":
		return render.NewJSONRenderer(excerptWords), nil
	case "pdf":
		return render.NewPDFRenderer(), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}
