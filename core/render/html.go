// Package render provides output renderers for the postpipe pipeline.
// This file implements the HTML renderer, which is a simple passthrough.
package render

import (
	"github.com/gaurav-prasanna/postpipe/core"
)

// HTMLRenderer writes normalized HTML as-is. It's the simplest renderer
// since normalized HTML is the canonical pipeline format.
type HTMLRenderer struct{}

// NewHTMLRenderer creates an HTMLRenderer.
func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{}
}

// Render returns the HTML as bytes (passthrough).
func (r *HTMLRenderer) Render(html string, meta core.PostMetadata) ([]byte, error) {
	return []byte(html), nil
}

// Extension returns the file extension for HTML output.
func (r *HTMLRenderer) Extension() string {
	return ".html"
}
