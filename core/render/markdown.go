// Package render — Markdown renderer.
// Converts normalized HTML into Markdown with html-to-markdown.
package render

import (
	"fmt"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/gaurav-prasanna/postpipe/core"
)

// MarkdownRenderer renders normalized HTML as Markdown.
type MarkdownRenderer struct {
	conv *converter.Converter
}

// NewMarkdownRenderer creates a MarkdownRenderer with the base, CommonMark
// and table plugins.
func NewMarkdownRenderer() *MarkdownRenderer {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &MarkdownRenderer{conv: conv}
}

// Render converts HTML into Markdown, ending with a single newline.
func (r *MarkdownRenderer) Render(html string, meta core.PostMetadata) ([]byte, error) {
	markdown, err := r.conv.ConvertString(html)
	if err != nil {
		return nil, fmt.Errorf("converting HTML to markdown: %w", err)
	}

	markdown = strings.TrimSpace(markdown)
	if markdown == "" {
		return nil, nil
	}
	return []byte(markdown + "\n"), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}
