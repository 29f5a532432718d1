// Package render — JSON renderer.
// Builds the structured JSON output from normalized HTML and post metadata:
// the display HTML, plain text, a preview excerpt, and structural counts.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/gaurav-prasanna/postpipe/core"
	"github.com/gaurav-prasanna/postpipe/core/excerpt"
)

// JSONRenderer produces structured JSON output from normalized HTML.
type JSONRenderer struct {
	excerpter *excerpt.Excerpter
}

// NewJSONRenderer creates a JSONRenderer whose excerpts are at most
// excerptWords long (excerpt.DefaultWords if <= 0).
func NewJSONRenderer(excerptWords int) *JSONRenderer {
	return &JSONRenderer{excerpter: excerpt.New(excerptWords)}
}

// Render converts HTML and metadata into the PostJSON structure.
func (r *JSONRenderer) Render(html string, meta core.PostMetadata) ([]byte, error) {
	doc, err := parseDocument(html)
	if err != nil {
		return nil, err
	}

	text := plainText(collectBlocks(doc))

	post := core.PostJSON{
		Metadata: meta,
		Content: core.PostContent{
			HTML:    html,
			Text:    text,
			Excerpt: r.excerpter.Excerpt(text),
		},
		Structure: core.PostStructure{
			Headings:    extractHeadings(doc),
			Links:       extractLinks(doc),
			Paragraphs:  doc.Find("p").Length(),
			Lists:       doc.Find("ul, ol").Length(),
			Blockquotes: doc.Find("blockquote").Length(),
			Images:      doc.Find("img").Length(),
		},
	}

	// Keep <, > and & literal in the embedded post HTML.
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(post); err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}

func extractHeadings(doc *goquery.Document) []core.Heading {
	headings := []core.Heading{}
	doc.Find("h1, h2, h3, h4, h5, h6").Each(func(_ int, s *goquery.Selection) {
		name := goquery.NodeName(s)
		headings = append(headings, core.Heading{
			Level: int(name[1] - '0'),
			Text:  collapse(s.Text()),
		})
	})
	return headings
}

func extractLinks(doc *goquery.Document) []core.Link {
	links := []core.Link{}
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		if strings.TrimSpace(href) == "" {
			return
		}
		links = append(links, core.Link{
			Text: collapse(s.Text()),
			Href: href,
		})
	})
	return links
}
