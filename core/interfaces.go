// Package core defines the pipeline interfaces for postpipe.
// Each stage of the pipeline is a clean, testable interface:
// fetch → extract → normalize → sanitize → render.
package core

import "context"

// FetchResult holds the raw body loaded from a post source.
type FetchResult struct {
	Source     string
	StatusCode int // 0 for non-HTTP sources
	HTML       string
}

// PostMetadata holds metadata derived from the source and the page.
type PostMetadata struct {
	Source    string `json:"source"`
	Domain    string `json:"domain,omitempty"`
	Path      string `json:"path,omitempty"`
	Slug      string `json:"slug"`
	Title     string `json:"title"`
	Language  string `json:"language"`
	FetchedAt string `json:"fetched_at"` // ISO8601
}

// Heading represents a single heading found in the post body.
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

// Link represents a hyperlink found in the post body.
type Link struct {
	Text string `json:"text"`
	Href string `json:"href"`
}

// PostContent holds the display forms of a post body.
type PostContent struct {
	HTML    string `json:"html"`
	Text    string `json:"text"`
	Excerpt string `json:"excerpt"`
}

// PostStructure holds structural counts parsed from the normalized body.
type PostStructure struct {
	Headings    []Heading `json:"headings"`
	Links       []Link    `json:"links"`
	Paragraphs  int       `json:"paragraphs"`
	Lists       int       `json:"lists"`
	Blockquotes int       `json:"blockquotes"`
	Images      int       `json:"images"`
}

// PostJSON is the complete JSON output for a single post.
type PostJSON struct {
	Metadata  PostMetadata  `json:"metadata"`
	Content   PostContent   `json:"content"`
	Structure PostStructure `json:"structure"`
}

// Fetcher loads the raw HTML of a post from a URL, file, or stdin.
type Fetcher interface {
	Fetch(ctx context.Context, source string) (*FetchResult, error)
}

// Extractor pulls the post body out of a page, stripping noise.
type Extractor interface {
	Extract(html string) (string, error)
}

// Normalizer guarantees that the root-level content of a post body is
// made of block elements. It never fails.
type Normalizer interface {
	Normalize(content string) string
}

// Sanitizer applies a display-safety policy to normalized HTML.
type Sanitizer interface {
	Sanitize(html string) string
}

// Renderer converts normalized HTML (and metadata) into an output format.
type Renderer interface {
	Render(html string, meta PostMetadata) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".md", ".pdf").
	Extension() string
}
