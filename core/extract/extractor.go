// Package extract implements the Extractor interface.
// It isolates a blog post body from a full HTML page by:
//  1. Removing noise elements (scripts, navigation, share widgets, etc.)
//  2. Finding the best post container, most specific first
//
// Stored post content (a fragment, not a page) is passed through untouched.
package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/gaurav-prasanna/postpipe/core"
)

// noiseSelectors are elements removed before extraction.
var noiseSelectors = []string{
	"script", "style", "noscript", "template",
	"nav", "footer",
	"iframe", "form", "button", "input", "select", "textarea",
	".share", ".social-share", ".sidebar", ".comments", ".related-posts",
	".newsletter", ".ads", ".advertisement",
}

// containerSelectors locate the post body, in priority order. When none
// matches, the whole <body> is used if anything is left in it.
var containerSelectors = []string{
	"[itemprop=articleBody]",
	".post-content",
	".blog-content",
	"article",
	"main",
}

var documentMarker = regexp.MustCompile(`(?i)<(!doctype|html|head|body)[\s>]`)

// IsDocument reports whether s looks like a full HTML page rather than a
// stored content fragment.
func IsDocument(s string) bool {
	return documentMarker.MatchString(s)
}

// PostExtractor returns the post body of a page.
type PostExtractor struct{}

// New creates a PostExtractor.
func New() *PostExtractor {
	return &PostExtractor{}
}

// Extract takes raw HTML and returns the inner HTML of the post container.
// Fragments are returned as-is so that their bytes survive normalization.
func (e *PostExtractor) Extract(html string) (string, error) {
	if !IsDocument(html) {
		return html, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}

	for _, sel := range noiseSelectors {
		doc.Find(sel).Remove()
	}

	var content *goquery.Selection
	for _, sel := range containerSelectors {
		found := doc.Find(sel)
		if found.Length() > 0 {
			content = found.First()
			break
		}
	}

	if content == nil {
		body := doc.Find("body")
		if body.Children().Length() == 0 && strings.TrimSpace(body.Text()) == "" {
			return "", core.ErrNoContainer
		}
		content = body
	}

	result, err := content.Html()
	if err != nil {
		return "", fmt.Errorf("serializing content: %w", err)
	}

	return strings.TrimSpace(result), nil
}
