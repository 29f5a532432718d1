// Package extract — post metadata.
package extract

import (
	"net/url"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gaurav-prasanna/postpipe/core"
	"github.com/gaurav-prasanna/postpipe/core/fetch"
)

// now is replaced in tests.
var now = time.Now

// Metadata builds PostMetadata from the source and its raw HTML.
func Metadata(source string, html string) core.PostMetadata {
	meta := core.PostMetadata{
		Source:    source,
		Slug:      slugFromSource(source),
		Language:  "en",
		FetchedAt: now().UTC().Format(time.RFC3339),
	}

	if fetch.IsURL(source) {
		if parsed, err := url.Parse(source); err == nil {
			meta.Domain = parsed.Host
			meta.Path = parsed.Path
		}
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return meta
	}

	if lang, ok := doc.Find("html").Attr("lang"); ok && strings.TrimSpace(lang) != "" {
		meta.Language = strings.TrimSpace(lang)
	}
	meta.Title = title(doc)

	return meta
}

// title prefers og:title, then <title>, then the first <h1>.
func title(doc *goquery.Document) string {
	if og, ok := doc.Find(`meta[property="og:title"]`).Attr("content"); ok && strings.TrimSpace(og) != "" {
		return strings.TrimSpace(og)
	}
	if t := strings.TrimSpace(doc.Find("title").First().Text()); t != "" {
		return t
	}
	return strings.TrimSpace(doc.Find("h1").First().Text())
}

// slugFromSource takes the last path element of a URL or file name.
func slugFromSource(source string) string {
	if source == "-" || source == "" {
		return "post"
	}

	p := source
	if fetch.IsURL(source) {
		parsed, err := url.Parse(source)
		if err != nil {
			return "post"
		}
		p = strings.TrimSuffix(parsed.Path, "/")
		if p == "" {
			return "index"
		}
		return path.Base(p)
	}

	base := filepath.Base(p)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
