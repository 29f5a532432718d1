// Package crawl provides blog post discovery for --all mode.
// It discovers posts via sitemap.xml and link extraction from the blog index,
// keeping crawling logic separate from the normalization pipeline.
package crawl

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/gaurav-prasanna/postpipe/core"
)

// MaxPages bounds the number of URLs a discovery collects.
const MaxPages = 100

// sitemapURL holds a URL from a sitemap.xml.
type sitemapURL struct {
	Loc string `xml:"loc"`
}

// sitemapIndex is the root element of a sitemap.xml.
type sitemapIndex struct {
	URLs []sitemapURL `xml:"url"`
}

// DiscoverPosts finds the post URLs reachable from indexURL.
// It first tries sitemap.xml, then falls back to link crawling below prefix.
func DiscoverPosts(ctx context.Context, indexURL string, prefix string, fetcher core.Fetcher) ([]string, error) {
	parsed, err := url.Parse(indexURL)
	if err != nil {
		return nil, fmt.Errorf("parsing index URL: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("index URL must be absolute: %s", indexURL)
	}
	domain := parsed.Host

	sitemapURLStr := fmt.Sprintf("%s://%s/sitemap.xml", parsed.Scheme, domain)
	urls, err := discoverFromSitemap(ctx, sitemapURLStr, domain, prefix, fetcher)
	if err == nil && len(urls) > 0 {
		return urls, nil
	}

	return discoverFromLinks(ctx, indexURL, domain, prefix, fetcher)
}

// discoverFromSitemap fetches and parses sitemap.xml for post URLs.
func discoverFromSitemap(ctx context.Context, sitemapURL string, domain string, prefix string, fetcher core.Fetcher) ([]string, error) {
	result, err := fetcher.Fetch(ctx, sitemapURL)
	if err != nil {
		return nil, err
	}

	var sitemap sitemapIndex
	if err := xml.Unmarshal([]byte(result.HTML), &sitemap); err != nil {
		return nil, fmt.Errorf("parsing sitemap: %w", err)
	}

	// Repeated entries do not count toward MaxPages.
	queue := NewQueue()
	for _, u := range sitemap.URLs {
		loc := strings.TrimSpace(u.Loc)
		if !IsSameDomain(loc, domain) || IsStaticAsset(loc) || !IsPostURL(loc, prefix) {
			continue
		}
		if queue.Add(NormalizeURL(loc)) && queue.Visited() >= MaxPages {
			break
		}
	}
	return queue.All(), nil
}

// discoverFromLinks performs BFS crawling from the index to find post links.
// Only pages below prefix are followed.
func discoverFromLinks(ctx context.Context, startURL string, domain string, prefix string, fetcher core.Fetcher) ([]string, error) {
	queue := NewQueue()
	queue.Add(NormalizeURL(startURL))

	for queue.HasNext() && queue.Visited() < MaxPages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		currentURL := queue.Next()

		result, err := fetcher.Fetch(ctx, currentURL)
		if err != nil {
			continue // Skip failed pages, don't block the crawl.
		}

		links, err := extractLinks(result.HTML, currentURL)
		if err != nil {
			continue
		}

		for _, link := range links {
			if IsSameDomain(link, domain) && !IsStaticAsset(link) && IsUnderPrefix(link, prefix) {
				queue.Add(NormalizeURL(link))
			}
		}
	}

	var posts []string
	for _, u := range queue.All() {
		if IsPostURL(u, prefix) {
			posts = append(posts, u)
		}
	}
	return posts, nil
}

// extractLinks extracts all href values from <a> tags, resolving relative URLs.
func extractLinks(html string, baseURL string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	base, _ := url.Parse(baseURL)
	var links []string

	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, exists := s.Attr("href")
		if !exists || href == "" {
			return
		}

		resolved := resolveURL(href, base)
		if resolved != "" {
			links = append(links, resolved)
		}
	})

	return links, nil
}

// resolveURL resolves a potentially relative URL against a base.
func resolveURL(href string, base *url.URL) string {
	// Skip mailto, javascript, etc.
	if strings.HasPrefix(href, "mailto:") || strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "tel:") || strings.HasPrefix(href, "#") {
		return ""
	}

	parsed, err := url.Parse(href)
	if err != nil {
		return ""
	}

	resolved := base.ResolveReference(parsed)
	resolved.Fragment = ""
	return resolved.String()
}
