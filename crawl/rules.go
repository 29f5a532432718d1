// Package crawl — URL filtering rules.
// Provides helpers to filter, normalize, and classify URLs during discovery.
package crawl

import (
	"net/url"
	"path"
	"strings"
)

// DefaultPostPrefix is the path under which blog posts live.
const DefaultPostPrefix = "/blog/"

// staticExtensions are file extensions to skip during crawling.
var staticExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
	".svg": true, ".webp": true, ".ico": true, ".bmp": true,
	".css": true, ".js": true, ".mjs": true,
	".woff": true, ".woff2": true, ".ttf": true, ".eot": true,
	".mp4": true, ".webm": true, ".mp3": true, ".wav": true,
	".zip": true, ".tar": true, ".gz": true,
	".pdf": true, ".doc": true, ".docx": true, ".xls": true, ".xlsx": true,
	".xml": true, ".json": true, ".txt": true,
}

// IsSameDomain checks if the given URL belongs to the specified domain.
func IsSameDomain(rawURL string, domain string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return parsed.Host == domain
}

// IsStaticAsset checks if a URL points to a static asset (image, CSS, JS, etc.).
func IsStaticAsset(rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	ext := strings.ToLower(path.Ext(parsed.Path))
	return staticExtensions[ext]
}

// NormalizePrefix returns prefix with exactly one leading and trailing slash.
func NormalizePrefix(prefix string) string {
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		return "/"
	}
	return "/" + prefix + "/"
}

// IsUnderPrefix reports whether the URL path is the prefix itself or below it.
func IsUnderPrefix(rawURL string, prefix string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return strings.HasPrefix(parsed.Path+"/", NormalizePrefix(prefix))
}

// IsPostURL reports whether the URL is a post strictly below prefix.
// The listing page at the prefix itself and paginated listings are not posts.
func IsPostURL(rawURL string, prefix string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	p := NormalizePrefix(prefix)
	rest := strings.Trim(strings.TrimPrefix(parsed.Path, p), "/")
	if !strings.HasPrefix(parsed.Path, p) || rest == "" {
		return false
	}
	return !strings.HasPrefix(rest, "page/") && !strings.HasPrefix(rest, "tag/") &&
		!strings.HasPrefix(rest, "category/")
}

// NormalizeURL strips fragments, queries and trailing slashes for deduplication.
func NormalizeURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}

	parsed.Fragment = ""
	parsed.RawQuery = ""

	// Keep root "/".
	if parsed.Path != "/" {
		parsed.Path = strings.TrimSuffix(parsed.Path, "/")
	}

	return parsed.String()
}
