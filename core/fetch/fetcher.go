// Package fetch implements the Fetcher interface.
// Post sources are either http(s) URLs, local files, or "-" for stdin.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/gaurav-prasanna/postpipe/core"
)

const (
	DefaultTimeout   = 30 * time.Second
	DefaultUserAgent = "postpipe/1.0 (https://github.com/gaurav-prasanna/postpipe)"
)

// HTTPFetcher fetches post pages via HTTP.
type HTTPFetcher struct {
	client    *http.Client
	userAgent string
}

// NewHTTP creates an HTTPFetcher. Zero values fall back to the defaults.
func NewHTTP(timeout time.Duration, userAgent string) *HTTPFetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &HTTPFetcher{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// Fetch retrieves the HTML content of the given URL.
func (f *HTTPFetcher) Fetch(ctx context.Context, source string) (*core.FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", source, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d for %s", resp.StatusCode, source)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	return &core.FetchResult{
		Source:     source,
		StatusCode: resp.StatusCode,
		HTML:       string(body),
	}, nil
}

// FileFetcher reads post content from disk, or from Stdin when the source is "-".
type FileFetcher struct {
	Stdin io.Reader
}

// NewFile creates a FileFetcher reading "-" from os.Stdin.
func NewFile() *FileFetcher {
	return &FileFetcher{Stdin: os.Stdin}
}

// Fetch reads the file named by source.
func (f *FileFetcher) Fetch(ctx context.Context, source string) (*core.FetchResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		data []byte
		err  error
	)
	if source == "-" {
		data, err = io.ReadAll(f.Stdin)
	} else {
		data, err = os.ReadFile(source)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", source, err)
	}

	return &core.FetchResult{Source: source, HTML: string(data)}, nil
}

// SourceFetcher dispatches on the form of the source: http(s) URLs go over
// the network, everything else is read locally.
type SourceFetcher struct {
	HTTP *HTTPFetcher
	File *FileFetcher
}

// New creates a SourceFetcher.
func New(timeout time.Duration, userAgent string) *SourceFetcher {
	return &SourceFetcher{
		HTTP: NewHTTP(timeout, userAgent),
		File: NewFile(),
	}
}

// Fetch loads source from the matching backend.
func (f *SourceFetcher) Fetch(ctx context.Context, source string) (*core.FetchResult, error) {
	if strings.TrimSpace(source) == "" {
		return nil, core.ErrEmptySource
	}
	if IsURL(source) {
		return f.HTTP.Fetch(ctx, source)
	}
	if strings.Contains(source, "://") {
		return nil, fmt.Errorf("%w: %s", core.ErrUnsupportedSource, source)
	}
	return f.File.Fetch(ctx, source)
}

// IsURL reports whether source is an absolute http(s) URL.
func IsURL(source string) bool {
	parsed, err := url.Parse(source)
	if err != nil {
		return false
	}
	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}
