// Package normalize implements the Normalizer interface.
// It guarantees that the root-level content of a stored post body is made of
// block elements (paragraphs, headings, lists, blockquotes) so it renders
// with consistent spacing. Loose text and inline markup are wrapped in <p>.
//
// Normalization is a pure function over its argument: every call parses into
// its own short-lived tree, so concurrent use needs no synchronization.
package normalize

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// paragraphBreak separates paragraphs in plain text.
var paragraphBreak = regexp.MustCompile(`\n{2,}`)

// Option configures a ContentNormalizer.
type Option func(*ContentNormalizer)

// WithStrictBlocks makes the normalizer wrap loose root-level runs even when
// the content already contains block elements. Existing blocks stay in place.
// Without it, any block element short-circuits to the input unchanged.
func WithStrictBlocks(strict bool) Option {
	return func(n *ContentNormalizer) {
		n.strictBlocks = strict
	}
}

// ContentNormalizer wraps loose post content in paragraphs.
type ContentNormalizer struct {
	strictBlocks bool
}

// New creates a ContentNormalizer.
func New(opts ...Option) *ContentNormalizer {
	n := &ContentNormalizer{}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

var defaultNormalizer = New()

// Normalize normalizes content with the default options.
func Normalize(content string) string {
	return defaultNormalizer.Normalize(content)
}

// Normalize returns content with every root-level run of loose text or
// inline markup wrapped in a paragraph. Rules are applied in order:
//
//  1. Blank input yields "".
//  2. Input containing a recognized block element is returned unchanged.
//  3. Plain text (no markup) is split on blank lines into paragraphs.
//  4. Anything else has its loose runs wrapped and is re-serialized.
//
// Malformed markup is repaired by the HTML5 fragment parser. Normalize never
// fails; in the worst case the text ends up in an imperfect wrapper.
func (n *ContentNormalizer) Normalize(content string) string {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return ""
	}

	root, err := parseFragment(content)
	if err != nil {
		return wrapParagraph(trimmed)
	}
	doc := goquery.NewDocumentFromNode(root)

	if doc.FindMatcher(blockMatcher).Length() > 0 {
		if !n.strictBlocks {
			return content
		}
		return wrapRuns(root, content)
	}

	// The parser folds CR and CRLF into LF, so compare against the same form.
	raw := strings.ReplaceAll(content, "\r\n", "\n")
	raw = strings.ReplaceAll(raw, "\r", "\n")
	if doc.Text() == raw {
		return wrapPlainText(raw)
	}

	return wrapRuns(root, content)
}

// parseFragment parses content as if it were the inner HTML of <body> and
// returns a document node holding the parsed nodes.
func parseFragment(content string) (*html.Node, error) {
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(content), body)
	if err != nil {
		return nil, err
	}

	root := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		root.AppendChild(n)
	}
	return root, nil
}

// wrapPlainText turns blank-line separated text into paragraphs.
func wrapPlainText(text string) string {
	var paragraphs []string
	for _, seg := range paragraphBreak.Split(text, -1) {
		if s := strings.TrimSpace(seg); s != "" {
			paragraphs = append(paragraphs, s)
		}
	}

	if len(paragraphs) <= 1 {
		return wrapParagraph(strings.TrimSpace(text))
	}

	var b strings.Builder
	for _, p := range paragraphs {
		b.WriteString(wrapParagraph(p))
	}
	return b.String()
}

func wrapParagraph(s string) string {
	return "<p>" + s + "</p>"
}

// wrapRuns rebuilds root so that each maximal run of loose root-level nodes
// sits inside its own <p>. Boundary elements are kept as they are. Neutral
// nodes (blank text, comments) are kept inside a run when they fall between
// two loose nodes, and left outside otherwise.
//
// If nothing was wrapped, original is returned so that already-structured
// content is never re-serialized.
func wrapRuns(root *html.Node, original string) string {
	nodes := detachChildren(root)

	var (
		run     []*html.Node
		pending []*html.Node
		wrapped bool
	)

	emit := func(ns []*html.Node) {
		for _, c := range ns {
			root.AppendChild(c)
		}
	}
	flush := func() {
		if len(run) > 0 {
			p := &html.Node{Type: html.ElementNode, Data: "p", DataAtom: atom.P}
			for _, c := range run {
				p.AppendChild(c)
			}
			root.AppendChild(p)
			wrapped = true
			run = nil
		}
		emit(pending)
		pending = nil
	}

	for _, c := range nodes {
		switch {
		case isNeutral(c):
			pending = append(pending, c)
		case IsBoundary(c):
			flush()
			root.AppendChild(c)
		default:
			if len(run) == 0 {
				emit(pending)
			} else {
				run = append(run, pending...)
			}
			pending = nil
			run = append(run, c)
		}
	}
	flush()

	if !wrapped {
		return original
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, root); err != nil {
		return original
	}
	return buf.String()
}

// detachChildren removes and returns all children of n, in order.
func detachChildren(n *html.Node) []*html.Node {
	var children []*html.Node
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		n.RemoveChild(c)
		children = append(children, c)
		c = next
	}
	return children
}
