// Package normalize — block-level tag tables.
// Block detection is plain tag-name membership, never a computed style.
package normalize

import (
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// blockTags are the recognized block elements. If any of them appears in
// the content, the content is considered already structured.
var blockTags = []string{
	"p",
	"h1", "h2", "h3", "h4", "h5", "h6",
	"ul", "ol",
	"blockquote",
	"div",
}

// boundaryTags end a paragraph run. They are never wrapped. The set holds
// every start tag that closes an open <p> in the HTML5 tree builder, so a
// wrapped run re-parses to the same tree.
var boundaryTags = append([]string{
	"pre", "listing", "xmp", "plaintext", "table", "hr",
	"section", "article", "aside", "header", "footer", "nav", "main", "search",
	"figure", "figcaption", "dl", "dd", "dt", "li", "menu", "dir",
	"form", "fieldset", "address", "details", "summary", "dialog",
	"center", "hgroup",
}, blockTags...)

var (
	blockMatcher    = cascadia.MustCompile(strings.Join(blockTags, ", "))
	boundaryMatcher = cascadia.MustCompile(strings.Join(boundaryTags, ", "))
)

// IsBoundary reports whether n is, or contains, a block boundary element.
// An inline element that wraps a block (<a><section>…</section></a>) cannot
// go inside a paragraph either.
func IsBoundary(n *html.Node) bool {
	return n.Type == html.ElementNode && boundaryMatcher.MatchFirst(n) != nil
}

// isNeutral reports whether n neither starts nor ends a paragraph run.
func isNeutral(n *html.Node) bool {
	switch n.Type {
	case html.CommentNode, html.DoctypeNode:
		return true
	case html.TextNode:
		return strings.TrimSpace(n.Data) == ""
	}
	return false
}
