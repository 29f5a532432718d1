// Package render — block walker shared by the JSON and PDF renderers.
// A flat walk over <body>'s children recovers the post's reading order.
// Loose text and inline markup left at the root (default normalization keeps
// structured content as stored) are gathered into paragraphs the same way
// the normalizer would wrap them.
package render

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/gaurav-prasanna/postpipe/core/normalize"
	"golang.org/x/net/html"
)

type blockKind int

const (
	blockParagraph blockKind = iota
	blockHeading
	blockList
	blockOrderedList
	blockQuote
	blockPre
)

// block is one root-level element of a post body.
type block struct {
	Kind  blockKind
	Level int      // heading level, 1–6
	Text  string   // collapsed text; raw for blockPre
	Items []string // list items
}

// parseDocument parses an HTML fragment into a goquery document.
func parseDocument(content string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	return doc, nil
}

// collectBlocks returns the blocks of doc's body in document order.
// Blank blocks are skipped.
func collectBlocks(doc *goquery.Document) []block {
	var (
		blocks []block
		run    strings.Builder
	)

	flush := func() {
		if text := collapse(run.String()); text != "" {
			blocks = append(blocks, block{Kind: blockParagraph, Text: text})
		}
		run.Reset()
	}

	doc.Find("body").Contents().Each(func(_ int, s *goquery.Selection) {
		n := s.Get(0)
		switch {
		case n.Type == html.TextNode:
			run.WriteString(n.Data)
			return
		case n.Type != html.ElementNode:
			return
		case !normalize.IsBoundary(n):
			if n.Data == "br" {
				run.WriteString(" ")
			}
			run.WriteString(s.Text())
			return
		}

		flush()

		name := goquery.NodeName(s)
		var b block
		switch name {
		case "h1", "h2", "h3", "h4", "h5", "h6":
			b = block{Kind: blockHeading, Level: int(name[1] - '0'), Text: collapse(s.Text())}
		case "ul", "ol":
			b = block{Kind: blockList}
			if name == "ol" {
				b.Kind = blockOrderedList
			}
			s.Find("li").Each(func(_ int, li *goquery.Selection) {
				if item := collapse(li.Text()); item != "" {
					b.Items = append(b.Items, item)
				}
			})
			if len(b.Items) > 0 {
				blocks = append(blocks, b)
			}
			return
		case "blockquote":
			b = block{Kind: blockQuote, Text: collapse(s.Text())}
		case "pre":
			b = block{Kind: blockPre, Text: strings.Trim(s.Text(), "\n")}
		default:
			b = block{Kind: blockParagraph, Text: collapse(s.Text())}
		}

		if strings.TrimSpace(b.Text) != "" {
			blocks = append(blocks, b)
		}
	})
	flush()

	return blocks
}

// plainText joins block texts with blank lines, lists one item per line.
func plainText(blocks []block) string {
	parts := make([]string, 0, len(blocks))
	for _, b := range blocks {
		switch b.Kind {
		case blockList, blockOrderedList:
			parts = append(parts, strings.Join(b.Items, "\n"))
		default:
			parts = append(parts, b.Text)
		}
	}
	return strings.Join(parts, "\n\n")
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
