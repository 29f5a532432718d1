package render

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/gaurav-prasanna/postpipe/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePost = `<h2>Why vinyl</h2><p>Vinyl stickers survive <a href="/care">rain and sun</a>.</p>` +
	`<ul><li>Waterproof</li><li>UV resistant</li></ul>` +
	`<blockquote>Best stickers ever.</blockquote>` +
	`<h3>Sizes</h3><p>From 1in to 12in. <img src="/s.png" alt=""></p>`

var sampleMeta = core.PostMetadata{
	Source: "https://shop.example.com/blog/why-vinyl",
	Slug:   "why-vinyl",
	Title:  "Why Vinyl",
}

func TestCollectBlocks(t *testing.T) {
	doc, err := parseDocument(samplePost + "loose tail")
	require.NoError(t, err)

	blocks := collectBlocks(doc)
	require.Len(t, blocks, 7)

	assert.Equal(t, block{Kind: blockHeading, Level: 2, Text: "Why vinyl"}, blocks[0])
	assert.Equal(t, blockParagraph, blocks[1].Kind)
	assert.Equal(t, "Vinyl stickers survive rain and sun.", blocks[1].Text)
	assert.Equal(t, []string{"Waterproof", "UV resistant"}, blocks[2].Items)
	assert.Equal(t, blockQuote, blocks[3].Kind)
	assert.Equal(t, 3, blocks[4].Level)
	assert.Equal(t, block{Kind: blockParagraph, Text: "loose tail"}, blocks[6])
}

func TestCollectBlocks_LooseRunsBesideBlocks(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "inline markup after heading",
			content: "<h2>Intro</h2>Buy <b>vinyl</b> stickers today.",
			want:    "Intro\n\nBuy vinyl stickers today.",
		},
		{
			name:    "runs on both sides of a quote",
			content: "Said <em>best</em>:<blockquote>Stickers!</blockquote>Thanks <a href=\"/\">all</a>",
			want:    "Said best:\n\nStickers!\n\nThanks all",
		},
		{
			name:    "line break inside a run",
			content: "<h3>Sizes</h3>one<br>two",
			want:    "Sizes\n\none two",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := parseDocument(tt.content)
			require.NoError(t, err)
			assert.Equal(t, tt.want, plainText(collectBlocks(doc)))
		})
	}
}

func TestHTMLRenderer(t *testing.T) {
	r := NewHTMLRenderer()
	data, err := r.Render("<p>x</p>", sampleMeta)
	require.NoError(t, err)
	assert.Equal(t, "<p>x</p>", string(data))
	assert.Equal(t, ".html", r.Extension())
}

func TestMarkdownRenderer(t *testing.T) {
	r := NewMarkdownRenderer()

	data, err := r.Render(samplePost, sampleMeta)
	require.NoError(t, err)

	md := string(data)
	assert.Contains(t, md, "## Why vinyl")
	assert.Contains(t, md, "[rain and sun](/care)")
	assert.Contains(t, md, "Waterproof")
	assert.Contains(t, md, "> Best stickers ever.")
	assert.Equal(t, ".md", r.Extension())

	data, err = r.Render("<p>Hello <strong>world</strong></p>", sampleMeta)
	require.NoError(t, err)
	assert.Equal(t, "Hello **world**\n", string(data))
}

func TestJSONRenderer(t *testing.T) {
	r := NewJSONRenderer(4)

	data, err := r.Render(samplePost, sampleMeta)
	require.NoError(t, err)

	var post core.PostJSON
	require.NoError(t, json.Unmarshal(data, &post))

	assert.Equal(t, sampleMeta, post.Metadata)
	assert.Equal(t, samplePost, post.Content.HTML)
	assert.Equal(t, "Why vinyl Vinyl stickers…", post.Content.Excerpt)
	assert.Contains(t, post.Content.Text, "Why vinyl\n\nVinyl stickers survive rain and sun.")
	assert.Contains(t, post.Content.Text, "Waterproof\nUV resistant")

	assert.Equal(t, []core.Heading{{Level: 2, Text: "Why vinyl"}, {Level: 3, Text: "Sizes"}}, post.Structure.Headings)
	assert.Equal(t, []core.Link{{Text: "rain and sun", Href: "/care"}}, post.Structure.Links)
	assert.Equal(t, 2, post.Structure.Paragraphs)
	assert.Equal(t, 1, post.Structure.Lists)
	assert.Equal(t, 1, post.Structure.Blockquotes)
	assert.Equal(t, 1, post.Structure.Images)
	assert.Equal(t, ".json", r.Extension())
}

func TestJSONRenderer_EmptyStructure(t *testing.T) {
	data, err := NewJSONRenderer(0).Render("", core.PostMetadata{Slug: "post"})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"headings": []`)
	assert.Contains(t, string(data), `"links": []`)
}

func TestPDFRenderer(t *testing.T) {
	r := NewPDFRenderer()

	data, err := r.Render(samplePost+"<pre>code\n  block</pre><ol><li>one</li></ol>", sampleMeta)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
	assert.Equal(t, ".pdf", r.Extension())
}
