package extract

import (
	"testing"
	"time"

	"github.com/gaurav-prasanna/postpipe/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const postPage = `<!DOCTYPE html>
<html lang="en-GB">
<head>
<title>Vinyl vs Paper | Sticker Shop</title>
<meta property="og:title" content="Vinyl vs Paper Stickers">
<script>track()</script>
</head>
<body>
<nav>Home</nav>
<article>
<h1>Vinyl vs Paper Stickers</h1>
<div class="post-content"><h2>Why vinyl</h2><p>Durable.</p><div class="share">Share</div></div>
</article>
<footer>Footer</footer>
</body>
</html>`

func TestPostExtractor_Extract(t *testing.T) {
	e := New()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "post content container",
			input: postPage,
			want:  "<h2>Why vinyl</h2><p>Durable.</p>",
		},
		{
			name:  "article fallback",
			input: "<html><body><nav>x</nav><article><p>Body</p></article></body></html>",
			want:  "<p>Body</p>",
		},
		{
			name:  "body fallback keeps loose text",
			input: "<html><body>Loose <b>text</b><script>x()</script></body></html>",
			want:  "Loose <b>text</b>",
		},
		{
			name:  "fragment passes through untouched",
			input: "<UL><li>one</UL> and Hello <strong>world</strong>",
			want:  "<UL><li>one</UL> and Hello <strong>world</strong>",
		},
		{
			name:  "plain text passes through",
			input: "First para.\n\nSecond para.",
			want:  "First para.\n\nSecond para.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.Extract(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPostExtractor_ExtractNoContainer(t *testing.T) {
	inputs := []string{
		"<html><body></body></html>",
		"<!DOCTYPE html><html><head><title>Shop</title></head><body>\n  </body></html>",
		"<html><body><nav>Home</nav><script>track()</script><footer>Footer</footer></body></html>",
	}

	for _, in := range inputs {
		_, err := New().Extract(in)
		assert.ErrorIs(t, err, core.ErrNoContainer, "input=%q", in)
	}
}

func TestIsDocument(t *testing.T) {
	assert.True(t, IsDocument("<!doctype html><p>x</p>"))
	assert.True(t, IsDocument("<HTML><body></body></HTML>"))
	assert.True(t, IsDocument(`<body class="post">x</body>`))
	assert.False(t, IsDocument("<p>x</p>"))
	assert.False(t, IsDocument("see <bodyguard> and <header>"))
}

func TestMetadata(t *testing.T) {
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	now = func() time.Time { return fixed }
	t.Cleanup(func() { now = time.Now })

	t.Run("url source", func(t *testing.T) {
		meta := Metadata("https://shop.example.com/blog/vinyl-vs-paper/", postPage)
		assert.Equal(t, "shop.example.com", meta.Domain)
		assert.Equal(t, "/blog/vinyl-vs-paper/", meta.Path)
		assert.Equal(t, "vinyl-vs-paper", meta.Slug)
		assert.Equal(t, "Vinyl vs Paper Stickers", meta.Title)
		assert.Equal(t, "en-GB", meta.Language)
		assert.Equal(t, "2026-03-01T12:00:00Z", meta.FetchedAt)
	})

	t.Run("file source with h1 title", func(t *testing.T) {
		meta := Metadata("posts/banner-care.html", "<h1>Banner care</h1>Keep it dry.")
		assert.Empty(t, meta.Domain)
		assert.Equal(t, "banner-care", meta.Slug)
		assert.Equal(t, "Banner care", meta.Title)
		assert.Equal(t, "en", meta.Language)
	})

	t.Run("stdin source", func(t *testing.T) {
		meta := Metadata("-", "Hello")
		assert.Equal(t, "post", meta.Slug)
		assert.Empty(t, meta.Title)
	})

	t.Run("site root", func(t *testing.T) {
		meta := Metadata("https://shop.example.com/", "")
		assert.Equal(t, "index", meta.Slug)
	})
}
