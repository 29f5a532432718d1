package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gaurav-prasanna/postpipe/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPFetcher_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/blog/die-cut":
			assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))
			_, _ = w.Write([]byte("<article>Die cut <b>stickers</b></article>"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	f := NewHTTP(0, "test-agent")

	t.Run("ok", func(t *testing.T) {
		res, err := f.Fetch(context.Background(), srv.URL+"/blog/die-cut")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.Contains(t, res.HTML, "<b>stickers</b>")
	})

	t.Run("not found", func(t *testing.T) {
		_, err := f.Fetch(context.Background(), srv.URL+"/missing")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unexpected status 404")
	})
}

func TestFileFetcher_Fetch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "post.html")
	require.NoError(t, os.WriteFile(path, []byte("Hello world"), 0o644))

	f := &FileFetcher{Stdin: strings.NewReader("from stdin")}

	res, err := f.Fetch(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "Hello world", res.HTML)
	assert.Zero(t, res.StatusCode)

	res, err = f.Fetch(context.Background(), "-")
	require.NoError(t, err)
	assert.Equal(t, "from stdin", res.HTML)

	_, err = f.Fetch(context.Background(), filepath.Join(dir, "nope.html"))
	assert.Error(t, err)
}

func TestSourceFetcher_Fetch(t *testing.T) {
	f := New(0, "")

	_, err := f.Fetch(context.Background(), "  ")
	assert.ErrorIs(t, err, core.ErrEmptySource)

	_, err = f.Fetch(context.Background(), "ftp://example.com/post")
	assert.ErrorIs(t, err, core.ErrUnsupportedSource)
}

func TestIsURL(t *testing.T) {
	tests := []struct {
		source string
		want   bool
	}{
		{"https://example.com/blog/x", true},
		{"http://example.com", true},
		{"posts/x.html", false},
		{"-", false},
		{"https://", false},
		{"mailto:hi@example.com", false},
	}
	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			assert.Equal(t, tt.want, IsURL(tt.source))
		})
	}
}
