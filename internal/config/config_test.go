package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "postpipe.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "html", cfg.Format)
	assert.Equal(t, "/blog/", cfg.PostPrefix)
	assert.Equal(t, 40, cfg.ExcerptWords)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 30*time.Second, cfg.Fetch.Timeout)
	assert.False(t, cfg.StrictBlocks)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
output_dir: ./out
format: markdown
strict_blocks: true
sanitize: true
post_prefix: /news/
log_level: debug
fetch:
  timeout: 5s
  user_agent: sticker-bot
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "./out", cfg.OutputDir)
	assert.Equal(t, "markdown", cfg.Format)
	assert.True(t, cfg.StrictBlocks)
	assert.True(t, cfg.Sanitize)
	assert.Equal(t, "/news/", cfg.PostPrefix)
	assert.Equal(t, 40, cfg.ExcerptWords, "absent keys keep defaults")
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 5*time.Second, cfg.Fetch.Timeout)
	assert.Equal(t, "sticker-bot", cfg.Fetch.UserAgent)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{name: "bad yaml", content: "format: [", wantErr: "failed to parse config"},
		{name: "bad timeout", content: "fetch:\n  timeout: soon\n", wantErr: "invalid fetch timeout"},
		{name: "unknown format", content: "format: docx\n", wantErr: "format must be one of"},
		{name: "unknown level", content: "log_level: loud\n", wantErr: "log_level must be one of"},
		{name: "negative excerpt", content: "excerpt_words: -1\n", wantErr: "excerpt_words"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_Timeout(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Fetch.Timeout = 0
	assert.Error(t, cfg.Validate())
}
