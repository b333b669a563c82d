package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/notepipe/core"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
log_level: debug
format: markdown
front_matter: true
cache_size: 16
pdf:
  page_size: Letter
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "markdown", cfg.Format)
	assert.True(t, cfg.FrontMatter)
	assert.Equal(t, 16, cfg.CacheSize)
	assert.Equal(t, "Letter", cfg.PDF.PageSize)
	assert.Equal(t, 80, cfg.Term.Width)
}

func TestLoad_Env(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("NOTEPIPE_FORMAT", "pdf")
	t.Setenv("NOTEPIPE_TERM_WIDTH", "120")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "pdf", cfg.Format)
	assert.Equal(t, 120, cfg.Term.Width)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"unknown format", func(c *Config) { c.Format = "docx" }, false},
		{"negative cache", func(c *Config) { c.CacheSize = -1 }, false},
		{"zero width", func(c *Config) { c.Term.Width = 0 }, false},
		{"lowercase page size", func(c *Config) { c.PDF.PageSize = "a5" }, true},
		{"unknown page size", func(c *Config) { c.PDF.PageSize = "B9" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}

	bad := DefaultConfig()
	bad.Format = "docx"
	assert.ErrorIs(t, bad.Validate(), core.ErrUnsupportedFormat)
}
