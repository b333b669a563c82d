// Package config loads notepipe settings from an optional YAML file and
// NOTEPIPE_* environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/gaurav-prasanna/notepipe/core"
)

// Config holds the complete application configuration.
type Config struct {
	LogLevel    string     `mapstructure:"log_level"`
	OutputDir   string     `mapstructure:"output_dir"`
	Format      string     `mapstructure:"format"` // json, markdown, html, pdf, term
	FrontMatter bool       `mapstructure:"front_matter"`
	CacheSize   int        `mapstructure:"cache_size"`
	PDF         PDFConfig  `mapstructure:"pdf"`
	Term        TermConfig `mapstructure:"term"`
}

// PDFConfig holds PDF renderer settings.
type PDFConfig struct {
	PageSize string `mapstructure:"page_size"`
}

// TermConfig holds terminal preview settings.
type TermConfig struct {
	Width int `mapstructure:"width"`
}

// Formats lists the accepted output formats.
var Formats = []string{"json", "markdown", "html", "pdf", "term"}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:  "info",
		Format:    "json",
		CacheSize: 256,
		PDF:       PDFConfig{PageSize: "A4"},
		Term:      TermConfig{Width: 80},
	}
}

// Load reads configuration from path (if non-empty), the environment and
// defaults, in decreasing priority. Without a path, ./notepipe.yaml is used
// when present.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("NOTEPIPE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("notepipe")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || path != "" {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks enumerated and numeric settings.
func (c *Config) Validate() error {
	if !isFormat(c.Format) {
		return fmt.Errorf("format %q: %w (must be one of %s)", c.Format, core.ErrUnsupportedFormat, strings.Join(Formats, ", "))
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("cache_size must not be negative (got %d)", c.CacheSize)
	}
	if c.Term.Width <= 0 {
		return fmt.Errorf("term.width must be positive (got %d)", c.Term.Width)
	}
	switch strings.ToUpper(c.PDF.PageSize) {
	case "A4", "A5", "LETTER", "LEGAL":
	default:
		return fmt.Errorf("pdf.page_size %q: %w", c.PDF.PageSize, core.ErrUnsupportedFormat)
	}
	return nil
}

func isFormat(f string) bool {
	for _, known := range Formats {
		if f == known {
			return true
		}
	}
	return false
}

func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("output_dir", d.OutputDir)
	v.SetDefault("format", d.Format)
	v.SetDefault("front_matter", d.FrontMatter)
	v.SetDefault("cache_size", d.CacheSize)
	v.SetDefault("pdf.page_size", d.PDF.PageSize)
	v.SetDefault("term.width", d.Term.Width)
}
