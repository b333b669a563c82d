// Package normalize is the entry point of the note normalization engine.
// It decides whether raw content is structured markup or line-oriented text,
// routes it to the markup walker or the line scanner, and merges the result
// into the canonical block sequence.
//
// Normalize never fails: unsupported input degrades to an empty sequence and
// markup that cannot be parsed is scanned as text.
package normalize

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/rs/zerolog"
	"golang.org/x/text/unicode/norm"

	"github.com/gaurav-prasanna/notepipe/core"
	"github.com/gaurav-prasanna/notepipe/core/extract"
	"github.com/gaurav-prasanna/notepipe/core/merge"
	"github.com/gaurav-prasanna/notepipe/core/scan"
	"github.com/gaurav-prasanna/notepipe/core/walk"
)

// Ensure Normalizer implements the interface.
var _ core.Normalizer = (*Normalizer)(nil)

// markupTag matches an opening, closing or self-closing tag.
var markupTag = regexp.MustCompile(`(?i)</?[a-z][a-z0-9-]*(?:\s[^<>]*)?/?>`)

// LooksLikeMarkup reports whether s contains something shaped like a tag.
func LooksLikeMarkup(s string) bool {
	return markupTag.MatchString(s)
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithLogger sets the logger used for routing traces.
func WithLogger(l zerolog.Logger) Option {
	return func(n *Normalizer) {
		n.logger = l.With().Str("component", "normalize").Logger()
	}
}

// WithFrontMatter strips a leading YAML/TOML front-matter block from text
// notes before scanning.
func WithFrontMatter(enabled bool) Option {
	return func(n *Normalizer) {
		n.frontMatter = enabled
	}
}

// Normalizer converts raw note content into a BlockSequence. It holds only
// configuration and is safe for concurrent use.
type Normalizer struct {
	logger      zerolog.Logger
	frontMatter bool
	extractor   *extract.Extractor
}

// New creates a Normalizer.
func New(opts ...Option) *Normalizer {
	n := &Normalizer{
		logger:    zerolog.Nop(),
		extractor: extract.New(),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

var defaultNormalizer = New()

// Normalize runs the default Normalizer.
func Normalize(raw any) core.BlockSequence {
	return defaultNormalizer.Normalize(raw)
}

// Normalize converts raw into blocks. An existing block sequence is returned
// unchanged; strings and byte slices are parsed; anything else yields an
// empty sequence.
func (n *Normalizer) Normalize(raw any) core.BlockSequence {
	switch v := raw.(type) {
	case core.BlockSequence:
		if v == nil {
			return core.BlockSequence{}
		}
		return v
	case []core.Block:
		if v == nil {
			return core.BlockSequence{}
		}
		return core.BlockSequence(v)
	case string:
		return n.NormalizeString(v)
	case []byte:
		return n.NormalizeString(string(v))
	case nil:
		return core.BlockSequence{}
	default:
		n.logger.Debug().Str("type", fmt.Sprintf("%T", raw)).Msg("unsupported raw content, returning empty sequence")
		return core.BlockSequence{}
	}
}

// NormalizeString converts text or markup into blocks.
func (n *Normalizer) NormalizeString(s string) core.BlockSequence {
	s = strings.TrimPrefix(s, "\ufeff")
	s = norm.NFC.String(s)
	if strings.TrimSpace(s) == "" {
		return core.BlockSequence{}
	}

	if LooksLikeMarkup(s) {
		root, err := n.extractor.Extract(s)
		if err == nil {
			blocks := merge.Blocks(walk.Tree(root))
			n.logger.Debug().Str("route", "markup").Int("blocks", len(blocks)).Msg("normalized")
			return blocks
		}
		n.logger.Debug().Err(err).Msg("markup extraction failed, scanning as text")
	}

	if n.frontMatter {
		s = stripFrontMatter(s)
	}
	blocks := merge.Blocks(scan.Lines(s))
	n.logger.Debug().Str("route", "text").Int("blocks", len(blocks)).Msg("normalized")
	return blocks
}

// stripFrontMatter removes a leading front-matter block. Content without
// front matter, or with front matter that fails to parse, is returned as is.
func stripFrontMatter(s string) string {
	var meta map[string]any
	body, err := frontmatter.Parse(strings.NewReader(s), &meta)
	if err != nil {
		return s
	}
	return string(bytes.TrimLeft(body, "\r\n"))
}
