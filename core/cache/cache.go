// Package cache memoises normalization results for repeated content.
package cache

import (
	"crypto/sha256"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/gaurav-prasanna/notepipe/core"
)

var _ core.Normalizer = (*Normalizer)(nil)

// Normalizer wraps another normalizer with an LRU keyed by the SHA-256 of the
// raw content. Only string and []byte input is cached; everything else goes
// straight to the wrapped normalizer. Results are copied on the way in and
// out, so callers may modify the sequences they get back.
type Normalizer struct {
	next    core.Normalizer
	entries *lru.Cache[[sha256.Size]byte, core.BlockSequence]
}

// New wraps next with a cache holding up to size sequences.
func New(next core.Normalizer, size int) (*Normalizer, error) {
	entries, err := lru.New[[sha256.Size]byte, core.BlockSequence](size)
	if err != nil {
		return nil, fmt.Errorf("creating normalize cache: %w", err)
	}
	return &Normalizer{next: next, entries: entries}, nil
}

// Normalize returns the cached sequence for raw or computes and stores it.
func (c *Normalizer) Normalize(raw any) core.BlockSequence {
	var key [sha256.Size]byte
	switch v := raw.(type) {
	case string:
		key = sha256.Sum256([]byte(v))
	case []byte:
		key = sha256.Sum256(v)
	default:
		return c.next.Normalize(raw)
	}

	if blocks, ok := c.entries.Get(key); ok {
		return blocks.Clone()
	}
	blocks := c.next.Normalize(raw)
	c.entries.Add(key, blocks.Clone())
	return blocks
}

// Len returns the number of cached sequences.
func (c *Normalizer) Len() int {
	return c.entries.Len()
}
