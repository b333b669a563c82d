// Package chunk groups a block sequence into heading-delimited sections.
// Blocks before the first heading form an untitled section at level 0.
package chunk

import (
	"strings"

	"github.com/gaurav-prasanna/notepipe/core"
)

// Section is a heading and the blocks that follow it up to the next heading.
type Section struct {
	Heading  string `json:"heading,omitempty"`
	Level    int    `json:"level"`
	BlockIDs []int  `json:"blockIds"`
	Text     string `json:"text"`
}

// Sections splits blocks at every heading. Dividers end nothing; they stay
// inside the current section but contribute no text.
func Sections(blocks core.BlockSequence) []Section {
	var (
		sections []Section
		current  *Section
		lines    []string
	)
	flush := func() {
		if current == nil {
			return
		}
		current.Text = strings.Join(lines, "\n")
		sections = append(sections, *current)
		lines = nil
	}

	for _, b := range blocks {
		if lvl := Level(b.Type); lvl > 0 {
			flush()
			current = &Section{Heading: b.Content, Level: lvl, BlockIDs: []int{b.ID}}
			continue
		}
		if current == nil {
			current = &Section{}
		}
		current.BlockIDs = append(current.BlockIDs, b.ID)
		if b.Content != "" {
			lines = append(lines, b.Content)
		}
	}
	flush()
	return sections
}

// Level returns 1-3 for heading types and 0 otherwise.
func Level(t core.BlockType) int {
	switch t {
	case core.Heading1:
		return 1
	case core.Heading2:
		return 2
	case core.Heading3:
		return 3
	}
	return 0
}

// PlainText joins the content of every non-empty block, one per line.
func PlainText(blocks core.BlockSequence) string {
	lines := make([]string, 0, len(blocks))
	for _, b := range blocks {
		if b.Content != "" {
			lines = append(lines, b.Content)
		}
	}
	return strings.Join(lines, "\n")
}
