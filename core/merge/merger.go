// Package merge cleans up a freshly parsed block sequence.
package merge

import "github.com/gaurav-prasanna/notepipe/core"

// Blocks drops blocks with empty content (dividers excepted) and any block
// identical in type and content to the block retained just before it. The
// input is not modified. Merging an already merged sequence is a no-op.
func Blocks(in core.BlockSequence) core.BlockSequence {
	out := make(core.BlockSequence, 0, len(in))
	for _, b := range in {
		if b.Content == "" && b.Type != core.Divider {
			continue
		}
		if n := len(out); n > 0 && out[n-1].SameAs(b) {
			continue
		}
		out = append(out, b)
	}
	return out
}
