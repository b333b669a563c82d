package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/notepipe/core"
)

func TestBlocks(t *testing.T) {
	in := core.BlockSequence{
		{ID: 1, Type: core.Heading1, Content: "Title"},
		{ID: 2, Type: core.Heading1, Content: "Title"},
		{ID: 3, Type: core.Paragraph, Content: ""},
		{ID: 4, Type: core.Divider},
		{ID: 5, Type: core.Divider},
		{ID: 6, Type: core.Paragraph, Content: "Title"},
		{ID: 7, Type: core.Code, Content: ""},
		{ID: 8, Type: core.Paragraph, Content: "Title"},
	}

	out := Blocks(in)

	require.Len(t, out, 3)
	assert.Equal(t, []int{1, 4, 6}, []int{out[0].ID, out[1].ID, out[2].ID})
	assert.Len(t, in, 8, "input untouched")
}

func TestBlocks_DuplicateAcrossDroppedEmpty(t *testing.T) {
	in := core.BlockSequence{
		{ID: 1, Type: core.Bullet, Content: "x"},
		{ID: 2, Type: core.Bullet, Content: ""},
		{ID: 3, Type: core.Bullet, Content: "x"},
	}

	out := Blocks(in)
	require.Len(t, out, 1, "compared against the last retained block")
}

func TestBlocks_TodoStateIgnored(t *testing.T) {
	in := core.BlockSequence{
		{ID: 1, Type: core.Todo, Content: "call"},
		{ID: 2, Type: core.Todo, Content: "call", Checked: true},
	}
	assert.Len(t, Blocks(in), 1)
}

func TestBlocks_Idempotent(t *testing.T) {
	in := core.BlockSequence{
		{ID: 1, Type: core.Paragraph, Content: "a"},
		{ID: 2, Type: core.Paragraph, Content: "a"},
		{ID: 3, Type: core.Bullet, Content: "a"},
		{ID: 4, Type: core.Divider},
		{ID: 5, Type: core.Blockquote, Content: ""},
	}

	once := Blocks(in)
	assert.Equal(t, once, Blocks(once))
}

func TestBlocks_Empty(t *testing.T) {
	out := Blocks(nil)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}
