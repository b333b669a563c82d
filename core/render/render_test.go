package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/notepipe/core"
	"github.com/gaurav-prasanna/notepipe/core/normalize"
	"github.com/gaurav-prasanna/notepipe/core/typography"
)

func sampleBlocks() core.BlockSequence {
	return core.BlockSequence{
		{ID: 1, Type: core.Heading1, Content: "Groceries"},
		{ID: 2, Type: core.Paragraph, Content: "Weekly run"},
		{ID: 3, Type: core.Bullet, Content: "eggs"},
		{ID: 4, Type: core.Bullet, Content: "free range", IndentLevel: 1},
		{ID: 5, Type: core.Numbered, Content: "first", Number: 1},
		{ID: 6, Type: core.Numbered, Content: "second", Number: 2},
		{ID: 7, Type: core.Todo, Content: "call mom"},
		{ID: 8, Type: core.Todo, Content: "pay rent", Checked: true},
		{ID: 9, Type: core.Blockquote, Content: "be kind"},
		{ID: 10, Type: core.Code, Content: "x := 1\n  y"},
		{ID: 11, Type: core.Divider},
		{ID: 12, Type: core.Heading3, Content: "Notes"},
	}
}

func sampleDoc() core.Document {
	blocks := sampleBlocks()
	return core.Document{
		Meta:       core.NoteMetadata{ID: "groceries", Title: "Shopping"},
		Blocks:     blocks,
		Typography: typography.Compute(blocks),
	}
}

// withoutIDs drops ids so sequences from different parses compare.
func withoutIDs(blocks core.BlockSequence) core.BlockSequence {
	out := blocks.Clone()
	for i := range out {
		out[i].ID = 0
	}
	return out
}

func TestHTMLRenderer_RoundTrips(t *testing.T) {
	data, err := NewHTMLRenderer().Render(sampleDoc())
	require.NoError(t, err)

	out := string(data)
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "<title>Shopping</title>")
	assert.Contains(t, out, `data-checked="true"`)
	assert.Contains(t, out, `data-indent="1"`)
	assert.Contains(t, out, ".note h1{font-size:")

	assert.Equal(t, withoutIDs(sampleBlocks()), withoutIDs(normalize.Normalize(out)))
}

func TestHTMLRenderer_TitleFallsBackToID(t *testing.T) {
	data, err := NewHTMLRenderer().Render(core.Document{Meta: core.NoteMetadata{ID: "n1"}})
	require.NoError(t, err)
	assert.Contains(t, string(data), "<title>n1</title>")
	assert.Contains(t, string(data), `data-scale="1.00"`)
}

func TestFragment_ListGrouping(t *testing.T) {
	blocks := core.BlockSequence{
		{Type: core.Numbered, Content: "a", Number: 3},
		{Type: core.Numbered, Content: "b", Number: 4},
		{Type: core.Bullet, Content: "c"},
		{Type: core.Todo, Content: "d"},
		{Type: core.Tag, Content: "work"},
	}
	s, err := renderFragment(Fragment(blocks))
	require.NoError(t, err)
	assert.Equal(t,
		`<ol start="3"><li>a</li><li>b</li></ol><ul><li>c</li></ul>`+
			`<ul data-type="taskList"><li data-type="taskItem" data-checked="false">d</li></ul>`+
			`<p><span class="tag">#work</span></p>`,
		s)
}

func TestFragment_EscapesText(t *testing.T) {
	s, err := renderFragment(Fragment(core.BlockSequence{{Type: core.Paragraph, Content: "a < b & c"}}))
	require.NoError(t, err)
	assert.Equal(t, "<p>a &lt; b &amp; c</p>", s)
}

func TestMarkdownRenderer(t *testing.T) {
	data, err := NewMarkdownRenderer().Render(sampleDoc())
	require.NoError(t, err)

	md := string(data)
	assert.Contains(t, md, "# Groceries")
	assert.Contains(t, md, "- eggs")
	assert.Contains(t, md, "1. first")
	assert.Contains(t, md, "- [ ] call mom\n- [x] pay rent")
	assert.Contains(t, md, "> be kind")
	assert.Contains(t, md, "```")
	assert.Contains(t, md, "x := 1")
	assert.True(t, strings.HasSuffix(md, "\n"))

	blocks := normalize.Normalize(md)
	require.NotEmpty(t, blocks)
	assert.Equal(t, core.Block{ID: blocks[0].ID, Type: core.Heading1, Content: "Groceries"}, blocks[0])
}

func TestToMarkdown_Empty(t *testing.T) {
	md, err := ToMarkdown(nil)
	require.NoError(t, err)
	assert.Equal(t, "", md)
}

func TestSplitTodoRuns(t *testing.T) {
	blocks := core.BlockSequence{
		{Type: core.Todo}, {Type: core.Todo}, {Type: core.Paragraph}, {Type: core.Todo},
	}
	runs := splitTodoRuns(blocks)
	require.Len(t, runs, 3)
	assert.Len(t, runs[0], 2)
	assert.Len(t, runs[1], 1)
	assert.Len(t, runs[2], 1)
}

func TestJSONRenderer(t *testing.T) {
	data, err := NewJSONRenderer().Render(sampleDoc())
	require.NoError(t, err)

	var note NoteJSON
	require.NoError(t, json.Unmarshal(data, &note))

	assert.Equal(t, "groceries", note.Metadata.ID)
	assert.Equal(t, sampleBlocks(), note.Blocks)
	assert.Equal(t, typography.Compute(sampleBlocks()).Scale, note.Typography.Scale)
	assert.Equal(t, []Heading{{1, "Groceries"}, {3, "Notes"}}, note.Structure.Headings)
	assert.Equal(t, 1, note.Structure.CodeBlocks)
	assert.Equal(t, 6, note.Structure.ListItems)
	assert.Equal(t, 2, note.Structure.Todos)
	assert.Equal(t, 1, note.Structure.TodosDone)
	assert.Equal(t, 1, note.Structure.Dividers)
	require.Len(t, note.Content.Sections, 2)
	assert.Equal(t, "Notes", note.Content.Sections[1].Heading)
	assert.Contains(t, note.Content.Markdown, "# Groceries")
}

func TestJSONRenderer_EmptyDocument(t *testing.T) {
	data, err := NewJSONRenderer().Render(core.Document{})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"blocks": []`)
	assert.Contains(t, string(data), `"sections": []`)
	assert.Contains(t, string(data), `"scale": 1`)
}

func TestPDFRenderer(t *testing.T) {
	r := NewPDFRenderer("")
	assert.Equal(t, "A4", r.PageSize)
	assert.Equal(t, ".pdf", r.Extension())

	data, err := r.Render(sampleDoc())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))

	_, err = NewPDFRenderer("Napkin").Render(sampleDoc())
	assert.Error(t, err)
}

func TestPointSize(t *testing.T) {
	assert.InDelta(t, 24.0, pointSize(core.Token{Size: 2, Unit: "rem"}), 1e-9)
	assert.InDelta(t, 12.75, pointSize(core.Token{Size: 17, Unit: "px"}), 1e-9)
}

func TestTermRenderer(t *testing.T) {
	r := NewTermRenderer(0, "notty")
	assert.Equal(t, 80, r.Width)

	data, err := r.Render(sampleDoc())
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "Shopping")
	assert.Contains(t, out, "call mom")
	assert.Contains(t, out, "free range")

	empty, err := r.Render(core.Document{})
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestRenderers_Extensions(t *testing.T) {
	for ext, r := range map[string]core.Renderer{
		".json": NewJSONRenderer(),
		".md":   NewMarkdownRenderer(),
		".html": NewHTMLRenderer(),
		".pdf":  NewPDFRenderer("A4"),
		".txt":  NewTermRenderer(80, ""),
	} {
		assert.Equal(t, ext, r.Extension())
	}
}
