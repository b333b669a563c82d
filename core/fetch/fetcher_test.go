package fetch

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/notepipe/core"
)

func writeNote(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(filepath.Join(dir, name)), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestFileSource_Text(t *testing.T) {
	dir := t.TempDir()
	writeNote(t, dir, "trip/packing.md", "# Packing\n- passport")

	note, err := New(dir).Load(context.Background(), "trip/packing.md")
	require.NoError(t, err)
	assert.Equal(t, "trip/packing.md", note.ID)
	assert.Equal(t, filepath.Join(dir, "trip/packing.md"), note.Path)
	assert.Equal(t, "packing", note.Title)
	assert.Equal(t, "# Packing\n- passport", note.Content)
	assert.Nil(t, note.Blocks)
	assert.Equal(t, "# Packing\n- passport", note.Raw())
}

func TestFileSource_FrontMatterTitle(t *testing.T) {
	dir := t.TempDir()
	writeNote(t, dir, "a.md", "---\ntitle: Weekly Plan\n---\nbody")

	note, err := New(dir).Load(context.Background(), "a.md")
	require.NoError(t, err)
	assert.Equal(t, "Weekly Plan", note.Title)
	assert.True(t, strings.HasPrefix(note.Content, "---"), "content is left for the normalizer")
}

func TestFileSource_Blocks(t *testing.T) {
	dir := t.TempDir()
	writeNote(t, dir, "saved.blocks.json", `[{"id":3,"type":"todo","content":"x","checked":true}]`)

	note, err := New(dir).Load(context.Background(), "saved.blocks.json")
	require.NoError(t, err)
	assert.Equal(t, "saved", note.Title)
	assert.Equal(t, core.BlockSequence{{ID: 3, Type: core.Todo, Content: "x", Checked: true}}, note.Blocks)
	assert.Equal(t, note.Blocks, note.Raw())
}

func TestFileSource_BadBlocks(t *testing.T) {
	dir := t.TempDir()
	writeNote(t, dir, "bad.blocks.json", `{"not":"a list"}`)

	_, err := New(dir).Load(context.Background(), "bad.blocks.json")
	assert.Error(t, err)
}

func TestFileSource_Stdin(t *testing.T) {
	src := &FileSource{Stdin: strings.NewReader("<p>hello</p>")}

	note, err := src.Load(context.Background(), StdinID)
	require.NoError(t, err)
	assert.Equal(t, "<p>hello</p>", note.Content)
	assert.Equal(t, "", note.Title)
	assert.Equal(t, "", note.Path)
}

func TestFileSource_Errors(t *testing.T) {
	dir := t.TempDir()
	src := New(dir)

	_, err := src.Load(context.Background(), "missing.md")
	assert.ErrorIs(t, err, core.ErrNotFound)

	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0755))
	_, err = src.Load(context.Background(), "sub")
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = src.Load(ctx, "missing.md")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNoteName(t *testing.T) {
	assert.Equal(t, "plan", NoteName("dir/plan.md"))
	assert.Equal(t, "saved", NoteName("saved.BLOCKS.JSON"))
	assert.Equal(t, "README", NoteName("README"))
}
