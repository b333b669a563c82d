package crawl

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/notepipe/core"
)

func write(t *testing.T, root, rel, content string) string {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDiscoverAll_Tree(t *testing.T) {
	root := t.TempDir()
	write(t, root, "b.md", "")
	write(t, root, "a.txt", "")
	write(t, root, "sub/c.html", "")
	write(t, root, "sub/d.blocks.json", "[]")
	write(t, root, "image.png", "")
	write(t, root, ".hidden.md", "")
	write(t, root, ".git/e.md", "")

	notes, err := DiscoverAll(context.Background(), root)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "a.txt"),
		filepath.Join(root, "b.md"),
		filepath.Join(root, "sub", "c.html"),
		filepath.Join(root, "sub", "d.blocks.json"),
	}, notes)
}

func TestDiscoverAll_Links(t *testing.T) {
	root := t.TempDir()
	start := write(t, root, "index.md", "See [packing](trip/packing.md) and [site](https://example.com) and [self](#top) and [missing](gone.md)")
	write(t, root, "trip/packing.md", `back to [index](../index.md "home"), [journal](journal.html)`)
	write(t, root, "trip/journal.html", `<p><a href="packing.md">packing</a> <a href="../../outside.md">out</a> <a href="photo.jpg">pic</a></p>`)
	write(t, root, "unlinked.md", "")

	notes, err := DiscoverAll(context.Background(), start)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "index.md"),
		filepath.Join(root, "trip", "packing.md"),
		filepath.Join(root, "trip", "journal.html"),
	}, notes)
}

func TestDiscoverAll_Missing(t *testing.T) {
	_, err := DiscoverAll(context.Background(), filepath.Join(t.TempDir(), "nope"))
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestDiscoverAll_Cancelled(t *testing.T) {
	root := t.TempDir()
	write(t, root, "a.md", "")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := DiscoverAll(ctx, root)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestQueue(t *testing.T) {
	q := NewQueue()
	assert.True(t, q.Add("a"))
	assert.True(t, q.Add("b"))
	assert.False(t, q.Add("a"))
	assert.Equal(t, 2, q.Seen())

	require.True(t, q.HasNext())
	assert.Equal(t, "a", q.Next())
	assert.Equal(t, "b", q.Next())
	assert.False(t, q.HasNext())
	assert.Equal(t, []string{"a", "b"}, q.All())
}

func TestRules(t *testing.T) {
	assert.True(t, IsNoteFile("a/B.MD"))
	assert.True(t, IsNoteFile("x.blocks.json"))
	assert.False(t, IsNoteFile("x.json"))
	assert.False(t, IsNoteFile("x.pdf"))

	assert.True(t, IsHidden(".git"))
	assert.False(t, IsHidden("."))
	assert.False(t, IsHidden("notes"))

	assert.True(t, IsWithin(filepath.Join("r", "a", "b.md"), "r"))
	assert.False(t, IsWithin(filepath.Join("r", "..", "b.md"), "r"))
	assert.True(t, IsWithin("..x/b.md", "."))

	assert.Equal(t, filepath.Join("a", "c.md"), resolveLink("c.md", filepath.Join("a", "b.md")))
	assert.Equal(t, filepath.Join("c.md"), resolveLink("../c.md", filepath.Join("a", "b.md")))
	assert.Equal(t, "", resolveLink("mailto:x@y.z", "a.md"))
	assert.Equal(t, "", resolveLink("#frag", "a.md"))
	assert.Equal(t, "", resolveLink("pic.png", "a.md"))
}
