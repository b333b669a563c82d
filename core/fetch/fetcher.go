// Package fetch implements the NoteSource interface over the file system.
// Notes are read from files or stdin; *.blocks.json files hold an already
// normalized block sequence and are decoded instead of parsed.
package fetch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"

	"github.com/gaurav-prasanna/notepipe/core"
)

// StdinID names the standard input as a note source.
const StdinID = "-"

// BlocksSuffix marks files that contain a serialized BlockSequence.
const BlocksSuffix = ".blocks.json"

// maxNoteSize caps how much of a single note is read.
const maxNoteSize = 16 << 20

// FileSource loads notes from the local file system.
type FileSource struct {
	// Root resolves relative ids. Empty means the working directory.
	Root  string
	Stdin io.Reader
}

var _ core.NoteSource = (*FileSource)(nil)

// New creates a FileSource rooted at root.
func New(root string) *FileSource {
	return &FileSource{Root: root, Stdin: os.Stdin}
}

// Load reads the note identified by id: a path, or "-" for stdin.
func (s *FileSource) Load(ctx context.Context, id string) (*core.RawNote, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		data []byte
		err  error
		path string
	)
	if id == StdinID {
		if s.Stdin == nil {
			return nil, fmt.Errorf("reading stdin: %w", core.ErrNotFound)
		}
		data, err = io.ReadAll(io.LimitReader(s.Stdin, maxNoteSize))
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
	} else {
		path = id
		if s.Root != "" && !filepath.IsAbs(path) {
			path = filepath.Join(s.Root, path)
		}
		data, err = readFile(path)
		if err != nil {
			return nil, err
		}
	}

	note := &core.RawNote{ID: id, Path: path}
	if strings.HasSuffix(strings.ToLower(id), BlocksSuffix) {
		var blocks core.BlockSequence
		if err := json.Unmarshal(data, &blocks); err != nil {
			return nil, fmt.Errorf("decoding blocks %s: %w", id, err)
		}
		if blocks == nil {
			blocks = core.BlockSequence{}
		}
		note.Blocks = blocks
		note.Title = NoteName(id)
		return note, nil
	}

	note.Content = string(data)
	note.Title = titleOf(data, id)
	return note, nil
}

func readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("opening %s: %w", path, core.ErrNotFound)
		}
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}

	data, err := io.ReadAll(io.LimitReader(f, maxNoteSize))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

// titleOf prefers a front-matter title and falls back to the file name.
func titleOf(data []byte, id string) string {
	var meta struct {
		Title string `yaml:"title" toml:"title" json:"title"`
	}
	if _, err := frontmatter.Parse(bytes.NewReader(data), &meta); err == nil && strings.TrimSpace(meta.Title) != "" {
		return strings.TrimSpace(meta.Title)
	}
	if id == StdinID {
		return ""
	}
	return NoteName(id)
}

// NoteName returns the base name of a note path without its extension.
func NoteName(id string) string {
	base := filepath.Base(id)
	if strings.HasSuffix(strings.ToLower(base), BlocksSuffix) {
		return base[:len(base)-len(BlocksSuffix)]
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}
