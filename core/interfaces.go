// Package core defines the note pipeline types and stage interfaces.
// Each stage of the pipeline is a clean, testable interface.
package core

import (
	"context"
	"errors"
)

// Sentinel errors returned by pipeline infrastructure. The normalization
// engine itself never returns errors.
var (
	// ErrNotFound indicates a requested note does not exist.
	ErrNotFound = errors.New("note not found")

	// ErrUnsupportedFormat indicates an output or input format is unknown.
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// NoteMetadata describes where a note came from.
type NoteMetadata struct {
	ID    string `json:"id"`
	Path  string `json:"path,omitempty"`
	Title string `json:"title,omitempty"`
}

// RawNote is what a NoteSource yields: either raw content (markup or plain
// text) or a block sequence that was already normalized.
type RawNote struct {
	ID      string
	Path    string
	Title   string
	Content string
	Blocks  BlockSequence
}

// Raw returns the value to hand to a normalizer.
func (n *RawNote) Raw() any {
	if n.Blocks != nil {
		return n.Blocks
	}
	return n.Content
}

// Document is a fully processed note, ready for rendering.
type Document struct {
	Meta       NoteMetadata    `json:"metadata"`
	Blocks     BlockSequence   `json:"blocks"`
	Typography TypographyScale `json:"typography"`
}

// NoteSource supplies raw note content keyed by an external identifier.
type NoteSource interface {
	Load(ctx context.Context, id string) (*RawNote, error)
}

// Normalizer converts raw content into a canonical block sequence.
// Implementations must be total: unsupported input yields an empty sequence.
type Normalizer interface {
	Normalize(raw any) BlockSequence
}

// Renderer converts a processed document into a final output format.
type Renderer interface {
	Render(doc Document) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".md", ".pdf").
	Extension() string
}
