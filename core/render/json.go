// Package render — JSON renderer.
// Emits the block sequence together with the typography scale, heading
// sections and a structural summary. Nothing beyond what the blocks say is
// inferred.
package render

import (
	"encoding/json"
	"fmt"

	"github.com/gaurav-prasanna/notepipe/core"
	"github.com/gaurav-prasanna/notepipe/core/chunk"
)

// NoteJSON is the complete JSON output for a single note.
type NoteJSON struct {
	Metadata   core.NoteMetadata    `json:"metadata"`
	Blocks     core.BlockSequence   `json:"blocks"`
	Typography core.TypographyScale `json:"typography"`
	Content    NoteContent          `json:"content"`
	Structure  NoteStructure        `json:"structure"`
}

// NoteContent holds text views of the note.
type NoteContent struct {
	Text     string          `json:"text"`
	Markdown string          `json:"markdown"`
	Sections []chunk.Section `json:"sections"`
}

// NoteStructure counts blocks by kind.
type NoteStructure struct {
	Headings   []Heading `json:"headings"`
	CodeBlocks int       `json:"codeBlocks"`
	ListItems  int       `json:"listItems"`
	Todos      int       `json:"todos"`
	TodosDone  int       `json:"todosDone"`
	Dividers   int       `json:"dividers"`
	Tags       []string  `json:"tags,omitempty"`
}

// Heading is one heading of the note outline.
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

// JSONRenderer produces structured JSON output.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Render marshals the document and its derived views as indented JSON.
func (r *JSONRenderer) Render(doc core.Document) ([]byte, error) {
	md, err := ToMarkdown(doc.Blocks)
	if err != nil {
		return nil, err
	}

	blocks := doc.Blocks
	if blocks == nil {
		blocks = core.BlockSequence{}
	}
	sections := chunk.Sections(blocks)
	if sections == nil {
		sections = []chunk.Section{}
	}

	note := NoteJSON{
		Metadata:   doc.Meta,
		Blocks:     blocks,
		Typography: scaleFor(doc),
		Content: NoteContent{
			Text:     chunk.PlainText(blocks),
			Markdown: md,
			Sections: sections,
		},
		Structure: structureOf(blocks),
	}

	data, err := json.MarshalIndent(note, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return data, nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}

func structureOf(blocks core.BlockSequence) NoteStructure {
	s := NoteStructure{Headings: []Heading{}}
	for _, b := range blocks {
		switch {
		case b.Type.IsHeading():
			s.Headings = append(s.Headings, Heading{Level: chunk.Level(b.Type), Text: b.Content})
		case b.Type == core.Code:
			s.CodeBlocks++
		case b.Type == core.Divider:
			s.Dividers++
		case b.Type == core.Tag:
			s.Tags = append(s.Tags, b.Content)
		}
		if b.Type.IsList() {
			s.ListItems++
		}
		if b.Type == core.Todo {
			s.Todos++
			if b.Checked {
				s.TodosDone++
			}
		}
	}
	return s
}
