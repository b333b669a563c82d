// Package render provides output renderers for normalized notes.
// This file implements the Markdown renderer. Blocks are turned into an HTML
// fragment and converted with html-to-markdown; to-do runs are written as
// GitHub task list items directly since the converter has no notion of
// checked state.
package render

import (
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/gaurav-prasanna/notepipe/core"
)

// MarkdownRenderer writes a note as CommonMark.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render converts the document's blocks into Markdown.
func (r *MarkdownRenderer) Render(doc core.Document) ([]byte, error) {
	md, err := ToMarkdown(doc.Blocks)
	if err != nil {
		return nil, err
	}
	return []byte(md), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}

// ToMarkdown renders blocks as Markdown text ending in a newline. An empty
// sequence yields an empty string.
func ToMarkdown(blocks core.BlockSequence) (string, error) {
	var parts []string
	for _, run := range splitTodoRuns(blocks) {
		if run[0].Type == core.Todo {
			parts = append(parts, taskList(run))
			continue
		}
		fragment, err := renderFragment(Fragment(run))
		if err != nil {
			return "", err
		}
		md, err := htmltomarkdown.ConvertString(fragment)
		if err != nil {
			return "", fmt.Errorf("converting to markdown: %w", err)
		}
		if md = strings.TrimSpace(md); md != "" {
			parts = append(parts, md)
		}
	}
	if len(parts) == 0 {
		return "", nil
	}
	return strings.Join(parts, "\n\n") + "\n", nil
}

// splitTodoRuns cuts blocks into maximal runs that are either all to-dos or
// contain none.
func splitTodoRuns(blocks core.BlockSequence) []core.BlockSequence {
	var runs []core.BlockSequence
	start := 0
	for i := 1; i <= len(blocks); i++ {
		if i == len(blocks) || (blocks[i].Type == core.Todo) != (blocks[start].Type == core.Todo) {
			runs = append(runs, blocks[start:i])
			start = i
		}
	}
	return runs
}

func taskList(todos core.BlockSequence) string {
	lines := make([]string, len(todos))
	for i, t := range todos {
		mark := " "
		if t.Checked {
			mark = "x"
		}
		lines[i] = "- [" + mark + "] " + t.Content
	}
	return strings.Join(lines, "\n")
}
