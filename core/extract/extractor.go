// Package extract parses note markup into a walkable tree.
// It isolates the note body from an authoring surface's output by:
//  1. Parsing the markup with the HTML5 algorithm (via goquery)
//  2. Removing noise elements (scripts, styles, embedded media, widgets)
//  3. Picking the content root (<body>, or the document for fragments)
package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/gaurav-prasanna/notepipe/core/markup"
)

// noiseSelectors are elements removed before walking.
// These contribute no meaningful note text. Checkbox inputs are kept because
// they carry to-do state.
var noiseSelectors = []string{
	"script", "style", "noscript", "template",
	"iframe", "video", "audio", "object", "embed",
	"svg", "canvas", "img", "picture",
	"button", "select", "textarea",
	"input:not([type=checkbox])",
}

// Extractor turns a markup string into a markup.Node rooted at the content.
type Extractor struct{}

// New creates an Extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extract parses raw markup and returns the cleaned content root.
func (e *Extractor) Extract(raw string) (markup.Node, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parsing markup: %w", err)
	}

	for _, sel := range noiseSelectors {
		doc.Find(sel).Remove()
	}

	content := doc.Find("body").First()
	if content.Length() == 0 {
		content = doc.Selection
	}
	if len(content.Nodes) == 0 {
		return nil, fmt.Errorf("no content root found in markup")
	}

	return markup.FromHTML(content.Nodes[0]), nil
}
