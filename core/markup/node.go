// Package markup abstracts a structured-markup tree behind a small adapter
// interface so the walker does not care whether the tree came from an HTML
// parser, a custom AST or a hand-rolled tokenizer.
package markup

import (
	"sort"
	"strings"
)

// TextTag is the tag name reported by text nodes.
const TextTag = "#text"

// Node is the minimal capability a tree must offer to be walked.
//
// TextContent returns the flattened, trimmed text of an element. Text nodes
// return their data verbatim so that whitespace between inline runs survives.
type Node interface {
	TagName() string
	Attributes() map[string]string
	Children() []Node
	TextContent() string
}

// Attr returns the named attribute of n, or "" when absent.
func Attr(n Node, key string) string {
	return n.Attributes()[key]
}

// HasAttr reports whether n carries the named attribute.
func HasAttr(n Node, key string) bool {
	_, ok := n.Attributes()[key]
	return ok
}

// HasClass reports whether n's class attribute contains class.
func HasClass(n Node, class string) bool {
	for _, c := range strings.Fields(Attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

// Element is an in-memory tree node satisfying Node. It is handy for custom
// ASTs and tests.
type Element struct {
	Tag   string
	Attrs map[string]string
	Kids  []Node
	Text  string
}

var _ Node = (*Element)(nil)

// El builds an element node.
func El(tag string, attrs map[string]string, kids ...Node) *Element {
	return &Element{Tag: strings.ToLower(tag), Attrs: attrs, Kids: kids}
}

// Text builds a text node.
func Text(s string) *Element {
	return &Element{Tag: TextTag, Text: s}
}

func (e *Element) TagName() string { return e.Tag }

func (e *Element) Attributes() map[string]string {
	if e.Attrs == nil {
		return map[string]string{}
	}
	return e.Attrs
}

func (e *Element) Children() []Node { return e.Kids }

func (e *Element) TextContent() string {
	if e.Tag == TextTag {
		return e.Text
	}
	return Flatten(e)
}

// String renders e as compact pseudo-markup, mostly for test failure output.
func (e *Element) String() string {
	if e.Tag == TextTag {
		return e.Text
	}
	var b strings.Builder
	b.WriteString("<" + e.Tag)
	keys := make([]string, 0, len(e.Attrs))
	for k := range e.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString(" " + k + "=\"" + e.Attrs[k] + "\"")
	}
	b.WriteString(">")
	for _, k := range e.Kids {
		if s, ok := k.(interface{ String() string }); ok {
			b.WriteString(s.String())
		}
	}
	b.WriteString("</" + e.Tag + ">")
	return b.String()
}

// Flatten returns the text of n with line breaks at <br> and around
// block-level descendants, trimmed. Checkboxes and ignored nodes contribute
// nothing.
func Flatten(n Node) string {
	var b strings.Builder
	flattenInto(&b, n)
	return strings.TrimSpace(b.String())
}

func flattenInto(b *strings.Builder, n Node) {
	switch k := KindOf(n); k {
	case KindText:
		b.WriteString(n.TextContent())
	case KindLineBreak:
		b.WriteByte('\n')
	case KindIgnored, KindCheckbox:
	default:
		block := k.IsBlock()
		if block {
			b.WriteByte('\n')
		}
		for _, c := range n.Children() {
			flattenInto(b, c)
		}
		if block {
			b.WriteByte('\n')
		}
	}
}

// RawText concatenates the text of every descendant of n verbatim, with a
// newline for each <br>. Unlike TextContent nothing is trimmed, which keeps
// code indentation intact.
func RawText(n Node) string {
	var b strings.Builder
	var collect func(n Node)
	collect = func(n Node) {
		switch KindOf(n) {
		case KindText:
			b.WriteString(n.TextContent())
		case KindLineBreak:
			b.WriteByte('\n')
		case KindIgnored, KindCheckbox:
		default:
			for _, c := range n.Children() {
				collect(c)
			}
		}
	}
	collect(n)
	return b.String()
}
