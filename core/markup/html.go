package markup

import (
	"strings"

	"golang.org/x/net/html"
)

// htmlNode adapts a golang.org/x/net/html node.
type htmlNode struct {
	n *html.Node
}

// FromHTML wraps an x/net/html node. A nil node yields nil.
func FromHTML(n *html.Node) Node {
	if n == nil {
		return nil
	}
	return htmlNode{n: n}
}

// Parse parses markup with the HTML5 algorithm and returns the document root.
func Parse(s string) (Node, error) {
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return nil, err
	}
	return FromHTML(doc), nil
}

func (h htmlNode) TagName() string {
	switch h.n.Type {
	case html.TextNode:
		return TextTag
	case html.DocumentNode:
		return "#document"
	case html.CommentNode:
		return "#comment"
	case html.DoctypeNode:
		return "#doctype"
	case html.ElementNode:
		return strings.ToLower(h.n.Data)
	}
	return ""
}

func (h htmlNode) Attributes() map[string]string {
	attrs := make(map[string]string, len(h.n.Attr))
	for _, a := range h.n.Attr {
		attrs[a.Key] = a.Val
	}
	return attrs
}

func (h htmlNode) Children() []Node {
	var kids []Node
	for c := h.n.FirstChild; c != nil; c = c.NextSibling {
		kids = append(kids, htmlNode{n: c})
	}
	return kids
}

func (h htmlNode) TextContent() string {
	if h.n.Type == html.TextNode {
		return h.n.Data
	}
	return Flatten(h)
}

// HTML returns the underlying x/net/html node of an adapter built by
// FromHTML, or nil for other Node implementations.
func HTML(n Node) *html.Node {
	if h, ok := n.(htmlNode); ok {
		return h.n
	}
	return nil
}
