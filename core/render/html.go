// Package render — HTML renderer.
// Builds an x/net/html tree from a block sequence. Consecutive list blocks
// of the same kind share one list element, and to-dos use the data-type /
// data-checked attributes understood by the markup walker, so the output
// normalizes back to the same blocks.
package render

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/gaurav-prasanna/notepipe/core"
	"github.com/gaurav-prasanna/notepipe/core/typography"
)

// HTMLRenderer renders a document as a standalone HTML page styled by its
// typography scale.
type HTMLRenderer struct{}

// NewHTMLRenderer creates an HTMLRenderer.
func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{}
}

// Render converts the document into an HTML page.
func (r *HTMLRenderer) Render(doc core.Document) ([]byte, error) {
	title := doc.Meta.Title
	if title == "" {
		title = doc.Meta.ID
	}

	scale := scaleFor(doc)

	head := element(atom.Head,
		element(atom.Meta).withAttr("charset", "utf-8").Node,
		element(atom.Title, textNode(title)).Node,
		element(atom.Style, textNode(stylesheet(scale))).Node,
	)

	article := element(atom.Article).
		withAttr("class", "note").
		withAttr("data-scale", strconv.FormatFloat(scale.Scale, 'f', 2, 64)).
		withAttr("data-line-height", string(scale.LineHeight))
	for _, n := range Fragment(doc.Blocks) {
		article.AppendChild(n)
	}

	root := &html.Node{Type: html.DocumentNode}
	root.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	page := element(atom.Html, head.Node, element(atom.Body, article.Node).Node)
	root.AppendChild(page.Node)

	var buf bytes.Buffer
	if err := html.Render(&buf, root); err != nil {
		return nil, fmt.Errorf("rendering HTML: %w", err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for HTML output.
func (r *HTMLRenderer) Extension() string {
	return ".html"
}

// Fragment converts blocks into sibling HTML nodes.
func Fragment(blocks core.BlockSequence) []*html.Node {
	var (
		out  []*html.Node
		list *html.Node
		kind core.BlockType
	)
	for _, b := range blocks {
		if !b.Type.IsList() || b.Type != kind {
			list, kind = nil, ""
		}
		switch b.Type {
		case core.Heading1:
			out = append(out, element(atom.H1, textNode(b.Content)).Node)
		case core.Heading2:
			out = append(out, element(atom.H2, textNode(b.Content)).Node)
		case core.Heading3:
			out = append(out, element(atom.H3, textNode(b.Content)).Node)
		case core.Blockquote:
			out = append(out, element(atom.Blockquote, element(atom.P, textNode(b.Content)).Node).Node)
		case core.Code:
			out = append(out, element(atom.Pre, element(atom.Code, textNode(b.Content)).Node).Node)
		case core.Divider:
			out = append(out, element(atom.Hr).Node)
		case core.Tag:
			out = append(out, element(atom.P, element(atom.Span, textNode("#"+b.Content)).withAttr("class", "tag").Node).Node)
		case core.Bullet, core.Numbered, core.Todo:
			if list == nil {
				list = newList(b)
				kind = b.Type
				out = append(out, list)
			}
			list.AppendChild(listItem(b))
		default:
			out = append(out, element(atom.P, textNode(b.Content)).Node)
		}
	}
	return out
}

func newList(first core.Block) *html.Node {
	switch first.Type {
	case core.Numbered:
		ol := element(atom.Ol)
		if first.Number > 1 {
			ol.withAttr("start", strconv.Itoa(first.Number))
		}
		return ol.Node
	case core.Todo:
		return element(atom.Ul).withAttr("data-type", "taskList").Node
	default:
		return element(atom.Ul).Node
	}
}

func listItem(b core.Block) *html.Node {
	li := element(atom.Li, textNode(b.Content))
	switch b.Type {
	case core.Todo:
		li.withAttr("data-type", "taskItem").withAttr("data-checked", strconv.FormatBool(b.Checked))
	case core.Bullet:
		if b.IndentLevel > 0 {
			li.withAttr("data-indent", strconv.Itoa(b.IndentLevel))
		}
	}
	return li.Node
}

// stylesheet turns the typography tokens into CSS rules.
func stylesheet(scale core.TypographyScale) string {
	if len(scale.Tokens) == 0 {
		return ""
	}
	selectors := map[core.Category]string{
		core.CategoryBody:     ".note",
		core.CategoryHeading1: ".note h1",
		core.CategoryHeading2: ".note h2",
		core.CategoryHeading3: ".note h3",
		core.CategoryCode:     ".note pre",
	}
	cats := make([]string, 0, len(selectors))
	for c := range selectors {
		cats = append(cats, string(c))
	}
	sort.Strings(cats)

	var b strings.Builder
	for _, c := range cats {
		tok := scale.TokenFor(core.Category(c))
		fmt.Fprintf(&b, "%s{font-size:%.3f%s;line-height:%.2f;margin:0 0 %.2fem}",
			selectors[core.Category(c)], tok.Size, tok.Unit, tok.LineHeight, tok.Spacing)
	}
	return b.String()
}

// node is a small builder over *html.Node.
type node struct {
	*html.Node
}

func element(a atom.Atom, kids ...*html.Node) node {
	n := node{&html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}}
	for _, k := range kids {
		if k != nil {
			n.AppendChild(k)
		}
	}
	return n
}

func (n node) withAttr(key, val string) node {
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
	return n
}

func textNode(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// renderFragment serializes nodes back to back.
func renderFragment(nodes []*html.Node) (string, error) {
	var buf bytes.Buffer
	for _, n := range nodes {
		if err := html.Render(&buf, n); err != nil {
			return "", fmt.Errorf("rendering HTML: %w", err)
		}
	}
	return buf.String(), nil
}

// scaleFor returns the document's scale, computing it when the caller left
// it empty.
func scaleFor(doc core.Document) core.TypographyScale {
	if len(doc.Typography.Tokens) == 0 {
		return typography.Compute(doc.Blocks)
	}
	return doc.Typography
}
