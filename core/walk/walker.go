// Package walk turns a markup tree into blocks.
//
// Structural nodes (headings, lists, quotes, code, rules) map directly to
// blocks. Paragraph-like containers are split at line breaks and their text
// runs are classified by package detect, so markup produced by editors that
// fake structure with bold lines and <br> still comes out as headings and
// lists.
package walk

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/gaurav-prasanna/notepipe/core"
	"github.com/gaurav-prasanna/notepipe/core/detect"
	"github.com/gaurav-prasanna/notepipe/core/markup"
)

// walker holds the per-call state threaded through the recursion.
type walker struct {
	out core.Builder
	// numbered counts consecutive numbered blocks produced by the detector.
	numbered int
}

// Tree walks root and returns the unmerged block sequence. A nil root yields
// an empty sequence.
func Tree(root markup.Node) core.BlockSequence {
	if root == nil {
		return core.BlockSequence{}
	}
	w := &walker{}
	w.node(root, 0)
	return w.out.Blocks()
}

func (w *walker) node(n markup.Node, depth int) {
	switch k := markup.KindOf(n); k {
	case markup.KindHeading1:
		w.emit(core.Block{Type: core.Heading1, Content: collapse(n.TextContent())})
	case markup.KindHeading2:
		w.emit(core.Block{Type: core.Heading2, Content: collapse(n.TextContent())})
	case markup.KindHeading3:
		w.emit(core.Block{Type: core.Heading3, Content: collapse(n.TextContent())})
	case markup.KindBlockquote:
		w.emit(core.Block{Type: core.Blockquote, Content: collapse(n.TextContent())})
	case markup.KindUnorderedList, markup.KindOrderedList:
		w.list(n, depth)
	case markup.KindListItem:
		// A stray item outside any list.
		counter := 0
		w.numbered = 0
		w.item(n, &counter, false, false, depth)
	case markup.KindCodeBlock:
		w.emit(core.Block{Type: core.Code, Content: strings.Trim(markup.RawText(n), "\n")})
	case markup.KindRule:
		w.emit(core.Block{Type: core.Divider})
	case markup.KindContainer:
		w.container(n, depth)
	case markup.KindIgnored, markup.KindCheckbox:
	case markup.KindText, markup.KindInline, markup.KindStrong, markup.KindInlineCode, markup.KindLineBreak:
		w.inline([]markup.Node{n})
	default:
		for _, line := range strings.Split(n.TextContent(), "\n") {
			w.detected(collapse(line))
		}
	}
}

// container walks a paragraph or generic container. Runs of inline children
// are grouped and handled as one paragraph; block children are walked in
// place, keeping document order.
func (w *walker) container(n markup.Node, depth int) {
	var group []markup.Node
	flush := func() {
		if len(group) > 0 {
			w.inline(group)
			group = nil
		}
	}
	for _, c := range n.Children() {
		if markup.KindOf(c).IsBlock() {
			flush()
			w.node(c, depth)
			continue
		}
		group = append(group, c)
	}
	flush()
}

type run struct {
	text   string
	strong bool
}

// inline handles one paragraph worth of inline nodes.
func (w *walker) inline(nodes []markup.Node) {
	lines := splitLines(nodes)
	if len(lines) == 1 {
		w.detected(collapse(lines[0].text()))
		return
	}
	for _, l := range lines {
		text := collapse(l.text())
		if text == "" {
			continue
		}
		if l.allStrong() {
			w.emitDetected(strongLine(text))
			continue
		}
		w.detected(text)
	}
}

type line []run

func (l line) text() string {
	var b strings.Builder
	for _, r := range l {
		b.WriteString(r.text)
	}
	return b.String()
}

// allStrong reports whether every non-blank run of l is emphasised.
func (l line) allStrong() bool {
	seen := false
	for _, r := range l {
		if strings.TrimSpace(r.text) == "" {
			continue
		}
		if !r.strong {
			return false
		}
		seen = true
	}
	return seen
}

// splitLines flattens inline nodes into runs, starting a new line at every
// line-break marker. The result always holds at least one line.
func splitLines(nodes []markup.Node) []line {
	lines := []line{nil}
	var collect func(n markup.Node, strong bool)
	collect = func(n markup.Node, strong bool) {
		switch markup.KindOf(n) {
		case markup.KindText:
			lines[len(lines)-1] = append(lines[len(lines)-1], run{text: n.TextContent(), strong: strong})
		case markup.KindLineBreak:
			lines = append(lines, nil)
		case markup.KindInlineCode:
			lines[len(lines)-1] = append(lines[len(lines)-1], run{text: markup.Flatten(n), strong: strong})
		case markup.KindIgnored, markup.KindCheckbox:
		case markup.KindStrong:
			for _, c := range n.Children() {
				collect(c, true)
			}
		default:
			for _, c := range n.Children() {
				collect(c, strong)
			}
		}
	}
	for _, n := range nodes {
		collect(n, false)
	}
	return lines
}

var bracketed = regexp.MustCompile(`^\[(.+)\]$`)

// strongLine classifies a line that is entirely bold.
func strongLine(text string) core.Block {
	switch {
	case detect.IsAllCaps(text):
		return core.Block{Type: core.Heading2, Content: text}
	case bracketed.MatchString(text):
		return core.Block{Type: core.Heading3, Content: strings.TrimSpace(bracketed.FindStringSubmatch(text)[1])}
	case detect.IsLabel(text):
		return core.Block{Type: core.Heading3, Content: text}
	default:
		return core.Block{Type: core.Heading3, Content: text}
	}
}

func (w *walker) list(n markup.Node, depth int) {
	w.numbered = 0
	ordered := markup.KindOf(n) == markup.KindOrderedList
	task := markup.IsTaskList(n)
	counter := startOf(n) - 1

	for _, c := range n.Children() {
		switch k := markup.KindOf(c); {
		case k == markup.KindListItem:
			w.item(c, &counter, ordered, task, depth)
		case k.IsList():
			w.list(c, depth+1)
		case k.IsBlock():
			w.node(c, depth)
		default:
			// Stray inline content between items.
			if text := collapse(markup.Flatten(c)); text != "" {
				w.detected(text)
			}
		}
	}
	w.numbered = 0
}

func startOf(n markup.Node) int {
	if markup.KindOf(n) != markup.KindOrderedList {
		return 1
	}
	start, err := strconv.Atoi(strings.TrimSpace(markup.Attr(n, "start")))
	if err != nil || start < 1 {
		return 1
	}
	return start
}

// item emits the block for one list item. An item holding a nested list
// emits nothing itself; the nested list is walked one level deeper instead
// and the parent counter is left alone.
func (w *walker) item(li markup.Node, counter *int, ordered, task bool, depth int) {
	if nested := nestedLists(li); len(nested) > 0 {
		for _, l := range nested {
			w.list(l, depth+1)
		}
		return
	}

	text := collapse(li.TextContent())
	checked, isTodo := todoState(li, task)
	if !isTodo {
		if rest, marked, ok := textMarker(text); ok {
			text, checked, isTodo = rest, marked, true
		}
	}

	switch {
	case isTodo:
		w.emit(core.Block{Type: core.Todo, Content: text, Checked: checked})
	case markup.Attr(li, "data-list") == "bullet":
		w.emit(core.Block{Type: core.Bullet, Content: text, IndentLevel: indentOf(li, depth)})
	case ordered:
		*counter++
		w.emit(core.Block{Type: core.Numbered, Content: text, Number: *counter})
	default:
		w.emit(core.Block{Type: core.Bullet, Content: text, IndentLevel: indentOf(li, depth)})
	}
}

// nestedLists returns the outermost lists below n.
func nestedLists(n markup.Node) []markup.Node {
	var found []markup.Node
	for _, c := range n.Children() {
		k := markup.KindOf(c)
		switch {
		case k.IsList():
			found = append(found, c)
		case k == markup.KindText:
		default:
			found = append(found, nestedLists(c)...)
		}
	}
	return found
}

// todoState inspects item attributes and checkbox controls.
func todoState(li markup.Node, task bool) (checked, isTodo bool) {
	switch markup.Attr(li, "data-list") {
	case "checked":
		return true, true
	case "unchecked":
		return false, true
	}
	if markup.HasAttr(li, "data-checked") {
		return markup.Attr(li, "data-checked") == "true", true
	}
	if box := findCheckbox(li); box != nil {
		return markup.HasAttr(box, "checked"), true
	}
	if task || markup.Attr(li, "data-type") == "taskItem" || markup.HasClass(li, "task-list-item") {
		return false, true
	}
	return false, false
}

func findCheckbox(n markup.Node) markup.Node {
	for _, c := range n.Children() {
		switch markup.KindOf(c) {
		case markup.KindCheckbox:
			return c
		case markup.KindText:
		default:
			if box := findCheckbox(c); box != nil {
				return box
			}
		}
	}
	return nil
}

var markerPrefix = regexp.MustCompile(`^\[([ xX])\]\s+(.+)$`)

// textMarker recognises a literal "[ ]" or "[x]" at the start of item text.
func textMarker(text string) (rest string, checked, ok bool) {
	m := markerPrefix.FindStringSubmatch(text)
	if m == nil {
		return "", false, false
	}
	return m[2], m[1] != " ", true
}

func indentOf(li markup.Node, depth int) int {
	if v, err := strconv.Atoi(markup.Attr(li, "data-indent")); err == nil && v >= 0 {
		return v
	}
	return depth
}

// detected classifies text with the heuristic rules. Empty text is skipped
// without touching the numbering.
func (w *walker) detected(text string) {
	if text == "" {
		return
	}
	res := detect.Classify(text)
	if res.Fence {
		// No fence state in markup; keep the literal text.
		w.emitDetected(core.Block{Type: core.Paragraph, Content: text})
		return
	}
	w.emitDetected(res.Block)
}

// emitDetected numbers consecutive detector-produced numbered blocks the
// same way the line scanner does.
func (w *walker) emitDetected(b core.Block) {
	if b.Type == core.Numbered {
		w.numbered++
		b.Number = w.numbered
	} else {
		w.numbered = 0
	}
	w.out.Add(b)
}

// emit adds a structural block and resets the running numbering.
func (w *walker) emit(b core.Block) {
	w.numbered = 0
	w.out.Add(b)
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
