package markup

import "strings"

// Kind is the closed set of node kinds the walker understands. Anything the
// classifier does not recognise is KindUnknown.
type Kind int

const (
	KindUnknown Kind = iota
	KindText
	KindHeading1
	KindHeading2
	KindHeading3
	KindBlockquote
	KindUnorderedList
	KindOrderedList
	KindListItem
	KindCodeBlock
	KindInlineCode
	KindRule
	KindContainer
	KindLineBreak
	KindStrong
	KindInline
	KindCheckbox
	KindIgnored
)

var kindNames = [...]string{
	KindUnknown:       "unknown",
	KindText:          "text",
	KindHeading1:      "heading1",
	KindHeading2:      "heading2",
	KindHeading3:      "heading3",
	KindBlockquote:    "blockquote",
	KindUnorderedList: "unordered-list",
	KindOrderedList:   "ordered-list",
	KindListItem:      "list-item",
	KindCodeBlock:     "code-block",
	KindInlineCode:    "inline-code",
	KindRule:          "rule",
	KindContainer:     "container",
	KindLineBreak:     "line-break",
	KindStrong:        "strong",
	KindInline:        "inline",
	KindCheckbox:      "checkbox",
	KindIgnored:       "ignored",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// IsBlock reports whether nodes of this kind start a new block. Unknown
// nodes are treated as blocks so their text is never glued to a paragraph.
func (k Kind) IsBlock() bool {
	switch k {
	case KindText, KindInlineCode, KindLineBreak, KindStrong, KindInline, KindCheckbox, KindIgnored:
		return false
	}
	return true
}

// IsList reports whether k is an ordered or unordered list.
func (k Kind) IsList() bool {
	return k == KindUnorderedList || k == KindOrderedList
}

var tagKinds = map[string]Kind{
	TextTag:      KindText,
	"h1":         KindHeading1,
	"h2":         KindHeading2,
	"h3":         KindHeading3,
	"blockquote": KindBlockquote,
	"ul":         KindUnorderedList,
	"ol":         KindOrderedList,
	"li":         KindListItem,
	"pre":        KindCodeBlock,
	"code":       KindInlineCode,
	"hr":         KindRule,
	"br":         KindLineBreak,
	"strong":     KindStrong,
	"b":          KindStrong,

	"#document": KindContainer,
	"html":      KindContainer,
	"body":      KindContainer,
	"p":         KindContainer,
	"div":       KindContainer,
	"section":   KindContainer,
	"article":   KindContainer,
	"main":      KindContainer,
	"header":    KindContainer,
	"footer":    KindContainer,
	"aside":     KindContainer,
	"nav":       KindContainer,
	"figure":    KindContainer,

	"a":      KindInline,
	"span":   KindInline,
	"em":     KindInline,
	"i":      KindInline,
	"u":      KindInline,
	"s":      KindInline,
	"del":    KindInline,
	"ins":    KindInline,
	"mark":   KindInline,
	"small":  KindInline,
	"sub":    KindInline,
	"sup":    KindInline,
	"label":  KindInline,
	"font":   KindInline,
	"abbr":   KindInline,
	"cite":   KindInline,
	"kbd":    KindInline,
	"q":      KindInline,
	"time":   KindInline,
	"strike": KindInline,

	"#comment": KindIgnored,
	"#doctype": KindIgnored,
	"head":     KindIgnored,
	"title":    KindIgnored,
	"meta":     KindIgnored,
	"link":     KindIgnored,
	"script":   KindIgnored,
	"style":    KindIgnored,
	"noscript": KindIgnored,
	"template": KindIgnored,
	"img":      KindIgnored,
}

// codeBlockTypes are data-type values editors use for block code.
var codeBlockTypes = map[string]bool{
	"codeBlock":  true,
	"code-block": true,
}

// KindOf classifies n. Block code marked via data-type or class wins over
// the tag name.
func KindOf(n Node) Kind {
	tag := strings.ToLower(n.TagName())
	if tag != TextTag && (codeBlockTypes[Attr(n, "data-type")] || HasClass(n, "code-block")) {
		return KindCodeBlock
	}
	if tag == "input" {
		if strings.EqualFold(Attr(n, "type"), "checkbox") {
			return KindCheckbox
		}
		return KindIgnored
	}
	if k, ok := tagKinds[tag]; ok {
		return k
	}
	return KindUnknown
}

// IsTaskList reports whether a list is flagged as a task list.
func IsTaskList(n Node) bool {
	return Attr(n, "data-type") == "taskList" ||
		HasClass(n, "contains-task-list") ||
		HasClass(n, "task-list")
}
