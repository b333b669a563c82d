// Package detect classifies a single line of note text into a block type.
//
// Classification is an ordered rule chain: each rule is an anchored pattern
// and the first rule that matches wins. The order is significant and must not
// change; lines such as "TODO: SHIP IT" are headings only because the
// all-caps rule runs before the label and list rules.
package detect

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gaurav-prasanna/notepipe/core"
)

// Result is the outcome of classifying one line. Fence is set when the line
// opens or closes a fenced code region; Block is then meaningless and the
// caller decides what to do.
type Result struct {
	Block core.Block
	Fence bool
}

type rule struct {
	name  string
	match func(line, trimmed string) (Result, bool)
}

// rules is evaluated top to bottom. Paragraph is the implicit final rule.
var rules = []rule{
	{"divider", matchDivider},
	{"markdown-heading", matchMarkdownHeading},
	{"all-caps-heading", matchAllCapsHeading},
	{"label-heading", matchLabelHeading},
	{"blockquote", matchBlockquote},
	{"todo", matchTodo},
	{"bullet", matchBullet},
	{"numbered", matchNumbered},
	{"fence", matchFence},
}

// Rules returns the rule names in evaluation order, ending with "paragraph".
func Rules() []string {
	names := make([]string, 0, len(rules)+1)
	for _, r := range rules {
		names = append(names, r.name)
	}
	return append(names, "paragraph")
}

// Classify runs the rule chain over line. Trailing whitespace is ignored;
// leading whitespace only matters to the bullet rule. A blank line yields
// a paragraph with empty content, which the merger later drops.
func Classify(line string) Result {
	line = strings.TrimRight(line, " \t\r\n")
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return Result{Block: core.Block{Type: core.Paragraph}}
	}
	for _, r := range rules {
		if res, ok := r.match(line, trimmed); ok {
			return res
		}
	}
	return Result{Block: core.Block{Type: core.Paragraph, Content: trimmed}}
}

var (
	dividerRun   = regexp.MustCompile(`^[-*_\x{2013}\x{2014}]{3,}$`)
	boxDrawRun   = regexp.MustCompile(`^[\x{2500}\x{2501}\x{2550}]{3,}$`)
	labelPrefix  = regexp.MustCompile(`^\p{Lu}\p{Ll}+(?: \p{L}+)?:`)
	bulletPrefix = regexp.MustCompile(`^([ \t]*)[-•*] (.*)$`)
	numberPrefix = regexp.MustCompile(`^(\d+)\. (.*)$`)
)

func block(t core.BlockType, content string) Result {
	return Result{Block: core.Block{Type: t, Content: content}}
}

func matchDivider(_, trimmed string) (Result, bool) {
	if dividerRun.MatchString(trimmed) || boxDrawRun.MatchString(trimmed) {
		return block(core.Divider, ""), true
	}
	return Result{}, false
}

func matchMarkdownHeading(_, trimmed string) (Result, bool) {
	switch {
	case strings.HasPrefix(trimmed, "### "):
		return block(core.Heading3, strings.TrimSpace(trimmed[4:])), true
	case strings.HasPrefix(trimmed, "## "):
		return block(core.Heading2, strings.TrimSpace(trimmed[3:])), true
	case strings.HasPrefix(trimmed, "# "):
		return block(core.Heading1, strings.TrimSpace(trimmed[2:])), true
	}
	return Result{}, false
}

func matchAllCapsHeading(_, trimmed string) (Result, bool) {
	if IsAllCaps(trimmed) {
		return block(core.Heading2, trimmed), true
	}
	return Result{}, false
}

func matchLabelHeading(_, trimmed string) (Result, bool) {
	if IsLabel(trimmed) {
		return block(core.Heading3, trimmed), true
	}
	return Result{}, false
}

func matchBlockquote(_, trimmed string) (Result, bool) {
	if strings.HasPrefix(trimmed, ">") {
		return block(core.Blockquote, strings.TrimSpace(trimmed[1:])), true
	}
	return Result{}, false
}

// todoPrefixes also match as the whole line, which yields an empty todo.
var todoPrefixes = []struct {
	prefix  string
	checked bool
}{
	{"- [ ] ", false},
	{"[ ] ", false},
	{"- [x] ", true},
	{"[x] ", true},
}

func matchTodo(_, trimmed string) (Result, bool) {
	lower := strings.ToLower(trimmed)
	for _, p := range todoPrefixes {
		if strings.HasPrefix(lower, p.prefix) || lower == strings.TrimSpace(p.prefix) {
			res := block(core.Todo, strings.TrimSpace(trimmed[min(len(p.prefix), len(trimmed)):]))
			res.Block.Checked = p.checked
			return res, true
		}
	}
	return Result{}, false
}

func matchBullet(line, _ string) (Result, bool) {
	m := bulletPrefix.FindStringSubmatch(line)
	if m == nil {
		return Result{}, false
	}
	res := block(core.Bullet, strings.TrimSpace(m[2]))
	res.Block.IndentLevel = len(m[1]) / 2
	return res, true
}

func matchNumbered(_, trimmed string) (Result, bool) {
	m := numberPrefix.FindStringSubmatch(trimmed)
	if m == nil {
		return Result{}, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return Result{}, false
	}
	res := block(core.Numbered, strings.TrimSpace(m[2]))
	res.Block.Number = n
	return res, true
}

func matchFence(_, trimmed string) (Result, bool) {
	if IsFence(trimmed) {
		return Result{Fence: true}, true
	}
	return Result{}, false
}

// IsFence reports whether a trimmed line is a code fence delimiter. An
// opening fence may carry an info string ("```go").
func IsFence(trimmed string) bool {
	return strings.HasPrefix(trimmed, "```")
}

// IsAllCaps reports whether s reads as a shouted heading: at least three
// cased letters, a length of 4 to 99 characters, and no lowercase. Scripts
// without case (Han, kana, Hangul) never qualify on their own.
func IsAllCaps(s string) bool {
	n := utf8.RuneCountInString(s)
	if n < 4 || n > 99 {
		return false
	}
	cased := 0
	for _, r := range s {
		if unicode.IsUpper(r) || unicode.IsLower(r) || unicode.IsTitle(r) {
			cased++
		}
	}
	return cased >= 3 && strings.ToUpper(s) == s
}

// IsLabel reports whether s starts with "Word:" or "Word word:" and is
// shorter than 80 characters.
func IsLabel(s string) bool {
	return utf8.RuneCountInString(s) < 80 && labelPrefix.MatchString(s)
}
