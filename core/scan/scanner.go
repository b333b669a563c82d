// Package scan turns plain text or Markdown-like notes into blocks, one line
// at a time. Lines outside fenced code are classified by package detect.
package scan

import (
	"strings"

	"github.com/gaurav-prasanna/notepipe/core"
	"github.com/gaurav-prasanna/notepipe/core/detect"
)

type state int

const (
	stateNormal state = iota
	stateInFence
)

// scanner holds the per-call state. A new one is created for every Lines call.
type scanner struct {
	out      core.Builder
	state    state
	fence    []string
	numbered int
}

// Lines scans text and returns the unmerged block sequence. An unclosed
// fence is flushed as a code block at end of input.
func Lines(text string) core.BlockSequence {
	s := &scanner{}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	for _, line := range strings.Split(text, "\n") {
		s.line(line)
	}
	if s.state == stateInFence {
		// The final newline of the input is not part of the code.
		for len(s.fence) > 0 && strings.TrimSpace(s.fence[len(s.fence)-1]) == "" {
			s.fence = s.fence[:len(s.fence)-1]
		}
		s.closeFence()
	}
	return s.out.Blocks()
}

func (s *scanner) line(line string) {
	if s.state == stateInFence {
		if detect.IsFence(strings.TrimSpace(line)) {
			s.closeFence()
			return
		}
		s.fence = append(s.fence, line)
		return
	}

	res := detect.Classify(line)
	if res.Fence {
		s.state = stateInFence
		s.fence = s.fence[:0]
		return
	}
	if res.Block.Type == core.Paragraph && res.Block.Content == "" {
		// Blank line: nothing to emit, numbering continues.
		return
	}
	s.emit(res.Block)
}

func (s *scanner) closeFence() {
	s.emit(core.Block{Type: core.Code, Content: strings.Join(s.fence, "\n")})
	s.fence = s.fence[:0]
	s.state = stateNormal
}

func (s *scanner) emit(b core.Block) {
	if b.Type == core.Numbered {
		s.numbered++
		b.Number = s.numbered
	} else {
		s.numbered = 0
	}
	s.out.Add(b)
}
