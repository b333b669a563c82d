package core

// BlockType is the classification of a single unit of note content.
type BlockType string

const (
	Heading1   BlockType = "heading1"
	Heading2   BlockType = "heading2"
	Heading3   BlockType = "heading3"
	Paragraph  BlockType = "paragraph"
	Bullet     BlockType = "bullet"
	Numbered   BlockType = "numbered"
	Todo       BlockType = "todo"
	Blockquote BlockType = "blockquote"
	Code       BlockType = "code"
	Divider    BlockType = "divider"
	Tag        BlockType = "tag"
)

// IsHeading reports whether t is one of the three heading levels.
func (t BlockType) IsHeading() bool {
	return t == Heading1 || t == Heading2 || t == Heading3
}

// IsList reports whether t is a list-like block (bullet, numbered or todo).
func (t BlockType) IsList() bool {
	return t == Bullet || t == Numbered || t == Todo
}

// Block is one classified unit of note content.
//
// Checked is only meaningful for todo blocks, Number for numbered blocks and
// IndentLevel for bullets. Content is empty only for dividers.
type Block struct {
	ID          int       `json:"id"`
	Type        BlockType `json:"type"`
	Content     string    `json:"content"`
	Checked     bool      `json:"checked,omitempty"`
	Number      int       `json:"number,omitempty"`
	IndentLevel int       `json:"indentLevel,omitempty"`
}

// SameAs reports whether two blocks share type and content. The merger
// collapses adjacent blocks for which this holds.
func (b Block) SameAs(other Block) bool {
	return b.Type == other.Type && b.Content == other.Content
}

// BlockSequence is an ordered list of blocks in document order.
type BlockSequence []Block

// Clone returns a copy that shares no backing array with s.
func (s BlockSequence) Clone() BlockSequence {
	if s == nil {
		return nil
	}
	out := make(BlockSequence, len(s))
	copy(out, s)
	return out
}

// Builder accumulates blocks and stamps them with ids in parse order.
// The zero value is ready to use; ids start at 1.
type Builder struct {
	blocks BlockSequence
	next   int
}

// Add appends b, overwriting its ID.
func (bd *Builder) Add(b Block) {
	bd.next++
	b.ID = bd.next
	bd.blocks = append(bd.blocks, b)
}

// Len returns the number of blocks added so far.
func (bd *Builder) Len() int {
	return len(bd.blocks)
}

// Blocks returns the accumulated sequence. It is never nil.
func (bd *Builder) Blocks() BlockSequence {
	if bd.blocks == nil {
		return BlockSequence{}
	}
	return bd.blocks
}

// ContentMetrics are density figures derived from a block sequence.
type ContentMetrics struct {
	TotalBlocks  int  `json:"totalBlocks"`
	TotalChars   int  `json:"totalChars"`
	HeadingCount int  `json:"headingCount"`
	HasCode      bool `json:"hasCode"`
	HasList      bool `json:"hasList"`
}
