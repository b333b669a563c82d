package core

// Tier is a named line-height band chosen from the scale factor.
type Tier string

const (
	TierSpacious Tier = "spacious"
	TierMedium   Tier = "medium"
	TierTight    Tier = "tight"
)

// Category groups block types that share typographic treatment.
type Category string

const (
	CategoryHeading1 Category = "heading1"
	CategoryHeading2 Category = "heading2"
	CategoryHeading3 Category = "heading3"
	CategoryBody     Category = "body"
	CategoryCode     Category = "code"
)

// Token is the computed size, line-height and spacing for one category.
type Token struct {
	Size       float64 `json:"size"`
	Unit       string  `json:"unit"` // "rem" or "px"
	LineHeight float64 `json:"lineHeight"`
	Spacing    float64 `json:"spacing"` // em below the block
}

// TypographyScale is the density-driven scale for a note. Scale is always
// within [0.65, 1.0].
type TypographyScale struct {
	Scale      float64            `json:"scale"`
	LineHeight Tier               `json:"lineHeight"`
	Metrics    ContentMetrics     `json:"metrics"`
	Tokens     map[Category]Token `json:"tokens"`
}

// TokenFor returns the token for category c, falling back to body.
func (s TypographyScale) TokenFor(c Category) Token {
	if tok, ok := s.Tokens[c]; ok {
		return tok
	}
	return s.Tokens[CategoryBody]
}
