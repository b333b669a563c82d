// Package typography derives a density-driven type scale for a note.
// Longer and denser notes get smaller type so they stay visually balanced.
package typography

import (
	"unicode/utf8"

	"github.com/gaurav-prasanna/notepipe/core"
)

const (
	MinScale = 0.65
	MaxScale = 1.0
)

// Base sizes before scaling. Headings are in rem, body and code in px.
const (
	baseHeading1 = 2.8
	baseHeading2 = 2.0
	baseHeading3 = 1.5
	baseBody     = 17.0
	baseCode     = 14.0
)

type tierStyle struct {
	lineHeight float64
	spacing    float64
}

var tiers = map[core.Tier]tierStyle{
	core.TierSpacious: {lineHeight: 1.7, spacing: 1.25},
	core.TierMedium:   {lineHeight: 1.55, spacing: 1.0},
	core.TierTight:    {lineHeight: 1.4, spacing: 0.75},
}

// Metrics computes the density figures of blocks. Characters are counted as
// runes.
func Metrics(blocks core.BlockSequence) core.ContentMetrics {
	m := core.ContentMetrics{TotalBlocks: len(blocks)}
	for _, b := range blocks {
		m.TotalChars += utf8.RuneCountInString(b.Content)
		if b.Type.IsHeading() {
			m.HeadingCount++
		}
		if b.Type == core.Code {
			m.HasCode = true
		}
		if b.Type.IsList() {
			m.HasList = true
		}
	}
	return m
}

// Factor returns the scale factor for the given metrics, clamped to
// [MinScale, MaxScale]. It never increases when any metric increases.
func Factor(m core.ContentMetrics) float64 {
	scale := 1.0
	if m.TotalBlocks > 3 {
		scale -= 0.04 * float64(min(m.TotalBlocks-3, 10))
	}
	if m.TotalChars > 150 {
		scale -= 0.08
	}
	if m.TotalChars > 300 {
		scale -= 0.08
	}
	if m.TotalChars > 500 {
		scale -= 0.06
	}
	if m.HeadingCount > 2 {
		scale -= 0.04 * float64(min(m.HeadingCount-2, 4))
	}
	return clamp(scale)
}

func clamp(v float64) float64 {
	if v < MinScale {
		return MinScale
	}
	if v > MaxScale {
		return MaxScale
	}
	return v
}

// TierFor picks the line-height tier for a scale factor.
func TierFor(scale float64) core.Tier {
	switch {
	case scale > 0.85:
		return core.TierSpacious
	case scale > 0.75:
		return core.TierMedium
	default:
		return core.TierTight
	}
}

// Compute builds the full typography scale for blocks.
func Compute(blocks core.BlockSequence) core.TypographyScale {
	m := Metrics(blocks)
	scale := Factor(m)
	tier := TierFor(scale)
	style := tiers[tier]

	token := func(base float64, unit string) core.Token {
		return core.Token{
			Size:       base * scale,
			Unit:       unit,
			LineHeight: style.lineHeight,
			Spacing:    style.spacing,
		}
	}

	return core.TypographyScale{
		Scale:      scale,
		LineHeight: tier,
		Metrics:    m,
		Tokens: map[core.Category]core.Token{
			core.CategoryHeading1: token(baseHeading1, "rem"),
			core.CategoryHeading2: token(baseHeading2, "rem"),
			core.CategoryHeading3: token(baseHeading3, "rem"),
			core.CategoryBody:     token(baseBody, "px"),
			core.CategoryCode:     token(baseCode, "px"),
		},
	}
}

// CategoryOf maps a block type to its typographic category.
func CategoryOf(t core.BlockType) core.Category {
	switch t {
	case core.Heading1:
		return core.CategoryHeading1
	case core.Heading2:
		return core.CategoryHeading2
	case core.Heading3:
		return core.CategoryHeading3
	case core.Code:
		return core.CategoryCode
	default:
		return core.CategoryBody
	}
}
