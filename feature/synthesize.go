package feature

import (
	"github.com/chromana/chromana/glyph"
	"github.com/chromana/chromana/iconset"
)

// LigatureRule substitutes a token sequence with one glyph.
type LigatureRule struct {
	Tokens []string
	Glyph  string
}

// AlternateRule exposes a glyph's cosmetic alternates (salt).
type AlternateRule struct {
	Base       string
	Alternates []string
}

// StyleRule substitutes a default-style glyph with its styled
// counterpart for the same variant.
type StyleRule struct {
	Base        string
	Replacement string
}

// StyleBlock is one stylistic set: all substitutions for one style,
// toggleable independently of other styles and of ligature resolution.
type StyleBlock struct {
	Style string // style name, e.g. "shadow"
	Index int    // 1-based, first-seen order across the glyph table
	Rules []StyleRule
}

// Diagnostic records a skipped rule. Skips never fail synthesis; they
// are surfaced so the operator can see what was left out and why.
type Diagnostic struct {
	Symbol  string
	Trigger string // empty for non-ligature diagnostics
	Reason  string
}

// Program is the derived feature-rule program for one glyph table.
type Program struct {
	Ligatures  []LigatureRule
	Alternates []AlternateRule
	StyleSets  []StyleBlock

	Added   int          // successfully derived ligature rules
	Skipped []Diagnostic // skipped rules with reasons
}

// symbolGroup partitions one symbol's instances into a per-style map
// of per-variant glyph names. Insertion order is preserved throughout
// so derivation does not depend on map iteration.
type symbolGroup struct {
	name      string
	ligatures []string

	styleOrder []string
	styles     map[string]*variantSet
}

type variantSet struct {
	order  []string
	glyphs map[string]string // variant -> glyph name
}

func (g *symbolGroup) variants(style string) *variantSet {
	vs, ok := g.styles[style]
	if !ok {
		vs = &variantSet{glyphs: make(map[string]string)}
		g.styles[style] = vs
		g.styleOrder = append(g.styleOrder, style)
	}
	return vs
}

func (v *variantSet) put(variant, glyphName string) {
	if _, ok := v.glyphs[variant]; !ok {
		v.order = append(v.order, variant)
	}
	v.glyphs[variant] = glyphName
}

// Synthesize derives the full rule program from an allocated glyph
// table. It is a pure function: same glyphs (same order) and same name
// table always produce the same program.
func Synthesize(glyphs []glyph.Glyph, names *NameTable) *Program {
	prog := &Program{}

	groups, order := groupBySymbol(glyphs)

	// Distinct non-default style names in first-seen order determine
	// the stylistic-set indices.
	styleIndex := make(map[string]int)
	for _, name := range order {
		for _, style := range groups[name].styleOrder {
			if style == iconset.DefaultKey {
				continue
			}
			if _, ok := styleIndex[style]; !ok {
				styleIndex[style] = len(prog.StyleSets) + 1
				prog.StyleSets = append(prog.StyleSets, StyleBlock{
					Style: style,
					Index: len(prog.StyleSets) + 1,
				})
			}
		}
	}

	for _, symName := range order {
		group := groups[symName]

		defaults, ok := group.styles[iconset.DefaultKey]
		if !ok {
			prog.skip(symName, "", "no default-style glyph")
			continue
		}
		defaultGlyph, ok := defaults.glyphs[iconset.DefaultKey]
		if !ok {
			prog.skip(symName, "", "no default-variant glyph")
			continue
		}

		// Ligature rules resolve to the default-variant/default-style
		// glyph only.
		for _, trigger := range group.ligatures {
			tokens := names.Tokenize(trigger)
			if len(tokens) == 0 {
				prog.skip(symName, trigger, "trigger yields no tokens")
				continue
			}
			prog.Ligatures = append(prog.Ligatures, LigatureRule{Tokens: tokens, Glyph: defaultGlyph})
			prog.Added++
		}

		// Stylistic alternates: the default glyph's non-default
		// variants under the default style, in insertion order.
		if len(defaults.order) > 1 {
			var alts []string
			for _, variant := range defaults.order {
				if variant == iconset.DefaultKey {
					continue
				}
				alts = append(alts, defaults.glyphs[variant])
			}
			if len(alts) > 0 {
				prog.Alternates = append(prog.Alternates, AlternateRule{Base: defaultGlyph, Alternates: alts})
			}
		}

		// Stylistic sets: for every styled instance, substitute the
		// matching default-style glyph of the same variant.
		for _, style := range group.styleOrder {
			if style == iconset.DefaultKey {
				continue
			}
			block := &prog.StyleSets[styleIndex[style]-1]
			styled := group.styles[style]
			for _, variant := range styled.order {
				base, ok := defaults.glyphs[variant]
				if !ok {
					prog.skip(symName, "", "style "+style+" variant "+variant+" has no default-style counterpart")
					continue
				}
				block.Rules = append(block.Rules, StyleRule{
					Base:        base,
					Replacement: styled.glyphs[variant],
				})
			}
		}
	}

	return prog
}

func groupBySymbol(glyphs []glyph.Glyph) (map[string]*symbolGroup, []string) {
	groups := make(map[string]*symbolGroup)
	var order []string

	for _, g := range glyphs {
		group, ok := groups[g.Symbol]
		if !ok {
			group = &symbolGroup{
				name:      g.Symbol,
				ligatures: g.Ligatures,
				styles:    make(map[string]*variantSet),
			}
			groups[g.Symbol] = group
			order = append(order, g.Symbol)
		}
		group.variants(g.Style).put(g.Variant, g.Name())
	}

	return groups, order
}

func (p *Program) skip(symbol, trigger, reason string) {
	p.Skipped = append(p.Skipped, Diagnostic{Symbol: symbol, Trigger: trigger, Reason: reason})
}

// StyleIndex returns the 1-based stylistic-set index for a style name.
func (p *Program) StyleIndex(style string) (int, bool) {
	for _, block := range p.StyleSets {
		if block.Style == style {
			return block.Index, true
		}
	}
	return 0, false
}
