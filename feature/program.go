package feature

import (
	"fmt"
	"sort"
	"strings"
)

// Tag returns the OpenType feature tag for this stylistic set,
// e.g. "ss01".
func (b *StyleBlock) Tag() string {
	return fmt.Sprintf("ss%02d", b.Index)
}

// Text serializes the program as feature-file (FEA) rule text. Blocks
// appear in fixed order: ligatures, stylistic alternates, then one
// stylistic set per style in first-seen order. Empty blocks are
// omitted entirely. Serialization is deterministic: the same program
// always yields byte-identical text.
func (p *Program) Text() string {
	var b strings.Builder

	b.WriteString("languagesystem DFLT dflt;\n\n")

	if len(p.Ligatures) > 0 {
		b.WriteString("feature liga {\n")
		for _, rule := range p.Ligatures {
			fmt.Fprintf(&b, "  sub %s by %s;\n", strings.Join(rule.Tokens, " "), rule.Glyph)
		}
		b.WriteString("} liga;\n\n")
	}

	if len(p.Alternates) > 0 {
		b.WriteString("feature salt {  # Stylistic Alternates\n")
		for _, rule := range p.Alternates {
			fmt.Fprintf(&b, "  sub %s from [%s];\n", rule.Base, strings.Join(rule.Alternates, " "))
		}
		b.WriteString("} salt;\n\n")
	}

	for _, block := range p.StyleSets {
		if len(block.Rules) == 0 {
			continue
		}
		fmt.Fprintf(&b, "feature %s {  # Stylistic Set %d (%s)\n", block.Tag(), block.Index, block.Style)
		for _, rule := range block.Rules {
			fmt.Fprintf(&b, "  sub %s by %s;\n", rule.Base, rule.Replacement)
		}
		fmt.Fprintf(&b, "} %s;\n\n", block.Tag())
	}

	return b.String()
}

// ReferencedInputNames returns the sorted set of token names used in
// ligature triggers. The assembler must guarantee each of these exists
// in the base font before rule injection, since trigger tokens name
// ordinary text characters rather than icon glyphs.
func (p *Program) ReferencedInputNames() []string {
	set := make(map[string]bool)
	for _, rule := range p.Ligatures {
		for _, tok := range rule.Tokens {
			set[tok] = true
		}
	}
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
