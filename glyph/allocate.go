// Package glyph assigns private-use-area codepoints to the glyph
// instances of an icon set and preprocesses their artwork.
//
// One symbol expands to the full cross-product of its variants and
// styles; every instance gets a stable codepoint determined purely by
// configuration order.
package glyph

import (
	"fmt"
	"path/filepath"

	"github.com/chromana/chromana/iconset"
)

// BasePUA is the first codepoint handed out. The private-use area
// keeps icon glyphs clear of every standard character assignment.
const BasePUA = 0xE000

// Glyph is one concrete renderable instance: a (symbol, variant,
// style) triple bound to a codepoint and preprocessed artwork.
// Created once per build and immutable thereafter.
type Glyph struct {
	Symbol    string
	Variant   string
	Style     string
	Codepoint rune
	Path      string   // resolved artwork path
	Ligatures []string // inherited from the symbol; meaningful on the default instance
	Overflow  bool
	Category  string
}

// Name returns the glyph's font-internal name, e.g. "uniE000".
func (g Glyph) Name() string {
	return fmt.Sprintf("uni%04X", g.Codepoint)
}

// IsDefault reports whether this is the symbol's default-variant,
// default-style instance, the one ligature triggers resolve to.
func (g Glyph) IsDefault() bool {
	return g.Variant == iconset.DefaultKey && g.Style == iconset.DefaultKey
}

// Allocate expands every symbol into its glyph instances and assigns
// codepoints sequentially from BasePUA.
//
// Enumeration order per symbol is fixed: (default, default), then each
// non-default variant under the default style, then the default
// variant under each non-default style, then each variant under each
// non-default style. Symbols expand in input order. Codepoint
// stability across builds therefore depends only on configuration
// order being stable.
func Allocate(symbols []iconset.Symbol, baseDir string) []Glyph {
	var glyphs []Glyph
	next := rune(BasePUA)

	emit := func(sym *iconset.Symbol, variant, style, dir, file string) {
		glyphs = append(glyphs, Glyph{
			Symbol:    sym.Name,
			Variant:   variant,
			Style:     style,
			Codepoint: next,
			Path:      filepath.Join(baseDir, dir, file),
			Ligatures: sym.Ligatures,
			Overflow:  sym.Overflow,
			Category:  sym.Category,
		})
		next++
	}

	for i := range symbols {
		sym := &symbols[i]

		emit(sym, iconset.DefaultKey, iconset.DefaultKey, iconset.DefaultKey, sym.File)

		for _, v := range sym.Variants {
			emit(sym, v.Name, iconset.DefaultKey, iconset.DefaultKey, v.File)
		}

		for _, st := range sym.Styles {
			emit(sym, iconset.DefaultKey, st.Name, st.Dir, sym.File)

			for _, v := range sym.Variants {
				emit(sym, v.Name, st.Name, st.Dir, v.File)
			}
		}
	}

	return glyphs
}
