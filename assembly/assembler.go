// Package assembly wraps the external font-engineering capability
// that turns artwork plus codepoints into a font binary and injects
// the derived substitution tables.
//
// The pipeline treats this as a black box behind the Assembler
// contract: phase one builds a base color font from the staged
// artwork, phase two injects the feature-rule program's GSUB tables.
// The production implementation shells out to nanoemoji and a
// fontTools driver script; nothing else in the repository knows how
// fonts are encoded.
package assembly

import (
	"context"

	"github.com/chromana/chromana/glyph"
)

// ColorFormatGlyf is the color format requested from the base-font
// builder: COLR v0 layered outlines, the most widely supported.
const ColorFormatGlyf = "glyf_colr_0"

// Request describes one base-font build.
type Request struct {
	FamilyName  string        // e.g. "Chromana-magic"
	ColorFormat string        // defaults to ColorFormatGlyf when empty
	Glyphs      []glyph.Glyph // allocation order; artwork already preprocessed
	SVGPaths    []string      // staged artwork, parallel to Glyphs
	WorkDir     string        // scratch directory owned by this build
}

// Assembler is the external font-assembly contract.
//
// Pre-condition guaranteed by the implementation, not the caller:
// every ordinary-character glyph referenced by ligature triggers
// (digits, uppercase letters, a short list of punctuation) exists in
// the font (as a zero-width placeholder mapped in the Unicode cmap
// when the artwork did not supply it) before rules are injected.
type Assembler interface {
	// BuildBase produces the base font binary with one color glyph per
	// codepoint and returns its path.
	BuildBase(ctx context.Context, req *Request) (string, error)

	// InjectFeatures reads the feature-rule text from feaPath and
	// writes fontPath's enhanced copy to outputPath.
	InjectFeatures(ctx context.Context, fontPath, feaPath, outputPath string) error
}

// InputGlyphs is the fixed set of single-character "input" glyphs the
// assembler guarantees before feature injection. Ligature triggers
// reference ordinary text characters, and a font built purely from
// icon artwork contains none of them.
var InputGlyphs = map[string]rune{
	"braceleft":  0x007B,
	"braceright": 0x007D,
	"slash":      0x002F,
	"onehalf":    0x00BD,
	"uni221E":    0x221E,

	"zero": '0', "one": '1', "two": '2', "three": '3', "four": '4',
	"five": '5', "six": '6', "seven": '7', "eight": '8', "nine": '9',

	"A": 'A', "B": 'B', "C": 'C', "D": 'D', "E": 'E', "F": 'F',
	"G": 'G', "H": 'H', "I": 'I', "J": 'J', "K": 'K', "L": 'L',
	"M": 'M', "N": 'N', "O": 'O', "P": 'P', "Q": 'Q', "R": 'R',
	"S": 'S', "T": 'T', "U": 'U', "V": 'V', "W": 'W', "X": 'X',
	"Y": 'Y', "Z": 'Z',
}
