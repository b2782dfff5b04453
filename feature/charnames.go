// Package feature derives the OpenType substitution rule program for
// an allocated glyph table: ligature rules (liga), stylistic
// alternates (salt), and one stylistic set (ss01..ssNN) per style.
//
// Everything here is pure data transformation. The same glyph table
// always yields the same rule text, and per-symbol problems become
// diagnostics on the program rather than failures.
package feature

import "fmt"

// NameTable maps characters to the canonical glyph names used in
// substitution rules. It is built once and passed by reference into
// the tokenizer; the table is immutable after construction.
type NameTable struct {
	names map[rune]string
}

// DefaultNames builds the canonical character-name table: digits and
// common ASCII punctuation under their conventional glyph names,
// letters as themselves, plus one-half and infinity.
func DefaultNames() *NameTable {
	names := map[rune]string{
		'0': "zero",
		'1': "one",
		'2': "two",
		'3': "three",
		'4': "four",
		'5': "five",
		'6': "six",
		'7': "seven",
		'8': "eight",
		'9': "nine",

		'.': "period",
		',': "comma",
		':': "colon",
		';': "semicolon",
		'!': "exclam",
		'?': "question",

		'\'': "quotesingle",
		'"':  "quotedbl",
		'`':  "grave",

		'(': "parenleft",
		')': "parenright",
		'[': "bracketleft",
		']': "bracketright",
		'{': "braceleft",
		'}': "braceright",
		'<': "less",
		'>': "greater",

		'#':  "numbersign",
		'$':  "dollar",
		'%':  "percent",
		'&':  "ampersand",
		'*':  "asterisk",
		'+':  "plus",
		'-':  "hyphen",
		'/':  "slash",
		'\\': "backslash",
		'=':  "equal",
		'@':  "at",
		'^':  "asciicircum",
		'_':  "underscore",
		'|':  "bar",
		'~':  "asciitilde",
		' ':  "space",

		'½': "onehalf",
		'∞': "uni221E",
	}

	for c := 'a'; c <= 'z'; c++ {
		names[c] = string(c)
	}
	for c := 'A'; c <= 'Z'; c++ {
		names[c] = string(c)
	}

	return &NameTable{names: names}
}

// Name returns the canonical glyph name for a character. Characters
// outside the table fall back to Unicode codepoint naming: uniXXXX for
// the basic multilingual plane, uXXXXXX beyond it.
func (t *NameTable) Name(c rune) string {
	if name, ok := t.names[c]; ok {
		return name
	}
	if c <= 0xFFFF {
		return fmt.Sprintf("uni%04X", c)
	}
	return fmt.Sprintf("u%06X", c)
}

// Covers reports whether the character has an explicit table entry
// (i.e. does not rely on the codepoint-name fallback).
func (t *NameTable) Covers(c rune) bool {
	_, ok := t.names[c]
	return ok
}

// Tokenize translates a ligature trigger string into the token
// sequence substituted in a rule, one token per character. An empty
// trigger yields no tokens.
func (t *NameTable) Tokenize(trigger string) []string {
	if trigger == "" {
		return nil
	}
	tokens := make([]string, 0, len(trigger))
	for _, c := range trigger {
		tokens = append(tokens, t.Name(c))
	}
	return tokens
}
