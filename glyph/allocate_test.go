package glyph

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chromana/chromana/iconset"
)

func TestAllocateSingleSymbolWithVariant(t *testing.T) {
	symbols := []iconset.Symbol{
		{
			Name:      "tap",
			File:      "tap.svg",
			Ligatures: []string{"{T}"},
			Variants:  []iconset.Variant{{Name: "alt", File: "tap_alt.svg"}},
		},
	}

	glyphs := Allocate(symbols, "icons/magic")

	require.Len(t, glyphs, 2)

	assert.Equal(t, rune(0xE000), glyphs[0].Codepoint)
	assert.Equal(t, rune(0xE001), glyphs[1].Codepoint)

	assert.True(t, glyphs[0].IsDefault())
	assert.Equal(t, filepath.Join("icons/magic", "default", "tap.svg"), glyphs[0].Path)

	assert.False(t, glyphs[1].IsDefault())
	assert.Equal(t, "alt", glyphs[1].Variant)
	assert.Equal(t, filepath.Join("icons/magic", "default", "tap_alt.svg"), glyphs[1].Path)
}

func TestAllocateEnumerationOrder(t *testing.T) {
	symbols := []iconset.Symbol{
		{
			Name: "w",
			File: "w.svg",
			Variants: []iconset.Variant{
				{Name: "alt", File: "w_alt.svg"},
				{Name: "old", File: "w_old.svg"},
			},
			Styles: []iconset.Style{
				{Name: "flat", Dir: "flat"},
				{Name: "shadow", Dir: "shadow"},
			},
		},
	}

	glyphs := Allocate(symbols, "base")

	// (variants+1) x (styles+1) = 3 x 3
	require.Len(t, glyphs, 9)

	type vs struct{ variant, style string }
	var got []vs
	for _, g := range glyphs {
		got = append(got, vs{g.Variant, g.Style})
	}

	want := []vs{
		{"default", "default"},
		{"alt", "default"},
		{"old", "default"},
		{"default", "flat"},
		{"alt", "flat"},
		{"old", "flat"},
		{"default", "shadow"},
		{"alt", "shadow"},
		{"old", "shadow"},
	}
	assert.Equal(t, want, got)

	// Style directories drive path resolution.
	assert.Equal(t, filepath.Join("base", "shadow", "w_old.svg"), glyphs[8].Path)
}

func TestAllocateCodepointsContiguousAcrossSymbols(t *testing.T) {
	symbols := []iconset.Symbol{
		{Name: "a", File: "a.svg", Variants: []iconset.Variant{{Name: "x", File: "ax.svg"}}},
		{Name: "b", File: "b.svg"},
		{Name: "c", File: "c.svg", Styles: []iconset.Style{{Name: "shadow", Dir: "shadow"}}},
	}

	glyphs := Allocate(symbols, ".")

	total := 0
	for _, s := range symbols {
		total += s.Instances()
	}
	require.Len(t, glyphs, total)

	for i, g := range glyphs {
		assert.Equal(t, rune(BasePUA+i), g.Codepoint, "codepoints strictly increasing and contiguous")
	}

	assert.Equal(t, "uniE000", glyphs[0].Name())
	assert.Equal(t, "uniE003", glyphs[3].Name())
}

func TestAllocateEmpty(t *testing.T) {
	assert.Empty(t, Allocate(nil, "."))
}
