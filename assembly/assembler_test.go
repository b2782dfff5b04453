package assembly

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/chromana/chromana/errors"
)

func TestInputGlyphsCoverTriggerCharacters(t *testing.T) {
	// Digits.
	for c := '0'; c <= '9'; c++ {
		found := false
		for _, cp := range InputGlyphs {
			if cp == c {
				found = true
				break
			}
		}
		assert.True(t, found, "digit %c must be an input glyph", c)
	}

	// Uppercase letters map under their own names.
	for c := 'A'; c <= 'Z'; c++ {
		cp, ok := InputGlyphs[string(c)]
		require.True(t, ok, "letter %c must be an input glyph", c)
		assert.Equal(t, c, cp)
	}

	// The punctuation and specials referenced by conventional triggers.
	assert.Equal(t, rune('{'), InputGlyphs["braceleft"])
	assert.Equal(t, rune('}'), InputGlyphs["braceright"])
	assert.Equal(t, rune('/'), InputGlyphs["slash"])
	assert.Equal(t, rune('½'), InputGlyphs["onehalf"])
	assert.Equal(t, rune('∞'), InputGlyphs["uni221E"])
}

func TestDriverScriptEmbedded(t *testing.T) {
	assert.Contains(t, string(driverScript), "INPUT_GLYPHS")
	assert.Contains(t, string(driverScript), "addOpenTypeFeatures")
}

func TestBuildBaseRequiresArtwork(t *testing.T) {
	a := NewExternalAssembler("", "", 0, zap.NewNop().Sugar())
	assert.Equal(t, "nanoemoji", a.Nanoemoji)
	assert.Equal(t, "python3", a.Python)

	_, err := a.BuildBase(context.Background(), &Request{
		FamilyName: "Chromana-test",
		WorkDir:    t.TempDir(),
	})

	require.Error(t, err)
	assert.True(t, errors.IsAssemblyError(err))
}

func TestBuildBaseMissingTool(t *testing.T) {
	a := NewExternalAssembler("definitely-not-a-real-tool-xyz", "", 0, zap.NewNop().Sugar())

	dir := t.TempDir()
	_, err := a.BuildBase(context.Background(), &Request{
		FamilyName: "Chromana-test",
		SVGPaths:   []string{filepath.Join(dir, "emoji_ue000.svg")},
		WorkDir:    dir,
	})

	require.Error(t, err)
	assert.True(t, errors.IsAssemblyError(err))
}

func TestVerifyRejectsGarbage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "font.ttf")
	require.NoError(t, os.WriteFile(path, []byte("not a font"), 0o644))

	_, err := Verify(path, 1)
	require.Error(t, err)
	assert.True(t, errors.IsAssemblyError(err))
}

func TestVerifyMissingFile(t *testing.T) {
	_, err := Verify(filepath.Join(t.TempDir(), "nope.ttf"), 1)
	require.Error(t, err)
	assert.True(t, errors.IsAssemblyError(err))
}
