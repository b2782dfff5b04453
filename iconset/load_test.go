package iconset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chromana/chromana/errors"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadTOML(t *testing.T) {
	path := writeConfig(t, "config.toml", `
name = "Magic Symbols"
code = "magic"
version = "1.2.0"

[[categories]]
name = "mana"
display_name = "Mana Symbols"

[[styles]]
name = "shadow"

[[example]]
text = "{T}: Add {G}."
desc = "tap for green"

[[symbols]]
name = "tap"
file = "tap.svg"
ligature = "{T}"
category = "mana"

[symbols.variant]
alt = "tap_alt.svg"

[[symbols]]
name = "white"
file = "w.svg"
ligature = ["{W}", "{w}"]
add-shadow = true
overflow = true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "magic", cfg.Code)
	assert.Equal(t, "Magic Symbols", cfg.Name)
	assert.Equal(t, "1.2.0", cfg.Version)

	require.Len(t, cfg.Categories, 1)
	assert.Equal(t, "Mana Symbols", cfg.Categories[0].DisplayName)

	require.Len(t, cfg.Styles, 1)
	assert.Equal(t, "Shadow", cfg.Styles[0].DisplayName, "display name defaults to titleized style name")

	require.Len(t, cfg.Examples, 1)
	assert.Equal(t, "{T}: Add {G}.", cfg.Examples[0].Text)

	require.Len(t, cfg.Symbols, 2)

	tap := cfg.Symbols[0]
	assert.Equal(t, []string{"{T}"}, tap.Ligatures, "single string ligature normalizes to one-element list")
	require.Len(t, tap.Variants, 1)
	assert.Equal(t, Variant{Name: "alt", File: "tap_alt.svg"}, tap.Variants[0])
	assert.Empty(t, tap.Styles)

	white := cfg.Symbols[1]
	assert.Equal(t, []string{"{W}", "{w}"}, white.Ligatures)
	assert.True(t, white.Overflow)
	require.Len(t, white.Styles, 1)
	assert.Equal(t, Style{Name: "shadow", Dir: "shadow"}, white.Styles[0], "add-shadow registers the conventional shadow style")
}

func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
code: loyalty
version: 0.3.0
symbols:
  - name: up
    file: up.svg
    ligature: "[+1]"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "loyalty", cfg.Code)
	require.Len(t, cfg.Symbols, 1)
	assert.Equal(t, []string{"[+1]"}, cfg.Symbols[0].Ligatures)
}

func TestLoadFlatFlag(t *testing.T) {
	path := writeConfig(t, "config.toml", `
code = "magic"
version = "1.0.0"
[[symbols]]
name = "white"
file = "w.svg"
add-flat = true
[[symbols]]
name = "azorius"
file = "wu.svg"
add-flat = "split"
[[symbols]]
name = "tap"
file = "tap.svg"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Len(t, cfg.Symbols, 3)
	assert.Equal(t, "basic", cfg.Symbols[0].FlatType, "bare true selects the basic treatment")
	assert.Equal(t, "split", cfg.Symbols[1].FlatType)
	assert.Empty(t, cfg.Symbols[2].FlatType)
}

func TestLoadBadFlatTreatment(t *testing.T) {
	path := writeConfig(t, "config.toml", `
code = "magic"
version = "1.0.0"
[[symbols]]
name = "white"
file = "w.svg"
add-flat = "monochrome"
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsConfigError(err))
	assert.Contains(t, err.Error(), "monochrome")
}

func TestLoadMissingCode(t *testing.T) {
	path := writeConfig(t, "config.toml", `
version = "1.0.0"
[[symbols]]
name = "tap"
file = "tap.svg"
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsConfigError(err))
	assert.Contains(t, err.Error(), "code")
}

func TestLoadMissingVersion(t *testing.T) {
	path := writeConfig(t, "config.toml", `code = "magic"`)

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsConfigError(err))
	assert.Contains(t, err.Error(), "version")
}

func TestLoadSymbolMissingFile(t *testing.T) {
	path := writeConfig(t, "config.toml", `
code = "magic"
version = "1.0.0"
[[symbols]]
name = "tap"
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsConfigError(err))
	assert.Contains(t, err.Error(), `"tap"`)
}

func TestLoadBadLigatureShape(t *testing.T) {
	path := writeConfig(t, "config.toml", `
code = "magic"
version = "1.0.0"
[[symbols]]
name = "tap"
file = "tap.svg"
ligature = 7
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsConfigError(err))
}

func TestLoadDuplicateSymbol(t *testing.T) {
	path := writeConfig(t, "config.toml", `
code = "magic"
version = "1.0.0"
[[symbols]]
name = "tap"
file = "tap.svg"
[[symbols]]
name = "tap"
file = "tap2.svg"
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsConfigError(err))
	assert.Contains(t, err.Error(), "duplicate")
}

func TestLoadMissingFileIsConfigError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "config.toml"))
	require.Error(t, err)
	assert.True(t, errors.IsConfigError(err))
}

func TestFindConfig(t *testing.T) {
	dir := t.TempDir()
	_, ok := FindConfig(dir)
	assert.False(t, ok)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("code: x\nversion: 1.0.0\n"), 0o644))
	path, ok := FindConfig(dir)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "config.yaml"), path)

	// TOML wins when both are present.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("code = \"x\"\n"), 0o644))
	path, ok = FindConfig(dir)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "config.toml"), path)
}

func TestSymbolHelpers(t *testing.T) {
	sym := Symbol{
		Name: "tap",
		File: "tap.svg",
		Variants: []Variant{
			{Name: "alt", File: "tap_alt.svg"},
		},
		Styles: []Style{
			{Name: "shadow", Dir: "shadow"},
		},
	}

	dir, ok := sym.StyleDir("default")
	require.True(t, ok)
	assert.Equal(t, "default", dir)

	dir, ok = sym.StyleDir("shadow")
	require.True(t, ok)
	assert.Equal(t, "shadow", dir)

	_, ok = sym.StyleDir("flat")
	assert.False(t, ok)

	file, ok := sym.VariantFile("default")
	require.True(t, ok)
	assert.Equal(t, "tap.svg", file)

	file, ok = sym.VariantFile("alt")
	require.True(t, ok)
	assert.Equal(t, "tap_alt.svg", file)

	assert.Equal(t, 4, sym.Instances(), "(1+1) variants x (1+1) styles")
}
