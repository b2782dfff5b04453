package pack

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/chromana/chromana/errors"
	"github.com/chromana/chromana/iconset"
)

// stubConverter fails for the formats listed in fail.
type stubConverter struct {
	fail map[string]bool
}

func (s *stubConverter) Convert(_ context.Context, _, outputPath string) error {
	ext := strings.TrimPrefix(filepath.Ext(outputPath), ".")
	if s.fail[ext] {
		return errors.Newf("no %s support", ext)
	}
	return os.WriteFile(outputPath, []byte(ext), 0o644)
}

func TestConvertAllFormats(t *testing.T) {
	ttf := filepath.Join(t.TempDir(), "Chromana-magic.ttf")
	require.NoError(t, os.WriteFile(ttf, []byte("ttf"), 0o644))

	files, warnings := Convert(context.Background(), &stubConverter{}, ttf, zap.NewNop().Sugar())

	assert.Empty(t, warnings)
	assert.Equal(t, ttf, files.TTF)
	assert.FileExists(t, files.WOFF)
	assert.FileExists(t, files.WOFF2)

	formats := files.Formats()
	require.Len(t, formats, 3)
	assert.Equal(t, "woff2", formats[0][0], "woff2 preferred first")
	assert.Equal(t, "truetype", formats[2][0])
}

func TestConvertDegradesGracefully(t *testing.T) {
	ttf := filepath.Join(t.TempDir(), "Chromana-magic.ttf")
	require.NoError(t, os.WriteFile(ttf, []byte("ttf"), 0o644))

	conv := &stubConverter{fail: map[string]bool{"woff2": true}}
	files, warnings := Convert(context.Background(), conv, ttf, zap.NewNop().Sugar())

	require.Len(t, warnings, 1)
	assert.True(t, errors.IsPackagingError(warnings[0]))
	assert.Empty(t, files.WOFF2)
	assert.NotEmpty(t, files.WOFF, "woff still produced when woff2 fails")
	assert.Equal(t, ttf, files.TTF, "ttf always survives")
}

func TestWriteCSS(t *testing.T) {
	path := filepath.Join(t.TempDir(), "magic.css")

	err := WriteCSS(path, CSSData{
		FontName: "Chromana-magic",
		Code:     "magic",
		Sources: []FaceSource{
			{URL: "../dist/magic/Chromana-magic.woff2", Format: "woff2"},
			{URL: "../dist/magic/Chromana-magic.ttf", Format: "truetype"},
		},
		Styles: []StyleClass{
			{Name: "shadow", DisplayName: "Shadow", Tag: "ss01"},
		},
	})
	require.NoError(t, err)

	out, err := os.ReadFile(path)
	require.NoError(t, err)
	css := string(out)

	assert.Contains(t, css, "font-family: 'Chromana-magic';")
	assert.Contains(t, css, "url('../dist/magic/Chromana-magic.woff2') format('woff2'),")
	assert.Contains(t, css, "url('../dist/magic/Chromana-magic.ttf') format('truetype');")
	assert.Contains(t, css, ".magic-icon {")
	assert.Contains(t, css, ".magic-output {")
	assert.Contains(t, css, ".magic-shadow {")
	assert.Contains(t, css, "font-feature-settings: 'liga', 'ss01';")
}

func TestFaceSources(t *testing.T) {
	files := FontFiles{
		TTF:  "/dist/magic/Chromana-magic.ttf",
		WOFF: "/dist/magic/Chromana-magic.woff",
	}

	sources := FaceSources(files, "../dist/magic")

	require.Len(t, sources, 2)
	assert.Equal(t, FaceSource{URL: "../dist/magic/Chromana-magic.woff", Format: "woff"}, sources[0])
	assert.Equal(t, FaceSource{URL: "../dist/magic/Chromana-magic.ttf", Format: "truetype"}, sources[1])
}

func previewConfig() *iconset.Config {
	return &iconset.Config{
		Code: "magic",
		Categories: []iconset.Category{
			{Name: "mana", DisplayName: "Mana Symbols"},
		},
		Examples: []iconset.Example{
			{Text: "{T}: Add {G}.", Desc: "tap for green", Style: "shadow"},
		},
		Symbols: []iconset.Symbol{
			{Name: "tap", File: "tap.svg", Ligatures: []string{"{T}"}, Category: "mana"},
			{Name: "million", File: "m.svg", Ligatures: []string{"{1000000}"}, Overflow: true},
			{Name: "untap", File: "untap.svg", Ligatures: []string{"{Q}", "{UT}"}, Category: "mana"},
		},
	}
}

func TestBuildSections(t *testing.T) {
	sections := BuildSections(previewConfig())

	require.Len(t, sections, 2)

	// Configured categories first, uncategorized stragglers after.
	assert.Equal(t, "Mana Symbols", sections[0].Title)
	require.Len(t, sections[0].Symbols, 2)
	assert.Equal(t, "tap", sections[0].Symbols[0].Name)
	assert.Equal(t, "{Q}, {UT}", sections[0].Symbols[1].All)

	assert.Equal(t, "default", sections[1].Title)
	assert.True(t, sections[1].Symbols[0].Overflow)
}

func TestWriteHTML(t *testing.T) {
	cfg := previewConfig()
	path := filepath.Join(t.TempDir(), "magic.html")

	data := PreviewData{
		FontName: "Chromana-magic",
		Code:     "magic",
		CSSHref:  "./magic.css",
		Sections: BuildSections(cfg),
		Examples: BuildExamples(cfg, func(style string) string { return "magic-" + style }),
	}
	require.NoError(t, WriteHTML(path, data))

	out, err := os.ReadFile(path)
	require.NoError(t, err)
	html := string(out)

	assert.Contains(t, html, "<title>Chromana-magic Icons</title>")
	assert.Contains(t, html, `<link rel="stylesheet" href="./magic.css">`)
	assert.Contains(t, html, "Mana Symbols")
	assert.Contains(t, html, `class="icon-item wide-icon"`)
	assert.Contains(t, html, "magic-shadow")
	assert.Contains(t, html, "{T}: Add {G}.")
}

func TestWriteStaticAssets(t *testing.T) {
	demoDir := filepath.Join(t.TempDir(), "demo")
	require.NoError(t, WriteStaticAssets(demoDir))

	css, err := os.ReadFile(filepath.Join(demoDir, "style.css"))
	require.NoError(t, err)
	assert.Contains(t, string(css), ".icons-grid")
	assert.Contains(t, string(css), ".wide-icon")

	js, err := os.ReadFile(filepath.Join(demoDir, "action.js"))
	require.NoError(t, err)
	assert.Contains(t, string(js), "testInput")
	assert.Contains(t, string(js), "'reload'")
}
