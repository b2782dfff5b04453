package artwork

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/chromana/chromana/errors"
	"github.com/chromana/chromana/iconset"
)

// Loyalty component templates, one per numeral sign.
const (
	componentsDir = "components"

	loyaltyNaught = "_loyalty_naught.svg"
	loyaltyUp     = "_loyalty_up.svg"
	loyaltyDown   = "_loyalty_down.svg"
)

const loyaltyFontSize = 60

// textHeightRatio approximates the rendered cap extent of the numeral
// face relative to its point size, measured from its ascent and
// descent. Used to visually center the numeral on the component.
const textHeightRatio = 0.784

// Loyalty renders the default artwork of every create-loyalty symbol:
// the numeral from the symbol's first ligature, converted to outline
// paths with the given font, centered on the loyalty component
// matching its sign. Returns the number of files written.
func Loyalty(cfg *iconset.Config, setDir, fontPath string, log *zap.SugaredLogger) (int, error) {
	fontData, err := os.ReadFile(fontPath)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to read numeral font %s", fontPath)
	}
	numerals, err := sfnt.Parse(fontData)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to parse numeral font %s", fontPath)
	}

	outDir := filepath.Join(setDir, iconset.DefaultKey)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return 0, errors.Wrapf(err, "failed to create %s", outDir)
	}

	written := 0
	for _, sym := range cfg.Symbols {
		if !sym.CreateLoyalty {
			continue
		}
		if len(sym.Ligatures) == 0 {
			return written, errors.NewConfigError("symbol %q: create-loyalty requires a ligature", sym.Name)
		}
		text := strings.TrimSuffix(strings.TrimPrefix(sym.Ligatures[0], "["), "]")

		component, err := loyaltyComponent(text)
		if err != nil {
			return written, errors.Wrapf(err, "symbol %q", sym.Name)
		}
		componentPath := filepath.Join(setDir, componentsDir, component)
		root, err := ParseFile(componentPath)
		if err != nil {
			return written, err
		}
		width, height, err := viewBoxSize(root, componentPath)
		if err != nil {
			return written, err
		}

		// Typographic minus, not hyphen-minus.
		render := strings.ReplaceAll(text, "-", "−")
		pathData, textWidth, err := textToPath(numerals, render, loyaltyFontSize)
		if err != nil {
			return written, errors.Wrapf(err, "symbol %q", sym.Name)
		}

		textHeight := loyaltyFontSize * textHeightRatio
		x := (width - textWidth) / 2
		y := height/2 + textHeight*0.35

		numeral := &Element{Name: "path"}
		numeral.SetAttr("d", pathData)
		numeral.SetAttr("fill", "black")
		numeral.SetAttr("transform", fmt.Sprintf("translate(%.2f, %.2f)", x, y))
		root.Children = append(root.Children, numeral)

		outPath := filepath.Join(outDir, sym.File)
		if err := WriteFile(outPath, root); err != nil {
			return written, err
		}
		written++
		log.Infow("rendered loyalty artwork", "symbol", sym.Name, "text", text, "output", outPath)
	}
	return written, nil
}

// loyaltyComponent picks the component template for a loyalty value.
func loyaltyComponent(text string) (string, error) {
	switch {
	case text == "0":
		return loyaltyNaught, nil
	case strings.HasPrefix(text, "+"):
		return loyaltyUp, nil
	case strings.HasPrefix(text, "-"):
		return loyaltyDown, nil
	default:
		return "", errors.NewConfigError("loyalty value %q must be 0 or start with a sign", text)
	}
}

// viewBoxSize reads the width and height from a root element's viewBox.
func viewBoxSize(root *Element, path string) (float64, float64, error) {
	fields := strings.Fields(root.Attr("viewBox"))
	if len(fields) != 4 {
		return 0, 0, errors.NewAssetError(path, "missing or malformed viewBox")
	}
	width, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return 0, 0, errors.NewAssetError(path, "malformed viewBox width %q", fields[2])
	}
	height, err := strconv.ParseFloat(fields[3], 64)
	if err != nil {
		return 0, 0, errors.NewAssetError(path, "malformed viewBox height %q", fields[3])
	}
	return width, height, nil
}

// textToPath converts text to SVG path data using the font's glyph
// outlines at the given size, glyphs advanced left to right from the
// origin with the baseline at y=0. Returns the path data and the
// advance width of the rendered text.
func textToPath(f *sfnt.Font, text string, size float64) (string, float64, error) {
	var buf sfnt.Buffer
	ppem := fixed.Int26_6(size * 64)

	var b strings.Builder
	pen := fixed.Int26_6(0)
	for _, r := range text {
		index, err := f.GlyphIndex(&buf, r)
		if err != nil {
			return "", 0, errors.Wrapf(err, "failed to look up glyph for %q", r)
		}
		if index == 0 {
			return "", 0, errors.Newf("font has no glyph for %q", r)
		}
		segments, err := f.LoadGlyph(&buf, index, ppem, nil)
		if err != nil {
			return "", 0, errors.Wrapf(err, "failed to load glyph for %q", r)
		}
		appendSegments(&b, segments, pen)

		advance, err := f.GlyphAdvance(&buf, index, ppem, font.HintingNone)
		if err != nil {
			return "", 0, errors.Wrapf(err, "failed to measure glyph for %q", r)
		}
		pen += advance
	}
	return b.String(), fixedToFloat(pen), nil
}

// appendSegments writes one glyph's outline as path commands, shifted
// right by the pen position. Glyph segments are y-down with the
// baseline at zero, matching SVG coordinates directly.
func appendSegments(b *strings.Builder, segments sfnt.Segments, pen fixed.Int26_6) {
	open := false
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				b.WriteString("Z")
			}
			open = true
			b.WriteString("M")
			writePoint(b, seg.Args[0], pen)
		case sfnt.SegmentOpLineTo:
			b.WriteString("L")
			writePoint(b, seg.Args[0], pen)
		case sfnt.SegmentOpQuadTo:
			b.WriteString("Q")
			writePoint(b, seg.Args[0], pen)
			b.WriteByte(' ')
			writePoint(b, seg.Args[1], pen)
		case sfnt.SegmentOpCubeTo:
			b.WriteString("C")
			writePoint(b, seg.Args[0], pen)
			b.WriteByte(' ')
			writePoint(b, seg.Args[1], pen)
			b.WriteByte(' ')
			writePoint(b, seg.Args[2], pen)
		}
	}
	if open {
		b.WriteString("Z ")
	}
}

func writePoint(b *strings.Builder, p fixed.Point26_6, pen fixed.Int26_6) {
	b.WriteString(formatCoord(fixedToFloat(p.X + pen)))
	b.WriteByte(' ')
	b.WriteString(formatCoord(fixedToFloat(p.Y)))
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
