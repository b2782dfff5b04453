package assembly

import (
	"os"

	"golang.org/x/image/font/sfnt"

	"github.com/chromana/chromana/errors"
)

// FontReport summarizes a parsed font binary.
type FontReport struct {
	Family    string
	NumGlyphs int
	Size      int64
}

// Verify parses an assembled font and checks it holds at least the
// allocated glyph count. The external assembler is trusted to encode
// tables correctly; this catches truncated or swapped outputs before
// they are packaged.
func Verify(fontPath string, wantGlyphs int) (*FontReport, error) {
	data, err := os.ReadFile(fontPath)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrAssembly, "failed to read assembled font %s: %v", fontPath, err)
	}

	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrAssembly, "assembled font %s does not parse: %v", fontPath, err)
	}

	report := &FontReport{
		NumGlyphs: f.NumGlyphs(),
		Size:      int64(len(data)),
	}
	if family, err := f.Name(nil, sfnt.NameIDFamily); err == nil {
		report.Family = family
	}

	if report.NumGlyphs < wantGlyphs {
		return report, errors.Wrapf(errors.ErrAssembly,
			"assembled font %s has %d glyphs, expected at least %d",
			fontPath, report.NumGlyphs, wantGlyphs)
	}
	return report, nil
}
