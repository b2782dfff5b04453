// Package pack turns an assembled font into its web-delivery
// artifacts: compressed font formats, a stylesheet binding the family
// to CSS classes, and a browsable HTML preview.
//
// Nothing here feeds back into the build core. Missing optional
// formats degrade to warnings; the build keeps whatever succeeded.
package pack

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/chromana/chromana/errors"
)

// Converter re-flavors a TTF into a web format chosen by the output
// path's extension. Satisfied by assembly.ExternalAssembler.
type Converter interface {
	Convert(ctx context.Context, fontPath, outputPath string) error
}

// FontFiles lists the produced font binaries. Empty fields mean the
// format could not be produced.
type FontFiles struct {
	TTF   string
	WOFF  string
	WOFF2 string
}

// Formats returns the available (format, path) pairs in preference
// order: woff2, woff, ttf.
func (f FontFiles) Formats() [][2]string {
	var out [][2]string
	if f.WOFF2 != "" {
		out = append(out, [2]string{"woff2", f.WOFF2})
	}
	if f.WOFF != "" {
		out = append(out, [2]string{"woff", f.WOFF})
	}
	if f.TTF != "" {
		out = append(out, [2]string{"truetype", f.TTF})
	}
	return out
}

// Convert produces WOFF and WOFF2 siblings next to the TTF. Conversion
// failures are contained per format: the returned warnings name what
// was skipped and why, and the TTF always survives.
func Convert(ctx context.Context, conv Converter, ttfPath string, log *zap.SugaredLogger) (FontFiles, []error) {
	files := FontFiles{TTF: ttfPath}
	var warnings []error

	base := strings.TrimSuffix(ttfPath, ".ttf")

	woff := base + ".woff"
	if err := conv.Convert(ctx, ttfPath, woff); err != nil {
		warnings = append(warnings, errors.Wrap(errors.ErrPackaging, err.Error()))
		log.Warnw("woff conversion failed, continuing without it", "font", ttfPath, "error", err)
	} else {
		files.WOFF = woff
	}

	woff2 := base + ".woff2"
	if err := conv.Convert(ctx, ttfPath, woff2); err != nil {
		warnings = append(warnings, errors.WithHint(
			errors.Wrap(errors.ErrPackaging, err.Error()),
			"woff2 output needs the brotli module: pip install brotli"))
		log.Warnw("woff2 conversion failed, continuing without it", "font", ttfPath, "error", err)
	} else {
		files.WOFF2 = woff2
	}

	return files, warnings
}
