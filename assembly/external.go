package assembly

import (
	"context"
	_ "embed"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/chromana/chromana/errors"
	"github.com/chromana/chromana/internal/execx"
)

//go:embed fontbuild.py
var driverScript []byte

// ExternalAssembler implements Assembler by shelling out to nanoemoji
// for the base font and to a fontTools driver script for feature
// injection. Both invocations are synchronous and awaited to
// completion; their diagnostic output is captured and attached to any
// assembly error.
type ExternalAssembler struct {
	Nanoemoji string        // nanoemoji command (default "nanoemoji")
	Python    string        // python interpreter for the driver (default "python3")
	Timeout   time.Duration // per-invocation limit, 0 = none
	Log       *zap.SugaredLogger
}

// NewExternalAssembler builds an assembler with the given tool
// commands, falling back to the conventional names when empty.
func NewExternalAssembler(nanoemoji, python string, timeout time.Duration, log *zap.SugaredLogger) *ExternalAssembler {
	if nanoemoji == "" {
		nanoemoji = "nanoemoji"
	}
	if python == "" {
		python = "python3"
	}
	return &ExternalAssembler{Nanoemoji: nanoemoji, Python: python, Timeout: timeout, Log: log}
}

// BuildBase runs nanoemoji over the staged artwork and returns the
// base font path inside the request's working directory.
func (a *ExternalAssembler) BuildBase(ctx context.Context, req *Request) (string, error) {
	if len(req.SVGPaths) == 0 {
		return "", errors.Wrap(errors.ErrAssembly, "no artwork staged for base font")
	}

	colorFormat := req.ColorFormat
	if colorFormat == "" {
		colorFormat = ColorFormatGlyf
	}

	basePath := filepath.Join(req.WorkDir, "Base.ttf")
	args := []string{
		"--family", req.FamilyName,
		"--color_format", colorFormat,
		"--output_file", basePath,
	}
	args = append(args, req.SVGPaths...)

	a.Log.Infow("building base font",
		"family", req.FamilyName,
		"glyphs", len(req.SVGPaths))

	res, err := execx.Run(ctx, a.Log, a.Timeout, a.Nanoemoji, args...)
	if err != nil {
		return "", assemblyError(err, res)
	}

	if _, err := os.Stat(basePath); err != nil {
		return "", errors.WithDetail(
			errors.Wrapf(errors.ErrAssembly, "base font not created at %s", basePath),
			res.Output)
	}
	return basePath, nil
}

// InjectFeatures runs the driver script to add the input-glyph set and
// the GSUB tables from feaPath, writing the result to outputPath.
func (a *ExternalAssembler) InjectFeatures(ctx context.Context, fontPath, feaPath, outputPath string) error {
	driver, err := a.writeDriver(filepath.Dir(outputPath))
	if err != nil {
		return err
	}

	a.Log.Infow("injecting substitution features", "font", fontPath, "fea", feaPath)

	res, err := execx.Run(ctx, a.Log, a.Timeout, a.Python, driver, "features", fontPath, feaPath, outputPath)
	if err != nil {
		return assemblyError(err, res)
	}

	if _, err := os.Stat(outputPath); err != nil {
		return errors.Wrapf(errors.ErrAssembly, "enhanced font not created at %s", outputPath)
	}
	return nil
}

// Convert re-flavors a TTF for web delivery (woff or woff2, chosen by
// the output extension). Used by the packaging layer; failures there
// degrade to warnings rather than failing the build.
func (a *ExternalAssembler) Convert(ctx context.Context, fontPath, outputPath string) error {
	driver, err := a.writeDriver(filepath.Dir(outputPath))
	if err != nil {
		return err
	}

	res, err := execx.Run(ctx, a.Log, a.Timeout, a.Python, driver, "convert", fontPath, outputPath)
	if err != nil {
		return errors.WithDetail(errors.Wrap(errors.ErrPackaging, err.Error()), res.Output)
	}
	return nil
}

// writeDriver materializes the embedded fontTools driver next to the
// build outputs so the interpreter can run it.
func (a *ExternalAssembler) writeDriver(dir string) (string, error) {
	path := filepath.Join(dir, "fontbuild.py")
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	if err := os.WriteFile(path, driverScript, 0o755); err != nil {
		return "", errors.Wrap(err, "failed to write fontbuild driver")
	}
	return path, nil
}

func assemblyError(err error, res *execx.Result) error {
	wrapped := errors.Wrap(errors.ErrAssembly, err.Error())
	if res != nil && res.Output != "" {
		wrapped = errors.WithDetail(wrapped, res.Output)
	}
	return wrapped
}
