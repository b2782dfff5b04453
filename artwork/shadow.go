package artwork

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/chromana/chromana/errors"
	"github.com/chromana/chromana/iconset"
)

// shadowTemplate is the shared drop-shadow shape composed under every
// flagged symbol's default artwork.
const shadowTemplate = "_shadow.svg"

// Shadow writes the shadow rendition of every add-shadow symbol in the
// icon set. The icon is offset right by 8 units, the shadow template
// down by 8, on a canvas widened to 108x100. Output lands in the
// conventional shadow artwork directory. Returns the number of files
// written.
func Shadow(cfg *iconset.Config, setDir string, log *zap.SugaredLogger) (int, error) {
	templatePath := filepath.Join(setDir, shadowTemplate)
	template, err := ParseFile(templatePath)
	if err != nil {
		return 0, err
	}

	outDir := filepath.Join(setDir, iconset.ShadowDir)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return 0, errors.Wrapf(err, "failed to create %s", outDir)
	}

	written := 0
	for _, sym := range cfg.Symbols {
		if !sym.AddShadow {
			continue
		}
		srcPath := filepath.Join(setDir, iconset.DefaultKey, sym.File)
		icon, err := ParseFile(srcPath)
		if err != nil {
			return written, err
		}

		composite := &Element{Name: "svg"}
		composite.SetAttr("viewBox", "0 0 108 100")
		composite.Children = []*Element{
			group("translate(8, 0)", icon.Children),
			group("translate(0, 8)", template.Children),
		}

		outPath := filepath.Join(outDir, sym.File)
		if err := WriteFile(outPath, composite); err != nil {
			return written, err
		}
		written++
		log.Infow("composed shadow artwork", "symbol", sym.Name, "output", outPath)
	}
	return written, nil
}
