package artwork

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/chromana/chromana/errors"
	"github.com/chromana/chromana/iconset"
)

// flatTemplate carries the background disc the flat treatment places
// behind each remapped icon.
const flatTemplate = "_flat.svg"

// flatPalette maps the pastel fills of the default artwork onto the
// saturated flat palette. Every fill a flat-treated icon declares must
// appear here.
var flatPalette = map[string]string{
	"#CAC5C0": "#000000",
	"#FFFCD5": "#89723E",
	"#ABE1FA": "#0172BB",
	"#F9AA8F": "#FD2302",
	"#9BD3AE": "#027920",
	"#C3BAB9": "#000000",

	// phyrexian
	"#EAE3B1": "#89723E",
	"#8EBBD0": "#0172BB",
	"#9A8D89": "#281C1C",
	"#DF8065": "#FD2302",
	"#80B092": "#027920",
	"#CCC2C0": "#000000",
}

// Flat writes the flat rendition of every add-flat symbol: the icon's
// background circle is dropped, the remaining shapes are scaled in and
// recolored through the flat palette, and the shared background disc
// goes underneath. The "split" treatment keeps each shape's own mapped
// fill on a black disc; the basic treatment paints everything in the
// mapped background color. Undeclared fills fail the symbol's file.
// Returns the number of files written.
func Flat(cfg *iconset.Config, setDir string, log *zap.SugaredLogger) (int, error) {
	templatePath := filepath.Join(setDir, flatTemplate)

	outDir := filepath.Join(setDir, iconset.FlatDir)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return 0, errors.Wrapf(err, "failed to create %s", outDir)
	}

	written := 0
	for _, sym := range cfg.Symbols {
		if sym.FlatType == "" {
			continue
		}
		srcPath := filepath.Join(setDir, iconset.DefaultKey, sym.File)
		outPath := filepath.Join(outDir, sym.File)
		if err := flattenIcon(srcPath, templatePath, outPath, sym.FlatType); err != nil {
			return written, err
		}
		written++
		log.Infow("flattened artwork", "symbol", sym.Name, "treatment", sym.FlatType, "output", outPath)
	}
	return written, nil
}

func flattenIcon(srcPath, templatePath, outPath, flatType string) error {
	icon, err := ParseFile(srcPath)
	if err != nil {
		return err
	}
	template, err := ParseFile(templatePath)
	if err != nil {
		return err
	}

	body := icon.FirstChild("g")
	if body == nil {
		return errors.NewAssetError(srcPath, "expected a top-level group")
	}

	// The default artwork draws its shapes on a background circle.
	// Split icons carry a background shape path instead, always in the
	// neutral base color.
	basicFill := ""
	kept := body.Children[:0]
	for _, child := range body.Children {
		if child.Name == "circle" {
			basicFill = child.Attr("fill")
			continue
		}
		if child.Attr("id") == "Shape" {
			basicFill = "#CAC5C0"
			continue
		}

		child.SetAttr("transform", "translate(50, 50) scale(0.9) translate(-50, -50)")

		if child.HasAttr("fill") {
			declared := basicFill
			if flatType == "split" {
				declared = child.Attr("fill")
			}
			mapped, ok := flatPalette[declared]
			if !ok {
				return errors.NewAssetError(srcPath, "fill color %q is not in the flat palette", declared)
			}
			child.SetAttr("fill", mapped)
		}
		kept = append(kept, child)
	}
	body.Children = kept

	disc := template.Children
	if len(disc) == 0 {
		return errors.NewAssetError(templatePath, "background template is empty")
	}
	if flatType == "split" {
		disc[0].SetAttr("fill", "#000000")
	} else {
		mapped, ok := flatPalette[basicFill]
		if !ok {
			return errors.NewAssetError(srcPath, "background color %q is not in the flat palette", basicFill)
		}
		disc[0].SetAttr("fill", mapped)
	}

	composite := &Element{Name: "svg"}
	composite.SetAttr("viewBox", "0 0 100 100")
	composite.Children = []*Element{
		group("", disc),
		group("", icon.Children),
	}

	return WriteFile(outPath, composite)
}
