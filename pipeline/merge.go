package pipeline

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/chromana/chromana/errors"
	"github.com/chromana/chromana/iconset"
)

// merge builds one combined font spanning every icon set that built
// successfully. Symbol names are prefixed with their source set's code
// so two sets can both define a "tap" without colliding; the merged
// glyph table is re-allocated from scratch, so codepoints never
// overlap. Only the default rendition of each symbol is carried into
// the merged font.
func (r *Runner) merge(ctx context.Context, scratch *Scratch, results []*Result) *Result {
	start := time.Now()
	code := r.ws.Font.MergedCode
	res := &Result{
		Code:     code,
		FontName: r.ws.Font.FamilyPrefix + "-All",
	}
	log := r.log.With("set", code)

	cfg, err := r.mergedConfig(scratch, results)
	if err != nil {
		res.Err = err
		res.Duration = time.Since(start)
		return res
	}
	res.Config = cfg

	log.Infow("merging icon sets", "symbols", len(cfg.Symbols))

	baseDir, err := scratch.Dir(code)
	if err != nil {
		res.Err = err
		res.Duration = time.Since(start)
		return res
	}

	r.build(ctx, scratch, res, cfg, baseDir, log)
	res.Duration = time.Since(start)

	if res.Err != nil {
		log.Errorw("merge failed", "error", res.Err, "duration", res.Duration)
	} else {
		log.Infow("merged font built",
			"font", res.FontName,
			"glyphs", len(res.Glyphs),
			"duration", res.Duration)
	}
	return res
}

// mergedConfig stages every successful set's default artwork into the
// merge scratch directory and assembles the namespaced symbol table.
// Each source set becomes a preview category, so the merged document
// groups symbols by origin.
func (r *Runner) mergedConfig(scratch *Scratch, results []*Result) (*iconset.Config, error) {
	code := r.ws.Font.MergedCode
	mergeDir, err := scratch.Dir(code)
	if err != nil {
		return nil, err
	}
	artworkDir := filepath.Join(mergeDir, iconset.DefaultKey)
	if err := os.MkdirAll(artworkDir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "failed to create merge staging directory %s", artworkDir)
	}

	cfg := &iconset.Config{
		Code:    code,
		Name:    r.ws.Font.FamilyPrefix + "-All",
		Version: "0.0.0",
	}

	for _, src := range results {
		if !src.OK() {
			continue
		}
		cfg.Categories = append(cfg.Categories, iconset.Category{
			Name:        src.Code,
			DisplayName: src.FontName,
		})

		srcDefault := filepath.Join(r.ws.Paths.Icons, src.Code, iconset.DefaultKey)
		for _, sym := range src.Config.Symbols {
			prefixed := src.Code + "_" + sym.Name
			staged := prefixed + ".svg"
			if err := copyFile(
				filepath.Join(srcDefault, sym.File),
				filepath.Join(artworkDir, staged),
			); err != nil {
				return nil, errors.NewAssetError(filepath.Join(srcDefault, sym.File),
					"failed to stage %s artwork for merge: %v", prefixed, err)
			}

			cfg.Symbols = append(cfg.Symbols, iconset.Symbol{
				Name:      prefixed,
				File:      staged,
				Ligatures: sym.Ligatures,
				Category:  src.Code,
				Overflow:  sym.Overflow,
			})
		}
	}

	return cfg, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
