package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/chromana/chromana/assembly"
	"github.com/chromana/chromana/errors"
	"github.com/chromana/chromana/feature"
	"github.com/chromana/chromana/glyph"
	"github.com/chromana/chromana/iconset"
	"github.com/chromana/chromana/pack"
	"github.com/chromana/chromana/workspace"
)

// Runner owns the collaborators shared by every icon-set build.
type Runner struct {
	ws    *workspace.Config
	asm   assembly.Assembler
	conv  pack.Converter
	names *feature.NameTable
	log   *zap.SugaredLogger

	// verification seam, replaced in tests where no real font exists
	verifyFont func(fontPath string, wantGlyphs int) (*assembly.FontReport, error)
}

// NewRunner wires a runner from the workspace configuration. The
// assembler and converter are usually the same ExternalAssembler.
func NewRunner(ws *workspace.Config, asm assembly.Assembler, conv pack.Converter, log *zap.SugaredLogger) *Runner {
	return &Runner{
		ws:         ws,
		asm:        asm,
		conv:       conv,
		names:      feature.DefaultNames(),
		log:        log,
		verifyFont: assembly.Verify,
	}
}

// Result is the outcome of one icon-set build. Err set means the set
// failed; Warnings carry non-fatal packaging degradations.
type Result struct {
	Code     string
	FontName string
	Config   *iconset.Config
	Glyphs   []glyph.Glyph
	Program  *feature.Program
	Files    pack.FontFiles
	CSSPath  string
	HTMLPath string
	Warnings []error
	Err      error
	Duration time.Duration
}

// OK reports whether the set built successfully.
func (r *Result) OK() bool {
	return r.Err == nil
}

// Summary aggregates a full build run.
type Summary struct {
	Results  []*Result
	Merged   *Result // nil unless ≥2 sets succeeded
	Duration time.Duration
}

// Succeeded counts the per-set successes (the merged font is reported
// separately).
func (s *Summary) Succeeded() int {
	n := 0
	for _, r := range s.Results {
		if r.OK() {
			n++
		}
	}
	return n
}

// Failed counts the per-set failures.
func (s *Summary) Failed() int {
	return len(s.Results) - s.Succeeded()
}

// Run builds every selected icon set on a bounded worker pool, merges
// the survivors when at least two sets built, and purges the scratch
// area. Per-set failures are contained in their Result; Run itself
// fails only when no work can start at all.
func (r *Runner) Run(ctx context.Context, sets []Set) (*Summary, error) {
	start := time.Now()

	scratch, err := NewScratch(r.ws.Paths.Temp)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := scratch.Purge(); err != nil {
			r.log.Warnw("failed to purge scratch directory", "dir", scratch.Root, "error", err)
		}
	}()

	r.log.Infow("starting build",
		"sets", len(sets),
		"workers", r.ws.Build.Workers,
		"build_id", scratch.BuildID)

	if err := pack.WriteStaticAssets(r.ws.Paths.Demo); err != nil {
		return nil, err
	}

	results := make([]*Result, len(sets))
	tasks := make(chan int)
	var wg sync.WaitGroup

	workers := r.ws.Build.Workers
	if workers > len(sets) {
		workers = len(sets)
	}
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range tasks {
				results[idx] = r.BuildSet(ctx, scratch, sets[idx])
			}
		}()
	}

	for idx := range sets {
		select {
		case <-ctx.Done():
		case tasks <- idx:
		}
	}
	close(tasks)
	wg.Wait()

	for i, res := range results {
		if res == nil {
			results[i] = &Result{Code: sets[i].Code, Err: ctx.Err()}
		}
	}

	summary := &Summary{Results: results}
	if summary.Succeeded() >= 2 {
		summary.Merged = r.merge(ctx, scratch, results)
	}
	summary.Duration = time.Since(start)

	r.log.Infow("build finished",
		"succeeded", summary.Succeeded(),
		"failed", summary.Failed(),
		"merged", summary.Merged != nil && summary.Merged.OK(),
		"duration", summary.Duration)
	return summary, nil
}

// BuildSet runs the full pipeline for one icon set: load, allocate,
// stage artwork, synthesize rules, assemble, verify, package.
func (r *Runner) BuildSet(ctx context.Context, scratch *Scratch, set Set) *Result {
	start := time.Now()
	res := &Result{Code: set.Code}
	log := r.log.With("set", set.Code)

	cfg, err := iconset.Load(set.ConfigPath)
	if err != nil {
		res.Err = err
		res.Duration = time.Since(start)
		return res
	}
	res.Config = cfg
	res.Code = cfg.Code
	res.FontName = r.familyName(cfg.Code)

	r.build(ctx, scratch, res, cfg, set.Dir, log)
	res.Duration = time.Since(start)

	if res.Err != nil {
		log.Errorw("icon set failed", "error", res.Err, "duration", res.Duration)
	} else {
		log.Infow("icon set built",
			"font", res.FontName,
			"glyphs", len(res.Glyphs),
			"rules", res.Program.Added,
			"skipped", len(res.Program.Skipped),
			"duration", res.Duration)
	}
	return res
}

// build runs the stages shared by per-set and merged builds. cfg.Code
// names the output namespace, res.FontName the font family; baseDir
// holds the artwork.
func (r *Runner) build(ctx context.Context, scratch *Scratch, res *Result, cfg *iconset.Config, baseDir string, log *zap.SugaredLogger) {
	workDir, err := scratch.Dir(cfg.Code)
	if err != nil {
		res.Err = err
		return
	}

	res.Glyphs = glyph.Allocate(cfg.Symbols, baseDir)
	if len(res.Glyphs) == 0 {
		res.Err = errors.NewConfigError("icon set %q defines no symbols", cfg.Code)
		return
	}

	svgPaths, err := r.stageArtwork(workDir, res.Glyphs, log)
	if err != nil {
		res.Err = err
		return
	}

	res.Program = feature.Synthesize(res.Glyphs, r.names)
	for _, d := range res.Program.Skipped {
		log.Warnw("rule skipped", "symbol", d.Symbol, "trigger", d.Trigger, "reason", d.Reason)
	}

	feaPath := filepath.Join(workDir, res.FontName+".fea")
	if err := os.WriteFile(feaPath, []byte(res.Program.Text()), 0o644); err != nil {
		res.Err = errors.Wrapf(err, "failed to write feature file %s", feaPath)
		return
	}

	basePath, err := r.asm.BuildBase(ctx, &assembly.Request{
		FamilyName: res.FontName,
		Glyphs:     res.Glyphs,
		SVGPaths:   svgPaths,
		WorkDir:    workDir,
	})
	if err != nil {
		res.Err = err
		return
	}

	distDir := filepath.Join(r.ws.Paths.Dist, cfg.Code)
	if err := os.MkdirAll(distDir, 0o755); err != nil {
		res.Err = errors.Wrapf(err, "failed to create output directory %s", distDir)
		return
	}
	ttfPath := filepath.Join(distDir, res.FontName+".ttf")

	if err := r.asm.InjectFeatures(ctx, basePath, feaPath, ttfPath); err != nil {
		res.Err = err
		return
	}

	report, err := r.verifyFont(ttfPath, len(res.Glyphs))
	if err != nil {
		res.Err = err
		return
	}
	log.Debugw("assembled font verified",
		"family", report.Family,
		"glyphs", report.NumGlyphs,
		"bytes", report.Size)

	files, warnings := pack.Convert(ctx, r.conv, ttfPath, log)
	res.Files = files
	res.Warnings = warnings

	if err := r.writePreview(res, cfg, distDir); err != nil {
		res.Err = err
		return
	}
}

// stageArtwork preprocesses every glyph's SVG into the scratch area
// under the emoji_uXXXX.svg naming the base-font builder expects.
func (r *Runner) stageArtwork(workDir string, glyphs []glyph.Glyph, log *zap.SugaredLogger) ([]string, error) {
	svgDir := filepath.Join(workDir, "svgs")
	if err := os.MkdirAll(svgDir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "failed to create artwork staging directory %s", svgDir)
	}

	paths := make([]string, 0, len(glyphs))
	for _, g := range glyphs {
		dst := filepath.Join(svgDir, fmt.Sprintf("emoji_u%04x.svg", g.Codepoint))
		rewritten, err := glyph.PreprocessSVG(g.Path, dst)
		if err != nil {
			return nil, err
		}
		if rewritten {
			log.Debugw("rewrote duplicate ids in artwork", "file", g.Path)
		}
		paths = append(paths, dst)
	}
	return paths, nil
}

// writePreview emits the stylesheet and preview document into the
// demo directory.
func (r *Runner) writePreview(res *Result, cfg *iconset.Config, distDir string) error {
	demoDir := r.ws.Paths.Demo
	distHref := "../" + filepath.ToSlash(filepath.Join(r.ws.Paths.Dist, cfg.Code))

	var styles []pack.StyleClass
	for _, block := range res.Program.StyleSets {
		if len(block.Rules) == 0 {
			continue
		}
		styles = append(styles, pack.StyleClass{
			Name:        block.Style,
			DisplayName: cfg.StyleDisplayName(block.Style),
			Tag:         block.Tag(),
		})
	}

	res.CSSPath = filepath.Join(demoDir, cfg.Code+".css")
	err := pack.WriteCSS(res.CSSPath, pack.CSSData{
		FontName: res.FontName,
		Code:     cfg.Code,
		Sources:  pack.FaceSources(res.Files, distHref),
		Styles:   styles,
	})
	if err != nil {
		return err
	}

	res.HTMLPath = filepath.Join(demoDir, cfg.Code+".html")
	return pack.WriteHTML(res.HTMLPath, pack.PreviewData{
		FontName: res.FontName,
		Code:     cfg.Code,
		CSSHref:  "./" + cfg.Code + ".css",
		Sections: pack.BuildSections(cfg),
		Examples: pack.BuildExamples(cfg, func(style string) string {
			return cfg.Code + "-" + style
		}),
	})
}

func (r *Runner) familyName(code string) string {
	return r.ws.Font.FamilyPrefix + "-" + code
}
