// Package commands implements the chromana CLI subcommands.
package commands

import (
	"time"

	"github.com/chromana/chromana/assembly"
	"github.com/chromana/chromana/errors"
	"github.com/chromana/chromana/iconset"
	"github.com/chromana/chromana/logger"
	"github.com/chromana/chromana/pipeline"
	"github.com/chromana/chromana/workspace"
)

// newRunner wires the build pipeline with the external assembler from
// the workspace configuration. The assembler doubles as the web-format
// converter.
func newRunner(ws *workspace.Config) *pipeline.Runner {
	asm := assembly.NewExternalAssembler(
		ws.Assembly.NanoemojiCommand,
		ws.Assembly.PythonCommand,
		time.Duration(ws.Assembly.TimeoutSeconds)*time.Second,
		logger.Named("assembly"))
	return pipeline.NewRunner(ws, asm, asm, logger.Named("pipeline"))
}

// selectSets discovers the icon sets and narrows them to the requested
// codes. An empty selection keeps every discovered set.
func selectSets(ws *workspace.Config, codes []string) ([]pipeline.Set, error) {
	sets, err := pipeline.Discover(ws.Paths.Icons)
	if err != nil {
		return nil, err
	}
	return pipeline.Select(sets, codes)
}

// resolveSet finds one icon set by code and loads its configuration.
func resolveSet(ws *workspace.Config, code string) (*pipeline.Set, *iconset.Config, error) {
	sets, err := selectSets(ws, []string{code})
	if err != nil {
		return nil, nil, err
	}
	if len(sets) != 1 {
		return nil, nil, errors.Newf("icon set %q resolved to %d sets", code, len(sets))
	}
	cfg, err := iconset.Load(sets[0].ConfigPath)
	if err != nil {
		return nil, nil, err
	}
	return &sets[0], cfg, nil
}
