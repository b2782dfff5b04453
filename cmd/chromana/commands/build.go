package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/chromana/chromana/errors"
	"github.com/chromana/chromana/pipeline"
	"github.com/chromana/chromana/workspace"
)

// BuildCmd builds icon fonts from the icon sets.
var BuildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build icon fonts, stylesheets, and previews",
	Long: `Build every discovered icon set (or the sets named with --sets) into
a TTF/WOFF/WOFF2 icon font with a stylesheet and an HTML preview.
When at least two sets build successfully, a merged font covering all
of them is built as well.`,
	RunE: runBuild,
}

var buildSets []string

func init() {
	BuildCmd.Flags().StringSliceVar(&buildSets, "sets", nil, "Icon set codes to build (default: all)")
}

func runBuild(cmd *cobra.Command, args []string) error {
	ws, err := workspace.Load()
	if err != nil {
		return err
	}

	sets, err := selectSets(ws, buildSets)
	if err != nil {
		return err
	}
	if len(sets) == 0 {
		return errors.WithHint(
			errors.Newf("no icon sets found under %s", ws.Paths.Icons),
			"each icon set is a directory with a config.toml")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	summary, err := newRunner(ws).Run(ctx, sets)
	if err != nil {
		return err
	}

	printSummary(summary)
	if failed := summary.Failed(); failed > 0 {
		return errors.Newf("%d icon set(s) failed", failed)
	}
	return nil
}

func printSummary(summary *pipeline.Summary) {
	for _, res := range summary.Results {
		printResult(res)
	}
	if summary.Merged != nil {
		printResult(summary.Merged)
	}
	pterm.Printf("%d succeeded, %d failed in %s\n",
		summary.Succeeded(), summary.Failed(), summary.Duration.Round(time.Millisecond))
}

func printResult(res *pipeline.Result) {
	if !res.OK() {
		pterm.Error.Printf("%s: %v\n", res.Code, res.Err)
		return
	}
	pterm.Success.Printf("%s: %d glyphs -> %s\n", res.Code, len(res.Glyphs), res.FontName)
	for _, warn := range res.Warnings {
		pterm.Warning.Printf("%s: %v\n", res.Code, warn)
	}
}
