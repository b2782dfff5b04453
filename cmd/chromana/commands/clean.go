package commands

import (
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/chromana/chromana/errors"
	"github.com/chromana/chromana/workspace"
)

// CleanCmd removes build outputs and scratch space.
var CleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove build outputs and scratch space",
	Long:  `Empty the dist, temp, and build directories. Icon-set sources and demo pages are left alone.`,
	RunE:  runClean,
}

func runClean(cmd *cobra.Command, args []string) error {
	ws, err := workspace.Load()
	if err != nil {
		return err
	}

	for _, dir := range []string{ws.Paths.Dist, ws.Paths.Temp, ws.Paths.Build} {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			pterm.Debug.Printf("skipping %s, does not exist\n", dir)
			continue
		}
		if err := os.RemoveAll(dir); err != nil {
			return errors.Wrapf(err, "failed to clean %s", dir)
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "failed to recreate %s", dir)
		}
		pterm.Success.Printf("cleaned %s\n", dir)
	}
	return nil
}
