package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chromana/chromana/cmd/chromana/commands"
	"github.com/chromana/chromana/logger"
)

var rootCmd = &cobra.Command{
	Use:   "chromana",
	Short: "Chromana - icon font build pipeline",
	Long: `Chromana builds ligature-driven icon fonts from SVG artwork.

Each icon set under icons/ carries a config describing its symbols,
ligature triggers, variants, and styles. The build stages artwork,
synthesizes OpenType substitution rules, assembles a color font, and
packages it with a stylesheet and a preview page.

Available commands:
  build   - Build icon fonts from the icon sets
  list    - List discovered icon sets without building
  serve   - Serve the previews, optionally rebuilding on changes
  inspect - Report the tables and names of a built font
  artwork - Generate derived artwork (shadow, flat, loyalty)
  clean   - Remove build outputs and scratch space

Examples:
  chromana build                 # build every icon set
  chromana build --sets magic    # build one icon set
  chromana serve --watch         # preview with live rebuild
  chromana inspect dist/magic/Chromana-magic.ttf`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		jsonOutput, _ := cmd.Flags().GetBool("json")
		if err := logger.Initialize(verbosity, jsonOutput); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")
	rootCmd.PersistentFlags().Bool("json", false, "Structured JSON log output")

	rootCmd.AddCommand(commands.BuildCmd)
	rootCmd.AddCommand(commands.ListCmd)
	rootCmd.AddCommand(commands.ServeCmd)
	rootCmd.AddCommand(commands.InspectCmd)
	rootCmd.AddCommand(commands.ArtworkCmd)
	rootCmd.AddCommand(commands.CleanCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Cleanup()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
