package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/chromana/chromana/artwork"
	"github.com/chromana/chromana/logger"
	"github.com/chromana/chromana/workspace"
)

// ArtworkCmd groups the derived-artwork generators.
var ArtworkCmd = &cobra.Command{
	Use:   "artwork",
	Short: "Generate derived artwork renditions",
	Long: `Maintenance generators that derive style artwork from an icon set's
default artwork: drop-shadow composites, flat-color remaps, and
loyalty numerals rendered from font outlines.`,
}

var artworkShadowCmd = &cobra.Command{
	Use:   "shadow <set>",
	Short: "Compose shadow renditions for add-shadow symbols",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := workspace.Load()
		if err != nil {
			return err
		}
		set, cfg, err := resolveSet(ws, args[0])
		if err != nil {
			return err
		}
		written, err := artwork.Shadow(cfg, set.Dir, logger.Named("artwork"))
		if err != nil {
			return err
		}
		pterm.Success.Printf("wrote %d shadow file(s) for %s\n", written, set.Code)
		return nil
	},
}

var artworkFlatCmd = &cobra.Command{
	Use:   "flat <set>",
	Short: "Remap add-flat symbols onto the flat palette",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := workspace.Load()
		if err != nil {
			return err
		}
		set, cfg, err := resolveSet(ws, args[0])
		if err != nil {
			return err
		}
		written, err := artwork.Flat(cfg, set.Dir, logger.Named("artwork"))
		if err != nil {
			return err
		}
		pterm.Success.Printf("wrote %d flat file(s) for %s\n", written, set.Code)
		return nil
	},
}

var artworkLoyaltyFont string

var artworkLoyaltyCmd = &cobra.Command{
	Use:   "loyalty <set>",
	Short: "Render loyalty numerals onto their component artwork",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := workspace.Load()
		if err != nil {
			return err
		}
		set, cfg, err := resolveSet(ws, args[0])
		if err != nil {
			return err
		}
		written, err := artwork.Loyalty(cfg, set.Dir, artworkLoyaltyFont, logger.Named("artwork"))
		if err != nil {
			return err
		}
		pterm.Success.Printf("wrote %d loyalty file(s) for %s\n", written, set.Code)
		return nil
	},
}

func init() {
	artworkLoyaltyCmd.Flags().StringVar(&artworkLoyaltyFont, "font", "fonts/Plantin-Bold.ttf", "Font whose outlines render the numerals")

	ArtworkCmd.AddCommand(artworkShadowCmd)
	ArtworkCmd.AddCommand(artworkFlatCmd)
	ArtworkCmd.AddCommand(artworkLoyaltyCmd)
}
