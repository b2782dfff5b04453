package commands

import (
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/chromana/chromana/iconset"
	"github.com/chromana/chromana/workspace"
)

// ListCmd lists discovered icon sets without building anything.
var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "List discovered icon sets",
	Long:  `Show every icon set under the icons directory with its version, symbol count, and the number of glyphs a build would allocate.`,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	ws, err := workspace.Load()
	if err != nil {
		return err
	}

	sets, err := selectSets(ws, nil)
	if err != nil {
		return err
	}
	if len(sets) == 0 {
		pterm.Info.Printf("no icon sets found under %s\n", ws.Paths.Icons)
		return nil
	}

	data := pterm.TableData{{"Code", "Name", "Version", "Symbols", "Glyphs"}}
	for _, set := range sets {
		cfg, err := iconset.Load(set.ConfigPath)
		if err != nil {
			data = append(data, []string{set.Code, "(invalid: " + err.Error() + ")", "", "", ""})
			continue
		}
		glyphs := 0
		for _, sym := range cfg.Symbols {
			glyphs += sym.Instances()
		}
		data = append(data, []string{
			cfg.Code,
			cfg.Name,
			cfg.Version,
			strconv.Itoa(len(cfg.Symbols)),
			strconv.Itoa(glyphs),
		})
	}

	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
