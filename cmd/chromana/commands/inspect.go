package commands

import (
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/chromana/chromana/inspect"
)

// InspectCmd reports the contents of a built font binary.
var InspectCmd = &cobra.Command{
	Use:   "inspect <font.ttf>",
	Short: "Report the tables and names of a built font",
	Long:  `Parse a font binary and print its table directory, name records, and glyph count. Useful for checking what the assembler actually produced.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

var inspectTablesOnly bool

func init() {
	InspectCmd.Flags().BoolVarP(&inspectTablesOnly, "tables", "t", false, "Only list the table directory")
}

func runInspect(cmd *cobra.Command, args []string) error {
	report, err := inspect.Inspect(args[0])
	if err != nil {
		return err
	}

	if !inspectTablesOnly {
		pterm.DefaultSection.Println(report.Path)
		pterm.Printf("size:         %d bytes\n", report.Size)
		pterm.Printf("glyphs:       %d\n", report.NumGlyphs)
		pterm.Printf("units per em: %d\n", report.UnitsPerEm)

		if len(report.Names) > 0 {
			names := pterm.TableData{{"Name", "Value"}}
			for _, n := range report.Names {
				names = append(names, []string{n.Label, n.Value})
			}
			pterm.Println()
			if err := pterm.DefaultTable.WithHasHeader().WithData(names).Render(); err != nil {
				return err
			}
		}
		pterm.Println()
	}

	tables := pterm.TableData{{"Table", "Offset", "Length"}}
	for _, t := range report.Tables {
		tables = append(tables, []string{
			t.Tag,
			strconv.FormatUint(uint64(t.Offset), 10),
			strconv.FormatUint(uint64(t.Length), 10),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(tables).Render()
}
