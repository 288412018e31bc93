package cmd

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/KaramelBytes/petreg/internal/analysis"
)

var inspectRows int

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Show the raw preview, the metric columns and the regions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tbl, err := loadTable()
		if err != nil {
			return bannerError(err)
		}
		cols := columnsFrom(cfg)
		if err := analysis.ResolveColumns(tbl, cols); err != nil {
			return bannerError(err)
		}
		n := cfg.PreviewRows
		if cmd.Flags().Changed("rows") {
			n = inspectRows
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, analysis.LoadedMessage)
		fmt.Fprintf(out, "%s (%d rows)\n", tbl.Name, tbl.Len())

		table := tablewriter.NewWriter(out)
		table.SetAutoFormatHeaders(false)
		table.SetHeader(tbl.Header())
		table.AppendBulk(tbl.Head(n))
		table.Render()

		metrics := analysis.Metrics(tbl, cols.Year)
		fmt.Fprintf(out, "Metrics: %s\n", strings.Join(metrics, ", "))
		fmt.Fprintf(out, "Regions: %s\n", strings.Join(analysis.Regions(tbl, cols.Region), ", "))
		if len(metrics) == 0 {
			logger.Warn("No numeric columns besides the year column", "year_column", cols.Year)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().IntVarP(&inspectRows, "rows", "n", 5, "preview rows to show (0 = all)")
}
