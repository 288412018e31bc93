package cmd

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/KaramelBytes/petreg/internal/analysis"
	"github.com/KaramelBytes/petreg/internal/render"
	"github.com/KaramelBytes/petreg/internal/utils"
)

var (
	plotRegion string
	plotMetric string
	plotOutput string
	plotXLSX   string
	plotReport string
	plotJSON   bool
)

var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Aggregate one metric and print or save the bar chart",
	Long: `Runs the dashboard pipeline once for --region and --metric (defaults: 전체 and
the first numeric column), prints the rows sorted descending with their total,
and optionally writes the chart (-o chart.svg|chart.png), an xlsx export and a
Markdown report.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format := ""
		if plotOutput != "" {
			format = strings.TrimPrefix(strings.ToLower(filepath.Ext(plotOutput)), ".")
			if format != "svg" && format != "png" {
				return fmt.Errorf("unsupported chart output: %s (use .svg or .png)", plotOutput)
			}
		}

		setupFonts()
		v, err := runPipeline(analysis.Selection{Region: plotRegion, Metric: plotMetric})
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		if plotJSON {
			b, err := utils.PrettyJSON(v)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, string(b))
		} else {
			fmt.Fprintln(out, v.Subheading)
			writeResultTable(out, v.Result)
			fmt.Fprintln(out, v.Callout)
		}

		if format != "" {
			if len(v.Result.Rows) == 0 {
				logger.Warn("Nothing to plot for selection", "region", v.Selection.Region, "metric", v.Selection.Metric)
			} else {
				var buf bytes.Buffer
				if err := render.Chart(&buf, v, format, chartOptions(cfg)); err != nil {
					return fmt.Errorf("render chart: %w", err)
				}
				if err := utils.SafeWriteFile(plotOutput, buf.Bytes()); err != nil {
					return err
				}
				logger.Info("Wrote chart", "path", plotOutput, "format", format)
			}
		}
		if plotXLSX != "" {
			if err := render.WriteWorkbook(plotXLSX, v); err != nil {
				return err
			}
			logger.Info("Wrote workbook", "path", plotXLSX)
		}
		if plotReport != "" {
			if err := utils.SafeWriteFile(plotReport, []byte(v.Markdown(render.FormatTotal))); err != nil {
				return err
			}
			logger.Info("Wrote report", "path", plotReport)
		}
		return nil
	},
}

func writeResultTable(w io.Writer, res *analysis.Result) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{res.XAxis, res.Metric})
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})
	for _, r := range res.Rows {
		table.Append([]string{r.Label, render.FormatTotal(r.Value)})
	}
	table.Render()
}

func init() {
	rootCmd.AddCommand(plotCmd)
	plotCmd.Flags().StringVarP(&plotRegion, "region", "r", "", "region to drill into (default 전체)")
	plotCmd.Flags().StringVarP(&plotMetric, "metric", "m", "", "numeric column to compare (default: first metric)")
	plotCmd.Flags().StringVarP(&plotOutput, "output", "o", "", "write the chart to this .svg or .png path")
	plotCmd.Flags().StringVar(&plotXLSX, "xlsx", "", "write the aggregated rows to an xlsx workbook")
	plotCmd.Flags().StringVar(&plotReport, "report", "", "write a Markdown report of the view")
	plotCmd.Flags().BoolVar(&plotJSON, "json", false, "print the view as JSON instead of a table")
}
