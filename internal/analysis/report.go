package analysis

import (
	"fmt"
	"strings"
)

// Markdown renders the view as a compact report suitable for saving next to the chart.
func (v *View) Markdown(formatValue func(float64) string) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("# %s\n\n", v.Title))
	b.WriteString(fmt.Sprintf("## %s\n\n", v.Subheading))
	if v.RunID != "" {
		b.WriteString(fmt.Sprintf("Run: %s\n", v.RunID))
	}
	b.WriteString(fmt.Sprintf("Region: %s\n", v.Selection.Region))
	b.WriteString(fmt.Sprintf("Metric: %s\n", v.Selection.Metric))
	b.WriteString(fmt.Sprintf("Rows: %d\n\n", len(v.Result.Rows)))

	b.WriteString("[RESULT]\n")
	b.WriteString(fmt.Sprintf("| %s | %s |\n", cellText(v.Result.XAxis), cellText(v.Result.Metric)))
	b.WriteString("| --- | ---: |\n")
	for _, r := range v.Result.Rows {
		b.WriteString(fmt.Sprintf("| %s | %s |\n", cellText(r.Label), formatValue(r.Value)))
	}
	b.WriteString("\n")
	b.WriteString(v.Callout)
	b.WriteString("\n")
	return b.String()
}

func cellText(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "(blank)"
	}
	return strings.ReplaceAll(strings.ReplaceAll(s, "\n", " "), "|", "/")
}
