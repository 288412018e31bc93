package analysis

import (
	"sort"

	"github.com/KaramelBytes/petreg/internal/dataset"
	"github.com/samber/lo"
)

// Row is one bar of the result: a region or sub-region label and its metric value.
type Row struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Result is the aggregated or filtered data for one selection, sorted
// descending by Value. Total is the sum over Rows only.
type Result struct {
	Region string  `json:"region"`
	Metric string  `json:"metric"`
	XAxis  string  `json:"xAxis"`
	Rows   []Row   `json:"rows"`
	Total  float64 `json:"total"`
}

// Labels returns row labels in display order.
func (r *Result) Labels() []string {
	return lo.Map(r.Rows, func(row Row, _ int) string { return row.Label })
}

// Aggregate runs the groupby-or-select branch for sel. In the all-regions state
// it sums the metric per region; otherwise it returns the selected region's
// sub-region rows unaggregated. sel must already be normalized.
func Aggregate(t *dataset.Table, cols Columns, sel Selection) *Result {
	res := &Result{Region: sel.Region, Metric: sel.Metric}
	if sel.IsAll() {
		res.XAxis = cols.Region
		res.Rows = sumByRegion(t, cols.Region, sel.Metric)
	} else {
		res.XAxis = cols.SubRegion
		res.Rows = filterRegion(t, cols, sel)
	}
	SortDescending(res.Rows)
	res.Total = lo.SumBy(res.Rows, func(r Row) float64 { return r.Value })
	return res
}

// sumByRegion keeps first-seen group order so the stable sort below breaks
// ties by appearance.
func sumByRegion(t *dataset.Table, regionCol, metric string) []Row {
	sums := make(map[string]float64)
	var order []string
	for i := 0; i < t.Len(); i++ {
		key := t.Value(i, regionCol)
		if _, ok := sums[key]; !ok {
			order = append(order, key)
		}
		sums[key] += t.Float(i, metric)
	}
	return lo.Map(order, func(key string, _ int) Row {
		return Row{Label: key, Value: sums[key]}
	})
}

func filterRegion(t *dataset.Table, cols Columns, sel Selection) []Row {
	var rows []Row
	for i := 0; i < t.Len(); i++ {
		if t.Value(i, cols.Region) != sel.Region {
			continue
		}
		rows = append(rows, Row{
			Label: t.Value(i, cols.SubRegion),
			Value: t.Float(i, sel.Metric),
		})
	}
	return rows
}

// SortDescending orders rows by value, largest first. Ties keep their input order.
func SortDescending(rows []Row) {
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Value > rows[j].Value })
}
