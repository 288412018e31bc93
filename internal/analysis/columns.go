package analysis

import (
	"fmt"

	"github.com/KaramelBytes/petreg/internal/dataset"
	"github.com/samber/lo"
)

// AllRegions is the region choice that aggregates across every region.
const AllRegions = "전체"

// Columns names the role-bearing columns of the dataset.
type Columns struct {
	Region    string
	SubRegion string
	Year      string
}

// DefaultColumns returns the column names used by the provincial export.
func DefaultColumns() Columns {
	return Columns{
		Region:    "시군명",
		SubRegion: "읍면동명",
		Year:      "기준년도",
	}
}

// ResolveColumns checks that the grouping columns exist in t.
// The year column is optional.
func ResolveColumns(t *dataset.Table, c Columns) error {
	for _, name := range []string{c.Region, c.SubRegion} {
		if name == "" {
			return fmt.Errorf("column role not configured")
		}
		if !t.HasColumn(name) {
			return fmt.Errorf("column %q not found in %s", name, t.Name)
		}
	}
	return nil
}

// Metrics lists the numeric columns that can be charted, in file order.
// The reporting-year column is metadata and never listed, even when numeric.
func Metrics(t *dataset.Table, yearColumn string) []string {
	return lo.Filter(t.NumericColumns(), func(name string, _ int) bool {
		return name != yearColumn
	})
}

// Regions returns AllRegions followed by the distinct region values in
// first-seen order.
func Regions(t *dataset.Table, regionColumn string) []string {
	values := make([]string, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		values = append(values, t.Value(i, regionColumn))
	}
	return append([]string{AllRegions}, lo.Uniq(values)...)
}
