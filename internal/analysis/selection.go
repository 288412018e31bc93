package analysis

import (
	"errors"
	"fmt"

	"github.com/samber/lo"
)

var (
	ErrUnknownRegion = errors.New("unknown region")
	ErrUnknownMetric = errors.New("unknown metric")
	ErrNoMetrics     = errors.New("dataset has no numeric metric columns")
)

// Selection is the pair of choices that drives one pipeline run.
type Selection struct {
	Region string `json:"region"`
	Metric string `json:"metric"`
}

// IsAll reports whether the selection aggregates across all regions.
func (s Selection) IsAll() bool { return s.Region == AllRegions }

// Normalize fills defaults the way a single-select widget does (first option)
// and rejects values that are not among the offered choices.
func Normalize(sel Selection, regions, metrics []string) (Selection, error) {
	if len(metrics) == 0 {
		return sel, ErrNoMetrics
	}
	if sel.Region == "" {
		sel.Region = AllRegions
	}
	if sel.Metric == "" {
		sel.Metric = metrics[0]
	}
	if !lo.Contains(regions, sel.Region) {
		return sel, fmt.Errorf("%w: %s", ErrUnknownRegion, sel.Region)
	}
	if !lo.Contains(metrics, sel.Metric) {
		return sel, fmt.Errorf("%w: %s", ErrUnknownMetric, sel.Metric)
	}
	return sel, nil
}
