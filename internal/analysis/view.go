package analysis

import (
	"fmt"

	"github.com/KaramelBytes/petreg/internal/dataset"
)

// Title is the dashboard heading.
const Title = "🐶 경기도 반려동물 등록현황 분석기"

// LoadedMessage is shown once the dataset has been read.
const LoadedMessage = "반려동물 데이터를 성공적으로 불러왔습니다!"

// Preview is the head of the raw table.
type Preview struct {
	Header []string   `json:"header"`
	Rows   [][]string `json:"rows"`
}

// View is everything one rerun shows: choices, headings, data and callout.
// Charts are rendered from Result by the caller.
type View struct {
	RunID      string    `json:"runId,omitempty"`
	Title      string    `json:"title"`
	Subheading string    `json:"subheading"`
	ChartTitle string    `json:"chartTitle"`
	Callout    string    `json:"callout"`
	Preview    Preview   `json:"preview"`
	Regions    []string  `json:"regions"`
	Metrics    []string  `json:"metrics"`
	Selection  Selection `json:"selection"`
	Result     *Result   `json:"result"`
}

// BuildView runs classification, selection, and aggregation for one request.
// It has no side effects; formatTotal renders the callout number.
func BuildView(t *dataset.Table, cols Columns, sel Selection, previewRows int, formatTotal func(float64) string) (*View, error) {
	if err := ResolveColumns(t, cols); err != nil {
		return nil, err
	}
	regions := Regions(t, cols.Region)
	metrics := Metrics(t, cols.Year)
	sel, err := Normalize(sel, regions, metrics)
	if err != nil {
		return nil, err
	}
	res := Aggregate(t, cols, sel)
	return &View{
		Title:      Title,
		Subheading: Subheading(sel),
		ChartTitle: ChartTitle(sel),
		Callout:    Callout(sel.Metric, formatTotal(res.Total)),
		Preview:    Preview{Header: t.Header(), Rows: t.Head(previewRows)},
		Regions:    regions,
		Metrics:    metrics,
		Selection:  sel,
		Result:     res,
	}, nil
}

// Subheading reflects the current selection.
func Subheading(sel Selection) string {
	return fmt.Sprintf("📍 %s - %s 현황", sel.Region, sel.Metric)
}

// ChartTitle is drawn above the bars.
func ChartTitle(sel Selection) string {
	return fmt.Sprintf("%s 지역별 %s 비교", sel.Region, sel.Metric)
}

// Callout is the informational sum line.
func Callout(metric, total string) string {
	return fmt.Sprintf("💡 선택된 데이터의 총 %s 합계는 %s 입니다.", metric, total)
}
