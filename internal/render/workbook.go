package render

import (
	pkgerrors "github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/KaramelBytes/petreg/internal/analysis"
)

// ResultSheet is the sheet name used by WriteWorkbook.
const ResultSheet = "집계"

// WriteWorkbook saves the aggregated rows and their total as an xlsx file.
func WriteWorkbook(path string, v *analysis.View) error {
	if v == nil || v.Result == nil {
		return ErrEmptyResult
	}
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", ResultSheet); err != nil {
		return pkgerrors.Wrap(err, "rename sheet")
	}
	res := v.Result
	if err := f.SetSheetRow(ResultSheet, "A1", &[]interface{}{res.XAxis, res.Metric}); err != nil {
		return pkgerrors.Wrap(err, "write header")
	}
	for i, r := range res.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(ResultSheet, cell, &[]interface{}{r.Label, r.Value}); err != nil {
			return pkgerrors.Wrapf(err, "write row %d", i+1)
		}
	}
	cell, err := excelize.CoordinatesToCellName(1, len(res.Rows)+2)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(ResultSheet, cell, &[]interface{}{"합계", res.Total}); err != nil {
		return pkgerrors.Wrap(err, "write total")
	}
	if err := f.SaveAs(path); err != nil {
		return pkgerrors.Wrapf(err, "save %s", path)
	}
	return nil
}
