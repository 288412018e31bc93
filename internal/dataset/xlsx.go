package dataset

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// readXLSX returns the header and data rows of one worksheet.
// If sheetName is empty, sheetIndex (1-based) selects the sheet.
func readXLSX(path, sheetName string, sheetIndex int) ([]string, [][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, errors.Wrap(err, "open xlsx")
	}
	defer f.Close()

	sheets := f.GetSheetList()
	target := ""
	if sheetName != "" {
		for _, s := range sheets {
			if strings.EqualFold(s, sheetName) {
				target = s
				break
			}
		}
		if target == "" {
			return nil, nil, errors.Errorf("sheet '%s' not found. Available sheets: %s",
				sheetName, strings.Join(sheets, ", "))
		}
	} else {
		idx := sheetIndex
		if idx <= 0 {
			idx = 1
		}
		if idx > len(sheets) {
			return nil, nil, errors.Errorf("sheet index %d out of range (workbook has %d sheets)", idx, len(sheets))
		}
		target = sheets[idx-1]
	}

	all, err := f.GetRows(target)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "read sheet %s", target)
	}
	if len(all) == 0 {
		return nil, nil, errors.New("dataset is empty")
	}
	return all[0], all[1:], nil
}
