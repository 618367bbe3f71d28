package output

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// SheetData is the content of one sheet of a compiled workbook.
type SheetData struct {
	// Name is the sheet name.
	Name string `json:"name"`
	// Header is the first row.
	Header []string `json:"header"`
	// Rows holds the data rows below the header, trailing empty cells trimmed.
	Rows [][]string `json:"rows,omitempty"`
}

// ReadWorkbook reads every sheet of a compiled workbook in tab order.
func ReadWorkbook(path string) ([]SheetData, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var sheets []SheetData
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("read sheet %q: %w", name, err)
		}

		sheet := SheetData{Name: name}
		if len(rows) > 0 {
			sheet.Header = rows[0]
			sheet.Rows = nonEmptyRows(rows[1:])
		}
		sheets = append(sheets, sheet)
	}

	return sheets, nil
}

func nonEmptyRows(rows [][]string) [][]string {
	var result [][]string
	for _, row := range rows {
		for _, cell := range row {
			if cell != "" {
				result = append(result, row)
				break
			}
		}
	}
	return result
}
