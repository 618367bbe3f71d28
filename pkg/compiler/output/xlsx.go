package output

import (
	"fmt"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/mediawatch/monthly-compiler-go/pkg/compiler/models"
	"github.com/xuri/excelize/v2"
)

// Column width bounds, in characters.
const (
	MinColumnWidth = 10
	MaxColumnWidth = 50
	columnPadding  = 2
)

const (
	headerFill = "FFFF00"
	dateFormat = "yyyy/mm/dd"
)

// RecordSource is the aggregated data a report is rendered from.
type RecordSource interface {
	Categories() []models.Category
	Records(c models.Category) []models.Record
}

// WorkbookOptions configures workbook rendering.
type WorkbookOptions struct {
	// MaxSheetName caps sheet name length; 0 means MaxSheetNameLength.
	MaxSheetName int
}

// sheetStyles holds the style ids shared by every sheet.
type sheetStyles struct {
	header int
	date   int
	cell   int
}

// WriteWorkbook renders one sheet per category and saves the workbook to path.
// Sheets follow the category order of src.
func WriteWorkbook(path string, src RecordSource, opts WorkbookOptions) error {
	categories := src.Categories()
	if len(categories) == 0 {
		return fmt.Errorf("write %s: no categories to render", path)
	}

	f := excelize.NewFile()
	defer f.Close()

	styles, err := newSheetStyles(f)
	if err != nil {
		return err
	}

	defaultSheet := f.GetSheetName(0)
	namer := NewSheetNamer(opts.MaxSheetName)
	for i, c := range categories {
		name := namer.Name(c.String())
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, name); err != nil {
				return fmt.Errorf("rename sheet %q: %w", name, err)
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("create sheet %q: %w", name, err)
		}

		if err := writeSheet(f, name, models.SchemaFor(c), src.Records(c), styles); err != nil {
			return fmt.Errorf("sheet %q: %w", name, err)
		}
	}
	f.SetActiveSheet(0)

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func newSheetStyles(f *excelize.File) (sheetStyles, error) {
	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}

	header, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{headerFill}, Pattern: 1},
		Border:    border,
	})
	if err != nil {
		return sheetStyles{}, fmt.Errorf("header style: %w", err)
	}

	numFmt := dateFormat
	date, err := f.NewStyle(&excelize.Style{
		CustomNumFmt: &numFmt,
		Alignment:    &excelize.Alignment{Vertical: "center"},
		Border:       border,
	})
	if err != nil {
		return sheetStyles{}, fmt.Errorf("date style: %w", err)
	}

	cell, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Vertical: "center", WrapText: true},
		Border:    border,
	})
	if err != nil {
		return sheetStyles{}, fmt.Errorf("cell style: %w", err)
	}

	return sheetStyles{header: header, date: date, cell: cell}, nil
}

// writeSheet writes the header row, the record rows and the column layout.
func writeSheet(f *excelize.File, sheet string, schema models.Schema, records []models.Record, styles sheetStyles) error {
	header := make([]interface{}, len(schema.Columns))
	for i, col := range schema.Columns {
		header[i] = col
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	widths := make([]int, len(schema.Columns))
	for i, col := range schema.Columns {
		widths[i] = runewidth.StringWidth(col)
	}

	for r, rec := range records {
		values := schema.Values(rec)
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
		for i, v := range values {
			if w := runewidth.StringWidth(displayValue(v)); w > widths[i] {
				widths[i] = w
			}
		}
	}

	lastRow := len(records) + 1
	for i, col := range schema.Columns {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}

		style := styles.cell
		if col == models.ColumnDate {
			style = styles.date
		}
		if err := f.SetColWidth(sheet, name, name, ColumnWidth(widths[i])); err != nil {
			return err
		}
		if err := f.SetColStyle(sheet, name, style); err != nil {
			return err
		}
		if lastRow > 1 {
			if err := f.SetCellStyle(sheet, name+"2", fmt.Sprintf("%s%d", name, lastRow), style); err != nil {
				return err
			}
		}
	}

	last, err := excelize.ColumnNumberToName(len(schema.Columns))
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A1", last+"1", styles.header)
}

// ColumnWidth pads the widest cell and clamps it to the allowed range.
func ColumnWidth(maxContent int) float64 {
	w := maxContent + columnPadding
	if w > MaxColumnWidth {
		w = MaxColumnWidth
	}
	if w < MinColumnWidth {
		w = MinColumnWidth
	}
	return float64(w)
}

func displayValue(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case time.Time:
		return t.Format("2006/01/02")
	case string:
		return t
	default:
		return fmt.Sprint(t)
	}
}
