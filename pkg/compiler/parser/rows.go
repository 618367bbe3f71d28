package parser

import "github.com/mediawatch/monthly-compiler-go/pkg/compiler/models"

// continuationMarker is the first-cell text of repeated header rows.
const continuationMarker = "No."

// combinedCell is the column index holding the encoded entry text.
const combinedCell = 1

// AcceptRow reports whether a table row carries a report entry.
// Rows with fewer than two cells, an empty first cell or a repeated
// "No." header are skipped.
func AcceptRow(cells []string) bool {
	if len(cells) <= combinedCell {
		return false
	}
	return cells[0] != "" && cells[0] != continuationMarker
}

// ParseTable classifies a table and parses every accepted row.
// It returns false when the header is not a known category; no records are
// produced for such a table.
func ParseTable(t models.Table) ([]models.Record, bool) {
	category, ok := Classify(t.Header)
	if !ok {
		return nil, false
	}

	var records []models.Record
	for _, row := range t.Rows {
		if !AcceptRow(row) {
			continue
		}
		records = append(records, ParseEntry(category, row[combinedCell]))
	}
	return records, true
}
