package parser

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mediawatch/monthly-compiler-go/pkg/compiler/models"
)

// documentPart is the main story of a WordprocessingML package.
const documentPart = "word/document.xml"

// wordNamespace is the WordprocessingML main namespace. Elements from other
// namespaces, such as DrawingML tables inside a drawing, are not table content.
const wordNamespace = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

// ErrMissingDocumentPart indicates the container has no word/document.xml.
var ErrMissingDocumentPart = errors.New("missing " + documentPart)

// ExtractTables reads every top-level table from a .docx file.
func ExtractTables(docxPath string) (*models.Document, error) {
	r, err := zip.OpenReader(docxPath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	rc, err := openZipFile(&r.Reader, documentPart)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	tables, err := ReadTables(rc)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", documentPart, err)
	}

	return &models.Document{Path: docxPath, Tables: tables}, nil
}

// ReadTables parses WordprocessingML and returns its tables in document
// order. Tables nested inside a cell are not returned on their own; their
// text is folded into the enclosing cell. Tables without rows are dropped.
func ReadTables(r io.Reader) ([]models.Table, error) {
	var tables []models.Table

	decoder := xml.NewDecoder(r)
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return tables, err
		}

		if se, ok := token.(xml.StartElement); ok && isWord(se.Name, "tbl") {
			rows, err := parseTable(decoder)
			if err != nil {
				return tables, err
			}
			if t, ok := buildTable(rows); ok {
				tables = append(tables, t)
			}
		}
	}

	return tables, nil
}

// buildTable splits the header cell off the first row.
func buildTable(rows [][]string) (models.Table, bool) {
	if len(rows) == 0 {
		return models.Table{}, false
	}
	var header string
	if len(rows[0]) > 0 {
		header = rows[0][0]
	}
	return models.Table{Header: header, Rows: rows[1:]}, true
}

// parseTable consumes a w:tbl element and returns its rows. A cell that
// continues a vertical merge takes the text of the cell above it.
func parseTable(decoder *xml.Decoder) ([][]string, error) {
	var rows [][]string
	var prev []string
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			return rows, err
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if isWord(t.Name, "tr") {
				cells, err := parseRow(decoder)
				if err != nil {
					return rows, err
				}
				row := make([]string, len(cells))
				for i, c := range cells {
					row[i] = c.text
					if c.continued && i < len(prev) {
						row[i] = prev[i]
					}
				}
				rows = append(rows, row)
				prev = row
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return rows, nil
}

// gridCell is one grid column of a row.
type gridCell struct {
	text      string
	continued bool // continues a vertical merge from the row above
}

// parseRow consumes a w:tr element. A cell spanning several grid columns
// appears once per column.
func parseRow(decoder *xml.Decoder) ([]gridCell, error) {
	var cells []gridCell
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			return cells, err
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if isWord(t.Name, "tc") {
				cell, span, err := parseCell(decoder)
				if err != nil {
					return cells, err
				}
				for i := 0; i < span; i++ {
					cells = append(cells, cell)
				}
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return cells, nil
}

// parseCell consumes a w:tc element and returns its trimmed text, vertical
// merge state and grid span.
func parseCell(decoder *xml.Decoder) (gridCell, int, error) {
	var sb strings.Builder
	var cell gridCell
	span := 1
	nested := 0
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			return cell, span, err
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Space != wordNamespace {
				continue
			}
			switch t.Name.Local {
			case "tbl":
				nested++
			case "gridSpan":
				if nested == 0 {
					span = gridSpanOf(t)
				}
			case "vMerge":
				if nested == 0 {
					cell.continued = attrValue(t) != "restart"
				}
			case "t":
				text, err := readElementText(decoder)
				if err != nil {
					return cell, span, err
				}
				sb.WriteString(text)
				depth--
			}
		case xml.EndElement:
			depth--
			if isWord(t.Name, "tbl") {
				nested--
			}
		}
	}

	cell.text = strings.TrimSpace(sb.String())
	return cell, span, nil
}

func gridSpanOf(se xml.StartElement) int {
	if n, err := strconv.Atoi(attrValue(se)); err == nil && n > 1 {
		return n
	}
	return 1
}

// attrValue returns the w:val attribute of se, or "" when absent.
func attrValue(se xml.StartElement) string {
	for _, attr := range se.Attr {
		if attr.Name.Local == "val" {
			return attr.Value
		}
	}
	return ""
}

func isWord(name xml.Name, local string) bool {
	return name.Space == wordNamespace && name.Local == local
}

// Helper functions

func openZipFile(r *zip.Reader, name string) (io.ReadCloser, error) {
	for _, f := range r.File {
		if f.Name == name {
			return f.Open()
		}
	}
	return nil, ErrMissingDocumentPart
}

func readElementText(decoder *xml.Decoder) (string, error) {
	var text string
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			return text, err
		}
		switch t := token.(type) {
		case xml.CharData:
			text += string(t)
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		}
	}
	return text, nil
}
