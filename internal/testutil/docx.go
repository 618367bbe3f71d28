// Package testutil builds report fixtures for tests.
package testutil

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"os"
	"strconv"
	"strings"
	"testing"
)

// WordNS is the WordprocessingML main namespace.
const WordNS = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

// Cell is one table cell. Span > 1 renders a horizontally merged cell.
// VMerge, when set, renders w:vMerge with that value ("restart" or "continue").
type Cell struct {
	Text   string
	Span   int
	VMerge string
}

// Row builds a row of plain single-column cells.
func Row(texts ...string) []Cell {
	row := make([]Cell, len(texts))
	for i, t := range texts {
		row[i] = Cell{Text: t}
	}
	return row
}

// DocumentXML renders a minimal word/document.xml holding the given tables,
// each preceded by a paragraph.
func DocumentXML(tables ...[][]Cell) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	b.WriteString(`<w:document xmlns:w="` + WordNS + `"><w:body>`)
	for _, rows := range tables {
		b.WriteString(`<w:p><w:r><w:t>Laporan Harian</w:t></w:r></w:p>`)
		b.WriteString(TableXML(rows))
	}
	b.WriteString(`<w:sectPr/></w:body></w:document>`)
	return b.String()
}

// TableXML renders one w:tbl element.
func TableXML(rows [][]Cell) string {
	var b strings.Builder
	b.WriteString(`<w:tbl><w:tblPr><w:tblW w:w="0" w:type="auto"/></w:tblPr>`)
	for _, row := range rows {
		b.WriteString(`<w:tr>`)
		for _, c := range row {
			b.WriteString(`<w:tc><w:tcPr>`)
			if c.Span > 1 {
				b.WriteString(`<w:gridSpan w:val="` + strconv.Itoa(c.Span) + `"/>`)
			}
			if c.VMerge != "" {
				b.WriteString(`<w:vMerge w:val="` + c.VMerge + `"/>`)
			}
			b.WriteString(`</w:tcPr><w:p><w:r><w:t xml:space="preserve">`)
			b.WriteString(escape(c.Text))
			b.WriteString(`</w:t></w:r></w:p></w:tc>`)
		}
		b.WriteString(`</w:tr>`)
	}
	b.WriteString(`</w:tbl>`)
	return b.String()
}

// WriteDocx writes a .docx container whose main part is documentXML.
func WriteDocx(t testing.TB, path, documentXML string) {
	t.Helper()
	WriteZip(t, path, map[string]string{
		"[Content_Types].xml": `<?xml version="1.0" encoding="UTF-8"?><Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"/>`,
		"word/document.xml":   documentXML,
	})
}

// WriteZip writes a zip archive with the given entries.
func WriteZip(t testing.TB, path string, entries map[string]string) {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range entries {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("create zip entry %s: %v", name, err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("write zip entry %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func escape(s string) string {
	var b bytes.Buffer
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
