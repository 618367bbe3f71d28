package parser

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/mediawatch/monthly-compiler-go/internal/testutil"
)

func TestReadTables(t *testing.T) {
	doc := testutil.DocumentXML(
		[][]testutil.Cell{
			testutil.Row("Client News"),
			testutil.Row("No.", "Berita"),
			testutil.Row("1", "  Judul_Media_Andi_20250615  "),
		},
		[][]testutil.Cell{
			testutil.Row("Unknown Section"),
		},
	)

	tables, err := ReadTables(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ReadTables failed: %v", err)
	}
	if len(tables) != 2 {
		t.Fatalf("Expected 2 tables, got %d", len(tables))
	}

	if tables[0].Header != "Client News" {
		t.Errorf("Expected header 'Client News', got %q", tables[0].Header)
	}
	expectedRows := [][]string{{"No.", "Berita"}, {"1", "Judul_Media_Andi_20250615"}}
	if !reflect.DeepEqual(tables[0].Rows, expectedRows) {
		t.Errorf("Rows = %q, expected %q", tables[0].Rows, expectedRows)
	}

	if tables[1].Header != "Unknown Section" || len(tables[1].Rows) != 0 {
		t.Errorf("Unexpected second table: %+v", tables[1])
	}
}

func TestReadTablesGridSpan(t *testing.T) {
	doc := testutil.DocumentXML([][]testutil.Cell{
		{{Text: "Corporate News", Span: 3}},
		{{Text: "1"}, {Text: "Judul_Media", Span: 2}},
	})

	tables, err := ReadTables(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ReadTables failed: %v", err)
	}
	if len(tables) != 1 {
		t.Fatalf("Expected 1 table, got %d", len(tables))
	}
	if tables[0].Header != "Corporate News" {
		t.Errorf("Expected header 'Corporate News', got %q", tables[0].Header)
	}
	expected := []string{"1", "Judul_Media", "Judul_Media"}
	if !reflect.DeepEqual(tables[0].Rows[0], expected) {
		t.Errorf("Row = %q, expected %q", tables[0].Rows[0], expected)
	}
}

func TestReadTablesNestedTableText(t *testing.T) {
	inner := testutil.TableXML([][]testutil.Cell{testutil.Row("Inner", "Text")})
	doc := `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
		`<w:tbl><w:tr><w:tc><w:p><w:r><w:t>Client News</w:t></w:r></w:p></w:tc></w:tr>` +
		`<w:tr><w:tc><w:p><w:r><w:t>1</w:t></w:r></w:p></w:tc>` +
		`<w:tc><w:p><w:r><w:t>Outer </w:t></w:r></w:p>` + inner + `</w:tc></w:tr></w:tbl>` +
		`</w:body></w:document>`

	tables, err := ReadTables(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ReadTables failed: %v", err)
	}
	if len(tables) != 1 {
		t.Fatalf("Expected nested table to fold into its cell, got %d tables", len(tables))
	}
	expected := []string{"1", "Outer InnerText"}
	if !reflect.DeepEqual(tables[0].Rows[0], expected) {
		t.Errorf("Row = %q, expected %q", tables[0].Rows[0], expected)
	}
}

func TestReadTablesVerticalMerge(t *testing.T) {
	doc := testutil.DocumentXML([][]testutil.Cell{
		testutil.Row("Client News"),
		{{Text: "1", VMerge: "restart"}, {Text: "Judul_Kompas_Andi"}},
		{{VMerge: "continue"}, {Text: "Judul Lain_Tempo_Sari"}},
		{{Text: "2", VMerge: "restart"}, {Text: "Ketiga_Detik"}},
	})

	tables, err := ReadTables(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ReadTables failed: %v", err)
	}
	if len(tables) != 1 {
		t.Fatalf("Expected 1 table, got %d", len(tables))
	}
	expected := [][]string{
		{"1", "Judul_Kompas_Andi"},
		{"1", "Judul Lain_Tempo_Sari"},
		{"2", "Ketiga_Detik"},
	}
	if !reflect.DeepEqual(tables[0].Rows, expected) {
		t.Errorf("Rows = %q, expected %q", tables[0].Rows, expected)
	}
}

func TestReadTablesBareVMergeContinues(t *testing.T) {
	doc := `<w:document xmlns:w="` + testutil.WordNS + `"><w:body><w:tbl>` +
		`<w:tr><w:tc><w:p><w:r><w:t>Corporate News</w:t></w:r></w:p></w:tc></w:tr>` +
		`<w:tr><w:tc><w:tcPr><w:vMerge w:val="restart"/></w:tcPr><w:p><w:r><w:t>7</w:t></w:r></w:p></w:tc></w:tr>` +
		`<w:tr><w:tc><w:tcPr><w:vMerge/></w:tcPr><w:p/></w:tc></w:tr>` +
		`</w:tbl></w:body></w:document>`

	tables, err := ReadTables(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ReadTables failed: %v", err)
	}
	expected := [][]string{{"7"}, {"7"}}
	if len(tables) != 1 || !reflect.DeepEqual(tables[0].Rows, expected) {
		t.Errorf("Tables = %+v, expected rows %q", tables, expected)
	}
}

func TestReadTablesIgnoresDrawingTables(t *testing.T) {
	const drawingNS = "http://schemas.openxmlformats.org/drawingml/2006/main"
	drawing := `<w:r><w:drawing><a:graphic xmlns:a="` + drawingNS + `"><a:graphicData>` +
		`<a:tbl><a:tr><a:tc><a:txBody><a:p><a:r><a:t>Chart Table</a:t></a:r></a:p></a:txBody></a:tc></a:tr></a:tbl>` +
		`</a:graphicData></a:graphic></w:drawing></w:r>`
	doc := `<w:document xmlns:w="` + testutil.WordNS + `"><w:body>` +
		`<w:p>` + drawing + `</w:p>` +
		`<w:tbl><w:tr><w:tc><w:p><w:r><w:t>LPG News</w:t></w:r></w:p></w:tc></w:tr>` +
		`<w:tr><w:tc><w:p><w:r><w:t>1</w:t></w:r></w:p></w:tc>` +
		`<w:tc><w:p><w:r><w:t>Harga LPG</w:t></w:r>` + drawing + `</w:p></w:tc></w:tr></w:tbl>` +
		`</w:body></w:document>`

	tables, err := ReadTables(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ReadTables failed: %v", err)
	}
	if len(tables) != 1 {
		t.Fatalf("Expected only the Word table, got %d tables", len(tables))
	}
	if tables[0].Header != "LPG News" {
		t.Errorf("Expected header 'LPG News', got %q", tables[0].Header)
	}
	expected := []string{"1", "Harga LPG"}
	if !reflect.DeepEqual(tables[0].Rows[0], expected) {
		t.Errorf("Row = %q, expected %q", tables[0].Rows[0], expected)
	}
}

func TestReadTablesSkipsEmptyTable(t *testing.T) {
	doc := `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
		`<w:tbl><w:tblPr/></w:tbl></w:body></w:document>`

	tables, err := ReadTables(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ReadTables failed: %v", err)
	}
	if len(tables) != 0 {
		t.Errorf("Expected no tables, got %d", len(tables))
	}
}

func TestReadTablesMalformed(t *testing.T) {
	_, err := ReadTables(strings.NewReader(`<w:document xmlns:w="` + testutil.WordNS + `"><w:body><w:tbl><w:tr>`))
	if err == nil {
		t.Error("Expected error for truncated XML")
	}
}

func TestExtractTables(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "report.docx")
	testutil.WriteDocx(t, tmpFile, testutil.DocumentXML([][]testutil.Cell{
		testutil.Row("Ammonia News"),
		testutil.Row("1", "Pabrik Amonia_Kontan_Budi_20250611"),
	}))

	doc, err := ExtractTables(tmpFile)
	if err != nil {
		t.Fatalf("ExtractTables failed: %v", err)
	}
	if doc.Path != tmpFile {
		t.Errorf("Expected path %q, got %q", tmpFile, doc.Path)
	}
	if len(doc.Tables) != 1 || doc.Tables[0].Header != "Ammonia News" {
		t.Fatalf("Unexpected tables: %+v", doc.Tables)
	}
}

func TestExtractTablesMissingDocumentPart(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "empty.docx")
	testutil.WriteZip(t, tmpFile, map[string]string{"word/styles.xml": "<w:styles/>"})

	_, err := ExtractTables(tmpFile)
	if !errors.Is(err, ErrMissingDocumentPart) {
		t.Errorf("Expected ErrMissingDocumentPart, got %v", err)
	}
}

func TestExtractTablesNotZip(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "broken.docx")
	if err := os.WriteFile(tmpFile, []byte("not a zip"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	if _, err := ExtractTables(tmpFile); err == nil {
		t.Error("Expected error for non-zip document")
	}
}
