package output

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeSheetName(t *testing.T) {
	tests := []struct {
		name     string
		maxLen   int
		expected string
	}{
		{"Client News", 0, "Client News"},
		{"Industry & Regulatory News", 0, "Industry & Regulatory News"},
		{`a\b/c*d?e:f"g<h>i|j[k]`, 0, "abcdefghijk"},
		{"This Sheet Name Is Far Too Long For Excel", 0, "This Sheet Name Is Far Too Long"},
		{"Berita Ékonomi", 8, "Berita É"},
		{"Client News", 99, "Client News"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, SanitizeSheetName(tt.name, tt.maxLen), "SanitizeSheetName(%q, %d)", tt.name, tt.maxLen)
	}
}

func TestSheetNamer(t *testing.T) {
	namer := NewSheetNamer(0)
	assert.Equal(t, "Client News", namer.Name("Client News"))
	assert.Equal(t, "Client News~2", namer.Name("client news"))
	assert.Equal(t, "Client News~3", namer.Name("Client News"))

	short := NewSheetNamer(6)
	assert.Equal(t, "Client", short.Name("Client News"))
	assert.Equal(t, "Clie~2", short.Name("Client Corner"))

	tiny := NewSheetNamer(1)
	assert.Equal(t, "C", tiny.Name("Client News"))
	assert.Equal(t, "C~2", tiny.Name("Corporate News"))
	assert.Equal(t, "I", tiny.Name("Industry & Regulatory News"))

	full := NewSheetNamer(0)
	long := "This Sheet Name Is Far Too Long For Excel"
	assert.Equal(t, "This Sheet Name Is Far Too Long", full.Name(long))
	assert.Equal(t, "This Sheet Name Is Far Too Lo~2", full.Name(long))
}

func TestReportPath(t *testing.T) {
	root := filepath.Join("reports", "6. Juni")

	assert.Equal(t,
		filepath.Join("reports", "6. Juni", "6. Juni_Compiled_Report.xlsx"),
		ReportPath(root, "", "_Compiled_Report.xlsx"))
	assert.Equal(t,
		filepath.Join("out", "6. Juni_Compiled_Report.xlsx"),
		ReportPath(root+string(filepath.Separator), "out", "_Compiled_Report.xlsx"))
}

func TestWithExtension(t *testing.T) {
	assert.Equal(t, "_Compiled_Report.json", WithExtension("_Compiled_Report.xlsx", ".json"))
	assert.Equal(t, "_Report.yaml", WithExtension("_Report", ".yaml"))
}
