package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShouldScan(t *testing.T) {
	tests := []struct {
		name     string
		exts     []string
		file     string
		expected bool
	}{
		{"docx by default", nil, "Laporan 01 Juni.docx", true},
		{"upper-case extension", nil, "LAPORAN.DOCX", true},
		{"lock file", nil, "~$poran.docx", false},
		{"other type", nil, "notes.txt", false},
		{"legacy doc not matched", nil, "old.doc", false},
		{"custom extension", []string{".docm"}, "macro.docm", true},
		{"custom excludes docx", []string{".docm"}, "plain.docx", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := Options{Extensions: tt.exts}
			assert.Equal(t, tt.expected, opts.ShouldScan(tt.file))
		})
	}
}
