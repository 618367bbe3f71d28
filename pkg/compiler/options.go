// Package compiler compiles daily media-monitoring reports into a monthly
// workbook.
package compiler

import (
	"strings"

	"github.com/mediawatch/monthly-compiler-go/internal/logger"
)

// lockFilePrefix marks Office owner files left next to open documents.
const lockFilePrefix = "~$"

// Options configures a compile run.
type Options struct {
	// Extensions lists the lower-case file extensions to scan.
	// If empty, defaults to .docx.
	Extensions []string
	// Logger receives progress and skip reports. If nil, logging is disabled.
	Logger logger.Logger
}

// DefaultOptions returns default compile options.
func DefaultOptions() Options {
	return Options{
		Extensions: []string{".docx"},
	}
}

// ShouldScan reports whether a file name is a document to process.
func (o Options) ShouldScan(name string) bool {
	if strings.HasPrefix(name, lockFilePrefix) {
		return false
	}
	exts := o.Extensions
	if len(exts) == 0 {
		exts = DefaultOptions().Extensions
	}
	lower := strings.ToLower(name)
	for _, ext := range exts {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

func (o Options) log() logger.Logger {
	if o.Logger == nil {
		return logger.NewNop()
	}
	return o.Logger
}
