// Package output renders compiled records as workbooks and data dumps.
package output

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// MaxSheetNameLength is the longest sheet name Excel accepts.
const MaxSheetNameLength = 31

var illegalSheetChars = regexp.MustCompile(`[\\/*?:"<>|\[\]]`)

// SanitizeSheetName removes characters Excel rejects in sheet names and
// truncates the result to maxLen runes (MaxSheetNameLength when maxLen <= 0).
func SanitizeSheetName(name string, maxLen int) string {
	maxLen = sheetNameLimit(maxLen)
	return truncateRunes(illegalSheetChars.ReplaceAllString(name, ""), maxLen)
}

// SheetNamer hands out sanitised sheet names that are unique within one
// workbook. Excel compares sheet names case-insensitively.
type SheetNamer struct {
	maxLen int
	used   map[string]bool
}

// NewSheetNamer returns a namer truncating to maxLen runes
// (MaxSheetNameLength when maxLen <= 0).
func NewSheetNamer(maxLen int) *SheetNamer {
	return &SheetNamer{maxLen: sheetNameLimit(maxLen), used: make(map[string]bool)}
}

// Name sanitises name and, when the result is already taken, replaces its
// tail with "~2", "~3", ... A suffixed name stays within the namer's limit
// when it can, and never exceeds MaxSheetNameLength.
func (n *SheetNamer) Name(name string) string {
	base := SanitizeSheetName(name, n.maxLen)
	candidate := base
	for i := 2; n.used[strings.ToLower(candidate)]; i++ {
		suffix := "~" + strconv.Itoa(i)
		keep := max(n.maxLen-len(suffix), 1)
		keep = min(keep, MaxSheetNameLength-len(suffix))
		candidate = truncateRunes(base, keep) + suffix
	}
	n.used[strings.ToLower(candidate)] = true
	return candidate
}

func sheetNameLimit(maxLen int) int {
	if maxLen <= 0 || maxLen > MaxSheetNameLength {
		return MaxSheetNameLength
	}
	return maxLen
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) > n {
		runes = runes[:n]
	}
	return string(runes)
}

// ReportPath returns <dir>/<base of root><suffix>. An empty dir means root.
func ReportPath(root, dir, suffix string) string {
	root = filepath.Clean(root)
	if dir == "" {
		dir = root
	}
	return filepath.Join(dir, filepath.Base(root)+suffix)
}

// WithExtension replaces the extension of a report suffix,
// e.g. "_Compiled_Report.xlsx" with ".json".
func WithExtension(suffix, ext string) string {
	return strings.TrimSuffix(suffix, filepath.Ext(suffix)) + ext
}
