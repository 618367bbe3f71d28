package parser

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/mediawatch/monthly-compiler-go/pkg/compiler/models"
)

const (
	linkPrefix    = "http"
	pagePrefix    = "page"
	fieldSep      = "_"
	dateCodeWidth = len(models.DateLayout)
)

// entryState carries the fields derived so far and the text still to be
// consumed. Each rule reads the remainder and returns the next state.
type entryState struct {
	rest       string
	link       string
	date       *time.Time
	pageNumber string
	parts      []string
}

// entryRule is one step of the entry grammar.
type entryRule func(entryState) entryState

// entryRules is the grammar, applied in order.
var entryRules = []entryRule{
	extractLink,
	extractDateCode,
	trimTrailingSeparator,
	splitParts,
}

// ParseEntry parses the combined text cell of a report row.
// It never fails: text that does not follow the encoding convention comes
// back as a title-only record.
func ParseEntry(category models.Category, combined string) models.Record {
	combined = strings.TrimSpace(combined)

	st := entryState{
		rest:       combined,
		link:       models.Placeholder,
		pageNumber: models.Placeholder,
	}
	for _, rule := range entryRules {
		st = rule(st)
	}

	rec := assignFields(category, st)
	if isUnstructured(st) {
		rec = fallbackRecord(category, combined)
	}
	rec.Media = titleCase(rec.Media)
	return rec
}

// extractLink splits off everything from the first "http".
func extractLink(st entryState) entryState {
	i := strings.Index(st.rest, linkPrefix)
	if i < 0 {
		return st
	}
	st.link = st.rest[i:]
	st.rest = st.rest[:i]
	return st
}

// extractDateCode strips a trailing YYYYMMDD code. An 8-digit suffix that is
// not a real date is still removed but leaves the date unset.
func extractDateCode(st entryState) entryState {
	if len(st.rest) < dateCodeWidth {
		return st
	}
	code := st.rest[len(st.rest)-dateCodeWidth:]
	if !allDigits(code) {
		return st
	}
	st.rest = st.rest[:len(st.rest)-dateCodeWidth]
	if d, ok := parseDateCode(code); ok {
		st.date = &d
	}
	return st
}

func trimTrailingSeparator(st entryState) entryState {
	st.rest = strings.TrimSuffix(st.rest, fieldSep)
	return st
}

// splitParts tokenizes the remainder, pulling out page-number tokens.
// Empty tokens keep their position.
func splitParts(st entryState) entryState {
	if st.rest == "" {
		return st
	}
	for _, token := range strings.Split(st.rest, fieldSep) {
		if strings.HasPrefix(strings.ToLower(token), pagePrefix) {
			st.pageNumber = pageNumberOf(token)
			continue
		}
		st.parts = append(st.parts, token)
	}
	st.rest = ""
	return st
}

// assignFields maps the remaining parts onto title, media and journalist.
// Parts beyond the third are dropped. An empty part is kept as an empty field.
func assignFields(category models.Category, st entryState) models.Record {
	rec := models.Record{
		Category:   category,
		Date:       st.date,
		Title:      models.Placeholder,
		Media:      models.Placeholder,
		Journalist: models.Placeholder,
		PageNumber: st.pageNumber,
		Link:       st.link,
	}
	if len(st.parts) > 0 {
		rec.Title = st.parts[0]
	}
	if len(st.parts) > 1 {
		rec.Media = st.parts[1]
	}
	if len(st.parts) > 2 {
		rec.Journalist = st.parts[2]
	}
	return rec
}

// isUnstructured reports whether no title, media, journalist or date could be
// derived. An empty positional token counts as unset.
func isUnstructured(st entryState) bool {
	if st.date != nil {
		return false
	}
	for i := 0; i < len(st.parts) && i < 3; i++ {
		if st.parts[i] != "" {
			return false
		}
	}
	return true
}

// fallbackRecord keeps the untouched input as the title and defaults
// everything else.
func fallbackRecord(category models.Category, combined string) models.Record {
	return models.Record{
		Category:   category,
		Title:      combined,
		Media:      models.Placeholder,
		Journalist: models.Placeholder,
		PageNumber: models.Placeholder,
		Link:       models.Placeholder,
	}
}

// pageNumberOf returns the text after the last whitespace of a page token,
// or the whole token when it has none.
func pageNumberOf(token string) string {
	i := strings.LastIndexFunc(token, unicode.IsSpace)
	if i < 0 {
		return token
	}
	_, size := utf8.DecodeRuneInString(token[i:])
	return token[i+size:]
}

func parseDateCode(code string) (time.Time, bool) {
	d, err := time.Parse(models.DateLayout, code)
	if err != nil || d.Year() < 1 {
		return time.Time{}, false
	}
	return d, true
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// titleCase upper-cases the first letter of each whitespace-separated word
// and lower-cases the rest.
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	startOfWord := true
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			startOfWord = true
			b.WriteRune(r)
		case startOfWord:
			b.WriteRune(unicode.ToTitle(r))
			startOfWord = false
		default:
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}
