// Package models defines data structures for compiled media-monitoring reports.
package models

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Category is the top-level classification bucket of a report entry.
type Category int

const (
	// ClientNews holds coverage of the client itself.
	ClientNews Category = iota + 1
	// CorporateNews holds corporate coverage.
	CorporateNews
	// IndustryRegulatoryNews holds industry and regulatory coverage.
	IndustryRegulatoryNews
)

// AllCategories lists every category in display order.
var AllCategories = []Category{ClientNews, CorporateNews, IndustryRegulatoryNews}

var categoryNames = map[Category]string{
	ClientNews:             "Client News",
	CorporateNews:          "Corporate News",
	IndustryRegulatoryNews: "Industry & Regulatory News",
}

// String returns the display name used for sheet names and dumps.
func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	_, ok := categoryNames[c]
	return ok
}

// MarshalText implements encoding.TextMarshaler so categories serialize by name.
func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid category %d", int(c))
	}
	return []byte(c.String()), nil
}

// MarshalYAML renders the category by display name.
func (c Category) MarshalYAML() (interface{}, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid category %d", int(c))
	}
	return c.String(), nil
}

var _ yaml.Marshaler = Category(0)
