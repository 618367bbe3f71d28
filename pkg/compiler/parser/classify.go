// Package parser turns report documents into structured entries.
package parser

import "github.com/mediawatch/monthly-compiler-go/pkg/compiler/models"

// CategoryHeaders maps the exact header text of a report table to its category.
// Lookup is case-sensitive and unnormalised; anything else is rejected.
var CategoryHeaders = map[string]models.Category{
	"Client News":                         models.ClientNews,
	"Corporate News":                      models.CorporateNews,
	"Industry & Regulatory News":          models.IndustryRegulatoryNews,
	"Rental & Autopool Industry":          models.IndustryRegulatoryNews,
	"Logistic & Express Courier Industry": models.IndustryRegulatoryNews,
	"Car Auction & Selling Industry":      models.IndustryRegulatoryNews,
	"Ammonia News":                        models.IndustryRegulatoryNews,
	"LPG News":                            models.IndustryRegulatoryNews,
}

// Classify maps a table header to a category.
// The second return value is false when the header is not a known section,
// in which case the whole table must be skipped.
func Classify(header string) (models.Category, bool) {
	c, ok := CategoryHeaders[header]
	return c, ok
}
