package compiler

import "github.com/mediawatch/monthly-compiler-go/pkg/compiler/models"

// Aggregator groups records by category in arrival order.
// It keeps duplicates.
type Aggregator struct {
	groups map[models.Category][]models.Record
	total  int
}

// NewAggregator creates an empty Aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{groups: make(map[models.Category][]models.Record)}
}

// Add appends a record to its category.
func (a *Aggregator) Add(r models.Record) {
	a.groups[r.Category] = append(a.groups[r.Category], r)
	a.total++
}

// AddAll appends records in order.
func (a *Aggregator) AddAll(records []models.Record) {
	for _, r := range records {
		a.Add(r)
	}
}

// Categories returns the categories holding at least one record, in display order.
func (a *Aggregator) Categories() []models.Category {
	var cats []models.Category
	for _, c := range models.AllCategories {
		if len(a.groups[c]) > 0 {
			cats = append(cats, c)
		}
	}
	return cats
}

// Records returns a copy of the records of one category in insertion order.
func (a *Aggregator) Records(c models.Category) []models.Record {
	return append([]models.Record(nil), a.groups[c]...)
}

// Counts returns the number of records per category.
func (a *Aggregator) Counts() map[models.Category]int {
	counts := make(map[models.Category]int, len(a.groups))
	for c, records := range a.groups {
		counts[c] = len(records)
	}
	return counts
}

// Len returns the total number of records.
func (a *Aggregator) Len() int {
	return a.total
}
