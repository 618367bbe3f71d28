package output

import (
	"time"

	"github.com/mediawatch/monthly-compiler-go/pkg/compiler/models"
)

// memSource is an in-memory RecordSource.
type memSource struct {
	order  []models.Category
	groups map[models.Category][]models.Record
}

func (m memSource) Categories() []models.Category             { return m.order }
func (m memSource) Records(c models.Category) []models.Record { return m.groups[c] }

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func sampleSource() memSource {
	return memSource{
		order: []models.Category{models.ClientNews, models.IndustryRegulatoryNews},
		groups: map[models.Category][]models.Record{
			models.ClientNews: {
				{
					Category: models.ClientNews, Date: date(2025, 6, 15),
					Title: "BeritaJudul", Media: "Mediax", Journalist: "John",
					PageNumber: "5", Link: "http://example.com/a",
				},
			},
			models.IndustryRegulatoryNews: {
				{
					Category: models.IndustryRegulatoryNews,
					Title:    "JudulTanpaFormat", Media: "-", Journalist: "-",
					PageNumber: "-", Link: "-",
				},
			},
		},
	}
}
