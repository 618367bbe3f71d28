package output

import (
	"encoding/json"
	"fmt"

	"github.com/mediawatch/monthly-compiler-go/pkg/compiler/models"
	"gopkg.in/yaml.v3"
)

// CategoryGroup is one category and its records, as serialized in dumps.
type CategoryGroup struct {
	Category models.Category `json:"category" yaml:"category"`
	Records  []models.Record `json:"records" yaml:"records"`
}

// Report is the serializable form of a compiled run.
type Report struct {
	Root   string          `json:"root" yaml:"root"`
	Groups []CategoryGroup `json:"groups" yaml:"groups"`
}

// NewReport collects the groups of src in category order.
func NewReport(root string, src RecordSource) Report {
	report := Report{Root: root}
	for _, c := range src.Categories() {
		report.Groups = append(report.Groups, CategoryGroup{
			Category: c,
			Records:  src.Records(c),
		})
	}
	return report
}

// ToJSON serializes a report to JSON.
func ToJSON(report Report, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(report, "", "  ")
	}
	return json.Marshal(report)
}

// ToYAML serializes a report to YAML. Dates are written as yyyy-mm-dd.
func ToYAML(report Report) ([]byte, error) {
	data, err := yaml.Marshal(yamlReport(report))
	if err != nil {
		return nil, fmt.Errorf("marshal yaml: %w", err)
	}
	return data, nil
}

type yamlRecord struct {
	Date       string `yaml:"date,omitempty"`
	Title      string `yaml:"title"`
	Media      string `yaml:"media"`
	Journalist string `yaml:"journalist"`
	PageNumber string `yaml:"page_number"`
	Link       string `yaml:"link"`
}

type yamlGroup struct {
	Category models.Category `yaml:"category"`
	Records  []yamlRecord    `yaml:"records"`
}

func yamlReport(report Report) map[string]interface{} {
	groups := make([]yamlGroup, 0, len(report.Groups))
	for _, g := range report.Groups {
		yg := yamlGroup{Category: g.Category}
		for _, r := range g.Records {
			var date string
			if r.Date != nil {
				date = r.Date.Format("2006-01-02")
			}
			yg.Records = append(yg.Records, yamlRecord{
				Date:       date,
				Title:      r.Title,
				Media:      r.Media,
				Journalist: r.Journalist,
				PageNumber: r.PageNumber,
				Link:       r.Link,
			})
		}
		groups = append(groups, yg)
	}
	return map[string]interface{}{
		"root":   report.Root,
		"groups": groups,
	}
}
