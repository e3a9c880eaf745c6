package report

import (
	"encoding/json"

	"newsbrief/internal/digest"
)

type exportItem struct {
	Title       string `json:"title"`
	Summary     string `json:"summary"`
	Category    string `json:"category"`
	Source      string `json:"source"`
	URL         string `json:"url"`
	PublishTime string `json:"publish_time"`
	Importance  int    `json:"importance"`
}

type exportDocument struct {
	Date      string       `json:"date"`
	TotalNews int          `json:"total_news"`
	NewsItems []exportItem `json:"news_items"`
}

// ExportJSON renders the structured export. Categories appear as their
// external labels, never as internal identifiers.
func ExportJSON(d *digest.Digest) ([]byte, error) {
	items := d.Items()
	doc := exportDocument{
		Date:      d.GeneratedAt().Format("2006-01-02"),
		TotalNews: len(items),
		NewsItems: make([]exportItem, 0, len(items)),
	}
	for _, item := range items {
		doc.NewsItems = append(doc.NewsItems, exportItem{
			Title:       item.Title,
			Summary:     item.Summary,
			Category:    item.Category.Label(),
			Source:      item.Source,
			URL:         item.URL,
			PublishTime: item.PublishTime,
			Importance:  item.Importance,
		})
	}
	return json.MarshalIndent(doc, "", "  ")
}
