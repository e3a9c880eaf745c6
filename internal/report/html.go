package report

import (
	"bytes"
	"fmt"
	"html/template"

	"newsbrief/internal/digest"
)

// CategoryStat is one per-category count for the template.
type CategoryStat struct {
	Label string
	Count int
}

// Section is one category block for the template.
type Section struct {
	Label string
	Items []digest.Item
}

type htmlData struct {
	Title           string
	Date            string
	TotalNews       int
	CategoriesCount int
	CategoryStats   []CategoryStat
	TopNews         []digest.Item
	Sections        []Section
	Analysis        string
	GeneratedAt     string
}

// RenderHTML fills the external template with pre-aggregated digest data.
// A missing or broken template is an error for the caller to report; the run
// itself carries on.
func RenderHTML(d *digest.Digest, analysis, templateFile string) ([]byte, error) {
	tpl, err := template.ParseFiles(templateFile)
	if err != nil {
		return nil, fmt.Errorf("load template %s: %w", templateFile, err)
	}

	date := d.GeneratedAt().Format("2006-01-02")
	data := htmlData{
		Title:       "Morning News Digest - " + date,
		Date:        date,
		TotalNews:   d.Count(),
		TopNews:     d.Top(3),
		Analysis:    analysis,
		GeneratedAt: d.GeneratedAt().Format("2006-01-02 15:04:05"),
	}

	for _, c := range digest.Categories() {
		items := d.ByCategory(c)
		if len(items) == 0 {
			continue
		}
		data.CategoryStats = append(data.CategoryStats, CategoryStat{Label: c.Label(), Count: len(items)})
		data.Sections = append(data.Sections, Section{Label: c.Label(), Items: items})
	}
	data.CategoriesCount = len(data.Sections)

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("execute template %s: %w", templateFile, err)
	}
	return buf.Bytes(), nil
}
