package digest

import "strings"

// Category is the closed set of news categories. The zero value is Society,
// which is also the classifier fallback.
type Category int

const (
	Society Category = iota
	Politics
	Economy
	Technology
	Culture
	Sports
	International
	Health
	Education
	Environment
)

var categoryNames = map[Category]string{
	Society:       "society",
	Politics:      "politics",
	Economy:       "economy",
	Technology:    "technology",
	Culture:       "culture",
	Sports:        "sports",
	International: "international",
	Health:        "health",
	Education:     "education",
	Environment:   "environment",
}

var categoryLabels = map[Category]string{
	Society:       "Society",
	Politics:      "Politics",
	Economy:       "Economy",
	Technology:    "Technology",
	Culture:       "Culture",
	Sports:        "Sports",
	International: "International",
	Health:        "Health",
	Education:     "Education",
	Environment:   "Environment",
}

// digestOrder is the section order used by all renderers.
var digestOrder = []Category{
	Politics, Economy, Society, Technology, Culture,
	Sports, International, Health, Education, Environment,
}

// String returns the stable internal name used in config files and logs.
func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return categoryNames[Society]
}

// Label returns the external display label used in rendered output.
// Logic must never match on labels; they exist only for presentation.
func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return categoryLabels[Society]
}

// Categories returns all categories in digest section order.
func Categories() []Category {
	out := make([]Category, len(digestOrder))
	copy(out, digestOrder)
	return out
}

// ParseCategory resolves an internal category name from config.
func ParseCategory(name string) (Category, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for c, n := range categoryNames {
		if n == name {
			return c, true
		}
	}
	return Society, false
}
