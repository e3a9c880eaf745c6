// Package rules loads the keyword tables and thresholds that drive filtering,
// classification, scoring and rendering. The configuration is read once at
// startup and treated as immutable for the rest of the run.
package rules

import (
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"newsbrief/internal/digest"
)

// CategoryRule binds one category to its trigger keywords. Slice order in the
// config file is the classification priority order: the first rule with a
// keyword hit wins, so earlier rules mask later ones.
type CategoryRule struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// Importance holds the scorer's decision-list inputs.
type Importance struct {
	CriticalKeywords     []string `yaml:"critical_keywords"`
	ImportantKeywords    []string `yaml:"important_keywords"`
	AuthoritativeSources []string `yaml:"authoritative_sources"`
	TitleLengthThreshold int      `yaml:"title_length_threshold"`
}

// Filters holds the item acceptance rules. Lengths are rune counts.
type Filters struct {
	TitleBlacklist   []string `yaml:"title_blacklist"`
	SourceBlacklist  []string `yaml:"source_blacklist"`
	MinTitleLength   int      `yaml:"min_title_length"`
	MaxTitleLength   int      `yaml:"max_title_length"`
	MinSummaryLength int      `yaml:"min_summary_length"`
	MaxSummaryLength int      `yaml:"max_summary_length"`
}

// Sentiment holds the keyword lists for the comment-analysis variant.
type Sentiment struct {
	Positive []string `yaml:"positive"`
	Negative []string `yaml:"negative"`
}

// Set groups the rule sections consumed by the processing stages.
type Set struct {
	Categories []CategoryRule `yaml:"categories"`
	Importance Importance     `yaml:"importance"`
	Filters    Filters        `yaml:"filters"`
	Sentiment  Sentiment      `yaml:"sentiment"`
}

// Selectors describes how to pull item fields out of a scraped page.
type Selectors struct {
	Container string `yaml:"container"`
	Title     string `yaml:"title"`
	Summary   string `yaml:"summary"`
	URL       string `yaml:"url"`
	Time      string `yaml:"time"`
}

// RSSSource is one feed endpoint.
type RSSSource struct {
	Name    string `yaml:"name"`
	URL     string `yaml:"url"`
	Enabled *bool  `yaml:"enabled"`
}

// WebSource is one scraped page endpoint.
type WebSource struct {
	Name      string    `yaml:"name"`
	URL       string    `yaml:"url"`
	Enabled   *bool     `yaml:"enabled"`
	Selectors Selectors `yaml:"selectors"`
}

// Sources lists the configured item providers and their pacing.
type Sources struct {
	FetchDelaySeconds int         `yaml:"fetch_delay_seconds"`
	MaxItemsPerSource int         `yaml:"max_items_per_source"`
	RSS               []RSSSource `yaml:"rss"`
	Web               []WebSource `yaml:"web"`
}

// Format configures one output projection.
type Format struct {
	Enabled          bool   `yaml:"enabled"`
	FilenameTemplate string `yaml:"filename_template"`
	TemplateFile     string `yaml:"template_file,omitempty"`
}

// Output configures the renderer. Formats are independent; any combination
// may be enabled for a run.
type Output struct {
	Dir  string `yaml:"dir"`
	Text Format `yaml:"text"`
	JSON Format `yaml:"json"`
	HTML Format `yaml:"html"`
}

// Enrichment configures the optional AI analysis step. The API key is taken
// from the GEMINI_API_KEY environment variable, never from the file.
type Enrichment struct {
	Enabled     bool   `yaml:"enabled"`
	Model       string `yaml:"model"`
	MaxRequests int    `yaml:"max_requests"`
	MaxItems    int    `yaml:"max_items"`
}

// SeenCache configures cross-run duplicate suppression.
type SeenCache struct {
	Enabled  bool   `yaml:"enabled"`
	Path     string `yaml:"path"`
	TTLHours int    `yaml:"ttl_hours"`
}

// Config is the full configuration document.
type Config struct {
	Rules      Set        `yaml:",inline"`
	Sources    Sources    `yaml:"sources"`
	Output     Output     `yaml:"output"`
	Enrichment Enrichment `yaml:"enrichment"`
	SeenCache  SeenCache  `yaml:"seen_cache"`
}

// Load reads the YAML config at path on top of the built-in defaults.
// A missing or malformed file is a warning, not an error: the defaults carry
// the run.
func Load(path string, log *slog.Logger) *Config {
	cfg := Default()

	raw, err := os.ReadFile(path)
	if err != nil {
		log.Warn("config not readable, using defaults", "path", path, "error", err)
		return cfg
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		log.Warn("config not parseable, using defaults", "path", path, "error", err)
		return Default()
	}

	cfg.validate(log)
	return cfg
}

// validate drops category rules whose name does not resolve to a known
// category, so the classifier never has to deal with them.
func (c *Config) validate(log *slog.Logger) {
	valid := c.Rules.Categories[:0]
	for _, rule := range c.Rules.Categories {
		if _, ok := digest.ParseCategory(rule.Name); !ok {
			log.Warn("unknown category in config, rule ignored", "name", rule.Name)
			continue
		}
		valid = append(valid, rule)
	}
	c.Rules.Categories = valid
}

// SourceEnabled reports whether an optional enabled flag allows a source.
// Absent means enabled.
func SourceEnabled(flag *bool) bool {
	return flag == nil || *flag
}
