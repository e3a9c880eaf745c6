// Package filter decides which raw items may enter the digest.
package filter

import (
	"strings"
	"unicode/utf8"

	"newsbrief/internal/rules"
	"newsbrief/internal/source"
)

// Filter applies blacklist and length-bound rules to raw items. All checks
// must pass; any single failure rejects the item.
type Filter struct {
	cfg rules.Filters
}

// New builds a filter over the loaded thresholds.
func New(cfg rules.Filters) *Filter {
	return &Filter{cfg: cfg}
}

// Accepts is total: any record, however malformed, gets a boolean verdict.
func (f *Filter) Accepts(item source.RawItem) bool {
	if containsAny(item.Title, f.cfg.TitleBlacklist) {
		return false
	}
	if containsAny(item.Source, f.cfg.SourceBlacklist) {
		return false
	}

	titleLen := utf8.RuneCountInString(item.Title)
	if titleLen < f.cfg.MinTitleLength || titleLen > f.cfg.MaxTitleLength {
		return false
	}

	summaryLen := utf8.RuneCountInString(item.Summary)
	if summaryLen < f.cfg.MinSummaryLength || summaryLen > f.cfg.MaxSummaryLength {
		return false
	}

	return true
}

func containsAny(text string, substrings []string) bool {
	for _, s := range substrings {
		if s != "" && strings.Contains(text, s) {
			return true
		}
	}
	return false
}
