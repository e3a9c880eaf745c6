// Package classify assigns categories, importance scores and sentiment labels
// using the loaded rule tables. Everything in here is a pure function of the
// rules and the input text.
package classify

import (
	"strings"
	"unicode/utf8"

	"newsbrief/internal/digest"
	"newsbrief/internal/rules"
)

// containsAny reports whether text contains any keyword, case-insensitively.
// Plain substring containment, no word boundaries: multi-word phrases work the
// same way as single keywords.
func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		k = strings.ToLower(strings.TrimSpace(k))
		if k == "" {
			continue
		}
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

func haystack(title, summary string) string {
	return strings.ToLower(title + " " + summary)
}

type categoryRule struct {
	category digest.Category
	keywords []string
}

// Classifier maps an item's text to exactly one category.
type Classifier struct {
	rules []categoryRule
}

// NewClassifier resolves the configured category rules. Rule order is the
// priority order; rules with unresolvable names were already dropped at load.
func NewClassifier(set rules.Set) *Classifier {
	c := &Classifier{}
	for _, rule := range set.Categories {
		cat, ok := digest.ParseCategory(rule.Name)
		if !ok {
			continue
		}
		c.rules = append(c.rules, categoryRule{category: cat, keywords: rule.Keywords})
	}
	return c
}

// Classify returns the first category whose keyword set hits the combined
// title and summary. Items that match nothing land in Society.
func (c *Classifier) Classify(title, summary string) digest.Category {
	text := haystack(title, summary)
	for _, rule := range c.rules {
		if containsAny(text, rule.keywords) {
			return rule.category
		}
	}
	return digest.Society
}

// Scorer assigns the 1-5 importance score and, for the comment variant, a
// sentiment label.
type Scorer struct {
	importance rules.Importance
	sentiment  rules.Sentiment
}

// NewScorer builds a scorer over the loaded rule set.
func NewScorer(set rules.Set) *Scorer {
	return &Scorer{importance: set.Importance, sentiment: set.Sentiment}
}

// Score walks a strict decision list and returns at the first tier that
// matches. The order is load-bearing: a critical keyword outranks an
// authoritative source, which outranks an important keyword.
func (s *Scorer) Score(title, summary, source string) int {
	text := haystack(title, summary)

	if containsAny(text, s.importance.CriticalKeywords) {
		return 5
	}
	if s.isAuthoritative(source) {
		return 4
	}
	if containsAny(text, s.importance.ImportantKeywords) {
		return 3
	}
	if utf8.RuneCountInString(title) > s.importance.TitleLengthThreshold {
		return 3
	}
	return 2
}

func (s *Scorer) isAuthoritative(source string) bool {
	src := strings.ToLower(strings.TrimSpace(source))
	if src == "" {
		return false
	}
	for _, name := range s.importance.AuthoritativeSources {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		if strings.Contains(src, name) {
			return true
		}
	}
	return false
}

// Sentiment is the label assigned to comment text.
type Sentiment int

const (
	Neutral Sentiment = iota
	Positive
	Negative
)

// Label returns the display label for rendering.
func (s Sentiment) Label() string {
	switch s {
	case Positive:
		return "Positive"
	case Negative:
		return "Negative"
	default:
		return "Neutral"
	}
}

// Sentiment counts positive and negative keyword hits and compares them.
// A tie, including zero hits on both sides, is Neutral.
func (s *Scorer) Sentiment(text string) Sentiment {
	lower := strings.ToLower(text)

	count := func(keywords []string) int {
		n := 0
		for _, k := range keywords {
			k = strings.ToLower(strings.TrimSpace(k))
			if k != "" && strings.Contains(lower, k) {
				n++
			}
		}
		return n
	}

	pos := count(s.sentiment.Positive)
	neg := count(s.sentiment.Negative)
	switch {
	case pos > neg:
		return Positive
	case neg > pos:
		return Negative
	default:
		return Neutral
	}
}
