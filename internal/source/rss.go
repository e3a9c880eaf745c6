package source

import (
	"context"
	"fmt"

	"github.com/mmcdole/gofeed"
)

// RSSSource reads items from a single feed endpoint.
type RSSSource struct {
	name   string
	url    string
	limit  int
	parser *gofeed.Parser
}

// NewRSS builds a feed source. limit caps how many entries one fetch yields;
// zero or negative means no cap.
func NewRSS(name, url string, limit int) *RSSSource {
	return &RSSSource{
		name:   name,
		url:    url,
		limit:  limit,
		parser: gofeed.NewParser(),
	}
}

func (s *RSSSource) Name() string {
	return s.name
}

// Fetch downloads and parses the feed, mapping entries to raw items. The
// configured source name wins over the feed's self-reported title so that
// blacklists and authority rules stay stable.
func (s *RSSSource) Fetch(ctx context.Context) ([]RawItem, error) {
	feed, err := s.parser.ParseURLWithContext(s.url, ctx)
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", s.url, err)
	}

	sourceName := s.name
	if sourceName == "" {
		sourceName = feed.Title
	}

	items := make([]RawItem, 0, len(feed.Items))
	for _, entry := range feed.Items {
		if s.limit > 0 && len(items) >= s.limit {
			break
		}
		items = append(items, RawItem{
			Title:       entry.Title,
			Summary:     entry.Description,
			Source:      sourceName,
			URL:         entry.Link,
			PublishTime: entry.Published,
		})
	}
	return items, nil
}
