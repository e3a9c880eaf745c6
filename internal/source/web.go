package source

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"newsbrief/internal/rules"
)

// WebSource scrapes items off an HTML page using configured CSS selectors.
type WebSource struct {
	name      string
	url       string
	limit     int
	selectors rules.Selectors
	client    *http.Client
}

// NewWeb builds a page source. The selector set must at least name a
// container and a title selector; items without a title are dropped.
func NewWeb(name, pageURL string, limit int, selectors rules.Selectors) *WebSource {
	return &WebSource{
		name:      name,
		url:       pageURL,
		limit:     limit,
		selectors: selectors,
		client:    &http.Client{Timeout: 15 * time.Second},
	}
}

func (s *WebSource) Name() string {
	return s.name
}

// Fetch downloads the page and extracts one raw item per container match.
func (s *WebSource) Fetch(ctx context.Context) ([]RawItem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request %s: %w", s.url, err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; newsbrief/1.0)")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("load page %s: %w", s.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("load page %s: status %d", s.url, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse page %s: %w", s.url, err)
	}

	if s.selectors.Container == "" {
		return nil, fmt.Errorf("source %s: no container selector configured", s.name)
	}

	sourceName := s.name
	if sourceName == "" {
		sourceName = hostOf(s.url)
	}

	var items []RawItem
	doc.Find(s.selectors.Container).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if s.limit > 0 && len(items) >= s.limit {
			return false
		}

		item := RawItem{Source: sourceName}
		if s.selectors.Title != "" {
			item.Title = strings.TrimSpace(sel.Find(s.selectors.Title).First().Text())
		}
		if item.Title == "" {
			return true
		}
		if s.selectors.Summary != "" {
			item.Summary = strings.TrimSpace(sel.Find(s.selectors.Summary).First().Text())
		}
		if s.selectors.URL != "" {
			if href, ok := sel.Find(s.selectors.URL).First().Attr("href"); ok {
				item.URL = resolveURL(s.url, href)
			}
		}
		if s.selectors.Time != "" {
			item.PublishTime = strings.TrimSpace(sel.Find(s.selectors.Time).First().Text())
		}

		items = append(items, item)
		return true
	})

	return items, nil
}

func resolveURL(base, href string) string {
	baseURL, err := url.Parse(base)
	if err != nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return baseURL.ResolveReference(ref).String()
}

func hostOf(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "web"
	}
	return u.Host
}
