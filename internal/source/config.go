package source

import "newsbrief/internal/rules"

// FromConfig builds the enabled providers in config order: RSS feeds first,
// then scraped pages, matching the order the pipeline visits them.
func FromConfig(cfg rules.Sources) []Source {
	var sources []Source
	for _, rss := range cfg.RSS {
		if !rules.SourceEnabled(rss.Enabled) {
			continue
		}
		sources = append(sources, NewRSS(rss.Name, rss.URL, cfg.MaxItemsPerSource))
	}
	for _, web := range cfg.Web {
		if !rules.SourceEnabled(web.Enabled) {
			continue
		}
		sources = append(sources, NewWeb(web.Name, web.URL, cfg.MaxItemsPerSource, web.Selectors))
	}
	return sources
}
