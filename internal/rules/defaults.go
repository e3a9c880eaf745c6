package rules

// Default returns the built-in configuration used when no file is present.
// Keyword tables follow classification priority order; the last resort for an
// item that matches nothing is the Society category, handled by the classifier.
func Default() *Config {
	return &Config{
		Rules: Set{
			Categories: []CategoryRule{
				{Name: "politics", Keywords: []string{
					"government", "parliament", "election", "policy", "legislation",
					"minister", "cabinet", "president", "referendum",
				}},
				{Name: "economy", Keywords: []string{
					"economy", "market", "stock", "bank", "finance", "gdp",
					"investment", "trade", "export", "import", "inflation",
				}},
				{Name: "technology", Keywords: []string{
					"technology", "internet", "ai", "artificial intelligence",
					"chip", "software", "innovation", "digital", "5g", "startup",
				}},
				{Name: "education", Keywords: []string{
					"education", "school", "student", "teacher", "exam",
					"university", "curriculum", "tuition",
				}},
				{Name: "sports", Keywords: []string{
					"sports", "football", "basketball", "olympic", "match",
					"athlete", "champion", "tournament", "league",
				}},
				{Name: "health", Keywords: []string{
					"health", "medical", "hospital", "disease", "vaccine",
					"medicine", "doctor", "treatment", "outbreak",
				}},
				{Name: "environment", Keywords: []string{
					"environment", "climate", "pollution", "emission", "ecology",
					"wildlife", "renewable", "sustainability",
				}},
				{Name: "culture", Keywords: []string{
					"culture", "art", "film", "music", "literature", "museum",
					"heritage", "festival",
				}},
				{Name: "international", Keywords: []string{
					"international", "diplomacy", "united nations", "global",
					"foreign", "summit", "embassy", "sanctions",
				}},
			},
			Importance: Importance{
				CriticalKeywords: []string{
					"breaking", "urgent", "emergency", "crisis", "historic",
					"unprecedented",
				},
				ImportantKeywords: []string{
					"policy", "regulation", "announced", "released", "launch",
					"record", "breakthrough", "reform",
				},
				AuthoritativeSources: []string{
					"Xinhua", "Reuters", "Associated Press", "BBC", "AFP",
				},
				TitleLengthThreshold: 20,
			},
			Filters: Filters{
				MinTitleLength:   5,
				MaxTitleLength:   100,
				MinSummaryLength: 10,
				MaxSummaryLength: 500,
			},
			Sentiment: Sentiment{
				Positive: []string{
					"rise", "gain", "bullish", "buy", "optimistic", "opportunity",
					"strong", "rally", "growth", "upgrade",
				},
				Negative: []string{
					"fall", "drop", "bearish", "sell", "pessimistic", "risk",
					"weak", "loss", "crash", "downgrade",
				},
			},
		},
		Sources: Sources{
			FetchDelaySeconds: 1,
			MaxItemsPerSource: 10,
		},
		Output: Output{
			Dir:  ".",
			Text: Format{Enabled: true, FilenameTemplate: "news_digest_{date}.txt"},
			JSON: Format{Enabled: true, FilenameTemplate: "news_data_{date}.json"},
			HTML: Format{
				Enabled:          false,
				FilenameTemplate: "news_digest_{date}.html",
				TemplateFile:     "templates/digest.html",
			},
		},
		Enrichment: Enrichment{
			Enabled:     false,
			Model:       "gemini-1.5-flash",
			MaxRequests: 3,
			MaxItems:    10,
		},
		SeenCache: SeenCache{
			Enabled:  false,
			Path:     "seen_items.json",
			TTLHours: 48,
		},
	}
}
