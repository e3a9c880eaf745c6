package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"newsbrief/internal/enrich"
	"newsbrief/internal/logging"
	"newsbrief/internal/metrics"
	"newsbrief/internal/pipeline"
	"newsbrief/internal/rules"
	"newsbrief/internal/seen"
	"newsbrief/internal/source"
)

const defaultConfigPath = "configs/newsbrief.yaml"

func main() {
	log := logging.New(os.Getenv("LOG_LEVEL"))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	configPath := os.Getenv("NEWSBRIEF_CONFIG")
	if configPath == "" {
		configPath = defaultConfigPath
	}
	cfg := rules.Load(configPath, log)

	var analyzer enrich.Analyzer
	if cfg.Enrichment.Enabled {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			log.Warn("enrichment enabled but GEMINI_API_KEY not set, skipping")
		} else {
			gemini, err := enrich.NewGemini(ctx, apiKey, cfg.Enrichment.Model,
				cfg.Enrichment.MaxItems, enrich.NewBudget(cfg.Enrichment.MaxRequests))
			if err != nil {
				log.Warn("gemini client unavailable, continuing without analysis", "error", err)
			} else {
				defer gemini.Close()
				analyzer = gemini
			}
		}
	}

	var seenCache *seen.Cache
	if cfg.SeenCache.Enabled {
		seenCache = seen.NewCache(cfg.SeenCache.Path, cfg.SeenCache.TTLHours)
		if err := seenCache.Load(); err != nil {
			log.Warn("seen cache not loaded, starting empty", "error", err)
		}
	}

	p := pipeline.New(pipeline.Deps{
		Config:   cfg,
		Sources:  source.FromConfig(cfg.Sources),
		Log:      log,
		Metrics:  metrics.New(),
		Analyzer: analyzer,
		Seen:     seenCache,
	})

	d, err := p.Run(ctx)
	if err != nil {
		log.Error("run aborted", "error", err)
		os.Exit(1)
	}
	log.Info("digest generated", "items", d.Count())
}
