// Package pipeline orchestrates one digest run: fetch each source in turn,
// filter, normalize, classify and score its items into the single digest,
// then render every enabled output. The run is strictly sequential
// (Fetching, Processing, Rendering) and a failing source never stops it.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"newsbrief/internal/classify"
	"newsbrief/internal/digest"
	"newsbrief/internal/enrich"
	"newsbrief/internal/filter"
	"newsbrief/internal/metrics"
	"newsbrief/internal/report"
	"newsbrief/internal/retry"
	"newsbrief/internal/rules"
	"newsbrief/internal/seen"
	"newsbrief/internal/source"
	"newsbrief/internal/textnorm"
)

// Deps wires the pipeline's collaborators. Analyzer and Seen are optional;
// Now defaults to time.Now and exists for tests.
type Deps struct {
	Config   *rules.Config
	Sources  []source.Source
	Log      *slog.Logger
	Metrics  *metrics.Metrics
	Analyzer enrich.Analyzer
	Seen     *seen.Cache
	Now      func() time.Time
}

// Pipeline runs the aggregation-and-classification flow once per call.
type Pipeline struct {
	cfg        *rules.Config
	sources    []source.Source
	log        *slog.Logger
	m          *metrics.Metrics
	analyzer   enrich.Analyzer
	seenCache  *seen.Cache
	now        func() time.Time
	classifier *classify.Classifier
	scorer     *classify.Scorer
	accept     *filter.Filter
	pacer      *rate.Limiter
	retryCfg   retry.Config
}

// New builds the pipeline from loaded config and providers.
func New(deps Deps) *Pipeline {
	now := deps.Now
	if now == nil {
		now = time.Now
	}

	delay := time.Duration(deps.Config.Sources.FetchDelaySeconds) * time.Second
	pacer := rate.NewLimiter(rate.Inf, 1)
	if delay > 0 {
		pacer = rate.NewLimiter(rate.Every(delay), 1)
	}

	return &Pipeline{
		cfg:        deps.Config,
		sources:    deps.Sources,
		log:        deps.Log,
		m:          deps.Metrics,
		analyzer:   deps.Analyzer,
		seenCache:  deps.Seen,
		now:        now,
		classifier: classify.NewClassifier(deps.Config.Rules),
		scorer:     classify.NewScorer(deps.Config.Rules),
		accept:     filter.New(deps.Config.Rules.Filters),
		pacer:      pacer,
		retryCfg:   retry.Config{Attempts: 3, Delay: 2 * time.Second, Backoff: true},
	}
}

// Run executes one digest run. The returned digest is complete with whatever
// items were accepted; the only error a run can return is cancellation
// between sources.
func (p *Pipeline) Run(ctx context.Context) (*digest.Digest, error) {
	start := time.Now()
	d := digest.New(p.now())

	for _, src := range p.sources {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := p.pacer.Wait(ctx); err != nil {
			return nil, err
		}

		items, err := p.fetch(ctx, src)
		if err != nil {
			p.log.Warn("source failed, skipping", "source", src.Name(), "error", err)
			p.m.IncSourceFailures()
			continue
		}
		p.log.Info("source fetched", "source", src.Name(), "items", len(items))
		p.process(d, items)
	}

	analysis := p.analyze(ctx, d)
	report.New(p.cfg.Output, p.log, p.m).RenderAll(d, analysis)

	if p.seenCache != nil {
		if err := p.seenCache.Save(); err != nil {
			p.log.Warn("seen cache not saved", "error", err)
		}
	}

	p.m.RecordRun(time.Since(start))
	p.log.Info("run complete", "stats", p.m.Stats())
	return d, nil
}

func (p *Pipeline) fetch(ctx context.Context, src source.Source) ([]source.RawItem, error) {
	var items []source.RawItem
	err := retry.Do(ctx, p.retryCfg, func() error {
		fetched, err := src.Fetch(ctx)
		if err != nil {
			return err
		}
		items = fetched
		return nil
	})
	return items, err
}

// process pushes one source's items through filter, normalizer, classifier
// and scorer into the digest, preserving the source's item order.
func (p *Pipeline) process(d *digest.Digest, items []source.RawItem) {
	for _, raw := range items {
		p.m.IncItemsSeen()

		if !p.accept.Accepts(raw) {
			p.m.IncItemsRejected()
			continue
		}

		var hash string
		if p.seenCache != nil {
			hash = seen.Hash(raw.Title, raw.URL)
			if p.seenCache.Seen(hash) {
				p.m.IncDuplicatesSkipped()
				continue
			}
		}

		title := textnorm.Normalize(raw.Title)
		summary := textnorm.Normalize(raw.Summary)
		category := p.classifier.Classify(title, summary)

		d.Add(digest.Item{
			Title:       title,
			Summary:     summary,
			Category:    category,
			Source:      raw.Source,
			URL:         raw.URL,
			PublishTime: raw.PublishTime,
			Importance:  p.scorer.Score(title, summary, raw.Source),
		})
		p.m.IncItemsAccepted()

		if p.seenCache != nil {
			p.seenCache.Mark(hash, raw.Title, raw.URL, raw.Source, category.String())
		}
	}
}

// analyze asks the AI analyzer for a commentary when one is configured,
// falling back to a locally computed sentiment read so the report always
// carries an analysis section for a non-empty digest.
func (p *Pipeline) analyze(ctx context.Context, d *digest.Digest) string {
	if d.Count() == 0 {
		return ""
	}

	if p.analyzer != nil {
		p.m.IncEnrichCalls()
		analysis, err := p.analyzer.AnalyzeDigest(ctx, d.Top(p.cfg.Enrichment.MaxItems))
		if err == nil {
			return analysis
		}
		p.log.Warn("ai analysis unavailable, using local sentiment read", "error", err)
		p.m.IncEnrichFailures()
	}

	return p.localAnalysis(d)
}

func (p *Pipeline) localAnalysis(d *digest.Digest) string {
	var pos, neg, neu int
	for _, item := range d.Items() {
		switch p.scorer.Sentiment(item.Title + " " + item.Summary) {
		case classify.Positive:
			pos++
		case classify.Negative:
			neg++
		default:
			neu++
		}
	}
	return fmt.Sprintf("Sentiment across %d items: %d positive, %d negative, %d neutral.",
		d.Count(), pos, neg, neu)
}
