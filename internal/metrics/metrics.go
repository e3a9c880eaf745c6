// Package metrics tracks per-run pipeline counters. A Metrics value is built
// by the caller and passed down explicitly; there is no process-wide state.
package metrics

import (
	"sync"
	"time"
)

type Metrics struct {
	mu sync.RWMutex

	// Counters
	ItemsSeen         int64
	ItemsAccepted     int64
	ItemsRejected     int64
	DuplicatesSkipped int64
	SourceFailures    int64
	RendersWritten    int64
	RenderFailures    int64
	EnrichCalls       int64
	EnrichFailures    int64

	// Timings
	LastRunDuration time.Duration
	LastRunTime     time.Time
}

// New returns a zeroed metrics collector.
func New() *Metrics {
	return &Metrics{}
}

func (m *Metrics) IncItemsSeen() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ItemsSeen++
}

func (m *Metrics) IncItemsAccepted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ItemsAccepted++
}

func (m *Metrics) IncItemsRejected() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ItemsRejected++
}

func (m *Metrics) IncDuplicatesSkipped() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DuplicatesSkipped++
}

func (m *Metrics) IncSourceFailures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SourceFailures++
}

func (m *Metrics) IncRendersWritten() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RendersWritten++
}

func (m *Metrics) IncRenderFailures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RenderFailures++
}

func (m *Metrics) IncEnrichCalls() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.EnrichCalls++
}

func (m *Metrics) IncEnrichFailures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.EnrichFailures++
}

// RecordRun stamps the run duration and completion time.
func (m *Metrics) RecordRun(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastRunDuration = d
	m.LastRunTime = time.Now()
}

// Stats returns a snapshot suitable for logging.
func (m *Metrics) Stats() map[string]any {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return map[string]any{
		"items_seen":         m.ItemsSeen,
		"items_accepted":     m.ItemsAccepted,
		"items_rejected":     m.ItemsRejected,
		"duplicates_skipped": m.DuplicatesSkipped,
		"source_failures":    m.SourceFailures,
		"renders_written":    m.RendersWritten,
		"render_failures":    m.RenderFailures,
		"enrich_calls":       m.EnrichCalls,
		"enrich_failures":    m.EnrichFailures,
		"last_run_ms":        m.LastRunDuration.Milliseconds(),
	}
}
