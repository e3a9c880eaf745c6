// Package report projects a digest into the configured output formats.
// Formats are independent: a failure in one is logged and the others still
// render from the same digest snapshot.
package report

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"newsbrief/internal/digest"
	"newsbrief/internal/metrics"
	"newsbrief/internal/rules"
)

const noItemsMessage = "No news items today."

// Renderer writes the enabled output files for one run.
type Renderer struct {
	out rules.Output
	log *slog.Logger
	m   *metrics.Metrics
}

// New builds a renderer over the output configuration.
func New(out rules.Output, log *slog.Logger, m *metrics.Metrics) *Renderer {
	return &Renderer{out: out, log: log, m: m}
}

// RenderAll writes every enabled format. Per-format errors are warnings, not
// failures of the run.
func (r *Renderer) RenderAll(d *digest.Digest, analysis string) {
	if r.out.Text.Enabled {
		r.render("text", r.out.Text, func(path string) error {
			return os.WriteFile(path, []byte(GenerateReport(d, analysis)), 0o644)
		}, d)
	}
	if r.out.JSON.Enabled {
		r.render("json", r.out.JSON, func(path string) error {
			data, err := ExportJSON(d)
			if err != nil {
				return err
			}
			return os.WriteFile(path, data, 0o644)
		}, d)
	}
	if r.out.HTML.Enabled {
		r.render("html", r.out.HTML, func(path string) error {
			data, err := RenderHTML(d, analysis, r.out.HTML.TemplateFile)
			if err != nil {
				return err
			}
			return os.WriteFile(path, data, 0o644)
		}, d)
	}
}

func (r *Renderer) render(format string, cfg rules.Format, write func(path string) error, d *digest.Digest) {
	path := filepath.Join(r.out.Dir, Filename(cfg.FilenameTemplate, d.GeneratedAt()))
	if err := write(path); err != nil {
		r.log.Warn("output format skipped", "format", format, "path", path, "error", err)
		r.m.IncRenderFailures()
		return
	}
	r.log.Info("output written", "format", format, "path", path)
	r.m.IncRendersWritten()
}

// Filename substitutes the {date} placeholder as YYYYMMDD.
func Filename(template string, t time.Time) string {
	return strings.ReplaceAll(template, "{date}", t.Format("20060102"))
}

// GenerateReport renders the plain-text digest. An empty digest yields the
// fixed no-items sentence with no sections.
func GenerateReport(d *digest.Digest, analysis string) string {
	if d.Count() == 0 {
		return noItemsMessage
	}

	var b strings.Builder
	rule := strings.Repeat("=", 50)
	sep := strings.Repeat("-", 20)

	fmt.Fprintf(&b, "Morning News Digest - %s\n", d.GeneratedAt().Format("2006-01-02"))
	b.WriteString(rule + "\n\n")

	top := d.Top(3)
	if len(top) > 0 {
		b.WriteString("Top Stories\n")
		b.WriteString(sep + "\n")
		writeItems(&b, top)
	}

	for _, c := range digest.Categories() {
		items := d.ByCategory(c)
		if len(items) == 0 {
			continue
		}
		b.WriteString(c.Label() + "\n")
		b.WriteString(sep + "\n")
		writeItems(&b, items)
	}

	if analysis != "" {
		b.WriteString("Editor's Analysis\n")
		b.WriteString(sep + "\n")
		b.WriteString(analysis + "\n\n")
	}

	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "Collected %d items today.\n", d.Count())
	fmt.Fprintf(&b, "Generated at %s", d.GeneratedAt().Format("2006-01-02 15:04:05"))

	return b.String()
}

func writeItems(b *strings.Builder, items []digest.Item) {
	for i, item := range items {
		fmt.Fprintf(b, "%d. %s\n", i+1, item.Title)
		if item.Summary != "" {
			fmt.Fprintf(b, "   %s\n", item.Summary)
		}
		fmt.Fprintf(b, "   Source: %s\n\n", item.Source)
	}
}
