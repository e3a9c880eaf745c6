package report

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"newsbrief/internal/metrics"
	"newsbrief/internal/rules"
)

const testTemplate = `<html><body>
<h1>{{.Title}}</h1>
<p>{{.TotalNews}} items in {{.CategoriesCount}} categories</p>
{{range .Sections}}<h2>{{.Label}}</h2>{{range .Items}}<p>{{.Title}}</p>{{end}}{{end}}
{{if .Analysis}}<div>{{.Analysis}}</div>{{end}}
</body></html>`

func writeTemplate(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "digest.html")
	if err := os.WriteFile(path, []byte(testTemplate), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRenderHTML(t *testing.T) {
	out, err := RenderHTML(testDigest(), "Quiet markets.", writeTemplate(t))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(out)

	if !strings.Contains(html, "Morning News Digest - 2025-03-10") {
		t.Error("title missing")
	}
	if !strings.Contains(html, "3 items in 2 categories") {
		t.Error("counts missing")
	}
	if !strings.Contains(html, "<h2>Economy</h2>") {
		t.Error("section label missing")
	}
	if !strings.Contains(html, "Quiet markets.") {
		t.Error("analysis missing")
	}
}

func TestRenderHTMLMissingTemplate(t *testing.T) {
	if _, err := RenderHTML(testDigest(), "", filepath.Join(t.TempDir(), "absent.html")); err == nil {
		t.Fatal("expected error for missing template file")
	}
}

func TestRenderAllSkipsBrokenFormat(t *testing.T) {
	dir := t.TempDir()
	out := rules.Output{
		Dir:  dir,
		Text: rules.Format{Enabled: true, FilenameTemplate: "digest_{date}.txt"},
		JSON: rules.Format{Enabled: true, FilenameTemplate: "data_{date}.json"},
		// Enabled but pointing at a template that does not exist.
		HTML: rules.Format{Enabled: true, FilenameTemplate: "digest_{date}.html", TemplateFile: filepath.Join(dir, "absent.html")},
	}

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := metrics.New()
	New(out, log, m).RenderAll(testDigest(), "")

	for _, name := range []string{"digest_20250310.txt", "data_20250310.json"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("%s not written: %v", name, err)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "digest_20250310.html")); err == nil {
		t.Error("html written despite missing template")
	}

	if m.RendersWritten != 2 || m.RenderFailures != 1 {
		t.Errorf("renders_written = %d, render_failures = %d", m.RendersWritten, m.RenderFailures)
	}
}
