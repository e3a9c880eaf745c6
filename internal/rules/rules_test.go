package rules

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	cfg := Load(filepath.Join(t.TempDir(), "absent.yaml"), discard())
	assert.Equal(t, Default(), cfg)
}

func TestLoadMalformedFileFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("categories: [not: {valid"), 0o644))

	cfg := Load(path, discard())
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	doc := `
categories:
  - name: sports
    keywords: [goal, referee]
importance:
  critical_keywords: [meltdown]
  title_length_threshold: 30
filters:
  min_title_length: 3
output:
  text:
    enabled: false
    filename_template: "brief_{date}.txt"
`
	path := filepath.Join(t.TempDir(), "override.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cfg := Load(path, discard())

	require.Len(t, cfg.Rules.Categories, 1)
	assert.Equal(t, "sports", cfg.Rules.Categories[0].Name)
	assert.Equal(t, []string{"meltdown"}, cfg.Rules.Importance.CriticalKeywords)
	assert.Equal(t, 30, cfg.Rules.Importance.TitleLengthThreshold)
	assert.Equal(t, 3, cfg.Rules.Filters.MinTitleLength)

	// Untouched sections keep their defaults.
	assert.Equal(t, 100, cfg.Rules.Filters.MaxTitleLength)
	assert.Equal(t, Default().Output.JSON, cfg.Output.JSON)

	assert.False(t, cfg.Output.Text.Enabled)
	assert.Equal(t, "brief_{date}.txt", cfg.Output.Text.FilenameTemplate)
}

func TestLoadDropsUnknownCategories(t *testing.T) {
	doc := `
categories:
  - name: astrology
    keywords: [moon]
  - name: economy
    keywords: [market]
`
	path := filepath.Join(t.TempDir(), "unknown.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cfg := Load(path, discard())
	require.Len(t, cfg.Rules.Categories, 1)
	assert.Equal(t, "economy", cfg.Rules.Categories[0].Name)
}

func TestDefaultFilterBounds(t *testing.T) {
	f := Default().Rules.Filters
	assert.Equal(t, 5, f.MinTitleLength)
	assert.Equal(t, 100, f.MaxTitleLength)
	assert.Equal(t, 10, f.MinSummaryLength)
	assert.Equal(t, 500, f.MaxSummaryLength)
	assert.Empty(t, f.TitleBlacklist)
	assert.Empty(t, f.SourceBlacklist)
}

func TestSourceEnabled(t *testing.T) {
	assert.True(t, SourceEnabled(nil))
	on, off := true, false
	assert.True(t, SourceEnabled(&on))
	assert.False(t, SourceEnabled(&off))
}
