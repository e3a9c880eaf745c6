package filter

import (
	"strings"
	"testing"

	"newsbrief/internal/rules"
	"newsbrief/internal/source"
)

func testFilter() *Filter {
	return New(rules.Default().Rules.Filters)
}

func TestAcceptsValidItem(t *testing.T) {
	item := source.RawItem{
		Title:   "Central bank adjusts rates",
		Summary: "The central bank announced a small rate adjustment today.",
		Source:  "Reuters",
	}
	if !testFilter().Accepts(item) {
		t.Fatal("valid item rejected")
	}
}

func TestAcceptsIsTotal(t *testing.T) {
	// Malformed or empty records still get a boolean verdict.
	cases := []source.RawItem{
		{},
		{Title: ""},
		{Title: strings.Repeat("x", 10000), Summary: strings.Repeat("y", 10000)},
		{Source: "only source set"},
	}
	f := testFilter()
	for i, item := range cases {
		// Must not panic; empty fields fail the length bounds.
		if f.Accepts(item) {
			t.Errorf("case %d: malformed item accepted", i)
		}
	}
}

func TestRejectsTitleBlacklist(t *testing.T) {
	cfg := rules.Default().Rules.Filters
	cfg.TitleBlacklist = []string{"advertisement"}
	f := New(cfg)

	item := source.RawItem{
		Title:   "Special advertisement feature",
		Summary: "This is a perfectly long enough summary text.",
	}
	if f.Accepts(item) {
		t.Fatal("blacklisted title accepted")
	}
}

func TestRejectsSourceBlacklist(t *testing.T) {
	cfg := rules.Default().Rules.Filters
	cfg.SourceBlacklist = []string{"spamfeed"}
	f := New(cfg)

	item := source.RawItem{
		Title:   "Legitimate looking headline",
		Summary: "This is a perfectly long enough summary text.",
		Source:  "spamfeed.example",
	}
	if f.Accepts(item) {
		t.Fatal("blacklisted source accepted")
	}
}

func TestTitleLengthBounds(t *testing.T) {
	f := testFilter()
	summary := "This summary is comfortably inside the length bounds."

	if f.Accepts(source.RawItem{Title: "tiny", Summary: summary}) {
		t.Error("4-rune title accepted, min is 5")
	}
	if !f.Accepts(source.RawItem{Title: "exact", Summary: summary}) {
		t.Error("5-rune title rejected, bounds are inclusive")
	}
	if f.Accepts(source.RawItem{Title: strings.Repeat("t", 101), Summary: summary}) {
		t.Error("101-rune title accepted, max is 100")
	}
}

func TestSummaryLengthBounds(t *testing.T) {
	f := testFilter()
	title := "A reasonable title"

	if f.Accepts(source.RawItem{Title: title, Summary: "too short"}) {
		t.Error("9-rune summary accepted, min is 10")
	}
	if !f.Accepts(source.RawItem{Title: title, Summary: "just right"}) {
		t.Error("10-rune summary rejected, bounds are inclusive")
	}
	if f.Accepts(source.RawItem{Title: title, Summary: strings.Repeat("s", 501)}) {
		t.Error("501-rune summary accepted, max is 500")
	}
}

func TestLengthBoundsCountRunes(t *testing.T) {
	f := testFilter()
	// Five CJK characters: 5 runes, 15 bytes. The bound is on runes.
	if !f.Accepts(source.RawItem{Title: "中文标题字", Summary: "摘要内容足够长了吗是的"}) {
		t.Fatal("rune-counted item rejected")
	}
}
