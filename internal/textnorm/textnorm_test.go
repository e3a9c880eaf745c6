package textnorm

import "testing"

func TestNormalizeStripsMarkupAndURLs(t *testing.T) {
	in := `<p>Central bank <b>raises</b> rates</p> see https://example.com/article?id=1 now`
	got := Normalize(in)
	want := "Central bank raises rates see now"
	if got != want {
		t.Fatalf("Normalize(%q) = %q, want %q", in, got, want)
	}
}

func TestNormalizeDropsNonLinguisticRunes(t *testing.T) {
	got := Normalize("股市大涨! Stocks up 5% -- (really)")
	want := "股市大涨 Stocks up 5 really"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestNormalizeCollapsesWhitespace(t *testing.T) {
	got := Normalize("  a \t b\n\n c  ")
	if got != "a b c" {
		t.Fatalf("got %q, want %q", got, "a b c")
	}
}

func TestNormalizeEmptyInput(t *testing.T) {
	if got := Normalize(""); got != "" {
		t.Fatalf("empty input produced %q", got)
	}
	if got := Normalize("  \t\n "); got != "" {
		t.Fatalf("whitespace input produced %q", got)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"plain text already clean",
		"<div>mixed <a href='x'>markup</a> and http://u.rl text</div>",
		"символы, знаки & 中文：混合!",
		"   leading and trailing   ",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}
