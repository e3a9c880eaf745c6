// Package digest holds the item model and the per-run aggregate that every
// pipeline stage feeds into or reads from.
package digest

import (
	"sort"
	"time"
)

// Item is one classified, scored news entry. Items are owned by a Digest and
// are immutable once added.
type Item struct {
	Title       string
	Summary     string
	Category    Category
	Source      string
	URL         string
	PublishTime string // source-provided, never reparsed
	Importance  int    // 1..5
}

// Digest is the ordered collection of items collected by a single run.
// Insertion order is arrival order; ranking happens only in Top.
type Digest struct {
	items     []Item
	generated time.Time
}

// New creates an empty digest stamped with the generation time.
func New(generated time.Time) *Digest {
	return &Digest{generated: generated}
}

// Add appends an item, clamping importance into [1,5]. A scorer that returns
// anything outside the range is a defect; the clamp keeps the digest invariant
// intact regardless.
func (d *Digest) Add(item Item) {
	if item.Importance < 1 {
		item.Importance = 1
	}
	if item.Importance > 5 {
		item.Importance = 5
	}
	d.items = append(d.items, item)
}

// ByCategory returns items of one category in insertion order.
func (d *Digest) ByCategory(c Category) []Item {
	var out []Item
	for _, item := range d.items {
		if item.Category == c {
			out = append(out, item)
		}
	}
	return out
}

// Top returns the n most important items, descending by importance with ties
// kept in insertion order. n larger than the digest returns everything.
func (d *Digest) Top(n int) []Item {
	sorted := make([]Item, len(d.items))
	copy(sorted, d.items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Importance > sorted[j].Importance
	})
	if n > len(sorted) {
		n = len(sorted)
	}
	if n < 0 {
		n = 0
	}
	return sorted[:n]
}

// Items returns a copy of the full sequence in insertion order.
func (d *Digest) Items() []Item {
	out := make([]Item, len(d.items))
	copy(out, d.items)
	return out
}

// Count returns the total number of items.
func (d *Digest) Count() int {
	return len(d.items)
}

// GeneratedAt returns the digest's generation timestamp.
func (d *Digest) GeneratedAt() time.Time {
	return d.generated
}
