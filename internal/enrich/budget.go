package enrich

import "sync"

// Budget caps AI requests per run so a misconfigured loop cannot burn through
// the API quota. Zero max means unlimited.
type Budget struct {
	mu   sync.Mutex
	used int
	max  int
}

// NewBudget builds a budget allowing max requests.
func NewBudget(max int) *Budget {
	return &Budget{max: max}
}

// Allow consumes one request slot if available.
func (b *Budget) Allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.max > 0 && b.used >= b.max {
		return false
	}
	b.used++
	return true
}

// Used returns how many slots have been consumed.
func (b *Budget) Used() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.used
}
