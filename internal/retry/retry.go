// Package retry wraps flaky calls, mainly source fetches, with bounded
// re-attempts.
package retry

import (
	"context"
	"fmt"
	"time"
)

type Config struct {
	Attempts int
	Delay    time.Duration
	Backoff  bool // linear backoff: attempt * Delay
}

// Do runs fn until it succeeds, attempts are exhausted, or ctx is cancelled.
func Do(ctx context.Context, cfg Config, fn func() error) error {
	if cfg.Attempts < 1 {
		cfg.Attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= cfg.Attempts; attempt++ {
		lastErr = fn()
		if lastErr == nil {
			return nil
		}
		if attempt == cfg.Attempts {
			break
		}

		delay := cfg.Delay
		if cfg.Backoff {
			delay = time.Duration(attempt) * cfg.Delay
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	return fmt.Errorf("failed after %d attempts: %w", cfg.Attempts, lastErr)
}
