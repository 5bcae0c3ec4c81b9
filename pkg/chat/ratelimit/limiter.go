// Package ratelimit bounds request rate per session before any pipeline
// work happens.
package ratelimit

import (
	"sync"
	"time"
)

const (
	// DefaultLimit and DefaultWindow implement the 10-requests-per-minute
	// admission policy.
	DefaultLimit  = 10
	DefaultWindow = 60 * time.Second

	// AnonymousKey pools callers the transport could not identify at all.
	// Callers without a session id are normally keyed by client address
	// instead, so this bucket only catches pathological requests.
	AnonymousKey = "anonymous"
)

// SlidingWindow admits at most limit requests per key within a trailing
// window. Timestamps are pruned lazily on each access; there is no
// background sweep.
type SlidingWindow struct {
	limit  int
	window time.Duration
	now    func() time.Time

	mu      sync.Mutex
	windows map[string][]time.Time
}

// New creates a limiter with the default 10/60s policy.
func New() *SlidingWindow {
	return NewWithPolicy(DefaultLimit, DefaultWindow)
}

// NewWithPolicy creates a limiter with a custom ceiling and window.
func NewWithPolicy(limit int, window time.Duration) *SlidingWindow {
	return &SlidingWindow{
		limit:   limit,
		window:  window,
		now:     time.Now,
		windows: make(map[string][]time.Time),
	}
}

// SetClock overrides the time source. Tests use this to step through the
// window deterministically.
func (l *SlidingWindow) SetClock(now func() time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.now = now
}

// Allow prunes expired timestamps for the key, then either records the
// request and admits it, or rejects it without recording.
func (l *SlidingWindow) Allow(key string) bool {
	if key == "" {
		key = AnonymousKey
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cutoff := now.Add(-l.window)

	kept := l.windows[key][:0]
	for _, t := range l.windows[key] {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}

	if len(kept) >= l.limit {
		l.windows[key] = kept
		return false
	}

	l.windows[key] = append(kept, now)
	return true
}

// Limit reports the admission ceiling per window.
func (l *SlidingWindow) Limit() int {
	return l.limit
}

// Remaining reports how many requests the key may still make in the
// current window.
func (l *SlidingWindow) Remaining(key string) int {
	if key == "" {
		key = AnonymousKey
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := l.now().Add(-l.window)
	count := 0
	for _, t := range l.windows[key] {
		if t.After(cutoff) {
			count++
		}
	}
	if count >= l.limit {
		return 0
	}
	return l.limit - count
}

// RetryAfter reports how long the key must wait before the next request
// could be admitted. Zero means the next request would be admitted now.
func (l *SlidingWindow) RetryAfter(key string) time.Duration {
	if key == "" {
		key = AnonymousKey
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cutoff := now.Add(-l.window)

	var live []time.Time
	for _, t := range l.windows[key] {
		if t.After(cutoff) {
			live = append(live, t)
		}
	}
	if len(live) < l.limit {
		return 0
	}
	return live[0].Add(l.window).Sub(now)
}
