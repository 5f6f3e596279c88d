// Package throttle rate-limits authentication attempts per key.
package throttle

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Defaults for login attempt limiting.
const (
	// DefaultRate is the sustained attempts-per-second allowance.
	DefaultRate = rate.Limit(1)

	// DefaultBurst is the burst allowance per key.
	DefaultBurst = 5

	// DefaultIdleAfter is how long an unused limiter is kept before
	// Sweep may evict it.
	DefaultIdleAfter = 15 * time.Minute
)

// Limiter tracks a token-bucket limiter per key (a subject identifier
// or client address), created lazily on first use.
type Limiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket

	rate      rate.Limit
	burst     int
	idleAfter time.Duration
}

type bucket struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// Option configures the Limiter.
type Option func(*Limiter)

// WithRate sets the sustained allowance and burst per key.
func WithRate(r rate.Limit, burst int) Option {
	return func(l *Limiter) {
		l.rate = r
		l.burst = burst
	}
}

// WithIdleAfter sets the idle duration after which Sweep evicts a key.
func WithIdleAfter(d time.Duration) Option {
	return func(l *Limiter) {
		l.idleAfter = d
	}
}

// New creates a per-key attempt limiter.
func New(opts ...Option) *Limiter {
	l := &Limiter{
		buckets:   make(map[string]*bucket),
		rate:      DefaultRate,
		burst:     DefaultBurst,
		idleAfter: DefaultIdleAfter,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Allow reports whether an attempt for the key may proceed now.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{lim: rate.NewLimiter(l.rate, l.burst)}
		l.buckets[key] = b
	}
	b.lastSeen = time.Now()
	l.mu.Unlock()

	return b.lim.Allow()
}

// Sweep evicts limiters idle longer than the configured duration.
// Returns the number of keys evicted.
func (l *Limiter) Sweep() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := time.Now().Add(-l.idleAfter)
	evicted := 0
	for key, b := range l.buckets {
		if b.lastSeen.Before(cutoff) {
			delete(l.buckets, key)
			evicted++
		}
	}
	return evicted
}

// Len returns the number of tracked keys.
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}
