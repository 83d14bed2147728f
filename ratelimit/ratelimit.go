// Package ratelimit provides per-client token bucket rate limiting for the
// public API endpoints.
package ratelimit

import (
	"sync"
	"time"
)

// Limit describes one endpoint's budget: max requests per window.
type Limit struct {
	Requests int
	Window   time.Duration
}

// endpoint presets matching the public site's behavior
var (
	LimitReport   = Limit{Requests: 5, Window: time.Minute}
	LimitSearch   = Limit{Requests: 30, Window: time.Minute}
	LimitTrack    = Limit{Requests: 60, Window: time.Minute}
	LimitTrending = Limit{Requests: 60, Window: time.Minute}
)

// Result reports the outcome of one Allow call.
type Result struct {
	Allowed   bool
	Remaining int
	ResetAt   time.Time
}

type bucket struct {
	tokens     float64
	lastRefill time.Time
	lastAccess time.Time
}

// Limiter hands out tokens per (client, endpoint) key. buckets refill at a
// steady rate derived from the limit; idle buckets are dropped by a cleanup
// goroutine so the map does not grow with every IP that ever visited.
type Limiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	stop    chan struct{}
	now     func() time.Time // overridable in tests
}

func NewLimiter() *Limiter {
	l := &Limiter{
		buckets: make(map[string]*bucket),
		stop:    make(chan struct{}),
		now:     time.Now,
	}
	go l.cleanupLoop(5 * time.Minute)
	return l
}

// Allow consumes a token for key under limit, reporting whether the request
// may proceed plus the headers-worth of limit state.
func (l *Limiter) Allow(key string, limit Limit) Result {
	refillRate := float64(limit.Requests) / limit.Window.Seconds()

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{tokens: float64(limit.Requests), lastRefill: now}
		l.buckets[key] = b
	}

	elapsed := now.Sub(b.lastRefill).Seconds()
	b.tokens += elapsed * refillRate
	if b.tokens > float64(limit.Requests) {
		b.tokens = float64(limit.Requests)
	}
	b.lastRefill = now
	b.lastAccess = now

	allowed := b.tokens >= 1.0
	if allowed {
		b.tokens -= 1.0
	}

	var resetAt time.Time
	if b.tokens < float64(limit.Requests) {
		deficit := float64(limit.Requests) - b.tokens
		resetAt = now.Add(time.Duration(deficit / refillRate * float64(time.Second)))
	} else {
		resetAt = now
	}

	return Result{
		Allowed:   allowed,
		Remaining: int(b.tokens),
		ResetAt:   resetAt,
	}
}

// Stop halts the cleanup goroutine.
func (l *Limiter) Stop() {
	close(l.stop)
}

func (l *Limiter) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			l.cleanup(time.Hour)
		case <-l.stop:
			return
		}
	}
}

func (l *Limiter) cleanup(maxIdle time.Duration) {
	cutoff := l.now().Add(-maxIdle)
	l.mu.Lock()
	for key, b := range l.buckets {
		if b.lastAccess.Before(cutoff) {
			delete(l.buckets, key)
		}
	}
	l.mu.Unlock()
}
