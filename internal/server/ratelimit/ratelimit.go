// Package ratelimit provides per-client token bucket rate limiting for the
// HTTP API. The expensive endpoints (extraction and chat both call out to an
// LLM provider) get tighter limits than plain document edits.
package ratelimit

import (
	"sync"
	"time"
)

// Rule limits one endpoint: at most Limit requests per Window, with bursts
// up to Burst. Limit <= 0 means unlimited.
type Rule struct {
	Path   string
	Method string
	Limit  int
	Window time.Duration
	Burst  int
}

// Config holds limiter configuration.
type Config struct {
	Enabled       bool
	DefaultLimit  int
	DefaultWindow time.Duration
	Rules         []Rule
}

// DefaultConfig limits the LLM-backed endpoints hard and everything else
// loosely.
func DefaultConfig() *Config {
	return &Config{
		Enabled:       true,
		DefaultLimit:  300,
		DefaultWindow: time.Minute,
		Rules: []Rule{
			{Path: "/v1/parse-cv", Method: "POST", Limit: 10, Window: time.Minute, Burst: 3},
			{Path: "/v1/chat", Method: "POST", Limit: 30, Window: time.Minute, Burst: 5},
			{Path: "/health", Method: "GET", Limit: 0},
		},
	}
}

// Info reports the limit state returned alongside each decision.
type Info struct {
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

type bucket struct {
	mu         sync.Mutex
	capacity   int
	refillRate float64 // tokens per second
	tokens     float64
	lastRefill time.Time
	lastAccess time.Time
}

func (b *bucket) take(now time.Time) (bool, int, time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.tokens = min(float64(b.capacity), b.tokens+now.Sub(b.lastRefill).Seconds()*b.refillRate)
	b.lastRefill = now
	b.lastAccess = now

	allowed := b.tokens >= 1.0
	if allowed {
		b.tokens -= 1.0
	}

	reset := now
	if b.tokens < float64(b.capacity) {
		missing := float64(b.capacity) - b.tokens
		reset = now.Add(time.Duration(missing / b.refillRate * float64(time.Second)))
	}
	return allowed, int(b.tokens), reset
}

// Limiter manages one token bucket per client and endpoint.
type Limiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	config  *Config
	done    chan struct{}
}

// NewLimiter creates a limiter and starts its idle-bucket sweeper.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = DefaultConfig()
	}
	l := &Limiter{
		buckets: make(map[string]*bucket),
		config:  config,
		done:    make(chan struct{}),
	}
	if config.Enabled {
		go l.sweep()
	}
	return l
}

// Allow reports whether a request from clientID to the endpoint may proceed.
func (l *Limiter) Allow(clientID, path, method string) (bool, Info) {
	if !l.config.Enabled {
		return true, Info{}
	}

	rule := l.match(path, method)
	if rule.Limit <= 0 {
		return true, Info{}
	}

	b := l.bucketFor(clientID+":"+method+":"+path, rule)
	allowed, remaining, reset := b.take(time.Now())

	info := Info{Limit: rule.Limit, Remaining: remaining, ResetTime: reset}
	if !allowed {
		if ra := time.Until(reset); ra > 0 {
			info.RetryAfter = ra
		}
	}
	return allowed, info
}

// Stop terminates the sweeper goroutine.
func (l *Limiter) Stop() {
	close(l.done)
}

func (l *Limiter) match(path, method string) Rule {
	for _, r := range l.config.Rules {
		if r.Path == path && (r.Method == "" || r.Method == method) {
			return r
		}
	}
	return Rule{Limit: l.config.DefaultLimit, Window: l.config.DefaultWindow}
}

func (l *Limiter) bucketFor(key string, rule Rule) *bucket {
	l.mu.Lock()
	defer l.mu.Unlock()

	if b, ok := l.buckets[key]; ok {
		return b
	}

	capacity := rule.Burst
	if capacity <= 0 {
		capacity = rule.Limit
	}
	window := rule.Window
	if window <= 0 {
		window = time.Minute
	}
	b := &bucket{
		capacity:   capacity,
		refillRate: float64(rule.Limit) / window.Seconds(),
		tokens:     float64(capacity),
		lastRefill: time.Now(),
		lastAccess: time.Now(),
	}
	l.buckets[key] = b
	return b
}

// sweep drops buckets idle for over an hour so long-running servers do not
// accumulate one bucket per client forever.
func (l *Limiter) sweep() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-l.done:
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-time.Hour)
			l.mu.Lock()
			for key, b := range l.buckets {
				b.mu.Lock()
				idle := b.lastAccess.Before(cutoff)
				b.mu.Unlock()
				if idle {
					delete(l.buckets, key)
				}
			}
			l.mu.Unlock()
		}
	}
}
