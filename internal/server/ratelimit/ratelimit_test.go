package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLimiter(t *testing.T, config *Config) *Limiter {
	t.Helper()
	l := NewLimiter(config)
	t.Cleanup(l.Stop)
	return l
}

func TestAllowWithinBurst(t *testing.T) {
	l := testLimiter(t, &Config{
		Enabled: true,
		Rules:   []Rule{{Path: "/v1/parse-cv", Method: "POST", Limit: 10, Window: time.Minute, Burst: 3}},
	})

	for i := 0; i < 3; i++ {
		allowed, info := l.Allow("1.2.3.4", "/v1/parse-cv", "POST")
		require.True(t, allowed, "request %d within burst", i+1)
		assert.Equal(t, 10, info.Limit)
	}

	allowed, info := l.Allow("1.2.3.4", "/v1/parse-cv", "POST")
	assert.False(t, allowed)
	assert.Equal(t, 0, info.Remaining)
	assert.Positive(t, info.RetryAfter)
}

func TestClientsAreIndependent(t *testing.T) {
	l := testLimiter(t, &Config{
		Enabled: true,
		Rules:   []Rule{{Path: "/v1/parse-cv", Method: "POST", Limit: 10, Window: time.Minute, Burst: 1}},
	})

	allowed, _ := l.Allow("1.2.3.4", "/v1/parse-cv", "POST")
	require.True(t, allowed)
	allowed, _ = l.Allow("1.2.3.4", "/v1/parse-cv", "POST")
	require.False(t, allowed)

	allowed, _ = l.Allow("5.6.7.8", "/v1/parse-cv", "POST")
	assert.True(t, allowed, "a different client has its own bucket")
}

func TestBucketRefills(t *testing.T) {
	// One token per 50ms so the test refills quickly.
	l := testLimiter(t, &Config{
		Enabled: true,
		Rules:   []Rule{{Path: "/v1/chat", Method: "POST", Limit: 20, Window: time.Second, Burst: 1}},
	})

	allowed, _ := l.Allow("1.2.3.4", "/v1/chat", "POST")
	require.True(t, allowed)
	allowed, _ = l.Allow("1.2.3.4", "/v1/chat", "POST")
	require.False(t, allowed)

	time.Sleep(120 * time.Millisecond)
	allowed, _ = l.Allow("1.2.3.4", "/v1/chat", "POST")
	assert.True(t, allowed, "tokens come back as time passes")
}

func TestUnlimitedRule(t *testing.T) {
	l := testLimiter(t, DefaultConfig())

	for i := 0; i < 50; i++ {
		allowed, info := l.Allow("1.2.3.4", "/health", "GET")
		require.True(t, allowed)
		assert.Zero(t, info.Limit)
	}
}

func TestDefaultRuleAppliesToUnmatchedPaths(t *testing.T) {
	l := testLimiter(t, &Config{
		Enabled:       true,
		DefaultLimit:  2,
		DefaultWindow: time.Minute,
	})

	allowed, info := l.Allow("1.2.3.4", "/v1/resume", "GET")
	require.True(t, allowed)
	assert.Equal(t, 2, info.Limit)
	allowed, _ = l.Allow("1.2.3.4", "/v1/resume", "GET")
	require.True(t, allowed)
	allowed, _ = l.Allow("1.2.3.4", "/v1/resume", "GET")
	assert.False(t, allowed)
}

func TestDisabledLimiter(t *testing.T) {
	l := testLimiter(t, &Config{Enabled: false, DefaultLimit: 1})

	for i := 0; i < 10; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/anything", "GET")
		require.True(t, allowed)
	}
}

func TestMethodScopedRule(t *testing.T) {
	l := testLimiter(t, &Config{
		Enabled:       true,
		DefaultLimit:  100,
		DefaultWindow: time.Minute,
		Rules:         []Rule{{Path: "/v1/parse-cv", Method: "POST", Limit: 1, Window: time.Minute, Burst: 1}},
	})

	allowed, _ := l.Allow("1.2.3.4", "/v1/parse-cv", "POST")
	require.True(t, allowed)
	allowed, _ = l.Allow("1.2.3.4", "/v1/parse-cv", "POST")
	require.False(t, allowed)

	allowed, info := l.Allow("1.2.3.4", "/v1/parse-cv", "OPTIONS")
	assert.True(t, allowed, "other methods fall through to the default rule")
	assert.Equal(t, 100, info.Limit)
}
