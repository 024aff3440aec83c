package middleware

import (
	"testing"
	"time"
)

func TestTokenBucketExhaustsBurst(t *testing.T) {
	tb := NewTokenBucket(0.001, 3)

	for i := 0; i < 3; i++ {
		if !tb.Allow() {
			t.Fatalf("request %d within burst should be allowed", i+1)
		}
	}
	if tb.Allow() {
		t.Fatal("request beyond burst should be rejected")
	}
}

func TestTokenBucketRefills(t *testing.T) {
	tb := NewTokenBucket(100, 1)

	if !tb.Allow() {
		t.Fatal("first request should be allowed")
	}
	if tb.Allow() {
		t.Fatal("bucket should be empty immediately after")
	}

	time.Sleep(50 * time.Millisecond)

	if !tb.Allow() {
		t.Fatal("bucket should refill over time")
	}
}

func TestStaleLimiterCleanup(t *testing.T) {
	limitersMu.Lock()
	limiters = make(map[string]*TokenBucket)
	limitersMu.Unlock()

	getLimiter("ip:10.0.0.1", DefaultRateLimiterConfig)

	cleanStaleLimiters(0)

	limitersMu.RLock()
	remaining := len(limiters)
	limitersMu.RUnlock()
	if remaining != 0 {
		t.Fatalf("expected stale limiters removed, %d left", remaining)
	}
}
