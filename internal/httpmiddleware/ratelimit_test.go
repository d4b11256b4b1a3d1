package httpmiddleware

import (
	"testing"
	"time"
)

func TestRateLimiterAllowsUpToCapacity(t *testing.T) {
	l := NewRateLimiter(2, 2)
	now := time.Now()

	if !l.allow("1.2.3.4", now) || !l.allow("1.2.3.4", now) {
		t.Fatal("first requests within capacity were rejected")
	}
	if l.allow("1.2.3.4", now) {
		t.Fatal("request over capacity was allowed")
	}

	// A different client has its own bucket.
	if !l.allow("5.6.7.8", now) {
		t.Fatal("unrelated client was rejected")
	}
}

func TestRateLimiterRefills(t *testing.T) {
	l := NewRateLimiter(1, 60)
	now := time.Now()

	if !l.allow("1.2.3.4", now) {
		t.Fatal("first request rejected")
	}
	if l.allow("1.2.3.4", now) {
		t.Fatal("second immediate request allowed")
	}
	if !l.allow("1.2.3.4", now.Add(2*time.Second)) {
		t.Fatal("request after refill window rejected")
	}
}
