package middleware

import (
	"testing"
	"time"
)

func TestRateLimiter_AllowsUpToLimit(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		if !rl.IsAllowed("203.0.113.7") {
			t.Fatalf("attempt %d should be allowed", i+1)
		}
	}

	if rl.IsAllowed("203.0.113.7") {
		t.Error("fourth attempt should be blocked")
	}
}

func TestRateLimiter_TracksIPsIndependently(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)

	if !rl.IsAllowed("203.0.113.7") {
		t.Fatal("first IP should be allowed")
	}
	if !rl.IsAllowed("203.0.113.8") {
		t.Error("second IP should be allowed independently")
	}
	if rl.IsAllowed("203.0.113.7") {
		t.Error("first IP should be blocked on second attempt")
	}
}

func TestRateLimiter_WindowExpires(t *testing.T) {
	rl := NewRateLimiter(1, 10*time.Millisecond)

	if !rl.IsAllowed("203.0.113.7") {
		t.Fatal("first attempt should be allowed")
	}
	if rl.IsAllowed("203.0.113.7") {
		t.Fatal("second attempt inside window should be blocked")
	}

	time.Sleep(20 * time.Millisecond)

	if !rl.IsAllowed("203.0.113.7") {
		t.Error("attempt after window expiry should be allowed")
	}
}
