package ratelimiter

import (
	"testing"
	"time"
)

func TestFixedWindowLimiter(t *testing.T) {
	rl := NewFixedWindowLimiter(2, time.Hour)

	if ok, _ := rl.Allow("1.2.3.4"); !ok {
		t.Fatal("first request should be allowed")
	}
	if ok, _ := rl.Allow("1.2.3.4"); !ok {
		t.Fatal("second request should be allowed")
	}
	ok, retry := rl.Allow("1.2.3.4")
	if ok {
		t.Fatal("third request should be limited")
	}
	if retry != time.Hour {
		t.Fatalf("expected retry-after of one window, got %v", retry)
	}

	// Other clients are counted separately.
	if ok, _ := rl.Allow("5.6.7.8"); !ok {
		t.Fatal("different ip should be allowed")
	}
}
