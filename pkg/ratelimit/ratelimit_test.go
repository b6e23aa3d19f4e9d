package ratelimit

import (
	"errors"
	"testing"
	"time"
)

func TestNew_Validation(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Fatal("expected error for zero rate")
	}

	l, err := New(Config{RequestsPerMin: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.burst != 1 {
		t.Errorf("expected burst floor of 1, got %d", l.burst)
	}
}

func TestAllow_Burst(t *testing.T) {
	l, err := New(Config{RequestsPerMin: 60, Burst: 3})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := l.Allow("a"); err != nil {
			t.Fatalf("request %d: unexpected error: %v", i, err)
		}
	}
	if err := l.Allow("a"); !errors.Is(err, ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited, got %v", err)
	}

	// Other keys have their own bucket.
	if err := l.Allow("b"); err != nil {
		t.Fatalf("unexpected error for second key: %v", err)
	}
}

func TestAllow_BoundedKeys(t *testing.T) {
	l, err := New(Config{RequestsPerMin: 60, TrackedKeys: 2, IdleTTL: time.Hour})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for _, k := range []string{"a", "b", "c"} {
		_ = l.Allow(k)
	}
	if got := l.Tracked(); got != 2 {
		t.Errorf("expected 2 tracked keys, got %d", got)
	}
}
