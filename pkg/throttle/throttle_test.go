package throttle

import (
	"testing"
	"time"

	"golang.org/x/time/rate"
)

func TestLimiter_BurstThenDeny(t *testing.T) {
	l := New(WithRate(rate.Limit(0.001), 3))

	for i := 0; i < 3; i++ {
		if !l.Allow("alice") {
			t.Fatalf("Allow() #%d = false within burst, want true", i)
		}
	}
	if l.Allow("alice") {
		t.Error("Allow() after burst = true, want false")
	}
}

func TestLimiter_KeysIndependent(t *testing.T) {
	l := New(WithRate(rate.Limit(0.001), 1))

	if !l.Allow("alice") {
		t.Fatal("Allow(alice) = false, want true")
	}
	if l.Allow("alice") {
		t.Error("second Allow(alice) = true, want false")
	}
	if !l.Allow("bob") {
		t.Error("Allow(bob) = false, want true; keys must not share buckets")
	}
}

func TestLimiter_Refill(t *testing.T) {
	l := New(WithRate(rate.Limit(100), 1))

	if !l.Allow("alice") {
		t.Fatal("Allow() = false, want true")
	}
	if l.Allow("alice") {
		t.Fatal("Allow() immediately after = true, want false")
	}

	time.Sleep(20 * time.Millisecond)

	if !l.Allow("alice") {
		t.Error("Allow() after refill window = false, want true")
	}
}

func TestLimiter_Sweep(t *testing.T) {
	l := New(WithIdleAfter(time.Nanosecond))

	l.Allow("alice")
	l.Allow("bob")
	if l.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", l.Len())
	}

	time.Sleep(time.Millisecond)

	if n := l.Sweep(); n != 2 {
		t.Errorf("Sweep() = %d, want 2", n)
	}
	if l.Len() != 0 {
		t.Errorf("Len() = %d after sweep, want 0", l.Len())
	}
}

func TestLimiter_SweepKeepsActive(t *testing.T) {
	l := New(WithIdleAfter(time.Hour))

	l.Allow("alice")
	if n := l.Sweep(); n != 0 {
		t.Errorf("Sweep() = %d, want 0", n)
	}
	if l.Len() != 1 {
		t.Errorf("Len() = %d, want 1", l.Len())
	}
}

func TestLimiter_Defaults(t *testing.T) {
	l := New()

	// Default burst admits exactly DefaultBurst immediate attempts.
	allowed := 0
	for i := 0; i < DefaultBurst+1; i++ {
		if l.Allow("alice") {
			allowed++
		}
	}
	if allowed != DefaultBurst {
		t.Errorf("allowed %d immediate attempts, want %d", allowed, DefaultBurst)
	}
}
