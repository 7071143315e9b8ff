package core

import (
	"testing"
	"time"
)

func TestTickerFirstAdvancePrimes(t *testing.T) {
	tk := NewTicker(60)
	if n := tk.Advance(time.Unix(0, 0)); n != 1 {
		t.Fatalf("first advance returned %d ticks, want 1", n)
	}
}

func TestTickerPacesToTPS(t *testing.T) {
	tk := NewTicker(10) // one tick per 100ms
	now := time.Unix(0, 0)
	tk.Advance(now)

	now = now.Add(50 * time.Millisecond)
	if n := tk.Advance(now); n != 0 {
		t.Fatalf("tick due after 50ms at 10 TPS, got %d", n)
	}
	now = now.Add(60 * time.Millisecond)
	if n := tk.Advance(now); n != 1 {
		t.Fatalf("want exactly 1 tick after 110ms, got %d", n)
	}
}

func TestTickerCapsCatchUp(t *testing.T) {
	tk := NewTicker(60)
	now := time.Unix(0, 0)
	tk.Advance(now)

	// A multi-second stall must not replay the whole backlog.
	if n := tk.Advance(now.Add(5 * time.Second)); n > 4 {
		t.Fatalf("stall replayed %d ticks", n)
	}
	// And the debt is forgiven, not carried into the next frame.
	if n := tk.Advance(now.Add(5*time.Second + time.Millisecond)); n != 0 {
		t.Fatalf("debt survived the cap: %d ticks", n)
	}
}
