package core

import "time"

// Ticker converts wall-clock time into a number of due simulation ticks so a
// frontend can redraw faster than it simulates. Frame loops call Advance once
// per frame and step the grid that many times.
type Ticker struct {
	step    time.Duration
	debt    time.Duration
	last    time.Time
	maxTick int
}

// NewTicker returns a Ticker targeting the given ticks per second.
func NewTicker(tps int) *Ticker {
	t := &Ticker{maxTick: 4}
	t.SetTPS(tps)
	return t
}

// SetTPS changes the tick rate. It is safe to call between frames.
func (t *Ticker) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	t.step = time.Second / time.Duration(tps)
}

// Advance reports how many ticks are due at time now. Catch-up after a stall
// is capped so a suspended frontend does not fast-forward the world.
func (t *Ticker) Advance(now time.Time) int {
	if t.last.IsZero() {
		t.last = now
		return 1
	}
	t.debt += now.Sub(t.last)
	t.last = now

	n := 0
	for t.debt >= t.step && n < t.maxTick {
		t.debt -= t.step
		n++
	}
	if n == t.maxTick {
		t.debt = 0
	}
	return n
}
