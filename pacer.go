// pacer.go - hybrid coarse-sleep-then-busy-wait timing

package main

import "time"

// coarseSleepSlack is how far short of the target we stop trusting
// time.Sleep's scheduling granularity and switch to a tight busy-wait for
// the remainder. The Go scheduler's sleep wakeups are typically accurate to
// within a millisecond or two on most platforms; spending the last slice of
// a pacing interval spinning trades CPU for precision, the same tradeoff the
// reference implementation's spin-sleeper makes.
const coarseSleepSlack = 2 * time.Millisecond

// sleepRemaining blocks for approximately d, sleeping coarsely for all but
// the last coarseSleepSlack and then busy-waiting against time.Now() for the
// rest. Used by Cycle's pacing step; factored out so it can stand in for
// Pacer.Wait without an extra allocation on the hot path.
func sleepRemaining(d time.Duration) {
	if d <= 0 {
		return
	}
	deadline := time.Now().Add(d)
	if d > coarseSleepSlack {
		time.Sleep(d - coarseSleepSlack)
	}
	for time.Now().Before(deadline) {
		// busy-wait tail for sub-scheduler-granularity precision
	}
}

// Pacer wraps the same coarse-sleep-then-busy-wait strategy as a reusable
// value, for host code (the interrupt scheduler, the frame loop) that needs
// to wait on its own schedule rather than per-CPU-cycle.
type Pacer struct {
	next time.Time
}

// NewPacer returns a Pacer whose first Wait call blocks until roughly
// `interval` from now.
func NewPacer(interval time.Duration) *Pacer {
	return &Pacer{next: time.Now().Add(interval)}
}

// Wait blocks until the Pacer's next scheduled instant, then advances the
// schedule by interval. If the caller fell behind schedule (next is already
// in the past), Wait returns immediately and resyncs to now plus interval
// rather than trying to catch up all at once.
func (p *Pacer) Wait(interval time.Duration) {
	now := time.Now()
	if p.next.Before(now) {
		p.next = now.Add(interval)
		return
	}
	sleepRemaining(p.next.Sub(now))
	p.next = p.next.Add(interval)
}
