// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringmpsc

import "code.hybscloud.com/spin"

// spinLimit and yieldLimit bound Backoff's step counter. Up to and
// including spinLimit, Backoff spins with CPU pauses; above spinLimit up
// to yieldLimit it yields the OS thread; past yieldLimit it reports
// itself completed.
const (
	spinLimit  = 6  // 2^6 = 64 pauses at the top of the spin phase
	yieldLimit = 10
)

// Backoff is an adaptive waiter for Ring's slow path.
//
// It escalates from hot CPU-pause spinning (cheap, good under brief
// contention) to OS thread yields (good when the peer is descheduled),
// then reports itself completed so the caller can make a policy decision
// — retry, drop, or surface backpressure — instead of spinning forever.
//
// The zero value is ready to use. Backoff is not safe for concurrent use
// by multiple goroutines; each waiter (e.g. one reserve_with_backoff call)
// should use its own.
type Backoff struct {
	step uint32
	sw   spin.Wait
}

// Spin performs 2^min(step, spinLimit) CPU-pause iterations, then advances
// step (capped at spinLimit+1).
func (b *Backoff) Spin() {
	n := uint32(1) << min(b.step, spinLimit)
	for i := uint32(0); i < n; i++ {
		b.sw.Once()
	}
	if b.step <= spinLimit {
		b.step++
	}
}

// Snooze behaves like Spin while step <= spinLimit; past that it yields
// the OS thread instead, and advances step (capped at yieldLimit+1).
func (b *Backoff) Snooze() {
	if b.step <= spinLimit {
		b.Spin()
		return
	}
	b.sw.Once()
	if b.step <= yieldLimit {
		b.step++
	}
}

// IsCompleted reports whether this Backoff has exhausted both its spin and
// yield phases. Callers should give up — or switch to a different waiting
// strategy — once this returns true.
func (b *Backoff) IsCompleted() bool {
	return b.step > yieldLimit
}

// Reset returns the Backoff to its fresh, not-completed state.
func (b *Backoff) Reset() {
	b.step = 0
	b.sw.Reset()
}
