// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package ringmpsc provides a lock-free multi-producer/single-consumer
// channel decomposed into N independent single-producer/single-consumer
// bounded ring buffers — one ring per registered producer.
//
// # Why per-producer rings
//
// A single shared MPSC queue requires producers to coordinate with each
// other on every enqueue (at minimum, a fetch-and-add on a shared tail).
// This package avoids that coordination entirely: each registered
// producer gets its own bounded SPSC ring, so producers never touch each
// other's memory. The price is paid in space (N rings instead of one) and
// in the consumer, which now aggregates across rings instead of reading a
// single queue.
//
// # Quick Start
//
//	ch := ringmpsc.NewChannel[Event](ringmpsc.DefaultConfig)
//
//	producer, err := ch.RegisterProducer()
//	if err != nil {
//	    // ErrTooManyProducers or ErrClosed
//	}
//
//	// Producer side (one goroutine per registered producer)
//	res, err := producer.Reserve(4)
//	if err == nil {
//	    copy(res.Slice, events[:4])
//	    producer.Commit(len(res.Slice))
//	}
//
//	// Consumer side (exactly one goroutine for the whole Channel)
//	var out [256]Event
//	n := ch.Recv(out[:])
//
// # Batch consumption
//
// ConsumeAll (and Ring.ConsumeBatch underneath it) hands every unread
// item in a ring to a Handler and advances the ring's head exactly once
// for the whole batch — one release-store regardless of batch size:
//
//	type summer struct{ total int64 }
//
//	func (s *summer) Process(item *int64) { s.total += *item }
//
//	s := &summer{}
//	n := ch.ConsumeAll(s)
//
// # Backpressure and closing
//
// Reserve, ReserveWithBackoff, and Readable return ErrWouldBlock — not a
// panic, not a blocking call — when a ring is momentarily full or empty.
// ReserveWithBackoff retries with an escalating Backoff (CPU pauses, then
// OS thread yields) before giving up. Callers choose what "give up" means:
// retry later, drop the message, or surface backpressure upstream.
//
// Closing a Channel (Close) closes every registered ring. A closed ring
// keeps draining — in-flight reservations still commit, and the consumer
// keeps reading until head==tail — but Reserve on a closed ring
// eventually reports ErrWouldBlock even when physical space remains.
// RegisterProducer on a closed Channel fails with ErrClosed. There is no
// deregistration: once claimed, a ring slot belongs to that producer for
// the Channel's lifetime.
//
// # Cache layout
//
// Ring places the producer-owned counters (tail, cachedHead), the
// consumer-owned counters (head, cachedTail), and the shared control
// flags (closed, active) in three regions separated by 128 bytes of
// padding (see pad128); the regions are not aligned to 128-byte
// boundaries. 64 bytes would defeat same-line false sharing; 128 additionally
// defeats the common adjacent-line prefetcher behavior on contemporary
// x86, which tends to pull in pairs of lines together.
//
// # Metrics
//
// Config.EnableMetrics turns on per-ring send/recv/batch/spin counters.
// When false, a Ring's metrics field is a nil pointer — no counters are
// ever allocated or updated, and GetMetrics always returns the zero
// value. Channel.GetMetrics sums Metrics across every registered ring.
//
// # Presets
//
//	ringmpsc.DefaultConfig         // 64K-slot rings, 16 producers
//	ringmpsc.LowLatencyConfig      // 4K-slot rings, 16 producers
//	ringmpsc.HighThroughputConfig  // 256K-slot rings, 32 producers
//
// # Race detection
//
// Go's race detector tracks explicit synchronization primitives (mutex,
// channels, WaitGroup) but cannot observe happens-before relationships
// established through atomic memory orderings alone. Ring and Channel use
// acquire/release orderings (via atomix) to protect non-atomic buffer
// slots; the algorithms are correct, but the race detector may report
// false positives because it cannot track synchronization carried solely
// by atomic operations on separate variables. Tests incompatible with
// race detection are excluded via the RaceEnabled constant (see
// race.go/race_off.go).
//
// # Dependencies
//
// This package uses code.hybscloud.com/iox for semantic errors,
// code.hybscloud.com/atomix for atomic primitives with explicit memory
// ordering, and code.hybscloud.com/spin for the CPU pause primitive
// backing Backoff.
package ringmpsc
