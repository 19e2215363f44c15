// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringmpsc

import "code.hybscloud.com/atomix"

// Ring is a bounded single-producer single-consumer queue with a
// zero-copy batch interface: producers reserve a contiguous run of slots
// and commit once per batch; the consumer obtains a contiguous readable
// span and advances once per batch.
//
// Based on the teacher's own Lamport-ring SPSC (spsc.go): the producer
// caches the consumer's head, the consumer caches the producer's tail,
// and each side only pays for a cross-core load of the peer's counter
// when its own cache says the ring looks full or empty. Capacity is a
// power of two fixed at construction; the physical slot for counter c is
// c&mask.
//
// tail/cachedHead, head/cachedTail, and the closed/active control flags
// are separated from one another by 128 bytes of padding (see pad128) so
// that producer writes, consumer writes, and control-flag writes from
// either side never share — or prefetch-adjacently share — a cache line.
// The padding separates the regions but does not align them to a 128-byte
// boundary, and the buffer's alignment is whatever the Go allocator gives.
type Ring[T any] struct {
	_          pad128
	tail       atomix.Uint64 // producer-owned, consumer-read (release on commit)
	cachedHead uint64        // producer's last-seen head; conservative under-approx

	_    pad128
	head atomix.Uint64 // consumer-owned, producer-read (release on advance)
	cachedTail uint64  // consumer's last-seen tail; conservative under-approx

	_      pad128
	closed atomix.Bool
	active atomix.Bool

	buffer  []T
	mask    uint64
	metrics *Metrics
}

// NewRing creates a Ring with capacity 1<<ringBits.
// Panics if ringBits is out of [1, 63].
func NewRing[T any](ringBits int, enableMetrics bool) *Ring[T] {
	if ringBits <= 0 || ringBits >= 64 {
		panic("ringmpsc: ringBits must satisfy 0 < ringBits < 64")
	}
	r := &Ring[T]{}
	initRing[T](r, ringBits, enableMetrics)
	return r
}

func initRing[T any](r *Ring[T], ringBits int, enableMetrics bool) {
	n := uint64(1) << uint(ringBits)
	r.buffer = make([]T, n)
	r.mask = n - 1
	if enableMetrics {
		r.metrics = &Metrics{}
	}
}

// Cap returns the ring's fixed capacity.
func (r *Ring[T]) Cap() int {
	return int(r.mask + 1)
}

// Len returns a relaxed snapshot of the current queue length. It is not
// synchronized with any particular producer or consumer operation and is
// intended for monitoring, not control flow.
func (r *Ring[T]) Len() int {
	t := r.tail.LoadRelaxed()
	h := r.head.LoadRelaxed()
	return int(t - h)
}

// IsEmpty reports a relaxed snapshot of emptiness.
func (r *Ring[T]) IsEmpty() bool {
	return r.tail.LoadRelaxed() == r.head.LoadRelaxed()
}

// IsFull reports a relaxed snapshot of fullness.
func (r *Ring[T]) IsFull() bool {
	return r.Len() >= r.Cap()
}

// IsClosed reports whether Close has been called on this ring.
func (r *Ring[T]) IsClosed() bool {
	return r.closed.LoadAcquire()
}

// Reserve claims up to n contiguous slots for the producer to write into.
// Returns (Reservation, nil) on success, or (zero, ErrWouldBlock) if n is
// not positive, n exceeds capacity, or the ring currently has less than n
// free slots. The closed flag is read only on the slow path, after the
// cached head has been refreshed: a closed ring keeps granting
// reservations while its cached head still shows room, and reports
// ErrWouldBlock once that cached room runs out, even if slots are free.
//
// The returned slice is truncated to min(n, capacity-physical-offset) so
// it never straddles the wraparound point — callers that need exactly n
// slots across a wrap loop: reserve the truncated run, Commit it, Reserve
// again for the remainder.
func (r *Ring[T]) Reserve(n int) (Reservation[T], error) {
	capacity := r.mask + 1
	if n <= 0 || uint64(n) > capacity {
		return Reservation[T]{}, ErrWouldBlock
	}

	tail := r.tail.LoadRelaxed()
	space := capacity - (tail - r.cachedHead)
	if space >= uint64(n) {
		return r.makeReservation(tail, n), nil
	}

	r.cachedHead = r.head.LoadAcquire()
	space = capacity - (tail - r.cachedHead)
	if space < uint64(n) || r.closed.LoadAcquire() {
		return Reservation[T]{}, ErrWouldBlock
	}
	return r.makeReservation(tail, n), nil
}

func (r *Ring[T]) makeReservation(tail uint64, n int) Reservation[T] {
	idx := tail & r.mask
	contiguous := uint64(n)
	if rem := r.mask + 1 - idx; rem < contiguous {
		contiguous = rem
	}
	return Reservation[T]{
		Slice: r.buffer[idx : idx+contiguous],
		Pos:   tail,
	}
}

// ReserveWithBackoff retries Reserve, snoozing a Backoff between failed
// attempts. It gives up — returning (zero, ErrWouldBlock) — once the ring
// is observed closed or the Backoff reports itself completed.
func (r *Ring[T]) ReserveWithBackoff(n int) (Reservation[T], error) {
	var b Backoff
	for !b.IsCompleted() {
		if res, err := r.Reserve(n); err == nil {
			return res, nil
		}
		if r.closed.LoadAcquire() {
			return Reservation[T]{}, ErrWouldBlock
		}
		b.Snooze()
		if r.metrics != nil {
			r.metrics.ReserveSpins++
		}
	}
	return Reservation[T]{}, ErrWouldBlock
}

// Commit publishes the first n slots of the most recent Reservation,
// making them visible to the consumer. n must be <= the reservation's
// length; committing fewer than the reserved length is allowed (e.g. a
// short Send).
func (r *Ring[T]) Commit(n int) {
	r.tail.StoreRelease(r.tail.LoadRelaxed() + uint64(n))
	if r.metrics != nil {
		r.metrics.MessagesSent += uint64(n)
		r.metrics.BatchesSent++
	}
}

// Send copies up to len(items) elements into the ring and commits them in
// one call, returning the count actually sent.
//
// Send does not loop across the physical wraparound boundary: if the
// contiguous room before wrap is smaller than len(items), Send returns
// fewer than len(items) even though more total free space exists
// elsewhere in the ring. This mirrors the C++ original's send, which has
// the same property — documented there as an open question whether
// callers are expected to loop. This package's answer: yes, callers loop.
// A full send of k items across a wrap boundary requires two Send calls.
func (r *Ring[T]) Send(items []T) int {
	res, err := r.Reserve(len(items))
	if err != nil {
		return 0
	}
	n := copy(res.Slice, items)
	r.Commit(n)
	return n
}

// Readable returns the next contiguous run of unread slots, or (nil,
// ErrWouldBlock) if the ring is currently empty. The returned slice is
// truncated at the physical end of the buffer; callers get at most one
// contiguous segment per call and should loop Readable/Advance to drain
// across a wrap boundary.
func (r *Ring[T]) Readable() ([]T, error) {
	head := r.head.LoadRelaxed()
	avail := r.cachedTail - head
	if avail == 0 {
		r.cachedTail = r.tail.LoadAcquire()
		avail = r.cachedTail - head
		if avail == 0 {
			return nil, ErrWouldBlock
		}
	}

	idx := head & r.mask
	contiguous := avail
	if rem := r.mask + 1 - idx; rem < contiguous {
		contiguous = rem
	}
	return r.buffer[idx : idx+contiguous], nil
}

// Advance releases the first n slots returned by the most recent Readable
// call back to the producer.
func (r *Ring[T]) Advance(n int) {
	r.head.StoreRelease(r.head.LoadRelaxed() + uint64(n))
	if r.metrics != nil {
		r.metrics.MessagesReceived += uint64(n)
		r.metrics.BatchesReceived++
	}
}

// Recv copies up to len(out) elements out of the ring and advances by
// that many, returning the count actually received.
func (r *Ring[T]) Recv(out []T) int {
	slice, err := r.Readable()
	if err != nil {
		return 0
	}
	n := copy(out, slice)
	r.Advance(n)
	return n
}

// ConsumeBatch invokes handler.Process once per unread slot, in order,
// then advances head to the tail snapshot in a single release-store.
// Returns the number of items processed. This is the single-head-update
// batch semantics that gives the consumer its throughput: one atomic
// store regardless of how many items were drained.
func (r *Ring[T]) ConsumeBatch(handler Handler[T]) int {
	head := r.head.LoadRelaxed()
	tail := r.tail.LoadAcquire()

	count := int(tail - head)
	if count == 0 {
		return 0
	}

	for pos := head; pos != tail; pos++ {
		handler.Process(&r.buffer[pos&r.mask])
	}

	r.head.StoreRelease(tail)
	if r.metrics != nil {
		r.metrics.MessagesReceived += uint64(count)
		r.metrics.BatchesReceived++
	}
	return count
}

// Close marks the ring closed. In-flight reservations remain valid and
// their commits still publish; the consumer continues draining until
// head==tail. Once closed, Reserve eventually returns ErrWouldBlock even
// when space is available. Close never transitions closed back to false.
func (r *Ring[T]) Close() {
	r.closed.StoreRelease(true)
}

// GetMetrics returns a snapshot of this ring's counters. Always the zero
// value when the ring was built with metrics disabled.
func (r *Ring[T]) GetMetrics() Metrics {
	if r.metrics == nil {
		return Metrics{}
	}
	return *r.metrics
}

func (r *Ring[T]) markActive() {
	r.active.StoreRelease(true)
}
