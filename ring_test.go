// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringmpsc_test

import (
	"errors"
	"testing"

	"code.hybscloud.com/ringmpsc"
)

func TestRingCap(t *testing.T) {
	r := ringmpsc.NewRing[int](4, false)
	if got := r.Cap(); got != 16 {
		t.Fatalf("Cap: got %d, want 16", got)
	}
}

func TestRingReserveCommitReadableAdvance(t *testing.T) {
	r := ringmpsc.NewRing[int](4, false) // capacity 16

	res, err := r.Reserve(4)
	if err != nil {
		t.Fatalf("Reserve(4): %v", err)
	}
	if res.Len() != 4 {
		t.Fatalf("Reserve(4).Len(): got %d, want 4", res.Len())
	}
	copy(res.Slice, []int{100, 200, 300, 400})
	r.Commit(4)

	if got := r.Len(); got != 4 {
		t.Fatalf("Len: got %d, want 4", got)
	}

	span, err := r.Readable()
	if err != nil {
		t.Fatalf("Readable: %v", err)
	}
	want := []int{100, 200, 300, 400}
	if len(span) != len(want) {
		t.Fatalf("Readable: got len %d, want %d", len(span), len(want))
	}
	for i, v := range want {
		if span[i] != v {
			t.Fatalf("Readable[%d]: got %d, want %d", i, span[i], v)
		}
	}

	r.Advance(4)
	if !r.IsEmpty() {
		t.Fatalf("IsEmpty: got false after draining, want true")
	}
}

func TestRingReserveZeroAndTooLarge(t *testing.T) {
	r := ringmpsc.NewRing[int](4, false) // capacity 16

	if _, err := r.Reserve(0); !errors.Is(err, ringmpsc.ErrWouldBlock) {
		t.Fatalf("Reserve(0): got %v, want ErrWouldBlock", err)
	}
	if _, err := r.Reserve(17); !errors.Is(err, ringmpsc.ErrWouldBlock) {
		t.Fatalf("Reserve(C+1): got %v, want ErrWouldBlock", err)
	}
}

func TestRingReserveFullCapacityOnEmptyRing(t *testing.T) {
	r := ringmpsc.NewRing[int](4, false) // capacity 16

	res, err := r.Reserve(16)
	if err != nil {
		t.Fatalf("Reserve(C): %v", err)
	}
	if res.Len() != 16 {
		t.Fatalf("Reserve(C).Len(): got %d, want 16", res.Len())
	}
}

func TestRingFillToCapacityThenAdvanceReusesSlot(t *testing.T) {
	r := ringmpsc.NewRing[int](4, false) // capacity 16

	for i := 0; i < 16; i++ {
		res, err := r.Reserve(1)
		if err != nil {
			t.Fatalf("Reserve(1) #%d: %v", i, err)
		}
		res.Slice[0] = i
		r.Commit(1)
	}

	if _, err := r.Reserve(1); !errors.Is(err, ringmpsc.ErrWouldBlock) {
		t.Fatalf("Reserve(1) on full ring: got %v, want ErrWouldBlock", err)
	}

	r.Advance(1)

	if _, err := r.Reserve(1); err != nil {
		t.Fatalf("Reserve(1) after advance: %v", err)
	}
}

func TestRingWraparoundTruncatesReservation(t *testing.T) {
	r := ringmpsc.NewRing[int](2, false) // capacity 4

	// Move tail to 3, one slot before the physical end, so the next reserve
	// straddles the wrap.
	res, err := r.Reserve(3)
	if err != nil {
		t.Fatalf("Reserve(3): %v", err)
	}
	r.Commit(3)
	if _, err := r.Readable(); err != nil {
		t.Fatalf("Readable: %v", err)
	}
	r.Advance(3)
	_ = res

	// tail is now at 3; only 1 contiguous slot remains before wraparound.
	res2, err := r.Reserve(2)
	if err != nil {
		t.Fatalf("Reserve(2) at wrap boundary: %v", err)
	}
	if res2.Len() != 1 {
		t.Fatalf("Reserve(2) at wrap boundary: got len %d, want 1 (truncated)", res2.Len())
	}
}

func TestRingClosePreventsNewReservesButDrainsInFlight(t *testing.T) {
	r := ringmpsc.NewRing[int](4, false)

	res, err := r.Reserve(2)
	if err != nil {
		t.Fatalf("Reserve(2): %v", err)
	}
	res.Slice[0], res.Slice[1] = 1, 2

	r.Close()
	if !r.IsClosed() {
		t.Fatalf("IsClosed: got false, want true")
	}

	// In-flight reservation still commits after close.
	r.Commit(2)

	span, err := r.Readable()
	if err != nil {
		t.Fatalf("Readable after close: %v", err)
	}
	if len(span) != 2 {
		t.Fatalf("Readable after close: got len %d, want 2", len(span))
	}
	r.Advance(2)

	// Reserve reads the closed flag only on its slow path, so it may keep
	// succeeding while its cached head still shows room. It must report
	// ErrWouldBlock once that cached room is used up, with slots still free.
	for i := 0; ; i++ {
		if i > r.Cap() {
			t.Fatalf("Reserve after close: never reported ErrWouldBlock")
		}
		res, err := r.Reserve(1)
		if err == nil {
			res.Slice[0] = i
			r.Commit(1)
			continue
		}
		if !errors.Is(err, ringmpsc.ErrWouldBlock) {
			t.Fatalf("Reserve after close: got %v, want ErrWouldBlock", err)
		}
		if r.Len() >= r.Cap() {
			t.Fatalf("Reserve after close: got len %d, want free slots left", r.Len())
		}
		break
	}
}

func TestRingSendAndRecv(t *testing.T) {
	r := ringmpsc.NewRing[int](4, false)

	items := []int{10, 20, 30, 40}
	if n := r.Send(items); n != 4 {
		t.Fatalf("Send: got %d, want 4", n)
	}

	out := make([]int, 4)
	if n := r.Recv(out); n != 4 {
		t.Fatalf("Recv: got %d, want 4", n)
	}
	for i, v := range items {
		if out[i] != v {
			t.Fatalf("Recv[%d]: got %d, want %d", i, out[i], v)
		}
	}
}

func TestRingSendDoesNotLoopAcrossWrap(t *testing.T) {
	r := ringmpsc.NewRing[int](2, false) // capacity 4

	// Move tail to 3 so only 1 contiguous slot remains before wraparound.
	if n := r.Send([]int{1, 2, 3}); n != 3 {
		t.Fatalf("Send: got %d, want 3", n)
	}
	out := make([]int, 3)
	r.Recv(out)

	// Now tail=3, head=3; contiguous room before wrap is 1 slot.
	n := r.Send([]int{100, 200})
	if n != 1 {
		t.Fatalf("Send across wrap: got %d, want 1 (truncated, no loop)", n)
	}
}

func TestRingConsumeBatch(t *testing.T) {
	r := ringmpsc.NewRing[int](4, false)

	for i := 0; i < 10; i++ {
		res, err := r.Reserve(1)
		if err != nil {
			t.Fatalf("Reserve(1) #%d: %v", i, err)
		}
		res.Slice[0] = i * 10
		r.Commit(1)
	}

	var sum int
	handler := ringmpsc.HandlerFunc[int](func(item *int) { sum += *item })
	n := r.ConsumeBatch(handler)
	if n != 10 {
		t.Fatalf("ConsumeBatch: got count %d, want 10", n)
	}
	if sum != 450 {
		t.Fatalf("ConsumeBatch: got sum %d, want 450", sum)
	}
	if !r.IsEmpty() {
		t.Fatalf("IsEmpty after ConsumeBatch: got false, want true")
	}
}

func TestRingConsumeBatchOnEmptyReturnsZero(t *testing.T) {
	r := ringmpsc.NewRing[int](4, false)
	handler := ringmpsc.HandlerFunc[int](func(item *int) { t.Fatalf("unexpected call") })
	if n := r.ConsumeBatch(handler); n != 0 {
		t.Fatalf("ConsumeBatch on empty: got %d, want 0", n)
	}
}

func TestRingMetricsConservation(t *testing.T) {
	r := ringmpsc.NewRing[int](4, true)

	for i := 0; i < 5; i++ {
		res, err := r.Reserve(1)
		if err != nil {
			t.Fatalf("Reserve(1) #%d: %v", i, err)
		}
		res.Slice[0] = i
		r.Commit(1)
	}
	handler := ringmpsc.HandlerFunc[int](func(item *int) {})
	r.ConsumeBatch(handler)

	m := r.GetMetrics()
	if m.MessagesSent != m.MessagesReceived {
		t.Fatalf("metrics conservation: sent=%d received=%d", m.MessagesSent, m.MessagesReceived)
	}
	if m.MessagesSent != 5 {
		t.Fatalf("MessagesSent: got %d, want 5", m.MessagesSent)
	}
}

func TestRingMetricsDisabledAlwaysZero(t *testing.T) {
	r := ringmpsc.NewRing[int](4, false)
	res, _ := r.Reserve(1)
	res.Slice[0] = 1
	r.Commit(1)

	m := r.GetMetrics()
	if m != (ringmpsc.Metrics{}) {
		t.Fatalf("GetMetrics with metrics disabled: got %+v, want zero value", m)
	}
}

func TestRingReserveWithBackoffSucceedsOnRoom(t *testing.T) {
	r := ringmpsc.NewRing[int](4, false)
	res, err := r.ReserveWithBackoff(4)
	if err != nil {
		t.Fatalf("ReserveWithBackoff: %v", err)
	}
	if res.Len() != 4 {
		t.Fatalf("ReserveWithBackoff: got len %d, want 4", res.Len())
	}
}

func TestRingReserveWithBackoffGivesUpOnFullRing(t *testing.T) {
	r := ringmpsc.NewRing[int](4, false) // capacity 16
	for i := 0; i < 16; i++ {
		res, err := r.Reserve(1)
		if err != nil {
			t.Fatalf("fill Reserve(1) #%d: %v", i, err)
		}
		_ = res
		r.Commit(1)
	}

	if _, err := r.ReserveWithBackoff(1); !errors.Is(err, ringmpsc.ErrWouldBlock) {
		t.Fatalf("ReserveWithBackoff on full ring: got %v, want ErrWouldBlock", err)
	}
}
