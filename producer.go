// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringmpsc

// Producer is a thin, copyable handle bound to one ring of a Channel. It
// is a non-owning view — duplicating a Producer does not duplicate the
// ring, and all copies refer to the same ring. Only one goroutine may use
// a given Producer (or any of its copies) at a time; Ring is single-
// producer by construction and the package does no reference counting to
// enforce that.
type Producer[T any] struct {
	ring *Ring[T]
	id   int
}

// ID returns the producer's registration index within its Channel.
func (p Producer[T]) ID() int {
	return p.id
}

// Reserve forwards to the bound ring's Reserve.
func (p Producer[T]) Reserve(n int) (Reservation[T], error) {
	return p.ring.Reserve(n)
}

// ReserveWithBackoff forwards to the bound ring's ReserveWithBackoff.
func (p Producer[T]) ReserveWithBackoff(n int) (Reservation[T], error) {
	return p.ring.ReserveWithBackoff(n)
}

// Commit forwards to the bound ring's Commit.
func (p Producer[T]) Commit(n int) {
	p.ring.Commit(n)
}

// Send forwards to the bound ring's Send.
func (p Producer[T]) Send(items []T) int {
	return p.ring.Send(items)
}
