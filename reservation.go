// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringmpsc

// Reservation is an ephemeral handle yielded to a producer by Reserve.
//
// Slice is a contiguous writable span within the ring's buffer, possibly
// shorter than the requested n if the requested run would wrap past the
// physical end of the buffer — callers that need exactly n slots loop
// (reserve the truncated run, commit it, reserve again). Pos is the
// counter value the reservation starts at.
//
// A Reservation is valid until the matching Commit is issued. Holding one
// across an intervening Reserve/Commit pair on the same Ring is a contract
// violation (undefined behavior): Ring is single-producer, and Reserve
// assumes no other in-flight reservation exists.
type Reservation[T any] struct {
	Slice []T
	Pos   uint64
}

// Len returns the number of slots in this reservation.
func (r Reservation[T]) Len() int {
	return len(r.Slice)
}
