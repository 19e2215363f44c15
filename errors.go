// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringmpsc

import (
	"errors"

	"code.hybscloud.com/iox"
)

// ErrWouldBlock indicates Reserve, ReserveWithBackoff, or Readable cannot
// proceed immediately: the ring is full (producer side) or empty
// (consumer side). It is a control flow signal, not a failure — callers
// distinguish "transiently not ready" from "permanently closed" by
// checking IsClosed on the ring or Channel.
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency with
// the teacher's own re-export in errors.go.
var ErrWouldBlock = iox.ErrWouldBlock

// IsWouldBlock reports whether err indicates the operation would block.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal (not a failure).
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition.
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}

// ErrTooManyProducers is returned by Channel.RegisterProducer when every
// ring slot has already been claimed.
var ErrTooManyProducers = errors.New("ringmpsc: too many producers")

// ErrClosed is returned by Channel.RegisterProducer once the channel has
// been closed. No deregistration is provided, so producer slots are
// one-shot for a Channel's lifetime: a closed Channel never has room
// again, even if a previously registered producer stops sending.
var ErrClosed = errors.New("ringmpsc: channel closed")
