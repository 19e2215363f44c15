// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringmpsc

// DefaultRing is a Ring[uint64] built with DefaultConfig's ring size, for
// zero-ceremony quick starts. Mirrors the C++ original's
// `using DefaultRing = Ring<std::uint64_t, default_config>`.
type DefaultRing = Ring[uint64]

// DefaultChannel is a Channel[uint64] built with DefaultConfig. Mirrors
// the C++ original's `using DefaultChannel = Channel<std::uint64_t, default_config>`.
type DefaultChannel = Channel[uint64]

// NewDefaultRing creates a DefaultRing with DefaultConfig's RingBits.
func NewDefaultRing() *DefaultRing {
	return NewRing[uint64](DefaultConfig.RingBits, DefaultConfig.EnableMetrics)
}
