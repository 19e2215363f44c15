// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringmpsc

// pad128 separates logically distinct pieces of Ring/Channel state onto
// distinct cache regions. 64 bytes defeats same-cache-line false sharing;
// 128 additionally defeats the adjacent-line prefetcher on contemporary
// x86, which tends to pull in pairs of cache lines together. Blank pad128
// fields are placed between the producer-owned, consumer-owned, and
// control-flag regions of Ring, mirroring the teacher's own blank `pad`
// separators in spsc.go (there sized to one cache line; here sized to two
// for 128 bytes of separation). The padding separates regions; it does not
// align them to a 128-byte boundary.
type pad128 [128]byte
