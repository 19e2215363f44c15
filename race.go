// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package ringmpsc

// RaceEnabled is true when the race detector is active.
// Used by tests to skip concurrent Ring/Channel tests, which trigger false
// positives: Go's race detector cannot see the happens-before edges that
// atomix's acquire/release orderings establish across head/tail/closed.
const RaceEnabled = true
