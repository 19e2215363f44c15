// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringmpsc

// Config configures a Channel's capacity, producer bound, and metrics.
//
// Config is consumed once at construction time: RingBits determines the
// ring's storage array length (fixed and contiguous; its alignment is the
// Go allocator's) and
// MaxProducers determines the Channel's ring array length. Neither can
// change after a Channel is built — there is no dynamic resizing.
type Config struct {
	// RingBits is the power-of-two exponent for per-ring capacity
	// (capacity = 1 << RingBits). Must satisfy 0 < RingBits < 64.
	RingBits int

	// MaxProducers is the fixed upper bound on registered producers.
	// Must be >= 1.
	MaxProducers int

	// EnableMetrics turns on send/recv/batch/spin counters. When false, a
	// Ring's metrics field stays a nil pointer: no counters are ever
	// allocated or touched on the hot path.
	EnableMetrics bool
}

// DefaultConfig is the package default: 64K-slot rings, up to 16 producers,
// metrics disabled.
var DefaultConfig = Config{
	RingBits:     16,
	MaxProducers: 16,
}

// LowLatencyConfig trades ring capacity for a smaller cache footprint:
// 4K-slot rings, up to 16 producers.
var LowLatencyConfig = Config{
	RingBits:     12,
	MaxProducers: 16,
}

// HighThroughputConfig widens both axes: 256K-slot rings, up to 32
// producers.
var HighThroughputConfig = Config{
	RingBits:     18,
	MaxProducers: 32,
}

func (c Config) validate() {
	if c.RingBits <= 0 || c.RingBits >= 64 {
		panic("ringmpsc: RingBits must satisfy 0 < RingBits < 64")
	}
	if c.MaxProducers < 1 {
		panic("ringmpsc: MaxProducers must be >= 1")
	}
}

// Builder provides a fluent alternative to constructing a Config literal,
// mirroring the teacher's own Options/Builder pattern in options.go —
// adapted here from queue-algorithm selection to ring-capacity/producer-
// count/metrics selection.
type Builder struct {
	cfg Config
}

// New starts a Builder from ringBits (ring capacity = 1<<ringBits) with
// the package defaults for everything else.
func New(ringBits int) *Builder {
	b := &Builder{cfg: DefaultConfig}
	b.cfg.RingBits = ringBits
	return b
}

// MaxProducers sets the fixed upper bound on registered producers.
func (b *Builder) MaxProducers(n int) *Builder {
	b.cfg.MaxProducers = n
	return b
}

// EnableMetrics turns on send/recv/batch/spin counters.
func (b *Builder) EnableMetrics() *Builder {
	b.cfg.EnableMetrics = true
	return b
}

// Config returns the configured Config value.
func (b *Builder) Config() Config {
	return b.cfg
}
