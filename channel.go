// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringmpsc

import "code.hybscloud.com/atomix"

// Channel is the MPSC façade: a fixed-capacity array of Rings, one per
// registered producer, drained by a single consumer.
//
// This is the design's defining choice over a single shared MPSC queue
// (the teacher's own mpsc.go/mpmc.go FAA-based approach): producers never
// synchronize with one another, at the cost of O(MaxProducers * Capacity)
// memory instead of O(Capacity). The consumer pays the aggregation cost
// instead, visiting rings in registration order — cross-ring FIFO is not
// provided, only per-ring FIFO.
type Channel[T any] struct {
	rings         []Ring[T]
	producerCount atomix.Uint64
	closed        atomix.Bool
	cfg           Config
}

// NewChannel creates a Channel from cfg. Panics if cfg is invalid (see
// Config field docs).
func NewChannel[T any](cfg Config) *Channel[T] {
	cfg.validate()
	rings := make([]Ring[T], cfg.MaxProducers)
	for i := range rings {
		initRing[T](&rings[i], cfg.RingBits, cfg.EnableMetrics)
	}
	return &Channel[T]{rings: rings, cfg: cfg}
}

// NewDefaultChannel creates a Channel with DefaultConfig, mirroring the
// original C++ DefaultChannel alias.
func NewDefaultChannel[T any]() *Channel[T] {
	return NewChannel[T](DefaultConfig)
}

// RegisterProducer claims the next free ring and returns a Producer bound
// to it. Fails with ErrClosed if the channel is already closed, or with
// ErrTooManyProducers if every ring slot is already claimed. There is no
// deregistration: producer slots are one-shot for the Channel's lifetime.
func (c *Channel[T]) RegisterProducer() (Producer[T], error) {
	if c.closed.LoadAcquire() {
		return Producer[T]{}, ErrClosed
	}

	id := c.producerCount.AddAcqRel(1) - 1
	if id >= uint64(len(c.rings)) {
		c.producerCount.AddAcqRel(^uint64(0)) // fetch-sub 1
		return Producer[T]{}, ErrTooManyProducers
	}

	ring := &c.rings[id]
	ring.markActive()
	return Producer[T]{ring: ring, id: int(id)}, nil
}

// Recv drains rings in registration order into out, stopping once out is
// full or every registered ring has been visited. Messages from ring i
// appear before messages from ring j>i consumed in the same call; within
// a ring, FIFO. Returns the total count drained.
func (c *Channel[T]) Recv(out []T) int {
	total := 0
	count := c.producerCount.LoadAcquire()
	for i := uint64(0); i < count && total < len(out); i++ {
		total += c.rings[i].Recv(out[total:])
	}
	return total
}

// ConsumeAll drains every registered ring with ConsumeBatch, in
// registration order, summing the counts.
func (c *Channel[T]) ConsumeAll(handler Handler[T]) int {
	total := 0
	count := c.producerCount.LoadAcquire()
	for i := uint64(0); i < count; i++ {
		total += c.rings[i].ConsumeBatch(handler)
	}
	return total
}

// Close marks the channel closed and closes every registered ring.
// Subsequent RegisterProducer calls fail with ErrClosed. In-flight
// reserves/commits on already-registered rings remain well-defined; the
// consumer continues draining until every ring is empty.
func (c *Channel[T]) Close() {
	c.closed.StoreRelease(true)
	count := c.producerCount.LoadAcquire()
	for i := uint64(0); i < count; i++ {
		c.rings[i].Close()
	}
}

// IsClosed reports whether Close has been called.
func (c *Channel[T]) IsClosed() bool {
	return c.closed.LoadAcquire()
}

// Config returns the Config this channel was built with.
func (c *Channel[T]) Config() Config {
	return c.cfg
}

// ProducerCount reports how many producers have been registered so far.
func (c *Channel[T]) ProducerCount() int {
	return int(c.producerCount.LoadAcquire())
}

// GetMetrics sums Metrics across every registered ring.
func (c *Channel[T]) GetMetrics() Metrics {
	var m Metrics
	count := c.producerCount.LoadAcquire()
	for i := uint64(0); i < count; i++ {
		m.add(c.rings[i].GetMetrics())
	}
	return m
}
