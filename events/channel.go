// Package events carries game events between systems.
//
// A Channel is a bounded ring. Every subscriber reads through its own
// cursor, so one system draining events never hides them from another.
// When a subscriber falls more than the ring capacity behind, the oldest
// events it had not read are overwritten and counted as dropped.
package events

import (
	"go.uber.org/zap"
)

// DefaultCapacity is used when NewChannel is given a non-positive size.
const DefaultCapacity = 256

// Channel is a multi-reader event log. It is not safe for concurrent use;
// all systems run on the game loop goroutine.
type Channel[T any] struct {
	ring []T
	tail uint64 // sequence number of the next write
}

// Reader is a subscriber cursor obtained from Channel.Register.
type Reader struct {
	name    string
	cursor  uint64
	dropped uint64
}

// Dropped returns how many events this reader lost to overflow.
func (r *Reader) Dropped() uint64 {
	return r.dropped
}

func NewChannel[T any](capacity int) *Channel[T] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Channel[T]{ring: make([]T, capacity)}
}

// Capacity returns the number of events retained for slow readers.
func (c *Channel[T]) Capacity() int {
	return len(c.ring)
}

// Register creates a reader that sees every event published from now on.
func (c *Channel[T]) Register(name string) *Reader {
	return &Reader{name: name, cursor: c.tail}
}

// Publish appends one event.
func (c *Channel[T]) Publish(ev T) {
	c.ring[c.tail%uint64(len(c.ring))] = ev
	c.tail++
}

// Read returns the events r has not seen, oldest first, and advances r.
func (c *Channel[T]) Read(r *Reader) []T {
	if r.cursor == c.tail {
		return nil
	}
	size := uint64(len(c.ring))
	if lag := c.tail - r.cursor; lag > size {
		lost := lag - size
		r.dropped += lost
		r.cursor = c.tail - size
		zap.L().Warn("event reader fell behind",
			zap.String("reader", r.name),
			zap.Uint64("dropped", lost))
	}
	out := make([]T, 0, c.tail-r.cursor)
	for seq := r.cursor; seq < c.tail; seq++ {
		out = append(out, c.ring[seq%size])
	}
	r.cursor = c.tail
	return out
}
