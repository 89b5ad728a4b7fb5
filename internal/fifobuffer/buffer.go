// Package fifobuffer implements the bounded FIFO buffer that backs a
// Channel. It knows nothing about locking, waiters or channel status -
// callers (the root syncchan package) hold their own mutex around every
// call.
package fifobuffer

import "errors"

// ErrFull and ErrEmpty are returned by Add/Remove when the buffer cannot
// satisfy the request. Callers are expected to check Len/Cap before
// calling Add/Remove on the fast paths; these errors exist for defensive
// callers and for the one internal-error surface spec'd at the channel
// layer (an Add on a full buffer, or a Remove on an empty one, is always a
// caller bug, not a runtime condition).
var (
	ErrFull  = errors.New("fifobuffer: buffer is full")
	ErrEmpty = errors.New("fifobuffer: buffer is empty")
)

// Buffer is a fixed-capacity, non-overwriting FIFO queue of opaque
// payloads. Unlike a ring buffer that overwrites the oldest entry once
// full, Buffer never loses data: Add fails with ErrFull instead.
type Buffer struct {
	data     []any
	head     int // index of the oldest element
	size     int
	capacity int
}

// New creates a new Buffer with the given fixed capacity.
func New(capacity int) *Buffer {
	if capacity <= 0 {
		panic("fifobuffer: capacity must be greater than 0")
	}

	return &Buffer{
		data:     make([]any, capacity),
		capacity: capacity,
	}
}

// Add appends a payload at the tail of the queue.
func (b *Buffer) Add(payload any) error {
	if b.size == b.capacity {
		return ErrFull
	}

	tail := (b.head + b.size) % b.capacity
	b.data[tail] = payload
	b.size++
	return nil
}

// Remove pops the oldest payload off the head of the queue.
func (b *Buffer) Remove() (any, error) {
	if b.size == 0 {
		return nil, ErrEmpty
	}

	payload := b.data[b.head]
	b.data[b.head] = nil
	b.head = (b.head + 1) % b.capacity
	b.size--
	return payload, nil
}

// Len returns the current number of queued payloads.
func (b *Buffer) Len() int {
	return b.size
}

// Cap returns the fixed capacity of the buffer.
func (b *Buffer) Cap() int {
	return b.capacity
}

// Free drops all references held by the buffer so they can be garbage
// collected. The buffer must not be used afterwards.
func (b *Buffer) Free() {
	b.data = nil
	b.head = 0
	b.size = 0
}
