// Package ring provides a fixed-capacity FIFO buffer that evicts its
// oldest entry once full.
package ring

// Buffer is a bounded, ordered sequence of values.
//
// The zero value is not usable; create buffers with New.
type Buffer[T any] struct {
	buf   []T
	start int
	size  int
}

// New creates an empty buffer holding at most capacity values. New panics
// if capacity is not positive.
func New[T any](capacity int) *Buffer[T] {
	if capacity < 1 {
		panic("ring: capacity must be positive")
	}
	return &Buffer[T]{buf: make([]T, capacity)}
}

// Append adds v as the newest entry, evicting the oldest when full.
func (b *Buffer[T]) Append(v T) {
	idx := (b.start + b.size) % len(b.buf)
	b.buf[idx] = v
	if b.size < len(b.buf) {
		b.size++
		return
	}
	b.start = (b.start + 1) % len(b.buf)
}

// Len returns the number of stored values.
func (b *Buffer[T]) Len() int {
	return b.size
}

// Cap returns the maximum number of values kept.
func (b *Buffer[T]) Cap() int {
	return len(b.buf)
}

// Values returns the stored values from oldest to newest.
func (b *Buffer[T]) Values() []T {
	out := make([]T, b.size)
	for i := range out {
		out[i] = b.buf[(b.start+i)%len(b.buf)]
	}
	return out
}

// Last returns the newest value.
func (b *Buffer[T]) Last() (T, bool) {
	if b.size == 0 {
		var zero T
		return zero, false
	}
	return b.buf[(b.start+b.size-1)%len(b.buf)], true
}

// Clear drops every value.
func (b *Buffer[T]) Clear() {
	clear(b.buf)
	b.start = 0
	b.size = 0
}
