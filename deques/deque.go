package deques

import (
	"iter"
	"math/bits"
)

// Deque is a generic double-ended queue over a circular array (ring buffer).
// Capacity is kept at a power of two so index wrapping is a single mask
// operation. It is the backing store for materialized window buffers, which
// are filled once at the back and then drained from the front.
type Deque[T any] struct {
	buf  []T // backing array, length == capacity (power of two)
	head int // index of the first element
	size int // number of elements in the deque
	mask int // capacity - 1, used for fast modulo: idx & mask
}

// New creates a Deque with at least the specified initial capacity.
func New[T any](initialCapacity int) *Deque[T] {
	if initialCapacity <= 0 {
		initialCapacity = 16
	}

	// round capacity up to the next power of two
	var capacity int
	if initialCapacity <= 1 {
		capacity = 1
	} else {
		capacity = 1 << uint(bits.Len(uint(initialCapacity-1)))
	}

	return &Deque[T]{
		buf:  make([]T, capacity),
		head: 0,
		size: 0,
		mask: capacity - 1,
	}
}

// grow doubles the buffer until it can hold size+capDiff elements,
// unwrapping the live region to the start of the new buffer.
func (d *Deque[T]) grow(capDiff int) {
	newCapacity := 1 << uint(bits.Len(uint(d.size+capDiff-1)))
	newBuf := make([]T, newCapacity)

	if d.head+d.size <= len(d.buf) {
		// not wrapped around
		copy(newBuf, d.buf[d.head:d.head+d.size])
	} else {
		// wrapped around: copy head..end, then start..tail
		n := copy(newBuf, d.buf[d.head:])
		tailPos := (d.head + d.size) & d.mask
		copy(newBuf[n:], d.buf[:tailPos])
	}

	clear(d.buf)
	d.buf = newBuf
	d.head = 0
	d.mask = newCapacity - 1
}

// PushBack appends a value at the back of the deque.
func (d *Deque[T]) PushBack(value T) {
	if d.size == len(d.buf) {
		d.grow(1)
	}
	d.buf[(d.head+d.size)&d.mask] = value
	d.size++
}

// PopFront removes and returns the value at the front of the deque.
func (d *Deque[T]) PopFront() (value T, ok bool) {
	if d.size == 0 {
		return value, false
	}
	value = d.buf[d.head]
	var zero T
	d.buf[d.head] = zero // clear reference
	d.head = (d.head + 1) & d.mask
	d.size--
	return value, true
}

// Front returns the value at the front of the deque without removing it.
func (d *Deque[T]) Front() (value T, ok bool) {
	if d.size == 0 {
		return value, false
	}
	return d.buf[d.head], true
}

// Len returns the number of elements in the deque.
func (d *Deque[T]) Len() int {
	return d.size
}

// IsEmpty returns true if the deque holds no elements.
func (d *Deque[T]) IsEmpty() bool {
	return d.size == 0
}

// Clear removes all elements from the deque.
func (d *Deque[T]) Clear() {
	clear(d.buf)
	d.head = 0
	d.size = 0
}

// Clone returns an independent deep copy of the deque. Popping from the
// clone has no observable effect on the original and vice versa.
func (d *Deque[T]) Clone() *Deque[T] {
	c := &Deque[T]{
		buf:  make([]T, len(d.buf)),
		head: d.head,
		size: d.size,
		mask: d.mask,
	}
	copy(c.buf, d.buf)
	return c
}

// Seq iterates the deque front-to-back without consuming it.
func (d *Deque[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < d.size; i++ {
			if !yield(d.buf[(d.head+i)&d.mask]) {
				return
			}
		}
	}
}
