package windows

import (
	"iter"

	"lazyseq/cursors"
	"lazyseq/deques"
)

// Buffer is a materialized window: an owned snapshot of consecutive
// elements, drained strictly front to back. It is itself a cursor, with
// exact size information.
type Buffer[T any] struct {
	items *deques.Deque[T]
}

// fill drains up to n elements from c into a fresh buffer. The buffer
// simply holds whatever was available if c runs out early.
func fill[T any](c cursors.Cursor[T], n int) *Buffer[T] {
	d := deques.New[T](n)
	for i := 0; i < n; i++ {
		v, ok := c.Next()
		if !ok {
			break
		}
		d.PushBack(v)
	}
	return &Buffer[T]{items: d}
}

// Len returns the number of elements left in the buffer.
func (b *Buffer[T]) Len() int {
	return b.items.Len()
}

func (b *Buffer[T]) Next() (value T, ok bool) {
	return b.items.PopFront()
}

func (b *Buffer[T]) AdvanceBy(n int) int {
	advanced := 0
	for advanced < n {
		if _, ok := b.items.PopFront(); !ok {
			break
		}
		advanced++
	}
	return advanced
}

func (b *Buffer[T]) Count() int {
	n := b.items.Len()
	b.items.Clear()
	return n
}

func (b *Buffer[T]) Last() (value T, ok bool) {
	for {
		v, more := b.items.PopFront()
		if !more {
			return value, ok
		}
		value, ok = v, true
	}
}

func (b *Buffer[T]) SizeHint() (lower, upper int, bounded bool) {
	n := b.items.Len()
	return n, n, true
}

func (b *Buffer[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := b.items.PopFront()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Clone deep-copies the buffer so the copy drains independently.
func (b *Buffer[T]) Clone() cursors.Cursor[T] {
	return &Buffer[T]{items: b.items.Clone()}
}

// Tail is the continuation of a windowed cursor: the same sequence,
// positioned after every window delivered so far. The position is held as
// a deferred skip, so advancing window after window accumulates a counter
// instead of re-scanning delivered elements.
type Tail[T any] struct {
	skip *cursors.Skip[T]
}

// Open materializes the first n elements of source into a buffer and
// returns it with the continuation positioned after them. Only a clone of
// the source is drained to build the buffer; the source itself ends up
// untouched inside the continuation, behind a pending skip of n.
func Open[T any](source cursors.Cursor[T], n int) (*Buffer[T], *Tail[T]) {
	if n < 0 {
		n = 0
	}
	buf := fill(source.Clone(), n)
	return buf, &Tail[T]{skip: cursors.NewSkip(source, n)}
}

// Advance materializes the next n elements into a buffer and moves the
// continuation past them. The buffer is drained from a clone of the
// current position; the continuation itself only grows its pending skip
// count. n <= 0 leaves the continuation's position unchanged and returns
// an empty buffer.
func (t *Tail[T]) Advance(n int) (*Buffer[T], *Tail[T]) {
	if n <= 0 {
		return &Buffer[T]{items: deques.New[T](1)}, t
	}
	buf := fill(t.skip.Clone(), n)
	t.skip.SkipMore(n)
	return buf, t
}

// Remaining returns the lower bound on the continuation's effective
// remaining length. For sized sources this is exact.
func (t *Tail[T]) Remaining() int {
	lower, _, _ := t.skip.SizeHint()
	return lower
}

func (t *Tail[T]) Next() (value T, ok bool) {
	return t.skip.Next()
}

func (t *Tail[T]) AdvanceBy(n int) int {
	return t.skip.AdvanceBy(n)
}

func (t *Tail[T]) Count() int {
	return t.skip.Count()
}

func (t *Tail[T]) Last() (value T, ok bool) {
	return t.skip.Last()
}

func (t *Tail[T]) SizeHint() (lower, upper int, bounded bool) {
	return t.skip.SizeHint()
}

func (t *Tail[T]) Seq() iter.Seq[T] {
	return t.skip.Seq()
}

func (t *Tail[T]) Clone() cursors.Cursor[T] {
	return &Tail[T]{skip: t.skip.Clone().(*cursors.Skip[T])}
}
