package cursors

import "iter"

// RangeCursor is a computed cursor over the arithmetic sequence
// start, start+step, ... stopping before end. Bulk advance and counting
// are O(1) arithmetic, no elements are ever stored.
type RangeCursor struct {
	next, end, step int
}

// Range returns a cursor over [start, end) with the given stride.
// step must be non-zero; a negative step counts downward.
func Range(start, end, step int) *RangeCursor {
	if step == 0 {
		step = 1
	}
	return &RangeCursor{next: start, end: end, step: step}
}

// remaining returns the number of elements left to produce.
func (r *RangeCursor) remaining() int {
	if r.step > 0 {
		if r.next >= r.end {
			return 0
		}
		return (r.end-r.next-1)/r.step + 1
	}
	if r.next <= r.end {
		return 0
	}
	return (r.next-r.end-1)/(-r.step) + 1
}

func (r *RangeCursor) Next() (value int, ok bool) {
	if r.remaining() == 0 {
		return 0, false
	}
	value = r.next
	r.next += r.step
	return value, true
}

func (r *RangeCursor) AdvanceBy(n int) int {
	if n <= 0 {
		return 0
	}
	if rem := r.remaining(); n > rem {
		n = rem
	}
	r.next += n * r.step
	return n
}

func (r *RangeCursor) Count() int {
	n := r.remaining()
	r.next = r.end
	return n
}

func (r *RangeCursor) Last() (value int, ok bool) {
	rem := r.remaining()
	if rem == 0 {
		return 0, false
	}
	value = r.next + (rem-1)*r.step
	r.next = r.end
	return value, true
}

func (r *RangeCursor) SizeHint() (lower, upper int, bounded bool) {
	rem := r.remaining()
	return rem, rem, true
}

func (r *RangeCursor) Seq() iter.Seq[int] {
	return func(yield func(int) bool) {
		for {
			v, ok := r.Next()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

func (r *RangeCursor) Clone() Cursor[int] {
	c := *r
	return &c
}

// GenerateCursor produces elements from successive applications of a step
// function to a state value. The sequence may be unbounded, so its size
// hint has no upper bound. Clone copies the state by value; S must
// therefore be a value type (or treated as immutable).
type GenerateCursor[S, T any] struct {
	state S
	step  func(S) (S, T, bool)
	done  bool
}

// Generate returns a cursor that repeatedly calls step on the evolving
// state. step returns the next state, the produced element, and false
// when the sequence ends.
func Generate[S, T any](state S, step func(S) (S, T, bool)) *GenerateCursor[S, T] {
	return &GenerateCursor[S, T]{state: state, step: step}
}

func (g *GenerateCursor[S, T]) Next() (value T, ok bool) {
	if g.done {
		return value, false
	}
	next, v, ok := g.step(g.state)
	if !ok {
		g.done = true
		return value, false
	}
	g.state = next
	return v, true
}

func (g *GenerateCursor[S, T]) AdvanceBy(n int) int {
	advanced := 0
	for advanced < n {
		if _, ok := g.Next(); !ok {
			break
		}
		advanced++
	}
	return advanced
}

func (g *GenerateCursor[S, T]) Count() int {
	count := 0
	for {
		if _, ok := g.Next(); !ok {
			return count
		}
		count++
	}
}

func (g *GenerateCursor[S, T]) Last() (value T, ok bool) {
	for {
		v, more := g.Next()
		if !more {
			return value, ok
		}
		value, ok = v, true
	}
}

func (g *GenerateCursor[S, T]) SizeHint() (lower, upper int, bounded bool) {
	return 0, 0, false
}

func (g *GenerateCursor[S, T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := g.Next()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

func (g *GenerateCursor[S, T]) Clone() Cursor[T] {
	c := *g
	return &c
}

// EmptyCursor is a cursor over the empty sequence.
type EmptyCursor[T any] struct{}

// Empty returns a cursor that is already exhausted.
func Empty[T any]() *EmptyCursor[T] {
	return &EmptyCursor[T]{}
}

func (e *EmptyCursor[T]) Next() (value T, ok bool) { return value, false }

func (e *EmptyCursor[T]) AdvanceBy(n int) int { return 0 }

func (e *EmptyCursor[T]) Count() int { return 0 }

func (e *EmptyCursor[T]) Last() (value T, ok bool) { return value, false }

func (e *EmptyCursor[T]) SizeHint() (lower, upper int, bounded bool) { return 0, 0, true }

func (e *EmptyCursor[T]) Seq() iter.Seq[T] { return func(yield func(T) bool) {} }

func (e *EmptyCursor[T]) Clone() Cursor[T] { return &EmptyCursor[T]{} }
