package cursors

import (
	"iter"
	"math"
)

// satAdd returns a+b clamped at math.MaxInt. Inputs must be non-negative.
func satAdd(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}

// satSub returns a-b floored at zero.
func satSub(a, b int) int {
	if b >= a {
		return 0
	}
	return a - b
}

// Skip wraps a cursor whose first pending elements still have to be
// discarded. The discard is deferred: each consuming operation pays the
// pending count off at most once, through the source's bulk advance, before
// doing its own work. Stacking skips on top of each other collapses into
// counter arithmetic via [Skip.SkipMore] instead of nested traversal.
type Skip[T any] struct {
	source  Cursor[T]
	pending int
}

// NewSkip wraps source with n elements still to be discarded.
// Negative n is treated as zero.
func NewSkip[T any](source Cursor[T], n int) *Skip[T] {
	if n < 0 {
		n = 0
	}
	return &Skip[T]{source: source, pending: n}
}

// SkipMore adds n to the pending discard count without touching the source.
// The sum saturates rather than overflowing.
func (s *Skip[T]) SkipMore(n int) {
	if n <= 0 {
		return
	}
	s.pending = satAdd(s.pending, n)
}

// Pending returns the number of elements still to be discarded.
func (s *Skip[T]) Pending() int {
	return s.pending
}

// payOff discharges the pending count with a single bulk advance on the
// source. It returns false if the source ran out before the count was paid,
// in which case the effective sequence is exhausted.
func (s *Skip[T]) payOff() bool {
	if s.pending == 0 {
		return true
	}
	n := s.pending
	s.pending = 0
	return s.source.AdvanceBy(n) == n
}

func (s *Skip[T]) Next() (value T, ok bool) {
	if !s.payOff() {
		return value, false
	}
	return s.source.Next()
}

// AdvanceBy folds the pending count and the caller's n into one bulk
// advance on the source. The return value only reports progress on the
// caller's n: elements that merely discharged the pending count do not
// count. The combined step saturates; a saturated step is recovered
// exactly with a second bulk advance.
func (s *Skip[T]) AdvanceBy(n int) int {
	if n <= 0 {
		return 0
	}
	rem := n
	step := satAdd(s.pending, rem)

	advanced := s.source.AdvanceBy(step)
	if advanced < step {
		// Source exhausted mid-advance. Report only the portion beyond
		// the pending count and keep whatever part of it is still unpaid.
		visible := satSub(advanced, s.pending)
		s.pending = satSub(s.pending, advanced)
		return visible
	}
	rem -= step - s.pending
	s.pending = 0

	// step may have saturated; advance the uncounted remainder
	if rem > 0 {
		rem -= s.source.AdvanceBy(rem)
	}
	return n - rem
}

func (s *Skip[T]) Count() int {
	if !s.payOff() {
		return 0
	}
	return s.source.Count()
}

func (s *Skip[T]) Last() (value T, ok bool) {
	if !s.payOff() {
		return value, false
	}
	return s.source.Last()
}

func (s *Skip[T]) SizeHint() (lower, upper int, bounded bool) {
	lower, upper, bounded = s.source.SizeHint()
	lower = satSub(lower, s.pending)
	if bounded {
		upper = satSub(upper, s.pending)
	}
	return lower, upper, bounded
}

// Seq pays the pending count off when iteration starts, then hands the
// yield straight to the source so its own early-termination behavior is
// preserved unchanged.
func (s *Skip[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		if !s.payOff() {
			return
		}
		s.source.Seq()(yield)
	}
}

// Clone duplicates the skip, source position and pending count included.
func (s *Skip[T]) Clone() Cursor[T] {
	return &Skip[T]{source: s.source.Clone(), pending: s.pending}
}
