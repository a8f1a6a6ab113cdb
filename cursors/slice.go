package cursors

import "iter"

// SliceCursor is a memory-backed cursor over a slice. It advances by
// reslicing, so AdvanceBy, Count and Last are O(1) and Clone is a cheap
// value copy sharing the (read-only) backing array.
type SliceCursor[T any] struct {
	data []T
}

// FromSlice returns a cursor positioned at the first element of items.
// The cursor only ever reads from the slice; callers must not mutate the
// shared backing array while clones are live.
func FromSlice[T any](items []T) *SliceCursor[T] {
	return &SliceCursor[T]{data: items}
}

func (s *SliceCursor[T]) Next() (value T, ok bool) {
	if len(s.data) == 0 {
		return value, false
	}
	value = s.data[0]
	s.data = s.data[1:]
	return value, true
}

func (s *SliceCursor[T]) AdvanceBy(n int) int {
	if n <= 0 {
		return 0
	}
	if n > len(s.data) {
		n = len(s.data)
	}
	s.data = s.data[n:]
	return n
}

func (s *SliceCursor[T]) Count() int {
	n := len(s.data)
	s.data = nil
	return n
}

func (s *SliceCursor[T]) Last() (value T, ok bool) {
	if len(s.data) == 0 {
		return value, false
	}
	value = s.data[len(s.data)-1]
	s.data = nil
	return value, true
}

func (s *SliceCursor[T]) SizeHint() (lower, upper int, bounded bool) {
	return len(s.data), len(s.data), true
}

func (s *SliceCursor[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for len(s.data) > 0 {
			v := s.data[0]
			s.data = s.data[1:]
			if !yield(v) {
				return
			}
		}
	}
}

func (s *SliceCursor[T]) Clone() Cursor[T] {
	return &SliceCursor[T]{data: s.data}
}
