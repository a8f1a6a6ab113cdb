package cursors

import "iter"

// Cursor is a mutable position in an ordered sequence of T.
// All operations are synchronous and run to completion; exhaustion is
// reported as a value, never as an error.
type Cursor[T any] interface {
	// Next returns the next element and advances the cursor.
	// ok is false once the sequence is exhausted.
	Next() (value T, ok bool)

	// AdvanceBy discards up to n elements and returns how many were
	// actually discarded. A return equal to n means fully advanced;
	// anything smaller means the sequence ended short. n <= 0 discards
	// nothing. Implementations should make this cheaper than n calls
	// to Next when they can.
	AdvanceBy(n int) int

	// Count consumes the cursor and returns the number of remaining elements.
	Count() int

	// Last consumes the cursor and returns the final element, if any.
	Last() (value T, ok bool)

	// SizeHint reports bounds on the remaining length. lower is always
	// valid; upper is only meaningful when bounded is true.
	SizeHint() (lower, upper int, bounded bool)

	// Seq exposes the remaining elements as an iter.Seq. Iteration
	// consumes the cursor; breaking out of the range leaves the cursor
	// positioned after the last yielded element.
	Seq() iter.Seq[T]

	// Clone returns an independent cursor at the same position.
	// Draining the clone must not move the original and vice versa.
	Clone() Cursor[T]
}
