/*
Package windows slices a cursor into consecutive, already-materialized
chunks while deferring the cost of skipping past delivered elements.

[Open] takes a window of n elements off the front of a cursor and returns
it as a [Buffer] together with a [Tail], the continuation positioned after
the window. [Tail.Advance] repeats the step: each call materializes the
next window from a clone of the current position and then merely grows the
continuation's pending skip count, so no element delivered in an earlier
window is ever re-scanned by the continuation.

	buf, tail := windows.Open(cursors.FromSlice(data), 2)
	for tail.Remaining() > 0 {
		// drain buf ...
		buf, tail = tail.Advance(2)
	}

Buffers are independent snapshots: draining a buffer never moves the
continuation, and advancing the continuation never changes a buffer that
was already handed out.
*/
package windows
