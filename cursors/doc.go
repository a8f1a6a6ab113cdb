/*
Package cursors provides pull-based sequence cursors with a rich capability
set, and combinators over them.

A [Cursor] is a mutable position inside an ordered, possibly unbounded
sequence. Beyond single-step [Cursor.Next], every cursor supports:

  - **Bulk advance**: [Cursor.AdvanceBy] discards n elements in one call,
    which concrete sources can make far cheaper than n single steps.
  - **Size estimate**: [Cursor.SizeHint] reports a lower bound and an
    optional upper bound on the remaining length.
  - **Folding**: [Cursor.Seq] exposes the rest of the sequence as an
    iter.Seq, the short-circuiting fold; [Fold], [TryFold] and [Collect]
    build on it.
  - **Duplication**: [Cursor.Clone] produces an independent cursor at the
    same position, so one copy can be drained without moving the other.

# Deferred skipping

[Skip] wraps a cursor together with a pending discard count that is paid off
lazily, at most once, using the source's bulk advance. Repeated skips collapse
into arithmetic via [Skip.SkipMore] instead of nesting wrappers, so skipping
over a sequence many times stays a single pass.

# Exhaustion

Running out of elements is never an error. Operations report it as a value:
a false ok, a zero count, or an advance shorter than requested. Skip-count
arithmetic saturates instead of overflowing, with the saturated remainder
recovered by a follow-up call, so adversarially large counts stay exact.
*/
package cursors
