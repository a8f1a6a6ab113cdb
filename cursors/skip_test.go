package cursors_test

import (
	"fmt"
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"lazyseq/cursors"
)

// ints returns 1..n.
func ints(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestSkip_YieldsSuffix(t *testing.T) {
	const length = 8
	for skip := 0; skip <= length; skip++ {
		t.Run(fmt.Sprintf("Skip%d", skip), func(t *testing.T) {
			s := cursors.NewSkip[int](cursors.FromSlice(ints(length)), skip)
			require.Equal(t, ints(length)[skip:], cursors.Collect[int](s))
		})
	}

	t.Run("BeyondLength", func(t *testing.T) {
		s := cursors.NewSkip[int](cursors.FromSlice(ints(3)), 10)
		require.Empty(t, cursors.Collect[int](s))
		_, ok := s.Next()
		require.False(t, ok)
	})
}

func TestSkip_Next(t *testing.T) {
	s := cursors.NewSkip[int](cursors.FromSlice(ints(5)), 2)

	v, ok := s.Next()
	require.True(t, ok)
	require.Equal(t, 3, v)
	require.Equal(t, 0, s.Pending(), "pending is paid off exactly once")

	v, ok = s.Next()
	require.True(t, ok)
	require.Equal(t, 4, v)
}

// Composing two deferred skips must be observationally identical to a single
// skip of the combined count, for every consuming operation.
func TestSkip_ComposedEquivalence(t *testing.T) {
	const length = 12

	composed := func(s1, s2 int) *cursors.Skip[int] {
		s := cursors.NewSkip[int](cursors.FromSlice(ints(length)), s1)
		s.SkipMore(s2)
		return s
	}
	single := func(s1, s2 int) *cursors.Skip[int] {
		return cursors.NewSkip[int](cursors.FromSlice(ints(length)), s1+s2)
	}

	for s1 := 0; s1 <= 7; s1++ {
		for s2 := 0; s2 <= 7; s2++ {
			t.Run(fmt.Sprintf("%d+%d", s1, s2), func(t *testing.T) {
				t.Run("Next", func(t *testing.T) {
					a, aok := composed(s1, s2).Next()
					b, bok := single(s1, s2).Next()
					require.Equal(t, b, a)
					require.Equal(t, bok, aok)
				})
				t.Run("Count", func(t *testing.T) {
					require.Equal(t, single(s1, s2).Count(), composed(s1, s2).Count())
				})
				t.Run("Last", func(t *testing.T) {
					a, aok := composed(s1, s2).Last()
					b, bok := single(s1, s2).Last()
					require.Equal(t, b, a)
					require.Equal(t, bok, aok)
				})
				t.Run("Fold", func(t *testing.T) {
					sum := func(acc, v int) int { return acc + v }
					require.Equal(t,
						cursors.Fold[int](single(s1, s2), 0, sum),
						cursors.Fold[int](composed(s1, s2), 0, sum))
				})
				t.Run("AdvanceBy", func(t *testing.T) {
					for _, n := range []int{0, 1, 3, length, length * 2} {
						a := composed(s1, s2)
						b := single(s1, s2)
						require.Equal(t, b.AdvanceBy(n), a.AdvanceBy(n), "n=%d", n)
						av, aok := a.Next()
						bv, bok := b.Next()
						require.Equal(t, bv, av, "n=%d", n)
						require.Equal(t, bok, aok, "n=%d", n)
					}
				})
				t.Run("SizeHint", func(t *testing.T) {
					al, au, ab := composed(s1, s2).SizeHint()
					bl, bu, bb := single(s1, s2).SizeHint()
					require.Equal(t, bl, al)
					require.Equal(t, bu, au)
					require.Equal(t, bb, ab)
				})
			})
		}
	}
}

// Bounded advance is exact at the observable level: with m elements
// effectively available, AdvanceBy(n) returns min(n, m), no matter how
// large pending and n are individually.
func TestSkip_AdvanceByExact(t *testing.T) {
	tests := []struct {
		name            string
		length, pending int
		n               int
	}{
		{"NoPending", 10, 0, 4},
		{"PendingCovered", 10, 3, 4},
		{"ExactlyExhausts", 10, 3, 7},
		{"OvershootsSource", 10, 3, 8},
		{"ExhaustedInsidePending", 2, 5, 3},
		{"ZeroRequest", 10, 3, 0},
		{"HugeRequest", 10, 0, math.MaxInt},
		{"HugePending", 4, math.MaxInt, 5},
		{"HugeBoth", 4, math.MaxInt, math.MaxInt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := cursors.NewSkip[int](cursors.FromSlice(ints(tt.length)), tt.pending)

			available := tt.length - tt.pending
			if available < 0 {
				available = 0
			}
			want := tt.n
			if want > available {
				want = available
			}

			require.Equal(t, want, s.AdvanceBy(tt.n))

			// the cursor keeps working afterwards
			if left := available - want; left > 0 {
				v, ok := s.Next()
				require.True(t, ok)
				require.Equal(t, tt.length-left+1, v)
			} else {
				_, ok := s.Next()
				require.False(t, ok)
			}
		})
	}
}

// A combined step of pending+n that saturates must still advance the exact
// total, recovering the uncounted remainder with a second bulk call. Range
// gives a source long enough to drive the step into saturation.
func TestSkip_AdvanceBySaturationRecovery(t *testing.T) {
	s := cursors.NewSkip[int](cursors.Range(0, math.MaxInt, 1), math.MaxInt-2)

	// 2 elements effectively remain; pending+5 saturates at MaxInt
	require.Equal(t, 2, s.AdvanceBy(5))
	_, ok := s.Next()
	require.False(t, ok)
}

func TestSkip_AdvanceByPartialAfterSaturation(t *testing.T) {
	s := cursors.NewSkip[int](cursors.Range(0, math.MaxInt, 1), math.MaxInt-10)

	// 10 elements effectively remain; pending+15 saturates, and the
	// recovery call runs into the end of the source
	require.Equal(t, 10, s.AdvanceBy(15))
	_, ok := s.Next()
	require.False(t, ok)
}

func TestSkip_PendingKeptOnExhaustedPayoff(t *testing.T) {
	s := cursors.NewSkip[int](cursors.FromSlice(ints(2)), 5)

	require.Equal(t, 0, s.AdvanceBy(3))
	// 2 of the 5 pending were discharged before the source ran out
	require.Equal(t, 3, s.Pending())
}

func TestSkip_Count(t *testing.T) {
	require.Equal(t, 6, cursors.NewSkip[int](cursors.FromSlice(ints(8)), 2).Count())
	require.Equal(t, 0, cursors.NewSkip[int](cursors.FromSlice(ints(8)), 8).Count())
	require.Equal(t, 0, cursors.NewSkip[int](cursors.FromSlice(ints(8)), 9).Count())
}

func TestSkip_Last(t *testing.T) {
	v, ok := cursors.NewSkip[int](cursors.FromSlice(ints(8)), 2).Last()
	require.True(t, ok)
	require.Equal(t, 8, v)

	_, ok = cursors.NewSkip[int](cursors.FromSlice(ints(8)), 8).Last()
	require.False(t, ok)
}

func TestSkip_SizeHint(t *testing.T) {
	t.Run("Bounded", func(t *testing.T) {
		lower, upper, bounded := cursors.NewSkip[int](cursors.FromSlice(ints(8)), 3).SizeHint()
		require.True(t, bounded)
		require.Equal(t, 5, lower)
		require.Equal(t, 5, upper)
	})

	t.Run("SaturatesAtZero", func(t *testing.T) {
		lower, upper, bounded := cursors.NewSkip[int](cursors.FromSlice(ints(3)), 10).SizeHint()
		require.True(t, bounded)
		require.Equal(t, 0, lower)
		require.Equal(t, 0, upper)
	})

	t.Run("UnboundedStaysUnbounded", func(t *testing.T) {
		counting := cursors.Generate(0, func(s int) (int, int, bool) {
			return s + 1, s, true
		})
		lower, _, bounded := cursors.NewSkip[int](counting, 10).SizeHint()
		require.False(t, bounded)
		require.Equal(t, 0, lower)
	})
}

func TestSkip_Seq(t *testing.T) {
	t.Run("PaysOffOnce", func(t *testing.T) {
		s := cursors.NewSkip[int](cursors.FromSlice(ints(6)), 2)
		require.Equal(t, []int{3, 4, 5, 6}, slices.Collect(s.Seq()))
	})

	t.Run("EarlyTerminationPreserved", func(t *testing.T) {
		s := cursors.NewSkip[int](cursors.FromSlice(ints(6)), 2)
		var got []int
		for v := range s.Seq() {
			got = append(got, v)
			if v == 4 {
				break
			}
		}
		require.Equal(t, []int{3, 4}, got)
		// the break leaves the underlying source right after 4
		v, ok := s.Next()
		require.True(t, ok)
		require.Equal(t, 5, v)
	})

	t.Run("ExhaustedDuringPayoff", func(t *testing.T) {
		s := cursors.NewSkip[int](cursors.FromSlice(ints(2)), 5)
		require.Empty(t, slices.Collect(s.Seq()))
	})
}

func TestSkip_Clone(t *testing.T) {
	s := cursors.NewSkip[int](cursors.FromSlice(ints(6)), 2)
	dup := s.Clone()

	require.Equal(t, []int{3, 4, 5, 6}, cursors.Collect[int](dup))
	// draining the clone paid the clone's pending, not ours
	require.Equal(t, 2, s.Pending())
	require.Equal(t, []int{3, 4, 5, 6}, cursors.Collect[int](s))
}

func TestSkip_NegativeCountsClampToZero(t *testing.T) {
	s := cursors.NewSkip[int](cursors.FromSlice(ints(3)), -4)
	s.SkipMore(-2)
	require.Equal(t, 0, s.Pending())
	require.Equal(t, []int{1, 2, 3}, cursors.Collect[int](s))
}

func TestSkip_SkipMoreSaturates(t *testing.T) {
	s := cursors.NewSkip[int](cursors.FromSlice(ints(3)), math.MaxInt)
	s.SkipMore(math.MaxInt)
	require.Equal(t, math.MaxInt, s.Pending())
	require.Equal(t, 0, s.Count())
}
