// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hkt_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"code.hybscloud.com/hkt"
)

type identNelSum = hkt.SumW[hkt.IdentW, hkt.NelW]

func identNelSumKit() hkt.ComonadKit[identNelSum] {
	return hkt.ComonadKit[identNelSum]{
		Comonad: hkt.SumComonadOf(hkt.IdentComonad[int, int](), hkt.NelComonad[int, int]()),
		Dup: hkt.SumComonadOf(
			hkt.IdentComonad[int, hkt.Slot[identNelSum, int]](),
			hkt.NelComonad[int, hkt.Slot[identNelSum, int]](),
		),
		Up: hkt.SumComonadOf(
			hkt.IdentComonad[hkt.Slot[identNelSum, int], int](),
			hkt.NelComonad[hkt.Slot[identNelSum, int], int](),
		),
	}
}

func identNelSumOracle() hkt.Oracle[identNelSum] {
	return hkt.SumOracle[hkt.IdentW, hkt.NelW](hkt.IdentOracle(), hkt.NelOracle())
}

// Left-branch samples through the full comonad suite: 100 trials per
// law, no violations, and the tag never flips.
func TestSumComonadLawsLeftSamples(t *testing.T) {
	src := hkt.MakeSampleSource(func(n int) hkt.Slot[identNelSum, int] {
		return hkt.SumLeftOf[hkt.IdentW, hkt.NelW](hkt.IdentOf(n))
	}, nil)
	require.Len(t, src.Pool, 5)

	laws := hkt.ComonadLaws(identNelSumKit(), identNelSumOracle())
	reports := hkt.CheckLaws(laws, src, hkt.RunConfig{Trials: 100, Seed: 7})

	requireAllPassed(t, reports)
	for _, r := range reports {
		require.Equal(t, 100, r.Trials)
	}
}

func TestSumComonadLawsMixedSamples(t *testing.T) {
	src := hkt.MakeSampleSource(func(n int) hkt.Slot[identNelSum, int] {
		if n%2 == 0 {
			return hkt.SumLeftOf[hkt.IdentW, hkt.NelW](hkt.IdentOf(n))
		}
		return hkt.SumRightOf[hkt.IdentW, hkt.NelW](hkt.WidenNel(hkt.NelOf(n, n+1, n+2)))
	}, nil)

	laws := hkt.ComonadLaws(identNelSumKit(), identNelSumOracle())
	requireAllPassed(t, hkt.CheckLaws(laws, src, hkt.RunConfig{Seed: 21}))
}

func TestSumTagPreservation(t *testing.T) {
	kit := identNelSumKit()
	fd := hkt.SumFoldableOf(hkt.IdentFoldable[int, int](), hkt.NelFoldable[int, int]())

	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(-1000, 1000).Draw(t, "n")
		left := hkt.SumLeftOf[hkt.IdentW, hkt.NelW](hkt.IdentOf(n))
		right := hkt.SumRightOf[hkt.IdentW, hkt.NelW](hkt.WidenNel(hkt.NelOf(n, n-1)))

		mapped := kit.Map(left, func(x int) int { return x * 3 })
		require.Equal(t, hkt.SideLeft, hkt.NarrowSum(mapped).Side())

		extended := kit.CoflatMap(right, func(s hkt.Slot[identNelSum, int]) int {
			require.Equal(t, hkt.SideRight, hkt.NarrowSum(s).Side())
			return kit.Extract(s)
		})
		require.Equal(t, hkt.SideRight, hkt.NarrowSum(extended).Side())

		dup := hkt.NarrowSum(hkt.Duplicate(kit.Dup, left))
		require.Equal(t, hkt.SideLeft, dup.Side())
		inner, ok := dup.Left()
		require.True(t, ok)
		require.Equal(t, hkt.SideLeft, hkt.NarrowSum(hkt.NarrowIdent(inner).Value).Side())

		require.Equal(t, n, kit.Extract(left))
		require.Equal(t, n, kit.Extract(right))
		require.Equal(t, n+n-1, fd.FoldLeft(right, 0, func(z, a int) int { return z + a }))
	})
}

func TestSumMatchAndSides(t *testing.T) {
	left := hkt.SumLeft[hkt.IdentW, hkt.NelW](hkt.IdentOf(4))
	right := hkt.SumRight[hkt.IdentW, hkt.NelW](hkt.WidenNel(hkt.NelOf(5)))

	require.Equal(t, "left", hkt.SideLeft.String())
	require.Equal(t, "right", hkt.SideRight.String())

	got := hkt.MatchSum(left,
		func(s hkt.Slot[hkt.IdentW, int]) int { return hkt.NarrowIdent(s).Value },
		func(s hkt.Slot[hkt.NelW, int]) int { return -1 },
	)
	require.Equal(t, 4, got)

	got = hkt.MatchSum(right,
		func(s hkt.Slot[hkt.IdentW, int]) int { return -1 },
		func(s hkt.Slot[hkt.NelW, int]) int { return hkt.NarrowNel(s).Head },
	)
	require.Equal(t, 5, got)

	_, ok := left.Right()
	require.False(t, ok)
	ls, ok := left.Left()
	require.True(t, ok)
	require.Equal(t, 4, hkt.NarrowIdent(ls).Value)
}
