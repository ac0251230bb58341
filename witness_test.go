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

// Widening then narrowing returns the exact container value.
func TestSlotRoundTrips(t *testing.T) {
	t.Run("ident", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			v := rapid.Int().Draw(t, "v")
			c := hkt.Ident[int]{Value: v}
			require.Equal(t, c, hkt.NarrowIdent(hkt.WidenIdent(c)))
		})
	})
	t.Run("maybe", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			var m hkt.Maybe[int]
			if rapid.Bool().Draw(t, "present") {
				m = hkt.Just(rapid.Int().Draw(t, "v"))
			} else {
				m = hkt.Nothing[int]()
			}
			require.Equal(t, m, hkt.NarrowMaybe(hkt.WidenMaybe(m)))
		})
	})
	t.Run("list", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			items := rapid.SliceOfN(rapid.Int(), 0, 8).Draw(t, "items")
			l := hkt.ListOf(items...)
			require.Equal(t, l, hkt.NarrowList(hkt.WidenList(l)))
		})
	})
	t.Run("nel", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			head := rapid.Int().Draw(t, "head")
			tail := rapid.SliceOfN(rapid.Int(), 0, 8).Draw(t, "tail")
			n := hkt.NelOf(head, tail...)
			require.Equal(t, n, hkt.NarrowNel(hkt.WidenNel(n)))
			require.Equal(t, 1+len(tail), n.Len())
		})
	})
	t.Run("tree", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			root := rapid.Int().Draw(t, "root")
			kidVals := rapid.SliceOfN(rapid.Int(), 0, 4).Draw(t, "kids")
			kids := make([]hkt.Tree[int], len(kidVals))
			for i, v := range kidVals {
				kids[i] = hkt.TreeOf(v)
			}
			tr := hkt.TreeOf(root, kids...)
			require.Equal(t, tr, hkt.NarrowTree(hkt.WidenTree(tr)))
		})
	})
}

func TestNarrowMismatchPanics(t *testing.T) {
	s := hkt.MakeSlot[hkt.IdentW, int]("not an ident")
	require.PanicsWithValue(t,
		"hkt: narrow ident: slot does not hold this container shape",
		func() { hkt.NarrowIdent(s) },
	)

	l := hkt.MakeSlot[hkt.ListW, int](hkt.Nel[int]{Head: 1})
	require.Panics(t, func() { hkt.NarrowList(l) })
}

func TestMakeSlotRepr(t *testing.T) {
	c := hkt.Ident[int]{Value: 3}
	s := hkt.MakeSlot[hkt.IdentW, int](c)
	require.Equal(t, c, s.Repr())
	require.Equal(t, c, hkt.NarrowIdent(s))
}

func TestShapeNames(t *testing.T) {
	require.Equal(t, "ident", hkt.IdentW{}.ShapeName())
	require.Equal(t, "maybe", hkt.MaybeW{}.ShapeName())
	require.Equal(t, "list", hkt.ListW{}.ShapeName())
	require.Equal(t, "nel", hkt.NelW{}.ShapeName())
	require.Equal(t, "tree", hkt.TreeW{}.ShapeName())
	require.Equal(t, "sum[ident,nel]", hkt.SumW[hkt.IdentW, hkt.NelW]{}.ShapeName())
	require.Equal(t, "nested[maybe,list]", hkt.NestedW[hkt.MaybeW, hkt.ListW]{}.ShapeName())
	require.Equal(t, "nested[maybe,sum[ident,list]]",
		hkt.NestedW[hkt.MaybeW, hkt.SumW[hkt.IdentW, hkt.ListW]]{}.ShapeName())
}

func TestCapabilityString(t *testing.T) {
	require.Equal(t, "functor", hkt.CapFunctor.String())
	require.Equal(t, "applicative", hkt.CapApplicative.String())
	require.Equal(t, "monad", hkt.CapMonad.String())
	require.Equal(t, "comonad", hkt.CapComonad.String())
	require.Equal(t, "foldable", hkt.CapFoldable.String())
	require.Equal(t, "traverse", hkt.CapTraverse.String())
	require.Equal(t, "unknown", hkt.Capability(0).String())
}

func TestMaybeAccessors(t *testing.T) {
	require.Equal(t, 4, hkt.Just(4).OrElse(9))
	require.Equal(t, 9, hkt.Nothing[int]().OrElse(9))
	require.True(t, hkt.Just(1).IsPresent())
	require.False(t, hkt.Nothing[int]().IsPresent())
}

// All returns a fresh slice: mutating it must not touch the Nel.
func TestNelAllIsFresh(t *testing.T) {
	n := hkt.NelOf(1, 2, 3)
	all := n.All()
	require.Equal(t, []int{1, 2, 3}, all)
	all[0] = 99
	require.Equal(t, 1, n.Head)
}
