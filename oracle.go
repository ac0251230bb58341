// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hkt

import (
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// Equality oracles for the bundled containers. An oracle must be
// consistent with the container's own observable equality: the
// structural ones below narrow both slots and compare the concrete
// containers with go-cmp; composite oracles unwrap the nested
// structure and delegate to component oracles.

// StructuralOracle builds an oracle that narrows both slots with the
// given function and compares the concrete containers structurally.
func StructuralOracle[W Witness, C any](narrow func(Slot[W, int]) C, opts ...cmp.Option) Oracle[W] {
	return func(a, b Slot[W, int]) bool {
		return cmp.Equal(narrow(a), narrow(b), opts...)
	}
}

// IdentOracle returns the structural oracle for Ident.
func IdentOracle() Oracle[IdentW] {
	return StructuralOracle(NarrowIdent[int])
}

// MaybeOracle returns the structural oracle for Maybe.
func MaybeOracle() Oracle[MaybeW] {
	return StructuralOracle(NarrowMaybe[int], cmp.AllowUnexported(Maybe[int]{}))
}

// ListOracle returns the structural oracle for List. Nil and empty
// lists are equal.
func ListOracle() Oracle[ListW] {
	return StructuralOracle(NarrowList[int], cmpopts.EquateEmpty())
}

// NelOracle returns the structural oracle for Nel. Nil and empty tails
// are equal.
func NelOracle() Oracle[NelW] {
	return StructuralOracle(NarrowNel[int], cmpopts.EquateEmpty())
}

// TreeOracle returns the structural oracle for Tree. Nil and empty
// child lists are equal.
func TreeOracle() Oracle[TreeW] {
	return StructuralOracle(NarrowTree[int], cmpopts.EquateEmpty())
}

// SumOracle builds the oracle for a tagged sum from the component
// oracles: sums are equal iff they carry the same tag and their
// present branches are equal under that branch's oracle.
func SumOracle[L, R Witness](lo Oracle[L], ro Oracle[R]) Oracle[SumW[L, R]] {
	return func(a, b Slot[SumW[L, R], int]) bool {
		sa := NarrowSum(a)
		sb := NarrowSum(b)
		if sa.Side() != sb.Side() {
			return false
		}
		if sa.Side() == SideLeft {
			la, _ := sa.Left()
			lb, _ := sb.Left()
			return lo(la, lb)
		}
		ra, _ := sa.Right()
		rb, _ := sb.Right()
		return ro(ra, rb)
	}
}
