// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hkt

// Foldable is the capability to collapse a container to a summary
// value, visiting elements left to right.
type Foldable[W Witness, A, Z any] interface {
	// FoldLeft threads an accumulator through every element.
	FoldLeft(s Slot[W, A], zero Z, f func(Z, A) Z) Z
}

// Monoid is a combine-with-identity algebra, the caller-supplied half
// of [FoldMap].
type Monoid[M any] struct {
	Empty   M
	Combine func(M, M) M
}

// FoldMap maps every element into the monoid and combines the results:
// the canonical derivation from FoldLeft.
func FoldMap[W Witness, A, M any](fd Foldable[W, A, M], s Slot[W, A], m Monoid[M], f func(A) M) M {
	return fd.FoldLeft(s, m.Empty, func(acc M, a A) M {
		return m.Combine(acc, f(a))
	})
}
