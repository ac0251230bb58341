// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hkt

// Monad is the capability to sequence dependent computations.
//
// Minimal definition: Pure (unit) and FlatMap are necessary and
// sufficient; Map and Ap must agree with their FlatMap derivations
// ([ApViaFlatMap]), but instances implement them directly to avoid
// intermediate allocations.
//
// Laws (checked by [MonadLaws]):
//
//	FlatMap(Pure(a), f)     ≡ f(a)
//	FlatMap(s, Pure)        ≡ s
//	FlatMap(FlatMap(s,f),g) ≡ FlatMap(s, x→FlatMap(f(x), g))
type Monad[W Witness, A, B any] interface {
	Applicative[W, A, B]

	// FlatMap sequences a dependent computation: runs s, then feeds
	// each element to f and flattens the produced structure.
	FlatMap(s Slot[W, A], f func(A) Slot[W, B]) Slot[W, B]
}

// ApViaFlatMap is the canonical derivation of independent combination
// from dependent sequencing. A lawful Monad instance's Ap agrees with
// it. The second argument is the same instance at the function element
// type, needed to sequence the function-bearing slot.
func ApViaFlatMap[W Witness, A, B any](
	m Monad[W, A, B],
	fm Monad[W, func(A) B, B],
	s Slot[W, A], fs Slot[W, func(A) B],
) Slot[W, B] {
	return fm.FlatMap(fs, func(f func(A) B) Slot[W, B] {
		return m.Map(s, f)
	})
}
