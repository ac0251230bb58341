// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hkt

// Comonad is the capability to extract a value from a focused position
// and to recompute a value at every position from the whole
// surrounding context.
//
// Laws (checked by [ComonadLaws]):
//
//	Extract(Duplicate(s))       ≡ s
//	Map(Duplicate(s), Extract)  ≡ s
//	CoflatMap(s, Extract)       ≡ s
//	Extract(CoflatMap(s, f))    ≡ f(s)
//	CoflatMap(CoflatMap(s,f),g) ≡ CoflatMap(s, t→g(CoflatMap(t,f)))
type Comonad[W Witness, A, B any] interface {
	Functor[W, A, B]

	// Extract returns the value at the focused position.
	Extract(s Slot[W, A]) A

	// CoflatMap recomputes a value at every position by evaluating f
	// against the whole context rooted at that position, preserving
	// shape.
	CoflatMap(s Slot[W, A], f func(Slot[W, A]) B) Slot[W, B]
}

// Duplicate nests the full context at every position:
// Duplicate(c, s) = c.CoflatMap(s, id). The instance argument is the
// comonad at result element Slot[W, A].
func Duplicate[W Witness, A any](c Comonad[W, A, Slot[W, A]], s Slot[W, A]) Slot[W, Slot[W, A]] {
	return c.CoflatMap(s, func(t Slot[W, A]) Slot[W, A] {
		return t
	})
}

// ComonadKit bundles the instantiations of one comonad instance that
// the law suite needs. Instances are empty generic structs, so each
// field is the same instance at a different element type.
type ComonadKit[W Witness] struct {
	Comonad[W, int, int]

	// Dup is the instance with result element Slot[W, int]; its
	// CoflatMap at the identity arrow is Duplicate.
	Dup Comonad[W, int, Slot[W, int]]

	// Up is the instance over the duplicated structure.
	Up Comonad[W, Slot[W, int], int]
}
