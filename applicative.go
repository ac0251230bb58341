// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hkt

// Applicative is the capability to lift pure values into a shape and to
// combine independent computations.
//
// Laws (checked by [ApplicativeLaws]):
//
//	Ap(s, PureFn(id))       ≡ s
//	Ap(Pure(a), PureFn(f))  ≡ Pure(f(a))
//	Ap(s, PureFn(f))        ≡ Map(s, f)
type Applicative[W Witness, A, B any] interface {
	Functor[W, A, B]

	// Pure lifts a value into the shape.
	Pure(a A) Slot[W, A]

	// PureFn is unit at the function element type. Methods cannot add
	// type parameters, so the instance carries this extra
	// monomorphization alongside Pure; Ap and the applicative laws
	// need it.
	PureFn(f func(A) B) Slot[W, func(A) B]

	// Ap combines independent computations, applying every function
	// held by fs to every element of s per the shape's own semantics.
	Ap(s Slot[W, A], fs Slot[W, func(A) B]) Slot[W, B]
}

// Pair is a two-element tuple, the result shape of [Product2].
type Pair[A, B any] struct {
	Fst A
	Snd B
}

// Product2 tuples two independent computations into one.
//
// The two instance arguments are the same underlying instance at the
// instantiations tupling needs: fn maps the first slot to partially
// applied pair constructors, ap applies them across the second slot.
func Product2[W Witness, A, B any](
	fn Functor[W, A, func(B) Pair[A, B]],
	ap Applicative[W, B, Pair[A, B]],
	sa Slot[W, A], sb Slot[W, B],
) Slot[W, Pair[A, B]] {
	fs := fn.Map(sa, func(a A) func(B) Pair[A, B] {
		return func(b B) Pair[A, B] {
			return Pair[A, B]{Fst: a, Snd: b}
		}
	})
	return ap.Ap(sb, fs)
}
