// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hkt

// Functor is the capability to transform a container's elements while
// preserving its shape.
//
// Capability contracts are element-monomorphized: Go methods cannot
// introduce type parameters, so an instance value fixes its element
// types A and B. Concrete instances are empty generic structs, which
// makes any further instantiation a zero-cost literal; these element
// types are the "fixed params" of a capability instance.
//
// Laws (checked by [FunctorLaws]):
//
//	Map(s, id)        ≡ s
//	Map(Map(s, f), g) ≡ Map(s, g∘f)
type Functor[W Witness, A, B any] interface {
	// Map applies f to every element of s, preserving shape.
	Map(s Slot[W, A], f func(A) B) Slot[W, B]
}

// Lift turns a plain function into a function between slots.
func Lift[W Witness, A, B any](fn Functor[W, A, B], f func(A) B) func(Slot[W, A]) Slot[W, B] {
	return func(s Slot[W, A]) Slot[W, B] {
		return fn.Map(s, f)
	}
}
