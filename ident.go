// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hkt

// IdentW is the witness of the single-value container.
type IdentW struct{}

// ShapeName implements [Witness].
func (IdentW) ShapeName() string { return "ident" }

// Ident holds exactly one value. It is the smallest shape supporting
// every capability, and doubles as the identity effect for traversal.
type Ident[A any] struct {
	Value A
}

// IdentOf lifts a value into a widened Ident slot.
func IdentOf[A any](a A) Slot[IdentW, A] {
	return WidenIdent(Ident[A]{Value: a})
}

// WidenIdent converts an Ident to its slot form.
func WidenIdent[A any](c Ident[A]) Slot[IdentW, A] {
	return Slot[IdentW, A]{repr: c}
}

// NarrowIdent recovers the Ident from its slot form.
func NarrowIdent[A any](s Slot[IdentW, A]) Ident[A] {
	return mustNarrow[Ident[A]](s.repr, "ident")
}

// identC implements every single-shape capability for Ident. The zero
// value is the instance.
type identC[A, B any] struct{}

func (identC[A, B]) Map(s Slot[IdentW, A], f func(A) B) Slot[IdentW, B] {
	return IdentOf(f(NarrowIdent(s).Value))
}

func (identC[A, B]) Pure(a A) Slot[IdentW, A] {
	return IdentOf(a)
}

func (identC[A, B]) PureFn(f func(A) B) Slot[IdentW, func(A) B] {
	return IdentOf(f)
}

func (identC[A, B]) Ap(s Slot[IdentW, A], fs Slot[IdentW, func(A) B]) Slot[IdentW, B] {
	return IdentOf(NarrowIdent(fs).Value(NarrowIdent(s).Value))
}

func (identC[A, B]) FlatMap(s Slot[IdentW, A], f func(A) Slot[IdentW, B]) Slot[IdentW, B] {
	return f(NarrowIdent(s).Value)
}

func (identC[A, B]) Extract(s Slot[IdentW, A]) A {
	return NarrowIdent(s).Value
}

func (identC[A, B]) CoflatMap(s Slot[IdentW, A], f func(Slot[IdentW, A]) B) Slot[IdentW, B] {
	return IdentOf(f(s))
}

func (identC[A, B]) FoldLeft(s Slot[IdentW, A], zero B, f func(B, A) B) B {
	return f(zero, NarrowIdent(s).Value)
}

// identT adds traversal with effect shape G.
type identT[G Witness, A, B any] struct {
	identC[A, B]
}

func (identT[G, A, B]) Traverse(s Slot[IdentW, A], f func(A) Slot[G, B], kit ApKit[G, IdentW, B]) Slot[G, Slot[IdentW, B]] {
	return kit.Map(f(NarrowIdent(s).Value), func(b B) Slot[IdentW, B] {
		return IdentOf(b)
	})
}

// IdentFunctor returns the Functor instance for Ident.
func IdentFunctor[A, B any]() Functor[IdentW, A, B] { return identC[A, B]{} }

// IdentApplicative returns the Applicative instance for Ident.
func IdentApplicative[A, B any]() Applicative[IdentW, A, B] { return identC[A, B]{} }

// IdentMonad returns the Monad instance for Ident.
func IdentMonad[A, B any]() Monad[IdentW, A, B] { return identC[A, B]{} }

// IdentComonad returns the Comonad instance for Ident.
func IdentComonad[A, B any]() Comonad[IdentW, A, B] { return identC[A, B]{} }

// IdentFoldable returns the Foldable instance for Ident.
func IdentFoldable[A, Z any]() Foldable[IdentW, A, Z] { return identC[A, Z]{} }

// IdentTraverse returns the Traverse instance for Ident with effect
// shape G.
func IdentTraverse[G Witness, A, B any]() Traverse[IdentW, G, A, B] { return identT[G, A, B]{} }

// IdentComonadKit bundles the Ident comonad instantiations the law
// suite needs.
func IdentComonadKit() ComonadKit[IdentW] {
	return ComonadKit[IdentW]{
		Comonad: identC[int, int]{},
		Dup:     identC[int, Slot[IdentW, int]]{},
		Up:      identC[Slot[IdentW, int], int]{},
	}
}

// IdentApKit packages Ident as the identity effect for traversing a
// W-shaped container.
func IdentApKit[W Witness, B any]() ApKit[IdentW, W, B] {
	return ApKit[IdentW, W, B]{
		Pure: func(v Slot[W, B]) Slot[IdentW, Slot[W, B]] {
			return IdentOf(v)
		},
		Map: func(gb Slot[IdentW, B], f func(B) Slot[W, B]) Slot[IdentW, Slot[W, B]] {
			return IdentOf(f(NarrowIdent(gb).Value))
		},
		Map2: func(acc Slot[IdentW, Slot[W, B]], gb Slot[IdentW, B], f func(Slot[W, B], B) Slot[W, B]) Slot[IdentW, Slot[W, B]] {
			return IdentOf(f(NarrowIdent(acc).Value, NarrowIdent(gb).Value))
		},
	}
}
