// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hkt

// MaybeW is the witness of the optional-value container.
type MaybeW struct{}

// ShapeName implements [Witness].
func (MaybeW) ShapeName() string { return "maybe" }

// Maybe is an optional value: either present or absent. It also serves
// as the short-circuiting effect for traversal — one absent element
// aborts the whole rebuild.
type Maybe[A any] struct {
	val A
	ok  bool
}

// Just returns a present Maybe.
func Just[A any](a A) Maybe[A] {
	return Maybe[A]{val: a, ok: true}
}

// Nothing returns an absent Maybe.
func Nothing[A any]() Maybe[A] {
	return Maybe[A]{}
}

// IsPresent reports whether a value is present.
func (m Maybe[A]) IsPresent() bool { return m.ok }

// Get returns the value and true, or zero and false.
func (m Maybe[A]) Get() (A, bool) { return m.val, m.ok }

// OrElse returns the value if present, fallback otherwise.
func (m Maybe[A]) OrElse(fallback A) A {
	if m.ok {
		return m.val
	}
	return fallback
}

// JustOf lifts a value into a widened present slot.
func JustOf[A any](a A) Slot[MaybeW, A] {
	return WidenMaybe(Just(a))
}

// NothingOf returns a widened absent slot.
func NothingOf[A any]() Slot[MaybeW, A] {
	return WidenMaybe(Nothing[A]())
}

// WidenMaybe converts a Maybe to its slot form.
func WidenMaybe[A any](m Maybe[A]) Slot[MaybeW, A] {
	return Slot[MaybeW, A]{repr: m}
}

// NarrowMaybe recovers the Maybe from its slot form.
func NarrowMaybe[A any](s Slot[MaybeW, A]) Maybe[A] {
	return mustNarrow[Maybe[A]](s.repr, "maybe")
}

// maybeC implements the Maybe capabilities. Absence propagates through
// every operation; no operation fabricates a present value.
type maybeC[A, B any] struct{}

func (maybeC[A, B]) Map(s Slot[MaybeW, A], f func(A) B) Slot[MaybeW, B] {
	v, ok := NarrowMaybe(s).Get()
	if !ok {
		return NothingOf[B]()
	}
	return JustOf(f(v))
}

func (maybeC[A, B]) Pure(a A) Slot[MaybeW, A] {
	return JustOf(a)
}

func (maybeC[A, B]) PureFn(f func(A) B) Slot[MaybeW, func(A) B] {
	return JustOf(f)
}

func (maybeC[A, B]) Ap(s Slot[MaybeW, A], fs Slot[MaybeW, func(A) B]) Slot[MaybeW, B] {
	f, ok := NarrowMaybe(fs).Get()
	if !ok {
		return NothingOf[B]()
	}
	v, ok := NarrowMaybe(s).Get()
	if !ok {
		return NothingOf[B]()
	}
	return JustOf(f(v))
}

func (maybeC[A, B]) FlatMap(s Slot[MaybeW, A], f func(A) Slot[MaybeW, B]) Slot[MaybeW, B] {
	v, ok := NarrowMaybe(s).Get()
	if !ok {
		return NothingOf[B]()
	}
	return f(v)
}

func (maybeC[A, B]) FoldLeft(s Slot[MaybeW, A], zero B, f func(B, A) B) B {
	v, ok := NarrowMaybe(s).Get()
	if !ok {
		return zero
	}
	return f(zero, v)
}

// maybeT adds traversal with effect shape G.
type maybeT[G Witness, A, B any] struct {
	maybeC[A, B]
}

func (maybeT[G, A, B]) Traverse(s Slot[MaybeW, A], f func(A) Slot[G, B], kit ApKit[G, MaybeW, B]) Slot[G, Slot[MaybeW, B]] {
	v, ok := NarrowMaybe(s).Get()
	if !ok {
		return kit.Pure(NothingOf[B]())
	}
	return kit.Map(f(v), func(b B) Slot[MaybeW, B] {
		return JustOf(b)
	})
}

// MaybeFunctor returns the Functor instance for Maybe.
func MaybeFunctor[A, B any]() Functor[MaybeW, A, B] { return maybeC[A, B]{} }

// MaybeApplicative returns the Applicative instance for Maybe.
func MaybeApplicative[A, B any]() Applicative[MaybeW, A, B] { return maybeC[A, B]{} }

// MaybeMonad returns the Monad instance for Maybe.
func MaybeMonad[A, B any]() Monad[MaybeW, A, B] { return maybeC[A, B]{} }

// MaybeFoldable returns the Foldable instance for Maybe.
func MaybeFoldable[A, Z any]() Foldable[MaybeW, A, Z] { return maybeC[A, Z]{} }

// MaybeTraverse returns the Traverse instance for Maybe with effect
// shape G.
func MaybeTraverse[G Witness, A, B any]() Traverse[MaybeW, G, A, B] { return maybeT[G, A, B]{} }

// MaybeApKit packages Maybe as a short-circuiting effect for traversing
// a W-shaped container.
func MaybeApKit[W Witness, B any]() ApKit[MaybeW, W, B] {
	return ApKit[MaybeW, W, B]{
		Pure: func(v Slot[W, B]) Slot[MaybeW, Slot[W, B]] {
			return JustOf(v)
		},
		Map: func(gb Slot[MaybeW, B], f func(B) Slot[W, B]) Slot[MaybeW, Slot[W, B]] {
			b, ok := NarrowMaybe(gb).Get()
			if !ok {
				return NothingOf[Slot[W, B]]()
			}
			return JustOf(f(b))
		},
		Map2: func(acc Slot[MaybeW, Slot[W, B]], gb Slot[MaybeW, B], f func(Slot[W, B], B) Slot[W, B]) Slot[MaybeW, Slot[W, B]] {
			a, ok := NarrowMaybe(acc).Get()
			if !ok {
				return NothingOf[Slot[W, B]]()
			}
			b, ok := NarrowMaybe(gb).Get()
			if !ok {
				return NothingOf[Slot[W, B]]()
			}
			return JustOf(f(a, b))
		},
	}
}
