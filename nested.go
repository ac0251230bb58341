// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hkt

// NestedW is the witness of one container stacked inside another: an
// F-shaped outer layer whose elements are G-shaped containers.
type NestedW[F, G Witness] struct{}

// ShapeName implements [Witness].
func (NestedW[F, G]) ShapeName() string {
	var f F
	var g G
	return "nested[" + f.ShapeName() + "," + g.ShapeName() + "]"
}

// Nested is the stacked container. Capabilities apply through both
// layers: the composite instance is the pointwise composition of each
// layer's instance.
type Nested[F, G Witness, A any] struct {
	outer Slot[F, Slot[G, A]]
}

// NestedOf builds a Nested from its outer slot.
func NestedOf[F, G Witness, A any](outer Slot[F, Slot[G, A]]) Nested[F, G, A] {
	return Nested[F, G, A]{outer: outer}
}

// Outer returns the outer slot.
func (n Nested[F, G, A]) Outer() Slot[F, Slot[G, A]] { return n.outer }

// WidenNested converts a Nested to its slot form.
func WidenNested[F, G Witness, A any](n Nested[F, G, A]) Slot[NestedW[F, G], A] {
	return Slot[NestedW[F, G], A]{repr: n}
}

// NarrowNested recovers the Nested from its slot form.
func NarrowNested[F, G Witness, A any](s Slot[NestedW[F, G], A]) Nested[F, G, A] {
	var w NestedW[F, G]
	return mustNarrow[Nested[F, G, A]](s.repr, w.ShapeName())
}

// nestedFunctor maps through the outer layer and, inside each element,
// through the inner layer.
type nestedFunctor[F, G Witness, A, B any] struct {
	outer Functor[F, Slot[G, A], Slot[G, B]]
	inner Functor[G, A, B]
}

func (i nestedFunctor[F, G, A, B]) Map(s Slot[NestedW[F, G], A], f func(A) B) Slot[NestedW[F, G], B] {
	n := NarrowNested(s)
	return WidenNested(NestedOf(i.outer.Map(n.outer, func(ga Slot[G, A]) Slot[G, B] {
		return i.inner.Map(ga, f)
	})))
}

// NestedFunctorOf derives a Functor for NestedW[F, G] from the layer
// instances. The outer instance is instantiated at the inner slot
// element types; generic instance structs make that a zero-cost
// literal.
func NestedFunctorOf[F, G Witness, A, B any](
	outer Functor[F, Slot[G, A], Slot[G, B]],
	inner Functor[G, A, B],
) Functor[NestedW[F, G], A, B] {
	return nestedFunctor[F, G, A, B]{outer: outer, inner: inner}
}

// nestedApplicative composes Pure and Ap through both layers. outerFn
// is the outer instance at the function-element instantiation Ap
// needs; outerAp is the outer instance at the value instantiation.
type nestedApplicative[F, G Witness, A, B any] struct {
	outerFn Applicative[F, Slot[G, func(A) B], func(Slot[G, A]) Slot[G, B]]
	outerAp Applicative[F, Slot[G, A], Slot[G, B]]
	inner   Applicative[G, A, B]
}

func (i nestedApplicative[F, G, A, B]) Map(s Slot[NestedW[F, G], A], f func(A) B) Slot[NestedW[F, G], B] {
	n := NarrowNested(s)
	return WidenNested(NestedOf(i.outerAp.Map(n.outer, func(ga Slot[G, A]) Slot[G, B] {
		return i.inner.Map(ga, f)
	})))
}

func (i nestedApplicative[F, G, A, B]) Pure(a A) Slot[NestedW[F, G], A] {
	return WidenNested(NestedOf(i.outerAp.Pure(i.inner.Pure(a))))
}

func (i nestedApplicative[F, G, A, B]) PureFn(f func(A) B) Slot[NestedW[F, G], func(A) B] {
	return WidenNested(NestedOf(i.outerFn.Pure(i.inner.PureFn(f))))
}

func (i nestedApplicative[F, G, A, B]) Ap(s Slot[NestedW[F, G], A], fs Slot[NestedW[F, G], func(A) B]) Slot[NestedW[F, G], B] {
	n := NarrowNested(s)
	nf := NarrowNested(fs)
	lifted := i.outerFn.Map(nf.outer, func(gf Slot[G, func(A) B]) func(Slot[G, A]) Slot[G, B] {
		return func(ga Slot[G, A]) Slot[G, B] {
			return i.inner.Ap(ga, gf)
		}
	})
	return WidenNested(NestedOf(i.outerAp.Ap(n.outer, lifted)))
}

// NestedApplicativeOf derives an Applicative for NestedW[F, G] from the
// layer instances.
func NestedApplicativeOf[F, G Witness, A, B any](
	outerFn Applicative[F, Slot[G, func(A) B], func(Slot[G, A]) Slot[G, B]],
	outerAp Applicative[F, Slot[G, A], Slot[G, B]],
	inner Applicative[G, A, B],
) Applicative[NestedW[F, G], A, B] {
	return nestedApplicative[F, G, A, B]{outerFn: outerFn, outerAp: outerAp, inner: inner}
}

// nestedFoldable folds the outer layer, folding each inner container
// into the running accumulator.
type nestedFoldable[F, G Witness, A, Z any] struct {
	outer Foldable[F, Slot[G, A], Z]
	inner Foldable[G, A, Z]
}

func (i nestedFoldable[F, G, A, Z]) FoldLeft(s Slot[NestedW[F, G], A], zero Z, f func(Z, A) Z) Z {
	n := NarrowNested(s)
	return i.outer.FoldLeft(n.outer, zero, func(acc Z, ga Slot[G, A]) Z {
		return i.inner.FoldLeft(ga, acc, f)
	})
}

// NestedFoldableOf derives a Foldable for NestedW[F, G] from the layer
// instances.
func NestedFoldableOf[F, G Witness, A, Z any](
	outer Foldable[F, Slot[G, A], Z],
	inner Foldable[G, A, Z],
) Foldable[NestedW[F, G], A, Z] {
	return nestedFoldable[F, G, A, Z]{outer: outer, inner: inner}
}

// RegisterNestedFunctor synthesizes and registers a Functor for
// NestedW[F, G] from the layers' registered instances. The outer layer
// must be registered at the inner-slot element instantiation.
func RegisterNestedFunctor[F, G Witness, A, B any](r *Registry) error {
	outer, err := ResolveFunctor[F, Slot[G, A], Slot[G, B]](r)
	if err != nil {
		return err
	}
	inner, err := ResolveFunctor[G, A, B](r)
	if err != nil {
		return err
	}
	RegisterFunctor(r, NestedFunctorOf(outer, inner))
	return nil
}

// RegisterNestedFoldable synthesizes and registers a Foldable for
// NestedW[F, G] from the layers' registered instances.
func RegisterNestedFoldable[F, G Witness, A, Z any](r *Registry) error {
	outer, err := ResolveFoldable[F, Slot[G, A], Z](r)
	if err != nil {
		return err
	}
	inner, err := ResolveFoldable[G, A, Z](r)
	if err != nil {
		return err
	}
	RegisterFoldable(r, NestedFoldableOf(outer, inner))
	return nil
}
