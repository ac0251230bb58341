// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hkt

// SumW is the witness of the tagged sum of shapes L and R. The
// component witnesses are carried as type parameters, so the composite
// witness uniquely determines its components.
type SumW[L, R Witness] struct{}

// ShapeName implements [Witness].
func (SumW[L, R]) ShapeName() string {
	var l L
	var r R
	return "sum[" + l.ShapeName() + "," + r.ShapeName() + "]"
}

// Side tags which branch of a [Sum] is present.
type Side uint8

const (
	SideLeft Side = iota + 1
	SideRight
)

// String returns the lowercase side name.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "unknown"
	}
}

// Sum holds exactly one of two container shapes sharing an element
// type. The present branch is identified by a runtime tag; derived
// capability instances dispatch on the tag and preserve it — no
// operation ever fabricates a value on the untagged side or switches
// tags mid-operation. There is deliberately no API for converting
// between branches inside a capability operation.
type Sum[L, R Witness, A any] struct {
	side  Side
	left  Slot[L, A]
	right Slot[R, A]
}

// SumLeft builds a Sum holding the left shape.
func SumLeft[L, R Witness, A any](s Slot[L, A]) Sum[L, R, A] {
	return Sum[L, R, A]{side: SideLeft, left: s}
}

// SumRight builds a Sum holding the right shape.
func SumRight[L, R Witness, A any](s Slot[R, A]) Sum[L, R, A] {
	return Sum[L, R, A]{side: SideRight, right: s}
}

// Side returns the tag of the present branch.
func (s Sum[L, R, A]) Side() Side { return s.side }

// Left returns the left slot and true when the left branch is present.
func (s Sum[L, R, A]) Left() (Slot[L, A], bool) {
	return s.left, s.side == SideLeft
}

// Right returns the right slot and true when the right branch is
// present.
func (s Sum[L, R, A]) Right() (Slot[R, A], bool) {
	return s.right, s.side == SideRight
}

// MatchSum pattern matches on the present branch.
func MatchSum[L, R Witness, A, T any](s Sum[L, R, A], onLeft func(Slot[L, A]) T, onRight func(Slot[R, A]) T) T {
	if s.side == SideLeft {
		return onLeft(s.left)
	}
	return onRight(s.right)
}

// WidenSum converts a Sum to its slot form.
func WidenSum[L, R Witness, A any](s Sum[L, R, A]) Slot[SumW[L, R], A] {
	return Slot[SumW[L, R], A]{repr: s}
}

// NarrowSum recovers the Sum from its slot form.
func NarrowSum[L, R Witness, A any](s Slot[SumW[L, R], A]) Sum[L, R, A] {
	var w SumW[L, R]
	return mustNarrow[Sum[L, R, A]](s.repr, w.ShapeName())
}

// SumLeftOf widens a left-branch Sum in one step.
func SumLeftOf[L, R Witness, A any](s Slot[L, A]) Slot[SumW[L, R], A] {
	return WidenSum(SumLeft[L, R](s))
}

// SumRightOf widens a right-branch Sum in one step.
func SumRightOf[L, R Witness, A any](s Slot[R, A]) Slot[SumW[L, R], A] {
	return WidenSum(SumRight[L, R](s))
}

// sumFunctor composes a Functor for the sum from one instance per
// summand plus tag dispatch.
type sumFunctor[L, R Witness, A, B any] struct {
	l Functor[L, A, B]
	r Functor[R, A, B]
}

func (i sumFunctor[L, R, A, B]) Map(s Slot[SumW[L, R], A], f func(A) B) Slot[SumW[L, R], B] {
	c := NarrowSum(s)
	if c.side == SideLeft {
		return SumLeftOf[L, R](i.l.Map(c.left, f))
	}
	return SumRightOf[L, R](i.r.Map(c.right, f))
}

// SumFunctorOf derives a Functor for SumW[L, R] from instances for the
// two summands.
func SumFunctorOf[L, R Witness, A, B any](l Functor[L, A, B], r Functor[R, A, B]) Functor[SumW[L, R], A, B] {
	return sumFunctor[L, R, A, B]{l: l, r: r}
}

// sumComonad composes a Comonad for the sum. CoflatMap re-wraps the
// inner context into a same-tagged sum slot before handing it to the
// caller's function, so the function always observes the composite
// shape.
type sumComonad[L, R Witness, A, B any] struct {
	l Comonad[L, A, B]
	r Comonad[R, A, B]
}

func (i sumComonad[L, R, A, B]) Map(s Slot[SumW[L, R], A], f func(A) B) Slot[SumW[L, R], B] {
	c := NarrowSum(s)
	if c.side == SideLeft {
		return SumLeftOf[L, R](i.l.Map(c.left, f))
	}
	return SumRightOf[L, R](i.r.Map(c.right, f))
}

func (i sumComonad[L, R, A, B]) Extract(s Slot[SumW[L, R], A]) A {
	c := NarrowSum(s)
	if c.side == SideLeft {
		return i.l.Extract(c.left)
	}
	return i.r.Extract(c.right)
}

func (i sumComonad[L, R, A, B]) CoflatMap(s Slot[SumW[L, R], A], f func(Slot[SumW[L, R], A]) B) Slot[SumW[L, R], B] {
	c := NarrowSum(s)
	if c.side == SideLeft {
		return SumLeftOf[L, R](i.l.CoflatMap(c.left, func(t Slot[L, A]) B {
			return f(SumLeftOf[L, R](t))
		}))
	}
	return SumRightOf[L, R](i.r.CoflatMap(c.right, func(t Slot[R, A]) B {
		return f(SumRightOf[L, R](t))
	}))
}

// SumComonadOf derives a Comonad for SumW[L, R] from instances for the
// two summands.
func SumComonadOf[L, R Witness, A, B any](l Comonad[L, A, B], r Comonad[R, A, B]) Comonad[SumW[L, R], A, B] {
	return sumComonad[L, R, A, B]{l: l, r: r}
}

// sumFoldable composes a Foldable for the sum.
type sumFoldable[L, R Witness, A, Z any] struct {
	l Foldable[L, A, Z]
	r Foldable[R, A, Z]
}

func (i sumFoldable[L, R, A, Z]) FoldLeft(s Slot[SumW[L, R], A], zero Z, f func(Z, A) Z) Z {
	c := NarrowSum(s)
	if c.side == SideLeft {
		return i.l.FoldLeft(c.left, zero, f)
	}
	return i.r.FoldLeft(c.right, zero, f)
}

// SumFoldableOf derives a Foldable for SumW[L, R] from instances for
// the two summands.
func SumFoldableOf[L, R Witness, A, Z any](l Foldable[L, A, Z], r Foldable[R, A, Z]) Foldable[SumW[L, R], A, Z] {
	return sumFoldable[L, R, A, Z]{l: l, r: r}
}

// RegisterSumFunctor synthesizes and registers a Functor for
// SumW[L, R] from the summands' registered instances. Returns the
// missing component's [UnsupportedError] when a summand instance is
// absent.
func RegisterSumFunctor[L, R Witness, A, B any](r *Registry) error {
	l, err := ResolveFunctor[L, A, B](r)
	if err != nil {
		return err
	}
	rr, err := ResolveFunctor[R, A, B](r)
	if err != nil {
		return err
	}
	RegisterFunctor(r, SumFunctorOf(l, rr))
	return nil
}

// RegisterSumComonad synthesizes and registers a Comonad for
// SumW[L, R] from the summands' registered instances.
func RegisterSumComonad[L, R Witness, A, B any](r *Registry) error {
	l, err := ResolveComonad[L, A, B](r)
	if err != nil {
		return err
	}
	rr, err := ResolveComonad[R, A, B](r)
	if err != nil {
		return err
	}
	RegisterComonad(r, SumComonadOf(l, rr))
	return nil
}

// RegisterSumFoldable synthesizes and registers a Foldable for
// SumW[L, R] from the summands' registered instances.
func RegisterSumFoldable[L, R Witness, A, Z any](r *Registry) error {
	l, err := ResolveFoldable[L, A, Z](r)
	if err != nil {
		return err
	}
	rr, err := ResolveFoldable[R, A, Z](r)
	if err != nil {
		return err
	}
	RegisterFoldable(r, SumFoldableOf(l, rr))
	return nil
}
