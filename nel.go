// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hkt

// NelW is the witness of the non-empty sequence container.
type NelW struct{}

// ShapeName implements [Witness].
func (NelW) ShapeName() string { return "nel" }

// Nel is a non-empty sequence: a mandatory head plus an optional tail.
// Non-emptiness makes Extract total, so Nel carries a Comonad where
// List cannot.
type Nel[A any] struct {
	Head A
	Tail []A
}

// NelOf builds a non-empty sequence from a head and optional tail.
func NelOf[A any](head A, tail ...A) Nel[A] {
	out := Nel[A]{Head: head}
	if len(tail) > 0 {
		out.Tail = make([]A, len(tail))
		copy(out.Tail, tail)
	}
	return out
}

// Len returns the number of elements, always at least 1.
func (n Nel[A]) Len() int { return 1 + len(n.Tail) }

// All returns head and tail as one fresh slice.
func (n Nel[A]) All() []A {
	out := make([]A, 0, n.Len())
	out = append(out, n.Head)
	return append(out, n.Tail...)
}

// WidenNel converts a Nel to its slot form.
func WidenNel[A any](n Nel[A]) Slot[NelW, A] {
	return Slot[NelW, A]{repr: n}
}

// NarrowNel recovers the Nel from its slot form.
func NarrowNel[A any](s Slot[NelW, A]) Nel[A] {
	return mustNarrow[Nel[A]](s.repr, "nel")
}

// nelC implements the Nel capabilities. CoflatMap evaluates the
// caller's function against every suffix: position i sees the context
// from i to the end, so Duplicate is the sequence of suffixes.
type nelC[A, B any] struct{}

func (nelC[A, B]) Map(s Slot[NelW, A], f func(A) B) Slot[NelW, B] {
	n := NarrowNel(s)
	out := Nel[B]{Head: f(n.Head)}
	if len(n.Tail) > 0 {
		out.Tail = make([]B, len(n.Tail))
		for i, a := range n.Tail {
			out.Tail[i] = f(a)
		}
	}
	return WidenNel(out)
}

func (nelC[A, B]) Extract(s Slot[NelW, A]) A {
	return NarrowNel(s).Head
}

func (nelC[A, B]) CoflatMap(s Slot[NelW, A], f func(Slot[NelW, A]) B) Slot[NelW, B] {
	n := NarrowNel(s)
	all := n.All()
	out := Nel[B]{Head: f(WidenNel(n))}
	if len(n.Tail) > 0 {
		out.Tail = make([]B, len(n.Tail))
		for i := range n.Tail {
			suffix := Nel[A]{Head: all[i+1], Tail: all[i+2:]}
			out.Tail[i] = f(WidenNel(suffix))
		}
	}
	return WidenNel(out)
}

func (nelC[A, B]) FoldLeft(s Slot[NelW, A], zero B, f func(B, A) B) B {
	n := NarrowNel(s)
	acc := f(zero, n.Head)
	for _, a := range n.Tail {
		acc = f(acc, a)
	}
	return acc
}

// NelFunctor returns the Functor instance for Nel.
func NelFunctor[A, B any]() Functor[NelW, A, B] { return nelC[A, B]{} }

// NelComonad returns the Comonad instance for Nel.
func NelComonad[A, B any]() Comonad[NelW, A, B] { return nelC[A, B]{} }

// NelFoldable returns the Foldable instance for Nel.
func NelFoldable[A, Z any]() Foldable[NelW, A, Z] { return nelC[A, Z]{} }

// NelComonadKit bundles the Nel comonad instantiations the law suite
// needs.
func NelComonadKit() ComonadKit[NelW] {
	return ComonadKit[NelW]{
		Comonad: nelC[int, int]{},
		Dup:     nelC[int, Slot[NelW, int]]{},
		Up:      nelC[Slot[NelW, int], int]{},
	}
}
