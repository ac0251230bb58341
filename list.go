// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hkt

// ListW is the witness of the sequence container.
type ListW struct{}

// ShapeName implements [Witness].
func (ListW) ShapeName() string { return "list" }

// List is an immutable-by-convention sequence. Operations never mutate
// a received list; they allocate fresh backing storage.
type List[A any] []A

// ListOf builds a list from its elements.
func ListOf[A any](items ...A) List[A] {
	out := make(List[A], len(items))
	copy(out, items)
	return out
}

// WidenList converts a List to its slot form.
func WidenList[A any](l List[A]) Slot[ListW, A] {
	return Slot[ListW, A]{repr: l}
}

// NarrowList recovers the List from its slot form.
func NarrowList[A any](s Slot[ListW, A]) List[A] {
	return mustNarrow[List[A]](s.repr, "list")
}

// listC implements the List capabilities. Ap is the cartesian product
// (every function applied to every element, functions outermost);
// FlatMap concatenates in element order.
type listC[A, B any] struct{}

func (listC[A, B]) Map(s Slot[ListW, A], f func(A) B) Slot[ListW, B] {
	in := NarrowList(s)
	out := make(List[B], len(in))
	for i, a := range in {
		out[i] = f(a)
	}
	return WidenList(out)
}

func (listC[A, B]) Pure(a A) Slot[ListW, A] {
	return WidenList(List[A]{a})
}

func (listC[A, B]) PureFn(f func(A) B) Slot[ListW, func(A) B] {
	return WidenList(List[func(A) B]{f})
}

func (listC[A, B]) Ap(s Slot[ListW, A], fs Slot[ListW, func(A) B]) Slot[ListW, B] {
	in := NarrowList(s)
	funcs := NarrowList(fs)
	out := make(List[B], 0, len(in)*len(funcs))
	for _, f := range funcs {
		for _, a := range in {
			out = append(out, f(a))
		}
	}
	return WidenList(out)
}

func (listC[A, B]) FlatMap(s Slot[ListW, A], f func(A) Slot[ListW, B]) Slot[ListW, B] {
	in := NarrowList(s)
	out := make(List[B], 0, len(in))
	for _, a := range in {
		out = append(out, NarrowList(f(a))...)
	}
	return WidenList(out)
}

func (listC[A, B]) FoldLeft(s Slot[ListW, A], zero B, f func(B, A) B) B {
	acc := zero
	for _, a := range NarrowList(s) {
		acc = f(acc, a)
	}
	return acc
}

// listT adds traversal with effect shape G.
type listT[G Witness, A, B any] struct {
	listC[A, B]
}

func (listT[G, A, B]) Traverse(s Slot[ListW, A], f func(A) Slot[G, B], kit ApKit[G, ListW, B]) Slot[G, Slot[ListW, B]] {
	acc := kit.Pure(WidenList(List[B]{}))
	for _, a := range NarrowList(s) {
		acc = kit.Map2(acc, f(a), func(xs Slot[ListW, B], b B) Slot[ListW, B] {
			cur := NarrowList(xs)
			next := make(List[B], len(cur), len(cur)+1)
			copy(next, cur)
			return WidenList(append(next, b))
		})
	}
	return acc
}

// ListFunctor returns the Functor instance for List.
func ListFunctor[A, B any]() Functor[ListW, A, B] { return listC[A, B]{} }

// ListApplicative returns the Applicative instance for List.
func ListApplicative[A, B any]() Applicative[ListW, A, B] { return listC[A, B]{} }

// ListMonad returns the Monad instance for List.
func ListMonad[A, B any]() Monad[ListW, A, B] { return listC[A, B]{} }

// ListFoldable returns the Foldable instance for List.
func ListFoldable[A, Z any]() Foldable[ListW, A, Z] { return listC[A, Z]{} }

// ListTraverse returns the Traverse instance for List with effect
// shape G.
func ListTraverse[G Witness, A, B any]() Traverse[ListW, G, A, B] { return listT[G, A, B]{} }

// ListApKit packages List as a multiplicity effect for traversing a
// W-shaped container: the rebuild branches over every combination of
// element choices.
func ListApKit[W Witness, B any]() ApKit[ListW, W, B] {
	return ApKit[ListW, W, B]{
		Pure: func(v Slot[W, B]) Slot[ListW, Slot[W, B]] {
			return WidenList(List[Slot[W, B]]{v})
		},
		Map: func(gb Slot[ListW, B], f func(B) Slot[W, B]) Slot[ListW, Slot[W, B]] {
			in := NarrowList(gb)
			out := make(List[Slot[W, B]], len(in))
			for i, b := range in {
				out[i] = f(b)
			}
			return WidenList(out)
		},
		Map2: func(acc Slot[ListW, Slot[W, B]], gb Slot[ListW, B], f func(Slot[W, B], B) Slot[W, B]) Slot[ListW, Slot[W, B]] {
			as := NarrowList(acc)
			bs := NarrowList(gb)
			out := make(List[Slot[W, B]], 0, len(as)*len(bs))
			for _, a := range as {
				for _, b := range bs {
					out = append(out, f(a, b))
				}
			}
			return WidenList(out)
		},
	}
}
