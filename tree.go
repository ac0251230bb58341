// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hkt

// TreeW is the witness of the self-referential container.
type TreeW struct{}

// ShapeName implements [Witness].
func (TreeW) ShapeName() string { return "tree" }

// Tree is a self-referential container: each node holds one value plus
// a nested structure of the same shape. Depth is unbounded, so every
// traversal below runs on an explicit work list instead of the call
// stack.
type Tree[A any] struct {
	Value A
	Kids  []Tree[A]
}

// TreeOf builds a node from a value and optional children.
func TreeOf[A any](value A, kids ...Tree[A]) Tree[A] {
	out := Tree[A]{Value: value}
	if len(kids) > 0 {
		out.Kids = make([]Tree[A], len(kids))
		copy(out.Kids, kids)
	}
	return out
}

// WidenTree converts a Tree to its slot form.
func WidenTree[A any](t Tree[A]) Slot[TreeW, A] {
	return Slot[TreeW, A]{repr: t}
}

// NarrowTree recovers the Tree from its slot form.
func NarrowTree[A any](s Slot[TreeW, A]) Tree[A] {
	return mustNarrow[Tree[A]](s.repr, "tree")
}

// rebuildTree rebuilds t with one output value per node, computed from
// the whole subtree rooted at that node. The work list pairs each
// pending source node with its preallocated output node; children are
// filled in before the cursor leaves their parent frame, so branching
// shape is preserved and depth never grows the call stack.
func rebuildTree[A, B any](t Tree[A], f func(Tree[A]) B) Tree[B] {
	type frame struct {
		src  *Tree[A]
		out  *Tree[B]
		next int
	}
	root := Tree[B]{Value: f(t), Kids: make([]Tree[B], len(t.Kids))}
	stack := []frame{{src: &t, out: &root}}
	for len(stack) > 0 {
		fr := &stack[len(stack)-1]
		if fr.next == len(fr.src.Kids) {
			stack = stack[:len(stack)-1]
			continue
		}
		child := &fr.src.Kids[fr.next]
		out := &fr.out.Kids[fr.next]
		fr.next++
		*out = Tree[B]{Value: f(*child), Kids: make([]Tree[B], len(child.Kids))}
		stack = append(stack, frame{src: child, out: out})
	}
	return root
}

// foldTree folds node values in preorder with an explicit stack.
func foldTree[A, Z any](t Tree[A], zero Z, f func(Z, A) Z) Z {
	stack := []*Tree[A]{&t}
	acc := zero
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		acc = f(acc, n.Value)
		for i := len(n.Kids) - 1; i >= 0; i-- {
			stack = append(stack, &n.Kids[i])
		}
	}
	return acc
}

// treeC implements the Tree capabilities. CoflatMap is structural
// recursion: the value at each node is the caller's function evaluated
// against the whole subtree rooted there.
type treeC[A, B any] struct{}

func (treeC[A, B]) Map(s Slot[TreeW, A], f func(A) B) Slot[TreeW, B] {
	return WidenTree(rebuildTree(NarrowTree(s), func(n Tree[A]) B {
		return f(n.Value)
	}))
}

func (treeC[A, B]) Extract(s Slot[TreeW, A]) A {
	return NarrowTree(s).Value
}

func (treeC[A, B]) CoflatMap(s Slot[TreeW, A], f func(Slot[TreeW, A]) B) Slot[TreeW, B] {
	return WidenTree(rebuildTree(NarrowTree(s), func(n Tree[A]) B {
		return f(WidenTree(n))
	}))
}

func (treeC[A, B]) FoldLeft(s Slot[TreeW, A], zero B, f func(B, A) B) B {
	return foldTree(NarrowTree(s), zero, f)
}

// TreeFunctor returns the Functor instance for Tree.
func TreeFunctor[A, B any]() Functor[TreeW, A, B] { return treeC[A, B]{} }

// TreeComonad returns the Comonad instance for Tree.
func TreeComonad[A, B any]() Comonad[TreeW, A, B] { return treeC[A, B]{} }

// TreeFoldable returns the Foldable instance for Tree.
func TreeFoldable[A, Z any]() Foldable[TreeW, A, Z] { return treeC[A, Z]{} }

// TreeComonadKit bundles the Tree comonad instantiations the law suite
// needs.
func TreeComonadKit() ComonadKit[TreeW] {
	return ComonadKit[TreeW]{
		Comonad: treeC[int, int]{},
		Dup:     treeC[int, Slot[TreeW, int]]{},
		Up:      treeC[Slot[TreeW, int], int]{},
	}
}
