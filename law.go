// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hkt

// Law suites: per-capability ordered lists of executable algebraic
// properties. Laws are data, not behavior — a stronger capability's
// suite is the weaker capability's suite plus appended laws, so
// extending a suite means appending to a slice and never touching the
// runner.
//
// Laws quantify over the integer seed domain: samples come from a
// [SampleSource], function arguments from its endofunction pool.
// Context-consuming arrows for comonad laws are derived as
// pool-function-after-Extract, keeping the sample-source surface to
// seeds and endofunctions.

// Law is one universally quantified equation over a capability
// instance. A law is a pure description: it owns no samples and no
// state.
type Law[W Witness] struct {
	Name string

	// Check evaluates both sides of the equation for one trial and
	// reports whether they agree.
	Check func(tr Trial[W]) bool
}

// Trial is one randomized assignment of a law's quantified variables.
type Trial[W Witness] struct {
	// Seed is the plain seed the sample was generated from; laws that
	// quantify over a bare value use it directly.
	Seed   int
	Sample Slot[W, int]

	// F and G are drawn from the sample source's function pool; FIdx
	// and GIdx identify them in violation reports.
	F, G       func(int) int
	FIdx, GIdx int
}

func identity(x int) int { return x }

// FunctorLaws returns the functor suite for one instance and equality
// oracle.
func FunctorLaws[W Witness](fn Functor[W, int, int], eq Oracle[W]) []Law[W] {
	return []Law[W]{
		{
			Name: "functor: map identity",
			Check: func(tr Trial[W]) bool {
				return eq(fn.Map(tr.Sample, identity), tr.Sample)
			},
		},
		{
			Name: "functor: map composition",
			Check: func(tr Trial[W]) bool {
				lhs := fn.Map(fn.Map(tr.Sample, tr.F), tr.G)
				rhs := fn.Map(tr.Sample, func(x int) int { return tr.G(tr.F(x)) })
				return eq(lhs, rhs)
			},
		},
	}
}

// ApplicativeLaws returns the applicative suite: the functor suite plus
// the applicative laws.
func ApplicativeLaws[W Witness](ap Applicative[W, int, int], eq Oracle[W]) []Law[W] {
	laws := FunctorLaws[W](ap, eq)
	return append(laws,
		Law[W]{
			Name: "applicative: identity",
			Check: func(tr Trial[W]) bool {
				return eq(ap.Ap(tr.Sample, ap.PureFn(identity)), tr.Sample)
			},
		},
		Law[W]{
			Name: "applicative: homomorphism",
			Check: func(tr Trial[W]) bool {
				lhs := ap.Ap(ap.Pure(tr.Seed), ap.PureFn(tr.F))
				rhs := ap.Pure(tr.F(tr.Seed))
				return eq(lhs, rhs)
			},
		},
		Law[W]{
			Name: "applicative: map consistency",
			Check: func(tr Trial[W]) bool {
				return eq(ap.Ap(tr.Sample, ap.PureFn(tr.F)), ap.Map(tr.Sample, tr.F))
			},
		},
	)
}

// MonadLaws returns the monad suite: the applicative suite plus the
// monad laws. Kleisli arrows are derived from the pool as Pure∘f.
func MonadLaws[W Witness](m Monad[W, int, int], eq Oracle[W]) []Law[W] {
	laws := ApplicativeLaws[W](m, eq)
	kleisli := func(h func(int) int) func(int) Slot[W, int] {
		return func(x int) Slot[W, int] { return m.Pure(h(x)) }
	}
	return append(laws,
		Law[W]{
			Name: "monad: left identity",
			Check: func(tr Trial[W]) bool {
				f := kleisli(tr.F)
				return eq(m.FlatMap(m.Pure(tr.Seed), f), f(tr.Seed))
			},
		},
		Law[W]{
			Name: "monad: right identity",
			Check: func(tr Trial[W]) bool {
				return eq(m.FlatMap(tr.Sample, m.Pure), tr.Sample)
			},
		},
		Law[W]{
			Name: "monad: associativity",
			Check: func(tr Trial[W]) bool {
				f := kleisli(tr.F)
				g := kleisli(tr.G)
				lhs := m.FlatMap(m.FlatMap(tr.Sample, f), g)
				rhs := m.FlatMap(tr.Sample, func(x int) Slot[W, int] {
					return m.FlatMap(f(x), g)
				})
				return eq(lhs, rhs)
			},
		},
		Law[W]{
			Name: "monad: map coherence",
			Check: func(tr Trial[W]) bool {
				return eq(m.Map(tr.Sample, tr.F), m.FlatMap(tr.Sample, kleisli(tr.F)))
			},
		},
	)
}

// ComonadLaws returns the comonad suite: the functor suite plus the
// comonad laws. Context-consuming arrows are derived from the pool as
// pool-function-after-Extract.
func ComonadLaws[W Witness](k ComonadKit[W], eq Oracle[W]) []Law[W] {
	laws := FunctorLaws[W](k.Comonad, eq)
	ctx := func(h func(int) int) func(Slot[W, int]) int {
		return func(t Slot[W, int]) int { return h(k.Extract(t)) }
	}
	return append(laws,
		Law[W]{
			Name: "comonad: duplicate then extract",
			Check: func(tr Trial[W]) bool {
				return eq(k.Up.Extract(Duplicate(k.Dup, tr.Sample)), tr.Sample)
			},
		},
		Law[W]{
			Name: "comonad: duplicate then map extract",
			Check: func(tr Trial[W]) bool {
				return eq(k.Up.Map(Duplicate(k.Dup, tr.Sample), k.Extract), tr.Sample)
			},
		},
		Law[W]{
			Name: "comonad: coflatMap extract identity",
			Check: func(tr Trial[W]) bool {
				return eq(k.CoflatMap(tr.Sample, k.Extract), tr.Sample)
			},
		},
		Law[W]{
			Name: "comonad: left identity",
			Check: func(tr Trial[W]) bool {
				f := ctx(tr.F)
				return k.Extract(k.CoflatMap(tr.Sample, f)) == f(tr.Sample)
			},
		},
		Law[W]{
			Name: "comonad: associativity",
			Check: func(tr Trial[W]) bool {
				f := ctx(tr.F)
				g := ctx(tr.G)
				lhs := k.CoflatMap(k.CoflatMap(tr.Sample, f), g)
				rhs := k.CoflatMap(tr.Sample, func(t Slot[W, int]) int {
					return g(k.CoflatMap(t, f))
				})
				return eq(lhs, rhs)
			},
		},
		Law[W]{
			Name: "comonad: coflatMap map agreement",
			Check: func(tr Trial[W]) bool {
				return eq(k.CoflatMap(tr.Sample, ctx(tr.F)), k.Map(tr.Sample, tr.F))
			},
		},
		Law[W]{
			Name: "comonad: extract binding reduces to map",
			Check: func(tr Trial[W]) bool {
				bound := k.Up.Map(Duplicate(k.Dup, tr.Sample), func(t Slot[W, int]) int {
					return tr.F(k.Extract(t))
				})
				return eq(bound, k.Map(tr.Sample, tr.F))
			},
		},
	)
}

// FoldableLaws returns the foldable suite. Fold results are plain
// integers, so no oracle is needed.
func FoldableLaws[W Witness](fd Foldable[W, int, int]) []Law[W] {
	sum := Monoid[int]{Empty: 0, Combine: func(a, b int) int { return a + b }}
	return []Law[W]{
		{
			Name: "foldable: constant step returns seed",
			Check: func(tr Trial[W]) bool {
				got := fd.FoldLeft(tr.Sample, tr.Seed, func(z, _ int) int { return z })
				return got == tr.Seed
			},
		},
		{
			Name: "foldable: foldMap agrees with foldLeft",
			Check: func(tr Trial[W]) bool {
				lhs := FoldMap(fd, tr.Sample, sum, tr.F)
				rhs := fd.FoldLeft(tr.Sample, 0, func(z, a int) int { return z + tr.F(a) })
				return lhs == rhs
			},
		},
	}
}

// TraverseKit bundles the instantiations of one traverse instance that
// the law suite needs: its functor and foldable views plus traversals
// under the identity and short-circuiting effects.
type TraverseKit[W Witness] struct {
	Functor[W, int, int]

	Fold      Foldable[W, int, int]
	WithIdent Traverse[W, IdentW, int, int]
	WithMaybe Traverse[W, MaybeW, int, int]
}

// TraverseLaws returns the traverse suite: functor and foldable suites
// plus the traversal laws.
func TraverseLaws[W Witness](k TraverseKit[W], eq Oracle[W]) []Law[W] {
	laws := FunctorLaws[W](k.Functor, eq)
	laws = append(laws, FoldableLaws[W](k.Fold)...)
	return append(laws,
		Law[W]{
			Name: "traverse: identity effect is map",
			Check: func(tr Trial[W]) bool {
				got := k.WithIdent.Traverse(tr.Sample, func(a int) Slot[IdentW, int] {
					return IdentOf(tr.F(a))
				}, IdentApKit[W, int]())
				return eq(NarrowIdent(got).Value, k.Map(tr.Sample, tr.F))
			},
		},
		Law[W]{
			Name: "traverse: total effect preserves shape",
			Check: func(tr Trial[W]) bool {
				got := k.WithMaybe.Traverse(tr.Sample, func(a int) Slot[MaybeW, int] {
					return JustOf(tr.F(a))
				}, MaybeApKit[W, int]())
				rebuilt, ok := NarrowMaybe(got).Get()
				return ok && eq(rebuilt, k.Map(tr.Sample, tr.F))
			},
		},
		Law[W]{
			Name: "traverse: absent effect short-circuits",
			Check: func(tr Trial[W]) bool {
				size := k.Fold.FoldLeft(tr.Sample, 0, func(z, _ int) int { return z + 1 })
				got := k.WithMaybe.Traverse(tr.Sample, func(int) Slot[MaybeW, int] {
					return NothingOf[int]()
				}, MaybeApKit[W, int]())
				return NarrowMaybe(got).IsPresent() == (size == 0)
			},
		},
	)
}
