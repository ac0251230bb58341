// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package hkt provides emulated higher-kinded capability contracts and
// a property-based law-verification engine in Go.
//
// Containers advertise which computational capabilities they support —
// transform contents, sequence dependent computations, combine
// independent computations, extract or recompute from surrounding
// context, fold to a summary, traverse with an effect — through a small
// set of composable contracts, and randomized law suites verify that
// concrete implementations actually satisfy the algebraic equations
// those contracts promise.
//
// # Witness and Slot
//
// Go generics only support fully applied types, so an unapplied
// container shape is represented by an opaque [Witness] type and the
// applied form by the generic two-parameter box [Slot]:
//
//   - [Witness]: empty comparable struct identifying one shape
//   - [Slot]: Slot[W, A] plays the role of W<A>; stores the container
//     value itself, type-erased, so widening is free
//   - [MakeSlot], [Slot.Repr]: the raw hooks external containers use
//
// Each bundled container exposes a WidenX/NarrowX pair; narrowing is a
// checked downcast that panics on a witness mismatch (a construction
// defect, not a recoverable condition).
//
// # Capability Contracts
//
// Contracts are element-monomorphized generic interfaces: methods
// cannot introduce type parameters, so an instance value fixes its
// element types, and instances are empty generic structs whose further
// instantiations are zero-cost literals.
//
//   - [Functor]: Map; derived [Lift]
//   - [Applicative]: Pure, PureFn, Ap; derived [Product2] with [Pair]
//   - [Monad]: FlatMap; canonical derivation [ApViaFlatMap]
//   - [Comonad]: Extract, CoflatMap; derived [Duplicate], law bundle
//     [ComonadKit]
//   - [Foldable]: FoldLeft; derived [FoldMap] with [Monoid]
//   - [Traverse]: effectful rebuild via [ApKit] applicative kits
//
// # Containers
//
// Bundled shapes exercising the mechanism:
//
//   - [Ident]: single value; every capability, and the identity effect
//   - [Maybe]: optional value; also the short-circuiting effect
//   - [List]: sequence with cartesian Ap
//   - [Nel]: non-empty sequence; total Extract, suffix contexts
//   - [Tree]: self-referential shape; work-list traversals, stack-safe
//     at unbounded depth
//
// # Composite Witnesses
//
// Composite shapes are built from, and carry, their component
// witnesses:
//
//   - [SumW], [Sum]: tagged sum of two shapes; derived instances
//     dispatch on the runtime tag and always preserve it
//   - [NestedW], [Nested]: one shape stacked inside another; derived
//     instances compose the layers pointwise
//
// # Instance Registry
//
// [Registry] maps (capability, witness, fixed element params) to an
// instance: RegisterX/ResolveX per capability, conflict panics at
// registration, missing lookups return the typed absence
// [UnsupportedError]. RegisterSumX/RegisterNestedX synthesize composite
// instances from registered component instances. The registry is an
// explicit value — instances can equally be passed around directly.
//
// # Law Suites and Runner
//
// Laws are data: [Law] values grouped into ordered suites
// ([FunctorLaws], [ApplicativeLaws], [MonadLaws], [ComonadLaws],
// [FoldableLaws], [TraverseLaws]), stronger suites built by appending
// to weaker ones. [CheckLaws] draws N seeded trials per law from a
// [SampleSource] (default 100), compares both sides of each equation
// through an [Oracle], stops each law at its first counterexample and
// reports a [Violation] carrying the triggering sample. Runs are
// deterministic per configured seed.
//
// # Example
//
//	src := hkt.MakeSampleSource(hkt.IdentOf[int], nil)
//	reports := hkt.CheckLaws(
//		hkt.MonadLaws(hkt.IdentMonad[int, int](), hkt.IdentOracle()),
//		src, hkt.RunConfig{Seed: 42},
//	)
//	for _, r := range reports {
//		fmt.Println(r.Law, r.Passed())
//	}
package hkt
