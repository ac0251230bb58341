// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hkt

// ApKit is the monomorphized applicative surface of an effect shape G
// that traversing a W-shaped container with result element B needs.
// Traversal rebuilds a Slot[W, B] under the effect, so the kit fixes
// the effect's unit and combining operations at exactly those types.
// Effect containers expose kit builders ([IdentApKit], [MaybeApKit],
// [ListApKit]); any lawful Applicative can be packaged the same way.
type ApKit[G, W Witness, B any] struct {
	// Pure lifts an already rebuilt container into the effect.
	Pure func(v Slot[W, B]) Slot[G, Slot[W, B]]

	// Map rebuilds from a single effectful element.
	Map func(gb Slot[G, B], f func(B) Slot[W, B]) Slot[G, Slot[W, B]]

	// Map2 combines the accumulated rebuild with one more effectful
	// element.
	Map2 func(acc Slot[G, Slot[W, B]], gb Slot[G, B], f func(Slot[W, B], B) Slot[W, B]) Slot[G, Slot[W, B]]
}

// Traverse is the capability to sequence one effect per element while
// rebuilding the original shape: traversing with the identity effect
// is Map, and an absent effect anywhere aborts the whole rebuild.
type Traverse[W, G Witness, A, B any] interface {
	Functor[W, A, B]
	Foldable[W, A, B]

	// Traverse maps every element to an effectful value and collects
	// the results back into the original shape under the effect.
	Traverse(s Slot[W, A], f func(A) Slot[G, B], kit ApKit[G, W, B]) Slot[G, Slot[W, B]]
}
